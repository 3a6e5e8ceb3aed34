package explorers

import (
	"strings"
)

// TxLink returns <base>/<txID>, the page a block explorer shows for the
// transaction. Records without a transaction id have no link.
func TxLink(base string, txID string) string {
	txID = strings.TrimSpace(txID)
	if txID == "" || base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(txID, "/")
}
