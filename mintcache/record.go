package mintcache

import "strings"

// MintRecord is one minted art piece as remembered for a wallet. TxID is
// empty until the transaction sender has accepted the transaction.
type MintRecord struct {
	Art  string `json:"art"`
	TxID string `json:"tx,omitempty"`
}

func (r MintRecord) HasTx() bool {
	return r.TxID != ""
}

// NormalizeAddress is the form addresses are stored under.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
