package networks

import (
	"time"
)

type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetBlockTime() time.Duration // in second

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string
	// GetNodes returns the node set by GetNodeVariableName if the env var
	// is set, the default nodes otherwise.
	GetNodes() map[string]string

	// GetExplorerTxURL is the base a transaction id is appended to.
	GetExplorerTxURL() string

	MarshalJSON() ([]byte, error)
}
