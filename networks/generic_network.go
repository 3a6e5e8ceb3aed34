package networks

import (
	"encoding/json"
	"os"
	"strings"
	"time"
)

type GenericNetworkConfig struct {
	Name              string            `json:"name"`
	AlternativeNames  []string          `json:"alternative_names"`
	ChainID           uint64            `json:"chain_id"`
	NativeTokenSymbol string            `json:"native_token_symbol"`
	BlockTime         uint64            `json:"block_time"`
	NodeVariableName  string            `json:"node_variable_name"`
	DefaultNodes      map[string]string `json:"default_nodes"`
	ExplorerTxURL     string            `json:"explorer_tx_url"`
}

// GenericNetwork is an EVM chain described entirely by its config, which is
// also how custom networks are loaded from disk.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	return &GenericNetwork{config: config}
}

func (gn *GenericNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericNetwork) GetBlockTime() time.Duration {
	return time.Duration(gn.config.BlockTime) * time.Second
}

func (gn *GenericNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericNetwork) GetDefaultNodes() map[string]string {
	return gn.config.DefaultNodes
}

func (gn *GenericNetwork) GetNodes() map[string]string {
	if gn.config.NodeVariableName != "" {
		if node := strings.Trim(os.Getenv(gn.config.NodeVariableName), " "); node != "" {
			return map[string]string{"custom-node": node}
		}
	}
	return gn.config.DefaultNodes
}

func (gn *GenericNetwork) GetExplorerTxURL() string {
	return gn.config.ExplorerTxURL
}

func (gn *GenericNetwork) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(gn.config, "", "  ")
}
