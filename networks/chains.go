package networks

var MonadTestnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "monad-testnet",
	AlternativeNames:  []string{"monad"},
	ChainID:           10143,
	NativeTokenSymbol: "MON",
	BlockTime:         1,
	NodeVariableName:  "MONAD_TESTNET_NODE",
	DefaultNodes: map[string]string{
		"monad-public": "https://testnet-rpc.monad.xyz",
	},
	ExplorerTxURL: "https://testnet.monadexplorer.com/tx",
})

var EthereumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "mainnet",
	AlternativeNames:  []string{"ethereum"},
	ChainID:           1,
	NativeTokenSymbol: "ETH",
	BlockTime:         12,
	NodeVariableName:  "ETHEREUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"mainnet-publicnode": "https://ethereum-rpc.publicnode.com",
	},
	ExplorerTxURL: "https://etherscan.io/tx",
})

var Sepolia Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "sepolia",
	AlternativeNames:  []string{},
	ChainID:           11155111,
	NativeTokenSymbol: "ETH",
	BlockTime:         12,
	NodeVariableName:  "ETHEREUM_SEPOLIA_NODE",
	DefaultNodes: map[string]string{
		"sepolia-publicnode": "https://ethereum-sepolia-rpc.publicnode.com",
	},
	ExplorerTxURL: "https://sepolia.etherscan.io/tx",
})
