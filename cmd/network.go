package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/monascii/networks"
	"github.com/tranvictor/monascii/ui"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show all of supported networks",
	Long: `Networks can be added by dropping a json file in ~/.monascii/networks/ in the
following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1"],
		"chain_id": 1,
		"native_token_symbol": "ETH",
		"block_time": 12,
		"node_variable_name": "MY_NODE",
		"default_nodes": {
			"node_name_1": "node_url_1"
		},
		"explorer_tx_url": "https://etherscan.io/tx"
	}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listNetworks(newUI())
	},
}

func listNetworks(u ui.UI) error {
	seen := map[uint64]bool{}
	for _, name := range networks.GetSupportedNetworkNames() {
		n, err := networks.GetNetwork(name)
		if err != nil {
			return err
		}
		if seen[n.GetChainID()] {
			continue
		}
		seen[n.GetChainID()] = true

		u.Section(n.GetName())
		rows := [][2]string{
			{"Chain ID", fmt.Sprintf("%d", n.GetChainID())},
			{"Also known as", strings.Join(n.GetAlternativeNames(), ", ")},
			{"Node env var", n.GetNodeVariableName()},
			{"Explorer", n.GetExplorerTxURL()},
		}
		nodes := n.GetNodes()
		names := make([]string, 0, len(nodes))
		for k := range nodes {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			rows = append(rows, [2]string{"Node " + k, nodes[k]})
		}
		u.KeyValue(rows)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
