// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/monascii/common"
	"github.com/tranvictor/monascii/config"
	"github.com/tranvictor/monascii/networks"
	"github.com/tranvictor/monascii/util/kvstore"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "monascii",
	Short: "Mint ASCII art into transaction data and keep a gallery of it",
	Long: fmt.Sprintf(`MonASCII mints a piece of ASCII art by putting it in the data of a zero value
transaction sent to the burn address %s. No contract is involved, anyone
can read the art back from the transaction.

MonASCII remembers which art every address minted, so
	monascii gallery <address>
shows it without asking an indexer. The gallery lives in %s unless
--store-dir says otherwise.

By default MonASCII mints on %s. To use your own node set %s
(or the variable of the network you pick, see monascii network).

To mint, MonASCII needs a key: either a keystore file (--keystore or %s)
or a hex private key in %s.`,
		"0x000000000000000000000000000000000000dEaD",
		kvstore.DefaultDir(),
		networks.DefaultNetwork,
		networks.MonadTestnet.GetNodeVariableName(),
		config.KeystoreEnv,
		config.PrivateKeyEnv,
	),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := common.SetLogLevel(config.LogLevel); err != nil {
			return err
		}
		networks.NetworkString = config.Network
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", networks.DefaultNetwork, fmt.Sprintf("network to use. Valid values: %s.", strings.Join(networks.GetSupportedNetworkNames(), ", ")))
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "warn", "log level: debug, info, warn or error. Logs go to stderr.")
	rootCmd.PersistentFlags().StringVar(&config.StoreBackend, "store", kvstore.BackendFile, fmt.Sprintf("gallery storage backend. Valid values: %s.", strings.Join(kvstore.Backends, ", ")))
	rootCmd.PersistentFlags().StringVar(&config.StoreDir, "store-dir", "", "directory of the gallery storage. Defaults to ~/.monascii.")
}
