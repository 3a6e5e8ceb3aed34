package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/tranvictor/monascii/config"
	"github.com/tranvictor/monascii/networks"
	"github.com/tranvictor/monascii/payload"
	"github.com/tranvictor/monascii/ui"
	"github.com/tranvictor/monascii/util/reader"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [hex data]",
	Short: "Read the art out of transaction data",
	Long: `Decode takes hex transaction data, or with --tx a transaction hash whose data
is fetched from the network.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := newUI()
		if config.Tx == "" {
			if len(args) == 0 {
				return fmt.Errorf("pass hex data or --tx")
			}
			data, err := hexutil.Decode(args[0])
			if err != nil {
				return fmt.Errorf("couldn't decode hex tx data: %w", err)
			}
			return printDecoded(u, payload.Classify(data))
		}

		n, err := networks.CurrentNetwork()
		if err != nil {
			return err
		}
		stop := u.Spinner(fmt.Sprintf("Fetching %s from %s...", config.Tx, n.GetName()))
		client, err := dialNetwork(cmd.Context(), n)
		if err != nil {
			stop()
			return err
		}
		defer client.Close()
		result, pending, err := reader.NewReader(client).ReadArt(cmd.Context(), config.Tx)
		stop()
		if err != nil {
			return err
		}
		if pending {
			u.Warn("The tx is still pending.")
		}
		return printDecoded(u, result)
	},
}

func printDecoded(u ui.UI, result payload.Result) error {
	switch result.Kind {
	case payload.Recognized:
		u.Success("MonASCII art, %d bytes:", len(result.Text))
		u.Art(result.Text)
		return nil
	case payload.Malformed:
		return fmt.Errorf("the data is tagged as MonASCII art but is corrupt: %w", result.Reason)
	default:
		return fmt.Errorf("the data is not MonASCII art: %w", payload.ErrMagicMismatch)
	}
}

func init() {
	decodeCmd.Flags().StringVarP(&config.Tx, "tx", "t", "", "hash of the transaction to read the art from")
	rootCmd.AddCommand(decodeCmd)
}
