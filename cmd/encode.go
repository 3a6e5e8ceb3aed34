package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/monascii/payload"
	"github.com/tranvictor/monascii/ui"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <art>",
	Short: "Print the transaction data a piece of art mints as",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return encodeArt(newUI(), strings.Join(args, " "))
	},
}

func encodeArt(u ui.UI, art string) error {
	data, err := payload.EncodeHex(art)
	if err != nil {
		return err
	}
	fmt.Fprintln(u.Writer(), data)
	return nil
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
