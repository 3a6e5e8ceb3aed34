package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tranvictor/monascii/config"
	"github.com/tranvictor/monascii/minter"
	"github.com/tranvictor/monascii/mintcache"
	"github.com/tranvictor/monascii/networks"
	"github.com/tranvictor/monascii/ui"
	"github.com/tranvictor/monascii/util/account"
	"github.com/tranvictor/monascii/util/explorers"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery [address]",
	Short: "Show the art an address minted, newest first",
	Long: `Gallery reads the local mint cache, it doesn't ask the chain. Without an
address, the address of the key in ` + config.PrivateKeyEnv + ` is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := newUI()
		address, err := galleryAddress(args)
		if err != nil {
			return err
		}
		n, err := networks.CurrentNetwork()
		if err != nil {
			return err
		}
		cache, closeCache, err := openCache()
		if err != nil {
			return err
		}
		defer closeCache()

		return showGallery(u, cache, address, n.GetExplorerTxURL())
	},
}

func galleryAddress(args []string) (string, error) {
	address := config.From
	if len(args) > 0 {
		address = args[0]
	}
	if address == "" {
		key := strings.TrimSpace(os.Getenv(config.PrivateKeyEnv))
		if key == "" {
			return "", fmt.Errorf("%w: pass an address", minter.ErrNotConnected)
		}
		acc, err := account.NewHexKeyAccount(key)
		if err != nil {
			return "", err
		}
		return acc.AddressHex(), nil
	}
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%q is not an address", address)
	}
	return address, nil
}

func showGallery(u ui.UI, cache *mintcache.AddressCache, address string, explorerBase string) error {
	records, err := cache.Load(address)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		u.Info("%s hasn't minted anything yet.", address)
		return nil
	}

	u.Section(fmt.Sprintf("Gallery of %s", address))
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		tx, link := "-", ""
		if r.HasTx() {
			tx = r.TxID
			link = explorers.TxLink(explorerBase, r.TxID)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			strings.ReplaceAll(r.Art, "\n", " "),
			tx,
			link,
		})
	}
	u.Table([]string{"#", "Art", "Tx", "Explorer"}, rows)
	u.Info("%d piece(s)", len(records))
	return nil
}

func init() {
	galleryCmd.Flags().StringVarP(&config.From, "from", "f", "", "address to show the gallery of")
	rootCmd.AddCommand(galleryCmd)
}
