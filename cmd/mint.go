package cmd

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/tranvictor/monascii/catalog"
	jcommon "github.com/tranvictor/monascii/common"
	"github.com/tranvictor/monascii/config"
	"github.com/tranvictor/monascii/minter"
	"github.com/tranvictor/monascii/networks"
	"github.com/tranvictor/monascii/payload"
	"github.com/tranvictor/monascii/ui"
	"github.com/tranvictor/monascii/util/account"
	"github.com/tranvictor/monascii/util/explorers"
	"github.com/tranvictor/monascii/util/monitor"
	"github.com/tranvictor/monascii/util/sender"
)

var mintCmd = &cobra.Command{
	Use:   "mint [art]",
	Short: "Mint a piece of ASCII art",
	Long: `Mint sends the art in the data of a zero value transaction to the burn
address and adds it to your gallery once the transaction is broadcasted.

Without art, a random piece is picked from the catalog (see monascii art),
optionally from one category with --category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		u := newUI()
		ctx := cmd.Context()

		art, err := pickArt(args, config.Category, rand.New(rand.NewSource(time.Now().UnixNano())))
		if err != nil {
			return err
		}
		// fail on oversized art before asking for any password
		data, err := payload.Encode(art)
		if err != nil {
			return err
		}

		n, err := networks.CurrentNetwork()
		if err != nil {
			return err
		}
		acc, err := loadAccount(u)
		if err != nil {
			return err
		}
		client, err := dialNetwork(ctx, n)
		if err != nil {
			return err
		}
		defer client.Close()
		s := newChainSender(client, n, acc)

		if config.DontBroadcast {
			return previewMint(ctx, u, s, acc, n, art, data)
		}

		cache, closeCache, err := openCache()
		if err != nil {
			return err
		}
		defer closeCache()

		var waiter txWaiter
		if !config.DontWaitToBeMined {
			waiter = monitor.NewTxMonitor(client, n.GetBlockTime(), 3*time.Minute)
		}
		return runMint(ctx, u, minter.NewMinter(s, cache), acc, n, art, config.Yes, waiter)
	},
}

// pickArt returns the art given on the command line, or a random piece.
func pickArt(args []string, category string, rng *rand.Rand) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if category != "" {
		return catalog.RandomFrom(category, rng)
	}
	return catalog.Random(rng), nil
}

func printMintSummary(u ui.UI, n networks.Network, from string, art string) {
	u.Section("Mint")
	u.Art(art)
	u.KeyValue([][2]string{
		{"Network", fmt.Sprintf("%s (chain id %d)", n.GetName(), n.GetChainID())},
		{"From", from},
		{"To", minter.BurnAddress.Hex()},
		{"Value", "0 " + n.GetNativeTokenSymbol()},
		{"Size", fmt.Sprintf("%d/%d bytes", len(art), payload.MaxContentLength)},
	})
}

type txWaiter interface {
	BlockingWait(ctx context.Context, tx string) (monitor.Status, *types.Receipt, error)
}

// runMint confirms, mints and, when waiter is not nil, waits for the tx to
// be mined. The gallery is updated as soon as the tx is broadcasted.
func runMint(
	ctx context.Context,
	u ui.UI,
	m *minter.Minter,
	id minter.Identity,
	n networks.Network,
	art string,
	yes bool,
	waiter txWaiter,
) error {
	from, connected := id.CurrentAddress()
	if !connected {
		return minter.ErrNotConnected
	}
	printMintSummary(u, n, from, art)
	if !yes && !u.Confirm("Mint it?", true) {
		u.Warn("Aborted, nothing was sent.")
		return nil
	}

	stop := u.Spinner("Broadcasting...")
	record, records, err := m.MintFor(ctx, id, art)
	stop()
	if err != nil {
		if record.HasTx() {
			// on chain but not in the gallery, the tx id is all the user has
			u.Critical("Tx: %s", record.TxID)
		}
		return err
	}

	u.Success("Minted!")
	u.Critical("Tx: %s", record.TxID)
	if link := explorers.TxLink(n.GetExplorerTxURL(), record.TxID); link != "" {
		u.Info("Explorer: %s", link)
	}
	u.Info("%s has minted %d piece(s). See them with: monascii gallery %s", from, len(records), from)

	if waiter == nil {
		return nil
	}
	stop = u.Spinner("Waiting for the tx to be mined...")
	status, receipt, err := waiter.BlockingWait(ctx, record.TxID)
	stop()
	if err != nil {
		u.Warn("Stopped waiting for the tx: %s", err)
		return nil
	}
	switch status {
	case monitor.StatusDone:
		u.Success("Mined%s.", inBlock(receipt))
	case monitor.StatusReverted:
		u.Error("The tx reverted%s. The art is in its data anyway.", inBlock(receipt))
	default:
		u.Warn("No node knows the tx yet. It may still be mined, check the explorer.")
	}
	return nil
}

func inBlock(receipt *types.Receipt) string {
	if receipt == nil || receipt.BlockNumber == nil {
		return ""
	}
	return fmt.Sprintf(" in block %s", receipt.BlockNumber)
}

// previewMint shows the signed tx without broadcasting it.
func previewMint(
	ctx context.Context,
	u ui.UI,
	s *sender.Sender,
	acc *account.Account,
	n networks.Network,
	art string,
	data []byte,
) error {
	printMintSummary(u, n, acc.AddressHex(), art)
	tx, err := s.Prepare(ctx, minter.BurnAddress, data, big.NewInt(0))
	if err != nil {
		return err
	}
	signed, err := acc.SignTx(tx, new(big.Int).SetUint64(n.GetChainID()))
	if err != nil {
		return err
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return err
	}
	u.KeyValue([][2]string{
		{"Nonce", fmt.Sprintf("%d", signed.Nonce())},
		{"Gas", fmt.Sprintf("%d", signed.Gas())},
		{"Max fee", fmt.Sprintf("%f %s", jcommon.BigToFloat(signed.Cost(), 18), n.GetNativeTokenSymbol())},
		{"Tx", signed.Hash().Hex()},
	})
	u.Warn("Dry run, the tx was not broadcasted and nothing was added to the gallery.")
	u.Info("Signed tx: %s", hexutil.Encode(raw))
	return nil
}

func init() {
	mintCmd.Flags().StringVarP(&config.Category, "category", "c", "", "pick a random piece from this catalog category, fuzzy matched")
	AddCommonFlagsToTransactionalCmds(mintCmd)
	rootCmd.AddCommand(mintCmd)
}
