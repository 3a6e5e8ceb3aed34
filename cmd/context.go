package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"

	jcommon "github.com/tranvictor/monascii/common"
	"github.com/tranvictor/monascii/config"
	"github.com/tranvictor/monascii/minter"
	"github.com/tranvictor/monascii/mintcache"
	"github.com/tranvictor/monascii/networks"
	"github.com/tranvictor/monascii/ui"
	"github.com/tranvictor/monascii/util/account"
	"github.com/tranvictor/monascii/util/broadcaster"
	"github.com/tranvictor/monascii/util/kvstore"
	"github.com/tranvictor/monascii/util/reader"
	"github.com/tranvictor/monascii/util/sender"
)

var log = jcommon.GetLoggerEntry("cmd")

// newUI is swapped in tests.
var newUI = func() ui.UI {
	return ui.NewTerminalUI()
}

func storeDir() string {
	if config.StoreDir != "" {
		return config.StoreDir
	}
	return kvstore.DefaultDir()
}

// openCache opens the gallery store. The returned func closes it.
func openCache() (*mintcache.AddressCache, func(), error) {
	store, err := kvstore.Open(config.StoreBackend, storeDir())
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't open the gallery store: %w", err)
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("couldn't close the gallery store")
		}
	}
	return mintcache.New(store), closeStore, nil
}

// loadAccount unlocks the keystore given by --keystore, asking for its
// password, or falls back to the hex key in the environment.
func loadAccount(u ui.UI) (*account.Account, error) {
	if config.Keystore != "" {
		password, err := u.Password(fmt.Sprintf("Password of %s", filepath.Base(config.Keystore)))
		if err != nil {
			return nil, err
		}
		return account.NewKeystoreAccount(config.Keystore, password)
	}
	if key := strings.TrimSpace(os.Getenv(config.PrivateKeyEnv)); key != "" {
		return account.NewHexKeyAccount(key)
	}
	return nil, fmt.Errorf(
		"%w: pass --keystore or set %s",
		minter.ErrNotConnected, config.PrivateKeyEnv,
	)
}

// dialNetwork connects to one of the network's nodes and checks it is on
// the chain the network says.
func dialNetwork(ctx context.Context, n networks.Network) (*ethclient.Client, error) {
	client, name, err := reader.Dial(ctx, n.GetNodes())
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to %s: %w", n.GetName(), err)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("couldn't get chain id from %s: %w", name, err)
	}
	if chainID.Uint64() != n.GetChainID() {
		client.Close()
		return nil, fmt.Errorf(
			"node %s is on chain %s, %s is chain %d",
			name, chainID, n.GetName(), n.GetChainID(),
		)
	}
	log.WithFields(logrus.Fields{
		"network": n.GetName(),
		"node":    name,
	}).Debug("connected")
	return client, nil
}

// newChainSender signs with acc and broadcasts to every node of n.
func newChainSender(client *ethclient.Client, n networks.Network, acc *account.Account) *sender.Sender {
	opts := []sender.Option{
		sender.WithExtraGasLimit(config.ExtraGasLimit),
		sender.WithLegacyTx(config.ForceLegacy),
	}
	if config.GasLimit > 0 {
		opts = append(opts, sender.WithGasLimit(config.GasLimit))
	}
	return sender.NewSender(
		client,
		acc,
		broadcaster.NewGenericBroadcaster(n.GetNodes()),
		n.GetChainID(),
		opts...,
	)
}
