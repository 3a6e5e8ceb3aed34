// Package minter is the mint control flow: encode the art, send it to the
// burn address and, once the send succeeded, remember it in the mint cache
// of the sending address.
package minter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/tranvictor/monascii/catalog"
	jcommon "github.com/tranvictor/monascii/common"
	"github.com/tranvictor/monascii/mintcache"
	"github.com/tranvictor/monascii/payload"
)

// BurnAddress receives every mint. Nobody holds its key.
var BurnAddress = common.HexToAddress("0x000000000000000000000000000000000000dEaD")

var (
	ErrEmptyArt     = errors.New("art is empty")
	ErrNotConnected = errors.New("no wallet connected")
	ErrSendFailed   = errors.New("sending mint transaction failed")
)

// Sender puts a transaction on chain and returns its id.
type Sender interface {
	SendTransaction(ctx context.Context, to common.Address, data []byte, value *big.Int) (string, error)
}

// Identity is whoever is minting. ok is false while no wallet is connected.
type Identity interface {
	CurrentAddress() (address string, ok bool)
}

type Minter struct {
	sender Sender
	cache  *mintcache.AddressCache
	log    *logrus.Entry
}

func NewMinter(sender Sender, cache *mintcache.AddressCache) *Minter {
	return &Minter{
		sender: sender,
		cache:  cache,
		log:    jcommon.GetLoggerEntry("minter"),
	}
}

// Mint sends art from address and records it. It returns the record and
// address's records after the append, newest first.
func (m *Minter) Mint(ctx context.Context, address string, art string) (mintcache.MintRecord, []mintcache.MintRecord, error) {
	if mintcache.NormalizeAddress(address) == "" {
		return mintcache.MintRecord{}, nil, mintcache.ErrNoAddress
	}
	if art == "" {
		return mintcache.MintRecord{}, nil, ErrEmptyArt
	}
	data, err := payload.Encode(art)
	if err != nil {
		return mintcache.MintRecord{}, nil, err
	}

	log := m.log.WithFields(logrus.Fields{
		"address": address,
		"bytes":   len(data),
	})
	log.Debug("sending mint")
	txID, err := m.sender.SendTransaction(ctx, BurnAddress, data, big.NewInt(0))
	if err != nil {
		return mintcache.MintRecord{}, nil, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	if strings.TrimSpace(txID) == "" {
		return mintcache.MintRecord{}, nil, fmt.Errorf("%w: sender returned no tx id", ErrSendFailed)
	}

	record := mintcache.MintRecord{Art: art, TxID: txID}
	records, err := m.cache.Append(address, record)
	if err != nil {
		// the art is on chain already, only the local gallery misses it
		log.WithField("tx", txID).WithError(err).Error("mint sent but not recorded")
		return record, nil, fmt.Errorf("mint %s sent but not recorded: %w", txID, err)
	}
	return record, records, nil
}

// MintFor mints from the identity's current address.
func (m *Minter) MintFor(ctx context.Context, identity Identity, art string) (mintcache.MintRecord, []mintcache.MintRecord, error) {
	address, ok := identity.CurrentAddress()
	if !ok || mintcache.NormalizeAddress(address) == "" {
		return mintcache.MintRecord{}, nil, ErrNotConnected
	}
	return m.Mint(ctx, address, art)
}

// MintRandom mints a piece picked from the whole catalog.
func (m *Minter) MintRandom(ctx context.Context, address string, rng *rand.Rand) (mintcache.MintRecord, []mintcache.MintRecord, error) {
	return m.Mint(ctx, address, catalog.Random(rng))
}
