package minter

import (
	"context"
	"errors"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/monascii/catalog"
	"github.com/tranvictor/monascii/mintcache"
	"github.com/tranvictor/monascii/payload"
	"github.com/tranvictor/monascii/util/kvstore"
)

const addr = "0x1111111111111111111111111111111111111aaa"

type sentTx struct {
	to    common.Address
	data  []byte
	value *big.Int
}

type fakeSender struct {
	sent []sentTx
	txID string
	err  error
}

func (s *fakeSender) SendTransaction(_ context.Context, to common.Address, data []byte, value *big.Int) (string, error) {
	s.sent = append(s.sent, sentTx{to, data, value})
	return s.txID, s.err
}

type identity string

func (i identity) CurrentAddress() (string, bool) {
	return string(i), i != ""
}

func newTestMinter(sender Sender) (*Minter, kvstore.Store) {
	store := kvstore.NewMemory()
	return NewMinter(sender, mintcache.New(store)), store
}

func TestMintSendsToBurnAddressAndRecords(t *testing.T) {
	sender := &fakeSender{txID: "0xfeed"}
	m, _ := newTestMinter(sender)

	record, records, err := m.Mint(context.Background(), addr, "(^_^)")
	require.NoError(t, err)
	assert.Equal(t, mintcache.MintRecord{Art: "(^_^)", TxID: "0xfeed"}, record)
	assert.Equal(t, []mintcache.MintRecord{record}, records)

	require.Len(t, sender.sent, 1)
	sent := sender.sent[0]
	assert.Equal(t, BurnAddress, sent.to)
	assert.Equal(t, 0, sent.value.Sign())
	art, err := payload.Decode(sent.data)
	require.NoError(t, err)
	assert.Equal(t, "(^_^)", art)

	gallery, err := m.cache.Load(strings.ToUpper(addr))
	require.NoError(t, err)
	assert.Equal(t, records, gallery)
}

func TestFailedSendLeavesCacheUntouched(t *testing.T) {
	sendErr := errors.New("user rejected")
	sender := &fakeSender{txID: "0xhalf", err: sendErr}
	m, store := newTestMinter(sender)

	_, _, err := m.Mint(context.Background(), addr, "(ಠ_ಠ)")
	require.ErrorIs(t, err, ErrSendFailed)
	assert.ErrorIs(t, err, sendErr)

	_, _, err = store.Get(mintcache.DefaultKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestEmptyTxIDIsAFailedSend(t *testing.T) {
	m, store := newTestMinter(&fakeSender{})
	_, _, err := m.Mint(context.Background(), addr, "(ಠ_ಠ)")
	require.ErrorIs(t, err, ErrSendFailed)
	_, _, err = store.Get(mintcache.DefaultKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestInvalidInputFailsBeforeSending(t *testing.T) {
	sender := &fakeSender{txID: "0x1"}
	m, _ := newTestMinter(sender)
	ctx := context.Background()

	_, _, err := m.Mint(ctx, addr, "")
	assert.ErrorIs(t, err, ErrEmptyArt)

	_, _, err = m.Mint(ctx, " ", "(^_^)")
	assert.ErrorIs(t, err, mintcache.ErrNoAddress)

	_, _, err = m.Mint(ctx, addr, strings.Repeat("a", payload.MaxContentLength+1))
	assert.ErrorIs(t, err, payload.ErrPayloadTooLarge)

	_, _, err = m.MintFor(ctx, identity(""), "(^_^)")
	assert.ErrorIs(t, err, ErrNotConnected)

	assert.Empty(t, sender.sent)
}

func TestMintForUsesIdentityAddress(t *testing.T) {
	m, _ := newTestMinter(&fakeSender{txID: "0x2"})

	_, _, err := m.MintFor(context.Background(), identity(addr), "(•‿•)")
	require.NoError(t, err)

	records, err := m.cache.Load(addr)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMintRandomPicksFromCatalog(t *testing.T) {
	m, _ := newTestMinter(&fakeSender{txID: "0x3"})

	record, _, err := m.MintRandom(context.Background(), addr, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Contains(t, catalog.All(), record.Art)
}

type brokenStore struct {
	*kvstore.Memory
}

func (brokenStore) CompareAndSwap(string, kvstore.Version, []byte) (kvstore.Version, error) {
	return kvstore.NoVersion, errors.New("disk full")
}

func TestSentButNotRecorded(t *testing.T) {
	m := NewMinter(&fakeSender{txID: "0x4"}, mintcache.New(brokenStore{kvstore.NewMemory()}))

	record, records, err := m.Mint(context.Background(), addr, "(^_^)")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSendFailed)
	assert.Equal(t, "0x4", record.TxID)
	assert.Nil(t, records)
}
