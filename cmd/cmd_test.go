package cmd

import (
	"context"
	"errors"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/monascii/catalog"
	"github.com/tranvictor/monascii/config"
	"github.com/tranvictor/monascii/minter"
	"github.com/tranvictor/monascii/mintcache"
	"github.com/tranvictor/monascii/networks"
	"github.com/tranvictor/monascii/payload"
	"github.com/tranvictor/monascii/ui"
	"github.com/tranvictor/monascii/util/kvstore"
	"github.com/tranvictor/monascii/util/monitor"
)

const testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

type fakeSender struct {
	txID string
	err  error
	sent int
}

func (s *fakeSender) SendTransaction(context.Context, common.Address, []byte, *big.Int) (string, error) {
	s.sent++
	return s.txID, s.err
}

type wallet string

func (w wallet) CurrentAddress() (string, bool) {
	return string(w), w != ""
}

func TestPickArt(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	art, err := pickArt([]string{"(^_^)", "hi"}, "", rng)
	require.NoError(t, err)
	assert.Equal(t, "(^_^) hi", art)

	art, err = pickArt(nil, "battle", rng)
	require.NoError(t, err)
	c, err := catalog.FindCategory("battle")
	require.NoError(t, err)
	assert.Contains(t, c.Items, art)

	art, err = pickArt(nil, "", rng)
	require.NoError(t, err)
	assert.Contains(t, catalog.All(), art)
}

func TestRunMint(t *testing.T) {
	cache := mintcache.New(kvstore.NewMemory())
	s := &fakeSender{txID: "0xabc"}
	u := ui.NewRecordingUI("y")

	err := runMint(context.Background(), u, minter.NewMinter(s, cache), wallet(testAddress), networks.MonadTestnet, "(ʘ‿ʘ)", false, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.sent)
	assert.Equal(t, []string{"(ʘ‿ʘ)"}, u.Messages("Art"))
	assert.Equal(t, []string{"Tx: 0xabc"}, u.Messages("Critical"))
	assert.True(t, u.HasMessage("https://testnet.monadexplorer.com/tx/0xabc"))

	records, err := cache.Load(testAddress)
	require.NoError(t, err)
	assert.Equal(t, []mintcache.MintRecord{{Art: "(ʘ‿ʘ)", TxID: "0xabc"}}, records)
}

func TestRunMintDeclined(t *testing.T) {
	cache := mintcache.New(kvstore.NewMemory())
	s := &fakeSender{txID: "0xabc"}
	u := ui.NewRecordingUI("n")

	err := runMint(context.Background(), u, minter.NewMinter(s, cache), wallet(testAddress), networks.MonadTestnet, "(^_^)", false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.sent)
	assert.True(t, u.HasMessage("aborted"))
}

func TestRunMintFailures(t *testing.T) {
	sendErr := errors.New("insufficient funds")
	cache := mintcache.New(kvstore.NewMemory())
	m := minter.NewMinter(&fakeSender{err: sendErr}, cache)

	err := runMint(context.Background(), ui.NewRecordingUI(), m, wallet(testAddress), networks.MonadTestnet, "(^_^)", true, nil)
	assert.ErrorIs(t, err, minter.ErrSendFailed)
	records, err := cache.Load(testAddress)
	require.NoError(t, err)
	assert.Empty(t, records)

	err = runMint(context.Background(), ui.NewRecordingUI(), m, wallet(""), networks.MonadTestnet, "(^_^)", true, nil)
	assert.ErrorIs(t, err, minter.ErrNotConnected)
}

type fixedWaiter struct {
	status monitor.Status
	block  int64
}

func (w fixedWaiter) BlockingWait(context.Context, string) (monitor.Status, *types.Receipt, error) {
	return w.status, &types.Receipt{BlockNumber: big.NewInt(w.block)}, nil
}

func TestRunMintWaitsForReceipt(t *testing.T) {
	m := minter.NewMinter(&fakeSender{txID: "0xabc"}, mintcache.New(kvstore.NewMemory()))

	u := ui.NewRecordingUI()
	err := runMint(context.Background(), u, m, wallet(testAddress), networks.MonadTestnet, "(^_^)", true, fixedWaiter{monitor.StatusDone, 42})
	require.NoError(t, err)
	assert.Contains(t, u.Messages("Success"), "Mined in block 42.")

	u = ui.NewRecordingUI()
	err = runMint(context.Background(), u, m, wallet(testAddress), networks.MonadTestnet, "(^_^)", true, fixedWaiter{monitor.StatusReverted, 43})
	require.NoError(t, err)
	assert.True(t, u.HasMessage("reverted in block 43"))
}

func TestShowGallery(t *testing.T) {
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(mintcache.DefaultKey, []byte(
		`{"`+strings.ToLower(testAddress)+`":[{"art":"(>‿<)","tx":"0x2"},{"art":"(^_^)"}]}`,
	)))
	cache := mintcache.New(store)
	u := ui.NewRecordingUI()

	require.NoError(t, showGallery(u, cache, testAddress, "https://explorer/tx"))
	assert.Equal(t, []string{
		"1 | (>‿<) | 0x2 | https://explorer/tx/0x2",
		"2 | (^_^) | - | ",
	}, u.Messages("Table"))

	u = ui.NewRecordingUI()
	require.NoError(t, showGallery(u, cache, "0x0000000000000000000000000000000000000001", "https://explorer/tx"))
	assert.True(t, u.HasMessage("hasn't minted anything"))
	assert.Empty(t, u.Messages("Table"))
}

func TestGalleryAddress(t *testing.T) {
	config.From = ""
	t.Setenv(config.PrivateKeyEnv, "")

	addr, err := galleryAddress([]string{testAddress})
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)

	_, err = galleryAddress([]string{"vitalik"})
	assert.Error(t, err)

	_, err = galleryAddress(nil)
	assert.ErrorIs(t, err, minter.ErrNotConnected)

	t.Setenv(config.PrivateKeyEnv, "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	addr, err = galleryAddress(nil)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)
}

func TestEncodeThenDecode(t *testing.T) {
	u := ui.NewRecordingUI()
	require.NoError(t, encodeArt(u, "(^_^)"))
	assert.Equal(t, "0x4d4f4e534352303105285e5f5e29\n", u.Output())

	data, err := payload.Encode("(ᵔᴥᵔ)")
	require.NoError(t, err)
	u = ui.NewRecordingUI()
	require.NoError(t, printDecoded(u, payload.Classify(data)))
	assert.Equal(t, []string{"(ᵔᴥᵔ)"}, u.Messages("Art"))

	assert.ErrorIs(t, printDecoded(ui.NewRecordingUI(), payload.Classify([]byte{0xa9, 0x05})), payload.ErrMagicMismatch)
	assert.ErrorIs(t, printDecoded(ui.NewRecordingUI(), payload.Classify(append(data, 0))), payload.ErrLengthMismatch)

	assert.ErrorIs(t, encodeArt(ui.NewRecordingUI(), strings.Repeat("x", 256)), payload.ErrPayloadTooLarge)
}

func TestListArt(t *testing.T) {
	u := ui.NewRecordingUI()
	require.NoError(t, listArt(u, ""))
	assert.Len(t, u.Messages("Section"), len(catalog.Categories()))
	assert.Len(t, u.Messages("Table"), len(catalog.All()))

	u = ui.NewRecordingUI()
	require.NoError(t, listArt(u, "anim"))
	assert.Equal(t, []string{"animals"}, u.Messages("Section"))

	assert.Error(t, listArt(ui.NewRecordingUI(), "zzz"))
}

func TestListNetworks(t *testing.T) {
	u := ui.NewRecordingUI()
	require.NoError(t, listNetworks(u))
	assert.Contains(t, u.Messages("Section"), "monad-testnet")
	assert.True(t, u.HasMessage("Chain ID: 10143"))
}
