package account

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Account is the wallet a mint is sent from. It is also the "connected
// identity" whose address the mint cache is keyed by.
type Account struct {
	signer  Signer
	address common.Address
}

func NewKeystoreAccount(file string, password string) (*Account, error) {
	_, key, err := PrivateKeyFromKeystore(file, password)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyAccount(key), nil
}

func NewHexKeyAccount(hex string) (*Account, error) {
	_, key, err := PrivateKeyFromHex(hex)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyAccount(key), nil
}

func NewPrivateKeyAccount(key *ecdsa.PrivateKey) *Account {
	return &Account{
		newPrivateKeySigner(key),
		crypto.PubkeyToAddress(key.PublicKey),
	}
}

func (self *Account) Address() common.Address {
	return self.address
}

func (self *Account) AddressHex() string {
	return self.address.Hex()
}

// CurrentAddress reports the account's address; an unlocked account is
// always connected.
func (self *Account) CurrentAddress() (string, bool) {
	return self.address.Hex(), true
}

func (self *Account) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signedTx, err := self.signer.SignTx(tx, chainID)
	if err != nil {
		return tx, fmt.Errorf("couldn't sign the tx: %w", err)
	}
	return signedTx, nil
}
