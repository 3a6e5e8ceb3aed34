package account

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

// privateKeySigner signs in process with a key unlocked from a keystore or
// given as hex.
type privateKeySigner struct {
	key *ecdsa.PrivateKey
}

func newPrivateKeySigner(key *ecdsa.PrivateKey) *privateKeySigner {
	return &privateKeySigner{key: key}
}

// SignTx signs for chainID. A typed tx built for another chain is refused
// instead of producing a signature no node of chainID would accept.
func (s *privateKeySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if chainID == nil || chainID.Sign() <= 0 {
		return nil, fmt.Errorf("invalid chain id %v", chainID)
	}
	if tx.Type() != types.LegacyTxType && tx.ChainId().Cmp(chainID) != 0 {
		return nil, fmt.Errorf("tx is for chain %s, not %s", tx.ChainId(), chainID)
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}
