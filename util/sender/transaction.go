package sender

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// BuildTx builds a dynamic fee tx when tip is set, a legacy tx otherwise.
// priceWei is the fee cap for dynamic fee txs and the gas price for legacy
// ones.
func BuildTx(
	chainID *big.Int,
	nonce uint64,
	to common.Address,
	value *big.Int,
	gasLimit uint64,
	priceWei *big.Int,
	tipWei *big.Int,
	data []byte,
) *types.Transaction {
	if tipWei != nil {
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: tipWei,
			GasFeeCap: priceWei,
			Gas:       gasLimit,
			To:        &to,
			Value:     value,
			Data:      data,
		})
	}
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: priceWei,
		Gas:      gasLimit,
		To:       &to,
		Value:    value,
		Data:     data,
	})
}
