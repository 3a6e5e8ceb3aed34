// Package sender is the go-ethereum implementation of the transaction
// sender a mint goes through: it fills in nonce, fees and gas, signs with
// the user's key and broadcasts.
package sender

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	jcommon "github.com/tranvictor/monascii/common"
	"github.com/tranvictor/monascii/util/reader"
)

var log = jcommon.GetLoggerEntry("sender")

type Signer interface {
	Address() common.Address
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

type Broadcaster interface {
	BroadcastTx(ctx context.Context, tx *types.Transaction) (string, error)
}

type Sender struct {
	node          reader.EthereumNode
	signer        Signer
	broadcaster   Broadcaster
	chainID       *big.Int
	gasLimit      uint64
	extraGasLimit uint64
	legacy        bool
}

type Option func(*Sender)

// WithGasLimit skips gas estimation and uses limit.
func WithGasLimit(limit uint64) Option {
	return func(s *Sender) {
		s.gasLimit = limit
	}
}

// WithExtraGasLimit is added on top of the estimated or given gas limit.
func WithExtraGasLimit(extra uint64) Option {
	return func(s *Sender) {
		s.extraGasLimit = extra
	}
}

// WithLegacyTx forces a legacy (gas price) transaction.
func WithLegacyTx(legacy bool) Option {
	return func(s *Sender) {
		s.legacy = legacy
	}
}

func NewSender(
	node reader.EthereumNode,
	signer Signer,
	broadcaster Broadcaster,
	chainID uint64,
	opts ...Option,
) *Sender {
	s := &Sender{
		node:        node,
		signer:      signer,
		broadcaster: broadcaster,
		chainID:     new(big.Int).SetUint64(chainID),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepare builds the unsigned transaction SendTransaction would send.
func (s *Sender) Prepare(ctx context.Context, to common.Address, data []byte, value *big.Int) (*types.Transaction, error) {
	if value == nil {
		value = big.NewInt(0)
	}
	from := s.signer.Address()

	nonce, err := s.node.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("couldn't get nonce of %s: %w", from.Hex(), err)
	}

	price, tip, err := s.fees(ctx)
	if err != nil {
		return nil, err
	}

	gas := s.gasLimit
	if gas == 0 {
		gas, err = s.node.EstimateGas(ctx, ethereum.CallMsg{
			From:  from,
			To:    &to,
			Value: value,
			Data:  data,
		})
		if err != nil {
			return nil, fmt.Errorf("couldn't estimate gas: %w", err)
		}
	}
	gas += s.extraGasLimit

	return BuildTx(s.chainID, nonce, to, value, gas, price, tip, data), nil
}

// fees returns the fee cap and tip for a dynamic fee tx, or the gas price
// and a nil tip when the chain has no base fee.
func (s *Sender) fees(ctx context.Context) (*big.Int, *big.Int, error) {
	if !s.legacy {
		header, err := s.node.HeaderByNumber(ctx, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("couldn't get latest header: %w", err)
		}
		if header.BaseFee != nil && header.BaseFee.Sign() > 0 {
			tip, err := s.node.SuggestGasTipCap(ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("couldn't get tip suggestion: %w", err)
			}
			feeCap := new(big.Int).Mul(header.BaseFee, big.NewInt(2))
			feeCap.Add(feeCap, tip)
			return feeCap, tip, nil
		}
	}
	price, err := s.node.SuggestGasPrice(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't get gas price suggestion: %w", err)
	}
	return price, nil, nil
}

// SendTransaction signs and broadcasts a transaction carrying data to to.
// It returns the transaction hash once at least one node accepted it.
func (s *Sender) SendTransaction(ctx context.Context, to common.Address, data []byte, value *big.Int) (string, error) {
	tx, err := s.Prepare(ctx, to, data, value)
	if err != nil {
		return "", err
	}
	signed, err := s.signer.SignTx(tx, s.chainID)
	if err != nil {
		return "", err
	}
	hash, err := s.broadcaster.BroadcastTx(ctx, signed)
	if err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{
		"tx":    hash,
		"nonce": signed.Nonce(),
		"gas":   signed.Gas(),
	}).Info("tx broadcasted")
	return hash, nil
}
