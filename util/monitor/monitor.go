// Package monitor waits for a broadcasted transaction to be mined.
package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	jcommon "github.com/tranvictor/monascii/common"
)

var log = jcommon.GetLoggerEntry("monitor")

type Status string

const (
	StatusDone     Status = "done"
	StatusReverted Status = "reverted"
	// StatusLost means no node ever returned a receipt before the lost
	// timeout ran out.
	StatusLost Status = "lost"
)

type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type TxMonitor struct {
	reader    ReceiptReader
	interval  time.Duration
	lostAfter time.Duration
}

// NewTxMonitor polls about once per block. A tx without a receipt after
// lostAfter is reported lost.
func NewTxMonitor(reader ReceiptReader, blockTime time.Duration, lostAfter time.Duration) *TxMonitor {
	if blockTime <= 0 {
		blockTime = time.Second
	}
	return &TxMonitor{
		reader:    reader,
		interval:  blockTime,
		lostAfter: lostAfter,
	}
}

// BlockingWait returns once the tx is mined, considered lost, or ctx is done.
func (m *TxMonitor) BlockingWait(ctx context.Context, tx string) (Status, *types.Receipt, error) {
	hash := common.HexToHash(tx)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	deadline := time.Now().Add(m.lostAfter)

	for {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}
		receipt, err := m.reader.TransactionReceipt(ctx, hash)
		switch {
		case err == nil && receipt != nil:
			if receipt.Status == types.ReceiptStatusSuccessful {
				return StatusDone, receipt, nil
			}
			return StatusReverted, receipt, nil
		case err != nil && !errors.Is(err, ethereum.NotFound):
			log.WithField("tx", tx).WithError(err).Debug("couldn't get receipt, retrying")
		}
		if time.Now().After(deadline) {
			return StatusLost, nil, nil
		}

		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
