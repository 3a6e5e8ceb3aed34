package reader

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/tranvictor/monascii/payload"
)

type Reader struct {
	node EthereumNode
}

func NewReader(node EthereumNode) *Reader {
	return &Reader{node: node}
}

// Dial connects to the first node of nodes that answers.
func Dial(ctx context.Context, nodes map[string]string) (*ethclient.Client, string, error) {
	var lastErr error
	for name, url := range nodes {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", name, err)
			continue
		}
		return client, name, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no node configured")
	}
	return nil, "", lastErr
}

// TxData returns the data field of the transaction with hash txHash.
func (r *Reader) TxData(ctx context.Context, txHash string) ([]byte, bool, error) {
	if !isHash(txHash) {
		return nil, false, fmt.Errorf("%q is not a transaction hash", txHash)
	}
	tx, pending, err := r.node.TransactionByHash(ctx, common.HexToHash(txHash))
	if err != nil {
		return nil, false, fmt.Errorf("couldn't get tx %s: %w", txHash, err)
	}
	return tx.Data(), pending, nil
}

// ReadArt fetches a transaction and classifies its data. pending tells
// whether the transaction is still waiting to be mined.
func (r *Reader) ReadArt(ctx context.Context, txHash string) (payload.Result, bool, error) {
	data, pending, err := r.TxData(ctx, txHash)
	if err != nil {
		return payload.Result{}, false, err
	}
	return payload.Classify(data), pending, nil
}

func isHash(s string) bool {
	raw, err := hexutil.Decode(s)
	return err == nil && len(raw) == common.HashLength
}
