package broadcaster

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/tranvictor/monascii/common"
)

var log = common.GetLoggerEntry("broadcaster")

const DefaultTimeout = 4 * time.Second

// RPCCaller is the part of an rpc.Client the broadcaster needs.
type RPCCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// Broadcaster takes a signed tx and try to broadcast it to all
// nodes that it manages as fast as possible. The tx counts as sent
// once at least one node accepted it.
type Broadcaster struct {
	clients map[string]RPCCaller
	timeout time.Duration
}

func NewBroadcaster(clients map[string]RPCCaller) *Broadcaster {
	return &Broadcaster{
		clients: clients,
		timeout: DefaultTimeout,
	}
}

func NewGenericBroadcaster(nodes map[string]string) *Broadcaster {
	clients := map[string]RPCCaller{}
	for name, c := range nodes {
		client, err := rpc.Dial(c)
		if err != nil {
			log.WithField("node", c).WithError(err).Warn("couldn't connect to node")
			continue
		}
		clients[name] = client
	}
	return NewBroadcaster(clients)
}

func (b *Broadcaster) NumNodes() int {
	return len(b.clients)
}

func (b *Broadcaster) BroadcastTx(ctx context.Context, tx *types.Transaction) (string, error) {
	data, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("tx is not valid, couldn't encode it: %w", err)
	}
	if err := b.Broadcast(ctx, hexutil.Encode(data)); err != nil {
		return tx.Hash().Hex(), err
	}
	return tx.Hash().Hex(), nil
}

// Broadcast sends data, the hex encoding of a signed tx, to every node.
func (b *Broadcaster) Broadcast(ctx context.Context, data string) error {
	if len(b.clients) == 0 {
		return fmt.Errorf("no node to broadcast to")
	}
	timeout, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	parallelTasks := []func() error{}
	for name := range b.clients {
		name, cli := name, b.clients[name]
		parallelTasks = append(parallelTasks, func() error {
			if err := cli.CallContext(timeout, nil, "eth_sendRawTransaction", data); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	numErrs, err := common.RunParallel(parallelTasks...)
	if numErrs == len(b.clients) {
		return fmt.Errorf("broadcasting to all nodes failed: %w", err)
	}
	if err != nil {
		log.WithError(err).Debug("some nodes rejected the tx")
	}
	return nil
}
