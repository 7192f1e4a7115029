package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/adwait-network/adw-contract/rpc/token"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// holderBalance is a single row of the token balance sheet.
type holderBalance struct {
	account util.Uint160
	balance *big.Int
}

// wrapper over the Neo RPC client providing blockchain services needed for
// current command.
type remoteBlockchain struct {
	rpc   *rpcclient.Client
	actor *actor.Actor

	currentBlock uint32
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockChain(blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	acc, err := wallet.NewAccount()
	if err != nil {
		return nil, fmt.Errorf("generate new Neo account: %w", err)
	}

	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return nil, fmt.Errorf("init actor: %w", err)
	}

	nLatestBlock, err := act.GetBlockCount()
	if err != nil {
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		actor:        act,
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// listHolders collects balances of all accounts holding tokens by traversing
// the contract's holders iterator session. The whole sheet comes from a
// single state snapshot.
func (x *remoteBlockchain) listHolders(reader *token.ContractReader) ([]holderBalance, error) {
	sessionID, iter, err := reader.Holders()
	if err != nil {
		return nil, fmt.Errorf("open holders iterator: %w", err)
	}

	defer func() {
		_ = x.actor.TerminateSession(sessionID)
	}()

	const pageSize = 100

	var res []holderBalance

	for {
		items, err := x.actor.TraverseIterator(sessionID, &iter, pageSize)
		if err != nil {
			return nil, fmt.Errorf("traverse holders iterator: %w", err)
		}

		for i := range items {
			account, balance, err := decodeHolder(items[i])
			if err != nil {
				return nil, fmt.Errorf("unexpected holder item: %w", err)
			}

			res = append(res, holderBalance{account, balance})
		}

		if len(items) < pageSize {
			return res, nil
		}
	}
}

// decodeHolder unpacks a single holders iterator item which is a key-value
// pair of the account and its balance.
func decodeHolder(item stackitem.Item) (util.Uint160, *big.Int, error) {
	kv, ok := item.Value().([]stackitem.Item)
	if !ok || len(kv) != 2 {
		return util.Uint160{}, nil, fmt.Errorf("not a key-value pair: %s", item.Type())
	}

	rawKey, err := kv[0].TryBytes()
	if err != nil {
		return util.Uint160{}, nil, fmt.Errorf("holder key: %w", err)
	}

	account, err := util.Uint160DecodeBytesBE(rawKey)
	if err != nil {
		return util.Uint160{}, nil, fmt.Errorf("decode holder account: %w", err)
	}

	balance, err := kv[1].TryInteger()
	if err != nil {
		return util.Uint160{}, nil, fmt.Errorf("holder balance: %w", err)
	}

	return account, balance, nil
}
