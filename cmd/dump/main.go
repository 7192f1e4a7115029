package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/adwait-network/adw-contract/rpc/token"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "Hash of the deployed token contract (LE hex, '0x' prefix allowed)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing token contract hash")
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(*contractHash, "0x"))
	if err != nil {
		log.Fatal(fmt.Errorf("decode token contract hash: %w", err))
	}

	err = _dump(*neoRPCEndpoint, h)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint string, contract util.Uint160) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	reader := token.NewReader(b.actor, contract)

	name, err := reader.Name()
	if err != nil {
		return fmt.Errorf("get token name: %w", err)
	}

	symbol, err := reader.Symbol()
	if err != nil {
		return fmt.Errorf("get token symbol: %w", err)
	}

	supply, err := reader.TotalSupply()
	if err != nil {
		return fmt.Errorf("get total supply: %w", err)
	}

	paused, err := reader.IsPaused()
	if err != nil {
		return fmt.Errorf("get pause state: %w", err)
	}

	log.Printf("Dumping '%s' (%s) balances at block #%d, total supply %s, paused=%t\n",
		name, symbol, b.currentBlock, supply, paused)

	holders, err := b.listHolders(reader)
	if err != nil {
		return fmt.Errorf("list token holders: %w", err)
	}

	sum := new(big.Int)

	for _, h := range holders {
		sum.Add(sum, h.balance)

		fmt.Printf("%s\t%s\n", address.Uint160ToString(h.account), h.balance)
	}

	if sum.Cmp(supply) != 0 {
		return fmt.Errorf("balance sheet does not add up: sum of %d balances is %s, total supply is %s",
			len(holders), sum, supply)
	}

	log.Printf("%d accounts hold '%s' tokens, balances sum up to the total supply\n", len(holders), symbol)

	return nil
}
