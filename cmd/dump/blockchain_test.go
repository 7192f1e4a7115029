package main

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestDecodeHolder(t *testing.T) {
	acc := util.Uint160{1, 2, 3}

	// holders iterator items are key-value structs, the same shape
	// storage.Find produces without KeysOnly/ValuesOnly flags
	account, balance, err := decodeHolder(stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray(acc.BytesBE()),
		stackitem.Make(100),
	}))
	require.NoError(t, err)
	require.Equal(t, acc, account)
	require.Equal(t, big.NewInt(100), balance)

	t.Run("not a key-value pair", func(t *testing.T) {
		_, _, err := decodeHolder(stackitem.NewByteArray(acc.BytesBE()))
		require.Error(t, err)
	})

	t.Run("malformed account key", func(t *testing.T) {
		_, _, err := decodeHolder(stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray([]byte{1, 2, 3}),
			stackitem.Make(100),
		}))
		require.Error(t, err)
	})

	t.Run("non-integer balance", func(t *testing.T) {
		_, _, err := decodeHolder(stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray(acc.BytesBE()),
			stackitem.NewArray(nil),
		}))
		require.Error(t, err)
	})
}
