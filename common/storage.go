package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetList returns a deserialized list of byte slices stored under the given
// key. A missing key produces an empty list.
func GetList(ctx storage.Context, key any) [][]byte {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).([][]byte)
	}

	return [][]byte{}
}

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// ListContains reports whether the list has an element equal to item.
func ListContains(list [][]byte, item []byte) bool {
	for i := range list {
		if string(list[i]) == string(item) {
			return true
		}
	}

	return false
}

// ListRemove returns the list without the elements equal to item.
func ListRemove(list [][]byte, item []byte) [][]byte {
	result := [][]byte{}
	for i := range list {
		if string(list[i]) != string(item) {
			result = append(result, list[i])
		}
	}

	return result
}
