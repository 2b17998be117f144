package prefetch

import (
	"sort"

	"github.com/bytedance/sonic"
)

// Bridge is the request-scoped map of prefetched values handed to the client
// for hydration. It is read-only once built.
type Bridge struct {
	entries map[Key]any
	keys    []Key
}

func EmptyBridge() *Bridge {
	return &Bridge{entries: map[Key]any{}}
}

// NewBridge copies entries, skipping zero keys and nil values.
func NewBridge(entries map[Key]any) *Bridge {
	copied := make(map[Key]any, len(entries))
	for key, value := range entries {
		copied[key] = value
	}
	return newBridge(copied)
}

func newBridge(entries map[Key]any) *Bridge {
	keys := make([]Key, 0, len(entries))
	for key, value := range entries {
		if key.IsZero() || value == nil {
			delete(entries, key)
			continue
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return &Bridge{entries: entries, keys: keys}
}

func (b *Bridge) Get(key Key) (any, bool) {
	if b == nil || key.IsZero() {
		return nil, false
	}
	value, ok := b.entries[key]
	return value, ok
}

func (b *Bridge) Has(key Key) bool {
	_, ok := b.Get(key)
	return ok
}

func (b *Bridge) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Keys returns the keys in sorted order.
func (b *Bridge) Keys() []Key {
	if b == nil {
		return nil
	}
	return append([]Key(nil), b.keys...)
}

// MarshalJSON encodes the bridge as a flat object with sorted keys.
func (b *Bridge) MarshalJSON() ([]byte, error) {
	if b == nil || len(b.entries) == 0 {
		return []byte("{}"), nil
	}
	out := make(map[string]any, len(b.entries))
	for key, value := range b.entries {
		out[string(key)] = value
	}
	return sonic.ConfigStd.Marshal(out)
}

// Lookup returns the value at key when it has type T.
func Lookup[T any](b *Bridge, key Key) (T, bool) {
	var zero T
	value, ok := b.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
