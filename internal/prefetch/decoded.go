package prefetch

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodedBridge is a Bridge as seen by the client after hydration: values are
// still raw JSON until a hook asks for them with its own type.
type DecodedBridge struct {
	entries map[Key]jsoniter.RawMessage
}

// DecodeBridge parses the JSON object produced by Bridge.MarshalJSON.
// A null document decodes to an empty bridge.
func DecodeBridge(data []byte) (*DecodedBridge, error) {
	raw := map[string]jsoniter.RawMessage{}
	if len(data) > 0 {
		if err := jsonAPI.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}

	entries := make(map[Key]jsoniter.RawMessage, len(raw))
	for key, value := range raw {
		if key == "" || len(value) == 0 || string(value) == "null" {
			continue
		}
		entries[Key(key)] = value
	}
	return &DecodedBridge{entries: entries}, nil
}

func (d *DecodedBridge) Raw(key Key) ([]byte, bool) {
	if d == nil || key.IsZero() {
		return nil, false
	}
	value, ok := d.entries[key]
	return value, ok
}

func (d *DecodedBridge) Has(key Key) bool {
	_, ok := d.Raw(key)
	return ok
}

func (d *DecodedBridge) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

func (d *DecodedBridge) Keys() []Key {
	if d == nil {
		return nil
	}
	keys := make([]Key, 0, len(d.entries))
	for key := range d.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Decode unmarshals the entry at key into T. A value that does not decode
// is treated as absent.
func Decode[T any](d *DecodedBridge, key Key) (T, bool) {
	var out T
	raw, ok := d.Raw(key)
	if !ok {
		return out, false
	}
	if err := jsonAPI.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
