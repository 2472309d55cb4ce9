package maps

import (
	"encoding/json"
	"fmt"

	"github.com/amp-labs/sortedcol/sortable"
)

// entryJSON is one (key, value) pair as it appears on the wire. Encoding as
// an array of pairs, rather than a JSON object, lets K be any marshalable
// type, not just one whose JSON form happens to be a valid object key.
type entryJSON[K sortable.Sortable[K], V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// MarshalJSON encodes the map as a JSON array of {"key":...,"value":...}
// objects, in ascending key order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	entries := make([]entryJSON[K, V], 0, m.Len())

	for k, v := range m.Iter() {
		entries = append(entries, entryJSON[K, V]{Key: k, Value: v})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("maps: marshal: %w", err)
	}

	return data, nil
}

// UnmarshalJSON replaces the map's contents with the entries decoded from
// data, which must be an array in the form MarshalJSON produces. Entries are
// inserted in array order, so a repeated key keeps its last occurrence.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var entries []entryJSON[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("maps: unmarshal: %w", err)
	}

	m.Clear()

	for _, e := range entries {
		m.tree.Insert(e.Key, e.Value)
	}

	return nil
}
