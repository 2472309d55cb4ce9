package set

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the set as a JSON array of its elements, in ascending
// order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	elems := make([]T, 0, s.Len())
	for v := range s.Iter() {
		elems = append(elems, v)
	}

	data, err := json.Marshal(elems)
	if err != nil {
		return nil, fmt.Errorf("set: marshal: %w", err)
	}

	return data, nil
}

// UnmarshalJSON replaces the set's contents with the elements decoded from
// data, which must be a JSON array as MarshalJSON produces.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("set: unmarshal: %w", err)
	}

	s.Clear()

	for _, v := range elems {
		s.Add(v)
	}

	return nil
}
