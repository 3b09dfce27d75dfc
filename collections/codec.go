package collections

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	b, err := json.Marshal(c.items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return b, nil
}

// FromJSON decodes a JSON array into a Collection. Decoding into
// Collection[any] or Collection[map[string]any] yields values every selector
// understands.
//
//	users, err := collections.FromJSON[map[string]any](data)
//	admins := users.Where("role", "admin")
func FromJSON[T any](data []byte) (*Collection[T], error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: JSON: %v", ErrDecode, err)
	}
	return wrap(items), nil
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// ToYAML serialises the collection items to a YAML sequence.
func (c *Collection[T]) ToYAML() ([]byte, error) {
	b, err := yaml.Marshal(c.items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return b, nil
}

// FromYAML decodes a YAML sequence into a Collection. Mappings decode to
// map[string]any when T is any.
//
//	steps, err := collections.FromYAML[any](data)
//	slow := steps.Filter(func(s any) bool { … })
func FromYAML[T any](data []byte) (*Collection[T], error) {
	var items []T
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: YAML: %v", ErrDecode, err)
	}
	return wrap(items), nil
}
