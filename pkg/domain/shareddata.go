package domain

import (
	"sort"

	"github.com/mitchellh/mapstructure"
)

// SharedData is the mutable bag one machine shares between all of its
// states. It lives for the lifetime of the machine; keys persist across
// transitions until a state explicitly deletes them. No schema is enforced.
type SharedData map[string]any

// NewSharedData creates an empty bag, optionally seeded from initial.
// The seed map is copied, not aliased.
func NewSharedData(initial map[string]any) SharedData {
	data := make(SharedData, len(initial))
	for k, v := range initial {
		data[k] = v
	}
	return data
}

// Set stores a value under key, replacing any previous value.
func (d SharedData) Set(key string, value any) {
	d[key] = value
}

// Get returns the value stored under key and whether it was present.
func (d SharedData) Get(key string) (any, bool) {
	v, ok := d[key]
	return v, ok
}

// Has reports whether key is present.
func (d SharedData) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Delete removes key from the bag.
func (d SharedData) Delete(key string) {
	delete(d, key)
}

// Len returns the number of keys currently stored.
func (d SharedData) Len() int {
	return len(d)
}

// Keys returns the stored keys in sorted order.
func (d SharedData) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Decode maps the bag onto a typed struct for hosts that want a
// compile-time view of the keys their states agree on.
func (d SharedData) Decode(out any) error {
	return mapstructure.Decode(map[string]any(d), out)
}
