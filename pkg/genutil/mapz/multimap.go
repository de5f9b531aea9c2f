package mapz

import (
	"iter"
	"slices"
)

// ReadOnlyMultimap is a read-only multimap.
//
// Keys are reported in the order in which they were first added and the
// values of each key in the order in which they were added.
type ReadOnlyMultimap[T comparable, Q any] interface {
	// Has returns true if the key is found in the map.
	Has(key T) bool

	// Get returns the values for the given key in the map and whether the key
	// existed.
	// If the key does not exist, an empty slice is returned.
	Get(key T) ([]Q, bool)

	// IsEmpty returns true if the map is currently empty.
	IsEmpty() bool

	// Len returns the length of the map, e.g. the number of *keys* present.
	Len() int

	// Keys returns the keys of the map.
	Keys() []T

	// Values returns all values in the map.
	Values() []Q

	// CountOf returns the number of values stored for the given key.
	CountOf(key T) int

	// All iterates over each key and its values.
	All() iter.Seq2[T, []Q]
}

// NewMultiMap initializes a new MultiMap.
func NewMultiMap[T comparable, Q any]() *MultiMap[T, Q] {
	return &MultiMap[T, Q]{keys: []T{}, items: map[T][]Q{}}
}

// NewMultiMapWithCap initializes with the provided capacity for the top-level
// map.
func NewMultiMapWithCap[T comparable, Q any](capacity uint32) *MultiMap[T, Q] {
	return &MultiMap[T, Q]{
		keys:  make([]T, 0, capacity),
		items: make(map[T][]Q, capacity),
	}
}

// MultiMap represents a map that can contain 1 or more values for each key.
// Keys are kept in first-insertion order.
type MultiMap[T comparable, Q any] struct {
	keys  []T
	items map[T][]Q
}

// Add inserts the value into the map at the given key.
//
// If there exists an existing value, then this value is appended
// *without comparison*. Put another way, a value can be added twice, if this
// method is called twice for the same value.
func (mm *MultiMap[T, Q]) Add(key T, item Q) {
	if _, ok := mm.items[key]; !ok {
		mm.keys = append(mm.keys, key)
		mm.items[key] = []Q{}
	}

	mm.items[key] = append(mm.items[key], item)
}

// RemoveKey removes the given key from the map. The relative order of the
// remaining keys is unchanged.
func (mm *MultiMap[T, Q]) RemoveKey(key T) {
	if _, ok := mm.items[key]; !ok {
		return
	}

	delete(mm.items, key)
	mm.keys = slices.DeleteFunc(mm.keys, func(k T) bool { return k == key })
}

// Has returns true if the key is found in the map.
func (mm *MultiMap[T, Q]) Has(key T) bool {
	_, ok := mm.items[key]
	return ok
}

// Get returns the values stored in the map for the provided key and whether
// the key existed.
//
// If the key does not exist, an empty slice is returned.
func (mm *MultiMap[T, Q]) Get(key T) ([]Q, bool) {
	found, ok := mm.items[key]
	if !ok {
		return []Q{}, false
	}

	return slices.Clip(found), true
}

// Set replaces the values stored for the key with a copy of those provided.
//
// An existing key keeps its position; a new key is placed last. Setting an
// empty slice removes the key, since a key is only present while it has
// values.
func (mm *MultiMap[T, Q]) Set(key T, values []Q) {
	if len(values) == 0 {
		mm.RemoveKey(key)
		return
	}

	if _, ok := mm.items[key]; !ok {
		mm.keys = append(mm.keys, key)
	}
	mm.items[key] = slices.Clone(values)
}

// IsEmpty returns true if the map is currently empty.
func (mm *MultiMap[T, Q]) IsEmpty() bool { return len(mm.items) == 0 }

// Len returns the length of the map, e.g. the number of *keys* present.
func (mm *MultiMap[T, Q]) Len() int { return len(mm.items) }

// Keys returns the keys of the map.
func (mm *MultiMap[T, Q]) Keys() []T { return cloneKeys(mm.keys) }

// Values returns all values in the map.
func (mm *MultiMap[T, Q]) Values() []Q {
	return collectValues(mm.keys, mm.items)
}

// All iterates over each key and its values in key order.
func (mm *MultiMap[T, Q]) All() iter.Seq2[T, []Q] {
	return func(yield func(T, []Q) bool) {
		for _, key := range mm.keys {
			if !yield(key, slices.Clip(mm.items[key])) {
				return
			}
		}
	}
}

// CountOf returns the number of values stored for the given key.
func (mm *MultiMap[T, Q]) CountOf(key T) int {
	return len(mm.items[key])
}

// AsReadOnly returns a read-only *copy* of the mulitmap.
func (mm *MultiMap[T, Q]) AsReadOnly() ReadOnlyMultimap[T, Q] {
	keys, items := cloneEntries(mm.keys, mm.items)
	return readOnlyMultimap[T, Q]{keys: keys, items: items}
}

type readOnlyMultimap[T comparable, Q any] struct {
	keys  []T
	items map[T][]Q
}

// Has returns true if the key is found in the map.
func (mm readOnlyMultimap[T, Q]) Has(key T) bool {
	_, ok := mm.items[key]
	return ok
}

// Get returns the values for the given key in the map and whether the key existed. If the key
// does not exist, an empty slice is returned.
func (mm readOnlyMultimap[T, Q]) Get(key T) ([]Q, bool) {
	found, ok := mm.items[key]
	if !ok {
		return []Q{}, false
	}

	return slices.Clone(found), true
}

// IsEmpty returns true if the map is currently empty.
func (mm readOnlyMultimap[T, Q]) IsEmpty() bool { return len(mm.items) == 0 }

// Len returns the length of the map, e.g. the number of *keys* present.
func (mm readOnlyMultimap[T, Q]) Len() int { return len(mm.items) }

// Keys returns the keys of the map.
func (mm readOnlyMultimap[T, Q]) Keys() []T { return cloneKeys(mm.keys) }

// Values returns all values in the map.
func (mm readOnlyMultimap[T, Q]) Values() []Q {
	return collectValues(mm.keys, mm.items)
}

// CountOf returns the number of values stored for the given key.
func (mm readOnlyMultimap[T, Q]) CountOf(key T) int {
	return len(mm.items[key])
}

// All iterates over each key and a copy of its values in key order.
func (mm readOnlyMultimap[T, Q]) All() iter.Seq2[T, []Q] {
	return func(yield func(T, []Q) bool) {
		for _, key := range mm.keys {
			if !yield(key, slices.Clone(mm.items[key])) {
				return
			}
		}
	}
}

func collectValues[T comparable, Q any](keys []T, items map[T][]Q) []Q {
	values := make([]Q, 0, len(items)*2)
	for _, key := range keys {
		values = append(values, items[key]...)
	}
	return values
}

func cloneEntries[T comparable, Q any](keys []T, items map[T][]Q) ([]T, map[T][]Q) {
	clonedItems := make(map[T][]Q, len(items))
	for key, values := range items {
		clonedItems[key] = slices.Clone(values)
	}
	return cloneKeys(keys), clonedItems
}

// cloneKeys never returns nil, so an empty map reports an empty key list.
func cloneKeys[T comparable](keys []T) []T {
	return append(make([]T, 0, len(keys)), keys...)
}
