// Package propertyset implements an immutable map of string keys to one or
// more string values.
//
// A PropertySet remembers the order in which keys were first seen and the
// order of the values of each key. Property sets are usually built from the
// key-values found in a configuration source, and several sources can be
// layered with CombinedWith, where the later source takes precedence.
//
// Every operation is read-only, so a PropertySet may be shared between
// goroutines without synchronization.
package propertyset

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	log "github.com/finkit/finkit/internal/logging"
	"github.com/finkit/finkit/pkg/genutil"
	"github.com/finkit/finkit/pkg/genutil/mapz"
)

// Empty is the property set without keys.
var Empty = &PropertySet{keyValues: emptyKeyValues}

var emptyKeyValues = mapz.NewMultiMap[string, string]().AsReadOnly()

// PropertySet is an immutable map of key to values. Multiple values may be
// associated with each key.
//
// The zero value is an empty property set.
type PropertySet struct {
	keyValues mapz.ReadOnlyMultimap[string, string]
}

// Pair is a single key-value pair.
type Pair struct {
	Key   string
	Value string
}

// Of returns a property set with one value for each key of the map.
//
// Go maps are unordered, so the keys of the returned set are in ascending
// order.
func Of(keyValues map[string]string) (*PropertySet, error) {
	if keyValues == nil {
		return nil, newMissingArgumentErr("keyValues")
	}

	mm := mapz.NewMultiMap[string, string]()
	for _, key := range slices.Sorted(maps.Keys(keyValues)) {
		mm.Add(key, keyValues[key])
	}
	return fromMultiMap(mm), nil
}

// OfLists returns a property set with the values of each key of the map.
// Keys whose list is empty are left out.
//
// Go maps are unordered, so the keys of the returned set are in ascending
// order; the values of each key keep the order of the list.
func OfLists(keyValues map[string][]string) (*PropertySet, error) {
	if keyValues == nil {
		return nil, newMissingArgumentErr("keyValues")
	}

	mm := mapz.NewMultiMap[string, string]()
	for _, key := range slices.Sorted(maps.Keys(keyValues)) {
		for _, value := range keyValues[key] {
			mm.Add(key, value)
		}
	}
	return fromMultiMap(mm), nil
}

// OfMultimap returns a property set holding every key-value pair of the
// multimap, in the order of the multimap.
func OfMultimap(keyValues mapz.ReadOnlyMultimap[string, string]) (*PropertySet, error) {
	if keyValues == nil {
		return nil, newMissingArgumentErr("keyValues")
	}
	if mm, ok := keyValues.(*mapz.MultiMap[string, string]); ok && mm == nil {
		return nil, newMissingArgumentErr("keyValues")
	}

	mm := mapz.NewMultiMap[string, string]()
	for key, values := range keyValues.All() {
		for _, value := range values {
			mm.Add(key, value)
		}
	}
	return fromMultiMap(mm), nil
}

// OfPairs returns a property set holding the pairs in order. A key that is
// repeated collects all of its values.
func OfPairs(pairs ...Pair) *PropertySet {
	mm := mapz.NewMultiMap[string, string]()
	for _, pair := range pairs {
		mm.Add(pair.Key, pair.Value)
	}
	return fromMultiMap(mm)
}

func fromMultiMap(mm *mapz.MultiMap[string, string]) *PropertySet {
	if mm.IsEmpty() {
		return Empty
	}
	return &PropertySet{keyValues: mm.AsReadOnly()}
}

func (ps *PropertySet) kv() mapz.ReadOnlyMultimap[string, string] {
	if ps == nil || ps.keyValues == nil {
		return emptyKeyValues
	}
	return ps.keyValues
}

// Keys returns the keys of the property set, in the order of the input data.
func (ps *PropertySet) Keys() []string {
	return ps.kv().Keys()
}

// AsMap returns a read-only view of the property set.
//
// The iteration order of the map matches that of the input data.
func (ps *PropertySet) AsMap() mapz.ReadOnlyMultimap[string, string] {
	return ps.kv()
}

// All iterates over each key and a copy of its values, in key order.
func (ps *PropertySet) All() iter.Seq2[string, []string] {
	return ps.kv().All()
}

// IsEmpty returns true if the property set has no keys.
func (ps *PropertySet) IsEmpty() bool {
	return ps.kv().IsEmpty()
}

// Len returns the number of keys.
func (ps *PropertySet) Len() int {
	return ps.kv().Len()
}

// Contains returns true if the key has at least one value.
func (ps *PropertySet) Contains(key string) bool {
	return ps.kv().Has(key)
}

// GetValue returns the single value associated with the key.
//
// An InvalidArgumentError is returned with reason UnknownKey if the key has no
// value, or MultipleValues if it has more than one.
func (ps *PropertySet) GetValue(key string) (string, error) {
	values, _ := ps.kv().Get(key)
	switch len(values) {
	case 0:
		return "", newUnknownKeyErr(key)
	case 1:
		return values[0], nil
	default:
		return "", newMultipleValuesErr(key, len(values))
	}
}

// GetValueOrDefault is GetValue, returning the fallback for an unknown key.
// A key with several values is still an error.
func (ps *PropertySet) GetValueOrDefault(key, fallback string) (string, error) {
	value, err := ps.GetValue(key)
	if IsUnknownKey(err) {
		return fallback, nil
	}
	return value, err
}

// GetValueList returns the values associated with the key, in the order of
// the input data. The list is empty if the key is unknown.
func (ps *PropertySet) GetValueList(key string) []string {
	values, _ := ps.kv().Get(key)
	return values
}

// CombinedWith returns the union of this property set and the other, where
// the other takes precedence.
//
// For a key present in both, the values of the other replace the values of
// this set entirely, and the key keeps its position in this set. Keys found
// only in the other are placed after the keys of this set.
func (ps *PropertySet) CombinedWith(other *PropertySet) (*PropertySet, error) {
	if other == nil {
		return nil, newMissingArgumentErr("other")
	}
	if ps == nil {
		ps = Empty
	}

	if other.IsEmpty() {
		log.Trace().Int("keys", ps.Len()).Msg("combining with empty property set")
		return ps, nil
	}
	if ps.IsEmpty() {
		log.Trace().Int("keys", other.Len()).Msg("combining empty property set")
		return other, nil
	}

	combined := mapz.NewMultiMapWithCap[string, string](genutil.MustEnsureUInt32(ps.Len() + other.Len()))
	for key, values := range ps.All() {
		combined.Set(key, values)
	}
	for key, values := range other.All() {
		combined.Set(key, values)
	}
	return &PropertySet{keyValues: combined.AsReadOnly()}, nil
}

// Combine layers the property sets from left to right, so that a later set
// takes precedence over the earlier ones.
func Combine(sets ...*PropertySet) (*PropertySet, error) {
	combined := Empty
	for i, set := range sets {
		next, err := combined.CombinedWith(set)
		if err != nil {
			return nil, fmt.Errorf("property set at index %d: %w", i, err)
		}
		combined = next
	}
	return combined, nil
}
