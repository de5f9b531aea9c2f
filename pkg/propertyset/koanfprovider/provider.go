// Package koanfprovider bridges property sets and koanf, so that a property
// set can be loaded as a koanf configuration layer and a koanf instance, such
// as one populated from the environment, can be read back as a property set.
package koanfprovider

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	log "github.com/finkit/finkit/internal/logging"
	"github.com/finkit/finkit/pkg/propertyset"
)

// ErrReadBytesNotSupported is returned by PSProvider.ReadBytes; koanf must be
// given a nil parser when loading from a property set.
var ErrReadBytesNotSupported = errors.New("property set provider does not support ReadBytes")

// ErrConflictingKeys is returned by PSProvider.Read when one key is a path
// prefix of another, such as "db" and "db.host" with delimiter ".".
var ErrConflictingKeys = errors.New("conflicting property set keys")

// DefaultDelim is the key path delimiter used when none is given.
const DefaultDelim = "."

// PSProvider implements koanf.Provider over a property set.
type PSProvider struct {
	ps    *propertyset.PropertySet
	delim string
}

var _ koanf.Provider = (*PSProvider)(nil)

// Provider returns a koanf provider for the property set. Keys are split into
// a nested configuration on delim; an empty delim keeps them flat.
func Provider(ps *propertyset.PropertySet, delim string) *PSProvider {
	return &PSProvider{ps: ps, delim: delim}
}

// ReadBytes is not supported.
func (p *PSProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read returns the property set as a nested configuration map. A key with a
// single value maps to a string, a key with several values to a []string.
func (p *PSProvider) Read() (map[string]any, error) {
	if p.ps == nil {
		return nil, fmt.Errorf("%w: property set is nil", propertyset.ErrInvalidArgument)
	}

	flat := make(map[string]any, p.ps.Len())
	for key, values := range p.ps.All() {
		if len(values) == 1 {
			flat[key] = values[0]
		} else {
			flat[key] = values
		}
	}

	if p.delim == "" {
		return flat, nil
	}

	if err := checkConflicts(p.ps.Keys(), p.delim); err != nil {
		return nil, err
	}
	return maps.Unflatten(flat, p.delim), nil
}

func checkConflicts(keys []string, delim string) error {
	for _, key := range keys {
		for _, other := range keys {
			if strings.HasPrefix(other, key+delim) {
				return fmt.Errorf("%w: %q is a parent of %q", ErrConflictingKeys, key, other)
			}
		}
	}
	return nil
}

// FromKoanf returns the flattened configuration of the koanf instance as a
// property set, with keys in ascending order. Slices become keys with
// several values and other scalars are formatted as strings.
func FromKoanf(k *koanf.Koanf) (*propertyset.PropertySet, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: koanf instance is nil", propertyset.ErrInvalidArgument)
	}

	pairs := make([]propertyset.Pair, 0, len(k.Keys()))
	for _, key := range k.Keys() {
		for _, value := range stringValues(k.Get(key)) {
			pairs = append(pairs, propertyset.Pair{Key: key, Value: value})
		}
	}
	return propertyset.OfPairs(pairs...), nil
}

func stringValues(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			values = append(values, fmt.Sprint(item))
		}
		return values
	default:
		return []string{fmt.Sprint(v)}
	}
}

// FromEnv reads the environment variables starting with prefix into a
// property set. PREFIX_SECTION_KEY becomes the key section<delim>key, and
// an empty delim defaults to DefaultDelim.
func FromEnv(prefix, delim string) (*propertyset.PropertySet, error) {
	if delim == "" {
		delim = DefaultDelim
	}

	envTransformer := func(s string) string {
		s = strings.TrimPrefix(s, prefix)
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "_", delim)
		return s
	}

	k := koanf.New(delim)
	if err := k.Load(env.Provider(prefix, delim, envTransformer), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	ps, err := FromKoanf(k)
	if err != nil {
		return nil, err
	}

	logger := log.Component("koanfprovider")
	logger.Debug().Str("prefix", prefix).Int("keys", ps.Len()).Msg("loaded property set from environment")
	return ps, nil
}
