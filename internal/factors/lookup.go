package factors

import (
	"maps"
	"slices"
)

// Lookup is a read-only set of coefficients indexed by free-text keys.
//
// Lookups are total: Get never fails. A key that is not present resolves to
// the coefficient stored under fallbackKey when one is configured, otherwise
// to fallback (0 unless documented otherwise).
type Lookup struct {
	values      map[string]float64
	fallbackKey string
	fallback    float64
}

// newLookup copies values so callers cannot mutate the table after construction.
func newLookup(values map[string]float64) Lookup {
	return Lookup{values: maps.Clone(values)}
}

// newLookupWithFallbackKey returns a Lookup whose misses resolve to values[key].
func newLookupWithFallbackKey(values map[string]float64, key string) Lookup {
	l := newLookup(values)
	l.fallbackKey = key
	return l
}

// Get returns the coefficient for key, or the lookup's fallback.
func (l Lookup) Get(key string) float64 {
	if v, ok := l.values[key]; ok {
		return v
	}
	return l.Fallback()
}

// Value returns the coefficient for key and whether the key is known.
func (l Lookup) Value(key string) (float64, bool) {
	v, ok := l.values[key]
	return v, ok
}

// Has reports whether key is present.
func (l Lookup) Has(key string) bool {
	_, ok := l.values[key]
	return ok
}

// Fallback returns the value Get resolves to for unknown keys.
func (l Lookup) Fallback() float64 {
	if l.fallbackKey != "" {
		return l.values[l.fallbackKey]
	}
	return l.fallback
}

// FallbackKey returns the key unknown lookups resolve to, or "" when the
// fallback is a plain value.
func (l Lookup) FallbackKey() string {
	return l.fallbackKey
}

// Keys returns the known keys in sorted order.
func (l Lookup) Keys() []string {
	return slices.Sorted(maps.Keys(l.values))
}

// Len returns the number of known keys.
func (l Lookup) Len() int {
	return len(l.values)
}

// with returns a copy of l with overrides applied on top.
func (l Lookup) with(overrides map[string]float64) Lookup {
	out := Lookup{
		values:      maps.Clone(l.values),
		fallbackKey: l.fallbackKey,
		fallback:    l.fallback,
	}
	if out.values == nil {
		out.values = make(map[string]float64, len(overrides))
	}
	maps.Copy(out.values, overrides)
	return out
}

// Nested is a two-level lookup, e.g. aviation scope → travel class → factor.
// Unknown groups resolve to fallbackGroup; unknown keys resolve through the
// group's own Lookup fallback.
type Nested struct {
	groups        map[string]Lookup
	fallbackGroup string
}

func newNested(groups map[string]Lookup, fallbackGroup string) Nested {
	return Nested{groups: maps.Clone(groups), fallbackGroup: fallbackGroup}
}

// Get returns the coefficient for group and key.
func (n Nested) Get(group, key string) float64 {
	return n.Group(group).Get(key)
}

// Group returns the Lookup for group, or the fallback group when unknown.
// An unknown group with no fallback yields an empty Lookup (every key is 0).
func (n Nested) Group(group string) Lookup {
	if g, ok := n.groups[group]; ok {
		return g
	}
	return n.groups[n.fallbackGroup]
}

// Groups returns the known group names in sorted order.
func (n Nested) Groups() []string {
	return slices.Sorted(maps.Keys(n.groups))
}

// with returns a copy of n with per-group overrides applied.
func (n Nested) with(overrides map[string]map[string]float64) Nested {
	out := Nested{groups: maps.Clone(n.groups), fallbackGroup: n.fallbackGroup}
	if out.groups == nil {
		out.groups = make(map[string]Lookup, len(overrides))
	}
	for group, values := range overrides {
		base, ok := out.groups[group]
		if !ok {
			// New groups inherit the fallback key convention of the default group.
			base = Lookup{fallbackKey: out.groups[out.fallbackGroup].fallbackKey}
		}
		out.groups[group] = base.with(values)
	}
	return out
}
