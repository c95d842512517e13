package squads

import (
	"iter"
)

// Grouping maps string keys to values and remembers the order in which keys
// were first added. A nil *Grouping is an empty grouping.
type Grouping[V any] struct {
	keys   []string
	values map[string]V
}

// PositionGrouping maps a position to its players.
type PositionGrouping = Grouping[[]Player]

// CountryGrouping maps a country to its players grouped by position.
type CountryGrouping = Grouping[*PositionGrouping]

func newGrouping[V any]() *Grouping[V] {
	return &Grouping[V]{values: make(map[string]V)}
}

// Len returns the number of keys.
func (g *Grouping[V]) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// Keys returns the keys in first-seen order.
func (g *Grouping[V]) Keys() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the value stored under key.
func (g *Grouping[V]) Get(key string) (V, bool) {
	if g == nil {
		var zero V
		return zero, false
	}
	v, ok := g.values[key]
	return v, ok
}

// All yields key/value pairs in first-seen key order.
func (g *Grouping[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if g == nil {
			return
		}
		for _, k := range g.keys {
			if !yield(k, g.values[k]) {
				return
			}
		}
	}
}

func (g *Grouping[V]) set(key string, v V) {
	if _, ok := g.values[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.values[key] = v
}

// MarshalJSON encodes the grouping as an object in key order.
func (g *Grouping[V]) MarshalJSON() ([]byte, error) { return g.ordered().MarshalJSON() }

// MarshalYAML encodes the grouping as a mapping in key order.
func (g *Grouping[V]) MarshalYAML() (any, error) { return g.ordered().MarshalYAML() }

func (g *Grouping[V]) ordered() orderedMap {
	m := make(orderedMap, 0, g.Len())
	for k, v := range g.All() {
		m = append(m, mapEntry{Key: k, Value: v})
	}
	return m
}

// GroupBy folds items into lists keyed by key(item). Keys keep the order of
// their first appearance and each list keeps input order.
func GroupBy[T any](items []T, key func(T) string) *Grouping[[]T] {
	g := newGrouping[[]T]()
	for _, item := range items {
		k := key(item)
		list, _ := g.Get(k)
		g.set(k, append(list, item))
	}
	return g
}

// GroupByPosition groups players by their position field.
func GroupByPosition(players []Player) *PositionGrouping {
	return GroupBy(players, Player.Position)
}

// GroupByCountryThenPosition groups players by country, then groups each
// country's players by position.
func GroupByCountryThenPosition(players []Player) *CountryGrouping {
	out := newGrouping[*PositionGrouping]()
	for country, members := range GroupBy(players, Player.Country).All() {
		out.set(country, GroupByPosition(members))
	}
	return out
}
