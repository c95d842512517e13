package squads

import (
	"fmt"
)

// Field identifies one labeled value of a [Player]. The order of the
// constants is the positional layout of a [RawRecord].
type Field int

const (
	FieldNumber Field = iota
	FieldPosition
	FieldName
	FieldDateOfBirth
	FieldCaps
	FieldClub
	FieldCountry
	FieldClubCountry
	FieldYear

	fieldCount
)

var fieldNames = [fieldCount]string{
	"number",
	"position",
	"name",
	"date_of_birth",
	"caps",
	"club",
	"country",
	"club_country",
	"year",
}

// String returns the field label used as column header and object key.
func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fields returns all player fields in record order.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// RawRecord is a positional player tuple: number, position, name,
// date_of_birth, caps, club, country, club_country, year. Values are strings
// or numbers; only the order carries meaning.
type RawRecord []any

// Player is a labeled player record. It always holds exactly the fields
// returned by [Fields], in that order, and is never modified after
// construction.
type Player struct {
	values [fieldCount]any
}

// NewPlayer labels a single raw record. Records shorter than the field count
// are rejected with [ErrMalformedRecord]; trailing extra values are ignored.
func NewPlayer(rec RawRecord) (Player, error) {
	if len(rec) < int(fieldCount) {
		return Player{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(rec), int(fieldCount))
	}
	var p Player
	copy(p.values[:], rec)
	return p, nil
}

// Normalize labels every raw record, preserving order. The first malformed
// record aborts normalization.
func Normalize(records []RawRecord) ([]Player, error) {
	players := make([]Player, 0, len(records))
	for i, rec := range records {
		p, err := NewPlayer(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		players = append(players, p)
	}
	return players, nil
}

// Get returns the raw value of field f.
func (p Player) Get(f Field) any {
	if f < 0 || f >= fieldCount {
		return nil
	}
	return p.values[f]
}

// Text returns field f formatted for display.
func (p Player) Text(f Field) string { return formatValue(p.Get(f)) }

// Name returns the player's name.
func (p Player) Name() string { return p.Text(FieldName) }

// Position returns the playing position, the key used by [GroupByPosition].
func (p Player) Position() string { return p.Text(FieldPosition) }

// Country returns the national team, the outer key of
// [GroupByCountryThenPosition].
func (p Player) Country() string { return p.Text(FieldCountry) }

// Pairs returns the player's fields as display strings, in record order.
func (p Player) Pairs() []KeyValue {
	kvs := make([]KeyValue, fieldCount)
	for i, v := range p.values {
		kvs[i] = KeyValue{Key: fieldNames[i], Value: formatValue(v)}
	}
	return kvs
}

// MarshalJSON encodes the player as an object with keys in record order.
// Numbers stay numbers.
func (p Player) MarshalJSON() ([]byte, error) { return p.ordered().MarshalJSON() }

// MarshalYAML encodes the player as a mapping with keys in record order.
func (p Player) MarshalYAML() (any, error) { return p.ordered().MarshalYAML() }

func (p Player) ordered() orderedMap {
	m := make(orderedMap, fieldCount)
	for i, v := range p.values {
		m[i] = mapEntry{Key: fieldNames[i], Value: v}
	}
	return m
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
