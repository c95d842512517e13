package squads

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrInvalidFixture    = errors.New("invalid fixture")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedBorder = errors.New("unsupported border style")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{Table, Markdown, CSV, TSV, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// human reports whether f is meant for people rather than programs.
// Headings and notices are only written for human formats.
func (f Format) human() bool {
	return f == Table || f == Markdown
}

// Mappable provides ordered key-value pairs. It is the row type accepted by
// the renderer.
type Mappable interface {
	Pairs() []KeyValue
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// Record is a free-form ordered row.
type Record []KeyValue

// Pairs returns the record itself.
func (r Record) Pairs() []KeyValue { return r }

// MarshalJSON encodes the record as an object in key order.
func (r Record) MarshalJSON() ([]byte, error) { return pairsMap(r).MarshalJSON() }

// MarshalYAML encodes the record as a mapping in key order.
func (r Record) MarshalYAML() (any, error) { return pairsMap(r).MarshalYAML() }

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[BorderStyle]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorder parses a border style name such as "rounded" or "ascii".
func ParseBorder(s string) (BorderStyle, error) {
	for b, name := range borderNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)
