package squads

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/squads.yaml
var squadsYAML []byte

// DefaultFixture returns the built-in squad records.
func DefaultFixture() ([]RawRecord, error) {
	return DecodeFixture(bytes.NewReader(squadsYAML))
}

// DecodeFixture reads a YAML sequence of positional records. An empty
// document yields no records. Unquoted dates and timestamps are kept as the
// text written in the file. Record lengths are not checked here; see
// [Normalize].
func DecodeFixture(r io.Reader) ([]RawRecord, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	timestampsAsText(&doc)

	var records []RawRecord
	if err := doc.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	return records, nil
}

// timestampsAsText retags implicit timestamp scalars as strings so they
// decode to their source text instead of time.Time.
func timestampsAsText(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		n.Tag = "!!str"
		return
	}
	for _, c := range n.Content {
		timestampsAsText(c)
	}
}
