package squads

import (
	"encoding/csv"
	"fmt"
)

// flatRow is a row with the group keys it was filed under.
type flatRow struct {
	keys []string
	row  Mappable
}

// renderDelimited writes in as CSV (or TSV) with one line per row. Group and
// section keys become leading columns named by the grouping labels, so the
// output round-trips to (country, position, player) triples.
func (r *Renderer) renderDelimited(in Input, comma rune) error {
	var labels []string
	var flat []flatRow
	switch v := in.(type) {
	case Rows:
		for _, row := range v {
			flat = append(flat, flatRow{row: row})
		}
	case Groups:
		labels = []string{v.Label}
		for _, g := range v.Groups {
			for _, row := range g.Rows {
				flat = append(flat, flatRow{keys: []string{g.Key}, row: row})
			}
		}
	case Sections:
		labels = []string{v.Label, v.SubLabel}
		for _, s := range v.Sections {
			for _, e := range s.Entries {
				rows, ok := e.Value.(Rows)
				if !ok {
					if e.Value != nil {
						r.log.Warn("render.unexpected_entry", "section", s.Key, "entry", e.Key, "type", fmt.Sprintf("%T", e.Value))
					}
					continue
				}
				for _, row := range rows {
					flat = append(flat, flatRow{keys: []string{s.Key, e.Key}, row: row})
				}
			}
		}
	default:
		r.log.Warn("render.unsupported_input", "type", fmt.Sprintf("%T", in))
		return nil
	}
	if len(flat) == 0 {
		return nil
	}

	rows := make(Rows, len(flat))
	for i, f := range flat {
		rows[i] = f.row
	}
	header, cells := tabulate(rows)
	if len(labels)+len(header) == 0 {
		return nil
	}

	if r.written > 0 {
		if _, err := fmt.Fprintln(r.w); err != nil {
			return err
		}
	}
	cw := csv.NewWriter(r.w)
	cw.Comma = comma
	if err := cw.Write(append(labels, header...)); err != nil {
		return err
	}
	for i, f := range flat {
		if err := cw.Write(append(append([]string{}, f.keys...), cells[i]...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
