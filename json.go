package squads

import (
	"encoding/json"
	"fmt"
)

func (r *Renderer) renderJSON(in Input) error {
	if in == nil {
		r.log.Warn("render.unsupported_input", "type", "<nil>")
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.tree(in))
}

// tree converts in to values that encode as ordered JSON objects and YAML
// mappings: rows become lists, groups and sections become objects.
func (r *Renderer) tree(in Input) any {
	switch v := in.(type) {
	case Rows:
		list := make([]any, len(v))
		for i, row := range v {
			list[i] = rowValue(row)
		}
		return list
	case Groups:
		m := make(orderedMap, 0, len(v.Groups))
		for _, g := range v.Groups {
			m = append(m, mapEntry{Key: g.Key, Value: r.tree(g.Rows)})
		}
		return m
	case Sections:
		m := make(orderedMap, 0, len(v.Sections))
		for _, s := range v.Sections {
			inner := make(orderedMap, 0, len(s.Entries))
			for _, e := range s.Entries {
				if _, ok := e.Value.(Rows); !ok && e.Value != nil {
					r.log.Warn("render.unexpected_entry", "section", s.Key, "entry", e.Key, "type", fmt.Sprintf("%T", e.Value))
				}
				inner = append(inner, mapEntry{Key: e.Key, Value: r.tree(e.Value)})
			}
			m = append(m, mapEntry{Key: s.Key, Value: inner})
		}
		return m
	default:
		return nil
	}
}

// rowValue keeps rows that know how to encode themselves (Player keeps its
// numbers) and falls back to string pairs otherwise.
func rowValue(row Mappable) any {
	if _, ok := row.(json.Marshaler); ok {
		return row
	}
	return pairsMap(row.Pairs())
}
