package squads

import (
	"fmt"
	"io"
	"strings"
)

func (r *Renderer) renderMarkdown(in Input) error {
	switch v := in.(type) {
	case Rows:
		if v.empty() {
			return writeMarkdownNotice(r.w, "", noDataToDisplay)
		}
		return writeMarkdown(r.w, v)
	case Groups:
		if len(v.Groups) == 0 {
			return writeMarkdownNotice(r.w, "", noDataToDisplay)
		}
		for _, g := range v.Groups {
			if g.Rows.empty() {
				if err := writeMarkdownNotice(r.w, g.Key, noData); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(r.w, "## %s\n\n", g.Key); err != nil {
				return err
			}
			if err := writeMarkdown(r.w, g.Rows); err != nil {
				return err
			}
		}
		return nil
	case Sections:
		if len(v.Sections) == 0 {
			return writeMarkdownNotice(r.w, "", noDataToDisplay)
		}
		for _, s := range v.Sections {
			if _, err := fmt.Fprintf(r.w, "## %s\n\n", s.Key); err != nil {
				return err
			}
			for _, e := range s.Entries {
				rows, ok := e.Value.(Rows)
				var err error
				switch {
				case e.Value == nil || (ok && rows.empty()):
					err = writeMarkdownNotice(r.w, e.Key, noData)
				case !ok:
					r.log.Warn("render.unexpected_entry", "section", s.Key, "entry", e.Key, "type", fmt.Sprintf("%T", e.Value))
					err = writeMarkdownNotice(r.w, e.Key, unexpected)
				default:
					if _, err = fmt.Fprintf(r.w, "### %s\n\n", e.Key); err == nil {
						err = writeMarkdown(r.w, rows)
					}
				}
				if err != nil {
					return err
				}
			}
		}
		return nil
	default:
		r.log.Warn("render.unsupported_input", "type", fmt.Sprintf("%T", in))
		_, err := fmt.Fprintf(r.w, "**Error:** %s\n\n", unexpected)
		return err
	}
}

func writeMarkdownNotice(w io.Writer, key, msg string) error {
	var err error
	if key == "" {
		_, err = fmt.Fprintf(w, "_%s_\n\n", msg)
	} else {
		_, err = fmt.Fprintf(w, "**%s**: _%s_\n\n", key, msg)
	}
	return err
}

func writeMarkdown(w io.Writer, rows Rows) error {
	header, cells := tabulate(rows)
	numCols := len(header)
	for _, row := range cells {
		for i := range row {
			row[i] = strings.ReplaceAll(row[i], "|", `\|`)
		}
	}

	// Column widths are at least 3 to fit the alignment markers.
	widths := computeWidths(numCols, header, cells)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	aligns := numericAligns(cells, numCols)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range cells {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
