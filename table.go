package squads

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// table is one fully tabulated grid ready to draw. Style functions wrap
// already padded cells, so ANSI codes never affect width calculations.
type table struct {
	title      string
	titleStyle func(string) string
	header     []string
	rows       [][]string
	aligns     []Alignment
	styles     []func(string) string
	border     BorderStyle
}

// tabulate lays rows out under the keys of the first row. Keys missing from
// a later row become empty cells; keys the first row lacks are dropped.
func tabulate(rows Rows) (header []string, cells [][]string) {
	if len(rows) == 0 {
		return nil, nil
	}
	for _, kv := range rows[0].Pairs() {
		header = append(header, kv.Key)
	}
	cells = make([][]string, len(rows))
	for i, row := range rows {
		values := make(map[string]string, len(header))
		for _, kv := range row.Pairs() {
			values[kv.Key] = kv.Value
		}
		line := make([]string, len(header))
		for j, key := range header {
			line[j] = values[key]
		}
		cells[i] = line
	}
	return header, cells
}

// numericAligns right-aligns columns whose non-empty cells are all integers.
func numericAligns(rows [][]string, numCols int) []Alignment {
	aligns := make([]Alignment, numCols)
	for col := range numCols {
		seen := false
		numeric := true
		for _, row := range rows {
			if col >= len(row) || row[col] == "" {
				continue
			}
			seen = true
			if _, err := strconv.Atoi(row[col]); err != nil {
				numeric = false
				break
			}
		}
		if seen && numeric {
			aligns[col] = AlignRight
		}
	}
	return aligns
}

func (t table) write(w io.Writer) error {
	numCols := colCount(t.header, t.rows)
	widths := computeWidths(numCols, t.header, t.rows)
	aligns := extendAligns(t.aligns, numCols)
	styles := extendStyles(t.styles, numCols)
	titleStyle := t.titleStyle
	if titleStyle == nil {
		titleStyle = func(s string) string { return s }
	}

	if t.border == BorderNone {
		return renderPlainTable(w, t.title, titleStyle, t.header, t.rows, widths, aligns, styles)
	}
	fitTitle(widths, t.title)
	return renderBorderedTable(w, t.title, titleStyle, t.header, t.rows, widths, aligns, t.border, styles)
}

func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// fitTitle widens the last column until title fits between the borders.
func fitTitle(widths []int, title string) {
	if title == "" || len(widths) == 0 {
		return
	}
	inner := tableInnerWidth(widths) - 2
	if need := runewidth.StringWidth(title); need > inner {
		widths[len(widths)-1] += need - inner
	}
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func extendStyles(styles []func(string) string, numCols int) []func(string) string {
	if len(styles) >= numCols {
		return styles[:numCols]
	}
	extended := make([]func(string) string, numCols)
	copy(extended, styles)
	return extended
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, title string, titleStyle func(string) string, header []string, rows [][]string, widths []int, aligns []Alignment, styles []func(string) string) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, titleStyle(title)); err != nil {
			return err
		}
	}
	if len(header) > 0 {
		if err := writePlainRow(w, header, widths, aligns, styles); err != nil {
			return err
		}
		if err := writePlainSep(w, widths); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns, styles); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment, styles []func(string) string) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		formatted := alignCell(cell, width, aligns[i])
		if i == len(widths)-1 {
			formatted = strings.TrimRight(formatted, " ")
		}
		if styles[i] != nil {
			formatted = styles[i](formatted)
		}
		parts[i] = formatted
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, title string, titleStyle func(string) string, header []string, rows [][]string, widths []int, aligns []Alignment, style BorderStyle, styles []func(string) string) error {
	bc, ok := borderSets[style]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedBorder, style)
	}

	if title != "" {
		// Full-width top border (no column separators).
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2 // 1-space padding on each side
		padded := titleStyle(alignCell(title, inner, AlignCenter))
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	if len(header) > 0 {
		if err := drawBorderedRow(w, header, widths, aligns, bc.vertical, styles); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical, styles); err != nil {
			return err
		}
	}

	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the width between the outer vertical borders.
// Each cell takes its width plus one space of padding on either side, and
// neighbouring cells share one vertical border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string, styles []func(string) string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		formatted := alignCell(cell, width, aligns[i])
		if styles[i] != nil {
			formatted = styles[i](formatted)
		}
		sb.WriteString(formatted)
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
