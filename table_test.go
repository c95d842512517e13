package squads

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func keepers() table {
	rows := [][]string{{"1", "Alisson"}, {"12", "Ederson"}}
	return table{
		title:  "GK",
		header: []string{"number", "name"},
		rows:   rows,
		aligns: numericAligns(rows, 2),
	}
}

func TestTableASCIIWithTitle(t *testing.T) {
	t.Parallel()
	tbl := keepers()
	tbl.border = BorderASCII
	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))
	want := "" +
		"+------------------+\n" +
		"|        GK        |\n" +
		"+--------+---------+\n" +
		"| number | name    |\n" +
		"+--------+---------+\n" +
		"|      1 | Alisson |\n" +
		"|     12 | Ederson |\n" +
		"+--------+---------+\n"
	assert.Equal(t, want, buf.String())
}

func TestTableRoundedWithoutTitle(t *testing.T) {
	t.Parallel()
	tbl := keepers()
	tbl.title = ""
	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "╭────────┬─────────╮", lines[0])
	assert.Equal(t, "│ number │ name    │", lines[1])
	assert.Equal(t, "╰────────┴─────────╯", lines[5])
}

func TestTablePlain(t *testing.T) {
	t.Parallel()
	tbl := keepers()
	tbl.border = BorderNone
	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))
	want := "" +
		"GK\n" +
		"number  name\n" +
		"------  -------\n" +
		"     1  Alisson\n" +
		"    12  Ederson\n"
	assert.Equal(t, want, buf.String())
}

func TestTableWidensForLongTitle(t *testing.T) {
	t.Parallel()
	tbl := table{
		title:  "Goalkeepers of Brazil",
		header: []string{"n"},
		rows:   [][]string{{"x"}},
		border: BorderASCII,
	}
	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))
	edge := "+" + strings.Repeat("-", 23) + "+\n"
	want := edge +
		"| Goalkeepers of Brazil |\n" +
		edge +
		"| n" + strings.Repeat(" ", 20) + " |\n" +
		edge +
		"| x" + strings.Repeat(" ", 20) + " |\n" +
		edge
	assert.Equal(t, want, buf.String())
}

func TestTableStylesWrapPaddedCells(t *testing.T) {
	t.Parallel()
	tbl := keepers()
	tbl.border = BorderASCII
	tbl.title = ""
	tbl.styles = []func(string) string{nil, func(s string) string { return "<" + s + ">" }}
	tbl.titleStyle = func(s string) string { return "*" + s + "*" }
	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))
	assert.Contains(t, buf.String(), "| number | <name   > |")
	assert.Contains(t, buf.String(), "|     12 | <Ederson> |")
}

func TestTableWideCharacters(t *testing.T) {
	t.Parallel()
	tbl := table{
		header: []string{"name"},
		rows:   [][]string{{"Júlio César"}, {"李"}},
		border: BorderASCII,
	}
	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))
	assert.Contains(t, buf.String(), "| Júlio César |")
	assert.Contains(t, buf.String(), "| 李          |")
}

func TestTableUnknownBorder(t *testing.T) {
	t.Parallel()
	tbl := keepers()
	tbl.border = BorderStyle(42)
	assert.ErrorIs(t, tbl.write(&bytes.Buffer{}), ErrUnsupportedBorder)
}

func TestTableWriteErrors(t *testing.T) {
	t.Parallel()
	for _, border := range []BorderStyle{BorderRounded, BorderNone, BorderASCII, BorderHeavy, BorderDouble} {
		tbl := keepers()
		tbl.border = border
		assert.ErrorIs(t, tbl.write(&errWriterInternal{}), errInternalWrite, border.String())
	}
}

func TestTabulate(t *testing.T) {
	t.Parallel()
	rows := Rows{
		Record{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
		Record{{Key: "b", Value: "4"}, {Key: "c", Value: "5"}},
	}
	header, cells := tabulate(rows)
	assert.Equal(t, []string{"a", "b"}, header)
	assert.Equal(t, [][]string{{"1", "2"}, {"", "4"}}, cells)
}

func TestTabulateEmpty(t *testing.T) {
	t.Parallel()
	header, cells := tabulate(nil)
	assert.Nil(t, header)
	assert.Nil(t, cells)
}

func TestNumericAligns(t *testing.T) {
	t.Parallel()
	rows := [][]string{
		{"10", "Forward", "", "2020"},
		{"1", "Keeper", "", "x"},
	}
	assert.Equal(t, []Alignment{AlignRight, AlignLeft, AlignLeft, AlignLeft}, numericAligns(rows, 4))
}

func TestExtendStylesNoop(t *testing.T) {
	t.Parallel()
	fn := func(s string) string { return s }
	styles := extendStyles([]func(string) string{fn, fn, fn}, 2)
	assert.Len(t, styles, 2)
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		align Alignment
		want  string
	}{
		"left":   {align: AlignLeft, want: "ab   "},
		"right":  {align: AlignRight, want: "   ab"},
		"center": {align: AlignCenter, want: " ab  "},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, alignCell("ab", 5, tc.align))
		})
	}
	assert.Equal(t, "abcdef", alignCell("abcdef", 3, AlignLeft))
}

func TestThemeSeedIsRepeatable(t *testing.T) {
	t.Parallel()
	draw := func() []int {
		th := newTheme(&bytes.Buffer{}, 7, true)
		picks := make([]int, 10)
		for i := range picks {
			picks[i] = th.rng.IntN(len(columnColors))
		}
		return picks
	}
	assert.Equal(t, draw(), draw())
	assert.Len(t, newTheme(&bytes.Buffer{}, 7, true).columns(4), 4)
}
