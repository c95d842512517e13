package squads

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// columnColors are the bright ANSI colors a column may be drawn in: blue,
// green, cyan, magenta, yellow, red. The pick carries no meaning.
var columnColors = []lipgloss.Color{"12", "10", "14", "13", "11", "9"}

type theme struct {
	lr  *lipgloss.Renderer
	rng *rand.Rand

	heading    lipgloss.Style
	groupTitle lipgloss.Style
	subTitle   lipgloss.Style
	section    lipgloss.Style
	notice     lipgloss.Style
	failure    lipgloss.Style
}

// newTheme binds styles to w so color support is detected for the sink
// actually written to. A zero seed draws a random one.
func newTheme(w io.Writer, seed uint64, noColor bool) *theme {
	lr := lipgloss.NewRenderer(w)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &theme{
		lr:         lr,
		rng:        rand.New(rand.NewPCG(seed, seed)),
		heading:    lr.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("14")),
		groupTitle: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		subTitle:   lr.NewStyle().Foreground(lipgloss.Color("5")),
		section:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		notice:     lr.NewStyle().Foreground(lipgloss.Color("3")),
		failure:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// columns draws a color for each of n columns.
func (t *theme) columns(n int) []func(string) string {
	styles := make([]func(string) string, n)
	for i := range styles {
		st := t.lr.NewStyle().Foreground(columnColors[t.rng.IntN(len(columnColors))])
		styles[i] = func(s string) string { return st.Render(s) }
	}
	return styles
}
