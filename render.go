package squads

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	noDataToDisplay = "No data to display."
	noData          = "No data."
	unexpected      = "Unexpected data format."
	flatTitle       = "Data"
)

// Config controls how a [Renderer] draws.
type Config struct {
	// Format defaults to Table.
	Format Format
	Border BorderStyle
	// Seed fixes the column color draw. Zero draws a random seed.
	Seed uint64
	// NoColor disables ANSI styling even on a color terminal.
	NoColor bool
	// Logger receives warnings about recovered input problems. Nil discards.
	Logger *slog.Logger
}

// Renderer writes [Input] values to a sink in the configured format.
type Renderer struct {
	w       io.Writer
	format  Format
	border  BorderStyle
	theme   *theme
	log     *slog.Logger
	written int
}

// NewRenderer returns a renderer writing to w.
func NewRenderer(w io.Writer, cfg Config) *Renderer {
	if cfg.Format == "" {
		cfg.Format = Table
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Renderer{
		w:      w,
		format: cfg.Format,
		border: cfg.Border,
		theme:  newTheme(w, cfg.Seed, cfg.NoColor),
		log:    log,
	}
}

// Heading writes a view heading. Machine-readable formats skip it.
func (r *Renderer) Heading(text string) error {
	if !r.format.human() {
		return nil
	}
	var err error
	switch r.format {
	case Markdown:
		_, err = fmt.Fprintf(r.w, "# %s\n\n", text)
	default:
		if r.written > 0 {
			if _, err = fmt.Fprintln(r.w); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintln(r.w, r.theme.heading.Render(text))
	}
	r.written++
	return err
}

// Render writes in to the sink. Empty or malformed input is reported to the
// sink as a notice; the returned error is only ever a write failure or an
// unsupported format.
func (r *Renderer) Render(in Input) error {
	defer func() { r.written++ }()
	switch r.format {
	case Table:
		return r.renderTables(in)
	case Markdown:
		return r.renderMarkdown(in)
	case CSV:
		return r.renderDelimited(in, ',')
	case TSV:
		return r.renderDelimited(in, '\t')
	case JSON:
		return r.renderJSON(in)
	case YAML:
		return r.renderYAML(in)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, r.format)
	}
}

func (r *Renderer) renderTables(in Input) error {
	switch v := in.(type) {
	case Rows:
		if v.empty() {
			return r.notice("", nil, noDataToDisplay)
		}
		return r.table(flatTitle, nil, v)
	case Groups:
		if len(v.Groups) == 0 {
			return r.notice("", nil, noDataToDisplay)
		}
		for _, g := range v.Groups {
			var err error
			if g.Rows.empty() {
				err = r.notice(g.Key, r.theme.groupTitle.Render, noData)
			} else {
				err = r.table(g.Key, r.theme.groupTitle.Render, g.Rows)
			}
			if err != nil {
				return err
			}
		}
		return nil
	case Sections:
		if len(v.Sections) == 0 {
			return r.notice("", nil, noDataToDisplay)
		}
		for _, s := range v.Sections {
			if _, err := fmt.Fprintf(r.w, "\n%s\n", r.theme.section.Render(s.Key)); err != nil {
				return err
			}
			for _, e := range s.Entries {
				if err := r.entryTable(s.Key, e); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		r.log.Warn("render.unsupported_input", "type", fmt.Sprintf("%T", in))
		_, err := fmt.Fprintf(r.w, "%s %s\n", r.theme.failure.Render("Error:"), unexpected)
		return err
	}
}

func (r *Renderer) entryTable(section string, e Entry) error {
	switch v := e.Value.(type) {
	case Rows:
		if v.empty() {
			return r.notice(e.Key, r.theme.subTitle.Render, noData)
		}
		return r.table(e.Key, r.theme.subTitle.Render, v)
	case nil:
		return r.notice(e.Key, r.theme.subTitle.Render, noData)
	default:
		r.log.Warn("render.unexpected_entry", "section", section, "entry", e.Key, "type", fmt.Sprintf("%T", v))
		return r.notice(e.Key, r.theme.subTitle.Render, unexpected)
	}
}

func (r *Renderer) table(title string, titleStyle func(...string) string, rows Rows) error {
	header, cells := tabulate(rows)
	t := table{
		title:  title,
		header: header,
		rows:   cells,
		aligns: numericAligns(cells, len(header)),
		styles: r.theme.columns(len(header)),
		border: r.border,
	}
	if titleStyle != nil {
		t.titleStyle = func(s string) string { return titleStyle(s) }
	}
	return t.write(r.w)
}

// notice writes a placeholder line, optionally prefixed by a styled key.
func (r *Renderer) notice(key string, keyStyle func(...string) string, msg string) error {
	text := r.theme.notice.Render(msg)
	if key != "" {
		text = keyStyle(key) + ": " + text
	}
	_, err := fmt.Fprintln(r.w, text)
	return err
}
