package squads

// Input is data a [Renderer] knows how to draw: [Rows], [Groups] or
// [Sections]. Callers pick the variant; the renderer never guesses a shape.
type Input interface {
	input()
}

// Rows is a flat list of records rendered as a single table. The columns
// are the keys of the first row.
type Rows []Mappable

// empty reports whether rows has nothing to tabulate: no rows, or a first
// row without keys.
func (r Rows) empty() bool {
	return len(r) == 0 || len(r[0].Pairs()) == 0
}

// Group is a titled list of rows.
type Group struct {
	Key  string
	Rows Rows
}

// Groups is a one-level grouping. Label names the grouped field and becomes
// a leading column in delimited output.
type Groups struct {
	Label  string
	Groups []Group
}

// Entry is one titled item inside a [Section]. Value is expected to be
// [Rows]; other variants are reported as an unexpected format.
type Entry struct {
	Key   string
	Value Input
}

// Section is a headed list of entries.
type Section struct {
	Key     string
	Entries []Entry
}

// Sections is a two-level grouping.
type Sections struct {
	Label    string
	SubLabel string
	Sections []Section
}

func (Rows) input()     {}
func (Groups) input()   {}
func (Sections) input() {}

// PlayerRows wraps players as rows.
func PlayerRows(players []Player) Rows {
	rows := make(Rows, len(players))
	for i, p := range players {
		rows[i] = p
	}
	return rows
}

// PositionGroups converts a position grouping into render input.
func PositionGroups(g *PositionGrouping) Groups {
	out := Groups{Label: FieldPosition.String()}
	for position, players := range g.All() {
		out.Groups = append(out.Groups, Group{Key: position, Rows: PlayerRows(players)})
	}
	return out
}

// CountrySections converts a country/position grouping into render input.
func CountrySections(g *CountryGrouping) Sections {
	out := Sections{Label: FieldCountry.String(), SubLabel: FieldPosition.String()}
	for country, positions := range g.All() {
		s := Section{Key: country}
		for position, players := range positions.All() {
			s.Entries = append(s.Entries, Entry{Key: position, Value: PlayerRows(players)})
		}
		out.Sections = append(out.Sections, s)
	}
	return out
}
