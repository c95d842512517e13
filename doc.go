// Package squads groups football squad records and renders them as console
// tables.
//
// # Pipeline
//
// Raw records are positional tuples ([RawRecord]). [Normalize] labels them as
// [Player] values, failing fast on any record with too few fields:
//
//	records, _ := squads.DefaultFixture()
//	players, err := squads.Normalize(records)
//
// The grouping functions fold players into insertion-ordered [Grouping]
// values. Keys appear in the order they were first seen and every list keeps
// input order:
//
//	byPosition := squads.GroupByPosition(players)
//	byCountry := squads.GroupByCountryThenPosition(players)
//
// # Rendering
//
// A [Renderer] writes to the [io.Writer] it was created with. Callers choose
// the shape explicitly by building one of the [Input] variants:
//
//   - [Rows] — one table
//   - [Groups] — one titled table per group
//   - [Sections] — a heading per section, then one table per entry
//
// Each table column gets a color drawn at random; [Config.Seed] makes the
// draw repeatable. Empty collections and malformed entries are reported to
// the sink as notices instead of errors:
//
//	r := squads.NewRenderer(os.Stdout, squads.Config{})
//	r.Render(squads.PlayerRows(players))
//	r.Render(squads.PositionGroups(byPosition))
//	r.Render(squads.CountrySections(byCountry))
//
// # Formats
//
// [Config.Format] selects [Table] (default), [Markdown], [CSV], [TSV],
// [JSON] or [YAML]. Use [ParseFormat] to convert a flag value. JSON and YAML
// preserve key order; CSV and TSV flatten groupings into leading key columns.
//
// # Errors
//
//   - [ErrMalformedRecord] — a raw record has fewer fields than a player
//   - [ErrInvalidFixture] — the fixture is not a YAML list of records
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrUnsupportedBorder] — unknown border style
package squads
