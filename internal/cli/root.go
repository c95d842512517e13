package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/squads"
	"github.com/bjaus/squads/internal/logger"
)

type options struct {
	format  string
	border  string
	seed    uint64
	noColor bool
	fixture string
	debug   bool
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the squads command. Without flags it prints the built-in
// squads three times: as a flat list, by position, and by country then
// position.
func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "squads",
		Short:        "Print football squads grouped by position and country",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(cmd.ErrOrStderr(), logger.Config{Debug: opts.debug})
			return run(cmd.OutOrStdout(), opts, log)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", squads.Table.String(), fmt.Sprintf("output format %v", squads.Formats()))
	cmd.Flags().StringVar(&opts.border, "border", squads.BorderRounded.String(), "table border: rounded, ascii, heavy, double or none")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for column colors (0 picks one at random)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colors")
	cmd.Flags().StringVar(&opts.fixture, "fixture", "", "read squads from a YAML file instead of the built-in data")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	return cmd
}

func run(out io.Writer, opts options, log *slog.Logger) error {
	format, err := squads.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	border, err := squads.ParseBorder(opts.border)
	if err != nil {
		return err
	}

	records, err := loadRecords(opts.fixture)
	if err != nil {
		return err
	}
	log.Debug("fixture.loaded", "path", opts.fixture, "records", len(records))

	players, err := squads.Normalize(records)
	if err != nil {
		log.Error("fixture.malformed", "err", err)
		return err
	}

	r := squads.NewRenderer(out, squads.Config{
		Format:  format,
		Border:  border,
		Seed:    opts.seed,
		NoColor: opts.noColor,
		Logger:  log,
	})

	if err := show(r, "Players", squads.PlayerRows(players)); err != nil {
		return err
	}

	byPosition := squads.GroupByPosition(players)
	log.Debug("grouped.position", "groups", byPosition.Len())
	if err := show(r, "Players by position", squads.PositionGroups(byPosition)); err != nil {
		return err
	}

	byCountry := squads.GroupByCountryThenPosition(players)
	log.Debug("grouped.country_position", "countries", byCountry.Len())
	return show(r, "Players by country and position", squads.CountrySections(byCountry))
}

func show(r *squads.Renderer, heading string, in squads.Input) error {
	if err := r.Heading(heading); err != nil {
		return err
	}
	return r.Render(in)
}

func loadRecords(path string) ([]squads.RawRecord, error) {
	if path == "" {
		return squads.DefaultFixture()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := squads.DecodeFixture(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
