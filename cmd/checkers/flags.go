// flags.go - Command-line flag definitions and configuration
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/config"
)

// rulesFlags select the rule variant.
func rulesFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "noforce", Usage: "allow quiet moves while a capture is available"},
		&cli.BoolFlag{Name: "crownstop", Usage: "end a capture chain when the capturing man is crowned"},
		&cli.IntFlag{Name: "quietlimit", Usage: "declare a draw after N plies without a capture or man move (0 = never)"},
		&cli.StringFlag{Name: "first", Value: "red", Usage: "side that moves first: red or black"},
	}
}

// outputFlags control where output and diagnostics go.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (default: stdout)"},
		&cli.StringFlag{Name: "log", Aliases: []string{"l"}, Usage: "write diagnostics to log file (default: stderr)"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"s"}, Usage: "warnings only"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "verbose diagnostics"},
		&cli.BoolFlag{Name: "json", Aliases: []string{"J"}, Usage: "output in JSON format"},
	}
}

// displayFlags control board drawing in a session.
func displayFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "unicode", Aliases: []string{"u"}, Usage: "draw pieces with unicode glyphs"},
		&cli.BoolFlag{Name: "nocoords", Usage: "don't label rows and columns"},
		&cli.BoolFlag{Name: "hints", Usage: "list legal moves after each board"},
	}
}

// checkFlags control record checking.
func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "workers", Usage: "number of worker threads (0 = auto-detect based on CPU cores)"},
		&cli.BoolFlag{Name: "nodups", Usage: "don't report records ending in an already seen position"},
		&cli.BoolFlag{Name: "stop", Usage: "stop checking after the first failing record"},
	}
}

func playFlags() []cli.Flag {
	return concatFlags(rulesFlags(), displayFlags(), outputFlags())
}

func checkCommandFlags() []cli.Flag {
	return concatFlags(rulesFlags(), checkFlags(), outputFlags())
}

func concatFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, g := range groups {
		flags = append(flags, g...)
	}
	return flags
}

// configFromContext builds and validates the configuration for a command.
// The returned func closes any files opened for -o and -l; call it once the
// command has finished writing.
func configFromContext(c *cli.Context) (*config.Config, func() error, error) {
	b := config.NewConfigBuilder().
		WithOutput(c.App.Writer).
		WithLog(c.App.ErrWriter)

	applyRulesFlags(c, b)
	applyDisplayFlags(c, b)
	applyReplayFlags(c, b)

	switch {
	case c.Bool("quiet"):
		b.WithVerbosity(config.Quiet)
	case c.Bool("verbose"):
		b.WithVerbosity(config.Verbose)
	}

	cfg := b.Build()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	closeFiles, err := setupOutputFiles(c, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closeFiles, nil
}

// applyRulesFlags configures the rule variant.
func applyRulesFlags(c *cli.Context, b *config.ConfigBuilder) {
	b.WithForcedCapture(!c.Bool("noforce")).
		WithCrowningEndsTurn(c.Bool("crownstop")).
		WithQuietPlyLimit(c.Int("quietlimit"))
	if c.IsSet("first") {
		b.WithFirstSide(c.String("first"))
	}
}

// applyDisplayFlags configures board drawing. -J is shared with check mode.
func applyDisplayFlags(c *cli.Context, b *config.ConfigBuilder) {
	b.WithUnicode(c.Bool("unicode")).
		WithCoordinates(!c.Bool("nocoords")).
		WithHints(c.Bool("hints")).
		WithJSONOutput(c.Bool("json"))
}

// applyReplayFlags configures record checking.
func applyReplayFlags(c *cli.Context, b *config.ConfigBuilder) {
	b.WithWorkers(c.Int("workers")).
		WithDuplicateDetection(!c.Bool("nodups")).
		WithStopOnError(c.Bool("stop"))
}

// setupOutputFiles opens the output and log files named on the command line
// and returns a func that closes them. On error nothing is left open.
func setupOutputFiles(c *cli.Context, cfg *config.Config) (func() error, error) {
	var opened []*os.File
	closeAll := func() error {
		var first error
		for _, f := range opened {
			if err := f.Close(); err != nil && first == nil {
				first = err
			}
		}
		opened = nil
		return first
	}

	if name := c.String("output"); name != "" {
		file, err := os.Create(name)
		if err != nil {
			return nil, err
		}
		opened = append(opened, file)
		cfg.SetOutput(file)
	}
	if name := c.String("log"); name != "" {
		file, err := os.Create(name)
		if err != nil {
			closeAll()
			return nil, err
		}
		opened = append(opened, file)
		cfg.LogFile = file
	}
	return closeAll, nil
}
