// checkers plays draughts on the terminal and checks game-record files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "checkers",
		Usage:   "play checkers on standard input or check game-record files",
		Version: programVersion,
		Flags:   playFlags(),
		Action:  playAction,
		Commands: []*cli.Command{
			{
				Name:        "play",
				Usage:       "play an interactive game (the default)",
				Description: "Session commands:\n" + sessionHelp,
				Flags:       playFlags(),
				Action:      playAction,
			},
			{
				Name:      "check",
				Aliases:   []string{"c"},
				Usage:     "replay record files (or stdin) and report problems",
				ArgsUsage: "[record-files...]",
				Flags:     checkCommandFlags(),
				Action:    checkAction,
			},
		},
	}
}

func playAction(c *cli.Context) error {
	cfg, closeFiles, err := configFromContext(c)
	if err != nil {
		return err
	}
	defer closeFiles()

	log := newLogger(cfg.LogFile, cfg.Verbosity)
	if err := NewSession(cfg, log).Run(c.App.Reader); err != nil {
		log.Error().Err(err).Msg("session ended")
		return cli.Exit(err.Error(), 1)
	}
	return closeFiles()
}

func checkAction(c *cli.Context) error {
	cfg, closeFiles, err := configFromContext(c)
	if err != nil {
		return err
	}
	defer closeFiles()

	log := newLogger(cfg.LogFile, cfg.Verbosity)
	if code := runCheck(cfg, log, c.Args().Slice(), c.App.Reader); code != 0 {
		return cli.Exit("", code)
	}
	return closeFiles()
}

// newLogger builds the diagnostic logger for a verbosity level.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.InfoLevel
	switch verbosity {
	case config.Quiet:
		level = zerolog.WarnLevel
	case config.Verbose:
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}
