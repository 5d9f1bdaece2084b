package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// parseConfig runs a throwaway app with flags and returns the config its
// action built.
func parseConfig(flags []cli.Flag, args ...string) (*config.Config, error) {
	var cfg *config.Config
	app := &cli.App{
		Name:           "test",
		Flags:          flags,
		Writer:         io.Discard,
		ErrWriter:      io.Discard,
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			var (
				closeFiles func() error
				err        error
			)
			cfg, closeFiles, err = configFromContext(c)
			if err != nil {
				return err
			}
			return closeFiles()
		},
	}
	err := app.Run(append([]string{"test"}, args...))
	return cfg, err
}

func mustParseConfig(t *testing.T, flags []cli.Flag, args ...string) *config.Config {
	t.Helper()
	cfg, err := parseConfig(flags, args...)
	require.NoError(t, err)
	return cfg
}

func TestConfigFromContext_Defaults(t *testing.T) {
	cfg := mustParseConfig(t, playFlags())

	require.True(t, cfg.Rules.ForcedCapture)
	require.False(t, cfg.Rules.CrowningEndsTurn)
	require.Equal(t, "red", cfg.Rules.FirstSide)
	require.True(t, cfg.Display.Coordinates)
	require.True(t, cfg.Replay.DetectDuplicates)
	require.Equal(t, config.Normal, cfg.Verbosity)
	require.Equal(t, io.Discard, cfg.OutputFile)
	require.Equal(t, io.Discard, cfg.LogFile)
}

func TestApplyRulesFlags(t *testing.T) {
	cfg := mustParseConfig(t, playFlags(), "--noforce", "--crownstop", "--quietlimit", "80", "--first", "black")

	require.False(t, cfg.Rules.ForcedCapture)
	require.True(t, cfg.Rules.CrowningEndsTurn)
	require.Equal(t, 80, cfg.Rules.QuietPlyLimit)
	require.Equal(t, "Black", cfg.Rules.Engine().FirstSide.String())
}

func TestApplyRulesFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown side", []string{"--first", "green"}},
		{"negative quiet limit", []string{"--quietlimit", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(playFlags(), tt.args...)
			require.ErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

func TestApplyDisplayFlags(t *testing.T) {
	cfg := mustParseConfig(t, playFlags(), "-u", "--nocoords", "--hints", "-J")

	require.True(t, cfg.Display.Unicode)
	require.False(t, cfg.Display.Coordinates)
	require.True(t, cfg.Display.ShowHints)
	require.True(t, cfg.Display.JSON)
	require.True(t, cfg.Replay.JSONFormat)
}

func TestApplyReplayFlags(t *testing.T) {
	cfg := mustParseConfig(t, checkCommandFlags(), "--workers", "4", "--nodups", "--stop")

	require.Equal(t, 4, cfg.Replay.Workers)
	require.False(t, cfg.Replay.DetectDuplicates)
	require.True(t, cfg.Replay.StopOnError)
}

func TestConfigFromContext_Verbosity(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"default", nil, config.Normal},
		{"quiet", []string{"-s"}, config.Quiet},
		{"verbose", []string{"-V"}, config.Verbose},
		{"quiet wins", []string{"-s", "-V"}, config.Quiet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mustParseConfig(t, checkCommandFlags(), tt.args...)
			require.Equal(t, tt.want, cfg.Verbosity)
		})
	}
}

func TestSetupOutputFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	logPath := filepath.Join(dir, "diag.log")

	cfg := mustParseConfig(t, playFlags(), "-o", out, "-l", logPath)

	require.IsType(t, &os.File{}, cfg.OutputFile)
	require.IsType(t, &os.File{}, cfg.LogFile)
	require.FileExists(t, out)
	require.FileExists(t, logPath)

	// both files are closed once the command is done with them
	_, err := cfg.OutputFile.Write([]byte("x"))
	require.ErrorIs(t, err, os.ErrClosed)
	_, err = cfg.LogFile.Write([]byte("x"))
	require.ErrorIs(t, err, os.ErrClosed)

	_, err = parseConfig(playFlags(), "-o", filepath.Join(dir, "missing", "out.txt"))
	require.Error(t, err)
}
