package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/notation"
	"github.com/lgbarn/checkers-go/internal/processing"
	"github.com/lgbarn/checkers-go/internal/replay"
)

// checkInput is one named source of records.
type checkInput struct {
	name string
	r    io.Reader
}

// fileReport is the outcome of checking one input.
type fileReport struct {
	File       string         `json:"file"`
	RunID      string         `json:"runId,omitempty"`
	ParseError string         `json:"parseError,omitempty"`
	Passed     int            `json:"passed"`
	Failed     int            `json:"failed"`
	Skipped    int            `json:"skipped"`
	Duplicates int            `json:"duplicates"`
	Records    []recordReport `json:"records"`
}

// recordReport is the outcome of one record.
type recordReport struct {
	Line        int    `json:"line"`
	Status      string `json:"status"`
	Plies       int    `json:"plies"`
	Result      string `json:"result,omitempty"`
	Declared    string `json:"declared,omitempty"`
	FinalLayout string `json:"finalLayout,omitempty"`
	Duplicate   bool   `json:"duplicate,omitempty"`
	Error       string `json:"error,omitempty"`

	Stats *recordStats `json:"stats,omitempty"`
}

// recordStats summarises the play of a record that replayed cleanly.
type recordStats struct {
	Captures     int  `json:"captures"`
	Promotions   int  `json:"promotions"`
	LongestChain int  `json:"longestChain"`
	Repetition   bool `json:"repetition,omitempty"`
}

// runCheck checks the named files, or stdin when there are none, and
// returns the process exit code.
func runCheck(cfg *config.Config, log zerolog.Logger, files []string, stdin io.Reader) int {
	var inputs []checkInput
	if len(files) == 0 {
		inputs = append(inputs, checkInput{name: "stdin", r: stdin})
	}
	for _, filename := range files {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			log.Error().Err(err).Str("file", filename).Msg("cannot open record file")
			return 1
		}
		defer file.Close() //nolint:errcheck // read-only
		inputs = append(inputs, checkInput{name: filename, r: file})
	}

	reports, ok := checkRecords(cfg, log, inputs)
	if err := writeCheckReport(cfg.OutputFile, reports, cfg.Replay.JSONFormat, cfg.Verbosity); err != nil {
		log.Error().Err(err).Msg("cannot write report")
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}

// checkRecords replays every input in turn. One detector is shared by all
// inputs so a record repeating one from an earlier file is reported too.
func checkRecords(cfg *config.Config, log zerolog.Logger, inputs []checkInput) ([]fileReport, bool) {
	var (
		shared   *hashing.SharedDetector
		detector replay.Detector
	)
	if cfg.Replay.DetectDuplicates {
		shared = hashing.NewSharedDetector(false, 0)
		detector = shared
	}
	runner := replay.NewRunner(cfg, log, detector)
	rules := cfg.Rules.Engine()
	withStats := cfg.Replay.JSONFormat || cfg.Verbosity >= config.Verbose

	ok := true
	var reports []fileReport
	for _, in := range inputs {
		fr := fileReport{File: in.name}

		records, err := replay.ParseRecords(in.r, in.name)
		if err != nil {
			log.Warn().Err(err).Str("file", in.name).Msg("parse failed")
			fr.ParseError = err.Error()
			ok = false
		}

		if len(records) > 0 {
			report := runner.Run(records)
			fr.RunID = report.RunID
			fr.Passed = report.Passed
			fr.Failed = report.Failed
			fr.Skipped = report.Skipped
			fr.Duplicates = report.Duplicates
			for i := range report.Results {
				rr := newRecordReport(&report.Results[i])
				if withStats && report.Results[i].Err == nil && !report.Results[i].Skipped {
					rr.Stats = analyze(report.Results[i].Record, rules, log)
				}
				fr.Records = append(fr.Records, rr)
			}
			if report.Failed > 0 {
				ok = false
			}
		}
		reports = append(reports, fr)

		if !ok && cfg.Replay.StopOnError {
			break
		}
	}

	ev := log.Info().Int("files", len(reports)).Bool("ok", ok)
	if shared != nil {
		st := shared.Stats()
		ev = ev.Int("uniquePositions", st.Unique).Int("duplicates", st.Duplicates)
	}
	ev.Msg("check finished")
	return reports, ok
}

func newRecordReport(res *replay.Result) recordReport {
	rr := recordReport{
		Line:      res.Record.StartLine,
		Plies:     res.Plies,
		Declared:  res.Record.GetTag(replay.TagResult),
		Duplicate: res.Duplicate,
	}
	switch {
	case res.Skipped:
		rr.Status = "skipped"
	case res.OK():
		rr.Status = "ok"
	default:
		rr.Status = "failed"
	}
	if res.Err != nil {
		rr.Error = res.Err.Error()
	} else if res.ResultChecked && !res.ResultMatches {
		rr.Error = fmt.Sprintf("declared result %q does not match %q", rr.Declared, replay.FormatResult(res.Final))
	}
	if res.Final != nil {
		rr.Result = replay.FormatResult(res.Final)
		rr.FinalLayout = notation.FormatLayout(res.Final.Snapshot(), res.Final.SideToMove())
	}
	return rr
}

func analyze(rec *replay.Record, rules engine.Rules, log zerolog.Logger) *recordStats {
	analysis, err := processing.AnalyzeRecord(rec, rules)
	if err != nil {
		log.Warn().Err(err).Str("file", rec.File).Int("line", rec.StartLine).Msg("analysis failed")
		return nil
	}
	return &recordStats{
		Captures:     analysis.Captures,
		Promotions:   analysis.Promotions,
		LongestChain: analysis.LongestChain,
		Repetition:   analysis.RepetitionDetected(),
	}
}

// writeCheckReport writes reports as JSON or as text. Text output lists
// problems at every verbosity, per-file totals from Normal and every
// record at Verbose.
func writeCheckReport(w io.Writer, reports []fileReport, asJSON bool, verbosity int) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, fr := range reports {
		if verbosity >= config.Normal {
			if _, err := fmt.Fprintf(w, "%s: %d passed, %d failed, %d skipped, %d duplicate(s)\n",
				fr.File, fr.Passed, fr.Failed, fr.Skipped, fr.Duplicates); err != nil {
				return err
			}
		}
		if fr.ParseError != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", fr.ParseError); err != nil {
				return err
			}
		}
		for _, rr := range fr.Records {
			var err error
			switch {
			case rr.Error != "":
				_, err = fmt.Fprintf(w, "  %s:%d: %s\n", fr.File, rr.Line, rr.Error)
			case rr.Duplicate && verbosity >= config.Normal:
				_, err = fmt.Fprintf(w, "  %s:%d: duplicate final position\n", fr.File, rr.Line)
			case verbosity >= config.Verbose && rr.Stats != nil:
				_, err = fmt.Fprintf(w, "  %s:%d: %s after %d plies, %d captured, longest chain %d\n",
					fr.File, rr.Line, rr.Status, rr.Plies, rr.Stats.Captures, rr.Stats.LongestChain)
			case verbosity >= config.Verbose:
				_, err = fmt.Fprintf(w, "  %s:%d: %s after %d plies\n", fr.File, rr.Line, rr.Status, rr.Plies)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
