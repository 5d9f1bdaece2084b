package replay

import (
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// Detector records final positions and reports repeats.
type Detector interface {
	CheckAndAdd(board *checkers.Board, toMove checkers.Side, plies int) bool
}

// Report summarises a replay run.
type Report struct {
	RunID      string
	Results    []Result
	Passed     int
	Failed     int
	Skipped    int
	Duplicates int
}

// Runner replays batches of records on a worker pool.
type Runner struct {
	cfg      *config.Config
	log      zerolog.Logger
	detector Detector
}

// NewRunner creates a runner. A nil detector gets a fresh one when
// duplicate detection is enabled; pass a shared detector to find
// duplicates across several runs.
func NewRunner(cfg *config.Config, log zerolog.Logger, detector Detector) *Runner {
	if detector == nil && cfg.Replay.DetectDuplicates {
		detector = hashing.NewDuplicateDetector(false, 0)
	}
	return &Runner{cfg: cfg, log: log, detector: detector}
}

// Run replays records in parallel and returns the results in input order.
// Duplicate marking runs over the ordered results, so the first record to
// reach a position is never the one flagged.
func (r *Runner) Run(records []*Record) *Report {
	report := &Report{RunID: uuid.New().String(), Results: make([]Result, len(records))}
	log := r.log.With().Str("run", report.RunID).Logger()

	workers := r.cfg.Replay.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	buffer := r.cfg.Replay.BufferSize
	if buffer == 0 {
		buffer = 2 * workers
	}
	rules := r.cfg.Rules.Engine()
	stopOnError := r.cfg.Replay.StopOnError

	log.Info().Int("records", len(records)).Int("workers", workers).Msg("replay started")

	var pool *worker.Pool[*Record, Result]
	pool = worker.NewPoolWithOptions[*Record, Result](func(item worker.WorkItem[*Record]) worker.Result[Result] {
		res := Replay(item.Value, rules)
		if stopOnError && !res.OK() {
			pool.Stop()
		}
		return worker.Result[Result]{Value: res, Index: item.Index, Error: res.Err}
	}, worker.WithWorkers(workers), worker.WithBufferSize(buffer))
	pool.Start()

	go func() {
		for i, rec := range records {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem[*Record]{Value: rec, Index: i})
		}
		pool.Close()
	}()

	done := make([]bool, len(records))
	for _, wr := range pool.Collect() {
		report.Results[wr.Index] = wr.Value
		done[wr.Index] = true
	}

	for i := range report.Results {
		res := &report.Results[i]
		if !done[i] {
			*res = Result{Record: records[i], Skipped: true}
			report.Skipped++
			continue
		}
		if r.detector != nil && res.Err == nil && res.Final != nil {
			res.Duplicate = r.detector.CheckAndAdd(res.Final.Snapshot(), res.Final.SideToMove(), res.Plies)
			if res.Duplicate {
				report.Duplicates++
			}
		}
		if res.OK() {
			report.Passed++
		} else {
			report.Failed++
		}
		r.logResult(log, res)
	}

	log.Info().
		Int("passed", report.Passed).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Int("duplicates", report.Duplicates).
		Msg("replay finished")
	return report
}

func (r *Runner) logResult(log zerolog.Logger, res *Result) {
	ev := log.Debug()
	switch {
	case res.Err != nil:
		ev = log.Warn().Err(res.Err).Int("failedMove", res.FailedMove)
	case res.ResultChecked && !res.ResultMatches:
		ev = log.Warn().Str("declared", res.Record.GetTag(TagResult)).Str("actual", FormatResult(res.Final))
	}
	ev.Str("file", res.Record.File).
		Int("line", res.Record.StartLine).
		Int("plies", res.Plies).
		Bool("duplicate", res.Duplicate).
		Msg("record replayed")
}

// Run replays records with a fresh Runner.
func Run(records []*Record, cfg *config.Config, log zerolog.Logger) *Report {
	return NewRunner(cfg, log, nil).Run(records)
}
