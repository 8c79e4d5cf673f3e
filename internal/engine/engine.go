// Package engine loads activity files and calculates their reports.
package engine

import (
	"context"
	"io"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/pegada/internal/activity"
	"github.com/rshade/pegada/internal/calculator"
	"github.com/rshade/pegada/internal/engine/batch"
	"github.com/rshade/pegada/internal/factors"
	"github.com/rshade/pegada/internal/logging"
	"github.com/rshade/pegada/internal/report"
)

type constError string

func (e constError) Error() string { return string(e) }

// Engine errors.
const (
	ErrNoSources      = constError("no activity sources given")
	ErrDuplicateStdin = constError("stdin can only be read once")
)

// calcBatchSize keeps batches small; each record is cheap but the progress
// log is more useful with several steps.
const calcBatchSize = 10

// Source is one activity record with the name it was loaded from. Files
// holding several YAML documents yield one Source per document, named
// "file#2", "file#3" and so on after the first.
type Source struct {
	Name   string
	Record activity.Record
}

// Engine calculates individual-profile reports with a fixed factor table
// and offset pricing. It holds no mutable state.
type Engine struct {
	table  *factors.Table
	offset report.OffsetSettings
}

// New returns an engine. A nil table selects factors.Default().
func New(table *factors.Table, offset report.OffsetSettings) *Engine {
	if table == nil {
		table = factors.Default()
	}
	return &Engine{table: table, offset: offset}
}

// Table returns the factor table in use.
func (e *Engine) Table() *factors.Table {
	return e.table
}

// Run loads paths and calculates every record they hold.
func (e *Engine) Run(ctx context.Context, paths []string, stdin io.Reader) ([]report.Result, error) {
	sources, err := e.Load(ctx, paths, stdin)
	if err != nil {
		return nil, err
	}
	return e.Calculate(ctx, sources)
}

// Load reads paths concurrently and returns their records in argument
// order. "-" reads stdin and may appear once. The first failure cancels
// the remaining reads.
func (e *Engine) Load(ctx context.Context, paths []string, stdin io.Reader) ([]Source, error) {
	if len(paths) == 0 {
		return nil, ErrNoSources
	}
	if err := checkStdin(paths); err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	perFile := make([][]activity.Record, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			records, err := activity.Load(path, stdin)
			if err != nil {
				return err
			}
			log.Debug().
				Ctx(gCtx).
				Str("component", "engine").
				Str("source", displayName(path)).
				Int("records", len(records)).
				Msg("activity file loaded")
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var sources []Source
	for i, records := range perFile {
		name := displayName(paths[i])
		for j, rec := range records {
			n := name
			if j > 0 {
				n = name + "#" + strconv.Itoa(j+1)
			}
			sources = append(sources, Source{Name: n, Record: rec})
		}
	}
	return sources, nil
}

// Calculate computes the report of every source, preserving order. Records
// are independent, so batches run concurrently.
func (e *Engine) Calculate(ctx context.Context, sources []Source) ([]report.Result, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	log := logging.FromContext(ctx)
	start := time.Now()
	results := make([]report.Result, len(sources))

	proc, err := batch.NewProcessor[Source](calcBatchSize)
	if err != nil {
		return nil, err
	}
	proc.WithProgressCallback(func(s batch.ProgressSnapshot) {
		log.Debug().
			Str("component", "engine").
			Int("processed", s.ProcessedItems).
			Int("total", s.TotalItems).
			Float64("percent", s.PercentComplete()).
			Msg("calculation progress")
	})

	err = proc.ProcessConcurrent(ctx, sources, func(_ context.Context, items []Source, offset int) error {
		for i, src := range items {
			res, resErr := e.calculateOne(src)
			if resErr != nil {
				return resErr
			}
			results[offset+i] = res
		}
		return nil
	}, runtime.NumCPU())
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		for _, note := range res.Report.Notes {
			log.Warn().
				Ctx(ctx).
				Str("component", "engine").
				Str("source", res.Source).
				Msg(note)
		}
	}
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Int("sources", len(sources)).
		Dur("duration", time.Since(start)).
		Msg("calculation complete")
	return results, nil
}

func (e *Engine) calculateOne(src Source) (report.Result, error) {
	r := calculator.Calculate(src.Record, e.table)
	return report.NewResult(src.Name, r, e.offset)
}

func checkStdin(paths []string) error {
	seen := false
	for _, p := range paths {
		if p != activity.StdinPath {
			continue
		}
		if seen {
			return ErrDuplicateStdin
		}
		seen = true
	}
	return nil
}

func displayName(path string) string {
	if path == activity.StdinPath {
		return "stdin"
	}
	return path
}
