package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pegada/internal/activity"
	"github.com/rshade/pegada/internal/calculator"
	"github.com/rshade/pegada/internal/factors"
	"github.com/rshade/pegada/internal/report"
)

func newTestEngine() *Engine {
	return New(nil, report.OffsetSettings{PricePerTonne: 50, Currency: "BRL"})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "residents: 1\n")
	b := writeFile(t, dir, "b.yaml", "residents: 2\n---\nresidents: 3\n")
	c := writeFile(t, dir, "c.json", `{"residents": 4}`)

	sources, err := newTestEngine().Load(context.Background(), []string{a, b, "-", c}, strings.NewReader("residents: 5\n"))
	require.NoError(t, err)
	require.Len(t, sources, 5)

	names := make([]string, len(sources))
	residents := make([]int, len(sources))
	for i, s := range sources {
		names[i] = s.Name
		residents[i] = s.Record.ResidentCount()
	}
	assert.Equal(t, []string{a, b, b + "#2", "stdin", c}, names)
	assert.Equal(t, []int{1, 2, 3, 5, 4}, residents)
}

func TestLoad_Errors(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	_, err := e.Load(ctx, nil, nil)
	require.ErrorIs(t, err, ErrNoSources)

	_, err = e.Load(ctx, []string{"-", "-"}, strings.NewReader(""))
	require.ErrorIs(t, err, ErrDuplicateStdin)

	_, err = e.Load(ctx, []string{filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = e.Load(ctx, []string{"-"}, strings.NewReader(""))
	require.ErrorIs(t, err, activity.ErrEmptyInput)
}

func TestCalculate(t *testing.T) {
	sources := make([]Source, 25)
	for i := range sources {
		sources[i] = Source{
			Name: "rec" + string(rune('a'+i)),
			Record: activity.Record{
				Electricity: activity.Electricity{MonthlyConsumption: activity.Number(100 * (i + 1))},
				Diet:        activity.Diet{Type: factors.DietVegan},
			},
		}
	}

	results, err := newTestEngine().Calculate(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, results, 25)

	for i, res := range results {
		assert.Equal(t, sources[i].Name, res.Source)
		want := calculator.Calculate(sources[i].Record, nil)
		assert.InDelta(t, want.Total, res.Report.Total, 1e-12)
		assert.Len(t, res.Summary, 4)
	}
	assert.Greater(t, results[24].Report.Residential, results[0].Report.Residential)
}

func TestCalculate_Errors(t *testing.T) {
	_, err := newTestEngine().Calculate(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoSources)

	bad := New(nil, report.OffsetSettings{PricePerTonne: -1})
	_, err = bad.Calculate(context.Background(), []Source{{Name: "x"}})
	require.Error(t, err)
}

func TestCalculate_LogsNotes(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	src := Source{Name: "me.yaml", Record: activity.Record{
		Vehicle: activity.Vehicle{Owns: true, Fuel: "querosene", MonthlyVolume: 10},
	}}
	_, err := newTestEngine().Calculate(ctx, []Source{src})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `unrecognized fuel type \"querosene\"`)
	assert.Contains(t, out, `"source":"me.yaml"`)
	assert.Contains(t, out, "calculation progress")
}

func TestRun(t *testing.T) {
	path := writeFile(t, t.TempDir(), "me.yaml", "diet:\n  type: vegana\n")
	results, err := newTestEngine().Run(context.Background(), []string{path}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 1.5, results[0].Report.Total, 1e-12)
	assert.InDelta(t, 75.0, results[0].Offset.TotalCost, 1e-9)
}

func TestRun_OutOfRangeRecordDoesNotAbortOthers(t *testing.T) {
	dir := t.TempDir()
	huge := writeFile(t, dir, "huge.yaml", "electricity:\n  monthly_consumption: 1e308\n")
	normal := writeFile(t, dir, "normal.yaml", "diet:\n  type: vegana\n")

	results, err := newTestEngine().Run(context.Background(), []string{huge, normal}, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Zero(t, results[0].Report.Residential)
	assert.InDelta(t, 3.8, results[0].Report.Total, 1e-12)
	assert.Contains(t, results[0].Report.Notes, "electricity contribution out of range: using 0")
	assert.InDelta(t, 190.0, results[0].Offset.TotalCost, 1e-9)

	assert.InDelta(t, 1.5, results[1].Report.Total, 1e-12)
}

func TestTable(t *testing.T) {
	assert.Same(t, factors.Default(), newTestEngine().Table())
}
