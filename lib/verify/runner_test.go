package verify

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/multierr"

	"github.com/benz9527/xalgo/observability"
	"github.com/benz9527/xalgo/xlog"
)

type syncBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.String()
}

func testLogger(w *syncBuffer) xlog.XLogger {
	return xlog.NewXLogger(
		xlog.WithXLoggerWriter(w),
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
	)
}

func TestNewRunner_BadOptions(t *testing.T) {
	testcases := []struct {
		name string
		opt  RunnerOption
	}{
		{"pool size", WithRunnerPoolSize(0)},
		{"rounds", WithRunnerRounds(-1)},
		{"logger", WithRunnerLogger(nil)},
		{"meter", WithRunnerMeter(nil)},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			r, err := NewRunner(tc.opt)
			require.Error(tt, err)
			require.Nil(tt, r)
		})
	}
}

func TestRunner_Run(t *testing.T) {
	mp, reader := observability.NewManualReaderProvider()
	defer func() {
		require.NoError(t, mp.Shutdown(context.Background()))
	}()
	buf := &syncBuffer{}
	r, err := NewRunner(
		nil,
		WithRunnerPoolSize(4),
		WithRunnerRounds(10),
		WithRunnerSeed(2024),
		WithRunnerLogger(testLogger(buf)),
		WithRunnerMeter(mp.Meter(RunnerStatsName)),
	)
	require.NoError(t, err)
	defer r.Release()
	require.Equal(t, uint64(2024), r.Seed())
	require.Equal(t, 10, r.Rounds())

	report, err := r.Run(context.Background(), AllProperties()...)
	require.NoError(t, err)
	require.Len(t, report.Results, 14)
	require.Equal(t, 140, report.Passed())
	require.Zero(t, report.Failed())
	require.Empty(t, report.FailedProperties())
	for i := 1; i < len(report.Results); i++ {
		require.Less(t, report.Results[i-1].Name, report.Results[i].Name)
	}
	require.Contains(t, report.String(), "seed=2024 rounds=10 passed=140 failed=0")
	require.Contains(t, buf.String(), "verify run finished")

	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	var checks int64
	for _, m := range rm.ScopeMetrics[0].Metrics {
		switch m.Name {
		case "xalgo.verify.checks":
			sum := m.Data.(metricdata.Sum[int64])
			for _, dp := range sum.DataPoints {
				passed, ok := dp.Attributes.Value(attribute.Key("passed"))
				require.True(t, ok)
				require.True(t, passed.AsBool())
				checks += dp.Value
			}
		case "xalgo.verify.duration":
			hist := m.Data.(metricdata.Histogram[float64])
			require.Len(t, hist.DataPoints, 14)
		default:
			t.Fatalf("unexpected metric %s", m.Name)
		}
	}
	require.Equal(t, int64(140), checks)
}

func TestRunner_Violations(t *testing.T) {
	buf := &syncBuffer{}
	mp, _ := observability.NewManualReaderProvider()
	r, err := NewRunner(
		WithRunnerPoolSize(2),
		WithRunnerRounds(3),
		WithRunnerLogger(testLogger(buf)),
		WithRunnerMeter(mp.Meter(RunnerStatsName)),
	)
	require.NoError(t, err)
	defer r.Release()

	bad := errors.New("bad law")
	report, err := r.Run(context.Background(),
		Property{Name: "always.fails", Check: func(context.Context, *rand.Rand) error { return bad }},
		Property{Name: "always.panics", Check: func(context.Context, *rand.Rand) error { panic("boom") }},
		Property{Name: "always.holds", Check: func(context.Context, *rand.Rand) error { return nil }},
		Property{Name: "no.check"},
	)
	require.Error(t, err)
	require.ErrorIs(t, err, bad)
	// 3 failures, 3 panics and the missing check.
	require.Len(t, multierr.Errors(err), 7)
	require.Equal(t, []string{"always.fails", "always.panics"}, report.FailedProperties())
	require.Equal(t, 3, report.Passed())
	require.Equal(t, 6, report.Failed())
	require.Contains(t, buf.String(), "property check failed")
	require.Contains(t, buf.String(), "boom")
}

func TestRunner_Cancelled(t *testing.T) {
	mp, _ := observability.NewManualReaderProvider()
	r, err := NewRunner(
		WithRunnerRounds(5),
		WithRunnerLogger(testLogger(&syncBuffer{})),
		WithRunnerMeter(mp.Meter(RunnerStatsName)),
	)
	require.NoError(t, err)
	defer r.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := r.Run(ctx, IntProperties()...)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, report.Passed())
	require.Zero(t, report.Failed())
}

func TestRunner_NoProperties(t *testing.T) {
	r, err := NewRunner(WithRunnerLogger(testLogger(&syncBuffer{})))
	require.NoError(t, err)
	defer r.Release()
	report, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, report.Results)
	require.NotNil(t, report.Results)

	var nilRunner *Runner
	nilRunner.Release()
}
