package verify

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	RunnerStatsName = "xalgo/verify"
)

type runnerStats struct {
	checks   metric.Int64Counter
	duration metric.Float64Histogram
}

func (stats *runnerStats) RecordCheck(ctx context.Context, property string, passed bool, durationMs float64) {
	if stats == nil {
		return
	}
	stats.checks.Add(ctx, 1, metric.WithAttributeSet(attribute.NewSet(
		attribute.String("property", property),
		attribute.Bool("passed", passed),
	)))
	stats.duration.Record(ctx, durationMs, metric.WithAttributeSet(attribute.NewSet(
		attribute.String("property", property),
	)))
}

func newRunnerStats(meter metric.Meter) *runnerStats {
	if meter == nil {
		return nil
	}
	return &runnerStats{
		checks: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xalgo.verify.checks",
			metric.WithDescription("The number of property checks executed by the verify runner."),
		)),
		duration: lo.Must[metric.Float64Histogram](meter.Float64Histogram(
			"xalgo.verify.duration",
			metric.WithDescription("The duration of a single property check. In milliseconds."),
			metric.WithUnit("ms"),
		)),
	}
}
