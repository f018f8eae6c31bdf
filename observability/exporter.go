package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/benz9527/xalgo/lib/infra"
)

type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

type ExporterType uint8

const (
	NoneExporter ExporterType = iota
	ConsoleExporter
	PrometheusExporter
)

func ParseExporterType(name string) (ExporterType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoneExporter, nil
	case "stdout", "console":
		return ConsoleExporter, nil
	case "prometheus", "prom":
		return PrometheusExporter, nil
	default:
	}
	return NoneExporter, infra.NewErrorStack("[observability] unknown metrics exporter: " + name)
}

// NewMetricsExporter sets the global meter provider by the exporter type.
// NoneExporter keeps the otel default no-op provider.
func NewMetricsExporter(typ ExporterType, interval, timeout time.Duration) (ShutdownFunc, error) {
	switch typ {
	case ConsoleExporter:
		return NewConsoleMetricsExporter(interval, timeout, stdoutmetric.WithPrettyPrint())
	case PrometheusExporter:
		return NewPrometheusMetricsExporter()
	case NoneExporter:
		fallthrough
	default:
	}
	return noopShutdown, nil
}

// Serves for test/dev environment.
func NewConsoleMetricsExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (ShutdownFunc, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] stdout metrics exporter")
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// Serves for the product environment and fetch stats metrics by HTTP.
// The registry is the prometheus default registerer.
func NewPrometheusMetricsExporter() (ShutdownFunc, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] prometheus metrics exporter")
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// NewManualReaderProvider doesn't touch the global provider.
// The reader collects the recorded data on demand, mainly for tests.
func NewManualReaderProvider() (*metric.MeterProvider, *metric.ManualReader) {
	reader := metric.NewManualReader()
	return metric.NewMeterProvider(metric.WithReader(reader)), reader
}
