package registry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	builds   metric.Int64Counter
	failures metric.Int64Counter
	fetched  metric.Int64Counter
	duration metric.Float64Histogram
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	builds, err := meter.Int64Counter(
		"pokemasdb.cache.builds",
		metric.WithDescription("Total number of cache builds"),
		metric.WithUnit("{build}"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter(
		"pokemasdb.cache.build_errors",
		metric.WithDescription("Total number of failed cache builds"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	fetched, err := meter.Int64Counter(
		"pokemasdb.source.fetched_bytes",
		metric.WithDescription("Trainer payload bytes received from the source"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"pokemasdb.cache.build.duration_ms",
		metric.WithDescription("Cache build duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metrics{builds: builds, failures: failures, fetched: fetched, duration: duration}, nil
}

func (m *metrics) record(ctx context.Context, src string, bytes int64, took time.Duration, err error) {
	if m == nil {
		return
	}
	opt := metric.WithAttributes(attribute.String("source", src))

	m.builds.Add(ctx, 1, opt)
	if err != nil {
		m.failures.Add(ctx, 1, opt)
	}
	if bytes > 0 {
		m.fetched.Add(ctx, bytes, opt)
	}
	m.duration.Record(ctx, float64(took.Milliseconds()), opt)
}
