package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Direction identifies the codec operation being recorded.
type Direction string

const (
	DirectionEncode Direction = "encode"
	DirectionDecode Direction = "decode"
)

var (
	metricsOnce           sync.Once
	metricsInitErr        error
	codecOperationCounter metric.Int64Counter
	codecSymbolCounter    metric.Int64Counter
	codecFailureCounter   metric.Int64Counter
	codecLatencyHistogram metric.Float64Histogram
)

// CodecMetrics captures the fields needed to record codec operation telemetry.
type CodecMetrics struct {
	Direction Direction
	Symbols   int
	Outcome   string
	ErrorKind string
	Duration  time.Duration
}

// RecordCodecMetrics emits counters and a histogram describing one codec
// operation.
func RecordCodecMetrics(ctx context.Context, metrics CodecMetrics) {
	if err := ensureMetrics(); err != nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("codec.direction", string(metrics.Direction)),
		attribute.String("codec.outcome", metrics.Outcome),
	}

	codecOperationCounter.Add(ctx, 1, metric.WithAttributes(attrs...))

	if metrics.Symbols > 0 {
		codecSymbolCounter.Add(ctx, int64(metrics.Symbols), metric.WithAttributes(attrs...))
	}

	if metrics.Duration > 0 {
		codecLatencyHistogram.Record(ctx, float64(metrics.Duration)/float64(time.Millisecond), metric.WithAttributes(attrs...))
	}

	if metrics.ErrorKind != "" {
		codecFailureCounter.Add(ctx, 1, metric.WithAttributes(append(attrs,
			attribute.String("codec.error_kind", metrics.ErrorKind))...))
	}
}

func ensureMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("versicle.codec")

		codecOperationCounter, metricsInitErr = meter.Int64Counter(
			"versicle.codec.operations_total",
			metric.WithDescription("Codec operations partitioned by direction and outcome"),
			metric.WithUnit("{count}"),
		)
		if metricsInitErr != nil {
			return
		}

		codecSymbolCounter, metricsInitErr = meter.Int64Counter(
			"versicle.codec.symbols_total",
			metric.WithDescription("Symbols translated by the codec"),
			metric.WithUnit("{count}"),
		)
		if metricsInitErr != nil {
			return
		}

		codecFailureCounter, metricsInitErr = meter.Int64Counter(
			"versicle.codec.failures_total",
			metric.WithDescription("Codec failures partitioned by error kind"),
			metric.WithUnit("{count}"),
		)
		if metricsInitErr != nil {
			return
		}

		codecLatencyHistogram, metricsInitErr = meter.Float64Histogram(
			"versicle.codec.duration_milliseconds",
			metric.WithDescription("Codec operation latency"),
			metric.WithUnit("ms"),
		)
	})
	return metricsInitErr
}
