package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupProvider_NoEndpoint(t *testing.T) {
	shutdown, err := SetupProvider(context.Background(), Config{ServiceName: "versicle"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	// The no-op shutdown must be safe to call.
	assert.NoError(t, shutdown(context.Background()))
}

func TestRecordCodecMetrics_Noop(t *testing.T) {
	// With no meter provider configured, recording must not panic and
	// repeated calls must be cheap.
	for i := 0; i < 3; i++ {
		RecordCodecMetrics(context.Background(), CodecMetrics{
			Direction: DirectionEncode,
			Symbols:   8,
			Outcome:   "success",
			Duration:  time.Millisecond,
		})
		RecordCodecMetrics(context.Background(), CodecMetrics{
			Direction: DirectionDecode,
			Outcome:   "error",
			ErrorKind: "unknown_reference",
		})
	}
}
