package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(DecodedInstructions.WithLabelValues("deposit"))
	DecodedInstructions.WithLabelValues("deposit").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(DecodedInstructions.WithLabelValues("deposit")))

	LookupFetches.WithLabelValues("memory", ResultHit).Add(2)
	assert.GreaterOrEqual(t, testutil.ToFloat64(LookupFetches.WithLabelValues("memory", ResultHit)), float64(2))

	LastProcessedSlot.WithLabelValues("grpc").Set(123)
	assert.Equal(t, float64(123), testutil.ToFloat64(LastProcessedSlot.WithLabelValues("grpc")))
}
