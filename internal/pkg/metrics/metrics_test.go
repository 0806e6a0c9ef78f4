package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	before := testutil.ToFloat64(OperationCount("test/op", OutcomeFulfilled))

	ObserveOperation("test/op", OutcomeFulfilled, 15*time.Millisecond)
	ObserveOperation("test/op", OutcomeFulfilled, 5*time.Millisecond)
	ObserveOperation("test/op", OutcomeRejected, time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(OperationCount("test/op", OutcomeFulfilled)))
	assert.Equal(t, float64(1), testutil.ToFloat64(OperationCount("test/op", OutcomeRejected)))
}

func TestRecordPushFrame(t *testing.T) {
	RecordPushFrame("notification")
	assert.Equal(t, float64(1), testutil.ToFloat64(PushFrameCount("notification")))
}
