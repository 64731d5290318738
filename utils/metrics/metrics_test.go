package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpstream(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("status_error"))
	RecordUpstream("status_error")
	RecordUpstream("status_error")
	assert.Equal(t, before+2, testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("status_error")))
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/v1/categories", "200"))
	RecordRequest("GET", "/api/v1/categories", 200, 5*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/v1/categories", "200")))
}

func TestRecordSubmission(t *testing.T) {
	before := testutil.ToFloat64(submissionsTotal)
	RecordSubmission()
	assert.Equal(t, before+1, testutil.ToFloat64(submissionsTotal))
}
