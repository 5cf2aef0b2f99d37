package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveHTTPRequest(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/random/teams", "400")
	before := testutil.ToFloat64(counter)

	ObserveHTTPRequest(HTTPRequest{
		Method:       http.MethodPost,
		Endpoint:     "/random/teams",
		Status:       http.StatusBadRequest,
		Duration:     15 * time.Millisecond,
		RequestSize:  42,
		ResponseSize: 87,
	})

	require.Equal(t, before+1, testutil.ToFloat64(counter))
	require.GreaterOrEqual(t, testutil.CollectAndCount(httpDuration, "http_request_duration_seconds"), 1)
	require.GreaterOrEqual(t, testutil.CollectAndCount(httpRequestSize, "http_request_size_bytes"), 1)
	require.GreaterOrEqual(t, testutil.CollectAndCount(httpResponseSize, "http_response_size_bytes"), 1)
}
