package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorsAreRegistered(t *testing.T) {
	before := testutil.ToFloat64(AuthEvents.WithLabelValues("login", OutcomeSuccess))
	AuthEvents.WithLabelValues("login", OutcomeSuccess).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(AuthEvents.WithLabelValues("login", OutcomeSuccess)))

	HTTPRequestDuration.WithLabelValues("200", "get").Observe(0.01)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}
