package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestMessageCounters(t *testing.T) {
	before := testutil.ToFloat64(messagesPublished.WithLabelValues("entity"))
	MessagePublished("entity")
	MessagePublished("entity")
	assert.Equal(t, before+2, testutil.ToFloat64(messagesPublished.WithLabelValues("entity")))

	before = testutil.ToFloat64(messagesReceived.WithLabelValues("control"))
	MessageReceived("control")
	assert.Equal(t, before+1, testutil.ToFloat64(messagesReceived.WithLabelValues("control")))

	before = testutil.ToFloat64(messagesDropped.WithLabelValues(ReasonMalformed))
	MessageDropped(ReasonMalformed)
	assert.Equal(t, before+1, testutil.ToFloat64(messagesDropped.WithLabelValues(ReasonMalformed)))
}

func TestGauges(t *testing.T) {
	SetEntities("broker:1883", 7)
	assert.Equal(t, float64(7), testutil.ToFloat64(entities.WithLabelValues("broker:1883")))

	ForgetService("broker:1883")
	assert.Equal(t, 0, testutil.CollectAndCount(entities, "worldsync_entities"))

	SetSynchronizers(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(synchronizers))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	MessagePublished("app")
	RecordHTTPRequest(http.MethodGet, "/api/version", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "worldsync_messages_published_total")
	assert.Contains(t, rec.Body.String(), "worldsync_http_requests_total")
}
