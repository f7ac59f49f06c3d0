package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrument(t *testing.T) {
	handler := Instrument(http.MethodGet, "/v1/test/:id")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fail") != "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	requests := APIRequestCounter.WithLabelValues(http.MethodGet, "/v1/test/:id")
	errors := APIErrorCounter.WithLabelValues(http.MethodGet, "/v1/test/:id", "404")
	requestsBefore := testutil.ToFloat64(requests)
	errorsBefore := testutil.ToFloat64(errors)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/test/1", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/test/2?fail=1", nil))

	assert.Equal(t, requestsBefore+2, testutil.ToFloat64(requests))
	assert.Equal(t, errorsBefore+1, testutil.ToFloat64(errors))
}

func TestRecordRetention(t *testing.T) {
	counter := RetentionDeletedRows.WithLabelValues("rank_records")
	before := testutil.ToFloat64(counter)

	RecordRetention("rank_records", 7)
	RecordRetention("rank_records", 0)

	assert.Equal(t, before+7, testutil.ToFloat64(counter))
}
