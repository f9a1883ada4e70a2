package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Rrens/fitsmart/internal/metrics"
)

func TestDeviceContext(t *testing.T) {
	var got uuid.UUID
	r := chi.NewRouter()
	r.With(DeviceContext).Get("/devices/{deviceID}", func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetDeviceID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	id := uuid.New()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/devices/"+id.String(), nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, id, got)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/devices/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid device ID")
}

func TestMetrics(t *testing.T) {
	m := metrics.NewTestManager()
	h := Metrics(m)(Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("POST", "418")))
}

func TestMaxBody(t *testing.T) {
	h := MaxBody(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abc")))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abcdefgh")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
