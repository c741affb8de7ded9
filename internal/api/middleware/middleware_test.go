package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var seenID string
	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/x", nil))

	if seenID == "" {
		t.Fatal("идентификатор запроса не попал в контекст")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seenID {
		t.Errorf("%s = %q, хотели %q", RequestIDHeader, got, seenID)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("для 404 ожидался уровень WARN, лог: %s", out)
	}
	if !strings.Contains(out, "status=404") {
		t.Errorf("в логе нет статуса, лог: %s", out)
	}
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "req-42" {
		t.Errorf("%s = %q, хотели req-42", RequestIDHeader, got)
	}
}

func TestMetricsMiddleware_RoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(MetricsMiddleware())
	router.Get("/api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/products/{id}", "204"))
	for _, id := range []string{"a", "b", "c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/products/"+id, nil))
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/products/{id}", "204"))

	if after-before != 3 {
		t.Errorf("счётчик вырос на %v, хотели 3", after-before)
	}
}

func TestMetricsMiddleware_Unmatched(t *testing.T) {
	router := chi.NewRouter()
	router.Use(MetricsMiddleware())
	router.Get("/known", func(w http.ResponseWriter, r *http.Request) {})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedPath, "404"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/unknown/123", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedPath, "404"))

	if after-before != 1 {
		t.Errorf("счётчик unmatched вырос на %v, хотели 1", after-before)
	}
}
