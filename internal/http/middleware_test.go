package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(zap.NewNop()))
	router.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value("correlation_id") == nil {
			t.Error("correlation_id missing from request context")
		}
		if r.Context().Value("logger") == nil {
			t.Error("logger missing from request context")
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	got := rec.Header().Get("X-Correlation-ID")
	if got == "" {
		t.Fatal("X-Correlation-ID header not set")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("X-Correlation-ID %q is not a UUID: %v", got, err)
	}
}

func TestCorrelationIDMiddleware_HonorsIncomingID(t *testing.T) {
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(zap.NewNop()))
	router.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Correlation-ID", "caller-supplied-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Correlation-ID"); got != "caller-supplied-id" {
		t.Errorf("X-Correlation-ID = %q, want caller-supplied-id", got)
	}
}

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/health", want: "/health"},
		{path: "/metrics", want: "/metrics"},
		{path: "/api/tools", want: "/api/tools"},
		{path: "/api/tools/get_weather", want: "/api/tools/{name}"},
		{path: "/unrelated", want: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if got := routeLabel(req); got != tt.want {
				t.Errorf("routeLabel(%s) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
