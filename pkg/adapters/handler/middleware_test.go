package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		expectedStatus int
		reachesNext    bool
	}{
		{
			name:           "Preflight short-circuits",
			method:         http.MethodOptions,
			expectedStatus: http.StatusNoContent,
			reachesNext:    false,
		},
		{
			name:           "GET passes through",
			method:         http.MethodGet,
			expectedStatus: http.StatusTeapot,
			reachesNext:    true,
		},
		{
			name:           "POST passes through",
			method:         http.MethodPost,
			expectedStatus: http.StatusTeapot,
			reachesNext:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/shorten", nil)
			rr := httptest.NewRecorder()

			called := false
			handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			}))

			handler.ServeHTTP(rr, req)

			if status := rr.Code; status != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v",
					status, tt.expectedStatus)
			}
			if called != tt.reachesNext {
				t.Errorf("next handler called = %v, want %v", called, tt.reachesNext)
			}
			if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
				t.Errorf("missing allow-origin header, got %q", origin)
			}
		})
	}
}

func TestRequestLogger_PreservesStatus(t *testing.T) {
	mw := RequestLogger(zap.NewNop())
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}
