package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewRouterBuiltinRoutes(t *testing.T) {
	r := NewRouter(Config{})

	tests := map[string]struct {
		path     string
		wantCode int
		wantBody map[string]string
	}{
		"root greets": {
			path:     "/",
			wantCode: http.StatusOK,
			wantBody: map[string]string{"message": "Welcome to GoKart API"},
		},
		"health reports ok": {
			path:     "/health",
			wantCode: http.StatusOK,
			wantBody: map[string]string{"status": "ok"},
		},
		"unknown path is not found": {
			path:     "/nope",
			wantCode: http.StatusNotFound,
			wantBody: map[string]string{"message": "endpoint not found"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if rec.Code != tc.wantCode {
				t.Fatalf("GET %s status = %d, want %d", tc.path, rec.Code, tc.wantCode)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			for k, want := range tc.wantBody {
				if body[k] != want {
					t.Fatalf("body[%q] = %q, want %q", k, body[k], want)
				}
			}
		})
	}
}
