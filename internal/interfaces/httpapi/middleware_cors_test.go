package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		handler := CORS([]string{"*"}, next)

		req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
		req.Header.Set("Origin", "https://example.com")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("specific origin is echoed with vary", func(t *testing.T) {
		handler := CORS([]string{"https://scores.example.com"}, next)

		req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
		req.Header.Set("Origin", "https://scores.example.com")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, "https://scores.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", recorder.Header().Get("Vary"))
	})

	t.Run("unlisted origin gets no cors headers", func(t *testing.T) {
		handler := CORS([]string{"https://scores.example.com"}, next)

		req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		handler := CORS([]string{"*"}, next)

		req := httptest.NewRequest(http.MethodOptions, "/v1/teams", nil)
		req.Header.Set("Origin", "https://example.com")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}
