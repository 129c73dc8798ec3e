package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
	"github.com/hoopqueens/boxscore/internal/platform/logging"
)

var pdfDocument = Document{
	Name:  "game-12.pdf",
	Bytes: []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n"),
}

var pngDocument = Document{
	Name:  "game-12.png",
	Bytes: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'},
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "sk-test-key",
		Model:      "gpt-test",
		Logger:     logging.NewNop(),
	})
}

func extractionResponse(t *testing.T, data boxscore.GameData) string {
	t.Helper()

	text, err := sonic.MarshalString(data)
	require.NoError(t, err)

	body, err := sonic.MarshalString(map[string]any{
		"status": "completed",
		"output": []map[string]any{
			{
				"type": "message",
				"content": []map[string]any{
					{"type": "output_text", "text": text},
				},
			},
		},
	})
	require.NoError(t, err)

	return body
}

func TestDetectMediaType(t *testing.T) {
	t.Run("accepts pdf", func(t *testing.T) {
		mediaType, err := DetectMediaType(pdfDocument)
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", mediaType)
	})

	t.Run("accepts png", func(t *testing.T) {
		mediaType, err := DetectMediaType(pngDocument)
		require.NoError(t, err)
		assert.Equal(t, "image/png", mediaType)
	})

	t.Run("rejects plain text", func(t *testing.T) {
		_, err := DetectMediaType(Document{Name: "scores.txt", Bytes: []byte("final score 81-77")})
		assert.ErrorIs(t, err, ErrUnsupportedDocument)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := DetectMediaType(Document{Name: "empty.pdf"})
		assert.ErrorIs(t, err, ErrUnsupportedDocument)
	})
}

func TestExtractGameData(t *testing.T) {
	t.Run("success decodes structured output", func(t *testing.T) {
		want := boxscore.GameData{
			TeamRecords: []boxscore.TeamRecord{
				{TeamID: 1, TeamName: "Metro Hawks", FinalScore: 81},
				{TeamID: 2, TeamName: "Bay Flames", FinalScore: 77},
			},
			PlayerRecords: []boxscore.PlayerRecord{
				{PlayerID: 101, TeamID: 1, MediaName: "C. Vaughn", Points: 24, Minutes: 33.5},
			},
		}

		var gotAuth string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/responses", r.URL.Path)

			var request map[string]any
			require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, "gpt-test", request["model"])

			_, _ = w.Write([]byte(extractionResponse(t, want)))
		})

		got, err := client.ExtractGameData(context.Background(), pdfDocument, "instructions")
		require.NoError(t, err)
		assert.Equal(t, "Bearer sk-test-key", gotAuth)
		assert.Equal(t, want, got)
	})

	t.Run("rejects unsupported document before any request", func(t *testing.T) {
		called := false
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := client.ExtractGameData(context.Background(), Document{Bytes: []byte("not a box score")}, "x")
		assert.ErrorIs(t, err, ErrUnsupportedDocument)
		assert.False(t, called)
	})

	t.Run("missing api key", func(t *testing.T) {
		client := NewClient(ClientConfig{BaseURL: "http://unused.invalid", Logger: logging.NewNop()})

		_, err := client.ExtractGameData(context.Background(), pdfDocument, "x")
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("unauthorized maps to credential error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
		})

		_, err := client.ExtractGameData(context.Background(), pdfDocument, "x")
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("rate limited", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"slow down"}}`, http.StatusTooManyRequests)
		})

		_, err := client.ExtractGameData(context.Background(), pngDocument, "x")
		assert.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("refusal", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"completed","output":[{"type":"message","content":[{"type":"refusal","refusal":"cannot read this document"}]}]}`))
		})

		_, err := client.ExtractGameData(context.Background(), pdfDocument, "x")
		require.ErrorIs(t, err, ErrRefused)
		assert.Contains(t, err.Error(), "cannot read this document")
	})

	t.Run("empty output", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"completed","output":[]}`))
		})

		_, err := client.ExtractGameData(context.Background(), pdfDocument, "x")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("api error envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"failed","error":{"code":"server_error","message":"upstream exploded"}}`))
		})

		_, err := client.ExtractGameData(context.Background(), pdfDocument, "x")
		require.ErrorIs(t, err, ErrExtraction)
		assert.Contains(t, err.Error(), "upstream exploded")
	})

	t.Run("server error redacts nothing but stays bounded", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, strings.Repeat("x", 2000), http.StatusInternalServerError)
		})

		_, err := client.ExtractGameData(context.Background(), pdfDocument, "x")
		require.ErrorIs(t, err, ErrExtraction)
		assert.Less(t, len(err.Error()), 600)
	})
}
