package openai

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"context"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/gabriel-vasile/mimetype"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
	"github.com/hoopqueens/boxscore/internal/platform/logging"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4.1-2025-04-14"

	// Box-score tables are dense; keep sampling near-deterministic.
	extractionTemperature = 0.1

	maxResponseBytes = 6 << 20
)

// Extraction failure modes, each distinguishable by the caller: retry on
// rate limit, re-authenticate on credential rejection, abandon on decline.
var (
	ErrMissingCredential   = crerr.New("openai api key is not configured")
	ErrInvalidCredential   = crerr.New("openai api key was rejected")
	ErrRateLimited         = crerr.New("openai rate limit exceeded")
	ErrRefused             = crerr.New("model declined to extract the document")
	ErrEmptyResponse       = crerr.New("model returned no output")
	ErrUnsupportedDocument = crerr.New("unsupported document type")
	ErrExtraction          = crerr.New("extraction request failed")
)

var allowedMediaTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

// Document is one uploaded box-score file.
type Document struct {
	Name  string
	Bytes []byte
}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client calls the OpenAI Responses API with a strict JSON schema for
// the box-score package. One synchronous request per extraction; there is
// no built-in retry loop, retrying is a caller decision.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 90 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      model,
		logger:     logger,
	}
}

// DetectMediaType sniffs the document content and rejects anything
// outside the supported set before any network call is made.
func DetectMediaType(doc Document) (string, error) {
	if len(doc.Bytes) == 0 {
		return "", fmt.Errorf("%w: document is empty", ErrUnsupportedDocument)
	}

	detected := mimetype.Detect(doc.Bytes)
	mediaType := detected.String()
	if idx := strings.IndexByte(mediaType, ';'); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	if _, ok := allowedMediaTypes[mediaType]; !ok {
		return "", fmt.Errorf("%w: %s (expected PDF, JPEG or PNG)", ErrUnsupportedDocument, mediaType)
	}

	return mediaType, nil
}

// ExtractGameData uploads the document with reference-aware instructions
// and decodes the structured response into a GameData package.
func (c *Client) ExtractGameData(ctx context.Context, doc Document, instructions string) (boxscore.GameData, error) {
	mediaType, err := DetectMediaType(doc)
	if err != nil {
		return boxscore.GameData{}, err
	}

	if c.apiKey == "" {
		return boxscore.GameData{}, ErrMissingCredential
	}

	payload, err := buildExtractionRequest(c.model, doc, mediaType, instructions)
	if err != nil {
		return boxscore.GameData{}, fmt.Errorf("%w: encode request: %v", ErrExtraction, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(payload))
	if err != nil {
		return boxscore.GameData{}, fmt.Errorf("%w: build request: %v", ErrExtraction, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return boxscore.GameData{}, ctx.Err()
		}
		return boxscore.GameData{}, fmt.Errorf("%w: send request: %s", ErrExtraction, c.sanitize(err.Error()))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return boxscore.GameData{}, fmt.Errorf("%w: read response body: %v", ErrExtraction, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return boxscore.GameData{}, ErrInvalidCredential
	case resp.StatusCode == http.StatusTooManyRequests:
		return boxscore.GameData{}, ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.logger.WarnContext(ctx, "openai request failed", "status", resp.StatusCode)
		return boxscore.GameData{}, fmt.Errorf("%w: status=%d body=%s", ErrExtraction, resp.StatusCode, abbreviateBody(raw))
	}

	return decodeExtractionResponse(raw)
}

func decodeExtractionResponse(raw []byte) (boxscore.GameData, error) {
	var envelope responseEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return boxscore.GameData{}, fmt.Errorf("%w: decode response envelope: %v", ErrExtraction, err)
	}
	if envelope.Error != nil && envelope.Error.Message != "" {
		return boxscore.GameData{}, fmt.Errorf("%w: %s", ErrExtraction, envelope.Error.Message)
	}

	var outputText string
	for _, item := range envelope.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			switch content.Type {
			case "refusal":
				return boxscore.GameData{}, fmt.Errorf("%w: %s", ErrRefused, content.Refusal)
			case "output_text":
				outputText = content.Text
			}
		}
	}

	if strings.TrimSpace(outputText) == "" {
		return boxscore.GameData{}, ErrEmptyResponse
	}

	var data boxscore.GameData
	if err := sonic.Unmarshal([]byte(outputText), &data); err != nil {
		return boxscore.GameData{}, fmt.Errorf("%w: decode game data: %v", ErrExtraction, err)
	}

	return data, nil
}

func buildExtractionRequest(model string, doc Document, mediaType, instructions string) ([]byte, error) {
	encoded := base64.StdEncoding.EncodeToString(doc.Bytes)
	dataURL := fmt.Sprintf("data:%s;base64,%s", mediaType, encoded)

	var attachment map[string]any
	if mediaType == "application/pdf" {
		name := strings.TrimSpace(doc.Name)
		if name == "" {
			name = "boxscore.pdf"
		}
		attachment = map[string]any{
			"type":      "input_file",
			"filename":  name,
			"file_data": dataURL,
		}
	} else {
		attachment = map[string]any{
			"type":      "input_image",
			"image_url": dataURL,
		}
	}

	request := map[string]any{
		"model":       model,
		"temperature": extractionTemperature,
		"input": []map[string]any{
			{
				"role": "system",
				"content": []map[string]any{
					{"type": "input_text", "text": instructions},
				},
			},
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "input_text",
						"text": "Extract team and player statistics from this box score. " +
							"Use ONLY the player and team IDs from your instructions. " +
							"Match media_name format EXACTLY as shown in the player list.",
					},
					attachment,
				},
			},
		},
		"text": map[string]any{
			"format": map[string]any{
				"type":   "json_schema",
				"name":   "game_data",
				"strict": true,
				"schema": gameDataSchema(),
			},
		},
	}

	return sonic.Marshal(request)
}

func (c *Client) sanitize(value string) string {
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

func abbreviateBody(raw []byte) string {
	const limit = 300
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

type responseEnvelope struct {
	Status string          `json:"status"`
	Output []responseItem  `json:"output"`
	Error  *responseErrorB `json:"error"`
}

type responseItem struct {
	Type    string            `json:"type"`
	Content []responseContent `json:"content"`
}

type responseContent struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	Refusal string `json:"refusal"`
}

type responseErrorB struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
