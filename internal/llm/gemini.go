package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"log/slog"
	"soilsense/internal/config"
)

// geminiEndpoint фиксирован и не настраивается через конфигурацию.
const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

type GeminiClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewGeminiClient(cfg config.GeminiConfig, httpClient *http.Client, logger *slog.Logger) Client {
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		endpoint:   geminiEndpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Complete выполняет ровно один запрос к generateContent.
// Повторов нет: классификацию ошибки и ответ клиенту делает обработчик.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (*CompletionResponse, error) {
	requestBody := completionRequest{
		Contents: []requestContent{
			{Parts: []Part{{Text: prompt}}},
		},
	}

	buf, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("gemini request failed", slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Error("gemini request failed",
				slog.Int("status", resp.StatusCode),
				slog.String("body", string(bodyBytes)))
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	// Неразбираемое тело 2xx приравнивается к ответу без кандидатов:
	// вызывающий подставит заглушку, запрос не падает.
	var parsed CompletionResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		if c.logger != nil {
			c.logger.Warn("gemini response undecodable",
				slog.String("error", err.Error()),
				slog.String("body", string(bodyBytes)))
		}
		return &CompletionResponse{}, nil
	}
	return &parsed, nil
}

// UpstreamError — не-2xx ответ Gemini API со статусом и сырым телом.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini status %d: %s", e.StatusCode, e.Body)
}

// Message достаёт текст ошибки из конверта Google API.
// Пустая строка, если тело не похоже на такой конверт.
func (e *UpstreamError) Message() string {
	var parsed upstreamErrorBody
	if err := json.Unmarshal([]byte(e.Body), &parsed); err != nil {
		return ""
	}
	return parsed.Error.Message
}
