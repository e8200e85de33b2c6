package soil

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"
	"soilsense/internal/httpserver"
	"soilsense/internal/llm"
)

const (
	msgInvalidJSON   = "Invalid JSON in request body."
	msgMissingFields = "Missing required fields in the request body."
	msgRateLimited   = "Rate limit exceeded."
	msgRetryLater    = "Gemini API quota exceeded. Please wait a moment and try again."
	msgAnalyzeFailed = "Failed to analyze soil data."

	// fallbackAnalysis подставляется, когда модель вернула пустой ответ.
	fallbackAnalysis = "No response from Gemini."
)

type AnalyzeDeps struct {
	LLM    llm.Client
	Logger *slog.Logger
}

type AnalyzeHandler struct {
	llm    llm.Client
	logger *slog.Logger
}

func NewAnalyzeHandler(deps AnalyzeDeps) *AnalyzeHandler {
	return &AnalyzeHandler{
		llm:    deps.LLM,
		logger: deps.Logger,
	}
}

func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var sample Sample
	if err := json.NewDecoder(r.Body).Decode(&sample); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if err := sample.Validate(); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	prompt := BuildPrompt(sample)
	resp, err := h.llm.Complete(r.Context(), prompt)
	if err != nil {
		h.respondUpstreamFailure(w, sample.CropName, err)
		return
	}

	analysis, ok := resp.FirstText()
	if !ok {
		analysis = fallbackAnalysis
	}

	httpserver.WriteJSON(w, http.StatusOK, AnalysisResult{
		Success:  true,
		Crop:     sample.CropName,
		Analysis: analysis,
	})
}

// respondUpstreamFailure переводит ошибку клиента Gemini в HTTP статус:
// 429 остаётся 429, всё остальное становится 500.
func (h *AnalyzeHandler) respondUpstreamFailure(w http.ResponseWriter, crop string, err error) {
	var uerr *llm.UpstreamError
	if errors.As(err, &uerr) && uerr.StatusCode == http.StatusTooManyRequests {
		message := uerr.Message()
		if message == "" {
			message = msgRetryLater
		}
		h.logger.Warn("analysis rate limited",
			slog.String("crop", crop),
			slog.String("upstream_message", message))
		httpserver.WriteErrorDetail(w, http.StatusTooManyRequests, msgRateLimited, message)
		return
	}

	h.logger.Error("analysis failed",
		slog.String("crop", crop),
		slog.String("error", err.Error()))
	httpserver.WriteErrorDetail(w, http.StatusInternalServerError, msgAnalyzeFailed, err.Error())
}
