package repository

import (
	"context"
	"fmt"
	"net/http"

	"wealthflow/config"
	"wealthflow/internal/dto"
	"wealthflow/pkg/httpclient"
	"wealthflow/pkg/logger"

	"golang.org/x/time/rate"
)

// geminiRESTRepository calls the generateContent REST endpoint directly.
// It only serves one-shot insights; chats need the SDK's server-held history.
type geminiRESTRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewGeminiRESTRepository(cfg *config.Config, log *logger.Logger) InsightRepository {
	return &geminiRESTRepository{
		httpClient:     httpclient.New(log, cfg.Gemini.BaseURL, cfg.Gemini.Timeout, ""),
		cfg:            cfg,
		logger:         log,
		requestLimiter: newRequestLimiter(cfg.Gemini.MaxRequestPerMinute),
	}
}

func (r *geminiRESTRepository) GenerateInsight(ctx context.Context, query string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request gemini limit: %w", err)
	}

	payload := dto.GeminiAPIRequest{
		SystemInstruction: &dto.Content{Parts: []dto.Part{{Text: InsightInstruction()}}},
		Contents:          []dto.Content{{Role: "user", Parts: []dto.Part{{Text: query}}}},
	}

	geminiAPIResponse := dto.GeminiAPIResponse{}
	apiURL := fmt.Sprintf("/%s:generateContent", r.cfg.Gemini.InsightModel)
	headers := map[string]string{"x-goog-api-key": r.cfg.Gemini.APIKey}

	geminiResp, err := r.httpClient.Post(ctx, apiURL, payload, headers, &geminiAPIResponse)
	if err != nil {
		return "", fmt.Errorf("failed to send request to gemini: %w", err)
	}

	if geminiResp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "failed to get data from gemini", logger.IntField("status_code", geminiResp.StatusCode))
		return "", fmt.Errorf("failed to get data: status %d", geminiResp.StatusCode)
	}

	return geminiAPIResponse.Text(), nil
}
