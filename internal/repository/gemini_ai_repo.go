package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"wealthflow/config"
	"wealthflow/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// InsightRepository answers a single free-text question with no retained history.
type InsightRepository interface {
	GenerateInsight(ctx context.Context, query string) (string, error)
}

// Conversation is an opaque handle to history held by the hosted model.
type Conversation interface {
	Send(ctx context.Context, text string) (string, error)
}

type ConversationRepository interface {
	StartConversation(ctx context.Context) (Conversation, error)
}

type AIRepository interface {
	InsightRepository
	ConversationRepository
}

// geminiAIRepository talks to Gemini through the official SDK.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	return newGeminiAIRepository(ctx, cfg, log, nil)
}

func newGeminiAIRepository(ctx context.Context, cfg *config.Config, log *logger.Logger, httpOptions *genai.HTTPOptions) (*geminiAIRepository, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.Gemini.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Gemini.Timeout},
	}
	if httpOptions != nil {
		clientCfg.HTTPOptions = *httpOptions
	}

	genAiClient, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: newRequestLimiter(cfg.Gemini.MaxRequestPerMinute),
		genAiClient:    genAiClient,
	}, nil
}

// ErrAIUnconfigured is returned by every call when no API key is configured.
var ErrAIUnconfigured = errors.New("gemini api key is not configured")

type unavailableAIRepository struct{}

// NewUnavailableAIRepository keeps the site up without a credential; every
// call fails and callers fall back to their fixed messages.
func NewUnavailableAIRepository() AIRepository {
	return unavailableAIRepository{}
}

func (unavailableAIRepository) GenerateInsight(ctx context.Context, query string) (string, error) {
	return "", ErrAIUnconfigured
}

func (unavailableAIRepository) StartConversation(ctx context.Context) (Conversation, error) {
	return nil, ErrAIUnconfigured
}

func newRequestLimiter(perMinute int) *rate.Limiter {
	secondsPerRequest := time.Minute / time.Duration(perMinute)
	return rate.NewLimiter(rate.Every(secondsPerRequest), max(1, perMinute/6))
}

func (r *geminiAIRepository) GenerateInsight(ctx context.Context, query string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request gemini limit: %w", err)
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.InsightModel, genai.Text(query), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(InsightInstruction(), genai.RoleUser),
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to generate insight", logger.ErrorField(err), logger.StringField("model", r.cfg.Gemini.InsightModel))
		return "", fmt.Errorf("failed to send request to gemini: %w", err)
	}

	return resp.Text(), nil
}

func (r *geminiAIRepository) StartConversation(ctx context.Context) (Conversation, error) {
	chat, err := r.genAiClient.Chats.Create(ctx, r.cfg.Gemini.ChatModel, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(ConciergeInstruction(), genai.RoleUser),
	}, nil)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to create gemini chat", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to create gemini chat: %w", err)
	}

	return &geminiConversation{
		chat:    chat,
		limiter: r.requestLimiter,
		logger:  r.logger,
	}, nil
}

type geminiConversation struct {
	chat    *genai.Chat
	limiter *rate.Limiter
	logger  *logger.Logger
}

func (c *geminiConversation) Send(ctx context.Context, text string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request gemini limit: %w", err)
	}

	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to send chat message to gemini", logger.ErrorField(err))
		return "", fmt.Errorf("failed to send chat message to gemini: %w", err)
	}

	return resp.Text(), nil
}
