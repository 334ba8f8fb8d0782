package repository

import (
	"context"

	"wealthflow/config"
	"wealthflow/pkg/logger"
)

type Repository struct {
	InsightRepo      InsightRepository
	ConversationRepo ConversationRepository
	ContentRepo      ContentRepository
}

func NewRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repository, error) {
	var geminiAIRepo AIRepository
	if cfg.Gemini.APIKey == "" {
		log.Warn("Gemini API key is not set, AI insight and chat will answer with fallback messages")
		geminiAIRepo = NewUnavailableAIRepository()
	} else {
		repo, err := NewGeminiAIRepository(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		geminiAIRepo = repo
	}

	var insightRepo InsightRepository = geminiAIRepo
	if cfg.Gemini.InsightTransport == config.InsightTransportREST && cfg.Gemini.APIKey != "" {
		insightRepo = NewGeminiRESTRepository(cfg, log)
	}

	return &Repository{
		InsightRepo:      insightRepo,
		ConversationRepo: geminiAIRepo,
		ContentRepo:      NewContentRepository(),
	}, nil
}
