package service

import (
	"wealthflow/config"
	"wealthflow/internal/repository"
	"wealthflow/internal/strategy"
	"wealthflow/pkg/cache"
	"wealthflow/pkg/logger"
)

type Service struct {
	ThemeService   ThemeService
	MarketService  MarketService
	InsightService InsightService
	ChatService    ChatService
	PricingService PricingService
	ContactService ContactService
	Janitor        *Janitor
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	inmemoryCache.OnEvicted(func(key string, _ interface{}) {
		log.Debug("session state expired", logger.StringField("key", key))
	})

	walk := strategy.NewRandomWalk(cfg.Market.Volatility, cfg.Market.ChangeDrift, nil)
	chatService := NewChatService(cfg, log, repo.ConversationRepo, inmemoryCache)

	return &Service{
		ThemeService:   NewThemeService(cfg, inmemoryCache),
		MarketService:  NewMarketService(cfg, log, walk),
		InsightService: NewInsightService(log, repo.InsightRepo),
		ChatService:    chatService,
		PricingService: NewPricingService(repo.ContentRepo),
		ContactService: NewContactService(log),
		Janitor:        NewJanitor(log, chatService, inmemoryCache, cfg.Session.TTL),
	}
}
