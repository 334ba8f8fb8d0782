package service

import (
	"time"

	"wealthflow/pkg/cache"
	"wealthflow/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Janitor periodically drops per-visitor chat limiters that outlived their session.
type Janitor struct {
	log   *logger.Logger
	chat  ChatService
	cache cache.Cache
	ttl   time.Duration
	cron  *cron.Cron
}

func NewJanitor(log *logger.Logger, chat ChatService, inmemoryCache cache.Cache, sessionTTL time.Duration) *Janitor {
	return &Janitor{
		log:   log,
		chat:  chat,
		cache: inmemoryCache,
		ttl:   sessionTTL,
		cron:  newCron(log),
	}
}

func (j *Janitor) Start(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

func (j *Janitor) Run() {
	removed := j.chat.CleanupLimiters(j.ttl)
	j.log.Debug("janitor run",
		logger.IntField("removed_limiters", removed),
		logger.IntField("cached_entries", j.cache.Count()),
	)
}

func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}
