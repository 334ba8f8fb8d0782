package service

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"wealthflow/config"
	"wealthflow/internal/model"
	"wealthflow/internal/strategy"
	"wealthflow/pkg/logger"

	"github.com/robfig/cron/v3"
)

// MarketService is the simulated market pulse. Quotes advance on a fixed
// interval, but only while at least one view is subscribed.
type MarketService interface {
	Snapshot() []model.AssetQuote
	Movers() []model.AssetQuote
	Subscribe(ctx context.Context) (<-chan []model.AssetQuote, func())
	Subscribers() int
	Running() bool
	Tick()
	Close()
}

type marketFeed struct {
	log      *logger.Logger
	walk     strategy.QuoteStrategy
	interval time.Duration

	mu     sync.RWMutex
	quotes []model.AssetQuote

	subMu  sync.Mutex
	subs   map[uint64]chan []model.AssetQuote
	nextID uint64
	cron   *cron.Cron
	closed bool
}

func NewMarketService(cfg *config.Config, log *logger.Logger, walk strategy.QuoteStrategy) MarketService {
	return NewMarketFeed(log, walk, cfg.Market.TickInterval, model.DefaultAssetSeeds())
}

func NewMarketFeed(log *logger.Logger, walk strategy.QuoteStrategy, interval time.Duration, seeds []model.AssetQuote) MarketService {
	return &marketFeed{
		log:      log,
		walk:     walk,
		interval: interval,
		quotes:   append([]model.AssetQuote(nil), seeds...),
		subs:     make(map[uint64]chan []model.AssetQuote),
	}
}

func (f *marketFeed) Snapshot() []model.AssetQuote {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]model.AssetQuote(nil), f.quotes...)
}

// Movers orders the snapshot by absolute percent change, largest first.
func (f *marketFeed) Movers() []model.AssetQuote {
	quotes := f.Snapshot()
	sort.SliceStable(quotes, func(i, j int) bool {
		return math.Abs(quotes[i].Change) > math.Abs(quotes[j].Change)
	})
	return quotes
}

// Tick advances every quote one step and publishes the new snapshot.
func (f *marketFeed) Tick() {
	f.mu.Lock()
	for i, q := range f.quotes {
		f.quotes[i] = f.walk.Next(q)
	}
	snapshot := append([]model.AssetQuote(nil), f.quotes...)
	f.mu.Unlock()

	f.subMu.Lock()
	defer f.subMu.Unlock()
	for _, ch := range f.subs {
		publish(ch, snapshot)
	}
}

// publish replaces any unread snapshot so slow readers only see the latest.
func publish(ch chan []model.AssetQuote, snapshot []model.AssetQuote) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snapshot:
	default:
	}
}

// Subscribe returns a channel that receives the current snapshot immediately
// and a new one every tick. The subscription ends when ctx is done or the
// returned function is called; the channel is then closed.
func (f *marketFeed) Subscribe(ctx context.Context) (<-chan []model.AssetQuote, func()) {
	ch := make(chan []model.AssetQuote, 1)
	ch <- f.Snapshot()

	f.subMu.Lock()
	if f.closed {
		f.subMu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := f.nextID
	f.nextID++
	f.subs[id] = ch
	if len(f.subs) == 1 {
		f.startLocked()
	}
	f.subMu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			f.unsubscribe(id)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			unsubscribe()
		case <-done:
		}
	}()

	return ch, unsubscribe
}

func (f *marketFeed) unsubscribe(id uint64) {
	f.subMu.Lock()
	ch, ok := f.subs[id]
	if !ok {
		f.subMu.Unlock()
		return
	}
	delete(f.subs, id)
	close(ch)

	var stopped *cron.Cron
	if len(f.subs) == 0 {
		stopped = f.cron
		f.cron = nil
	}
	f.subMu.Unlock()

	// Wait outside the lock: a running tick needs subMu to publish.
	if stopped != nil {
		<-stopped.Stop().Done()
		f.log.Debug("market feed stopped, no subscribers left")
	}
}

func (f *marketFeed) startLocked() {
	c := newCron(f.log)
	c.Schedule(cron.Every(f.interval), cron.FuncJob(f.Tick))
	c.Start()
	f.cron = c
	f.log.Debug("market feed started",
		logger.DurationField("interval", f.interval),
		logger.StringField("strategy", f.walk.GetType()),
	)
}

func (f *marketFeed) Subscribers() int {
	f.subMu.Lock()
	defer f.subMu.Unlock()
	return len(f.subs)
}

func (f *marketFeed) Running() bool {
	f.subMu.Lock()
	defer f.subMu.Unlock()
	return f.cron != nil
}

// Close ends every subscription and stops the timer.
func (f *marketFeed) Close() {
	f.subMu.Lock()
	f.closed = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
	stopped := f.cron
	f.cron = nil
	f.subMu.Unlock()

	if stopped != nil {
		<-stopped.Stop().Done()
	}
}

// newCron builds a scheduler whose messages and recovered panics go to log.
func newCron(log *logger.Logger) *cron.Cron {
	cronLog := logger.NewCronLogger(log)
	return cron.New(cron.WithLogger(cronLog), cron.WithChain(cron.Recover(cronLog)))
}
