package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"wealthflow/internal/model"
	"wealthflow/internal/strategy"
	"wealthflow/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func fixedWalk(v float64) strategy.QuoteStrategy {
	return strategy.NewRandomWalk(strategy.DefaultVolatility, strategy.DefaultChangeDrift, func() float64 { return v })
}

func TestMarketFeed_SeededAndTick(t *testing.T) {
	feed := NewMarketFeed(logger.NewNop(), fixedWalk(1), time.Second, model.DefaultAssetSeeds())
	defer feed.Close()

	before := feed.Snapshot()
	require.Len(t, before, 5)
	assert.Equal(t, "SPX", before[0].Symbol)

	feed.Tick()
	after := feed.Snapshot()
	for i := range before {
		assert.Equal(t, before[i].Symbol, after[i].Symbol, "order is fixed")
		assert.InDelta(t, before[i].Price*1.002, after[i].Price, 1e-6)
		assert.InDelta(t, before[i].Change+0.1, after[i].Change, 1e-9)
	}
}

func TestMarketFeed_SnapshotIsACopy(t *testing.T) {
	feed := NewMarketFeed(logger.NewNop(), fixedWalk(0), time.Second, model.DefaultAssetSeeds())
	defer feed.Close()

	snap := feed.Snapshot()
	snap[0].Price = -1
	assert.Greater(t, feed.Snapshot()[0].Price, 0.0)
}

func TestMarketFeed_PricesStayPositive(t *testing.T) {
	walk := strategy.NewRandomWalk(strategy.DefaultVolatility, strategy.DefaultChangeDrift,
		strategy.NewUniformSource(rand.New(rand.NewPCG(3, 4))))
	feed := NewMarketFeed(logger.NewNop(), walk, time.Second, model.DefaultAssetSeeds())
	defer feed.Close()

	for i := 0; i < 5000; i++ {
		feed.Tick()
	}
	for _, q := range feed.Snapshot() {
		assert.Greater(t, q.Price, 0.0, q.Symbol)
	}
}

func TestMarketFeed_Movers(t *testing.T) {
	seeds := []model.AssetQuote{
		{Symbol: "A", Price: 1, Change: 0.3},
		{Symbol: "B", Price: 1, Change: -2.5},
		{Symbol: "C", Price: 1, Change: 1.1},
	}
	feed := NewMarketFeed(logger.NewNop(), fixedWalk(0), time.Second, seeds)
	defer feed.Close()

	var symbols []string
	for _, q := range feed.Movers() {
		symbols = append(symbols, q.Symbol)
	}
	assert.Equal(t, []string{"B", "C", "A"}, symbols)
	assert.Equal(t, "A", feed.Snapshot()[0].Symbol, "movers does not reorder the feed")
}

func TestMarketFeed_TimerFollowsSubscribers(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	feed := NewMarketFeed(logger.NewNop(), fixedWalk(1), time.Second, model.DefaultAssetSeeds())
	assert.False(t, feed.Running(), "idle until a view subscribes")

	ch1, unsubscribe1 := feed.Subscribe(context.Background())
	ctx, cancel := context.WithCancel(context.Background())
	ch2, _ := feed.Subscribe(ctx)
	assert.True(t, feed.Running())
	assert.Equal(t, 2, feed.Subscribers())

	first := <-ch1
	assert.Len(t, first, 5, "current snapshot is delivered immediately")
	<-ch2

	select {
	case snap := <-ch1:
		assert.Greater(t, snap[0].Price, first[0].Price)
	case <-time.After(3 * time.Second):
		t.Fatal("no scheduled tick")
	}

	unsubscribe1()
	unsubscribe1()
	_, open := <-drain(ch1)
	assert.False(t, open, "channel closed on unsubscribe")
	assert.True(t, feed.Running(), "still one view left")

	cancel()
	_, open = <-drain(ch2)
	assert.False(t, open, "channel closed on context cancel")
	assert.Eventually(t, func() bool { return !feed.Running() }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, feed.Subscribers())

	feed.Close()
}

func TestMarketFeed_CloseEndsSubscriptions(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	feed := NewMarketFeed(logger.NewNop(), fixedWalk(0), time.Second, model.DefaultAssetSeeds())
	ch, unsubscribe := feed.Subscribe(context.Background())
	feed.Close()
	unsubscribe()

	_, open := <-drain(ch)
	assert.False(t, open)
	assert.False(t, feed.Running())

	late, _ := feed.Subscribe(context.Background())
	_, open = <-drain(late)
	assert.False(t, open, "subscriptions after close end immediately")
}

// drain discards buffered snapshots so the next receive observes closure.
func drain(ch <-chan []model.AssetQuote) <-chan []model.AssetQuote {
	out := make(chan []model.AssetQuote)
	go func() {
		for range ch {
		}
		close(out)
	}()
	return out
}
