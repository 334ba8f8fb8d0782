package strategy

import (
	"math/rand/v2"
	"sync"

	"wealthflow/internal/model"
)

const (
	DefaultVolatility  = 0.002
	DefaultChangeDrift = 0.1
)

// QuoteStrategy produces the next quote from the current one.
type QuoteStrategy interface {
	Next(q model.AssetQuote) model.AssetQuote
	GetType() string
}

// UniformSource returns a value in [-1, 1).
type UniformSource func() float64

type randomWalk struct {
	volatility  float64
	changeDrift float64
	uniform     UniformSource
}

// NewRandomWalk moves price by up to volatility*price and the percent change
// by up to changeDrift per step. Change is never clamped.
func NewRandomWalk(volatility, changeDrift float64, uniform UniformSource) QuoteStrategy {
	if uniform == nil {
		uniform = NewUniformSource(nil)
	}
	return &randomWalk{
		volatility:  volatility,
		changeDrift: changeDrift,
		uniform:     uniform,
	}
}

func (w *randomWalk) Next(q model.AssetQuote) model.AssetQuote {
	next := q
	next.Price = q.Price + w.uniform()*q.Price*w.volatility
	next.Change = q.Change + w.uniform()*w.changeDrift
	return next
}

func (w *randomWalk) GetType() string {
	return "random_walk"
}

// NewUniformSource wraps r (or a fresh PCG seeded generator when nil) as a
// goroutine-safe UniformSource.
func NewUniformSource(r *rand.Rand) UniformSource {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	var mu sync.Mutex
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()*2 - 1
	}
}
