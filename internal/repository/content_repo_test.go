package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentRepository(t *testing.T) {
	repo := NewContentRepository()
	ctx := context.Background()

	assert.Len(t, repo.NavLinks(ctx), 4)
	assert.Len(t, repo.Features(ctx), 5)
	assert.Len(t, repo.FAQs(ctx), 2)

	plans := repo.Plans(ctx)
	assert.Len(t, plans, 3)

	popular := 0
	for _, p := range plans {
		if p.Popular {
			popular++
			assert.Equal(t, "pro", p.ID)
		}
	}
	assert.Equal(t, 1, popular)

	elite, ok := repo.FindPlan(ctx, "elite")
	assert.True(t, ok)
	assert.True(t, elite.ContactSales)

	_, ok = repo.FindPlan(ctx, "platinum")
	assert.False(t, ok)
}

func TestContentRepository_ReturnsCopies(t *testing.T) {
	repo := NewContentRepository()
	ctx := context.Background()

	plans := repo.Plans(ctx)
	plans[0].Features[0] = "mutated"
	plans[0].Name = "mutated"

	again := repo.Plans(ctx)
	assert.Equal(t, "Core", again[0].Name)
	assert.Equal(t, "Real-time market data", again[0].Features[0])
}
