package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightState_Lifecycle(t *testing.T) {
	var s InsightState

	s.Begin("What is diversification?")
	assert.True(t, s.Loading)
	assert.Nil(t, s.Response)
	assert.Nil(t, s.Error)

	s.Resolve("Diversify across asset classes.")
	assert.False(t, s.Loading)
	require.NotNil(t, s.Response)
	assert.Equal(t, "Diversify across asset classes.", *s.Response)
	assert.Nil(t, s.Error)

	// the next submission replaces, never merges
	s.Begin("again")
	assert.Nil(t, s.Response)
	s.Fail()
	assert.False(t, s.Loading)
	assert.Nil(t, s.Response)
	require.NotNil(t, s.Error)
	assert.Equal(t, "Unable to retrieve insights. Please try again.", *s.Error)
}
