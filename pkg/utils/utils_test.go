package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "thousands separator", value: 64230.5, want: "$64,230.50"},
		{name: "small", value: 29, want: "$29.00"},
		{name: "negative", value: -1234.567, want: "-$1,234.57"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(tt.value))
		})
	}
}

func TestFormatPercentageAndVolume(t *testing.T) {
	assert.Equal(t, "0.50%", FormatPercentage(-0.5))
	assert.Equal(t, "2.10%", FormatPercentage(2.1))
	assert.Equal(t, "47.8M", FormatVolume(4783.45))
}

func TestSafeText(t *testing.T) {
	assert.Equal(t, "a &amp; b <3", SafeText("  a &amp; b <3 \n"), "entities are not decoded")
	assert.Equal(t, "ok", SafeText("o\xffk"))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" x "))
}
