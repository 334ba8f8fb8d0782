package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeMode_ToggledIsInvolution(t *testing.T) {
	for _, m := range []ThemeMode{ThemeLight, ThemeDark} {
		assert.NotEqual(t, m, m.Toggled())
		assert.Equal(t, m, m.Toggled().Toggled())
	}
}

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ThemeMode
		wantErr bool
	}{
		{in: "light", want: ThemeLight},
		{in: "dark", want: ThemeDark},
		{in: "Dark", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseThemeMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidThemeMode)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
