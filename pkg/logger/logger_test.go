package logger

import (
	"context"
	"path/filepath"
	"testing"

	"wealthflow/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Logger
		wantErr bool
	}{
		{name: "json default", cfg: config.Logger{Level: "info", Encoding: "json"}},
		{name: "console", cfg: config.Logger{Level: "debug", Encoding: "console"}},
		{name: "empty level falls back to info", cfg: config.Logger{}},
		{name: "invalid level", cfg: config.Logger{Level: "loud"}, wantErr: true},
		{
			name: "rotated file sink",
			cfg: config.Logger{
				Level:     "info",
				FilePath:  filepath.Join(t.TempDir(), "wealthflow.log"),
				MaxSizeMB: 1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			log.Info("hello", StringField("k", "v"))
		})
	}
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := NewNop()
	scoped := &Logger{zap.New(core)}

	ctx := NewContext(context.Background(), scoped)
	base.InfoContext(ctx, "routed")
	base.InfoContext(context.Background(), "dropped")

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "routed", logs.All()[0].Message)
	assert.Same(t, base, base.FromContext(nil)) //nolint:staticcheck
}
