// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/specnav/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.LoggingConfig
		enabled zapcore.Level
		wantErr bool
	}{
		{"local defaults to debug", types.LoggingConfig{Env: "local"}, zapcore.DebugLevel, false},
		{"prod defaults to info", types.LoggingConfig{Env: "prod"}, zapcore.InfoLevel, false},
		{"level override", types.LoggingConfig{Env: "dev", Level: "warn"}, zapcore.WarnLevel, false},
		{"unknown env", types.LoggingConfig{Env: "staging"}, 0, true},
		{"bad level", types.LoggingConfig{Env: "prod", Level: "loud"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			if tt.enabled > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.enabled-1))
			}
		})
	}
}

func TestContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	l := zap.NewExample()
	ctx := ContextWithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}
