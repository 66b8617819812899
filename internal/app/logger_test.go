//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/print-orders/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	tests := []struct {
		name string
		cfg  config.LogConfig
		want zerolog.Level
	}{
		{name: "empty level defaults to info", cfg: config.LogConfig{}, want: zerolog.InfoLevel},
		{name: "debug level", cfg: config.LogConfig{Level: "debug"}, want: zerolog.DebugLevel},
		{name: "pretty output", cfg: config.LogConfig{Level: "warn", Pretty: true}, want: zerolog.WarnLevel},
		{name: "upper case level", cfg: config.LogConfig{Level: "ERROR"}, want: zerolog.ErrorLevel},
		{name: "unknown level falls back to info", cfg: config.LogConfig{Level: "verbose"}, want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
