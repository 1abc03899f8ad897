package tracing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/go-wlscan/logging"
	"github.com/canonical/go-wlscan/tracing"
)

func TestStart_NoTracer(t *testing.T) {
	ctx := context.Background()
	got, span := tracing.Start(ctx, "generate", "wayland")
	assert.Equal(t, ctx, got)
	span.End()
}

func TestStart_LogTracer(t *testing.T) {
	var lines []string
	log := func(l logging.Level, format string, a ...interface{}) {
		assert.Equal(t, logging.Debug, l)
		lines = append(lines, format)
	}

	ctx := tracing.WithTracer(context.Background(), tracing.Log(log))
	_, span := tracing.Start(ctx, "interface", "wl_surface")
	assert.Empty(t, lines)
	span.End()
	assert.Len(t, lines, 1)
}
