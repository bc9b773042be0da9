package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, ParseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithComponent(WithContext(context.Background(), logger), "focus")
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"focus"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	// zerolog.Ctx returns a disabled logger, logging must not panic.
	FromContext(context.Background()).Info().Msg("dropped")
}
