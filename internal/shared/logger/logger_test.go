package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("creates with default config", func(t *testing.T) {
		l := New(nil)
		assert.NotNil(t, l)
		assert.NotNil(t, l.Logger)
	})

	t.Run("creates with custom config", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := New(&Config{
			Level:  "debug",
			Format: "json",
			Output: buf,
		})
		assert.NotNil(t, l)

		l.Info("test message")
		assert.Contains(t, buf.String(), "test message")
	})

	t.Run("creates text format logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := New(&Config{
			Level:  "info",
			Format: "text",
			Output: buf,
		})

		l.Info("test message")
		output := buf.String()
		assert.Contains(t, output, "test message")
		// Text format should not be JSON
		assert.False(t, strings.HasPrefix(output, "{"))
	})
}

func TestLogger_Levels(t *testing.T) {
	t.Run("level below threshold is dropped", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := New(&Config{Level: "warn", Format: "json", Output: buf})

		l.Info("hidden")
		assert.Empty(t, buf.String())

		l.Warn("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("unknown level defaults to info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := New(&Config{Level: "chatty", Format: "json", Output: buf})

		l.Debug("hidden")
		assert.Empty(t, buf.String())

		l.Info("visible")
		assert.Contains(t, buf.String(), "visible")
	})
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(&Config{Level: "info", Format: "json", Output: buf})

	l.With("component", "wizard").Info("saved")
	assert.Contains(t, buf.String(), "wizard")
}

func TestContextWithLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(&Config{Level: "info", Format: "json", Output: buf})

	ctx := ContextWithLogger(context.Background(), l)
	got := FromContext(ctx)
	assert.Same(t, l, got)

	// Missing logger falls back to a default one.
	assert.NotNil(t, FromContext(context.Background()))
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(&Config{Level: "debug", Format: "json"})
	assert.NoError(t, err)
	assert.NotNil(t, l)

	l, err = NewZapLogger(nil)
	assert.NoError(t, err)
	assert.NotNil(t, l)
}
