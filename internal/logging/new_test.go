package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(FormatText, "warn", &buf)
	ctx := context.Background()

	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=v")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(FormatJSON, "info", &buf)

	log.With("module", "session").Info(context.Background(), "login", "authenticated", true)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "login", rec["msg"])
	assert.Equal(t, "session", rec["module"])
	assert.Equal(t, true, rec["authenticated"])
}

func TestNew_ConsoleUsesZerolog(t *testing.T) {
	var buf bytes.Buffer
	log := New(FormatConsole, "debug", &buf)

	_, ok := log.(*ZerologLogger)
	require.True(t, ok)

	log.With("module", "gate").Debug(context.Background(), "evaluated", "path", "/ai-assistant")

	out := buf.String()
	assert.Contains(t, out, "evaluated")
	assert.Contains(t, out, "module=gate")
	assert.Contains(t, out, "path=/ai-assistant")
}

func TestNew_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	log := New("xml", "", &buf)

	log.Info(context.Background(), "hello")
	assert.True(t, strings.Contains(buf.String(), "level=INFO"))
}

func TestNop_Discards(t *testing.T) {
	log := Nop()
	log.Error(context.Background(), "nothing", "a", 1)
	log.With("x", 1).Info(context.Background(), "still nothing")
}

func TestNew_DebugFollowsLevel(t *testing.T) {
	ctx := context.Background()
	for _, format := range []string{FormatText, FormatJSON, FormatConsole} {
		var quiet, verbose bytes.Buffer
		New(format, "info", &quiet).Debug(ctx, "store polled", "changed", false)
		New(format, "debug", &verbose).Debug(ctx, "store polled", "changed", false)

		assert.Empty(t, quiet.String(), format)
		assert.Contains(t, verbose.String(), "store polled", format)
	}
}

func TestNew_ErrorLevelKeepsOnlyErrors(t *testing.T) {
	var buf bytes.Buffer
	log := New(FormatJSON, "error", &buf)
	ctx := context.Background()

	log.Warn(ctx, "backend offline")
	log.Error(ctx, "navigation after session change failed", "event", "logout")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "logout", rec["event"])
}

func TestSlogLogger_WithAccumulates(t *testing.T) {
	var buf bytes.Buffer
	log := New(FormatText, "debug", &buf).With("module", "router").With("path", "/dashboard")

	log.Debug(context.Background(), "rendered")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "module=router")
	assert.Contains(t, out, "path=/dashboard")
}
