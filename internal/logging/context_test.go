package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext_FieldsReachOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfigValues("debug", "json", &buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "drag")
	ctx = WithPanelID(ctx, "p1")
	ctx = WithAreaID(ctx, "a1")

	FromContext(ctx).Debug().Msg("moved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "drag", entry["component"])
	assert.Equal(t, "p1", entry["panel_id"])
	assert.Equal(t, "a1", entry["area_id"])
	assert.Equal(t, "moved", entry["message"])
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.False(t, logger.Info().Enabled())
}

func TestNewFromConfigValues_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfigValues("warn", "json", &buf)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel(" DEBUG ").String())
	assert.Equal(t, "warn", ParseLevel("warning").String())
	assert.Equal(t, "info", ParseLevel("bogus").String())
	assert.Equal(t, "disabled", ParseLevel("off").String())
}
