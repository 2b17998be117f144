package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"

	"github.com/kzleague/league-site/internal/platform/logging"
)

func TestSkipMirroredLog(t *testing.T) {
	t.Parallel()

	assert.True(t, skipMirroredLog("http request", []any{"path", "/v1/layout/table", "status", 200}))
	assert.False(t, skipMirroredLog("http request", []any{"path", "/v1/resources/table", "status", 502}))
	assert.False(t, skipMirroredLog("prefetch failed", []any{"status", 200}))
}

func TestBuildOTelLogAttributes(t *testing.T) {
	t.Parallel()

	attrs := buildOTelLogAttributes([]any{"key", "table:61:kz", "attempt", 2, "error", errors.New("backend 503"), "dangling"})
	require.Len(t, attrs, 4)
	assert.Equal(t, "key", attrs[0].Key)
	assert.Equal(t, "table:61:kz", attrs[0].Value.AsString())
	assert.Equal(t, int64(2), attrs[1].Value.AsInt64())
	assert.Equal(t, "backend 503", attrs[2].Value.AsString())
	assert.Equal(t, otellog.KindEmpty, attrs[3].Value.Kind())
}

func TestToOTelLogValue(t *testing.T) {
	t.Parallel()

	v := toOTelLogValue(map[string]any{"season_id": int64(61), "pre_season": true}, 0)
	require.Equal(t, otellog.KindMap, v.Kind())
	assert.Len(t, v.AsMap(), 2)

	type seasonID int64
	assert.Equal(t, int64(61), toOTelLogValue(seasonID(61), 0).AsInt64())
	assert.Equal(t, "1.5s", toOTelLogValue(1500*time.Millisecond, 0).AsString())
	assert.Equal(t, otellog.KindSlice, toOTelLogValue([]string{"kz", "ru"}, 0).Kind())
}

func TestBuildLogRecord(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record := buildLogRecord(now, logging.LevelWarn, "prefetch", "prefetch failed", []any{"resource", "table"})

	assert.Equal(t, otellog.SeverityWarn, record.Severity())
	assert.Equal(t, "WARN", record.SeverityText())
	assert.Equal(t, "prefetch failed", record.Body().AsString())
	assert.Equal(t, now, record.Timestamp())

	attrs := map[string]string{}
	record.WalkAttributes(func(kv otellog.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()
		return true
	})
	assert.Equal(t, map[string]string{"logger": "prefetch", "resource": "table"}, attrs)
}
