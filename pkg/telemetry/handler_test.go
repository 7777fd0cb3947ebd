package telemetry

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, string) {
	t.Helper()
	dir := t.TempDir()
	next := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	h, err := NewHandler(next, dir)
	require.NoError(t, err)
	return h, dir
}

func record(operation string) slog.Record {
	r := slog.NewRecord(time.Now(), slog.LevelDebug, "search completed", 0)
	if operation != "" {
		r.AddAttrs(
			slog.String("operation", operation),
			slog.String("query", "tnf"),
			slog.Int("results", 3),
			slog.Int64("duration_ms", 12),
		)
	}
	return r
}

func parquetFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".parquet") {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out
}

func TestHandlerCapturesOperationRecords(t *testing.T) {
	h, dir := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.Handle(ctx, record("search")))
	require.NoError(t, h.Handle(ctx, record(""))) // not captured

	require.NoError(t, h.Flush())

	files := parquetFiles(t, dir)
	require.Len(t, files, 1)

	info, err := os.Stat(files[0])
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHandlerFlushEmptyIsNoop(t *testing.T) {
	h, dir := newTestHandler(t)

	require.NoError(t, h.Flush())
	assert.Empty(t, parquetFiles(t, dir))
}

func TestHandlerBatchFlush(t *testing.T) {
	h, dir := newTestHandler(t)
	h.batchSize = 2
	ctx := context.Background()

	require.NoError(t, h.Handle(ctx, record("search")))
	assert.Empty(t, parquetFiles(t, dir))

	require.NoError(t, h.Handle(ctx, record("neighbors")))
	assert.Len(t, parquetFiles(t, dir), 1)
}

func TestHandlerWithAttrsKeepsCapturing(t *testing.T) {
	h, dir := newTestHandler(t)

	child, ok := h.WithAttrs([]slog.Attr{slog.String("component", "search")}).(*Handler)
	require.True(t, ok)

	require.NoError(t, child.Handle(context.Background(), record("search")))
	require.NoError(t, child.Flush())
	assert.Len(t, parquetFiles(t, dir), 1)
}
