// Package telemetry records query activity to Parquet files for offline
// analysis of what users actually search and filter for.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
)

// QueryRecord is a single query log entry in Parquet storage.
type QueryRecord struct {
	ID          string    `parquet:"id"`
	Timestamp   time.Time `parquet:"timestamp"`
	Level       string    `parquet:"level"`
	Message     string    `parquet:"message"`
	Operation   string    `parquet:"operation"`
	Query       string    `parquet:"query"`
	ResultCount int       `parquet:"result_count"`
	DurationMs  int64     `parquet:"duration_ms"`
	Attributes  string    `parquet:"attributes"` // JSON string
}

// Handler is a slog.Handler that mirrors query-tagged records to Parquet
// files while passing everything through to the next handler. A record is
// captured when it carries an "operation" attribute; everything else only
// flows through.
type Handler struct {
	next      slog.Handler
	outputDir string
	mu        sync.Mutex
	buffer    []QueryRecord
	batchSize int
}

// NewHandler creates a Handler writing batches under outputDir.
func NewHandler(next slog.Handler, outputDir string) (*Handler, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create telemetry directory: %w", err)
	}

	return &Handler{
		next:      next,
		outputDir: outputDir,
		batchSize: 100,
		buffer:    make([]QueryRecord, 0, 100),
	}, nil
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.next.Handle(ctx, r); err != nil {
		return err
	}

	var (
		operation   string
		query       string
		resultCount int
		durationMs  int64
	)
	attrs := make(map[string]interface{})
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "operation":
			operation = a.Value.String()
		case "query":
			query = a.Value.String()
		case "results":
			resultCount = int(a.Value.Int64())
		case "duration_ms":
			durationMs = a.Value.Int64()
		default:
			attrs[a.Key] = a.Value.Any()
		}
		return true
	})

	if operation == "" {
		return nil
	}

	attrsJSON, _ := json.Marshal(attrs)
	record := QueryRecord{
		ID:          uuid.New().String(),
		Timestamp:   r.Time.UTC(),
		Level:       r.Level.String(),
		Message:     r.Message,
		Operation:   operation,
		Query:       query,
		ResultCount: resultCount,
		DurationMs:  durationMs,
		Attributes:  string(attrsJSON),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.buffer = append(h.buffer, record)
	if len(h.buffer) >= h.batchSize {
		return h.flush()
	}
	return nil
}

// Flush writes any buffered records out immediately.
func (h *Handler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.flush()
}

// flush writes the current buffer to a new Parquet file. Caller must hold
// the lock.
func (h *Handler) flush() error {
	if len(h.buffer) == 0 {
		return nil
	}

	filename := fmt.Sprintf("queries_%s_%d.parquet", time.Now().Format("20060102_150405"), time.Now().UnixNano())
	path := filepath.Join(h.outputDir, filename)

	if err := parquet.WriteFile(path, h.buffer); err != nil {
		return fmt.Errorf("failed to write telemetry parquet file: %w", err)
	}

	h.buffer = h.buffer[:0]
	return nil
}

// WithAttrs implements slog.Handler. Child handlers batch independently.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		next:      h.next.WithAttrs(attrs),
		outputDir: h.outputDir,
		batchSize: h.batchSize,
		buffer:    make([]QueryRecord, 0, h.batchSize),
	}
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		next:      h.next.WithGroup(name),
		outputDir: h.outputDir,
		batchSize: h.batchSize,
		buffer:    make([]QueryRecord, 0, h.batchSize),
	}
}
