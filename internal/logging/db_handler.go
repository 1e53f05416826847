package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pumpshop/seed/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const batchSize = 50

// DBHandler is an slog.Handler that batches WARN+ records of one seed run
// into seed_run_logs.
type DBHandler struct {
	sink  *dbSink
	attrs []slog.Attr
}

type dbSink struct {
	db     *gorm.DB
	runID  string
	mu     sync.Mutex
	buffer []models.SeedRunLog
	ticker *time.Ticker
	// flushNow asks the loop for an early flush once the buffer is full.
	flushNow chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func NewDBHandler(db *gorm.DB, runID string) *DBHandler {
	s := &dbSink{
		db:       db,
		runID:    runID,
		buffer:   make([]models.SeedRunLog, 0, batchSize),
		ticker:   time.NewTicker(5 * time.Second),
		flushNow: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	s.wg.Add(1)
	go s.flushLoop()
	return &DBHandler{sink: s}
}

func (s *dbSink) flushLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ticker.C:
			s.flush()
		case <-s.flushNow:
			s.flush()
		case <-s.done:
			s.flush()
			return
		}
	}
}

func (s *dbSink) flush() {
	s.mu.Lock()
	if len(s.buffer) == 0 {
		s.mu.Unlock()
		return
	}
	batch := s.buffer
	s.buffer = make([]models.SeedRunLog, 0, batchSize)
	s.mu.Unlock()

	// slog.Default may fan out to this handler; write straight to stderr instead.
	if err := s.db.CreateInBatches(batch, batchSize).Error; err != nil {
		slog.New(NewJSONHandler(stderr, slog.LevelError)).
			Error("failed to flush seed run logs", "error", err, "count", len(batch))
	}
}

// Stop flushes what is buffered and waits for the writer to finish.
func (h *DBHandler) Stop() {
	h.sink.once.Do(func() {
		h.sink.ticker.Stop()
		close(h.sink.done)
	})
	h.sink.wg.Wait()
}

// Enabled only handles WARN and above.
func (h *DBHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

func (h *DBHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SeedRunLog{
		ID:        uuid.New(),
		RunID:     h.sink.runID,
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	collect := func(a slog.Attr) bool {
		switch a.Key {
		case "table":
			entry.Table = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		case "run_id":
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	record.Attrs(collect)

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.sink.mu.Lock()
	h.sink.buffer = append(h.sink.buffer, entry)
	needFlush := len(h.sink.buffer) >= batchSize
	h.sink.mu.Unlock()

	if needFlush {
		select {
		case h.sink.flushNow <- struct{}{}:
		default:
		}
	}
	return nil
}

func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &DBHandler{sink: h.sink, attrs: merged}
}

// WithGroup is a no-op; groups are flattened into Extra.
func (h *DBHandler) WithGroup(string) slog.Handler {
	return h
}
