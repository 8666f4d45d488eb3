package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/learner/internal/ports"
)

const defaultBufferLimit = 256

type bufferedEntry struct {
	ctx    context.Context
	level  string
	msg    string
	fields []interface{}
}

// Buffer holds log entries produced while the configured logger does not
// exist yet (the log level and destination come from the config file, which
// is itself loaded with logging). Oldest entries are dropped past the limit.
type Buffer struct {
	mu      sync.Mutex
	limit   int
	entries []bufferedEntry
}

// NewBuffer creates a buffer holding at most limit entries.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &Buffer{limit: limit, entries: make([]bufferedEntry, 0, limit)}
}

// Logger returns a ports.Logger that records into the buffer.
func (b *Buffer) Logger() ports.Logger {
	return &bufferedLogger{buffer: b}
}

// Len reports how many entries are waiting to be flushed.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flush replays buffered entries into delegate in order and empties the buffer.
func (b *Buffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	entries := b.entries
	b.entries = make([]bufferedEntry, 0, b.limit)
	b.mu.Unlock()

	for _, entry := range entries {
		switch entry.level {
		case "debug":
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case "warn":
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case "error":
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
}

func (b *Buffer) add(entry bufferedEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == b.limit {
		b.entries = append(b.entries[1:], entry)
		return
	}
	b.entries = append(b.entries, entry)
}

type bufferedLogger struct {
	buffer *Buffer
	fields []interface{}
}

func (l *bufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, "debug", msg, fields)
}

func (l *bufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, "info", msg, fields)
}

func (l *bufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, "warn", msg, fields)
}

func (l *bufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, "error", msg, fields)
}

func (l *bufferedLogger) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}{}, l.fields...), fields...)
	return &bufferedLogger{buffer: l.buffer, fields: next}
}

func (l *bufferedLogger) record(ctx context.Context, level, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	l.buffer.add(bufferedEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	})
}
