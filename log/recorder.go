package log

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Entry is one record kept by a Recorder.
type Entry struct {
	Time    time.Time  `json:"time"`
	Level   slog.Level `json:"level"`
	Message string     `json:"message"`
	Attrs   []Attr     `json:"attrs,omitempty"`
}

// Attr returns the value of the attribute key and whether it was set.
func (e Entry) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

type recording struct {
	mu      sync.Mutex
	entries []Entry
}

// Recorder is a slog.Handler that keeps every record in memory. Handlers
// derived through WithAttrs and WithGroup share the parent's entries.
type Recorder struct {
	rec    *recording
	level  slog.Level
	prefix string
	attrs  []Attr
}

// NewRecorder returns an empty Recorder handling records at level and above.
func NewRecorder(level slog.Level) *Recorder {
	return &Recorder{rec: &recording{}, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (r *Recorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level
}

// Handle stores the record with its attributes flattened.
func (r *Recorder) Handle(_ context.Context, record slog.Record) error {
	e := Entry{
		Time:    record.Time,
		Level:   record.Level,
		Message: record.Message,
		Attrs:   slices.Clone(r.attrs),
	}
	record.Attrs(func(a slog.Attr) bool {
		e.Attrs = append(e.Attrs, toAttrs(r.prefix, a)...)
		return true
	})
	r.rec.mu.Lock()
	defer r.rec.mu.Unlock()
	r.rec.entries = append(r.rec.entries, e)
	return nil
}

// WithAttrs returns a Recorder that adds attrs to every entry.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *r
	next.attrs = slices.Clone(r.attrs)
	for _, a := range attrs {
		next.attrs = append(next.attrs, toAttrs(r.prefix, a)...)
	}
	return &next
}

// WithGroup returns a Recorder that prefixes later attribute keys with name.
func (r *Recorder) WithGroup(name string) slog.Handler {
	if name == "" {
		return r
	}
	next := *r
	next.prefix = r.prefix + name + "."
	return &next
}

// Entries returns a copy of the recorded entries, oldest first.
func (r *Recorder) Entries() []Entry {
	r.rec.mu.Lock()
	defer r.rec.mu.Unlock()
	return slices.Clone(r.rec.entries)
}

// Messages returns the recorded messages at level and above, oldest first.
func (r *Recorder) Messages(level slog.Level) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level >= level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Reset drops every recorded entry.
func (r *Recorder) Reset() {
	r.rec.mu.Lock()
	defer r.rec.mu.Unlock()
	r.rec.entries = nil
}
