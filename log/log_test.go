package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAttr(t *testing.T) {
	tests := []struct {
		name     string
		attr     slog.Attr
		wantType string
		wantVal  string
	}{
		{
			name:     "string",
			attr:     slog.String("key", "value"),
			wantType: "string",
			wantVal:  "value",
		},
		{
			name:     "int64",
			attr:     slog.Int64("key", 123),
			wantType: "int64",
			wantVal:  "123",
		},
		{
			name:     "bool",
			attr:     slog.Bool("key", true),
			wantType: "bool",
			wantVal:  "true",
		},
		{
			name:     "float64",
			attr:     slog.Float64("key", 1.23),
			wantType: "float64",
			wantVal:  "1.23",
		},
		{
			name:     "time",
			attr:     slog.Time("key", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			wantType: "time",
			wantVal:  "2024-01-01T00:00:00Z",
		},
		{
			name:     "duration",
			attr:     slog.Duration("key", 1*time.Hour),
			wantType: "duration",
			wantVal:  "1h0m0s",
		},
		{
			name:     "error",
			attr:     slog.Any("key", errors.New("test error")),
			wantType: "error",
			wantVal:  "test error",
		},
		{
			name:     "stringer",
			attr:     slog.Any("key", stringer{}),
			wantType: "string",
			wantVal:  "Enum.MEMBER",
		},
		{
			name:     "nil",
			attr:     slog.Any("key", nil),
			wantType: "any",
			wantVal:  "<nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toAttrs("", tt.attr)
			require.Len(t, got, 1)
			assert.Equal(t, tt.attr.Key, got[0].Key)
			assert.Equal(t, tt.wantType, got[0].Type)
			assert.Equal(t, tt.wantVal, got[0].Value)
		})
	}
}

type stringer struct{}

func (stringer) String() string { return "Enum.MEMBER" }

func TestToAttr_JSON(t *testing.T) {
	type MyStruct struct {
		Field string `json:"field"`
	}
	obj := MyStruct{Field: "data"}

	got := toAttrs("", slog.Any("key", obj))
	require.Len(t, got, 1)
	assert.Equal(t, "json", got[0].Type)

	var decoded MyStruct
	require.NoError(t, json.Unmarshal([]byte(got[0].Value), &decoded))
	assert.Equal(t, obj, decoded)
}

func TestToAttr_LogValuer(t *testing.T) {
	got := toAttrs("", slog.Any("key", logValuer{val: "resolved"}))
	require.Len(t, got, 1)
	assert.Equal(t, "string", got[0].Type)
	assert.Equal(t, "resolved", got[0].Value)
}

func TestToAttr_GroupFlattened(t *testing.T) {
	got := toAttrs("p.", slog.Group("node", slog.Int("number", 3), slog.Group("at", slog.Float64("x", 1))))
	assert.Equal(t, []Attr{
		{Key: "p.node.number", Type: "int64", Value: "3"},
		{Key: "p.node.at.x", Type: "float64", Value: "1"},
	}, got)
}

type logValuer struct {
	val string
}

func (l logValuer) LogValue() slog.Value {
	return slog.StringValue(l.val)
}

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler()
	assert.NotNil(t, h)
	assert.True(t, h.Enabled(context.TODO(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.TODO(), slog.LevelDebug))
}

func TestNewHandler_Options(t *testing.T) {
	var buf bytes.Buffer
	logger := New(
		WithLevel(slog.LevelDebug),
		WithWriter(&buf),
		WithJSON(true),
		WithSource(true),
	)
	logger.Debug("host member access", slog.String("member", "Nodes"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "host member access", line["msg"])
	assert.Equal(t, "Nodes", line["member"])
	assert.Contains(t, line, slog.SourceKey)
}

func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	New(WithWriter(&buf)).Warn("alias overwrites enumeration member", slog.String("alias", "PERM"))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "alias=PERM")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(slog.LevelInfo)
	logger := slog.New(rec).With(slog.String("registry", "nodes"))

	logger.Debug("dropped")
	logger.WithGroup("call").Info("host member access", slog.String("member", "Get"))
	logger.Warn("host member access failed", slog.Any("error", errors.New("boom")))

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"host member access failed"}, rec.Messages(slog.LevelWarn))

	v, ok := entries[0].Attr("registry")
	require.True(t, ok)
	assert.Equal(t, "nodes", v)
	v, ok = entries[0].Attr("call.member")
	require.True(t, ok)
	assert.Equal(t, "Get", v)

	v, _ = entries[1].Attr("error")
	assert.Equal(t, "boom", v)
	_, ok = entries[1].Attr("call.member")
	assert.False(t, ok)

	rec.Reset()
	assert.Empty(t, rec.Entries())
}
