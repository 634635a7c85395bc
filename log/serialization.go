package log

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Attr is a flattened slog attribute: its key, value kind and rendered value.
type Attr struct {
	Key   string `json:"key"`
	Type  string `json:"type"`  // "string", "int64", "bool", "float64", "time", "error", "json", "any"
	Value string `json:"value"` // String representation of the value
}

// toAttrs flattens attr, prefixing the keys of group members with the group
// key and a dot.
func toAttrs(prefix string, attr slog.Attr) []Attr {
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		var out []Attr
		for _, a := range attr.Value.Group() {
			out = append(out, toAttrs(prefix, a)...)
		}
		return out
	}
	a := toAttr(attr)
	a.Key = prefix + a.Key
	return []Attr{a}
}

// toAttr converts a resolved, non-group slog.Attr to Attr.
func toAttr(attr slog.Attr) Attr {
	out := Attr{
		Key: attr.Key,
	}

	switch attr.Value.Kind() {
	case slog.KindString:
		out.Type = "string"
		out.Value = attr.Value.String()
	case slog.KindInt64:
		out.Type = "int64"
		out.Value = fmt.Sprintf("%d", attr.Value.Int64())
	case slog.KindUint64:
		out.Type = "uint64"
		out.Value = fmt.Sprintf("%d", attr.Value.Uint64())
	case slog.KindBool:
		out.Type = "bool"
		out.Value = fmt.Sprintf("%t", attr.Value.Bool())
	case slog.KindFloat64:
		out.Type = "float64"
		out.Value = fmt.Sprintf("%g", attr.Value.Float64())
	case slog.KindTime:
		out.Type = "time"
		out.Value = attr.Value.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		out.Type = "duration"
		out.Value = attr.Value.Duration().String()
	default:
		v := attr.Value.Any()
		switch {
		case v == nil:
			out.Type = "any"
			out.Value = "<nil>"
		case isError(v):
			out.Type = "error"
			out.Value = v.(error).Error()
		case isStringer(v):
			out.Type = "string"
			out.Value = v.(fmt.Stringer).String()
		default:
			if data, err := json.Marshal(v); err == nil {
				out.Type = "json"
				out.Value = string(data)
			} else {
				out.Type = "any"
				out.Value = fmt.Sprintf("%v", v)
			}
		}
	}
	return out
}

func isError(v any) bool {
	_, ok := v.(error)
	return ok
}

func isStringer(v any) bool {
	_, ok := v.(fmt.Stringer)
	return ok
}
