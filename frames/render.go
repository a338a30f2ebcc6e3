package frames

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-json-experiment/json"
	"go.opentelemetry.io/otel/attribute"
)

// fieldText renders the frame's fields as space separated key=value pairs.
// Values may contain whatever the caller put in them, including terminal
// escape codes, so consumers embedding this text elsewhere must scrub it.
func (f *Frame) fieldText() string {
	if len(f.attrs) == 0 {
		return ""
	}

	b := strings.Builder{}
	for i, a := range f.attrs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(attrValue(a.Value))
	}
	return b.String()
}

// attrValue renders a single field value. Structured values are rendered as
// JSON so the text stays one line.
func attrValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindAny:
		j, err := json.Marshal(v.Any())
		if err != nil {
			return fmt.Sprint(v.Any())
		}
		return string(j)
	case slog.KindGroup:
		j, err := json.Marshal(groupMap(v.Group()))
		if err != nil {
			return v.String()
		}
		return string(j)
	default:
		return v.String()
	}
}

func groupMap(attrs []slog.Attr) map[string]any {
	m := make(map[string]any, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value.Resolve().Any()
	}
	return m
}

// traceAttrs converts the frame's fields to OTEL span attributes.
func (f *Frame) traceAttrs() []attribute.KeyValue {
	if len(f.attrs) == 0 {
		return nil
	}
	kvs := make([]attribute.KeyValue, 0, len(f.attrs))
	for _, a := range f.attrs {
		kvs = append(kvs, attribute.String(a.Key, attrValue(a.Value)))
	}
	return kvs
}
