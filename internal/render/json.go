package render

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/dshills/lexhl/internal/core"
	"github.com/dshills/lexhl/internal/highlight"
)

// LineJSON encodes one highlighted line as a single-line JSON object:
//
//	{"line":0,"state":0,"text":"...","spans":[{"offset":0,"length":2,...}]}
//
// Spans keep application order; later spans win where they overlap.
func LineJSON(index int, text string, state highlight.LineState, spans []highlight.Span) (string, error) {
	out, err := sjson.Set("", "line", index)
	if err != nil {
		return "", fmt.Errorf("encoding line %d: %w", index, err)
	}
	if out, err = sjson.Set(out, "state", int(state)); err != nil {
		return "", fmt.Errorf("encoding line %d: %w", index, err)
	}
	if out, err = sjson.Set(out, "text", text); err != nil {
		return "", fmt.Errorf("encoding line %d: %w", index, err)
	}
	if out, err = sjson.SetRaw(out, "spans", "[]"); err != nil {
		return "", fmt.Errorf("encoding line %d: %w", index, err)
	}

	for _, s := range spans {
		obj, err := spanJSON(s)
		if err != nil {
			return "", fmt.Errorf("encoding line %d: %w", index, err)
		}
		if out, err = sjson.SetRaw(out, "spans.-1", obj); err != nil {
			return "", fmt.Errorf("encoding line %d: %w", index, err)
		}
	}
	return out, nil
}

func spanJSON(s highlight.Span) (string, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"offset", s.Offset},
		{"length", s.Length},
		{"category", string(s.Category)},
		{"color", s.Format.Foreground.Hex()},
		{"bold", s.Format.Attributes.Has(core.AttrBold)},
		{"italic", s.Format.Attributes.Has(core.AttrItalic)},
		{"underline", s.Format.Attributes.Has(core.AttrUnderline)},
	}

	obj := ""
	for _, f := range fields {
		var err error
		if obj, err = sjson.Set(obj, f.path, f.value); err != nil {
			return "", err
		}
	}
	return obj, nil
}
