// Package highlight implements incremental, style-driven lexical
// highlighting of text lines.
//
// A Style is compiled once into an ordered list of regex rules plus two
// multi-line delimiters. The Engine highlights one line at a time: the
// caller passes the previous line's LineState and stores the returned one,
// re-highlighting the next line whenever it changes.
package highlight

import (
	"github.com/dshills/lexhl/internal/core"
)

// LineState is the terminal state of a line after highlighting: either
// StateClosed or the tag of the multi-line delimiter kind left open.
type LineState int

// Line states.
const (
	StateClosed       LineState = 0
	StateTripleSingle LineState = 1
	StateTripleDouble LineState = 2
)

// String returns the state name.
func (s LineState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateTripleSingle:
		return "open(''')"
	case StateTripleDouble:
		return `open(""")`
	default:
		return "unknown"
	}
}

// Open reports whether the state is an open multi-line region.
func (s LineState) Open() bool {
	return s != StateClosed
}

// Span is a formatted run within one line. Offset and Length count runes.
type Span struct {
	Offset   int
	Length   int
	Format   core.Format
	Category Category
}

// End returns the offset one past the last rune of the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Run is a resolved, non-overlapping stretch of a line sharing one format.
// Runs with Styled false carry no highlighting.
type Run struct {
	Start, End int
	Format     core.Format
	Category   Category
	Styled     bool
}

// Flatten resolves spans, applied in order with later spans overwriting
// earlier ones, into contiguous runs covering [0, lineLen).
func Flatten(lineLen int, spans []Span) []Run {
	if lineLen <= 0 {
		return nil
	}

	cells := make([]int, lineLen)
	for i := range cells {
		cells[i] = -1
	}
	for i, s := range spans {
		start, end := s.Offset, s.End()
		if start < 0 {
			start = 0
		}
		if end > lineLen {
			end = lineLen
		}
		for j := start; j < end; j++ {
			cells[j] = i
		}
	}

	runs := make([]Run, 0, 4)
	start := 0
	for j := 1; j <= lineLen; j++ {
		if j < lineLen && sameFormat(spans, cells[j], cells[start]) {
			continue
		}
		run := Run{Start: start, End: j}
		if idx := cells[start]; idx >= 0 {
			run.Format = spans[idx].Format
			run.Category = spans[idx].Category
			run.Styled = true
		}
		runs = append(runs, run)
		start = j
	}
	return runs
}

func sameFormat(spans []Span, a, b int) bool {
	if a < 0 || b < 0 {
		return a == b
	}
	return spans[a].Format == spans[b].Format && spans[a].Category == spans[b].Category
}

// FormatAt returns the effective format at a rune offset, and false when no
// span covers it.
func FormatAt(spans []Span, offset int) (core.Format, bool) {
	for i := len(spans) - 1; i >= 0; i-- {
		if offset >= spans[i].Offset && offset < spans[i].End() {
			return spans[i].Format, true
		}
	}
	return core.Format{}, false
}

// CategoryAt returns the category of the last span covering offset.
func CategoryAt(spans []Span, offset int) (Category, bool) {
	for i := len(spans) - 1; i >= 0; i-- {
		if offset >= spans[i].Offset && offset < spans[i].End() {
			return spans[i].Category, true
		}
	}
	return "", false
}
