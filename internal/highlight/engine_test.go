package highlight

import (
	"errors"
	"sync"
	"testing"

	"github.com/dshills/lexhl/internal/core"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultRegistry(), opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewEngine(t *testing.T) {
	e := newEngine(t)
	if e.Style() != DefaultStyleName {
		t.Errorf("Style() = %q, want %q", e.Style(), DefaultStyleName)
	}
	if len(e.Styles()) != 5 {
		t.Errorf("Styles() = %v", e.Styles())
	}

	e = newEngine(t, WithStyle(StyleNuke))
	if e.Style() != StyleNuke {
		t.Errorf("Style() = %q, want nuke", e.Style())
	}

	if _, err := NewEngine(DefaultRegistry(), WithStyle("missing")); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("NewEngine(missing) error = %v", err)
	}
}

func TestEngine_EmptyRegistry(t *testing.T) {
	e, err := NewEngine(NewRegistry())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if e.Style() != "" {
		t.Errorf("Style() = %q", e.Style())
	}

	spans, state := e.Highlight("if x", StateTripleSingle)
	if spans != nil || state != StateClosed {
		t.Errorf("Highlight() = %v, %v", spans, state)
	}
}

func TestEngine_SetStyle(t *testing.T) {
	e := newEngine(t)

	if err := e.SetStyle(StyleDracula); err != nil {
		t.Fatalf("SetStyle() error = %v", err)
	}
	if e.Style() != StyleDracula {
		t.Errorf("Style() = %q", e.Style())
	}

	err := e.SetStyle("does-not-exist")
	var unknown *UnknownStyleError
	if !errors.As(err, &unknown) {
		t.Fatalf("SetStyle() error = %v, want *UnknownStyleError", err)
	}
	if unknown.Name != "does-not-exist" {
		t.Errorf("Name = %q", unknown.Name)
	}
	if e.Style() != StyleDracula {
		t.Errorf("failed SetStyle changed style to %q", e.Style())
	}
}

func TestEngine_KeywordAndOperator(t *testing.T) {
	keyword := core.RGB(255, 0, 0)
	operator := core.RGB(0, 255, 0)

	reg := NewRegistry()
	reg.Register(RawStyle{
		Name: "minimal",
		Formats: map[Category]core.Format{
			CategoryKeyword:  keyword,
			CategoryOperator: operator,
		},
	})
	e, err := NewEngine(reg)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	spans, state := e.Highlight("if x = 1", StateClosed)
	if state != StateClosed {
		t.Errorf("state = %v", state)
	}

	want := []Span{
		{Offset: 0, Length: 2, Format: keyword, Category: CategoryKeyword},
		{Offset: 5, Length: 1, Format: operator, Category: CategoryOperator},
	}
	if len(spans) != len(want) {
		t.Fatalf("spans = %+v, want %+v", spans, want)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, spans[i], want[i])
		}
	}
}

func TestEngine_FunctionAndArgument(t *testing.T) {
	e := newEngine(t)
	style := MonokaiStyle()

	spans, _ := e.Highlight("def foo(bar):", StateClosed)

	for _, off := range []int{4, 5, 6} {
		if c, _ := CategoryAt(spans, off); c != CategoryFunction {
			t.Errorf("offset %d category = %q, want function", off, c)
		}
	}
	for _, off := range []int{8, 9, 10} {
		f, ok := FormatAt(spans, off)
		if !ok || f != style.Formats[CategoryArgument] {
			t.Errorf("offset %d format = %v, want argument", off, f)
		}
	}
}

func TestEngine_LaterRuleWins(t *testing.T) {
	e := newEngine(t)

	spans, _ := e.Highlight("print(x)", StateClosed)

	// "print" matches the call pattern first and the keyword list later.
	var sawCallable bool
	for _, s := range spans {
		if s.Offset == 0 && s.Category == CategoryCallable {
			sawCallable = true
		}
	}
	if !sawCallable {
		t.Error("expected a callable span for print")
	}
	if c, _ := CategoryAt(spans, 0); c != CategoryKeyword {
		t.Errorf("category at 0 = %q, want keyword", c)
	}
}

func TestEngine_DelimitersOverrideRules(t *testing.T) {
	e := newEngine(t)

	spans, state := e.Highlight(`x = """if 1`, StateClosed)
	if state != StateTripleDouble {
		t.Errorf("state = %v, want %v", state, StateTripleDouble)
	}
	if c, _ := CategoryAt(spans, 7); c != CategoryComment {
		t.Errorf("category inside region = %q, want comment", c)
	}
	if c, _ := CategoryAt(spans, 0); c == CategoryComment {
		t.Error("text before the region should keep its rules")
	}
}

func TestEngine_MultilineRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		delim string
		state LineState
	}{
		{"'''", StateTripleSingle},
		{`"""`, StateTripleDouble},
	} {
		t.Run(tt.state.String(), func(t *testing.T) {
			e := newEngine(t, WithStyle(StyleNuke))

			_, state := e.Highlight(tt.delim, StateClosed)
			if state != tt.state {
				t.Fatalf("opening line state = %v, want %v", state, tt.state)
			}

			spans, state := e.Highlight("any text", state)
			if state != tt.state {
				t.Errorf("inner line state = %v, want %v", state, tt.state)
			}
			last := spans[len(spans)-1]
			if last.Offset != 0 || last.Length != 8 {
				t.Errorf("inner line region = %+v, want whole line", last)
			}

			spans, state = e.Highlight("end"+tt.delim+" x", state)
			if state != StateClosed {
				t.Errorf("closing line state = %v, want closed", state)
			}
			last = spans[len(spans)-1]
			if last.Offset != 0 || last.Length != 6 {
				t.Errorf("closing line region = %+v, want [0,6)", last)
			}
		})
	}
}

func TestEngine_SameLineRegions(t *testing.T) {
	e := newEngine(t, WithStyle(StyleNuke))

	spans, state := e.Highlight(`"""a"""`, StateClosed)
	if state != StateClosed {
		t.Errorf("state = %v, want closed", state)
	}
	regions := delimiterSpans(spans)
	if len(regions) != 1 || regions[0] != (pos{0, 7}) {
		t.Errorf("regions = %v", regions)
	}

	spans, state = e.Highlight(`"""a""" """b`, StateClosed)
	if state != StateTripleDouble {
		t.Errorf("state = %v, want %v", state, StateTripleDouble)
	}
	regions = delimiterSpans(spans)
	if len(regions) != 2 || regions[0] != (pos{0, 7}) || regions[1] != (pos{8, 4}) {
		t.Errorf("regions = %v", regions)
	}
}

func TestEngine_KindsExclusive(t *testing.T) {
	e := newEngine(t, WithStyle(StyleNuke))

	spans, state := e.Highlight(`'''a """b`, StateClosed)
	if state != StateTripleSingle {
		t.Errorf("state = %v, want %v", state, StateTripleSingle)
	}
	if regions := delimiterSpans(spans); len(regions) != 1 {
		t.Errorf("second kind should not run while the first is open, got %v", regions)
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := newEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if i == 0 && j%10 == 0 {
					_ = e.SetStyle(e.Styles()[j%5])
				}
				e.Highlight("def f(x): return x + 1  # done", StateClosed)
			}
		}(i)
	}
	wg.Wait()
}

// delimiterSpans returns the spans produced by the multi-line tracker. In
// the nuke style these are the only comment spans not starting with '#'.
func delimiterSpans(spans []Span) []pos {
	var out []pos
	for _, s := range spans {
		if s.Category == CategoryComment {
			out = append(out, pos{s.Offset, s.Length})
		}
	}
	return out
}
