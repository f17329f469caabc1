// Package document is a reference host for the highlight engine: it stores
// each line's text, spans and terminal state, re-highlights edited lines and
// carries multi-line state forward until it settles.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/lexhl/internal/highlight"
	"github.com/dshills/lexhl/internal/logging"
)

// ErrLineOutOfRange is returned for line indices outside the document.
var ErrLineOutOfRange = errors.New("line out of range")

// Highlighter highlights one line given the previous line's state.
// *highlight.Engine implements it.
type Highlighter interface {
	Highlight(line string, prev highlight.LineState) ([]highlight.Span, highlight.LineState)
}

// Line is one highlighted line.
type Line struct {
	Text  string
	State highlight.LineState
	Spans []highlight.Span

	// prev is the state the line was last highlighted with.
	prev highlight.LineState
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the document's logger.
func WithLogger(l *logging.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// Document holds highlighted lines. It is not safe for concurrent use.
type Document struct {
	id     uuid.UUID
	h      Highlighter
	lines  []Line
	logger *logging.Logger
}

// New creates a document from text, split on '\n', and highlights every
// line.
func New(h Highlighter, text string, opts ...Option) *Document {
	d := &Document{
		id:     uuid.New(),
		h:      h,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.WithComponent("document").WithField("doc", d.id.String())

	d.lines = newLines(splitLines(text))
	d.update(0, len(d.lines))
	return d
}

// ID returns the document's unique ID.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns line i.
func (d *Document) Line(i int) (Line, bool) {
	if i < 0 || i >= len(d.lines) {
		return Line{}, false
	}
	return d.lines[i], true
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []Line {
	lines := make([]Line, len(d.lines))
	copy(lines, d.lines)
	return lines
}

// Text returns the document text, lines joined with '\n'.
func (d *Document) Text() string {
	texts := make([]string, len(d.lines))
	for i, l := range d.lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

// SetLine replaces the text of line i. It returns the number of lines
// re-highlighted.
func (d *Document) SetLine(i int, text string) (int, error) {
	if i < 0 || i >= len(d.lines) {
		return 0, fmt.Errorf("set line %d of %d: %w", i, len(d.lines), ErrLineOutOfRange)
	}
	d.lines[i].Text = text
	return d.update(i, i+1), nil
}

// Insert inserts lines before line at; at == Len() appends. It returns the
// number of lines re-highlighted.
func (d *Document) Insert(at int, lines ...string) (int, error) {
	if at < 0 || at > len(d.lines) {
		return 0, fmt.Errorf("insert at %d of %d: %w", at, len(d.lines), ErrLineOutOfRange)
	}
	if len(lines) == 0 {
		return 0, nil
	}

	merged := make([]Line, 0, len(d.lines)+len(lines))
	merged = append(merged, d.lines[:at]...)
	merged = append(merged, newLines(lines)...)
	merged = append(merged, d.lines[at:]...)
	d.lines = merged

	return d.update(at, at+len(lines)), nil
}

// Delete removes lines [from, to). It returns the number of lines
// re-highlighted.
func (d *Document) Delete(from, to int) (int, error) {
	if from < 0 || to > len(d.lines) || from > to {
		return 0, fmt.Errorf("delete [%d, %d) of %d: %w", from, to, len(d.lines), ErrLineOutOfRange)
	}
	if from == to {
		return 0, nil
	}

	d.lines = append(d.lines[:from], d.lines[to:]...)
	return d.update(from, from), nil
}

// Replace replaces the whole text and re-highlights every line.
func (d *Document) Replace(text string) int {
	d.lines = newLines(splitLines(text))
	return d.update(0, len(d.lines))
}

// Rehighlight re-highlights every line, for example after the highlighter's
// style changed.
func (d *Document) Rehighlight() int {
	return d.update(0, len(d.lines))
}

// update re-highlights lines [from, to), then keeps going while a line's
// previous state differs from the one it was last highlighted with.
func (d *Document) update(from, to int) int {
	count := 0
	for i := from; i < len(d.lines); i++ {
		prev := d.prevState(i)
		if i >= to && d.lines[i].prev == prev {
			break
		}

		line := &d.lines[i]
		line.Spans, line.State = d.h.Highlight(line.Text, prev)
		line.prev = prev
		count++
	}

	if count > 0 {
		d.logger.Debug("rehighlighted %d lines from %d", count, from)
	}
	return count
}

func (d *Document) prevState(i int) highlight.LineState {
	if i == 0 {
		return highlight.StateClosed
	}
	return d.lines[i-1].State
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func newLines(texts []string) []Line {
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = Line{Text: t}
	}
	return lines
}
