// Package watch keeps a Document in sync with a file on disk, applying
// each change as line edits so only affected lines are re-highlighted.
package watch

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/lexhl/internal/document"
)

// Update summarizes the line edits applied for one change.
type Update struct {
	Inserted      int
	Deleted       int
	Rehighlighted int
}

// Empty reports whether the change touched no lines.
func (u Update) Empty() bool {
	return u.Inserted == 0 && u.Deleted == 0
}

// maxLineCodes is the number of distinct lines one diff can encode: every
// valid code point except the surrogate range.
const maxLineCodes = utf8.MaxRune - 0x800

// ApplyText edits doc so that its text equals text. Lines are diffed as
// units; unchanged lines keep their highlighting unless state propagation
// reaches them.
func ApplyText(doc *document.Document, text string) (Update, error) {
	oldLines := make([]string, doc.Len())
	for i, l := range doc.Lines() {
		oldLines[i] = l.Text
	}
	newLines := strings.Split(text, "\n")

	a, b, ok := encodeLines(oldLines, newLines)
	if !ok {
		n := doc.Replace(text)
		return Update{Inserted: len(newLines), Deleted: len(oldLines), Rehighlighted: n}, nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(a, b, false)

	var upd Update
	cursor, next := 0, 0
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			cursor += n
			next += n
		case diffmatchpatch.DiffDelete:
			k, err := doc.Delete(cursor, cursor+n)
			if err != nil {
				return upd, fmt.Errorf("applying diff: %w", err)
			}
			upd.Deleted += n
			upd.Rehighlighted += k
		case diffmatchpatch.DiffInsert:
			k, err := doc.Insert(cursor, newLines[next:next+n]...)
			if err != nil {
				return upd, fmt.Errorf("applying diff: %w", err)
			}
			cursor += n
			next += n
			upd.Inserted += n
			upd.Rehighlighted += k
		}
	}
	return upd, nil
}

// encodeLines maps each distinct line to one rune so the diff runs over
// lines. It reports false when there are too many distinct lines.
func encodeLines(oldLines, newLines []string) ([]rune, []rune, bool) {
	codes := make(map[string]rune)
	encode := func(lines []string) ([]rune, bool) {
		out := make([]rune, len(lines))
		for i, line := range lines {
			r, ok := codes[line]
			if !ok {
				if len(codes) >= maxLineCodes {
					return nil, false
				}
				r = lineCode(len(codes))
				codes[line] = r
			}
			out[i] = r
		}
		return out, true
	}

	a, ok := encode(oldLines)
	if !ok {
		return nil, nil, false
	}
	b, ok := encode(newLines)
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}

// lineCode returns the i-th valid code point, skipping surrogates, which
// would not survive the diff's string conversion.
func lineCode(i int) rune {
	r := rune(i + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
