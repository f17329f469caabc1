package highlight

import (
	"github.com/dshills/lexhl/internal/core"
)

// Default multi-line delimiters, indexed like RawStyle.Delimiters.
const (
	DefaultTripleSingle = `'''`
	DefaultTripleDouble = `"""`
)

// KeywordGroup assigns a list of literal words to a category.
type KeywordGroup struct {
	Category Category
	Words    []string
}

// RawStyle is the uncompiled description of a style: display formats per
// category, extra keyword groups, and the two multi-line delimiters.
type RawStyle struct {
	// Name identifies the style in a Registry.
	Name string

	// Formats maps categories to their display format. A rule group is only
	// generated for categories present here.
	Formats map[Category]core.Format

	// Keywords are custom literal groups, compiled in order after the
	// built-in groups. Groups whose category has no format are ignored.
	Keywords []KeywordGroup

	// Delimiters holds the triple-single and triple-double delimiter
	// patterns. Empty entries fall back to the defaults.
	Delimiters [2]string
}

// Has reports whether the style defines a format for the category.
func (s RawStyle) Has(c Category) bool {
	_, ok := s.Formats[c]
	return ok
}

// BaseFormat returns the style's base format, or plain white.
func (s RawStyle) BaseFormat() core.Format {
	if f, ok := s.Formats[CategoryBase]; ok {
		return f
	}
	return core.NewFormat(core.ColorWhite)
}

// formatFor returns the format used for rules of category c. The base
// category always resolves, falling back to BaseFormat.
func (s RawStyle) formatFor(c Category) (core.Format, bool) {
	if c == CategoryBase {
		return s.BaseFormat(), true
	}
	f, ok := s.Formats[c]
	return f, ok
}

// delimiterFormat is the comment format, or the base format when the style
// has no comment category.
func (s RawStyle) delimiterFormat() core.Format {
	if f, ok := s.Formats[CategoryComment]; ok {
		return f
	}
	return s.BaseFormat()
}

func (s RawStyle) delimiter(i int) string {
	if s.Delimiters[i] != "" {
		return s.Delimiters[i]
	}
	if i == 0 {
		return DefaultTripleSingle
	}
	return DefaultTripleDouble
}
