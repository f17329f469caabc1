package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/lexhl/internal/core"
	"github.com/dshills/lexhl/internal/highlight"
)

// TabWidth is the number of cells a tab occupies on screen.
const TabWidth = 4

// ToTcell converts a format to a tcell style on top of base.
func ToTcell(base tcell.Style, f core.Format) tcell.Style {
	c := f.Foreground
	style := base.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))

	if f.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if f.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if f.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	return style
}

// Paint draws a highlighted line at (x, y), clipped to width cells, and
// returns the number of cells used. Unstyled text uses base.
func Paint(s tcell.Screen, x, y, width int, text string, spans []highlight.Span, base tcell.Style) int {
	runes := []rune(text)
	col := 0

	for _, run := range highlight.Flatten(len(runes), spans) {
		style := base
		if run.Styled {
			style = ToTcell(base, run.Format)
		}

		for _, r := range runes[run.Start:run.End] {
			if r == '\t' {
				for i := 0; i < TabWidth && col < width; i++ {
					s.SetContent(x+col, y, ' ', nil, style)
					col++
				}
				continue
			}

			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if col+w > width {
				return col
			}
			s.SetContent(x+col, y, r, nil, style)
			col += w
		}
	}
	return col
}
