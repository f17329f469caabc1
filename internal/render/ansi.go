// Package render turns highlighted lines into terminal output: ANSI text,
// tcell screen cells, or JSON records.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dshills/lexhl/internal/core"
	"github.com/dshills/lexhl/internal/highlight"
)

// ANSI renders lines as ANSI-colored text.
type ANSI struct {
	r *lipgloss.Renderer
}

// NewANSI creates an ANSI renderer for w with a fixed color profile.
func NewANSI(w io.Writer, profile termenv.Profile) *ANSI {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &ANSI{r: r}
}

// DetectProfile returns the color profile for w, honouring NO_COLOR and
// CLICOLOR_FORCE.
func DetectProfile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// Line renders text with spans applied last-wins.
func (a *ANSI) Line(text string, spans []highlight.Span) string {
	runes := []rune(text)

	var b strings.Builder
	for _, run := range highlight.Flatten(len(runes), spans) {
		segment := string(runes[run.Start:run.End])
		if !run.Styled {
			b.WriteString(segment)
			continue
		}
		b.WriteString(a.style(run.Format).Render(segment))
	}
	return b.String()
}

func (a *ANSI) style(f core.Format) lipgloss.Style {
	return a.r.NewStyle().
		Foreground(lipgloss.Color(f.Foreground.Hex())).
		Bold(f.Attributes.Has(core.AttrBold)).
		Italic(f.Attributes.Has(core.AttrItalic)).
		Underline(f.Attributes.Has(core.AttrUnderline)).
		TabWidth(lipgloss.NoTabConversion)
}
