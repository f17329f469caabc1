// Package core provides the display format value types shared by the
// highlighter, its style loaders, and the renderers.
package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Attribute represents text decorations (bold, italic, underline).
type Attribute uint8

// Text decoration flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// String returns the decorations as a space-separated list.
func (a Attribute) String() string {
	var parts []string
	if a.Has(AttrBold) {
		parts = append(parts, "bold")
	}
	if a.Has(AttrItalic) {
		parts = append(parts, "italic")
	}
	if a.Has(AttrUnderline) {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, " ")
}

// ParseAttributes parses a decoration list such as "bold underline".
// Unknown words are reported as an error; an empty string is AttrNone.
func ParseAttributes(s string) (Attribute, error) {
	attrs := AttrNone
	for _, word := range strings.Fields(strings.ToLower(s)) {
		switch word {
		case "bold":
			attrs |= AttrBold
		case "italic":
			attrs |= AttrItalic
		case "underline":
			attrs |= AttrUnderline
		default:
			return AttrNone, fmt.Errorf("unknown decoration %q", word)
		}
	}
	return attrs, nil
}

// Color is a true color value.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
)

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#rrggbb" or "#rgb". The leading '#' is optional.
func ParseHex(hex string) (Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the "#RRGGBB" representation of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns a string representation of the color.
func (c Color) String() string {
	return c.Hex()
}

// Format is the display format applied to a highlighted span: a foreground
// color plus decorations. It is an immutable value type.
type Format struct {
	Foreground Color
	Attributes Attribute
}

// NewFormat creates a format with the given foreground color.
func NewFormat(fg Color) Format {
	return Format{Foreground: fg}
}

// RGB creates a format from RGB components and optional decorations.
func RGB(r, g, b uint8, attrs ...Attribute) Format {
	f := Format{Foreground: ColorFromRGB(r, g, b)}
	for _, a := range attrs {
		f.Attributes |= a
	}
	return f
}

// Bold returns a new format with bold added.
func (f Format) Bold() Format {
	f.Attributes |= AttrBold
	return f
}

// Italic returns a new format with italic added.
func (f Format) Italic() Format {
	f.Attributes |= AttrItalic
	return f
}

// Underline returns a new format with underline added.
func (f Format) Underline() Format {
	f.Attributes |= AttrUnderline
	return f
}

// String returns a compact description such as "#FFFFFF bold".
func (f Format) String() string {
	if f.Attributes == AttrNone {
		return f.Foreground.Hex()
	}
	return f.Foreground.Hex() + " " + f.Attributes.String()
}
