package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/lexhl/internal/core"
	"github.com/dshills/lexhl/internal/highlight"
)

const oceanTOML = `
[[style]]
name = "ocean"
delimiters = ["'''", '"""']

[style.formats.base]
color = "#ffffff"

[style.formats.keyword]
color = "#ed246e"
decoration = "bold"

[style.formats.custom]
color = "c8c8c8"
decoration = "italic underline"

[[style.keywords]]
category = "custom"
words = ["nuke", "knob"]
`

const oceanYAML = `
style:
  - name: ocean
    delimiters: ["'''", '"""']
    formats:
      base:
        color: "#ffffff"
      keyword:
        color: "#ed246e"
        decoration: bold
      custom:
        color: c8c8c8
        decoration: italic underline
    keywords:
      - category: custom
        words: [nuke, knob]
`

const oceanJSON = `{
  "style": [{
    "name": "ocean",
    "delimiters": ["'''", "\"\"\""],
    "formats": {
      "base": {"color": "#ffffff"},
      "keyword": {"color": "#ed246e", "decoration": "bold"},
      "custom": {"color": "c8c8c8", "decoration": "italic underline"}
    },
    "keywords": [{"category": "custom", "words": ["nuke", "knob"]}]
  }]
}`

func oceanStyle() highlight.RawStyle {
	return highlight.RawStyle{
		Name: "ocean",
		Formats: map[highlight.Category]core.Format{
			highlight.CategoryBase:    core.RGB(255, 255, 255),
			highlight.CategoryKeyword: core.RGB(237, 36, 110).Bold(),
			"custom":                  core.RGB(200, 200, 200).Italic().Underline(),
		},
		Keywords: []highlight.KeywordGroup{
			{Category: "custom", Words: []string{"nuke", "knob"}},
		},
		Delimiters: [2]string{"'''", `"""`},
	}
}

func TestLoad_AllFormatsAgree(t *testing.T) {
	fsys := fstest.MapFS{
		"styles/ocean.toml": {Data: []byte(oceanTOML)},
		"styles/ocean.yaml": {Data: []byte(oceanYAML)},
		"styles/ocean.yml":  {Data: []byte(oceanYAML)},
		"styles/ocean.json": {Data: []byte(oceanJSON)},
	}
	l := NewWithFS(fsys)

	for _, path := range []string{"styles/ocean.toml", "styles/ocean.yaml", "styles/ocean.yml", "styles/ocean.json"} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			styles, err := l.Load(path)
			require.NoError(t, err)
			require.Len(t, styles, 1)
			assert.Equal(t, oceanStyle(), styles[0])
		})
	}
}

func TestLoad_OSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.toml")
	require.NoError(t, os.WriteFile(path, []byte(oceanTOML), 0o644))

	styles, err := Load(path)
	require.NoError(t, err)
	require.Len(t, styles, 1)
	assert.Equal(t, "ocean", styles[0].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := NewWithFS(fstest.MapFS{}).Load("style.ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadAll_KeepsOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"a.toml": {Data: []byte("[[style]]\nname = \"a\"\n[[style]]\nname = \"b\"\n")},
		"c.json": {Data: []byte(`{"style":[{"name":"c"}]}`)},
	}

	styles, err := NewWithFS(fsys).LoadAll([]string{"a.toml", "c.json"})
	require.NoError(t, err)

	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		target  error
		line    int
		message string
	}{
		{
			name:   "missing name",
			format: FormatTOML,
			data:   "[[style]]\ndelimiters = []\n",
			target: ErrMissingName,
		},
		{
			name:   "invalid color",
			format: FormatYAML,
			data:   "style:\n  - name: x\n    formats:\n      keyword:\n        color: nothex\n",
			target: ErrInvalidColor,
		},
		{
			name:    "bad decoration",
			format:  FormatJSON,
			data:    `{"style":[{"name":"x","formats":{"keyword":{"color":"#fff","decoration":"blink"}}}]}`,
			message: "blink",
		},
		{
			name:    "too many delimiters",
			format:  FormatJSON,
			data:    `{"style":[{"name":"x","delimiters":["a","b","c"]}]}`,
			message: "at most two delimiters",
		},
		{
			name:    "keyword without category",
			format:  FormatYAML,
			data:    "style:\n  - name: x\n    keywords:\n      - words: [a]\n",
			message: "without category",
		},
		{
			name:   "toml syntax",
			format: FormatTOML,
			data:   "[[style]]\nname = \n",
			line:   2,
		},
		{
			name:    "toml unknown field",
			format:  FormatTOML,
			data:    "[[style]]\nname = \"x\"\ncolour = \"red\"\n",
			line:    3,
			message: "unknown field",
		},
		{
			name:    "yaml unknown field",
			format:  FormatYAML,
			data:    "style:\n  - name: x\n    colour: red\n",
			message: "colour",
		},
		{
			name:    "invalid json",
			format:  FormatJSON,
			data:    `{"style": [`,
			message: "invalid JSON",
		},
		{
			name:    "json style not array",
			format:  FormatJSON,
			data:    `{"style": {"name": "x"}}`,
			message: "must be an array",
		},
		{
			name:   "unknown format",
			format: Format("ini"),
			target: ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.format, "test", []byte(tt.data))
			require.Error(t, err)

			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
			if tt.line > 0 {
				var perr *ParseError
				require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
				assert.Equal(t, tt.line, perr.Line)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		styles, err := Parse(format, "empty", nil)
		require.NoError(t, err)
		assert.Empty(t, styles)
	}

	styles, err := Parse(FormatJSON, "empty", []byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, styles)
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Line: 2, Column: 5, Message: "bad"}, "parse error in a.toml at line 2, column 5: bad"},
		{&ParseError{Path: "a.toml", Line: 2, Message: "bad"}, "parse error in a.toml at line 2: bad"},
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestLoadedStyleCompiles(t *testing.T) {
	styles, err := Parse(FormatTOML, "ocean", []byte(oceanTOML))
	require.NoError(t, err)

	cs := highlight.Compile(styles[0])
	assert.Empty(t, cs.Warnings)

	spans, err := highlight.Scan([]rune("if knob"), cs.Rules)
	require.NoError(t, err)
	c, ok := highlight.CategoryAt(spans, 3)
	require.True(t, ok)
	assert.Equal(t, highlight.Category("custom"), c)
}
