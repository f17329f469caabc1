// Package loader reads highlight styles from TOML, YAML or JSON files.
//
// All three formats share one shape: a list of styles under the "style"
// key, each with a name, optional delimiters, per-category formats and
// custom keyword groups.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/lexhl/internal/core"
	"github.com/dshills/lexhl/internal/highlight"
)

// Errors returned while converting a style file.
var (
	ErrMissingName       = errors.New("style has no name")
	ErrInvalidColor      = errors.New("invalid color")
	ErrUnsupportedFormat = errors.New("unsupported style file format")
)

// Format is a style file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// FileSystem reads files. fstest.MapFS satisfies it.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader loads style files.
type Loader struct {
	fs FileSystem
}

// New creates a loader over the OS file system.
func New() *Loader {
	return &Loader{fs: OSFS{}}
}

// NewWithFS creates a loader over a custom file system.
func NewWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads the styles in one file.
func (l *Loader) Load(path string) ([]highlight.RawStyle, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style file %s: %w", path, err)
	}

	return Parse(format, path, data)
}

// LoadAll reads several files, keeping file order.
func (l *Loader) LoadAll(paths []string) ([]highlight.RawStyle, error) {
	var styles []highlight.RawStyle
	for _, path := range paths {
		loaded, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		styles = append(styles, loaded...)
	}
	return styles, nil
}

// Load reads the styles in one file from the OS file system.
func Load(path string) ([]highlight.RawStyle, error) {
	return New().Load(path)
}

// Parse decodes style data in the given format. source names the data in
// errors.
func Parse(format Format, source string, data []byte) ([]highlight.RawStyle, error) {
	var (
		file fileSchema
		err  error
	)
	switch format {
	case FormatTOML:
		file, err = parseTOML(source, data)
	case FormatYAML:
		file, err = parseYAML(source, data)
	case FormatJSON:
		file, err = parseJSON(source, data)
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	styles := make([]highlight.RawStyle, 0, len(file.Styles))
	for i, s := range file.Styles {
		raw, err := s.toRaw()
		if err != nil {
			return nil, &ParseError{
				Path:    source,
				Message: fmt.Sprintf("style %d: %v", i+1, err),
				Err:     err,
			}
		}
		styles = append(styles, raw)
	}
	return styles, nil
}

// fileSchema is the decoded form shared by every format.
type fileSchema struct {
	Styles []styleSchema `toml:"style" yaml:"style"`
}

type styleSchema struct {
	Name       string                  `toml:"name" yaml:"name"`
	Delimiters []string                `toml:"delimiters" yaml:"delimiters"`
	Formats    map[string]formatSchema `toml:"formats" yaml:"formats"`
	Keywords   []keywordSchema         `toml:"keywords" yaml:"keywords"`
}

type formatSchema struct {
	Color      string `toml:"color" yaml:"color"`
	Decoration string `toml:"decoration" yaml:"decoration"`
}

type keywordSchema struct {
	Category string   `toml:"category" yaml:"category"`
	Words    []string `toml:"words" yaml:"words"`
}

func (s styleSchema) toRaw() (highlight.RawStyle, error) {
	if strings.TrimSpace(s.Name) == "" {
		return highlight.RawStyle{}, ErrMissingName
	}

	raw := highlight.RawStyle{
		Name:    s.Name,
		Formats: make(map[highlight.Category]core.Format, len(s.Formats)),
	}

	if len(s.Delimiters) > 2 {
		return raw, fmt.Errorf("%s: at most two delimiters, got %d", s.Name, len(s.Delimiters))
	}
	copy(raw.Delimiters[:], s.Delimiters)

	for category, f := range s.Formats {
		format, err := f.toFormat()
		if err != nil {
			return raw, fmt.Errorf("%s: format %q: %w", s.Name, category, err)
		}
		raw.Formats[highlight.Category(category)] = format
	}

	for _, k := range s.Keywords {
		if k.Category == "" {
			return raw, fmt.Errorf("%s: keyword group without category", s.Name)
		}
		raw.Keywords = append(raw.Keywords, highlight.KeywordGroup{
			Category: highlight.Category(k.Category),
			Words:    k.Words,
		})
	}

	return raw, nil
}

func (f formatSchema) toFormat() (core.Format, error) {
	color, err := core.ParseHex(f.Color)
	if err != nil {
		return core.Format{}, fmt.Errorf("%q: %w", f.Color, ErrInvalidColor)
	}
	attrs, err := core.ParseAttributes(f.Decoration)
	if err != nil {
		return core.Format{}, err
	}
	return core.Format{Foreground: color, Attributes: attrs}, nil
}

// ParseError represents an error while parsing a style file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
