package highlight

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/dshills/lexhl/internal/core"
)

// DefaultMatchTimeout bounds a single regex search so that a pathological
// pattern degrades one line instead of hanging the caller.
const DefaultMatchTimeout = 250 * time.Millisecond

// CompiledRule is one single-line rule: matches of Pattern have capture
// group Group formatted with Format.
type CompiledRule struct {
	Pattern  *regexp2.Regexp
	Group    int
	Format   core.Format
	Category Category
}

// Delimiter describes one kind of multi-line region. State is the tag the
// region's lines carry while it is open.
type Delimiter struct {
	Pattern  *regexp2.Regexp
	State    LineState
	Format   core.Format
	Category Category
}

// CompiledStyle is a style ready to scan. It is immutable and may be shared.
type CompiledStyle struct {
	Name       string
	Rules      []CompiledRule
	Delimiters [2]Delimiter

	// Warnings lists patterns skipped because they failed to compile.
	Warnings []string
}

type pattern struct {
	expr  string
	group int
	// category overrides the generator's category when set.
	category Category
}

// generator produces the patterns for one step of the rule order. A
// generator with an empty category runs unconditionally and tags its own
// patterns.
type generator struct {
	category Category
	patterns func(raw RawStyle) []pattern
}

// generators is the fixed rule order. Rules applied later win where
// matches overlap, so the order is part of the output.
var generators = []generator{
	{CategoryArgument, argumentListPatterns},
	{CategoryCallable, fixed(pattern{expr: `\b([\w]+)[\s]*[(]`, group: 1})},
	{CategoryKeyword, words(pythonKeywords)},
	{CategoryError, words(builtinExceptions)},
	{CategoryOperator, literals(operatorPatterns)},
	{CategorySingleton, words(singletons)},
	{CategoryNumber, fixed(pattern{expr: `\b[0-9]+\b`})},
	{CategoryFunction, fixed(pattern{expr: `def[\s]+([\w\.]+)`, group: 1})},
	{CategoryClass, fixed(
		pattern{expr: `class[\s]+([\w\.]+)`, group: 1},
		pattern{expr: `class[\s]+[\w\.]+[\s]*\((.*)\)`, group: 1},
	)},
	{CategoryArgument, fixed(pattern{expr: `def[\s]+[\w]+[\s]*\(([\w]+)`, group: 1})},
	{"", customKeywordPatterns},
	{CategoryString, fixed(
		pattern{expr: `"[^"\\]*(\\.[^"\\]*)*"`},
		pattern{expr: `'[^'\\]*(\\.[^'\\]*)*'`},
	)},
	{CategoryComment, fixed(pattern{expr: `#[^\n]*`})},
}

func fixed(ps ...pattern) func(RawStyle) []pattern {
	return func(RawStyle) []pattern { return ps }
}

func words(list []string) func(RawStyle) []pattern {
	return func(RawStyle) []pattern {
		ps := make([]pattern, 0, len(list))
		for _, w := range list {
			ps = append(ps, wordPattern(w, ""))
		}
		return ps
	}
}

func literals(list []string) func(RawStyle) []pattern {
	return func(RawStyle) []pattern {
		ps := make([]pattern, 0, len(list))
		for _, expr := range list {
			ps = append(ps, pattern{expr: expr})
		}
		return ps
	}
}

func wordPattern(word string, c Category) pattern {
	return pattern{expr: `\b` + regexp2.Escape(word) + `\b`, category: c}
}

// argumentListPatterns tags everything inside a definition's parentheses,
// then restores punctuation and bare words that the greedy capture
// swallowed from nested expressions.
func argumentListPatterns(RawStyle) []pattern {
	ps := []pattern{{expr: `def [\w]+[\s]*\((.*)\)`, group: 1}}
	for _, tok := range baseTokens {
		ps = append(ps, pattern{expr: regexp2.Escape(tok), category: CategoryBase})
	}
	return append(ps, pattern{expr: `[^\(\w),.][\s]*[\w]+`, category: CategoryBase})
}

func customKeywordPatterns(raw RawStyle) []pattern {
	var ps []pattern
	for _, group := range raw.Keywords {
		if !raw.Has(group.Category) {
			continue
		}
		for _, w := range group.Words {
			ps = append(ps, wordPattern(w, group.Category))
		}
	}
	return ps
}

// Compile compiles raw with DefaultMatchTimeout.
func Compile(raw RawStyle) *CompiledStyle {
	return CompileWithTimeout(raw, DefaultMatchTimeout)
}

// CompileWithTimeout compiles raw into a rule set. It never fails: rule
// groups for absent categories are skipped, and patterns that do not
// compile are dropped and reported in Warnings. A non-positive timeout
// disables the per-search limit.
func CompileWithTimeout(raw RawStyle, timeout time.Duration) *CompiledStyle {
	cs := &CompiledStyle{Name: raw.Name}

	for _, g := range generators {
		if g.category != "" && !raw.Has(g.category) {
			continue
		}
		for _, p := range g.patterns(raw) {
			category := p.category
			if category == "" {
				category = g.category
			}
			format, ok := raw.formatFor(category)
			if !ok {
				continue
			}
			re, err := compilePattern(p.expr, timeout)
			if err != nil {
				cs.Warnings = append(cs.Warnings, fmt.Sprintf("%s rule %q: %v", category, p.expr, err))
				continue
			}
			cs.Rules = append(cs.Rules, CompiledRule{
				Pattern:  re,
				Group:    p.group,
				Format:   format,
				Category: category,
			})
		}
	}

	delimCategory := CategoryComment
	if !raw.Has(CategoryComment) {
		delimCategory = CategoryBase
	}
	for i, state := range [2]LineState{StateTripleSingle, StateTripleDouble} {
		expr := raw.delimiter(i)
		re, err := compilePattern(expr, timeout)
		if err != nil {
			cs.Warnings = append(cs.Warnings, fmt.Sprintf("delimiter %q: %v", expr, err))
			re = nil
		}
		cs.Delimiters[i] = Delimiter{
			Pattern:  re,
			State:    state,
			Format:   raw.delimiterFormat(),
			Category: delimCategory,
		}
	}

	return cs
}

func compilePattern(expr string, timeout time.Duration) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return re, nil
}
