package highlight

import (
	"github.com/dshills/lexhl/internal/core"
)

// pythonKeywords are matched as whole words for CategoryKeyword.
var pythonKeywords = []string{
	"and", "assert", "break", "continue",
	"del", "elif", "else", "except", "exec", "finally",
	"for", "from", "global", "if", "import", "in",
	"is", "lambda", "not", "or", "pass", "print",
	"raise", "return", "try", "while", "yield", "with", "as",
}

// builtinExceptions are matched as whole words for CategoryError.
var builtinExceptions = []string{
	"AssertionError", "AttributeError", "EOFError", "FloatingPointError",
	"GeneratorExit", "ImportError", "IndexError",
	"KeyError", "KeyboardInterrupt", "MemoryError", "NameError",
	"NotImplementedError", "OSError", "OverflowError", "ReferenceError",
	"RuntimeError", "StopIteration", "SyntaxError", "IndentationError",
	"TabError", "SystemError", "SystemExit", "TypeError", "UnboundLocalError",
	"UnicodeError", "UnicodeEncodeError", "UnicodeDecodeError", "UnicodeTranslateError",
	"ValueError", "ZeroDivisionError",
}

// baseTokens are restored to the base format inside argument lists.
var baseTokens = []string{","}

// operatorPatterns are already regex-escaped.
var operatorPatterns = []string{
	`=`, `==`, `!=`, `<`, `<=`, `>`, `>=`,
	`\+`, `-`, `\*`, `/`, `//`, `%`, `\*\*`,
	`\+=`, `-=`, `\*=`, `/=`, `%=`,
	`\^`, `\|`, `&`, `~`, `>>`, `<<`,
}

// singletons are matched as whole words for CategorySingleton.
var singletons = []string{"True", "False", "None"}

// Names of the built-in styles.
const (
	StyleNuke          = "nuke"
	StyleMonokai       = "monokai"
	StyleDracula       = "dracula"
	StyleSolarizedDark = "solarized-dark"
	StyleLight         = "light"
)

// DefaultStyleName is the style a built-in registry starts with.
const DefaultStyleName = StyleMonokai

// BuiltinStyles returns the raw built-in styles in registration order.
func BuiltinStyles() []RawStyle {
	return []RawStyle{
		NukeStyle(),
		MonokaiStyle(),
		DraculaStyle(),
		SolarizedDarkStyle(),
		LightStyle(),
	}
}

// NukeStyle returns the compact "nuke" style.
func NukeStyle() RawStyle {
	pink := core.RGB(238, 117, 181).Bold()
	purple := core.RGB(174, 129, 255)

	return RawStyle{
		Name: StyleNuke,
		Formats: map[Category]core.Format{
			CategoryBase:      core.RGB(255, 255, 255),
			CategoryKeyword:   pink,
			CategoryOperator:  pink,
			CategoryNumber:    purple,
			CategorySingleton: purple,
			CategoryString:    core.RGB(242, 136, 135),
			CategoryComment:   core.RGB(143, 221, 144),
		},
	}
}

// MonokaiStyle returns the full "monokai" style, including custom keyword
// groups.
func MonokaiStyle() RawStyle {
	pink := core.RGB(237, 36, 110)
	green := core.RGB(184, 237, 54)
	purple := core.RGB(165, 120, 255)
	cyan := core.RGB(130, 226, 255)
	orange := core.RGB(255, 170, 10)

	return RawStyle{
		Name: StyleMonokai,
		Formats: map[Category]core.Format{
			CategoryBase:      core.RGB(255, 255, 255),
			CategoryKeyword:   pink,
			CategoryOperator:  pink,
			CategoryString:    core.RGB(237, 229, 122),
			CategoryComment:   core.RGB(125, 125, 125),
			CategoryNumber:    purple,
			CategorySingleton: purple,
			CategoryFunction:  green,
			CategoryArgument:  orange.Italic(),
			CategoryClass:     green,
			CategoryCallable:  cyan,
			CategoryError:     cyan.Italic(),
			"underline":       core.RGB(240, 240, 240).Underline(),
			"selected":        core.RGB(255, 255, 255).Bold().Underline(),
			"custom":          core.RGB(200, 200, 200).Italic(),
			"blue":            cyan.Italic(),
			"self":            orange.Italic(),
		},
		Keywords: []KeywordGroup{
			{Category: "custom", Words: []string{"nuke"}},
			{Category: "blue", Words: []string{
				"def", "class", "int", "str", "float",
				"bool", "list", "dict", "set",
			}},
			{Category: CategoryBase},
			{Category: "self", Words: []string{"self"}},
		},
	}
}

// DraculaStyle returns a Dracula-inspired style.
func DraculaStyle() RawStyle {
	pink := core.RGB(255, 121, 198)
	green := core.RGB(80, 250, 123)
	purple := core.RGB(189, 147, 249)
	cyan := core.RGB(139, 233, 253)

	return RawStyle{
		Name: StyleDracula,
		Formats: map[Category]core.Format{
			CategoryBase:      core.RGB(248, 248, 242),
			CategoryKeyword:   pink,
			CategoryOperator:  pink,
			CategoryString:    core.RGB(241, 250, 140),
			CategoryComment:   core.RGB(98, 114, 164),
			CategoryNumber:    purple,
			CategorySingleton: purple,
			CategoryFunction:  green,
			CategoryArgument:  core.RGB(255, 184, 108).Italic(),
			CategoryClass:     cyan,
			CategoryCallable:  green,
			CategoryError:     core.RGB(255, 85, 85).Bold(),
			"self":            purple.Italic(),
		},
		Keywords: []KeywordGroup{
			{Category: "self", Words: []string{"self", "cls"}},
		},
	}
}

// SolarizedDarkStyle returns a Solarized Dark style.
func SolarizedDarkStyle() RawStyle {
	green := core.RGB(133, 153, 0)
	blue := core.RGB(38, 139, 210)

	return RawStyle{
		Name: StyleSolarizedDark,
		Formats: map[Category]core.Format{
			CategoryBase:      core.RGB(131, 148, 150),
			CategoryKeyword:   green,
			CategoryOperator:  green,
			CategoryString:    core.RGB(42, 161, 152),
			CategoryComment:   core.RGB(88, 110, 117).Italic(),
			CategoryNumber:    core.RGB(211, 54, 130),
			CategorySingleton: core.RGB(108, 113, 196),
			CategoryFunction:  blue,
			CategoryArgument:  core.RGB(203, 75, 22),
			CategoryClass:     core.RGB(181, 137, 0),
			CategoryCallable:  blue,
			CategoryError:     core.RGB(220, 50, 47).Bold(),
		},
	}
}

// LightStyle returns a style for light backgrounds.
func LightStyle() RawStyle {
	keyword := core.RGB(0, 0, 255)
	function := core.RGB(121, 94, 38)

	return RawStyle{
		Name: StyleLight,
		Formats: map[Category]core.Format{
			CategoryBase:      core.RGB(0, 0, 0),
			CategoryKeyword:   keyword,
			CategoryOperator:  core.RGB(0, 0, 0),
			CategoryString:    core.RGB(163, 21, 21),
			CategoryComment:   core.RGB(0, 128, 0).Italic(),
			CategoryNumber:    core.RGB(9, 134, 88),
			CategorySingleton: keyword,
			CategoryFunction:  function,
			CategoryArgument:  core.RGB(0, 16, 128),
			CategoryClass:     core.RGB(38, 127, 153),
			CategoryCallable:  function,
			CategoryError:     core.RGB(205, 49, 49).Bold(),
		},
	}
}
