package highlight

// Category is a semantic token class. The constants below form the closed
// set the compiler knows how to generate rules for; any other name is a
// custom category fed only by a style's keyword groups.
type Category string

// Built-in categories.
const (
	CategoryBase      Category = "base"
	CategoryKeyword   Category = "keyword"
	CategoryOperator  Category = "operator"
	CategoryNumber    Category = "number"
	CategorySingleton Category = "singleton"
	CategoryString    Category = "string"
	CategoryComment   Category = "comment"
	CategoryFunction  Category = "function"
	CategoryArgument  Category = "argument"
	CategoryClass     Category = "class"
	CategoryCallable  Category = "callable"
	CategoryError     Category = "error"
)

var builtinCategories = map[Category]bool{
	CategoryBase:      true,
	CategoryKeyword:   true,
	CategoryOperator:  true,
	CategoryNumber:    true,
	CategorySingleton: true,
	CategoryString:    true,
	CategoryComment:   true,
	CategoryFunction:  true,
	CategoryArgument:  true,
	CategoryClass:     true,
	CategoryCallable:  true,
	CategoryError:     true,
}

// Builtin reports whether c is one of the built-in categories.
func (c Category) Builtin() bool {
	return builtinCategories[c]
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}
