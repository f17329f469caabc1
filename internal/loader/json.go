package loader

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// parseJSON reads {"style": [...]} with gjson. Unknown keys are ignored.
func parseJSON(source string, data []byte) (fileSchema, error) {
	var file fileSchema

	if !gjson.ValidBytes(data) {
		return file, &ParseError{Path: source, Message: errInvalidJSON.Error(), Err: errInvalidJSON}
	}

	styles := gjson.GetBytes(data, "style")
	if !styles.Exists() {
		return file, nil
	}
	if !styles.IsArray() {
		err := fmt.Errorf("%w: \"style\" must be an array", errInvalidJSON)
		return file, &ParseError{Path: source, Message: err.Error(), Err: err}
	}

	for _, s := range styles.Array() {
		style := styleSchema{
			Name:    s.Get("name").String(),
			Formats: make(map[string]formatSchema),
		}
		for _, d := range s.Get("delimiters").Array() {
			style.Delimiters = append(style.Delimiters, d.String())
		}
		s.Get("formats").ForEach(func(key, value gjson.Result) bool {
			style.Formats[key.String()] = formatSchema{
				Color:      value.Get("color").String(),
				Decoration: value.Get("decoration").String(),
			}
			return true
		})
		for _, k := range s.Get("keywords").Array() {
			group := keywordSchema{Category: k.Get("category").String()}
			for _, w := range k.Get("words").Array() {
				group.Words = append(group.Words, w.String())
			}
			style.Keywords = append(style.Keywords, group)
		}
		file.Styles = append(file.Styles, style)
	}

	return file, nil
}
