package loader

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

func parseYAML(source string, data []byte) (fileSchema, error) {
	var file fileSchema

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return file, &ParseError{Path: source, Message: err.Error(), Err: err}
	}

	return file, nil
}
