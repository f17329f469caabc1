package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/dshills/lexhl/internal/config"
	"github.com/dshills/lexhl/internal/document"
	"github.com/dshills/lexhl/internal/render"
)

func newCatCmd(start startFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "cat [FILE...]",
		Short: "Highlight files to stdout",
		Long: `Highlight files to stdout. With no FILE, or when FILE is -, read standard
input.

Example:
  lexhl cat script.py
  lexhl cat --style nuke --output json a.py b.py`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := start(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			defer w.Flush()

			for _, path := range args {
				text, err := readSource(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				doc := document.New(s.engine, text, document.WithLogger(s.logger))
				if err := writeDocument(w, s.cfg.Output, path, doc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func readSource(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func writeDocument(w io.Writer, output, path string, doc *document.Document) error {
	lines := doc.Lines()

	switch output {
	case config.OutputJSON:
		for i, l := range lines {
			rec, err := render.LineJSON(i, l.Text, l.State, l.Spans)
			if err != nil {
				return err
			}
			if rec, err = sjson.Set(rec, "file", path); err != nil {
				return fmt.Errorf("encoding %s: %w", path, err)
			}
			if _, err := fmt.Fprintln(w, rec); err != nil {
				return err
			}
		}
		return nil

	case config.OutputPlain:
		_, err := io.WriteString(w, doc.Text())
		return err

	default:
		a := render.NewANSI(w, render.DetectProfile(os.Stdout))
		for i, l := range lines {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, a.Line(l.Text, l.Spans)); err != nil {
				return err
			}
		}
		return nil
	}
}
