package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/lexhl/internal/document"
	"github.com/dshills/lexhl/internal/highlight"
	"github.com/dshills/lexhl/internal/logging"
	"github.com/dshills/lexhl/internal/render"
)

func newViewCmd(start startFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE",
		Short: "Page through a highlighted file",
		Long: `Page through a highlighted file in the terminal.

Keys: up/down or k/j scroll, PgUp/PgDn page, s cycles styles, q or Esc quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := start(cmd)
			if err != nil {
				return err
			}
			text, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()

			doc := document.New(s.engine, text, document.WithLogger(s.logger))
			p := newPager(screen, s.engine, doc, args[0], s.logger)
			p.run()
			return nil
		},
	}
}

// pager draws a document and handles scrolling keys.
type pager struct {
	screen tcell.Screen
	engine *highlight.Engine
	doc    *document.Document
	title  string
	logger *logging.Logger
	top    int
}

func newPager(screen tcell.Screen, engine *highlight.Engine, doc *document.Document, title string, logger *logging.Logger) *pager {
	return &pager{
		screen: screen,
		engine: engine,
		doc:    doc,
		title:  title,
		logger: logger,
	}
}

func (p *pager) run() {
	p.draw()
	for {
		if p.handle(p.screen.PollEvent()) {
			return
		}
		p.draw()
	}
}

// height is the number of text rows; the last row is the status bar.
func (p *pager) height() int {
	_, h := p.screen.Size()
	if h < 2 {
		return 1
	}
	return h - 1
}

func (p *pager) draw() {
	p.screen.Clear()
	w, h := p.screen.Size()
	rows := p.height()

	gutter := len(fmt.Sprint(p.doc.Len())) + 1
	numStyle := tcell.StyleDefault.Dim(true)

	for row := 0; row < rows; row++ {
		i := p.top + row
		line, ok := p.doc.Line(i)
		if !ok {
			break
		}
		num := fmt.Sprintf("%*d ", gutter-1, i+1)
		render.Paint(p.screen, 0, row, gutter, num, nil, numStyle)
		render.Paint(p.screen, gutter, row, w-gutter, line.Text, line.Spans, tcell.StyleDefault)
	}

	status := fmt.Sprintf(" %s  %d/%d  style: %s ", p.title, p.top+1, p.doc.Len(), p.engine.Style())
	render.Paint(p.screen, 0, h-1, w, status, nil, tcell.StyleDefault.Reverse(true))
	p.screen.Show()
}

// handle applies one event and reports whether the pager should quit.
func (p *pager) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			p.scroll(-1)
		case tcell.KeyDown:
			p.scroll(1)
		case tcell.KeyPgUp:
			p.scroll(-p.height())
		case tcell.KeyPgDn:
			p.scroll(p.height())
		case tcell.KeyHome:
			p.top = 0
		case tcell.KeyEnd:
			p.scroll(p.doc.Len())
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'k':
				p.scroll(-1)
			case 'j':
				p.scroll(1)
			case 's':
				p.nextStyle()
			}
		}
	}
	return false
}

func (p *pager) scroll(delta int) {
	p.top += delta
	if last := p.doc.Len() - p.height(); p.top > last {
		p.top = last
	}
	if p.top < 0 {
		p.top = 0
	}
}

// nextStyle switches to the next registered style and re-highlights the
// whole document.
func (p *pager) nextStyle() {
	names := p.engine.Styles()
	if len(names) == 0 {
		return
	}
	next := names[0]
	for i, name := range names {
		if name == p.engine.Style() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := p.engine.SetStyle(next); err != nil {
		p.logger.Warn("switching style: %v", err)
		return
	}
	n := p.doc.Rehighlight()
	p.logger.Debug("style %s, rehighlighted %d lines", next, n)
}
