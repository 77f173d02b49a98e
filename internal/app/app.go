// Package app runs the chronicle demo: a terminal scratchpad whose edit
// history is managed by the history and journal packages.
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chronicle/internal/config"
	"github.com/dshills/chronicle/internal/history"
	"github.com/dshills/chronicle/internal/text"
)

// App is the terminal scratchpad.
type App struct {
	cfg    config.Config
	keymap *Keymap

	screen tcell.Screen
	buf    *text.Buffer
	hist   *history.History

	cursor int // byte offset into the buffer
	quit   bool
	status string
}

// New creates an app from the given configuration and initial buffer text.
func New(cfg config.Config, initial string) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	keymap := DefaultKeymap()
	if cfg.UI.KeymapPath != "" {
		km, err := LoadKeymap(cfg.UI.KeymapPath)
		if err != nil {
			return nil, err
		}
		keymap = km
	}

	var hist *history.History
	if cfg.History.Unbounded {
		hist = history.NewUnboundedHistory()
	} else {
		hist = history.NewHistory(cfg.History.Capacity)
	}

	return &App{
		cfg:    cfg,
		keymap: keymap,
		buf:    text.NewBuffer(initial),
		hist:   hist,
		cursor: len(initial),
	}, nil
}

// Run initializes the terminal and processes events until quit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	a.screen = screen
	defer screen.Fini()

	for !a.quit {
		a.draw()
		a.handleEvent(screen.PollEvent())
	}
	return nil
}

// PostConfig delivers a reloaded configuration to the running event loop.
// Safe to call from another goroutine.
func (a *App) PostConfig(cfg config.Config) {
	if a.screen != nil {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(cfg))
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if cfg, ok := ev.Data().(config.Config); ok {
			a.applyConfig(cfg)
		}
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

// applyConfig picks up the settings that can change while running. History
// bounds are fixed at startup; changing them would discard edit history.
func (a *App) applyConfig(cfg config.Config) {
	a.cfg.Editor.TabWidth = cfg.Editor.TabWidth
	a.cfg.UI.StatusLine = cfg.UI.StatusLine
	a.status = "config reloaded"
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if action, ok := a.keymap.Lookup(ev); ok {
		a.runAction(action)
		return
	}

	switch ev.Key() {
	case tcell.KeyRune:
		a.insert(string(ev.Rune()))
	case tcell.KeyEnter:
		a.insert("\n")
	case tcell.KeyTab:
		a.insert("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.cursor > 0 {
			start := a.buf.PrevRuneStart(a.cursor)
			if a.execute(history.NewDeleteCommand(start, a.cursor)) {
				a.cursor = start
			}
		}
	case tcell.KeyDelete:
		if end := a.buf.NextRuneEnd(a.cursor); end > a.cursor {
			a.execute(history.NewDeleteCommand(a.cursor, end))
		}
	case tcell.KeyLeft:
		a.cursor = a.buf.PrevRuneStart(a.cursor)
	case tcell.KeyRight:
		a.cursor = a.buf.NextRuneEnd(a.cursor)
	case tcell.KeyHome:
		a.cursor = 0
	case tcell.KeyEnd:
		a.cursor = a.buf.Len()
	case tcell.KeyEscape:
		a.quit = true
	}
}

func (a *App) runAction(action Action) {
	switch action {
	case ActionQuit:
		a.quit = true
	case ActionUndo:
		if err := a.hist.Undo(a.buf); err != nil {
			a.status = err.Error()
			return
		}
		a.status = "undo"
		a.clampCursor()
	case ActionRedo:
		if err := a.hist.Redo(a.buf); err != nil {
			a.status = err.Error()
			return
		}
		a.status = "redo"
		a.clampCursor()
	case ActionUndoAll:
		n := 0
		for a.hist.CanUndo() {
			if err := a.hist.Undo(a.buf); err != nil {
				a.status = err.Error()
				return
			}
			n++
		}
		a.status = fmt.Sprintf("undid %d operations", n)
		a.clampCursor()
	}
}

func (a *App) insert(s string) {
	if a.execute(history.NewInsertCommand(a.cursor, s)) {
		a.cursor += len(s)
	}
}

func (a *App) execute(cmd history.Command) bool {
	if err := a.hist.Execute(cmd, a.buf); err != nil {
		a.status = err.Error()
		return false
	}
	a.status = ""
	return true
}

func (a *App) clampCursor() {
	if a.cursor > a.buf.Len() {
		a.cursor = a.buf.Len()
	}
}

func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	textRows := height
	if a.cfg.UI.StatusLine && height > 0 {
		textRows = height - 1
	}

	curRow, curCol := -1, -1
	offset := 0
	for row, line := range a.buf.Lines() {
		if row >= textRows {
			break
		}
		col := 0
		for _, r := range line {
			if offset == a.cursor {
				curRow, curCol = row, col
			}
			if r == '\t' {
				col += a.cfg.Editor.TabWidth - col%a.cfg.Editor.TabWidth
			} else {
				if col < width {
					a.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
				}
				col++
			}
			offset += len(string(r))
		}
		if offset == a.cursor {
			curRow, curCol = row, col
		}
		offset++ // the newline
	}
	if curRow >= 0 {
		a.screen.ShowCursor(curCol, curRow)
	}

	if a.cfg.UI.StatusLine && height > 0 {
		a.drawStatus(width, height-1)
	}
	a.screen.Show()
}

func (a *App) drawStatus(width, row int) {
	line := fmt.Sprintf(" undo:%d redo:%d", a.hist.UndoCount(), a.hist.RedoCount())
	if info, ok := a.hist.PeekUndo(); ok {
		line += " | " + info.Description
	}
	if a.status != "" {
		line += " | " + a.status
	}

	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range line {
		if col >= width {
			break
		}
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		a.screen.SetContent(col, row, ' ', nil, style)
	}
}
