package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/chronicle/internal/text"
)

// Command represents a composable edit action that can be executed and undone.
type Command interface {
	// Execute performs the command and returns an error if it fails.
	Execute(buf *text.Buffer) error

	// Undo reverses the command and returns an error if it fails.
	Undo(buf *text.Buffer) error

	// Description returns a human-readable description of the command.
	Description() string
}

// InsertCommand inserts text at a fixed offset.
type InsertCommand struct {
	At   int
	Text string

	op *Operation
}

// NewInsertCommand creates a new insert command.
func NewInsertCommand(at int, s string) *InsertCommand {
	return &InsertCommand{At: at, Text: s}
}

// Execute inserts the text.
func (c *InsertCommand) Execute(buf *text.Buffer) error {
	if len(c.Text) == 0 {
		return nil
	}
	if err := buf.Insert(c.At, c.Text); err != nil {
		return fmt.Errorf("insert at offset %d: %w", c.At, err)
	}
	c.op = NewInsertOperation(c.At, c.Text)
	return nil
}

// Undo removes the inserted text.
func (c *InsertCommand) Undo(buf *text.Buffer) error {
	if c.op == nil {
		return nil
	}
	inv := c.op.Invert()
	if _, err := buf.Replace(inv.Range.Start, inv.Range.End, inv.NewText); err != nil {
		return fmt.Errorf("undo insert: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *InsertCommand) Description() string {
	if len(c.Text) == 1 {
		if c.Text == "\n" {
			return "Insert newline"
		}
		if c.Text == "\t" {
			return "Insert tab"
		}
		return fmt.Sprintf("Type '%s'", c.Text)
	}
	if utf8.RuneCountInString(c.Text) <= 20 {
		return fmt.Sprintf("Insert %q", c.Text)
	}
	return fmt.Sprintf("Insert %d characters", utf8.RuneCountInString(c.Text))
}

// DeleteCommand deletes the text in a fixed range.
type DeleteCommand struct {
	Start int
	End   int

	op *Operation
}

// NewDeleteCommand creates a new delete command.
func NewDeleteCommand(start, end int) *DeleteCommand {
	return &DeleteCommand{Start: start, End: end}
}

// Execute deletes the range, recording the removed text for undo.
func (c *DeleteCommand) Execute(buf *text.Buffer) error {
	if c.End <= c.Start {
		return nil
	}
	old, err := buf.TextRange(c.Start, c.End)
	if err != nil {
		return fmt.Errorf("delete range [%d,%d): %w", c.Start, c.End, err)
	}
	if err := buf.Delete(c.Start, c.End); err != nil {
		return fmt.Errorf("delete range [%d,%d): %w", c.Start, c.End, err)
	}
	c.op = NewDeleteOperation(Range{Start: c.Start, End: c.End}, old)
	return nil
}

// Undo restores the deleted text.
func (c *DeleteCommand) Undo(buf *text.Buffer) error {
	if c.op == nil {
		return nil
	}
	if err := buf.Insert(c.op.Range.Start, c.op.OldText); err != nil {
		return fmt.Errorf("undo delete: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	n := c.End - c.Start
	if n == 1 {
		return "Delete"
	}
	return fmt.Sprintf("Delete %d characters", n)
}

// ReplaceCommand replaces text in a specific range.
type ReplaceCommand struct {
	Range   Range
	NewText string

	op *Operation
}

// NewReplaceCommand creates a new replace command.
func NewReplaceCommand(r Range, newText string) *ReplaceCommand {
	return &ReplaceCommand{Range: r, NewText: newText}
}

// Execute replaces text in the specified range.
func (c *ReplaceCommand) Execute(buf *text.Buffer) error {
	old, err := buf.TextRange(c.Range.Start, c.Range.End)
	if err != nil {
		return fmt.Errorf("replace range [%d,%d): %w", c.Range.Start, c.Range.End, err)
	}
	if _, err := buf.Replace(c.Range.Start, c.Range.End, c.NewText); err != nil {
		return fmt.Errorf("replace range [%d,%d): %w", c.Range.Start, c.Range.End, err)
	}
	c.op = NewOperation(c.Range, old, c.NewText)
	return nil
}

// Undo restores the original text.
func (c *ReplaceCommand) Undo(buf *text.Buffer) error {
	if c.op == nil {
		return nil
	}
	inv := c.op.Invert()
	if _, err := buf.Replace(inv.Range.Start, inv.Range.End, inv.NewText); err != nil {
		return fmt.Errorf("undo replace: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *ReplaceCommand) Description() string {
	oldLen := c.Range.End - c.Range.Start
	newLen := utf8.RuneCountInString(c.NewText)
	if oldLen == 0 {
		return fmt.Sprintf("Insert %d characters", newLen)
	}
	if newLen == 0 {
		return fmt.Sprintf("Delete %d characters", oldLen)
	}
	return fmt.Sprintf("Replace %d with %d characters", oldLen, newLen)
}

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{Name: name, Commands: commands}
}

// Execute runs all commands in order.
func (c *CompoundCommand) Execute(buf *text.Buffer) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(buf); err != nil {
			// On error, try to undo what we've done
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(buf)
			}
			return fmt.Errorf("compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(buf *text.Buffer) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(buf); err != nil {
			return fmt.Errorf("undo compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}
