package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Action is a named editor action a key chord can trigger.
type Action string

// Actions the keymap can bind.
const (
	ActionUndo    Action = "undo"
	ActionRedo    Action = "redo"
	ActionUndoAll Action = "undo-all"
	ActionQuit    Action = "quit"
)

var knownActions = map[Action]bool{
	ActionUndo:    true,
	ActionRedo:    true,
	ActionUndoAll: true,
	ActionQuit:    true,
}

// Keymap maps key chords (e.g. "ctrl+z") to actions.
type Keymap struct {
	bindings map[string]Action
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		bindings: map[string]Action{
			"ctrl+z": ActionUndo,
			"ctrl+y": ActionRedo,
			"ctrl+u": ActionUndoAll,
			"ctrl+q": ActionQuit,
		},
	}
}

// keymapFile is the YAML shape of a keymap file.
type keymapFile struct {
	Bindings map[string]string `yaml:"bindings"` // action -> chord
}

// LoadKeymap reads bindings from a YAML file, starting from the defaults
// so unbound actions keep their built-in chords.
func LoadKeymap(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}

	var file keymapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing keymap %s: %w", path, err)
	}

	km := DefaultKeymap()
	for action, chord := range file.Bindings {
		a := Action(strings.ToLower(action))
		if !knownActions[a] {
			return nil, fmt.Errorf("keymap %s: unknown action %q", path, action)
		}
		chord = normalizeChord(chord)
		if chord == "" {
			return nil, fmt.Errorf("keymap %s: invalid chord for %q", path, action)
		}
		// Drop the default binding for this action before rebinding.
		for c, bound := range km.bindings {
			if bound == a {
				delete(km.bindings, c)
			}
		}
		km.bindings[chord] = a
	}
	return km, nil
}

// Lookup resolves a key event to a bound action.
func (k *Keymap) Lookup(ev *tcell.EventKey) (Action, bool) {
	chord := chordFor(ev)
	if chord == "" {
		return "", false
	}
	action, ok := k.bindings[chord]
	return action, ok
}

// normalizeChord canonicalizes a "ctrl+<letter>" chord, returning "" if the
// chord is not one the demo supports.
func normalizeChord(chord string) string {
	chord = strings.ToLower(strings.ReplaceAll(chord, " ", ""))
	rest, ok := strings.CutPrefix(chord, "ctrl+")
	if !ok || len(rest) != 1 || rest[0] < 'a' || rest[0] > 'z' {
		return ""
	}
	return "ctrl+" + rest
}

// chordFor renders a key event as a chord string. Control keys that double
// as editing keys (tab, enter, backspace) are left for the editor.
func chordFor(ev *tcell.EventKey) string {
	k := ev.Key()
	if k < tcell.KeyCtrlA || k > tcell.KeyCtrlZ {
		return ""
	}
	switch k {
	case tcell.KeyBackspace, tcell.KeyTab, tcell.KeyEnter:
		return ""
	}
	return "ctrl+" + string(rune('a'+int(k-tcell.KeyCtrlA)))
}
