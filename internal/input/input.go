package input

import (
	"fmt"

	"scene-editor/internal/hotkeys"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var digitKeys = [10]int32{
	rl.KeyZero, rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour,
	rl.KeyFive, rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine,
}

var keypadKeys = [10]int32{
	rl.KeyKp0, rl.KeyKp1, rl.KeyKp2, rl.KeyKp3, rl.KeyKp4,
	rl.KeyKp5, rl.KeyKp6, rl.KeyKp7, rl.KeyKp8, rl.KeyKp9,
}

// DefaultBindings maps digits 0-9 (top row and keypad) to router key indices and binds
// the reserved keys: Z undo, Y redo, Delete removes the last object, Escape quits.
// Digits 8 and 9 reach the router and are reported as not mapped.
func DefaultBindings() []hotkeys.Binding {
	var b []hotkeys.Binding
	for i, code := range digitKeys {
		b = append(b, hotkeys.Binding{Code: code, Label: fmt.Sprint(i), Event: hotkeys.Key(i)})
	}
	for i, code := range keypadKeys {
		b = append(b, hotkeys.Binding{Code: code, Label: fmt.Sprintf("Keypad %d", i), Event: hotkeys.Key(i)})
	}
	return append(b,
		hotkeys.Binding{Code: rl.KeyZ, Label: "Z", Event: hotkeys.Event{Kind: hotkeys.EventUndo}},
		hotkeys.Binding{Code: rl.KeyY, Label: "Y", Event: hotkeys.Event{Kind: hotkeys.EventRedo}},
		hotkeys.Binding{Code: rl.KeyDelete, Label: "Delete", Event: hotkeys.Event{Kind: hotkeys.EventRemove}},
		hotkeys.Binding{Code: rl.KeyEscape, Label: "Escape", Event: hotkeys.Event{Kind: hotkeys.EventQuit}},
	)
}

// Keyboard polls raylib's key queue once per frame. Each press is reported once, on
// the frame it happens, in the order it was typed.
type Keyboard struct {
	keymap *hotkeys.Keymap
}

// NewKeyboard returns a keyboard source using km.
func NewKeyboard(km *hotkeys.Keymap) *Keyboard {
	return &Keyboard{keymap: km}
}

// Poll drains the pressed-key queue. Unbound keys are skipped.
func (k *Keyboard) Poll() []hotkeys.Event {
	var events []hotkeys.Event
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if ev, ok := k.keymap.Lookup(code); ok {
			events = append(events, ev)
		}
	}
	return events
}
