package hotkeys

import "fmt"

// EventKind separates router keys from the reserved keys that go straight to the history.
type EventKind int

const (
	EventAction EventKind = iota
	EventUndo
	EventRedo
	EventRemove
	EventQuit
)

// Event is one debounced key press after keymap lookup.
// Index is the router key index and is only meaningful for EventAction.
type Event struct {
	Kind  EventKind
	Index int
}

// Key returns an action event for router index i.
func Key(i int) Event { return Event{Kind: EventAction, Index: i} }

func (e Event) String() string {
	switch e.Kind {
	case EventAction:
		return fmt.Sprintf("key %d", e.Index)
	case EventUndo:
		return "undo"
	case EventRedo:
		return "redo"
	case EventRemove:
		return "remove"
	case EventQuit:
		return "quit"
	}
	return fmt.Sprintf("event(%d)", int(e.Kind))
}

// Binding ties a physical key code to an event.
type Binding struct {
	Code  int32
	Label string
	Event Event
}

// Keymap looks up events by physical key code.
type Keymap struct {
	bindings []Binding
	byCode   map[int32]Event
}

// NewKeymap builds a keymap. A later binding for the same code wins.
func NewKeymap(bindings ...Binding) *Keymap {
	km := &Keymap{byCode: make(map[int32]Event, len(bindings))}
	for _, b := range bindings {
		km.bindings = append(km.bindings, b)
		km.byCode[b.Code] = b.Event
	}
	return km
}

// Lookup returns the event bound to code.
func (km *Keymap) Lookup(code int32) (Event, bool) {
	e, ok := km.byCode[code]
	return e, ok
}

// Bindings returns the bindings in declaration order.
func (km *Keymap) Bindings() []Binding {
	out := make([]Binding, len(km.bindings))
	copy(out, km.bindings)
	return out
}

// Codes returns every bound key code in declaration order, without duplicates.
func (km *Keymap) Codes() []int32 {
	seen := make(map[int32]bool, len(km.bindings))
	codes := make([]int32, 0, len(km.bindings))
	for _, b := range km.bindings {
		if !seen[b.Code] {
			seen[b.Code] = true
			codes = append(codes, b.Code)
		}
	}
	return codes
}

// Legend renders one "label: description" entry per bound event, skipping later
// bindings of the same event and action keys r does not map.
func Legend(km *Keymap, r *Router) []string {
	var out []string
	seen := make(map[Event]bool)
	for _, b := range km.bindings {
		if seen[b.Event] {
			continue
		}
		seen[b.Event] = true
		if b.Event.Kind == EventAction {
			if _, err := r.Resolve(b.Event.Index); err != nil {
				continue
			}
		}
		out = append(out, b.Label+": "+r.Describe(b.Event))
	}
	return out
}
