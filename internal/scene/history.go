package scene

import "slices"

// History owns the live objects and the undo/redo stacks of add/remove commands.
//
// Objects are kept in insertion order, which is also draw order; the last one is
// the target of move and rotate. A user Add or Remove clears the redo stack.
// Undo and Redo replay never do.
type History struct {
	objects []*Object
	undo    []Command
	redo    []Command
	depth   int
}

// NewHistory returns a history seeded with objs. Seeding records no commands.
func NewHistory(objs ...*Object) *History {
	return &History{objects: slices.Clone(objs)}
}

// SetDepth bounds the undo stack to n commands, dropping the oldest first. n <= 0 means unbounded.
func (h *History) SetDepth(n int) {
	h.depth = n
	h.trim()
}

// Add appends o and records Add(o).
func (h *History) Add(o *Object) {
	h.insert(o)
	h.push(Add(o))
	h.redo = nil
}

// Remove takes o out of the scene and records Remove(o). It reports false and
// changes nothing when o is not present.
func (h *History) Remove(o *Object) bool {
	if !h.detach(o) {
		return false
	}
	h.push(Remove(o))
	h.redo = nil
	return true
}

// Undo reverses the most recent command and moves it to the redo stack.
// A reversed removal re-appends the object at the end.
func (h *History) Undo() (Command, bool) {
	c, ok := pop(&h.undo)
	if !ok {
		return Command{}, false
	}
	switch c.Op {
	case OpAdd:
		h.detach(c.Object)
	case OpRemove:
		h.insert(c.Object)
	}
	h.redo = append(h.redo, c)
	return c, true
}

// Redo re-applies the most recently undone command and moves it back to the undo stack.
func (h *History) Redo() (Command, bool) {
	c, ok := pop(&h.redo)
	if !ok {
		return Command{}, false
	}
	switch c.Op {
	case OpAdd:
		h.insert(c.Object)
	case OpRemove:
		h.detach(c.Object)
	}
	h.push(c)
	return c, true
}

// Objects returns the live objects in order. The slice is shared; do not modify it.
func (h *History) Objects() []*Object { return h.objects }

// Len returns the number of live objects.
func (h *History) Len() int { return len(h.objects) }

// Last returns the most recently appended object, or nil when the scene is empty.
func (h *History) Last() *Object {
	if len(h.objects) == 0 {
		return nil
	}
	return h.objects[len(h.objects)-1]
}

// Contains reports whether o is live.
func (h *History) Contains(o *Object) bool {
	return slices.Contains(h.objects, o)
}

// UndoStack returns a copy of the undo stack, bottom first.
func (h *History) UndoStack() []Command { return slices.Clone(h.undo) }

// RedoStack returns a copy of the redo stack, bottom first.
func (h *History) RedoStack() []Command { return slices.Clone(h.redo) }

// Snapshot returns value copies of the live objects' state in order.
func (h *History) Snapshot() []State {
	states := make([]State, 0, len(h.objects))
	for _, o := range h.objects {
		states = append(states, o.state())
	}
	return states
}

func (h *History) insert(o *Object) {
	h.objects = append(h.objects, o)
}

func (h *History) detach(o *Object) bool {
	i := slices.Index(h.objects, o)
	if i < 0 {
		return false
	}
	h.objects = slices.Delete(h.objects, i, i+1)
	return true
}

func (h *History) push(c Command) {
	h.undo = append(h.undo, c)
	h.trim()
}

func (h *History) trim() {
	if h.depth > 0 && len(h.undo) > h.depth {
		h.undo = slices.Delete(h.undo, 0, len(h.undo)-h.depth)
	}
}

func pop(stack *[]Command) (Command, bool) {
	s := *stack
	if len(s) == 0 {
		return Command{}, false
	}
	c := s[len(s)-1]
	*stack = s[:len(s)-1]
	return c, true
}
