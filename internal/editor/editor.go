package editor

import (
	"errors"
	"fmt"

	"scene-editor/internal/hotkeys"
	"scene-editor/internal/logger"
	"scene-editor/internal/scene"
)

// InputSource yields the debounced key events of one frame.
type InputSource interface {
	Poll() []hotkeys.Event
}

// Renderer draws one object with its current model matrix.
type Renderer interface {
	DrawObject(o *scene.Object)
}

// Editor is the single mutator of the scene. Each frame it drains the input source,
// applies every event in order, and then hands the live objects to a renderer.
// Errors are logged and never stop the frame loop.
type Editor struct {
	history *scene.History
	router  *hotkeys.Router
	log     *logger.Logger
}

// New returns an editor over h, routing action keys through r.
func New(h *scene.History, r *hotkeys.Router, log *logger.Logger) *Editor {
	return &Editor{history: h, router: r, log: log}
}

// History returns the scene history the editor mutates.
func (e *Editor) History() *scene.History { return e.history }

// Update polls src and handles its events. It reports true when a quit event was seen;
// events after the quit are dropped.
func (e *Editor) Update(src InputSource) (quit bool) {
	for _, ev := range src.Poll() {
		if e.Handle(ev) {
			return true
		}
	}
	return false
}

// Handle applies one event and reports whether it asks to quit.
func (e *Editor) Handle(ev hotkeys.Event) (quit bool) {
	switch ev.Kind {
	case hotkeys.EventAction:
		e.runKey(ev.Index)
	case hotkeys.EventUndo:
		if c, ok := e.history.Undo(); ok {
			e.log.Logf("Undo: %s", c)
		} else {
			e.log.Log("Nothing to undo")
		}
	case hotkeys.EventRedo:
		if c, ok := e.history.Redo(); ok {
			e.log.Logf("Redo: %s", c)
		} else {
			e.log.Log("Nothing to redo")
		}
	case hotkeys.EventRemove:
		e.removeLast()
	case hotkeys.EventQuit:
		return true
	default:
		e.log.Logf("Ignored %s", ev)
	}
	return false
}

func (e *Editor) runKey(key int) {
	a, err := e.router.Resolve(key)
	if errors.Is(err, hotkeys.ErrKeyNotMapped) {
		e.log.Logf("Key %d not mapped", key)
		return
	}
	if err != nil {
		e.log.Error(fmt.Sprintf("key %d", key), err)
		return
	}
	e.log.Logf("Executed: %s", a)
	o, err := e.router.Dispatch(a, e.history)
	if err != nil {
		e.log.Error(a.String(), err)
		return
	}
	p := o.Position()
	e.log.Logf("%s at %.2f, %.2f, %.2f", o.Name(), p.X, p.Y, p.Z)
}

func (e *Editor) removeLast() {
	last := e.history.Last()
	if last == nil {
		e.log.Error("remove", scene.ErrEmptyScene)
		return
	}
	e.history.Remove(last)
	e.log.Logf("Removed %s", last.Name())
}

// Render draws every live object in order.
func (e *Editor) Render(r Renderer) {
	for _, o := range e.history.Objects() {
		r.DrawObject(o)
	}
}

// Status is the summary shown in the overlay.
type Status struct {
	Objects int
	Undo    int
	Redo    int
	Last    string
}

// Status returns the current object count and stack depths.
func (e *Editor) Status() Status {
	s := Status{
		Objects: e.history.Len(),
		Undo:    len(e.history.UndoStack()),
		Redo:    len(e.history.RedoStack()),
	}
	if last := e.history.Last(); last != nil {
		s.Last = last.Name()
	}
	return s
}

func (s Status) String() string {
	last := s.Last
	if last == "" {
		last = "-"
	}
	return fmt.Sprintf("Objects: %d  Undo: %d  Redo: %d  Last: %s", s.Objects, s.Undo, s.Redo, last)
}
