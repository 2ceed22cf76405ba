package hotkeys

import (
	"errors"
	"fmt"
	"slices"

	"scene-editor/internal/scene"
)

var (
	// ErrKeyNotMapped is returned by Resolve for a key outside the action table.
	ErrKeyNotMapped = errors.New("key not mapped")
	// ErrUnknownAction is returned by Dispatch for a value outside the Action set.
	ErrUnknownAction = errors.New("unknown action")
)

// Options are the step sizes and spawn rules the router applies.
type Options struct {
	MoveStep   float32
	RotateStep float32 // degrees
	// Spacing is the X offset of a new object from the current last object.
	Spacing float32
	// Origin is where a new object goes when the scene is empty.
	Origin scene.Vec3
}

// DefaultOptions returns the stock step sizes: 0.5 units, 5 degrees, spacing 2, origin (0,0,-5).
func DefaultOptions() Options {
	return Options{
		MoveStep:   scene.DefaultMoveStep,
		RotateStep: scene.DefaultRotateStep,
		Spacing:    2,
		Origin:     scene.V3(0, 0, -5),
	}
}

// Router turns key indices into actions and applies them to a scene history.
// Moves and rotations always target the last object; there is no selection.
type Router struct {
	actions []Action
	opts    Options
}

// NewRouter returns a router over a copy of Table; later edits to Table do not affect it.
func NewRouter(opts Options) *Router {
	return &Router{actions: slices.Clone(Table[:]), opts: opts}
}

// Len is the number of mapped keys.
func (r *Router) Len() int { return len(r.actions) }

// Resolve returns the action bound to key, or ErrKeyNotMapped when key is out of range.
func (r *Router) Resolve(key int) (Action, error) {
	if key < 0 || key >= len(r.actions) {
		return 0, fmt.Errorf("key %d: %w", key, ErrKeyNotMapped)
	}
	return r.actions[key], nil
}

// Dispatch applies a to h and returns the object it created or changed.
// Add actions go through h.Add; move and rotate act on h.Last and fail with
// scene.ErrEmptyScene when there is nothing to act on.
func (r *Router) Dispatch(a Action, h *scene.History) (*scene.Object, error) {
	switch a {
	case AddCube:
		return r.spawn(scene.Cube, h), nil
	case AddSphere:
		return r.spawn(scene.Sphere, h), nil
	case MoveLeft:
		return scene.MoveLast(h, scene.Left, r.opts.MoveStep)
	case MoveRight:
		return scene.MoveLast(h, scene.Right, r.opts.MoveStep)
	case MoveUp:
		return scene.MoveLast(h, scene.Up, r.opts.MoveStep)
	case MoveDown:
		return scene.MoveLast(h, scene.Down, r.opts.MoveStep)
	case RotateCW:
		return scene.RotateLast(h, scene.Clockwise, r.opts.RotateStep)
	case RotateCCW:
		return scene.RotateLast(h, scene.CounterClockwise, r.opts.RotateStep)
	}
	return nil, fmt.Errorf("%v: %w", a, ErrUnknownAction)
}

// Handle resolves key and dispatches the result.
func (r *Router) Handle(key int, h *scene.History) (Action, *scene.Object, error) {
	a, err := r.Resolve(key)
	if err != nil {
		return 0, nil, err
	}
	o, err := r.Dispatch(a, h)
	return a, o, err
}

// SpawnPosition is where the next added object goes: Spacing along X past the
// last object, or Origin when the scene is empty.
func (r *Router) SpawnPosition(h *scene.History) scene.Vec3 {
	last := h.Last()
	if last == nil {
		return r.opts.Origin
	}
	return last.Position().Add(scene.V3(r.opts.Spacing, 0, 0))
}

func (r *Router) spawn(kind scene.Kind, h *scene.History) *scene.Object {
	o := scene.NewObject(kind, scene.Placement{Position: r.SpawnPosition(h)})
	h.Add(o)
	return o
}

// Describe names what ev does under this router, for key legends.
func (r *Router) Describe(ev Event) string {
	switch ev.Kind {
	case EventAction:
		a, err := r.Resolve(ev.Index)
		if err != nil {
			return "(not mapped)"
		}
		return a.String()
	case EventUndo:
		return "Undo"
	case EventRedo:
		return "Redo"
	case EventRemove:
		return "Remove Last"
	case EventQuit:
		return "Quit"
	}
	return ev.String()
}
