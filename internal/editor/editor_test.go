package editor

import (
	"strings"
	"testing"

	"scene-editor/internal/hotkeys"
	"scene-editor/internal/logger"
	"scene-editor/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	frames [][]hotkeys.Event
}

func (s *scriptedInput) Poll() []hotkeys.Event {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

type recorder struct {
	drawn []*scene.Object
}

func (r *recorder) DrawObject(o *scene.Object) { r.drawn = append(r.drawn, o) }

func newEditor(objs ...*scene.Object) (*Editor, *logger.Logger) {
	log := logger.NewNop()
	return New(scene.NewHistory(objs...), hotkeys.NewRouter(hotkeys.DefaultOptions()), log), log
}

func lastLine(t *testing.T, log *logger.Logger) string {
	t.Helper()
	tail := log.Tail(1)
	require.Len(t, tail, 1)
	return tail[0]
}

func joined(log *logger.Logger) string {
	return strings.Join(log.Lines(), "\n")
}

var (
	undo   = hotkeys.Event{Kind: hotkeys.EventUndo}
	redo   = hotkeys.Event{Kind: hotkeys.EventRedo}
	remove = hotkeys.Event{Kind: hotkeys.EventRemove}
	quit   = hotkeys.Event{Kind: hotkeys.EventQuit}
)

func TestAddMoveUndoScenario(t *testing.T) {
	a := scene.NewObject(scene.Cube, scene.Placement{})
	e, log := newEditor(a)

	e.Handle(hotkeys.Key(0))
	h := e.History()
	require.Equal(t, 2, h.Len())
	b := h.Last()
	assert.Equal(t, scene.V3(2, 0, 0), b.Position())
	assert.Contains(t, joined(log), "Executed: Add Cube")

	e.Handle(hotkeys.Key(4))
	assert.Equal(t, float32(0.5), b.Position().Y)
	assert.Contains(t, joined(log), "Executed: Move Up")

	e.Handle(undo)
	assert.Equal(t, []*scene.Object{a}, h.Objects())
	assert.Equal(t, []scene.Command{scene.Add(b)}, h.RedoStack())
	assert.Contains(t, lastLine(t, log), "Undo: add "+b.Name())

	e.Handle(redo)
	assert.Equal(t, []*scene.Object{a, b}, h.Objects())
	assert.Equal(t, float32(0.5), b.Position().Y)
}

func TestUnmappedKeyIsReported(t *testing.T) {
	a := scene.NewObject(scene.Cube, scene.Placement{})
	e, log := newEditor(a)

	assert.False(t, e.Handle(hotkeys.Key(8)))
	assert.Contains(t, lastLine(t, log), "Key 8 not mapped")
	assert.Equal(t, 1, e.History().Len())
	assert.Equal(t, scene.V3(0, 0, 0), a.Position())
}

func TestTransformOnEmptySceneIsReported(t *testing.T) {
	e, log := newEditor()
	assert.False(t, e.Handle(hotkeys.Key(2)))
	assert.Contains(t, joined(log), "Executed: Move Left")
	assert.Contains(t, lastLine(t, log), "scene is empty")
	assert.Zero(t, e.History().Len())
}

func TestRemoveLast(t *testing.T) {
	a := scene.NewObject(scene.Cube, scene.Placement{})
	b := scene.NewObject(scene.Sphere, scene.Placement{})
	e, log := newEditor(a, b)

	e.Handle(remove)
	assert.Equal(t, []*scene.Object{a}, e.History().Objects())
	assert.Contains(t, lastLine(t, log), "Removed "+b.Name())

	e.Handle(undo)
	assert.Equal(t, []*scene.Object{a, b}, e.History().Objects())

	e.Handle(remove)
	e.Handle(remove)
	e.Handle(remove)
	assert.Zero(t, e.History().Len())
	assert.Contains(t, lastLine(t, log), "remove: scene is empty")
}

func TestNothingToUndoOrRedo(t *testing.T) {
	e, log := newEditor(scene.NewObject(scene.Cube, scene.Placement{}))
	e.Handle(undo)
	assert.Contains(t, lastLine(t, log), "Nothing to undo")
	e.Handle(redo)
	assert.Contains(t, lastLine(t, log), "Nothing to redo")
	assert.Equal(t, 1, e.History().Len())
}

func TestUpdateStopsAtQuit(t *testing.T) {
	e, _ := newEditor(scene.NewObject(scene.Cube, scene.Placement{}))
	src := &scriptedInput{frames: [][]hotkeys.Event{
		{hotkeys.Key(0), hotkeys.Key(1)},
		{hotkeys.Key(6), quit, hotkeys.Key(0)},
	}}

	assert.False(t, e.Update(src))
	assert.Equal(t, 3, e.History().Len())
	assert.True(t, e.Update(src))
	assert.Equal(t, 3, e.History().Len())
	assert.Equal(t, float32(5), e.History().Last().Rotation().Y)
	assert.False(t, e.Update(src))
}

func TestRenderInOrder(t *testing.T) {
	a := scene.NewObject(scene.Cube, scene.Placement{})
	b := scene.NewObject(scene.Sphere, scene.Placement{})
	e, _ := newEditor(a, b)
	e.Handle(hotkeys.Key(0))
	c := e.History().Last()

	var r recorder
	e.Render(&r)
	assert.Equal(t, []*scene.Object{a, b, c}, r.drawn)

	e.Handle(undo)
	r = recorder{}
	e.Render(&r)
	assert.Equal(t, []*scene.Object{a, b}, r.drawn)
}

func TestStatus(t *testing.T) {
	e, _ := newEditor()
	assert.Equal(t, "Objects: 0  Undo: 0  Redo: 0  Last: -", e.Status().String())

	e.Handle(hotkeys.Key(1))
	e.Handle(hotkeys.Key(0))
	e.Handle(undo)
	s := e.Status()
	assert.Equal(t, 1, s.Objects)
	assert.Equal(t, 1, s.Undo)
	assert.Equal(t, 1, s.Redo)
	assert.True(t, strings.HasPrefix(s.Last, "sphere#"))
}
