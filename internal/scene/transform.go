package scene

import (
	"errors"
	"fmt"
)

// Default step sizes for Move and Rotate.
const (
	DefaultMoveStep   float32 = 0.5
	DefaultRotateStep float32 = 5 // degrees
)

// ErrEmptyScene is returned when a move or rotate has no object to act on.
var ErrEmptyScene = errors.New("scene is empty")

// Direction is a screen-plane move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Spin is a rotation sense about the Y axis.
type Spin int

const (
	Clockwise Spin = iota
	CounterClockwise
)

func (s Spin) String() string {
	if s == CounterClockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

// Move shifts o by step along one axis: Left/Right on X, Up/Down on Y.
func Move(o *Object, d Direction, step float32) {
	switch d {
	case Left:
		o.position.X -= step
	case Right:
		o.position.X += step
	case Up:
		o.position.Y += step
	case Down:
		o.position.Y -= step
	}
	o.updateModel()
}

// Rotate turns o about Y by step degrees; Clockwise increases the angle.
func Rotate(o *Object, s Spin, step float32) {
	switch s {
	case Clockwise:
		o.rotation.Y += step
	case CounterClockwise:
		o.rotation.Y -= step
	}
	o.updateModel()
}

// MoveLast applies Move to the last object of h.
func MoveLast(h *History, d Direction, step float32) (*Object, error) {
	o := h.Last()
	if o == nil {
		return nil, fmt.Errorf("move %s: %w", d, ErrEmptyScene)
	}
	Move(o, d, step)
	return o, nil
}

// RotateLast applies Rotate to the last object of h.
func RotateLast(h *History, s Spin, step float32) (*Object, error) {
	o := h.Last()
	if o == nil {
		return nil, fmt.Errorf("rotate %s: %w", s, ErrEmptyScene)
	}
	Rotate(o, s, step)
	return o, nil
}
