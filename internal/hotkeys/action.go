package hotkeys

import "fmt"

// Action is one of the fixed editor operations a hotkey can trigger.
type Action int

const (
	AddCube Action = iota
	AddSphere
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	RotateCW
	RotateCCW
)

// Table is the key index to action mapping: key i performs Table[i].
// Reordering it rebinds every hotkey.
var Table = [...]Action{
	AddCube,
	AddSphere,
	MoveLeft,
	MoveRight,
	MoveUp,
	MoveDown,
	RotateCW,
	RotateCCW,
}

var actionNames = map[Action]string{
	AddCube:   "Add Cube",
	AddSphere: "Add Sphere",
	MoveLeft:  "Move Left",
	MoveRight: "Move Right",
	MoveUp:    "Move Up",
	MoveDown:  "Move Down",
	RotateCW:  "Rotate Clockwise",
	RotateCCW: "Rotate Counterclockwise",
}

// String returns the display name echoed when the action runs.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
