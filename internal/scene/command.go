package scene

// Op is the kind of mutation a Command records.
type Op int

const (
	OpAdd Op = iota
	OpRemove
)

func (op Op) String() string {
	if op == OpRemove {
		return "remove"
	}
	return "add"
}

// Command records that an object was added to or removed from the scene.
// It holds the object itself, not a copy.
type Command struct {
	Op     Op
	Object *Object
}

// Add returns the command recording that o was added.
func Add(o *Object) Command { return Command{Op: OpAdd, Object: o} }

// Remove returns the command recording that o was removed.
func Remove(o *Object) Command { return Command{Op: OpRemove, Object: o} }

func (c Command) String() string {
	return c.Op.String() + " " + c.Object.Name()
}
