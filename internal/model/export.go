package model

// ValueKind is the type of a WebAssembly value crossing the sandbox boundary.
type ValueKind string

// Value kinds understood by the harness.
const (
	ValueI32     ValueKind = "i32"
	ValueI64     ValueKind = "i64"
	ValueF32     ValueKind = "f32"
	ValueF64     ValueKind = "f64"
	ValueUnknown ValueKind = "unknown"
)

// Export is a callable binding of an instantiated binary.
type Export struct {
	Name    string
	Arity   int
	Results []ValueKind
}

// State is the lifecycle state of the playground.
type State int

// Playground states.
const (
	StateIdle State = iota
	StateCompiling
	StateReady
	StateFailed
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCompiling:
		return "compiling"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateRunning:
		return "running"
	}

	return "unknown"
}
