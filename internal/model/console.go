package model

// LineKind tags a console line.
type LineKind int

const (
	// LineInput echoes what was invoked.
	LineInput LineKind = 1
	// LineOutput carries program output.
	LineOutput LineKind = 2
	// LineError carries a failure.
	LineError LineKind = 3
)

// String returns the lower case name of the kind.
func (k LineKind) String() string {
	switch k {
	case LineInput:
		return "input"
	case LineOutput:
		return "output"
	case LineError:
		return "error"
	}

	return "unknown"
}

// LineKindFromInt maps a raw kind coming from a guest; anything unknown is output.
func LineKindFromInt(kind int) LineKind {
	switch LineKind(kind) {
	case LineInput:
		return LineInput
	case LineError:
		return LineError
	case LineOutput:
		return LineOutput
	}

	return LineOutput
}

// ConsoleLine is an immutable transcript entry.
type ConsoleLine struct {
	ID      uint64
	Content string
	Kind    LineKind
}
