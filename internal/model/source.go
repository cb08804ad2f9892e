// Package model defines the data structures shared by the playground host.
package model

// Path represents a file system path.
type Path string

// FileID identifies a resolved file within one compile session.
type FileID uint32

// SourceText is the literal text of one module file.
type SourceText struct {
	Code  string
	IsAsm bool // low-level instruction blocks rather than surface syntax
}

// NamedSource pairs a file name with its text, in declared order.
type NamedSource struct {
	Name string
	SourceText
}

// ResolvedFile is one file handed to the compiler.
type ResolvedFile struct {
	Code     string
	FileName string
	FileID   FileID
	IsAsm    bool
}

// ResolvedModule is the result of resolving a (root, path) pair.
//
// IsStandalone is true when the path named exactly one file and false when it
// named a directory whose files were aggregated (or the live buffer).
type ResolvedModule struct {
	Files        []ResolvedFile
	IsStandalone bool
}

// ModuleEntry describes one module reachable in the virtual tree.
type ModuleEntry struct {
	Root  string
	Path  string
	Files int
	IsAsm bool
	// Aggregate marks entries that name a directory rather than a file.
	Aggregate bool
}

// Binary is a compiled WebAssembly module.
type Binary []byte
