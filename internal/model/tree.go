package model

import (
	"fmt"
	"strings"
)

// Folder is a node of the virtual source tree. Subfolders and files keep the
// order in which they were added.
type Folder struct {
	name        string
	folders     map[string]*Folder
	folderOrder []string
	files       map[string]SourceText
	fileOrder   []string
}

func newFolder(name string) *Folder {
	return &Folder{
		name:    name,
		folders: make(map[string]*Folder),
		files:   make(map[string]SourceText),
	}
}

// Name returns the folder name (the root name for a root folder).
func (f *Folder) Name() string {
	return f.name
}

// Child returns the subfolder called name.
func (f *Folder) Child(name string) (*Folder, bool) {
	child, ok := f.folders[name]
	return child, ok
}

// File returns the text of the file called name.
func (f *Folder) File(name string) (SourceText, bool) {
	src, ok := f.files[name]
	return src, ok
}

// Files returns the files directly inside f, in declared order.
func (f *Folder) Files() []NamedSource {
	files := make([]NamedSource, 0, len(f.fileOrder))
	for _, name := range f.fileOrder {
		files = append(files, NamedSource{Name: name, SourceText: f.files[name]})
	}

	return files
}

// Folders returns the names of the subfolders of f, in declared order.
func (f *Folder) Folders() []string {
	return append([]string(nil), f.folderOrder...)
}

// Tree is the immutable virtual source tree, keyed by root name.
type Tree struct {
	roots     map[string]*Folder
	rootOrder []string
}

// LookupRoot returns the root folder called name.
func (t *Tree) LookupRoot(name string) (*Folder, bool) {
	if t == nil {
		return nil, false
	}

	root, ok := t.roots[name]

	return root, ok
}

// Roots returns the root names in declared order.
func (t *Tree) Roots() []string {
	if t == nil {
		return nil
	}

	return append([]string(nil), t.rootOrder...)
}

// Modules flattens the tree under root (or every root when root is empty)
// into the list of resolvable module paths.
func (t *Tree) Modules(root string) []ModuleEntry {
	var entries []ModuleEntry

	for _, name := range t.Roots() {
		if root != "" && name != root {
			continue
		}

		entries = appendModules(entries, name, "", t.roots[name])
	}

	return entries
}

func appendModules(entries []ModuleEntry, root, prefix string, folder *Folder) []ModuleEntry {
	for _, file := range folder.Files() {
		entries = append(entries, ModuleEntry{
			Root:  root,
			Path:  prefix + file.Name,
			Files: 1,
			IsAsm: file.IsAsm,
		})
	}

	for _, name := range folder.folderOrder {
		child := folder.folders[name]
		if len(child.fileOrder) > 0 {
			entries = append(entries, ModuleEntry{
				Root:      root,
				Path:      prefix + name,
				Files:     len(child.fileOrder),
				Aggregate: true,
			})
		}

		entries = appendModules(entries, root, prefix+name+"/", child)
	}

	return entries
}

// TreeBuilder assembles a Tree. It is the only way to populate one.
type TreeBuilder struct {
	tree *Tree
}

// NewTreeBuilder returns an empty builder.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{tree: &Tree{roots: make(map[string]*Folder)}}
}

// Add inserts a file at modulePath ("root/dir/.../name").
func (b *TreeBuilder) Add(modulePath string, src SourceText) error {
	segments := strings.Split(modulePath, "/")
	if len(segments) < 2 {
		return fmt.Errorf("module path %q has no root", modulePath)
	}

	for _, segment := range segments {
		if segment == "" {
			return fmt.Errorf("module path %q has an empty segment", modulePath)
		}
	}

	rootName := segments[0]

	folder, ok := b.tree.roots[rootName]
	if !ok {
		folder = newFolder(rootName)
		b.tree.roots[rootName] = folder
		b.tree.rootOrder = append(b.tree.rootOrder, rootName)
	}

	for _, segment := range segments[1 : len(segments)-1] {
		child, ok := folder.folders[segment]
		if !ok {
			child = newFolder(segment)
			folder.folders[segment] = child
			folder.folderOrder = append(folder.folderOrder, segment)
		}

		folder = child
	}

	name := segments[len(segments)-1]
	if _, exists := folder.files[name]; exists {
		return fmt.Errorf("module %q declared twice", modulePath)
	}

	folder.files[name] = src
	folder.fileOrder = append(folder.fileOrder, name)

	return nil
}

// Build returns the finished tree. The builder must not be used afterwards.
func (b *TreeBuilder) Build() *Tree {
	tree := b.tree
	b.tree = nil

	return tree
}
