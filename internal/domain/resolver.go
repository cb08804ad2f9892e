package domain

import (
	"log/slog"
	"strings"

	m "zephyr.dev/pkg/playground/internal/model"
)

// Default location of the live buffer in the module namespace.
const (
	DefaultPlaygroundRoot = "playground"
	DefaultEntryName      = "main"
)

// ResolverConfig names the module that is served from the live buffer.
type ResolverConfig struct {
	PlaygroundRoot string
	EntryName      string
}

// Resolver maps (root, path) module references onto the virtual tree.
type Resolver struct {
	tree *m.Tree
	cfg  ResolverConfig
}

// NewResolver constructs a Resolver over tree. Empty config fields take the
// defaults.
func NewResolver(tree *m.Tree, cfg ResolverConfig) *Resolver {
	if cfg.PlaygroundRoot == "" {
		cfg.PlaygroundRoot = DefaultPlaygroundRoot
	}

	if cfg.EntryName == "" {
		cfg.EntryName = DefaultEntryName
	}

	return &Resolver{tree: tree, cfg: cfg}
}

// NewSession starts a resolution session for one compile of buffer. File IDs
// are unique within the session.
func (r *Resolver) NewSession(buffer string) *ResolveSession {
	return &ResolveSession{resolver: r, buffer: buffer}
}

// ResolveSession resolves the module references of a single compile. It is
// not safe for concurrent use.
type ResolveSession struct {
	resolver *Resolver
	buffer   string
	lastID   m.FileID
}

// Resolve returns the file or directory named by path under root. The
// configured entry point always resolves to the live buffer.
func (s *ResolveSession) Resolve(root, path string) (m.ResolvedModule, error) {
	cfg := s.resolver.cfg

	if root == cfg.PlaygroundRoot && path == cfg.EntryName {
		slog.Debug("Resolved live buffer", "root", root, "path", path)

		return m.ResolvedModule{
			Files: []m.ResolvedFile{s.file(cfg.EntryName, m.SourceText{Code: s.buffer})},
		}, nil
	}

	segments := strings.Split(path, "/")
	target := segments[len(segments)-1]
	dirs := segments[:len(segments)-1]

	if target == "" {
		return m.ResolvedModule{}, s.fail(root, path, "", ErrMalformedPath)
	}

	for _, dir := range dirs {
		if dir == "" {
			return m.ResolvedModule{}, s.fail(root, path, "", ErrMalformedPath)
		}
	}

	folder, ok := s.resolver.tree.LookupRoot(root)
	if !ok {
		return m.ResolvedModule{}, s.fail(root, path, "", ErrRootNotFound)
	}

	for _, dir := range dirs {
		folder, ok = folder.Child(dir)
		if !ok {
			return m.ResolvedModule{}, s.fail(root, path, dir, ErrPathSegmentNotFound)
		}
	}

	if src, ok := folder.File(target); ok {
		slog.Debug("Resolved standalone module", "root", root, "path", path)

		return m.ResolvedModule{
			Files:        []m.ResolvedFile{s.file(target, src)},
			IsStandalone: true,
		}, nil
	}

	dir, ok := folder.Child(target)
	if !ok {
		return m.ResolvedModule{}, s.fail(root, path, target, ErrTargetNotFound)
	}

	named := dir.Files()
	if len(named) == 0 {
		return m.ResolvedModule{}, s.fail(root, path, target, ErrEmptyModule)
	}

	files := make([]m.ResolvedFile, 0, len(named))
	for _, f := range named {
		files = append(files, s.file(f.Name, f.SourceText))
	}

	slog.Debug("Resolved aggregate module", "root", root, "path", path, "files", len(files))

	return m.ResolvedModule{Files: files}, nil
}

func (s *ResolveSession) file(name string, src m.SourceText) m.ResolvedFile {
	s.lastID++

	return m.ResolvedFile{
		Code:     src.Code,
		FileName: name,
		FileID:   s.lastID,
		IsAsm:    src.IsAsm,
	}
}

func (s *ResolveSession) fail(root, path, segment string, err error) error {
	slog.Debug("Module resolution failed", "root", root, "path", path, "segment", segment, "error", err)

	return &ResolutionError{Root: root, Path: path, Segment: segment, Err: err}
}
