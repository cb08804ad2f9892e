// Package adapter contains the infrastructure the playground domain relies on:
// the virtual tree snapshot, the toolchain and the execution sandbox.
package adapter

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "zephyr.dev/pkg/playground/internal/model"
)

// SnapshotVersion is the snapshot format written by Bundle.
const SnapshotVersion = 1

const (
	sourceExt  = ".zph"
	asmExt     = ".zasm"
	bundleJobs = 8
)

// ErrDuplicateModule is returned by Bundle when two files map to the same module path.
var ErrDuplicateModule = errors.New("duplicate module")

//go:embed stdlib.yaml
var embeddedSnapshot []byte

// SnapshotModule is one file of the virtual tree.
type SnapshotModule struct {
	Path string `yaml:"path"`
	Code string `yaml:"code"`
	Asm  bool   `yaml:"asm,omitempty"`
}

// Snapshot is the build-time image of the virtual tree. Module order is
// the tree's insertion order.
type Snapshot struct {
	Version int              `yaml:"version"`
	Modules []SnapshotModule `yaml:"modules"`
}

// SourceTreeAdapter loads and produces virtual tree snapshots, and reads the
// other host files (buffers, prebuilt binaries) the CLI needs.
type SourceTreeAdapter interface {
	// LoadTree builds the tree from the snapshot at path, or from the
	// embedded standard library when path is empty.
	LoadTree(ctx context.Context, path m.Path) (*m.Tree, error)

	// Bundle walks a library directory and snapshots its .zph/.zasm files.
	Bundle(ctx context.Context, dir m.Path) (Snapshot, error)

	// SaveSnapshot writes snapshot as YAML.
	SaveSnapshot(ctx context.Context, path m.Path, snapshot Snapshot) error

	// ReadFile loads a file.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)
}

// LocalSourceTreeAdapter implements SourceTreeAdapter on a billy filesystem.
type LocalSourceTreeAdapter struct {
	fs billy.Filesystem
}

// NewLocalSourceTreeAdapter returns an adapter over the host filesystem.
// Paths handed to it should be absolute.
func NewLocalSourceTreeAdapter() *LocalSourceTreeAdapter {
	return NewSourceTreeAdapter(osfs.New("/"))
}

// NewSourceTreeAdapter returns an adapter over fs.
func NewSourceTreeAdapter(fs billy.Filesystem) *LocalSourceTreeAdapter {
	return &LocalSourceTreeAdapter{fs: fs}
}

// LoadTree implements SourceTreeAdapter.
func (a *LocalSourceTreeAdapter) LoadTree(ctx context.Context, path m.Path) (*m.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := embeddedSnapshot

	if path != "" {
		var err error

		data, err = util.ReadFile(a.fs, string(path))
		if err != nil {
			slog.Error("Failed to read snapshot", "path", path, "error", err)
			return nil, fmt.Errorf("failed to read snapshot: %w", err)
		}
	}

	snapshot, err := ParseSnapshot(data)
	if err != nil {
		return nil, err
	}

	tree, err := BuildTree(snapshot)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded virtual tree", "snapshot", path, "modules", len(snapshot.Modules), "roots", tree.Roots())

	return tree, nil
}

// ParseSnapshot decodes a YAML snapshot.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if snapshot.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}

	return snapshot, nil
}

// BuildTree turns a snapshot into the immutable virtual tree.
func BuildTree(snapshot Snapshot) (*m.Tree, error) {
	builder := m.NewTreeBuilder()

	for _, module := range snapshot.Modules {
		if err := builder.Add(module.Path, m.SourceText{Code: module.Code, IsAsm: module.Asm}); err != nil {
			return nil, fmt.Errorf("invalid snapshot: %w", err)
		}
	}

	return builder.Build(), nil
}

// Bundle implements SourceTreeAdapter.
func (a *LocalSourceTreeAdapter) Bundle(ctx context.Context, dir m.Path) (Snapshot, error) {
	root := string(dir)

	var modules []SnapshotModule

	var files []string

	seen := make(map[string]string)

	err := util.Walk(a.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != sourceExt && ext != asmExt {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		modulePath, _, _ := strings.Cut(filepath.ToSlash(rel), ".")
		if prev, ok := seen[modulePath]; ok {
			return fmt.Errorf("%w %q: %s and %s", ErrDuplicateModule, modulePath, prev, path)
		}

		seen[modulePath] = path
		modules = append(modules, SnapshotModule{Path: modulePath, Asm: ext == asmExt})
		files = append(files, path)

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk library", "dir", dir, "error", err)
		return Snapshot{}, fmt.Errorf("failed to walk library: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(bundleJobs)

	for idx, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			code, err := util.ReadFile(a.fs, file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			modules[idx].Code = string(code)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to bundle library", "dir", dir, "error", err)
		return Snapshot{}, err
	}

	slog.Info("Bundled library", "dir", dir, "modules", len(modules))

	return Snapshot{Version: SnapshotVersion, Modules: modules}, nil
}

// SaveSnapshot implements SourceTreeAdapter.
func (a *LocalSourceTreeAdapter) SaveSnapshot(ctx context.Context, path m.Path, snapshot Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(&snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := util.WriteFile(a.fs, string(path), data, 0o644); err != nil {
		slog.Error("Failed to write snapshot", "path", path, "error", err)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// ReadFile implements SourceTreeAdapter.
func (a *LocalSourceTreeAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return util.ReadFile(a.fs, string(path))
}
