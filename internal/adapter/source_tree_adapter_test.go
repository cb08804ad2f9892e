package adapter

import (
	"context"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "zephyr.dev/pkg/playground/internal/model"
)

func TestLocalSourceTreeAdapter_LoadTree_Embedded(t *testing.T) {
	adapter := NewSourceTreeAdapter(memfs.New())

	tree, err := adapter.LoadTree(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"std", "core"}, tree.Roots())

	std, ok := tree.LookupRoot("std")
	require.True(t, ok)

	r, ok := std.Child("r")
	require.True(t, ok)

	wasi, ok := r.File("wasi")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(wasi.Code, "/// Wasi runtime"))

	core, _ := tree.LookupRoot("core")
	mem, ok := core.Child("mem")
	require.True(t, ok)
	require.Len(t, mem.Files(), 2)
	assert.Equal(t, "utils", mem.Files()[0].Name)
	assert.Equal(t, "malloc", mem.Files()[1].Name)
}

func TestLocalSourceTreeAdapter_LoadTree_FromFile(t *testing.T) {
	fs := memfs.New()
	snapshot := "version: 1\nmodules:\n  - path: lib/a\n    code: one\n  - path: lib/raw\n    code: i32.const 1\n    asm: true\n"
	require.NoError(t, util.WriteFile(fs, "/snap.yaml", []byte(snapshot), 0o644))

	tree, err := NewSourceTreeAdapter(fs).LoadTree(context.Background(), "/snap.yaml")
	require.NoError(t, err)

	lib, ok := tree.LookupRoot("lib")
	require.True(t, ok)

	raw, ok := lib.File("raw")
	require.True(t, ok)
	assert.True(t, raw.IsAsm)
	assert.Equal(t, "i32.const 1", raw.Code)
}

func TestLocalSourceTreeAdapter_LoadTree_Errors(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/v2.yaml", []byte("version: 2\nmodules: []\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/dup.yaml", []byte("version: 1\nmodules:\n  - path: a/b\n  - path: a/b\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/bad.yaml", []byte("version: [\n"), 0o644))

	adapter := NewSourceTreeAdapter(fs)

	tests := []struct {
		name string
		path m.Path
	}{
		{"missing file", "/missing.yaml"},
		{"unsupported version", "/v2.yaml"},
		{"duplicate module", "/dup.yaml"},
		{"invalid yaml", "/bad.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.LoadTree(context.Background(), tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLocalSourceTreeAdapter_LoadTree_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSourceTreeAdapter(memfs.New()).LoadTree(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalSourceTreeAdapter_Bundle(t *testing.T) {
	fs := memfs.New()
	files := map[string]string{
		"/lib/core/core.zph":        "module core",
		"/lib/core/mem/malloc.zph":  "module mem",
		"/lib/core/mem/raw.zasm":    "i32.load",
		"/lib/core/README.md":       "ignored",
		"/lib/std/r/wasi.zph":       "/// Wasi runtime",
		"/lib/std/r/wasi.test.data": "ignored",
	}

	for path, content := range files {
		require.NoError(t, util.WriteFile(fs, path, []byte(content), 0o644))
	}

	snapshot, err := NewSourceTreeAdapter(fs).Bundle(context.Background(), "/lib")
	require.NoError(t, err)

	assert.Equal(t, SnapshotVersion, snapshot.Version)
	assert.Equal(t, []SnapshotModule{
		{Path: "core/core", Code: "module core"},
		{Path: "core/mem/malloc", Code: "module mem"},
		{Path: "core/mem/raw", Code: "i32.load", Asm: true},
		{Path: "std/r/wasi", Code: "/// Wasi runtime"},
	}, snapshot.Modules)
}

func TestLocalSourceTreeAdapter_Bundle_DuplicateModule(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/lib/core/mem/malloc.zph", []byte("module mem"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/lib/core/mem/malloc.zasm", []byte("i32.load"), 0o644))

	adapter := NewSourceTreeAdapter(fs)
	ctx := context.Background()

	_, err := adapter.Bundle(ctx, "/lib")
	require.ErrorIs(t, err, ErrDuplicateModule)
	assert.Contains(t, err.Error(), `"core/mem/malloc"`)
	assert.Contains(t, err.Error(), "malloc.zph")
	assert.Contains(t, err.Error(), "malloc.zasm")

	// Every snapshot Bundle does produce must load back.
	require.NoError(t, fs.Remove("/lib/core/mem/malloc.zasm"))
	require.NoError(t, util.WriteFile(fs, "/lib/core/mem/raw.zasm", []byte("i32.load"), 0o644))

	snapshot, err := adapter.Bundle(ctx, "/lib")
	require.NoError(t, err)
	require.NoError(t, adapter.SaveSnapshot(ctx, "/out/snap.yaml", snapshot))

	_, err = adapter.LoadTree(ctx, "/out/snap.yaml")
	assert.NoError(t, err)
}

func TestLocalSourceTreeAdapter_Bundle_MissingDir(t *testing.T) {
	_, err := NewSourceTreeAdapter(memfs.New()).Bundle(context.Background(), "/nope")
	assert.Error(t, err)
}

func TestLocalSourceTreeAdapter_SaveSnapshotRoundTrip(t *testing.T) {
	fs := memfs.New()
	adapter := NewSourceTreeAdapter(fs)
	ctx := context.Background()

	snapshot := Snapshot{
		Version: SnapshotVersion,
		Modules: []SnapshotModule{
			{Path: "core/utils", Code: "fn a() {}\nfn b() {}\n"},
			{Path: "core/mem/raw", Code: "i32.load", Asm: true},
		},
	}

	require.NoError(t, adapter.SaveSnapshot(ctx, "/out/snap.yaml", snapshot))

	tree, err := adapter.LoadTree(ctx, "/out/snap.yaml")
	require.NoError(t, err)

	entries := tree.Modules("core")
	require.Len(t, entries, 3)
	assert.Equal(t, "utils", entries[0].Path)
	assert.Equal(t, "mem", entries[1].Path)
	assert.True(t, entries[2].IsAsm)

	core, _ := tree.LookupRoot("core")
	utils, _ := core.File("utils")
	assert.Equal(t, "fn a() {}\nfn b() {}\n", utils.Code)
}

func TestLocalSourceTreeAdapter_ReadFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/buffer.zph", []byte("fn main() {}"), 0o644))

	adapter := NewSourceTreeAdapter(fs)

	data, err := adapter.ReadFile(context.Background(), "/buffer.zph")
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}", string(data))

	_, err = adapter.ReadFile(context.Background(), "/missing.zph")
	assert.Error(t, err)
}
