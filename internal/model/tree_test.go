package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTree(t *testing.T) *Tree {
	t.Helper()

	b := NewTreeBuilder()
	require.NoError(t, b.Add("core/core", SourceText{Code: "module core"}))
	require.NoError(t, b.Add("core/mem/utils", SourceText{Code: "module mem // utils"}))
	require.NoError(t, b.Add("core/mem/malloc", SourceText{Code: "module mem // malloc"}))
	require.NoError(t, b.Add("core/mem/raw", SourceText{Code: "i32.load", IsAsm: true}))
	require.NoError(t, b.Add("std/r/wasi", SourceText{Code: "/// Wasi runtime"}))

	return b.Build()
}

func TestTree_LookupRoot(t *testing.T) {
	tree := buildTestTree(t)

	core, ok := tree.LookupRoot("core")
	require.True(t, ok)
	assert.Equal(t, "core", core.Name())

	_, ok = tree.LookupRoot("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{"core", "std"}, tree.Roots())
}

func TestFolder_KeepsInsertionOrder(t *testing.T) {
	tree := buildTestTree(t)

	core, _ := tree.LookupRoot("core")
	mem, ok := core.Child("mem")
	require.True(t, ok)

	files := mem.Files()
	require.Len(t, files, 3)
	assert.Equal(t, "utils", files[0].Name)
	assert.Equal(t, "malloc", files[1].Name)
	assert.Equal(t, "raw", files[2].Name)
	assert.True(t, files[2].IsAsm)

	src, ok := mem.File("malloc")
	require.True(t, ok)
	assert.Equal(t, "module mem // malloc", src.Code)

	_, ok = mem.File("free")
	assert.False(t, ok)
	_, ok = mem.Child("utils")
	assert.False(t, ok)
}

func TestTreeBuilder_RejectsBadPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"no root", "core"},
		{"empty segment", "core//mem"},
		{"trailing slash", "core/mem/"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTreeBuilder().Add(tt.path, SourceText{})
			assert.Error(t, err)
		})
	}
}

func TestTreeBuilder_RejectsDuplicates(t *testing.T) {
	b := NewTreeBuilder()
	require.NoError(t, b.Add("core/utils", SourceText{Code: "a"}))
	assert.Error(t, b.Add("core/utils", SourceText{Code: "b"}))
}

func TestTree_Modules(t *testing.T) {
	tree := buildTestTree(t)

	entries := tree.Modules("core")
	require.Len(t, entries, 5)
	assert.Equal(t, ModuleEntry{Root: "core", Path: "core", Files: 1}, entries[0])
	assert.Equal(t, ModuleEntry{Root: "core", Path: "mem", Files: 3, Aggregate: true}, entries[1])
	assert.Equal(t, "mem/utils", entries[2].Path)
	assert.Equal(t, "mem/raw", entries[4].Path)
	assert.True(t, entries[4].IsAsm)

	all := tree.Modules("")
	assert.Len(t, all, 7)
	assert.Empty(t, tree.Modules("nope"))
}

func TestLineKindFromInt(t *testing.T) {
	assert.Equal(t, LineInput, LineKindFromInt(1))
	assert.Equal(t, LineOutput, LineKindFromInt(2))
	assert.Equal(t, LineError, LineKindFromInt(3))
	assert.Equal(t, LineOutput, LineKindFromInt(42))
	assert.Equal(t, "error", LineError.String())
}
