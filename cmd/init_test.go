package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func executeInit(t *testing.T) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	return cmd.Execute()
}

func TestInitCmd_WritesPlaygroundKeys(t *testing.T) {
	tempDir := chdirTemp(t)

	require.NoError(t, executeInit(t))

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)

	var written struct {
		Version    int `yaml:"version"`
		Playground struct {
			Root  string `yaml:"root"`
			Entry string `yaml:"entry"`
		} `yaml:"playground"`
		Compiler map[string]any `yaml:"compiler"`
		Tree     map[string]any `yaml:"tree"`
		Log      map[string]any `yaml:"log"`
	}
	require.NoError(t, yaml.Unmarshal(contents, &written))

	assert.Equal(t, currentConfigVersion, written.Version)
	assert.Equal(t, "playground", written.Playground.Root)
	assert.Equal(t, "main", written.Playground.Entry)
	assert.Contains(t, written.Compiler, "toolchain")
	assert.Contains(t, written.Tree, "snapshot")
	assert.Contains(t, written.Log, "filename")
}

func TestInitCmd_KeepsExistingFile(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("compiler:\n  toolchain: zephyrc.wasm\n"), 0o644))

	err := executeInit(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "compiler:\n  toolchain: zephyrc.wasm\n", string(contents))
}
