package adapter

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"

	m "zephyr.dev/pkg/playground/internal/model"
)

func instantiate(t *testing.T, mod wasmModule, stdout io.Writer) Instance {
	t.Helper()

	ctx := context.Background()

	inst, err := NewWazeroSandbox().Instantiate(ctx, mod.encode(), stdout)
	require.NoError(t, err)

	t.Cleanup(func() { _ = inst.Close(ctx) })

	return inst
}

func TestWazeroSandbox_SingleExport(t *testing.T) {
	inst := instantiate(t, wasmModule{
		funcs: []wasmFunc{{export: "hello", results: []byte{i32}, body: i32Const(42)}},
	}, nil)

	assert.Equal(t, []m.Export{{Name: "hello", Arity: 0, Results: []m.ValueKind{m.ValueI32}}}, inst.ListCallableExports())

	out, err := inst.Invoke(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestWazeroSandbox_ExportsSortedAndZeroArgs(t *testing.T) {
	inst := instantiate(t, wasmModule{
		funcs: []wasmFunc{
			{export: "b", params: []byte{i32, i64}, results: []byte{i64}, body: i64Const(-5)},
			{export: "a"},
			{export: "c", results: []byte{f64}, body: f64Const(1.5)},
		},
	}, nil)

	exports := inst.ListCallableExports()
	require.Len(t, exports, 3)
	assert.Equal(t, "a", exports[0].Name)
	assert.Equal(t, "b", exports[1].Name)
	assert.Equal(t, 2, exports[1].Arity)
	assert.Equal(t, []m.ValueKind{m.ValueI64}, exports[1].Results)
	assert.Equal(t, "c", exports[2].Name)

	ctx := context.Background()

	out, err := inst.Invoke(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "-5", out)

	out, err = inst.Invoke(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, NoValue, out)

	out, err = inst.Invoke(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "1.5", out)

	_, err = inst.Invoke(ctx, "missing")
	assert.Error(t, err)
}

func TestWazeroSandbox_MemoryIsNotCallable(t *testing.T) {
	inst := instantiate(t, wasmModule{
		memory:       true,
		exportMemory: true,
		funcs:        []wasmFunc{{export: "run", results: []byte{i32}, body: i32Const(7)}},
	}, nil)

	exports := inst.ListCallableExports()
	require.Len(t, exports, 1)
	assert.Equal(t, "run", exports[0].Name)
}

func TestWazeroSandbox_Trap(t *testing.T) {
	inst := instantiate(t, wasmModule{
		funcs: []wasmFunc{{export: "boom", body: []byte{opUnreachable}}},
	}, nil)

	_, err := inst.Invoke(context.Background(), "boom")
	assert.Error(t, err)
}

func TestWazeroSandbox_MalformedBinary(t *testing.T) {
	_, err := NewWazeroSandbox().Instantiate(context.Background(), m.Binary("not wasm"), nil)
	assert.Error(t, err)
}

func TestWazeroSandbox_UnknownImport(t *testing.T) {
	mod := wasmModule{
		imports: []wasmImport{{module: "env", name: "missing"}},
		funcs:   []wasmFunc{{export: "run"}},
	}

	_, err := NewWazeroSandbox().Instantiate(context.Background(), mod.encode(), nil)
	assert.Error(t, err)
}

func TestWazeroSandbox_LegacyFdWrite(t *testing.T) {
	// iovec at 0 pointing at "hi\n" stored at 16; nwritten lands at 8.
	iovec := []byte{16, 0, 0, 0, 3, 0, 0, 0}

	var stdout bytes.Buffer

	inst := instantiate(t, wasmModule{
		imports: []wasmImport{{
			module:  "wasi_unstable",
			name:    "fd_write",
			params:  []byte{i32, i32, i32, i32},
			results: []byte{i32},
		}},
		memory:       true,
		exportMemory: true,
		data: []wasmData{
			{offset: 0, bytes: iovec},
			{offset: 16, bytes: []byte("hi\n")},
		},
		funcs: []wasmFunc{{
			export:  "say",
			results: []byte{i32},
			body:    concat(i32Const(1), i32Const(0), i32Const(1), i32Const(8), call(0)),
		}},
	}, &stdout)

	out, err := inst.Invoke(context.Background(), "say")
	require.NoError(t, err)
	assert.Equal(t, "0", out)
	assert.Equal(t, "hi\n", stdout.String())
}

func TestWazeroSandbox_FdWriteRejectsOtherDescriptors(t *testing.T) {
	var stdout bytes.Buffer

	inst := instantiate(t, wasmModule{
		imports: []wasmImport{{
			module:  "wasi_unstable",
			name:    "fd_write",
			params:  []byte{i32, i32, i32, i32},
			results: []byte{i32},
		}},
		memory: true,
		funcs: []wasmFunc{{
			export:  "say",
			results: []byte{i32},
			body:    concat(i32Const(5), i32Const(0), i32Const(0), i32Const(8), call(0)),
		}},
	}, &stdout)

	out, err := inst.Invoke(context.Background(), "say")
	require.NoError(t, err)
	assert.Equal(t, "8", out)
	assert.Empty(t, stdout.String())
}

func TestWazeroSandbox_FdWriteWithoutMemory(t *testing.T) {
	var stdout bytes.Buffer

	inst := instantiate(t, wasmModule{
		imports: []wasmImport{{
			module:  "wasi_unstable",
			name:    "fd_write",
			params:  []byte{i32, i32, i32, i32},
			results: []byte{i32},
		}},
		funcs: []wasmFunc{{
			export:  "say",
			results: []byte{i32},
			body:    concat(i32Const(1), i32Const(0), i32Const(1), i32Const(8), call(0)),
		}},
	}, &stdout)

	out, err := inst.Invoke(context.Background(), "say")
	require.NoError(t, err)
	assert.Equal(t, "21", out)
	assert.Empty(t, stdout.String())
}

func TestFormatResults(t *testing.T) {
	tests := []struct {
		name    string
		types   []api.ValueType
		results []uint64
		want    string
	}{
		{"no results", nil, nil, NoValue},
		{"negative i32", []api.ValueType{api.ValueTypeI32}, []uint64{api.EncodeI32(-1)}, "-1"},
		{"i64", []api.ValueType{api.ValueTypeI64}, []uint64{api.EncodeI64(1024)}, "1024"},
		{"f32", []api.ValueType{api.ValueTypeF32}, []uint64{api.EncodeF32(0.5)}, "0.5"},
		{"several", []api.ValueType{api.ValueTypeI32, api.ValueTypeF64}, []uint64{api.EncodeI32(2), api.EncodeF64(2.25)}, "2, 2.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResults(tt.types, tt.results))
		})
	}
}
