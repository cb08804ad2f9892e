package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	m "zephyr.dev/pkg/playground/internal/model"
)

// NoValue is how a call without results is rendered.
const NoValue = "(no value)"

const (
	wasiUnstableModule = "wasi_unstable"
	errnoSuccess       = 0
	errnoBadf          = 8
	errnoFault         = 21
)

// Sandbox instantiates compiled binaries in an isolated environment.
type Sandbox interface {
	// Instantiate loads binary. Guest writes to stdout/stderr go to stdout.
	Instantiate(ctx context.Context, binary m.Binary, stdout io.Writer) (Instance, error)
}

// Instance is an instantiated binary.
type Instance interface {
	// ListCallableExports returns the exported functions, sorted by name.
	ListCallableExports() []m.Export
	// Invoke calls the named export with zero-valued arguments and returns
	// its result rendered as text.
	Invoke(ctx context.Context, name string) (string, error)
	Close(ctx context.Context) error
}

// WazeroSandbox is a Sandbox backed by wazero. Every instantiation gets its
// own runtime so nothing leaks from one run to the next.
type WazeroSandbox struct{}

// NewWazeroSandbox constructs a WazeroSandbox.
func NewWazeroSandbox() *WazeroSandbox {
	return &WazeroSandbox{}
}

// Instantiate implements Sandbox.
func (s *WazeroSandbox) Instantiate(ctx context.Context, binary m.Binary, stdout io.Writer) (Instance, error) {
	if stdout == nil {
		stdout = io.Discard
	}

	runtime := wazero.NewRuntime(ctx)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, runtime); err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("failed to provide wasi: %w", err)
	}

	_, err := runtime.NewHostModuleBuilder(wasiUnstableModule).
		NewFunctionBuilder().
		WithGoModuleFunction(fdWrite(stdout),
			[]api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32},
			[]api.ValueType{api.ValueTypeI32}).
		Export("fd_write").
		Instantiate(ctx)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("failed to provide %s: %w", wasiUnstableModule, err)
	}

	config := wazero.NewModuleConfig().
		WithName("").
		WithStdout(stdout).
		WithStderr(stdout).
		WithStartFunctions()

	mod, err := runtime.InstantiateWithConfig(ctx, binary, config)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("failed to instantiate binary: %w", err)
	}

	return &wazeroInstance{runtime: runtime, module: mod}, nil
}

type wazeroInstance struct {
	runtime wazero.Runtime
	module  api.Module
}

func (i *wazeroInstance) ListCallableExports() []m.Export {
	defs := i.module.ExportedFunctionDefinitions()

	exports := make([]m.Export, 0, len(defs))
	for name, def := range defs {
		results := make([]m.ValueKind, 0, len(def.ResultTypes()))
		for _, vt := range def.ResultTypes() {
			results = append(results, valueKind(vt))
		}

		exports = append(exports, m.Export{
			Name:    name,
			Arity:   len(def.ParamTypes()),
			Results: results,
		})
	}

	sort.Slice(exports, func(a, b int) bool {
		return exports[a].Name < exports[b].Name
	})

	return exports
}

func (i *wazeroInstance) Invoke(ctx context.Context, name string) (string, error) {
	fn := i.module.ExportedFunction(name)
	if fn == nil {
		return "", fmt.Errorf("export %q is not a function", name)
	}

	def := fn.Definition()
	params := make([]uint64, len(def.ParamTypes()))

	results, err := fn.Call(ctx, params...)
	if err != nil {
		return "", err
	}

	return FormatResults(def.ResultTypes(), results), nil
}

func (i *wazeroInstance) Close(ctx context.Context) error {
	return i.runtime.Close(ctx)
}

// FormatResults renders raw call results according to their value types.
func FormatResults(types []api.ValueType, results []uint64) string {
	if len(results) == 0 {
		return NoValue
	}

	parts := make([]string, 0, len(results))
	for idx, raw := range results {
		vt := api.ValueTypeI64
		if idx < len(types) {
			vt = types[idx]
		}

		parts = append(parts, formatValue(vt, raw))
	}

	return strings.Join(parts, ", ")
}

func formatValue(vt api.ValueType, raw uint64) string {
	switch vt {
	case api.ValueTypeI32:
		return strconv.FormatInt(int64(api.DecodeI32(raw)), 10)
	case api.ValueTypeI64:
		return strconv.FormatInt(int64(raw), 10)
	case api.ValueTypeF32:
		return strconv.FormatFloat(float64(api.DecodeF32(raw)), 'g', -1, 32)
	case api.ValueTypeF64:
		return strconv.FormatFloat(api.DecodeF64(raw), 'g', -1, 64)
	}

	return "0x" + strconv.FormatUint(raw, 16)
}

func valueKind(vt api.ValueType) m.ValueKind {
	switch vt {
	case api.ValueTypeI32:
		return m.ValueI32
	case api.ValueTypeI64:
		return m.ValueI64
	case api.ValueTypeF32:
		return m.ValueF32
	case api.ValueTypeF64:
		return m.ValueF64
	}

	return m.ValueUnknown
}

// fdWrite implements the legacy wasi_unstable fd_write for stdout and stderr.
func fdWrite(w io.Writer) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		fd := api.DecodeI32(stack[0])
		iovs := api.DecodeU32(stack[1])
		iovsLen := api.DecodeU32(stack[2])
		resultPtr := api.DecodeU32(stack[3])

		if fd != 1 && fd != 2 {
			stack[0] = api.EncodeI32(errnoBadf)
			return
		}

		mem := mod.ExportedMemory(memoryExportName)
		if mem == nil {
			stack[0] = api.EncodeI32(errnoFault)
			return
		}

		var written uint32

		for idx := range iovsLen {
			base := iovs + idx*8

			ptr, ok := mem.ReadUint32Le(base)
			if !ok {
				stack[0] = api.EncodeI32(errnoFault)
				return
			}

			length, ok := mem.ReadUint32Le(base + 4)
			if !ok {
				stack[0] = api.EncodeI32(errnoFault)
				return
			}

			buf, ok := mem.Read(ptr, length)
			if !ok {
				stack[0] = api.EncodeI32(errnoFault)
				return
			}

			if _, err := w.Write(buf); err != nil {
				slog.Warn("fd_write: sink rejected output", "error", err)
			}

			written += length
		}

		if !mem.WriteUint32Le(resultPtr, written) {
			stack[0] = api.EncodeI32(errnoFault)
			return
		}

		stack[0] = api.EncodeI32(errnoSuccess)
	}
}
