package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fortio.org/safecast"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/vmihailenco/msgpack/v5"

	m "zephyr.dev/pkg/playground/internal/model"
)

// Names of the toolchain host ABI.
const (
	HostModuleName      = "zephyr"
	resolveImportName   = "resolve_module"
	logImportName       = "playground_log"
	compileExportName   = "compile"
	allocExportName     = "alloc"
	memoryExportName    = "memory"
	toolchainModuleName = ""
)

var (
	// ErrToolchainFailed is returned when the toolchain reports a failed compilation.
	ErrToolchainFailed = errors.New("toolchain reported a failed compilation")
	// ErrToolchainABI is returned when the toolchain does not follow the host ABI.
	ErrToolchainABI = errors.New("toolchain does not implement the host ABI")
)

// ResolveFunc resolves a module reference on behalf of the compiler.
type ResolveFunc func(root, path string) (m.ResolvedModule, error)

// LogFunc receives console lines written by the compiler.
type LogFunc func(content string, kind m.LineKind)

// CompileRequest carries the callbacks the compiler calls back into while it runs.
type CompileRequest struct {
	Resolve ResolveFunc
	Log     LogFunc
}

// Compiler is the opaque toolchain. Compile blocks while the compiler pulls
// every module it needs through req.Resolve.
type Compiler interface {
	Compile(ctx context.Context, req CompileRequest) (m.Binary, error)
}

type compileRequestKey struct{}

// WasmToolchain runs a toolchain compiled to WebAssembly inside wazero.
//
// The guest exports memory, alloc(size i32) i32 and compile() i64, and imports
// zephyr.resolve_module(rootPtr, rootLen, pathPtr, pathLen i32) i64 and
// zephyr.playground_log(ptr, len, kind i32). 64-bit results pack ptr<<32|len;
// zero means failure.
type WasmToolchain struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

// NewWasmToolchain compiles the toolchain binary and registers the host module.
func NewWasmToolchain(ctx context.Context, binary []byte) (*WasmToolchain, error) {
	runtime := wazero.NewRuntime(ctx)

	_, err := runtime.NewHostModuleBuilder(HostModuleName).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(hostResolveModule),
			[]api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32},
			[]api.ValueType{api.ValueTypeI64}).
		Export(resolveImportName).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(hostPlaygroundLog),
			[]api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32},
			[]api.ValueType{}).
		Export(logImportName).
		Instantiate(ctx)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("failed to register host module: %w", err)
	}

	compiled, err := runtime.CompileModule(ctx, binary)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("failed to load toolchain: %w", err)
	}

	return &WasmToolchain{runtime: runtime, compiled: compiled}, nil
}

// Compile instantiates a fresh toolchain instance and runs its compile export.
func (t *WasmToolchain) Compile(ctx context.Context, req CompileRequest) (m.Binary, error) {
	ctx = context.WithValue(ctx, compileRequestKey{}, req)

	mod, err := t.runtime.InstantiateModule(ctx, t.compiled, wazero.NewModuleConfig().WithName(toolchainModuleName))
	if err != nil {
		slog.Error("Failed to instantiate toolchain", "error", err)
		return nil, fmt.Errorf("failed to instantiate toolchain: %w", err)
	}

	defer func() {
		if err := mod.Close(ctx); err != nil {
			slog.Warn("Failed to close toolchain instance", "error", err)
		}
	}()

	compile := mod.ExportedFunction(compileExportName)
	if compile == nil {
		return nil, fmt.Errorf("%w: missing %q export", ErrToolchainABI, compileExportName)
	}

	// Memory() wraps a nil instance in a non-nil interface when the guest has
	// no memory, so look the export up by name.
	mem := mod.ExportedMemory(memoryExportName)
	if mem == nil {
		return nil, fmt.Errorf("%w: missing memory export", ErrToolchainABI)
	}

	results, err := compile.Call(ctx)
	if err != nil {
		slog.Error("Toolchain trapped", "error", err)
		return nil, fmt.Errorf("toolchain trapped: %w", err)
	}

	if len(results) != 1 || results[0] == 0 {
		return nil, ErrToolchainFailed
	}

	ptr, length := unpackPtrLen(results[0])

	out, ok := mem.Read(ptr, length)
	if !ok {
		return nil, fmt.Errorf("%w: output %d+%d out of memory bounds", ErrToolchainABI, ptr, length)
	}

	// Read aliases guest memory, which goes away with the instance.
	binary := make(m.Binary, len(out))
	copy(binary, out)

	slog.Debug("Toolchain produced binary", "size", len(binary))

	return binary, nil
}

// Close releases the wazero runtime.
func (t *WasmToolchain) Close(ctx context.Context) error {
	return t.runtime.Close(ctx)
}

func requestFromContext(ctx context.Context) (CompileRequest, bool) {
	req, ok := ctx.Value(compileRequestKey{}).(CompileRequest)
	return req, ok
}

func hostResolveModule(ctx context.Context, mod api.Module, stack []uint64) {
	root, rootOK := readString(mod, stack[0:2])
	path, pathOK := readString(mod, stack[2:4])
	stack[0] = 0

	req, ok := requestFromContext(ctx)
	if !ok || req.Resolve == nil {
		slog.Error("resolve_module called outside of a compile")
		return
	}

	if !rootOK {
		slog.Error("resolve_module: root out of memory bounds")
		return
	}

	if !pathOK {
		slog.Error("resolve_module: path out of memory bounds")
		return
	}

	module, err := req.Resolve(root, path)
	if err != nil {
		slog.Debug("resolve_module: not found", "root", root, "path", path, "error", err)
		return
	}

	payload, err := EncodeModule(module)
	if err != nil {
		slog.Error("resolve_module: failed to encode module", "root", root, "path", path, "error", err)
		return
	}

	ptr, err := writeToGuest(ctx, mod, payload)
	if err != nil {
		slog.Error("resolve_module: failed to copy module into guest", "root", root, "path", path, "error", err)
		return
	}

	length, err := safecast.Conv[uint32](len(payload))
	if err != nil {
		slog.Error("resolve_module: module too large", "size", len(payload))
		return
	}

	stack[0] = packPtrLen(ptr, length)
}

func hostPlaygroundLog(ctx context.Context, mod api.Module, stack []uint64) {
	req, ok := requestFromContext(ctx)
	if !ok || req.Log == nil {
		return
	}

	content, ok := readString(mod, stack[0:2])
	if !ok {
		slog.Error("playground_log: message out of memory bounds")
		return
	}

	req.Log(content, m.LineKindFromInt(int(api.DecodeI32(stack[2]))))
}

func readString(mod api.Module, ptrLen []uint64) (string, bool) {
	mem := mod.ExportedMemory(memoryExportName)
	if mem == nil {
		return "", false
	}

	buf, ok := mem.Read(api.DecodeU32(ptrLen[0]), api.DecodeU32(ptrLen[1]))
	if !ok {
		return "", false
	}

	return string(buf), true
}

func writeToGuest(ctx context.Context, mod api.Module, payload []byte) (uint32, error) {
	alloc := mod.ExportedFunction(allocExportName)
	if alloc == nil {
		return 0, fmt.Errorf("%w: missing %q export", ErrToolchainABI, allocExportName)
	}

	size, err := safecast.Conv[uint32](len(payload))
	if err != nil {
		return 0, err
	}

	results, err := alloc.Call(ctx, api.EncodeU32(size))
	if err != nil {
		return 0, fmt.Errorf("alloc trapped: %w", err)
	}

	if len(results) != 1 {
		return 0, fmt.Errorf("%w: alloc returned %d values", ErrToolchainABI, len(results))
	}

	mem := mod.ExportedMemory(memoryExportName)
	if mem == nil {
		return 0, fmt.Errorf("%w: missing memory export", ErrToolchainABI)
	}

	ptr := api.DecodeU32(results[0])
	if !mem.Write(ptr, payload) {
		return 0, fmt.Errorf("%w: alloc returned %d, out of memory bounds", ErrToolchainABI, ptr)
	}

	return ptr, nil
}

func packPtrLen(ptr, length uint32) uint64 {
	return uint64(ptr)<<32 | uint64(length)
}

func unpackPtrLen(packed uint64) (uint32, uint32) {
	return uint32(packed >> 32), uint32(packed)
}

type wireFile struct {
	Code     string `msgpack:"code"`
	FileName string `msgpack:"fileName"`
	FileID   uint32 `msgpack:"fileId"`
	IsAsm    bool   `msgpack:"isAsm"`
}

type wireModule struct {
	Files        []wireFile `msgpack:"files"`
	IsStandalone bool       `msgpack:"isStandalone"`
}

// EncodeModule serialises a resolved module the way the toolchain reads it.
func EncodeModule(module m.ResolvedModule) ([]byte, error) {
	wire := wireModule{
		Files:        make([]wireFile, 0, len(module.Files)),
		IsStandalone: module.IsStandalone,
	}

	for _, file := range module.Files {
		wire.Files = append(wire.Files, wireFile{
			Code:     file.Code,
			FileName: file.FileName,
			FileID:   uint32(file.FileID),
			IsAsm:    file.IsAsm,
		})
	}

	return msgpack.Marshal(&wire)
}

// DecodeModule is the inverse of EncodeModule.
func DecodeModule(data []byte) (m.ResolvedModule, error) {
	var wire wireModule
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return m.ResolvedModule{}, fmt.Errorf("failed to decode module: %w", err)
	}

	module := m.ResolvedModule{
		Files:        make([]m.ResolvedFile, 0, len(wire.Files)),
		IsStandalone: wire.IsStandalone,
	}

	for _, file := range wire.Files {
		module.Files = append(module.Files, m.ResolvedFile{
			Code:     file.Code,
			FileName: file.FileName,
			FileID:   m.FileID(file.FileID),
			IsAsm:    file.IsAsm,
		})
	}

	return module, nil
}
