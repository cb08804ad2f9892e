package adapter

import (
	"encoding/binary"
	"math"
)

// Minimal WebAssembly encoder for test fixtures.

const (
	i32 byte = 0x7f
	i64 byte = 0x7e
	f64 byte = 0x7c
)

const (
	opUnreachable byte = 0x00
	opCall        byte = 0x10
	opLocalGet    byte = 0x20
	opGlobalGet   byte = 0x23
	opGlobalSet   byte = 0x24
	opI32Const    byte = 0x41
	opI64Const    byte = 0x42
	opF64Const    byte = 0x44
	opI32Add      byte = 0x6a
	opEnd         byte = 0x0b
)

type wasmImport struct {
	module, name    string
	params, results []byte
}

type wasmFunc struct {
	export          string
	params, results []byte
	body            []byte
}

type wasmData struct {
	offset int32
	bytes  []byte
}

type wasmModule struct {
	imports      []wasmImport
	funcs        []wasmFunc
	memory       bool
	exportMemory bool
	globals      []int32
	data         []wasmData
}

func (w wasmModule) encode() []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	var types [][]byte
	for _, imp := range w.imports {
		types = append(types, funcType(imp.params, imp.results))
	}

	for _, fn := range w.funcs {
		types = append(types, funcType(fn.params, fn.results))
	}

	out = appendSection(out, 1, vec(types))

	if len(w.imports) > 0 {
		var entries [][]byte

		for idx, imp := range w.imports {
			entry := append(name(imp.module), name(imp.name)...)
			entry = append(entry, 0x00)
			entry = appendU32(entry, uint32(idx))
			entries = append(entries, entry)
		}

		out = appendSection(out, 2, vec(entries))
	}

	var funcIdx [][]byte
	for idx := range w.funcs {
		funcIdx = append(funcIdx, appendU32(nil, uint32(len(w.imports)+idx)))
	}

	out = appendSection(out, 3, vec(funcIdx))

	if w.memory {
		out = appendSection(out, 5, vec([][]byte{{0x00, 0x01}}))
	}

	if len(w.globals) > 0 {
		var globals [][]byte

		for _, init := range w.globals {
			g := []byte{i32, 0x01, opI32Const}
			g = appendS64(g, int64(init))
			g = append(g, opEnd)
			globals = append(globals, g)
		}

		out = appendSection(out, 6, vec(globals))
	}

	var exports [][]byte

	if w.exportMemory {
		exports = append(exports, append(name("memory"), 0x02, 0x00))
	}

	for idx, fn := range w.funcs {
		if fn.export == "" {
			continue
		}

		entry := append(name(fn.export), 0x00)
		entry = appendU32(entry, uint32(len(w.imports)+idx))
		exports = append(exports, entry)
	}

	out = appendSection(out, 7, vec(exports))

	var bodies [][]byte

	for _, fn := range w.funcs {
		body := []byte{0x00}
		body = append(body, fn.body...)
		body = append(body, opEnd)
		bodies = append(bodies, append(appendU32(nil, uint32(len(body))), body...))
	}

	out = appendSection(out, 10, vec(bodies))

	if len(w.data) > 0 {
		var segments [][]byte

		for _, d := range w.data {
			seg := []byte{0x00, opI32Const}
			seg = appendS64(seg, int64(d.offset))
			seg = append(seg, opEnd)
			seg = appendU32(seg, uint32(len(d.bytes)))
			seg = append(seg, d.bytes...)
			segments = append(segments, seg)
		}

		out = appendSection(out, 11, vec(segments))
	}

	return out
}

func funcType(params, results []byte) []byte {
	out := []byte{0x60}
	out = appendU32(out, uint32(len(params)))
	out = append(out, params...)
	out = appendU32(out, uint32(len(results)))

	return append(out, results...)
}

func appendSection(out []byte, id byte, contents []byte) []byte {
	out = append(out, id)
	out = appendU32(out, uint32(len(contents)))

	return append(out, contents...)
}

func vec(items [][]byte) []byte {
	out := appendU32(nil, uint32(len(items)))
	for _, item := range items {
		out = append(out, item...)
	}

	return out
}

func name(s string) []byte {
	return append(appendU32(nil, uint32(len(s))), s...)
}

func appendU32(out []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7

		if v != 0 {
			out = append(out, b|0x80)
			continue
		}

		return append(out, b)
	}
}

func appendS64(out []byte, v int64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7

		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(out, b)
		}

		out = append(out, b|0x80)
	}
}

func i32Const(v int32) []byte {
	return appendS64([]byte{opI32Const}, int64(v))
}

func i64Const(v int64) []byte {
	return appendS64([]byte{opI64Const}, v)
}

func f64Const(v float64) []byte {
	return binary.LittleEndian.AppendUint64([]byte{opF64Const}, math.Float64bits(v))
}

func call(idx uint32) []byte {
	return appendU32([]byte{opCall}, idx)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
