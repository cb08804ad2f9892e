package domain

import (
	"context"
	"log/slog"
	"sync/atomic"

	"zephyr.dev/pkg/playground/internal/adapter"
	m "zephyr.dev/pkg/playground/internal/model"
)

// Orchestrator runs the compiler over a buffer, answering its module requests
// from the resolver.
type Orchestrator interface {
	// Compile compiles buffer as the playground entry point. Failures are
	// *CompileFailure, or ErrStaleCompile when a newer Compile started before
	// this one finished.
	Compile(ctx context.Context, buffer string) (m.Binary, error)
}

type orchestrator struct {
	resolver   *Resolver
	compiler   adapter.Compiler
	sink       LogSink
	generation atomic.Uint64
}

// NewOrchestrator constructs an Orchestrator. Lines the compiler logs go to
// sink; a nil sink discards them.
func NewOrchestrator(resolver *Resolver, compiler adapter.Compiler, sink LogSink) Orchestrator {
	if sink == nil {
		sink = NopSink{}
	}

	return &orchestrator{
		resolver: resolver,
		compiler: compiler,
		sink:     sink,
	}
}

func (o *orchestrator) Compile(ctx context.Context, buffer string) (m.Binary, error) {
	generation := o.generation.Add(1)
	session := o.resolver.NewSession(buffer)

	var failure *CompileFailure

	req := adapter.CompileRequest{
		Resolve: func(root, path string) (m.ResolvedModule, error) {
			module, err := session.Resolve(root, path)
			if err != nil && failure == nil {
				failure = &CompileFailure{Root: root, Path: path, Err: err}
			}

			return module, err
		},
		Log: o.sink.Log,
	}

	binary, err := o.compiler.Compile(ctx, req)

	if current := o.generation.Load(); current != generation {
		slog.Debug("Discarding stale compile", "generation", generation, "current", current)
		return nil, ErrStaleCompile
	}

	if failure != nil {
		slog.Error("Compile failed on a missing module", "root", failure.Root, "path", failure.Path, "error", failure.Err)
		return nil, failure
	}

	if err != nil {
		slog.Error("Compile failed", "error", err)
		return nil, &CompileFailure{Err: err}
	}

	if len(binary) == 0 {
		slog.Error("Compile produced no binary")
		return nil, &CompileFailure{Err: ErrNoBinary}
	}

	slog.Info("Compiled playground buffer", "generation", generation, "size", len(binary))

	return binary, nil
}
