package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"zephyr.dev/pkg/playground/internal/adapter"
	"zephyr.dev/pkg/playground/internal/controller"
	m "zephyr.dev/pkg/playground/internal/model"
)

// RunArgs contains the arguments for compiling and running a buffer.
type RunArgs struct {
	Buffer string
}

// ExecArgs contains the arguments for running a prebuilt binary.
type ExecArgs struct {
	Binary m.Binary
}

// ResolveArgs names a single module reference to resolve. Buffer stands in
// for the live buffer.
type ResolveArgs struct {
	Root   string
	Path   string
	Buffer string
}

// ListArgs restricts a module listing to Root, or lists every root when empty.
type ListArgs struct {
	Root string
}

// PlayArgs seeds the interactive editor.
type PlayArgs struct {
	Buffer string
}

// PlaygroundConfig holds the settings resolved from configuration.
type PlaygroundConfig struct {
	// Snapshot is the virtual tree snapshot; empty selects the embedded
	// standard library.
	Snapshot m.Path
	Resolver ResolverConfig
}

// Playground is the session workflow: compile the buffer, run the result and
// keep the console transcript.
type Playground interface {
	Run(ctx context.Context, args RunArgs) error
	Exec(ctx context.Context, args ExecArgs) error
	Resolve(ctx context.Context, args ResolveArgs) (m.ResolvedModule, error)
	Modules(ctx context.Context, args ListArgs) ([]m.ModuleEntry, error)
	Play(ctx context.Context, args PlayArgs) error
	State() m.State
}

type playground struct {
	controller.UI

	cfg      PlaygroundConfig
	trees    adapter.SourceTreeAdapter
	compiler adapter.Compiler
	console  *Console
	harness  Harness

	mu           sync.Mutex
	state        m.State
	resolver     *Resolver
	orchestrator Orchestrator
}

// NewPlayground creates a Playground. Every line appended to console is shown
// on ui. The virtual tree is loaded on first use.
func NewPlayground(
	cfg PlaygroundConfig,
	trees adapter.SourceTreeAdapter,
	compiler adapter.Compiler,
	sandbox adapter.Sandbox,
	console *Console,
	ui controller.UI,
) Playground {
	console.Subscribe(func(line m.ConsoleLine) {
		ui.DisplayConsoleLine(context.Background(), line)
	})

	return &playground{
		UI:       ui,
		cfg:      cfg,
		trees:    trees,
		compiler: compiler,
		console:  console,
		harness:  NewHarness(sandbox, console),
	}
}

// Run compiles args.Buffer and executes the result.
func (p *playground) Run(ctx context.Context, args RunArgs) error {
	if err := p.Start(ctx, controller.WithBatchMode()); err != nil {
		slog.Error("Failed to start playground UI", "error", err)
		return err
	}
	defer p.Close(ctx)

	return p.run(ctx, args.Buffer)
}

func (p *playground) run(ctx context.Context, buffer string) error {
	_, orchestrator, err := p.load(ctx)
	if err != nil {
		p.setState(ctx, m.StateFailed)
		p.console.Log(err.Error(), m.LineError)

		return err
	}

	p.setState(ctx, m.StateCompiling)

	binary, err := orchestrator.Compile(ctx, buffer)
	if errors.Is(err, ErrStaleCompile) {
		return nil
	}

	if err != nil {
		p.setState(ctx, m.StateFailed)
		p.console.Log(err.Error(), m.LineError)

		return err
	}

	p.setState(ctx, m.StateReady)

	return p.execute(ctx, binary)
}

// Exec runs a prebuilt binary through the harness.
func (p *playground) Exec(ctx context.Context, args ExecArgs) error {
	if err := p.Start(ctx, controller.WithBatchMode()); err != nil {
		slog.Error("Failed to start playground UI", "error", err)
		return err
	}
	defer p.Close(ctx)

	p.setState(ctx, m.StateReady)

	return p.execute(ctx, args.Binary)
}

func (p *playground) execute(ctx context.Context, binary m.Binary) error {
	p.setState(ctx, m.StateRunning)
	defer p.setState(ctx, m.StateIdle)

	exports, err := p.harness.Run(ctx, binary)
	if err != nil {
		return err
	}

	if len(exports) != 1 {
		p.DisplayExports(ctx, exports)
	}

	return nil
}

// Resolve resolves one module reference in a fresh session and displays it.
func (p *playground) Resolve(ctx context.Context, args ResolveArgs) (m.ResolvedModule, error) {
	resolver, _, err := p.load(ctx)
	if err != nil {
		return m.ResolvedModule{}, err
	}

	module, err := resolver.NewSession(args.Buffer).Resolve(args.Root, args.Path)
	if err != nil {
		return m.ResolvedModule{}, fmt.Errorf("resolve: %w", err)
	}

	p.DisplayModule(ctx, args.Root, args.Path, module)

	return module, nil
}

// Modules lists the module paths of the virtual tree and displays them.
func (p *playground) Modules(ctx context.Context, args ListArgs) ([]m.ModuleEntry, error) {
	resolver, _, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	if args.Root != "" {
		if _, ok := resolver.tree.LookupRoot(args.Root); !ok {
			return nil, &ResolutionError{Root: args.Root, Err: ErrRootNotFound}
		}
	}

	entries := resolver.tree.Modules(args.Root)
	p.DisplayModules(ctx, entries)

	return entries, nil
}

// Play opens the interactive editor and blocks until the user leaves it.
func (p *playground) Play(ctx context.Context, args PlayArgs) error {
	onRun := func(ctx context.Context, buffer string) {
		if err := p.run(ctx, buffer); err != nil {
			slog.Debug("Playground run failed", "error", err)
		}
	}

	if err := p.Start(ctx, controller.WithPlayMode(args.Buffer, onRun)); err != nil {
		slog.Error("Failed to start playground UI", "error", err)
		return err
	}

	p.Wait(ctx)
	p.Close(ctx)

	return nil
}

func (p *playground) State() m.State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

func (p *playground) setState(ctx context.Context, state m.State) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()

	slog.Debug("Playground state", "state", state)
	p.DisplayState(ctx, state)
}

func (p *playground) load(ctx context.Context) (*Resolver, Orchestrator, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolver != nil {
		return p.resolver, p.orchestrator, nil
	}

	tree, err := p.trees.LoadTree(ctx, p.cfg.Snapshot)
	if err != nil {
		slog.Error("Failed to load virtual tree", "snapshot", p.cfg.Snapshot, "error", err)
		return nil, nil, fmt.Errorf("load virtual tree: %w", err)
	}

	p.resolver = NewResolver(tree, p.cfg.Resolver)
	p.orchestrator = NewOrchestrator(p.resolver, p.compiler, p.console)

	return p.resolver, p.orchestrator, nil
}
