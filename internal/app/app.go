package app

import (
	"context"
	"fmt"

	"github.com/nehal/linguo/internal/contentgen"
	"github.com/nehal/linguo/internal/ledger"
	"github.com/nehal/linguo/internal/llm"
	"github.com/nehal/linguo/internal/ops"
	"github.com/nehal/linguo/internal/store"
)

// Options configures application assembly.
type Options struct {
	// DBPath is the SQLite database location. Empty means the default
	// data directory.
	DBPath string

	// LLM overrides the environment-derived provider configuration.
	LLM *llm.Config
}

// App wires the application's components together. One App is built
// per process and its fields are shared, never reconstructed.
type App struct {
	Store    *store.Store
	Events   store.EventRepo
	Provider llm.Provider
	Ledger   *ledger.Ledger
	Pipeline *contentgen.Pipeline
	Ops      *ops.Manager
}

// New assembles the application. The provider may come up nil when the
// configuration requests offline mode; every consumer treats that as
// fallback-only operation.
func New(ctx context.Context, opts Options) (*App, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	events := st.EventRepo()

	llmCfg := llm.ConfigFromEnv()
	if opts.LLM != nil {
		llmCfg = *opts.LLM
	} else if llmCfg.Validate() != nil {
		// No explicit configuration. Probe the standard provider env
		// vars; with nothing there, run offline on the local generator.
		if discovered, ok := llm.DiscoverConfig(); ok {
			llmCfg = discovered
		} else {
			llmCfg.Offline = true
		}
	}
	provider, err := llm.NewProvider(ctx, llmCfg, events)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("configure provider: %w", err)
	}

	led, err := ledger.Load(ctx, st.KV(), ledger.WithEventRepo(events))
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load mistake ledger: %w", err)
	}

	return &App{
		Store:    st,
		Events:   events,
		Provider: provider,
		Ledger:   led,
		Pipeline: contentgen.NewPipeline(provider, contentgen.DefaultConfig()),
		Ops:      ops.NewManager(ops.DefaultConfig(), ops.WithEventRepo(events)),
	}, nil
}

// Close releases the app's resources.
func (a *App) Close() error {
	a.Ops.Close()
	return a.Store.Close()
}
