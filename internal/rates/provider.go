package rates

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mtlprog/patrimoine/internal/domain"
)

// Fetcher retrieves a complete rate table.
type Fetcher interface {
	FetchRates(ctx context.Context) (domain.RateTable, error)
}

// Result is the outcome of the one-shot rate resolution. When Fallback is set,
// Table holds domain.FallbackRates and Err the fetch failure.
type Result struct {
	Table    domain.RateTable
	Fallback bool
	Err      error
}

// Resolve fetches rates once and substitutes the fallback table on any failure.
func Resolve(ctx context.Context, f Fetcher) Result {
	table, err := f.FetchRates(ctx)
	if err != nil {
		slog.Warn("RateProvider: fetch failed, using fallback rates", "error", err)
		return Result{Table: domain.FallbackRates(), Fallback: true, Err: err}
	}
	slog.Info("RateProvider: rates loaded", "currencies", len(table))
	return Result{Table: table}
}

// Provider owns the session's rate table. It starts in the loading state with an
// empty table and leaves it exactly once, when Load resolves.
type Provider struct {
	fetcher Fetcher
	once    sync.Once

	mu      sync.RWMutex
	loading bool
	result  Result
}

// NewProvider creates a Provider in the loading state.
func NewProvider(f Fetcher) *Provider {
	return &Provider{
		fetcher: f,
		loading: true,
		result:  Result{Table: domain.RateTable{}},
	}
}

// Load resolves rates on the first call and returns the stored result on later ones.
// It blocks until the fetch completes; a fetch that never returns keeps the provider
// loading.
func (p *Provider) Load(ctx context.Context) Result {
	p.once.Do(func() {
		res := Resolve(ctx, p.fetcher)

		p.mu.Lock()
		p.result = res
		p.loading = false
		p.mu.Unlock()
	})

	res, _ := p.Snapshot()
	return res
}

// Snapshot returns the current result and whether resolution is still pending.
func (p *Provider) Snapshot() (Result, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Result{
		Table:    p.result.Table.Clone(),
		Fallback: p.result.Fallback,
		Err:      p.result.Err,
	}, p.loading
}
