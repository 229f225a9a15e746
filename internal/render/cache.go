package render

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// renderers hands out glamour renderers per Options. A TermRenderer must not
// render concurrently, so each one is owned by a single caller at a time.
type renderers struct {
	mu    sync.Mutex
	pools map[Options]*sync.Pool
}

var globalPool = newRenderers()

func newRenderers() *renderers {
	return &renderers{pools: make(map[Options]*sync.Pool)}
}

// pool returns the pool for opts, creating it on first use
func (r *renderers) pool(opts Options) *sync.Pool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pools[opts]
	if !ok {
		p = &sync.Pool{}
		r.pools[opts] = p
	}
	return p
}

// get takes an idle renderer for opts or builds a new one
func (r *renderers) get(opts Options) (*glamour.TermRenderer, error) {
	if tr, ok := r.pool(opts).Get().(*glamour.TermRenderer); ok {
		return tr, nil
	}
	return newRenderer(opts)
}

// put hands a renderer back for reuse
func (r *renderers) put(opts Options, tr *glamour.TermRenderer) {
	if tr != nil {
		r.pool(opts).Put(tr)
	}
}

// newRenderer builds a TermRenderer for one of the standard heading styles
func newRenderer(opts Options) (*glamour.TermRenderer, error) {
	if !IsHeadingStyle(opts.Style) {
		return nil, fmt.Errorf("unknown heading style %q", opts.Style)
	}

	style := glamour.WithStandardStyle(opts.Style)
	if opts.Style == StyleAuto {
		style = glamour.WithAutoStyle()
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(opts.Width))
}

// ClearCache drops all pooled renderers.
func ClearCache() {
	globalPool.mu.Lock()
	globalPool.pools = make(map[Options]*sync.Pool)
	globalPool.mu.Unlock()
}

// CacheSize returns how many distinct option sets have a pool.
func CacheSize() int {
	globalPool.mu.Lock()
	defer globalPool.mu.Unlock()
	return len(globalPool.pools)
}
