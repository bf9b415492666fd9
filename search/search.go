// Package search holds the debounced search engine and the paginator
// the catalog pipeline runs plant lists through.
package search

import (
	"strings"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a typed term commits.
const DefaultDebounce = 300 * time.Millisecond

// Engine filters an item collection on a debounced search term. Fields
// are extracted per item by the configured functions, so the engine
// works over any item type.
//
// Live typing goes through SetTerm and commits after the quiet period;
// terms arriving via a URL parameter go through SetTermImmediate so
// the first response already reflects the filter. A generation counter
// guards against a stale timer overwriting a newer term.
type Engine[T any] struct {
	mu        sync.Mutex
	delay     time.Duration
	fields    []func(T) string
	items     []T
	term      string
	debounced string
	gen       int
	timer     *time.Timer
}

// NewEngine builds an engine with the given quiet period (0 means
// DefaultDebounce) and field extractors.
func NewEngine[T any](delay time.Duration, fields ...func(T) string) *Engine[T] {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Engine[T]{delay: delay, fields: fields}
}

// SetItems replaces the collection being searched.
func (e *Engine[T]) SetItems(items []T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = items
}

// SetTerm records a typed term. The debounced term follows after the
// quiet period, unless a newer term arrives first.
func (e *Engine[T]) SetTerm(term string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.term = term
	e.gen++
	gen := e.gen

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.delay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.gen != gen {
			// A newer term superseded this timer.
			return
		}
		e.debounced = term
	})
}

// SetTermImmediate sets both the immediate and debounced term
// synchronously, bypassing the quiet period.
func (e *Engine[T]) SetTermImmediate(term string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.gen++
	if e.timer != nil {
		e.timer.Stop()
	}
	e.term = term
	e.debounced = term
}

// Clear resets both terms synchronously.
func (e *Engine[T]) Clear() {
	e.SetTermImmediate("")
}

// Term returns the immediate term.
func (e *Engine[T]) Term() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.term
}

// DebouncedTerm returns the committed term.
func (e *Engine[T]) DebouncedTerm() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.debounced
}

// HasSearch reports whether a non-blank term is committed.
func (e *Engine[T]) HasSearch() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return strings.TrimSpace(e.debounced) != ""
}

// FilteredItems returns the items matching the committed term. A blank
// term returns the collection unchanged.
func (e *Engine[T]) FilteredItems() []T {
	e.mu.Lock()
	items, debounced, fields := e.items, e.debounced, e.fields
	e.mu.Unlock()
	return Filter(items, debounced, fields...)
}

// Filter returns the items where at least one extracted field contains
// term as a case-insensitive substring. A blank term returns items
// unchanged, same slice, same order.
func Filter[T any](items []T, term string, fields ...func(T) string) []T {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(it)), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
