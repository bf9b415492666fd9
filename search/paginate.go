package search

import "sync"

// DefaultPageSize matches the catalog's default grid.
const DefaultPageSize = 9

// PageSizeOptions are the page sizes the catalog offers.
var PageSizeOptions = []int{6, 9, 12, 24}

// AllowedPageSize reports whether size is one of the offered options.
func AllowedPageSize(size int) bool {
	for _, s := range PageSizeOptions {
		if s == size {
			return true
		}
	}
	return false
}

// Paginator slices a collection into fixed-size pages. Replacing the
// collection resets to page one; changing the page size keeps the
// position as close as possible instead.
type Paginator[T any] struct {
	mu       sync.Mutex
	items    []T
	page     int
	pageSize int
}

// NewPaginator starts at page one over items.
func NewPaginator[T any](items []T, pageSize int) *Paginator[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Paginator[T]{items: items, page: 1, pageSize: pageSize}
}

// SetItems replaces the collection and resets to page one.
func (p *Paginator[T]) SetItems(items []T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
	p.page = 1
}

// SetPage navigates. Out-of-range pages are a no-op.
func (p *Paginator[T]) SetPage(page int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if page >= 1 && page <= p.totalPagesLocked() {
		p.page = page
	}
}

// SetPageSize changes the size, clamping the current page into the new
// range rather than resetting it.
func (p *Paginator[T]) SetPageSize(size int) {
	if size < 1 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pageSize = size
	if total := p.totalPagesLocked(); p.page > total {
		p.page = total
	}
	if p.page < 1 {
		p.page = 1
	}
}

// Page returns the current page, 1-based.
func (p *Paginator[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// PageSize returns the current page size.
func (p *Paginator[T]) PageSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pageSize
}

// TotalPages is ceil(len(items)/pageSize), never less than one.
func (p *Paginator[T]) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPagesLocked()
}

func (p *Paginator[T]) totalPagesLocked() int {
	total := (len(p.items) + p.pageSize - 1) / p.pageSize
	if total < 1 {
		total = 1
	}
	return total
}

// TotalItems returns the size of the underlying collection.
func (p *Paginator[T]) TotalItems() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// PageItems returns the current page's slice of the collection.
func (p *Paginator[T]) PageItems() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := (p.page - 1) * p.pageSize
	if start >= len(p.items) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// Range returns the 1-based positions of the first and last item on
// the current page ("showing 10-18 of 23").
func (p *Paginator[T]) Range() (start, end int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.items) == 0 {
		return 0, 0
	}
	start = (p.page-1)*p.pageSize + 1
	end = p.page * p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return start, end
}
