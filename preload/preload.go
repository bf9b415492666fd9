// Package preload warms an in-memory cache of image URLs so catalog
// pages render without waiting on the image host. The cache of
// successful loads is process-wide; each Preloader additionally tracks
// the URLs it already attempted so failures are not retried within the
// same session.
package preload

import (
	"context"
	"net/http"
	"sync"
	"time"
)

var cache = struct {
	mu   sync.Mutex
	urls map[string]struct{}
}{urls: make(map[string]struct{})}

// IsCached reports whether a URL loaded successfully this session.
func IsCached(url string) bool {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	_, ok := cache.urls[url]
	return ok
}

// CacheSize returns the number of successfully loaded URLs.
func CacheSize() int {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return len(cache.urls)
}

// ClearCache empties the process-wide cache.
func ClearCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.urls = make(map[string]struct{})
}

func markCached(url string) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.urls[url] = struct{}{}
}

// Preloader issues background loads for a batch of URLs. Cancel stops
// in-flight work; loads that complete after cancellation never touch
// the cache.
type Preloader struct {
	mu        sync.Mutex
	attempted map[string]struct{}
	client    *http.Client
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New builds a preloader. One per consuming view; Cancel it when the
// view goes away.
func New() *Preloader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Preloader{
		attempted: make(map[string]struct{}),
		client:    &http.Client{Timeout: 30 * time.Second},
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Preload starts background loads for every URL not already cached or
// attempted. It returns immediately.
func (p *Preloader) Preload(urls []string) {
	p.mu.Lock()
	var pending []string
	for _, u := range urls {
		if u == "" || IsCached(u) {
			continue
		}
		if _, done := p.attempted[u]; done {
			continue
		}
		p.attempted[u] = struct{}{}
		pending = append(pending, u)
	}
	p.mu.Unlock()

	for _, u := range pending {
		p.wg.Add(1)
		go p.load(u)
	}
}

func (p *Preloader) load(url string) {
	defer p.wg.Done()

	req, err := http.NewRequestWithContext(p.ctx, http.MethodGet, url, nil)
	if err != nil {
		return
	}
	resp, err := p.client.Do(req)
	if err != nil {
		// Stays attempted-not-cached, so it is not retried this session.
		return
	}
	resp.Body.Close()

	// Guard against a completion landing after Cancel.
	if p.ctx.Err() != nil {
		return
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		markCached(url)
	}
}

// Cancel stops in-flight loads for this preloader.
func (p *Preloader) Cancel() {
	p.cancel()
}

// Wait blocks until started loads finish or are cancelled.
func (p *Preloader) Wait() {
	p.wg.Wait()
}

// NextPageURLs computes the URL set for the page after the current one,
// for prefetching one page ahead.
func NextPageURLs[T any](items []T, currentPage, pageSize int, urlOf func(T) string) []string {
	if currentPage < 1 || pageSize < 1 {
		return nil
	}
	start := currentPage * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	urls := make([]string, 0, end-start)
	for _, it := range items[start:end] {
		if u := urlOf(it); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// URLs extracts the non-empty image URLs of a batch of items.
func URLs[T any](items []T, urlOf func(T) string) []string {
	urls := make([]string, 0, len(items))
	for _, it := range items {
		if u := urlOf(it); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
