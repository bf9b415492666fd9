package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/AleSenlle/el-brote-verde/models"
	"github.com/AleSenlle/el-brote-verde/validation"
)

// CategoryAll is the sentinel leading every category list.
const CategoryAll = "all"

// Event actions broadcast to product subscribers.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// Event describes one product mutation that made it through the remote
// API.
type Event struct {
	Action  string         `json:"action"`
	Product models.Product `json:"product"`
}

// ProductStore is a write-through cache over the remote collection:
// mutations validate locally, round-trip through the API, and only then
// touch the cached copy. A failed remote call leaves the cache as it
// was.
type ProductStore struct {
	mu        sync.RWMutex
	api       *ProductAPI
	products  []models.Product
	listeners []func(Event)
}

// NewProductStore builds a store over the given API client.
func NewProductStore(api *ProductAPI) *ProductStore {
	return &ProductStore{api: api}
}

// Subscribe registers fn to be called after every successful mutation.
// The admin websocket feed hangs off this.
func (s *ProductStore) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *ProductStore) emit(ev Event) {
	for _, fn := range s.listeners {
		fn(ev)
	}
}

// Fetch replaces the cache with a page from the remote collection.
func (s *ProductStore) Fetch(ctx context.Context, page, limit int) error {
	products, err := s.api.FetchProducts(ctx, page, limit)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	return nil
}

// Products returns a copy of the cached records.
func (s *ProductStore) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

// Create validates, posts, then prepends the created record.
func (s *ProductStore) Create(ctx context.Context, data models.Product) (models.Product, error) {
	if err := validation.ValidateProduct(data); err != nil {
		return models.Product{}, err
	}
	created, err := s.api.CreateProduct(ctx, data)
	if err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	s.products = append([]models.Product{created}, s.products...)
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(Event{Action: EventCreated, Product: created})
	}
	return created, nil
}

// Update validates, puts, then replaces the matching cached record.
func (s *ProductStore) Update(ctx context.Context, id string, data models.Product) (models.Product, error) {
	if err := validation.ValidateProduct(data); err != nil {
		return models.Product{}, err
	}
	updated, err := s.api.UpdateProduct(ctx, id, data)
	if err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = updated
			break
		}
	}
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(Event{Action: EventUpdated, Product: updated})
	}
	return updated, nil
}

// Delete removes remotely, then filters the cache.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}

	var deleted models.Product
	s.mu.Lock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID == id {
			deleted = p
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(Event{Action: EventDeleted, Product: deleted})
	}
	return nil
}

// Filtered applies the active search term (case-insensitive substring
// over name, scientific name, description and family) and a category
// filter (exact family match, or "all").
func (s *ProductStore) Filtered(search, category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && category != CategoryAll && p.Family != category {
			continue
		}
		if term != "" && !productMatches(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func productMatches(p models.Product, term string) bool {
	for _, v := range []string{p.Name, p.ScientificName, p.Description, p.Family} {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// Categories returns the sorted distinct non-empty families, with the
// "all" sentinel first.
func (s *ProductStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]struct{}{}
	for _, p := range s.products {
		if p.Family != "" {
			seen[p.Family] = struct{}{}
		}
	}
	families := make([]string, 0, len(seen))
	for f := range seen {
		families = append(families, f)
	}
	sort.Strings(families)
	return append([]string{CategoryAll}, families...)
}
