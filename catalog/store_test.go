package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/AleSenlle/el-brote-verde/models"
	"github.com/AleSenlle/el-brote-verde/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() models.Product {
	return models.Product{
		Name:           "Lavender",
		ScientificName: "Lavandula angustifolia",
		Family:         "Lamiaceae",
		Price:          19.99,
		Image:          "https://images.example.com/lavender.jpg",
	}
}

func TestCreateValidationFailsWithoutNetworkCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	s := NewProductStore(NewProductAPI(srv.URL))
	_, err := s.Create(context.Background(), models.Product{Name: "x"})
	require.Error(t, err)

	var perr *validation.ProductError
	assert.ErrorAs(t, err, &perr)
	assert.Zero(t, atomic.LoadInt32(&calls))
	assert.Empty(t, s.Products())
}

func TestCreatePrependsOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p models.Product
		json.NewDecoder(r.Body).Decode(&p)
		p.ID = "new"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	s := NewProductStore(NewProductAPI(srv.URL))
	seedCache(s, models.Product{ID: "old", Name: "Old"})

	created, err := s.Create(context.Background(), validProduct())
	require.NoError(t, err)
	assert.Equal(t, "new", created.ID)

	products := s.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "new", products[0].ID, "create prepends")
	assert.Equal(t, "old", products[1].ID)
}

func TestRemoteFailureLeavesCacheUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewProductStore(NewProductAPI(srv.URL))
	seedCache(s, models.Product{ID: "1", Name: "Keep"})

	_, err := s.Create(context.Background(), validProduct())
	assert.Error(t, err)
	_, err = s.Update(context.Background(), "1", validProduct())
	assert.Error(t, err)
	err = s.Delete(context.Background(), "1")
	assert.Error(t, err)

	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Keep", products[0].Name)
}

func TestUpdateReplacesById(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p models.Product
		json.NewDecoder(r.Body).Decode(&p)
		p.ID = "2"
		json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	s := NewProductStore(NewProductAPI(srv.URL))
	seedCache(s, models.Product{ID: "1", Name: "One"}, models.Product{ID: "2", Name: "Two"})

	updated := validProduct()
	_, err := s.Update(context.Background(), "2", updated)
	require.NoError(t, err)

	products := s.Products()
	assert.Equal(t, "One", products[0].Name)
	assert.Equal(t, "Lavender", products[1].Name)
}

func TestDeleteFiltersCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewProductStore(NewProductAPI(srv.URL))
	seedCache(s, models.Product{ID: "1"}, models.Product{ID: "2"})

	require.NoError(t, s.Delete(context.Background(), "1"))
	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "2", products[0].ID)
}

func TestSubscribeSeesMutations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		var p models.Product
		json.NewDecoder(r.Body).Decode(&p)
		p.ID = "7"
		json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	s := NewProductStore(NewProductAPI(srv.URL))
	var events []Event
	s.Subscribe(func(ev Event) { events = append(events, ev) })

	_, err := s.Create(context.Background(), validProduct())
	require.NoError(t, err)
	require.NoError(t, s.Delete(context.Background(), "7"))

	require.Len(t, events, 2)
	assert.Equal(t, EventCreated, events[0].Action)
	assert.Equal(t, EventDeleted, events[1].Action)
	assert.Equal(t, "7", events[1].Product.ID)
}

func TestFilteredAndCategories(t *testing.T) {
	s := NewProductStore(NewProductAPI(""))
	seedCache(s,
		models.Product{ID: "1", Name: "Red Rose", ScientificName: "Rosa rubiginosa", Family: "Rosaceae"},
		models.Product{ID: "2", Name: "Lavender", ScientificName: "Lavandula", Family: "Lamiaceae", Description: "fragrant herb"},
		models.Product{ID: "3", Name: "Daisy", Family: "Asteraceae"},
	)

	assert.Len(t, s.Filtered("", CategoryAll), 3)
	assert.Len(t, s.Filtered("ROSE", CategoryAll), 1)
	assert.Len(t, s.Filtered("fragrant", CategoryAll), 1)
	assert.Len(t, s.Filtered("", "Lamiaceae"), 1)
	assert.Empty(t, s.Filtered("rose", "Lamiaceae"))

	assert.Equal(t, []string{CategoryAll, "Asteraceae", "Lamiaceae", "Rosaceae"}, s.Categories())
}

// seedCache plants records into the cache directly, standing in for a
// prior Fetch.
func seedCache(s *ProductStore, products ...models.Product) {
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
}
