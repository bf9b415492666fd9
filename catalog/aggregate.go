package catalog

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"sync"

	"github.com/AleSenlle/el-brote-verde/helpers"
	"github.com/AleSenlle/el-brote-verde/models"
)

type priceRange struct {
	min, max float64
}

// Trefle has no prices, so external records get a mock price drawn from
// a range keyed by botanical family.
var familyPriceRanges = map[string]priceRange{
	"Rosaceae":    {25, 60},
	"Asteraceae":  {15, 35},
	"Lamiaceae":   {12, 30},
	"Poaceae":     {8, 20},
	"Orchidaceae": {30, 80},
}

var fallbackPriceRange = priceRange{10, 40}

// MockAPIPlantID builds the source-prefixed ID for a product record.
func MockAPIPlantID(id string) string {
	return models.SourceMockAPI + "-" + id
}

// TreflePlantID builds the source-prefixed ID for a botanical record.
func TreflePlantID(id int) string {
	return models.SourceTrefle + "-" + strconv.Itoa(id)
}

// Aggregator merges the product store with the optional external
// botanical source into the unified plant list. Product-store records
// always come first; the external source degrades to nothing on any
// failure.
type Aggregator struct {
	products *ProductStore
	trefle   *TrefleClient

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAggregator builds an aggregator. trefle may be nil or disabled.
func NewAggregator(products *ProductStore, trefle *TrefleClient, seed int64) *Aggregator {
	return &Aggregator{
		products: products,
		trefle:   trefle,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Plants returns the combined catalog: every product-store record as a
// mockapi-prefixed plant, then the enriched external records, each
// source in its own order.
func (a *Aggregator) Plants(ctx context.Context) []models.Plant {
	plants := a.AdminPlants()

	if !a.trefle.Enabled() {
		return plants
	}
	raw, err := a.trefle.FetchPlants(ctx)
	if err != nil {
		// Degrade to product-store data only.
		log.Printf("⚠️ Trefle fetch failed, serving catalog without external plants: %v", err)
		return plants
	}
	for _, tp := range raw {
		if tp.CommonName == "" {
			continue
		}
		plants = append(plants, a.enrich(tp))
	}
	return plants
}

// AdminPlants returns product-store records only. Admin views never
// merge the external source.
func (a *Aggregator) AdminPlants() []models.Plant {
	products := a.products.Products()
	plants := make([]models.Plant, 0, len(products))
	for _, p := range products {
		plants = append(plants, FromProduct(p))
	}
	return plants
}

// FindPlant looks a plant up by its prefixed ID in the combined list.
func (a *Aggregator) FindPlant(ctx context.Context, id string) (models.Plant, bool) {
	for _, p := range a.Plants(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return models.Plant{}, false
}

// FromProduct converts a catalog product into the unified plant shape.
func FromProduct(p models.Product) models.Plant {
	return models.Plant{
		ID:             MockAPIPlantID(p.ID),
		CommonName:     p.Name,
		ScientificName: p.ScientificName,
		Family:         p.Family,
		Description:    p.Description,
		ImageURL:       p.Image,
		Price:          p.Price,
		InStock:        p.InStock,
		Rating:         p.Rating,
		Source:         models.SourceMockAPI,
	}
}

// enrich fills the fields Trefle does not have: a mock price from the
// family range, in stock with 90% probability, rating in [3.0, 5.0].
func (a *Aggregator) enrich(tp TreflePlant) models.Plant {
	a.mu.Lock()
	r := familyPriceRanges[tp.Family]
	if r.max == 0 {
		r = fallbackPriceRange
	}
	price := helpers.RoundPrice(a.rng.Float64()*(r.max-r.min) + r.min)
	inStock := a.rng.Float64() > 0.1
	rating := float64(int((a.rng.Float64()*2+3)*10)) / 10
	a.mu.Unlock()

	family := tp.Family
	if family == "" {
		family = "Unknown family"
	}
	return models.Plant{
		ID:             TreflePlantID(tp.ID),
		CommonName:     tp.CommonName,
		ScientificName: tp.ScientificName,
		Family:         family,
		ImageURL:       tp.ImageURL,
		Price:          price,
		InStock:        inStock,
		Rating:         rating,
		Source:         models.SourceTrefle,
	}
}
