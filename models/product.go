package models

import "time"

// Product is a catalog entry owned by the remote collection API. The
// local copy in the product store is a write-through cache: it only
// changes after the remote call succeeds.
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ScientificName string    `json:"scientific_name"`
	Family         string    `json:"family"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	Image          string    `json:"image"`
	InStock        bool      `json:"inStock"`
	Rating         float64   `json:"rating"`
	CreatedAt      time.Time `json:"createdAt"`
}
