package models

// Plant sources. The raw IDs of the two origins may collide, so every
// Plant carries a source-prefixed ID ("mockapi-12", "trefle-12").
const (
	SourceMockAPI = "mockapi"
	SourceTrefle  = "trefle"
)

// Plant is the unified, display-only record the catalog serves. It is
// never persisted; it is recomputed from the underlying sources.
type Plant struct {
	ID             string  `json:"id"`
	CommonName     string  `json:"common_name"`
	ScientificName string  `json:"scientific_name"`
	Family         string  `json:"family"`
	Description    string  `json:"description,omitempty"`
	ImageURL       string  `json:"image_url"`
	Price          float64 `json:"price"`
	InStock        bool    `json:"inStock"`
	Rating         float64 `json:"rating"`
	Source         string  `json:"source"`
}
