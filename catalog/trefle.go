package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Fixed request shape the storefront always used against Trefle.
const (
	treflePage    = 1
	treflePerPage = 20
)

// TreflePlant is one raw record from the botanical API.
type TreflePlant struct {
	ID             int    `json:"id"`
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
	Family         string `json:"family"`
	ImageURL       string `json:"image_url"`
}

// TrefleClient fetches botanical records. It is optional: callers
// treat any failure here as an empty result.
type TrefleClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewTrefleClient builds a client. An empty baseURL disables the
// external source entirely.
func NewTrefleClient(baseURL, token string) *TrefleClient {
	return &TrefleClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Enabled reports whether an external source is configured.
func (t *TrefleClient) Enabled() bool {
	return t != nil && t.baseURL != ""
}

// FetchPlants pulls one fixed-size page of botanical records.
func (t *TrefleClient) FetchPlants(ctx context.Context) ([]TreflePlant, error) {
	q := url.Values{}
	q.Set("token", t.token)
	q.Set("page", fmt.Sprint(treflePage))
	q.Set("per_page", fmt.Sprint(treflePerPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/plants?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("trefle: HTTP %d", resp.StatusCode)
	}

	var body struct {
		Data []TreflePlant `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("trefle: malformed body: %w", err)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("trefle: response missing data array")
	}
	return body.Data, nil
}
