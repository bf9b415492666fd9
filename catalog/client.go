// Package catalog talks to the two product sources, the remote
// collection API and the optional Trefle botanical API, and merges them
// into the unified plant list the storefront serves.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/AleSenlle/el-brote-verde/models"
)

// DefaultMockAPIURL is the remote collection used when MOCKAPI_URL is
// not set.
const DefaultMockAPIURL = "https://693896a04618a71d77d0bcc2.mockapi.io"

const requestTimeout = 10 * time.Second

// APIError is a non-2xx reply from the remote collection. Message comes
// from the response body when it has one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote API error (%d): %s", e.Status, e.Message)
}

// ProductAPI is the client for the remote product collection.
type ProductAPI struct {
	baseURL string
	client  *http.Client
}

// NewProductAPI builds a client with the fixed 10s request timeout.
func NewProductAPI(baseURL string) *ProductAPI {
	if baseURL == "" {
		baseURL = DefaultMockAPIURL
	}
	return &ProductAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// FetchProducts lists a page of products, newest first.
func (a *ProductAPI) FetchProducts(ctx context.Context, page, limit int) ([]models.Product, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("sortBy", "createdAt")
	q.Set("order", "desc")

	var products []models.Product
	if err := a.do(ctx, http.MethodGet, "/products?"+q.Encode(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct posts a new product. The server assigns the ID; the
// client stamps createdAt, as the storefront always did.
func (a *ProductAPI) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = ""
	p.CreatedAt = time.Now().UTC()

	var created models.Product
	if err := a.do(ctx, http.MethodPost, "/products", p, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// UpdateProduct replaces the product with the given ID.
func (a *ProductAPI) UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error) {
	var updated models.Product
	if err := a.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), p, &updated); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes the product with the given ID.
func (a *ProductAPI) DeleteProduct(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

func (a *ProductAPI) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: "request failed"}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		apiErr.Message = body.Message
	}
	return apiErr
}
