package validation

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/AleSenlle/el-brote-verde/models"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// ProductError carries per-field validation messages for a product
// form. It is raised before any network call is made.
type ProductError struct {
	Fields map[string]string
}

func (e *ProductError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// IsValidURL reports whether s parses as an http(s) URL.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsImageURL reports whether the URL looks like it points at an image.
func IsImageURL(s string) bool {
	lower := strings.ToLower(s)
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

// ValidateProduct checks every field and returns a ProductError listing
// all problems, or nil when the product is acceptable.
func ValidateProduct(p models.Product) error {
	errs := map[string]string{}

	if f := ValidateField("name", p.Name); f != "" {
		errs["name"] = f
	}
	if f := ValidateField("scientific_name", p.ScientificName); f != "" {
		errs["scientific_name"] = f
	}
	if f := ValidateField("family", p.Family); f != "" {
		errs["family"] = f
	}
	if p.Price <= 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		errs["price"] = "price is required and must be greater than 0"
	}
	if f := ValidateField("image", p.Image); f != "" {
		errs["image"] = f
	}
	if f := ValidateField("description", p.Description); f != "" {
		errs["description"] = f
	}

	if len(errs) > 0 {
		return &ProductError{Fields: errs}
	}
	return nil
}

// ValidateField checks a single string field and returns an error
// message, or "" when the value is fine.
func ValidateField(name, value string) string {
	switch name {
	case "name":
		if strings.TrimSpace(value) == "" {
			return "product name is required"
		}
		if len(strings.TrimSpace(value)) < 3 {
			return "name must be at least 3 characters"
		}
	case "scientific_name":
		if strings.TrimSpace(value) == "" {
			return "scientific name is required"
		}
		if len(strings.TrimSpace(value)) < 3 {
			return "scientific name must be at least 3 characters"
		}
	case "family":
		if strings.TrimSpace(value) == "" {
			return "botanical family is required"
		}
		if len(strings.TrimSpace(value)) < 3 {
			return "family must be at least 3 characters"
		}
	case "image":
		if strings.TrimSpace(value) == "" {
			return "image URL is required"
		}
		if !IsValidURL(value) {
			return "enter a valid URL (must start with http:// or https://)"
		}
		if !IsImageURL(value) {
			return "URL must point at an image (jpg, png, gif, webp)"
		}
	case "description":
		if strings.TrimSpace(value) != "" && len(strings.TrimSpace(value)) < 10 {
			return "description must be at least 10 characters, or empty"
		}
	}
	return ""
}
