package helpers

import (
	"fmt"
	"math"
)

// CanAddToCart reports whether the add-to-cart action is available:
// the plant must be in stock, not already being added, and the user
// must be logged in.
func CanAddToCart(inStock, isAdding, isAuthenticated bool) bool {
	return inStock && !isAdding && isAuthenticated
}

// AddButtonTooltip returns the hint shown over the add-to-cart button.
func AddButtonTooltip(isAuthenticated, inStock bool) string {
	if !isAuthenticated {
		return "Log in to buy"
	}
	if !inStock {
		return "Out of stock"
	}
	return "Add to cart"
}

// AddButtonLabel returns the accessible label for the add button.
func AddButtonLabel(isAuthenticated, inStock bool, plantName string) string {
	if !isAuthenticated {
		return "Log in to buy"
	}
	if !inStock {
		return "Out of stock"
	}
	return fmt.Sprintf("Add %s to cart", plantName)
}

// AddButtonText returns the button caption. The second return is false
// when the caller should render its default caption instead.
func AddButtonText(isAuthenticated, isAdding, inStock bool, currentQuantity int) (string, bool) {
	if !isAuthenticated {
		return "Log in", true
	}
	if isAdding {
		return "Adding...", true
	}
	if !inStock {
		return "No stock", true
	}
	if currentQuantity > 0 {
		return fmt.Sprintf("Add (%d)", currentQuantity), true
	}
	return "", false
}

// IsValidPrice reports whether a price is a positive finite number.
func IsValidPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price > 0
}

// FormatRating renders a rating with one decimal, "0.0" for garbage.
func FormatRating(rating float64) string {
	if math.IsNaN(rating) || rating <= 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", rating)
}

// StarCounts splits a rating into filled and empty stars out of five.
func StarCounts(rating float64) (filled, empty int) {
	if rating < 0 || math.IsNaN(rating) {
		rating = 0
	}
	filled = int(math.Floor(rating))
	if filled > 5 {
		filled = 5
	}
	return filled, 5 - filled
}
