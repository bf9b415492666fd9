package storage

import (
	"encoding/json"
	"log"

	"github.com/AleSenlle/el-brote-verde/models"
)

// Session storage keys, kept as the storefront always named them.
const (
	KeyUser            = "user"
	KeyIsAuthenticated = "isAuthenticated"
)

// LoadCart rehydrates a persisted cart. A missing, unreadable or
// structurally invalid blob yields an empty state, never an error:
// worst case the customer starts with an empty cart.
func LoadCart(s *Store, key string) models.CartState {
	raw, ok, err := s.Get(key)
	if err != nil {
		log.Printf("⚠️ Failed to read cart %q, starting empty: %v", key, err)
		return models.CartState{}
	}
	if !ok {
		return models.CartState{}
	}

	var state models.CartState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Printf("⚠️ Corrupt cart blob %q, starting empty: %v", key, err)
		return models.CartState{}
	}
	if state.CartItems == nil {
		// Object without a cartItems array is not a cart.
		return models.CartState{}
	}
	// Quantities below 1 never persist through the machine; drop any
	// that slipped in from a hand-edited blob.
	items := state.CartItems[:0]
	for _, it := range state.CartItems {
		if it.ID != "" && it.Quantity >= 1 {
			items = append(items, it)
		}
	}
	state.CartItems = items
	return state
}

// SaveCart persists the full cart state under key.
func SaveCart(s *Store, key string, state models.CartState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}

// LoadSession returns the persisted user when the auth flag is set and
// the blob parses. Corrupt session data is cleared, matching the
// storefront's recovery path.
func LoadSession(s *Store) (models.User, bool) {
	flag, ok, err := s.Get(KeyIsAuthenticated)
	if err != nil || !ok || flag != "true" {
		return models.User{}, false
	}
	raw, ok, err := s.Get(KeyUser)
	if err != nil || !ok {
		return models.User{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("⚠️ Corrupt session blob, clearing session: %v", err)
		ClearSession(s)
		return models.User{}, false
	}
	return user, true
}

// SaveSession persists the user blob and sets the auth flag.
func SaveSession(s *Store, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.Set(KeyUser, string(raw)); err != nil {
		return err
	}
	return s.Set(KeyIsAuthenticated, "true")
}

// ClearSession removes both session keys.
func ClearSession(s *Store) {
	if err := s.Delete(KeyUser); err != nil {
		log.Printf("⚠️ Failed to clear user blob: %v", err)
	}
	if err := s.Delete(KeyIsAuthenticated); err != nil {
		log.Printf("⚠️ Failed to clear auth flag: %v", err)
	}
}
