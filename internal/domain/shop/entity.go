// internal/domain/shop/entity.go
package shop

import (
	"errors"
	"strings"
)

var (
	ErrInvalidShop = errors.New("shop: invalid")
)

// Category is one of the fixed directory categories shown in the Piazza sidebar.
type Category string

const (
	CategoryRistoranti Category = "Ristoranti"
	CategoryNegozi     Category = "Negozi"
	CategoryBellezza   Category = "Bellezza"
	CategoryBenessere  Category = "Benessere"
	CategoryServizi    Category = "Servizi"
)

// Categories lists every valid category in sidebar order.
func Categories() []Category {
	return []Category{
		CategoryRistoranti,
		CategoryNegozi,
		CategoryBellezza,
		CategoryBenessere,
		CategoryServizi,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRistoranti, CategoryNegozi, CategoryBellezza, CategoryBenessere, CategoryServizi:
		return true
	}
	return false
}

// Shop represents "a shop document".
//   - docId = shop id (Firestore)
//   - OwnerID is set once at creation from the creating merchant and never changes.
//   - Rating / ReviewCount are derived from Reviews; callers must not set them
//     directly. They are recomputed by AppendReview.
//   - Products / Coupons / Reviews are owned exclusively by this document and
//     are always written back whole.
type Shop struct {
	// ID is the Firestore docId.
	ID string `json:"id" firestore:"id"`

	// OwnerID is the merchant's email, immutable after creation.
	OwnerID string `json:"ownerId" firestore:"ownerId"`

	Name            string   `json:"name" firestore:"name"`
	CardImage       string   `json:"cardImage" firestore:"cardImage"`
	Category        Category `json:"category" firestore:"category"`
	Description     string   `json:"description" firestore:"description"`
	LongDescription string   `json:"longDescription" firestore:"longDescription"`
	IsFeatured      bool     `json:"isFeatured" firestore:"isFeatured"`

	Address string  `json:"address" firestore:"address"`
	Lat     float64 `json:"lat" firestore:"lat"`
	Lng     float64 `json:"lng" firestore:"lng"`

	GalleryImages []string `json:"galleryImages" firestore:"galleryImages"`

	// Derived rating summary (see AppendReview).
	Rating      float64 `json:"rating" firestore:"rating"`
	ReviewCount int     `json:"reviewCount" firestore:"reviewCount"`

	Products []Product `json:"products" firestore:"products"`
	Coupons  []Coupon  `json:"coupons" firestore:"coupons"`
	Reviews  []Review  `json:"reviews" firestore:"reviews"`
}

// NewShop creates a shop with empty collections and a zero rating summary.
// id may be empty when the store assigns the docId on insert.
func NewShop(id, ownerID, name string, category Category) (*Shop, error) {
	s := &Shop{
		ID:            strings.TrimSpace(id),
		OwnerID:       strings.TrimSpace(ownerID),
		Name:          strings.TrimSpace(name),
		Category:      category,
		GalleryImages: []string{},
		Rating:        0,
		ReviewCount:   0,
		Products:      []Product{},
		Coupons:       []Coupon{},
		Reviews:       []Review{},
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks invariants that must hold for a shop to be persisted.
// Nested item ids are checked for uniqueness within their collection.
func (s *Shop) Validate() error {
	if s == nil {
		return ErrInvalidShop
	}
	if strings.TrimSpace(s.OwnerID) == "" {
		return ErrInvalidShop
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrInvalidShop
	}
	if !s.Category.IsValid() {
		return ErrInvalidShop
	}

	seen := map[string]struct{}{}
	for _, p := range s.Products {
		if strings.TrimSpace(p.ID) == "" {
			return ErrInvalidShop
		}
		if _, dup := seen[p.ID]; dup {
			return ErrInvalidShop
		}
		seen[p.ID] = struct{}{}
	}

	seen = map[string]struct{}{}
	for _, c := range s.Coupons {
		if strings.TrimSpace(c.ID) == "" {
			return ErrInvalidShop
		}
		if _, dup := seen[c.ID]; dup {
			return ErrInvalidShop
		}
		seen[c.ID] = struct{}{}
	}

	seen = map[string]struct{}{}
	for _, r := range s.Reviews {
		if strings.TrimSpace(r.ID) == "" {
			return ErrInvalidShop
		}
		if _, dup := seen[r.ID]; dup {
			return ErrInvalidShop
		}
		seen[r.ID] = struct{}{}
	}

	return nil
}

// OwnedBy reports whether email matches the shop owner.
func (s *Shop) OwnedBy(email string) bool {
	if s == nil {
		return false
	}
	e := strings.TrimSpace(email)
	return e != "" && e == strings.TrimSpace(s.OwnerID)
}
