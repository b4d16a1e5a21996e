// internal/domain/shop/repository_port.go
package shop

import "context"

// Repository is the persistence port for Shop.
//
// Storage design (Firestore):
// - collection: shops
// - docId: shop id (server-assigned on Create)
// - nested collections live inside the document as arrays and are always
//   replaced whole; there is no item-level addressing at the store.
//
// Not-found policy: Get* return (nil, nil) when the document is missing.
//
// Concurrency: the Replace* methods implement last-write-wins at whole
// collection granularity. Two concurrent edits of the same shop can overwrite
// each other's nested-collection change; that is the accepted behavior of the
// surrounding system, not something this port corrects.
type Repository interface {
	// GetAll returns every shop in the directory.
	GetAll(ctx context.Context) ([]*Shop, error)

	// GetByID returns one shop, or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*Shop, error)

	// Create inserts s and returns the assigned docId.
	Create(ctx context.Context, s *Shop) (string, error)

	// UpdateProfile rewrites the profile fields of s (never OwnerID, never
	// the nested collections or the rating summary).
	UpdateProfile(ctx context.Context, s *Shop) error

	// Delete removes the document and, with it, every nested item.
	Delete(ctx context.Context, id string) error

	// ReplaceProducts writes the whole products field.
	ReplaceProducts(ctx context.Context, shopID string, products []Product) error

	// ReplaceCoupons writes the whole coupons field.
	ReplaceCoupons(ctx context.Context, shopID string, coupons []Coupon) error

	// ReplaceReviews writes the whole reviews field together with the derived
	// rating summary in a single update.
	ReplaceReviews(ctx context.Context, shopID string, reviews []Review, summary RatingSummary) error
}
