// internal/domain/shop/product.go
package shop

// MaxProducts is the advisory per-shop product cap.
// The mutators below do not enforce it; callers pre-check before upserting
// (the shop form refuses to add a 21st product).
const MaxProducts = 20

// MaxProductImages caps the image references carried by a single product.
const MaxProductImages = 4

// Product is one line of a shop's product showcase.
// Price is an opaque display string ("3€", "da 15€", ...).
type Product struct {
	ID          string   `json:"id" firestore:"id"`
	Name        string   `json:"name" firestore:"name"`
	Images      []string `json:"images" firestore:"images"`
	Price       string   `json:"price" firestore:"price"`
	Description string   `json:"description" firestore:"description"`
}

// UpsertProduct returns the next product collection:
//   - if an entry with item.ID exists, it is replaced in place (same position,
//     everything else untouched);
//   - otherwise item is appended at the end.
//
// Pure: the input slice is never modified. Precondition: ids in products are
// unique; a duplicate-id input is a caller bug and is not detected here.
func UpsertProduct(products []Product, item Product) []Product {
	next := make([]Product, len(products))
	copy(next, products)

	for i := range next {
		if next[i].ID == item.ID {
			next[i] = item
			return next
		}
	}
	return append(next, item)
}

// DeleteProduct returns the collection without the entry whose id matches.
// Unknown ids are a no-op: the result equals the input.
func DeleteProduct(products []Product, id string) []Product {
	next := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == id {
			continue
		}
		next = append(next, p)
	}
	return next
}
