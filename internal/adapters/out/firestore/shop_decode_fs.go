// internal/adapters/out/firestore/shop_decode_fs.go
package firestore

import (
	"fmt"
	"strings"

	shopdom "borgo/internal/domain/shop"
)

// shopFromSnapshotData parses raw snapshot data with backward compatibility:
// documents written by older clients may miss fields or carry numbers as
// int64/float64 interchangeably. Nested entries without an id are skipped.
func shopFromSnapshotData(raw map[string]any) *shopdom.Shop {
	s := &shopdom.Shop{
		GalleryImages: []string{},
		Products:      []shopdom.Product{},
		Coupons:       []shopdom.Coupon{},
		Reviews:       []shopdom.Review{},
	}
	if raw == nil {
		return s
	}

	s.ID = asString(raw["id"])
	s.OwnerID = asString(raw["ownerId"])
	s.Name = asString(raw["name"])
	s.CardImage = asString(raw["cardImage"])
	s.Category = shopdom.Category(asString(raw["category"]))
	s.Description = asString(raw["description"])
	s.LongDescription = asString(raw["longDescription"])
	s.IsFeatured = asBool(raw["isFeatured"])
	s.Address = asString(raw["address"])
	s.Lat = asFloat(raw["lat"])
	s.Lng = asFloat(raw["lng"])
	s.GalleryImages = asStringSlice(raw["galleryImages"])
	s.Rating = asFloat(raw["rating"])
	s.ReviewCount = asInt(raw["reviewCount"])

	for _, v := range asSlice(raw["products"]) {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		id := strings.TrimSpace(asString(m["id"]))
		if id == "" {
			continue
		}
		s.Products = append(s.Products, shopdom.Product{
			ID:          id,
			Name:        asString(m["name"]),
			Images:      asStringSlice(m["images"]),
			Price:       asString(m["price"]),
			Description: asString(m["description"]),
		})
	}

	for _, v := range asSlice(raw["coupons"]) {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		id := strings.TrimSpace(asString(m["id"]))
		if id == "" {
			continue
		}
		c := shopdom.Coupon{
			ID:          id,
			Code:        asString(m["code"]),
			Description: asString(m["description"]),
			Type:        shopdom.CouponType(asString(m["type"])),
			Value:       asFloat(m["value"]),
		}
		if mv, ok := m["minValue"]; ok && mv != nil {
			f := asFloat(mv)
			c.MinValue = &f
		}
		s.Coupons = append(s.Coupons, c)
	}

	for _, v := range asSlice(raw["reviews"]) {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		id := strings.TrimSpace(asString(m["id"]))
		if id == "" {
			continue
		}
		s.Reviews = append(s.Reviews, shopdom.Review{
			ID:          id,
			Author:      asString(m["author"]),
			Rating:      asInt(m["rating"]),
			Comment:     asString(m["comment"]),
			AuthorImage: asString(m["authorImage"]),
		})
	}

	return s
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float32:
		return int(t)
	case float64:
		return int(t)
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return 0
	}
}

func asSlice(v any) []any {
	xs, _ := v.([]any)
	return xs
}

func asStringSlice(v any) []string {
	out := []string{}
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		for _, x := range t {
			if s := asString(x); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
