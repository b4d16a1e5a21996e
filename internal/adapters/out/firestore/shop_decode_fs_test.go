// internal/adapters/out/firestore/shop_decode_fs_test.go
package firestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shopdom "borgo/internal/domain/shop"
)

func TestShopFromSnapshotData_FullDocument(t *testing.T) {
	raw := map[string]any{
		"ownerId":         "esercente@example.com",
		"name":            "Panificio Rossi",
		"category":        "Negozi",
		"description":     "Pane fresco",
		"longDescription": "Dal 1950 nel centro del borgo.",
		"isFeatured":      true,
		"address":         "Via Roma 1",
		"lat":             44.41,
		"lng":             8.93,
		"rating":          int64(4), // Firestore returns integers as int64
		"reviewCount":     int64(2),
		"galleryImages":   []any{"g1.jpg", "g2.jpg"},
		"products": []any{
			map[string]any{"id": "p1", "name": "Pane", "price": "3€", "images": []any{"a.jpg"}},
			map[string]any{"name": "senza id, scartato"},
		},
		"coupons": []any{
			map[string]any{"id": "c1", "code": "BORGO10", "type": "percentage", "value": int64(10)},
			map[string]any{"id": "c2", "code": "SOPRA30", "type": "conditional", "value": 5.0, "minValue": int64(30)},
		},
		"reviews": []any{
			map[string]any{"id": "r1", "author": "Anna", "rating": int64(5), "comment": "Ottimo"},
			map[string]any{"id": "r2", "author": "Marco", "rating": int64(3)},
		},
	}

	s := shopFromSnapshotData(raw)

	assert.Equal(t, "esercente@example.com", s.OwnerID)
	assert.Equal(t, shopdom.CategoryNegozi, s.Category)
	assert.True(t, s.IsFeatured)
	assert.Equal(t, 4.0, s.Rating)
	assert.Equal(t, 2, s.ReviewCount)
	assert.Equal(t, []string{"g1.jpg", "g2.jpg"}, s.GalleryImages)

	require.Len(t, s.Products, 1, "entries without id are skipped")
	assert.Equal(t, "p1", s.Products[0].ID)
	assert.Equal(t, []string{"a.jpg"}, s.Products[0].Images)

	require.Len(t, s.Coupons, 2)
	assert.Equal(t, shopdom.CouponPercentage, s.Coupons[0].Type)
	assert.Equal(t, 10.0, s.Coupons[0].Value)
	assert.Nil(t, s.Coupons[0].MinValue)
	require.NotNil(t, s.Coupons[1].MinValue)
	assert.Equal(t, 30.0, *s.Coupons[1].MinValue)

	require.Len(t, s.Reviews, 2)
	assert.Equal(t, 5, s.Reviews[0].Rating)
}

func TestShopFromSnapshotData_EmptyAndNil(t *testing.T) {
	for _, raw := range []map[string]any{nil, {}} {
		s := shopFromSnapshotData(raw)

		assert.NotNil(t, s.Products)
		assert.NotNil(t, s.Coupons)
		assert.NotNil(t, s.Reviews)
		assert.NotNil(t, s.GalleryImages)
		assert.Zero(t, s.Rating)
	}
}

func TestShopFromSnapshotData_LenientTypes(t *testing.T) {
	s := shopFromSnapshotData(map[string]any{
		"rating":      4.5,
		"reviewCount": 7.0, // legacy clients wrote this as a double
		"lat":         int64(44),
	})

	assert.Equal(t, 4.5, s.Rating)
	assert.Equal(t, 7, s.ReviewCount)
	assert.Equal(t, 44.0, s.Lat)
}

func TestDocRoundTrip(t *testing.T) {
	min := 30.0
	shop := &shopdom.Shop{
		ID:          "s1",
		OwnerID:     "a@b.it",
		Name:        "Enoteca Bacco",
		Category:    shopdom.CategoryNegozi,
		Products:    []shopdom.Product{{ID: "p1", Name: "Barbera", Price: "12€"}},
		Coupons:     []shopdom.Coupon{{ID: "c1", Code: "VINO", Type: shopdom.CouponConditional, Value: 5, MinValue: &min}},
		Reviews:     []shopdom.Review{{ID: "r1", Author: "Anna", Rating: 4}},
		Rating:      4,
		ReviewCount: 1,
	}

	doc := shopDocFromDomain(shop)

	assert.Equal(t, "s1", doc.ID)
	require.Len(t, doc.Products, 1)
	assert.NotNil(t, doc.Products[0].Images, "firestore arrays written non-nil")
	require.Len(t, doc.Coupons, 1)
	assert.Equal(t, "conditional", doc.Coupons[0].Type)
	require.Len(t, doc.Reviews, 1)
	assert.Equal(t, 4, doc.Reviews[0].Rating)
}
