// internal/domain/shop/entity_test.go
package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShop(t *testing.T) {
	s, err := NewShop("", "esercente@example.com", "Trattoria da Gino", CategoryRistoranti)

	require.NoError(t, err)
	assert.Empty(t, s.ID, "docId assigned by the store on insert")
	assert.Equal(t, "esercente@example.com", s.OwnerID)
	assert.Zero(t, s.Rating)
	assert.Zero(t, s.ReviewCount)
	assert.Empty(t, s.Products)
	assert.Empty(t, s.Coupons)
	assert.Empty(t, s.Reviews)
}

func TestNewShop_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		owner    string
		shopName string
		category Category
	}{
		{name: "missing owner", owner: "", shopName: "X", category: CategoryNegozi},
		{name: "missing name", owner: "a@b.it", shopName: " ", category: CategoryNegozi},
		{name: "bad category", owner: "a@b.it", shopName: "X", category: Category("Altro")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShop("", tt.owner, tt.shopName, tt.category)
			assert.ErrorIs(t, err, ErrInvalidShop)
		})
	}
}

func TestValidate_DuplicateNestedIDs(t *testing.T) {
	s := sampleShop()
	s.Products = append(s.Products, Product{ID: "p1", Name: "dup"})

	assert.ErrorIs(t, s.Validate(), ErrInvalidShop)
}

func TestValidate_DuplicateReviewIDs(t *testing.T) {
	s := sampleShop()
	s.Reviews = []Review{{ID: "r1", Rating: 4}, {ID: "r1", Rating: 5}}

	assert.ErrorIs(t, s.Validate(), ErrInvalidShop)
}

func TestOwnedBy(t *testing.T) {
	s := sampleShop()

	assert.True(t, s.OwnedBy("esercente@example.com"))
	assert.False(t, s.OwnedBy("altro@example.com"))
	assert.False(t, s.OwnedBy(""))
}

func TestCategories(t *testing.T) {
	cats := Categories()

	require.Len(t, cats, 5)
	for _, c := range cats {
		assert.True(t, c.IsValid())
	}
}
