// internal/domain/shop/product_test.go
package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Pane", Price: "3€"},
		{ID: "p2", Name: "Focaccia", Price: "5€"},
		{ID: "p3", Name: "Grissini", Price: "2€"},
	}
}

func TestUpsertProduct_AppendWhenNew(t *testing.T) {
	in := sampleProducts()
	item := Product{ID: "p4", Name: "Taralli", Price: "4€"}

	out := UpsertProduct(in, item)

	require.Len(t, out, 4)
	assert.Equal(t, item, out[3], "new item goes last")
	assert.Equal(t, sampleProducts(), in, "input must not be mutated")
	assert.Equal(t, sampleProducts(), out[:3])
}

func TestUpsertProduct_ReplaceInPlace(t *testing.T) {
	in := sampleProducts()
	item := Product{ID: "p1", Name: "Pane", Price: "4€"}

	out := UpsertProduct(in, item)

	require.Len(t, out, 3)
	assert.Equal(t, item, out[0], "position preserved on replace")
	assert.Equal(t, in[1], out[1])
	assert.Equal(t, in[2], out[2])
	assert.Equal(t, "3€", in[0].Price, "input must not be mutated")
}

func TestUpsertProduct_EmptyCollection(t *testing.T) {
	out := UpsertProduct(nil, Product{ID: "p1", Name: "Pane", Price: "3€"})

	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}

func TestUpsertProduct_ReplaceIsIdempotent(t *testing.T) {
	item := Product{ID: "p2", Name: "Focaccia", Price: "6€"}

	once := UpsertProduct(sampleProducts(), item)
	twice := UpsertProduct(once, item)

	assert.Equal(t, once, twice)
}

func TestDeleteProduct(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantIDs []string
	}{
		{name: "existing id removed, order kept", id: "p2", wantIDs: []string{"p1", "p3"}},
		{name: "first element", id: "p1", wantIDs: []string{"p2", "p3"}},
		{name: "unknown id is a no-op", id: "nonexistent", wantIDs: []string{"p1", "p2", "p3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := DeleteProduct(sampleProducts(), tt.id)

			got := make([]string, 0, len(out))
			for _, p := range out {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestDeleteProduct_Idempotent(t *testing.T) {
	once := DeleteProduct(sampleProducts(), "p2")
	twice := DeleteProduct(once, "p2")

	assert.Equal(t, once, twice)
}

func TestDeleteProduct_DoesNotMutateInput(t *testing.T) {
	in := sampleProducts()
	_ = DeleteProduct(in, "p1")

	assert.Equal(t, sampleProducts(), in)
}
