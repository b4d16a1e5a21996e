// internal/application/query/catalog_query.go
package query

import (
	"context"
	"sort"
	"strings"

	shopdom "borgo/internal/domain/shop"
)

// CategoryAll is the sidebar's "Tutte" filter: no category restriction.
const CategoryAll = "Tutte"

// CatalogFilter narrows the Piazza shop listing.
type CatalogFilter struct {
	// Category is a category name or CategoryAll / empty for no filter.
	Category string
	// Search matches case-insensitively against shop name and description.
	Search string
}

// ShopCard is the listing projection: everything the card grid and the map
// need, without the nested collections.
type ShopCard struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	CardImage   string           `json:"cardImage"`
	Category    shopdom.Category `json:"category"`
	Description string           `json:"description"`
	IsFeatured  bool             `json:"isFeatured"`
	Address     string           `json:"address"`
	Lat         float64          `json:"lat"`
	Lng         float64          `json:"lng"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"reviewCount"`
}

// CatalogQuery is the Piazza read model over the live shop set.
type CatalogQuery struct {
	repo shopdom.Repository
}

func NewCatalogQuery(repo shopdom.Repository) *CatalogQuery {
	return &CatalogQuery{repo: repo}
}

// List returns the filtered shop cards, featured shops first, then by name.
func (q *CatalogQuery) List(ctx context.Context, f CatalogFilter) ([]ShopCard, error) {
	shops, err := q.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	cat := strings.TrimSpace(f.Category)
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]ShopCard, 0, len(shops))
	for _, s := range shops {
		if s == nil {
			continue
		}
		if cat != "" && cat != CategoryAll && string(s.Category) != cat {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(s.Name), needle) &&
			!strings.Contains(strings.ToLower(s.Description), needle) {
			continue
		}
		out = append(out, toCard(s))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsFeatured != out[j].IsFeatured {
			return out[i].IsFeatured
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func toCard(s *shopdom.Shop) ShopCard {
	return ShopCard{
		ID:          s.ID,
		Name:        s.Name,
		CardImage:   s.CardImage,
		Category:    s.Category,
		Description: s.Description,
		IsFeatured:  s.IsFeatured,
		Address:     s.Address,
		Lat:         s.Lat,
		Lng:         s.Lng,
		Rating:      s.Rating,
		ReviewCount: s.ReviewCount,
	}
}
