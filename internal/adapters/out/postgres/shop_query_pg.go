// internal/adapters/out/postgres/shop_query_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ShopQueryPG is an optional reporting read model over a replicated `shops`
// table. It is wired only when DATABASE_URL is configured; the Firestore
// document remains the system of record and this table is fed by an external
// sync job.
type ShopQueryPG struct {
	DB *sql.DB
}

func NewShopQueryPG(db *sql.DB) *ShopQueryPG {
	return &ShopQueryPG{DB: db}
}

// ShopSummary is one reporting row.
type ShopSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// ListSummaries returns shop summaries, optionally restricted to a category,
// best rated first.
func (r *ShopQueryPG) ListSummaries(ctx context.Context, category string, limit int) ([]ShopSummary, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("shop_query_pg: db is nil")
	}

	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	where := ""
	args := []any{}
	if c := strings.TrimSpace(category); c != "" {
		where = "WHERE category = $1"
		args = append(args, c)
	}
	args = append(args, limit)

	q := fmt.Sprintf(`
SELECT id, name, category, rating, review_count
FROM shops
%s
ORDER BY rating DESC, review_count DESC, name ASC
LIMIT $%d`, where, len(args))

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ShopSummary
	for rows.Next() {
		var s ShopSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Rating, &s.ReviewCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CountByCategory returns the shop count per category for the directory
// dashboard.
func (r *ShopQueryPG) CountByCategory(ctx context.Context) (map[string]int, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("shop_query_pg: db is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT category, COUNT(*) FROM shops GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		out[category] = n
	}
	return out, rows.Err()
}
