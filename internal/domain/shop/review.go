// internal/domain/shop/review.go
package shop

// Review is a visitor rating of a shop. Reviews are append-only: once written
// they are never edited or removed, and new reviews go to the front of the
// collection (newest first).
type Review struct {
	ID          string `json:"id" firestore:"id"`
	Author      string `json:"author" firestore:"author"`
	Rating      int    `json:"rating" firestore:"rating"` // 1..5, caller-validated
	Comment     string `json:"comment" firestore:"comment"`
	AuthorImage string `json:"authorImage" firestore:"authorImage"`
}

// RatingSummary is the derived (average, count) pair stored on the shop
// document next to the review collection.
type RatingSummary struct {
	Rating      float64 `json:"rating" firestore:"rating"`
	ReviewCount int     `json:"reviewCount" firestore:"reviewCount"`
}

// AppendReview prepends item to reviews and recomputes the rating summary.
// The average uses float64 division with no rounding; an empty result
// collection (unreachable here, defined for completeness) yields rating 0.
// Pure: the input slice is never modified.
func AppendReview(reviews []Review, item Review) ([]Review, RatingSummary) {
	next := make([]Review, 0, len(reviews)+1)
	next = append(next, item)
	next = append(next, reviews...)

	return next, SummarizeRatings(next)
}

// SummarizeRatings computes the rating summary over an arbitrary review
// collection. Exposed for backfills and decode-time consistency checks.
func SummarizeRatings(reviews []Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{Rating: 0, ReviewCount: 0}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return RatingSummary{
		Rating:      float64(sum) / float64(len(reviews)),
		ReviewCount: len(reviews),
	}
}
