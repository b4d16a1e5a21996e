// internal/domain/shop/mutation.go
package shop

import "errors"

var ErrNilMutation = errors.New("shop: nil mutation")

// Mutation is one change to a shop's nested collections. Exactly one variant
// exists per mutation kind; handlers build a variant and dispatch it through
// Shop.Apply instead of patching arbitrary fields.
type Mutation interface {
	isMutation()
}

// ProductUpsert inserts or replaces one product by id.
type ProductUpsert struct {
	Product Product
}

// ProductDelete removes one product by id (no-op when absent).
type ProductDelete struct {
	ProductID string
}

// CouponUpsert inserts or replaces one coupon by id.
type CouponUpsert struct {
	Coupon Coupon
}

// CouponDelete removes one coupon by id (no-op when absent).
type CouponDelete struct {
	CouponID string
}

// ReviewAppend prepends one review and recomputes the rating summary.
type ReviewAppend struct {
	Review Review
}

func (ProductUpsert) isMutation() {}
func (ProductDelete) isMutation() {}
func (CouponUpsert) isMutation()  {}
func (CouponDelete) isMutation()  {}
func (ReviewAppend) isMutation()  {}

// Apply rewrites the affected collection (and, for reviews, the rating
// summary) in place on s. The untouched collections are left as-is; callers
// persist whichever fields the variant touched.
func (s *Shop) Apply(m Mutation) error {
	if s == nil {
		return ErrInvalidShop
	}
	if m == nil {
		return ErrNilMutation
	}

	switch v := m.(type) {
	case ProductUpsert:
		s.Products = UpsertProduct(s.Products, v.Product)
	case ProductDelete:
		s.Products = DeleteProduct(s.Products, v.ProductID)
	case CouponUpsert:
		s.Coupons = UpsertCoupon(s.Coupons, v.Coupon)
	case CouponDelete:
		s.Coupons = DeleteCoupon(s.Coupons, v.CouponID)
	case ReviewAppend:
		reviews, summary := AppendReview(s.Reviews, v.Review)
		s.Reviews = reviews
		s.Rating = summary.Rating
		s.ReviewCount = summary.ReviewCount
	default:
		return ErrNilMutation
	}
	return nil
}
