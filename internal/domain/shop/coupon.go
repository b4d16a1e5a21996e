// internal/domain/shop/coupon.go
package shop

import (
	"crypto/rand"
)

// CouponType discriminates how a coupon's value is applied.
type CouponType string

const (
	// CouponPercentage takes Value as a percentage off.
	CouponPercentage CouponType = "percentage"
	// CouponFixed takes Value as a fixed amount off.
	CouponFixed CouponType = "fixed"
	// CouponConditional is a fixed amount off above MinValue spend.
	CouponConditional CouponType = "conditional"
)

// IsValid reports whether t is a known coupon type.
func (t CouponType) IsValid() bool {
	switch t {
	case CouponPercentage, CouponFixed, CouponConditional:
		return true
	}
	return false
}

// Coupon is a promotion attached to a shop.
// Code is intended to be unique per shop but nothing enforces that.
// MinValue is meaningful only when Type is conditional.
type Coupon struct {
	ID          string     `json:"id" firestore:"id"`
	Code        string     `json:"code" firestore:"code"`
	Description string     `json:"description" firestore:"description"`
	Type        CouponType `json:"type" firestore:"type"`
	Value       float64    `json:"value" firestore:"value"`
	MinValue    *float64   `json:"minValue,omitempty" firestore:"minValue,omitempty"`
}

// UpsertCoupon has the same contract as UpsertProduct: replace in place on an
// id match, append otherwise. Pure.
func UpsertCoupon(coupons []Coupon, item Coupon) []Coupon {
	next := make([]Coupon, len(coupons))
	copy(next, coupons)

	for i := range next {
		if next[i].ID == item.ID {
			next[i] = item
			return next
		}
	}
	return append(next, item)
}

// DeleteCoupon removes the entry whose id matches; unknown ids are a no-op.
func DeleteCoupon(coupons []Coupon, id string) []Coupon {
	next := make([]Coupon, 0, len(coupons))
	for _, c := range coupons {
		if c.ID == id {
			continue
		}
		next = append(next, c)
	}
	return next
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewCouponCode returns a random 6-character redemption code, matching the
// "Genera" button in the coupon form.
func NewCouponCode() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b)
}
