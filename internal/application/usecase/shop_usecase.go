// internal/application/usecase/shop_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	shopdom "borgo/internal/domain/shop"
)

var (
	ErrShopInvalidArgument = errors.New("shop_usecase: invalid argument")
	ErrShopNotFound        = errors.New("shop_usecase: not found")
	ErrShopNotOwner        = errors.New("shop_usecase: not owner")
)

// ReviewNotifier is told after a review has been persisted. Implementations
// must be best-effort; failures are logged and never surfaced to the caller.
type ReviewNotifier interface {
	ReviewPosted(ctx context.Context, s *shopdom.Shop, r shopdom.Review) error
}

// ImageCleaner removes every stored image under a shop's prefix. Called after
// a shop document is deleted; best-effort like ReviewNotifier.
type ImageCleaner interface {
	DeletePrefix(ctx context.Context, shopID string) error
}

// ShopProfile carries the profile fields a merchant edits through the shop
// form. OwnerID, the rating summary and the nested collections are never part
// of a profile write.
type ShopProfile struct {
	Name            string
	CardImage       string
	Category        shopdom.Category
	Description     string
	LongDescription string
	IsFeatured      bool
	Address         string
	Lat             float64
	Lng             float64
	GalleryImages   []string
}

// ShopUsecase coordinates the read-modify-write cycle around the shop
// aggregate: load the document as last observed, apply one mutation, write
// the whole affected collection back. Concurrent edits of the same shop are
// last-write-wins at collection granularity.
type ShopUsecase struct {
	repo     shopdom.Repository
	notifier ReviewNotifier
	images   ImageCleaner
}

func NewShopUsecase(repo shopdom.Repository) *ShopUsecase {
	return &ShopUsecase{repo: repo}
}

// NewShopUsecaseWithNotifier also wires the review notifier (nil is fine).
func NewShopUsecaseWithNotifier(repo shopdom.Repository, notifier ReviewNotifier) *ShopUsecase {
	return &ShopUsecase{repo: repo, notifier: notifier}
}

// WithImageCleaner wires stored-image cleanup into shop deletion (nil is fine).
func (uc *ShopUsecase) WithImageCleaner(c ImageCleaner) *ShopUsecase {
	uc.images = c
	return uc
}

// Get returns one shop or ErrShopNotFound.
func (uc *ShopUsecase) Get(ctx context.Context, id string) (*shopdom.Shop, error) {
	sid := strings.TrimSpace(id)
	if sid == "" {
		return nil, ErrShopInvalidArgument
	}

	s, err := uc.repo.GetByID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrShopNotFound
	}
	return s, nil
}

// Create inserts a new shop for ownerEmail with empty collections.
func (uc *ShopUsecase) Create(ctx context.Context, ownerEmail string, p ShopProfile) (*shopdom.Shop, error) {
	owner := strings.TrimSpace(ownerEmail)
	if owner == "" {
		return nil, ErrShopInvalidArgument
	}

	s, err := shopdom.NewShop("", owner, p.Name, p.Category)
	if err != nil {
		return nil, ErrShopInvalidArgument
	}
	applyProfile(s, p)

	id, err := uc.repo.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	s.ID = id
	return s, nil
}

// UpdateProfile rewrites the profile fields of an existing shop.
// OwnerID is immutable; only the owner may edit.
func (uc *ShopUsecase) UpdateProfile(ctx context.Context, actorEmail, shopID string, p ShopProfile) (*shopdom.Shop, error) {
	s, err := uc.getOwned(ctx, actorEmail, shopID)
	if err != nil {
		return nil, err
	}

	applyProfile(s, p)
	if err := s.Validate(); err != nil {
		return nil, ErrShopInvalidArgument
	}

	if err := uc.repo.UpdateProfile(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Delete removes the shop and, transitively, all of its nested items. Stored
// images go with it, best-effort.
func (uc *ShopUsecase) Delete(ctx context.Context, actorEmail, shopID string) error {
	s, err := uc.getOwned(ctx, actorEmail, shopID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, s.ID); err != nil {
		return err
	}

	if uc.images != nil {
		if err := uc.images.DeletePrefix(ctx, s.ID); err != nil {
			log.Printf("[shop_usecase] image cleanup failed for shop %s: %v", s.ID, err)
		}
	}
	return nil
}

// SaveProduct upserts one product and persists the whole product collection.
// An empty product id means "new"; the id is assigned here.
func (uc *ShopUsecase) SaveProduct(ctx context.Context, actorEmail, shopID string, item shopdom.Product) (*shopdom.Shop, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, ErrShopInvalidArgument
	}

	s, err := uc.getOwned(ctx, actorEmail, shopID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(item.ID) == "" {
		item.ID = uuid.NewString()
	}

	if err := s.Apply(shopdom.ProductUpsert{Product: item}); err != nil {
		return nil, err
	}
	if err := uc.repo.ReplaceProducts(ctx, s.ID, s.Products); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteProduct removes one product by id; unknown ids are a silent no-op.
func (uc *ShopUsecase) DeleteProduct(ctx context.Context, actorEmail, shopID, productID string) (*shopdom.Shop, error) {
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return nil, ErrShopInvalidArgument
	}

	s, err := uc.getOwned(ctx, actorEmail, shopID)
	if err != nil {
		return nil, err
	}

	if err := s.Apply(shopdom.ProductDelete{ProductID: pid}); err != nil {
		return nil, err
	}
	if err := uc.repo.ReplaceProducts(ctx, s.ID, s.Products); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveCoupon upserts one coupon and persists the whole coupon collection.
// Missing ids are assigned; missing codes get a generated 6-char code.
func (uc *ShopUsecase) SaveCoupon(ctx context.Context, actorEmail, shopID string, item shopdom.Coupon) (*shopdom.Shop, error) {
	if !item.Type.IsValid() {
		return nil, ErrShopInvalidArgument
	}

	s, err := uc.getOwned(ctx, actorEmail, shopID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(item.ID) == "" {
		item.ID = uuid.NewString()
	}
	if strings.TrimSpace(item.Code) == "" {
		item.Code = shopdom.NewCouponCode()
	}

	if err := s.Apply(shopdom.CouponUpsert{Coupon: item}); err != nil {
		return nil, err
	}
	if err := uc.repo.ReplaceCoupons(ctx, s.ID, s.Coupons); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteCoupon removes one coupon by id; unknown ids are a silent no-op.
func (uc *ShopUsecase) DeleteCoupon(ctx context.Context, actorEmail, shopID, couponID string) (*shopdom.Shop, error) {
	cid := strings.TrimSpace(couponID)
	if cid == "" {
		return nil, ErrShopInvalidArgument
	}

	s, err := uc.getOwned(ctx, actorEmail, shopID)
	if err != nil {
		return nil, err
	}

	if err := s.Apply(shopdom.CouponDelete{CouponID: cid}); err != nil {
		return nil, err
	}
	if err := uc.repo.ReplaceCoupons(ctx, s.ID, s.Coupons); err != nil {
		return nil, err
	}
	return s, nil
}

// AddReview appends a review (any visitor, no ownership check), recomputes
// the rating summary and persists reviews + summary in one update.
func (uc *ShopUsecase) AddReview(ctx context.Context, shopID string, item shopdom.Review) (*shopdom.Shop, error) {
	if item.Rating < 1 || item.Rating > 5 {
		return nil, ErrShopInvalidArgument
	}
	if strings.TrimSpace(item.Author) == "" {
		return nil, ErrShopInvalidArgument
	}

	s, err := uc.Get(ctx, shopID)
	if err != nil {
		return nil, err
	}

	item.ID = uuid.NewString()

	if err := s.Apply(shopdom.ReviewAppend{Review: item}); err != nil {
		return nil, err
	}

	summary := shopdom.RatingSummary{Rating: s.Rating, ReviewCount: s.ReviewCount}
	if err := uc.repo.ReplaceReviews(ctx, s.ID, s.Reviews, summary); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.ReviewPosted(ctx, s, item); err != nil {
			log.Printf("[shop_usecase] review notification failed for shop %s: %v", s.ID, err)
		}
	}

	return s, nil
}

func (uc *ShopUsecase) getOwned(ctx context.Context, actorEmail, shopID string) (*shopdom.Shop, error) {
	s, err := uc.Get(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if !s.OwnedBy(actorEmail) {
		return nil, ErrShopNotOwner
	}
	return s, nil
}

func applyProfile(s *shopdom.Shop, p ShopProfile) {
	if v := strings.TrimSpace(p.Name); v != "" {
		s.Name = v
	}
	if p.Category.IsValid() {
		s.Category = p.Category
	}
	s.CardImage = strings.TrimSpace(p.CardImage)
	s.Description = strings.TrimSpace(p.Description)
	s.LongDescription = strings.TrimSpace(p.LongDescription)
	s.IsFeatured = p.IsFeatured
	s.Address = strings.TrimSpace(p.Address)
	s.Lat = p.Lat
	s.Lng = p.Lng
	if p.GalleryImages != nil {
		s.GalleryImages = p.GalleryImages
	}
}
