// internal/adapters/out/firestore/shop_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	shopdom "borgo/internal/domain/shop"
)

// ShopRepositoryFS implements shop.Repository using Firestore.
//
// Collection design:
// - collection: shops
// - docId: shop id (server-assigned on Create)
// - nested products/coupons/reviews live as arrays inside the document and
//   are always replaced whole; rating/reviewCount ride along with reviews in
//   a single update so the summary can never drift from the collection.
type ShopRepositoryFS struct {
	Client *firestore.Client
}

func NewShopRepositoryFS(client *firestore.Client) *ShopRepositoryFS {
	return &ShopRepositoryFS{Client: client}
}

func (r *ShopRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("shops")
}

// GetAll returns every shop. Document data is parsed leniently from the raw
// snapshot map so legacy documents with missing fields still load.
func (r *ShopRepositoryFS) GetAll(ctx context.Context) ([]*shopdom.Shop, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("shop_repository_fs: firestore client is nil")
	}

	iter := r.col().Documents(ctx)
	defer iter.Stop()

	var out []*shopdom.Shop
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		s := shopFromSnapshotData(snap.Data())
		// docId is the source of truth even when the doc carries no id field
		s.ID = snap.Ref.ID
		out = append(out, s)
	}
	return out, nil
}

// GetByID returns (nil, nil) if not found (nil policy).
func (r *ShopRepositoryFS) GetByID(ctx context.Context, id string) (*shopdom.Shop, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("shop_repository_fs: firestore client is nil")
	}

	sid := strings.TrimSpace(id)
	if sid == "" {
		return nil, errors.New("shop_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(sid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	s := shopFromSnapshotData(snap.Data())
	s.ID = sid
	return s, nil
}

// Create inserts the shop with a server-assigned docId and returns it.
func (r *ShopRepositoryFS) Create(ctx context.Context, s *shopdom.Shop) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("shop_repository_fs: firestore client is nil")
	}
	if s == nil {
		return "", errors.New("shop_repository_fs: shop is nil")
	}

	ref := r.col().NewDoc()
	doc := shopDocFromDomain(s)
	doc.ID = ref.ID

	if _, err := ref.Set(ctx, doc); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// UpdateProfile rewrites profile fields only. OwnerID, the collections and
// the rating summary are never part of this update.
func (r *ShopRepositoryFS) UpdateProfile(ctx context.Context, s *shopdom.Shop) error {
	if r == nil || r.Client == nil {
		return errors.New("shop_repository_fs: firestore client is nil")
	}
	if s == nil {
		return errors.New("shop_repository_fs: shop is nil")
	}

	sid := strings.TrimSpace(s.ID)
	if sid == "" {
		return errors.New("shop_repository_fs: UpdateProfile requires shop.ID")
	}

	_, err := r.col().Doc(sid).Update(ctx, []firestore.Update{
		{Path: "name", Value: s.Name},
		{Path: "cardImage", Value: s.CardImage},
		{Path: "category", Value: string(s.Category)},
		{Path: "description", Value: s.Description},
		{Path: "longDescription", Value: s.LongDescription},
		{Path: "isFeatured", Value: s.IsFeatured},
		{Path: "address", Value: s.Address},
		{Path: "lat", Value: s.Lat},
		{Path: "lng", Value: s.Lng},
		{Path: "galleryImages", Value: s.GalleryImages},
	})
	return err
}

// Delete removes the document; nested collections go with it.
func (r *ShopRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("shop_repository_fs: firestore client is nil")
	}

	sid := strings.TrimSpace(id)
	if sid == "" {
		return errors.New("shop_repository_fs: id is empty")
	}

	_, err := r.col().Doc(sid).Delete(ctx)
	return err
}

// ReplaceProducts overwrites the whole products field.
func (r *ShopRepositoryFS) ReplaceProducts(ctx context.Context, shopID string, products []shopdom.Product) error {
	return r.replaceField(ctx, shopID, []firestore.Update{
		{Path: "products", Value: productDocsFromDomain(products)},
	})
}

// ReplaceCoupons overwrites the whole coupons field.
func (r *ShopRepositoryFS) ReplaceCoupons(ctx context.Context, shopID string, coupons []shopdom.Coupon) error {
	return r.replaceField(ctx, shopID, []firestore.Update{
		{Path: "coupons", Value: couponDocsFromDomain(coupons)},
	})
}

// ReplaceReviews overwrites reviews together with the derived summary in one
// update, matching the batch write the review flow requires.
func (r *ShopRepositoryFS) ReplaceReviews(ctx context.Context, shopID string, reviews []shopdom.Review, summary shopdom.RatingSummary) error {
	return r.replaceField(ctx, shopID, []firestore.Update{
		{Path: "reviews", Value: reviewDocsFromDomain(reviews)},
		{Path: "rating", Value: summary.Rating},
		{Path: "reviewCount", Value: summary.ReviewCount},
	})
}

func (r *ShopRepositoryFS) replaceField(ctx context.Context, shopID string, updates []firestore.Update) error {
	if r == nil || r.Client == nil {
		return errors.New("shop_repository_fs: firestore client is nil")
	}

	sid := strings.TrimSpace(shopID)
	if sid == "" {
		return errors.New("shop_repository_fs: shopID is empty")
	}

	_, err := r.col().Doc(sid).Update(ctx, updates)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type shopDoc struct {
	ID              string       `firestore:"id"`
	OwnerID         string       `firestore:"ownerId"`
	Name            string       `firestore:"name"`
	CardImage       string       `firestore:"cardImage"`
	Category        string       `firestore:"category"`
	Description     string       `firestore:"description"`
	LongDescription string       `firestore:"longDescription"`
	IsFeatured      bool         `firestore:"isFeatured"`
	Address         string       `firestore:"address"`
	Lat             float64      `firestore:"lat"`
	Lng             float64      `firestore:"lng"`
	GalleryImages   []string     `firestore:"galleryImages"`
	Rating          float64      `firestore:"rating"`
	ReviewCount     int          `firestore:"reviewCount"`
	Products        []productDoc `firestore:"products"`
	Coupons         []couponDoc  `firestore:"coupons"`
	Reviews         []reviewDoc  `firestore:"reviews"`
}

type productDoc struct {
	ID          string   `firestore:"id"`
	Name        string   `firestore:"name"`
	Images      []string `firestore:"images"`
	Price       string   `firestore:"price"`
	Description string   `firestore:"description"`
}

type couponDoc struct {
	ID          string   `firestore:"id"`
	Code        string   `firestore:"code"`
	Description string   `firestore:"description"`
	Type        string   `firestore:"type"`
	Value       float64  `firestore:"value"`
	MinValue    *float64 `firestore:"minValue,omitempty"`
}

type reviewDoc struct {
	ID          string `firestore:"id"`
	Author      string `firestore:"author"`
	Rating      int    `firestore:"rating"`
	Comment     string `firestore:"comment"`
	AuthorImage string `firestore:"authorImage"`
}

func shopDocFromDomain(s *shopdom.Shop) shopDoc {
	return shopDoc{
		ID:              s.ID,
		OwnerID:         s.OwnerID,
		Name:            s.Name,
		CardImage:       s.CardImage,
		Category:        string(s.Category),
		Description:     s.Description,
		LongDescription: s.LongDescription,
		IsFeatured:      s.IsFeatured,
		Address:         s.Address,
		Lat:             s.Lat,
		Lng:             s.Lng,
		GalleryImages:   emptyIfNil(s.GalleryImages),
		Rating:          s.Rating,
		ReviewCount:     s.ReviewCount,
		Products:        productDocsFromDomain(s.Products),
		Coupons:         couponDocsFromDomain(s.Coupons),
		Reviews:         reviewDocsFromDomain(s.Reviews),
	}
}

func productDocsFromDomain(products []shopdom.Product) []productDoc {
	out := make([]productDoc, 0, len(products))
	for _, p := range products {
		out = append(out, productDoc{
			ID:          p.ID,
			Name:        p.Name,
			Images:      emptyIfNil(p.Images),
			Price:       p.Price,
			Description: p.Description,
		})
	}
	return out
}

func couponDocsFromDomain(coupons []shopdom.Coupon) []couponDoc {
	out := make([]couponDoc, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, couponDoc{
			ID:          c.ID,
			Code:        c.Code,
			Description: c.Description,
			Type:        string(c.Type),
			Value:       c.Value,
			MinValue:    c.MinValue,
		})
	}
	return out
}

func reviewDocsFromDomain(reviews []shopdom.Review) []reviewDoc {
	out := make([]reviewDoc, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewDoc{
			ID:          r.ID,
			Author:      r.Author,
			Rating:      r.Rating,
			Comment:     r.Comment,
			AuthorImage: r.AuthorImage,
		})
	}
	return out
}

func emptyIfNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
