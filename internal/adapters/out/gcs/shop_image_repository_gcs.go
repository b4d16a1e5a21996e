// internal/adapters/out/gcs/shop_image_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/google/uuid"
)

// ImageKind tells where an uploaded image is used on the shop page.
type ImageKind string

const (
	ImageKindCard    ImageKind = "card"
	ImageKindGallery ImageKind = "gallery"
	ImageKindProduct ImageKind = "product"
)

func (k ImageKind) IsValid() bool {
	switch k {
	case ImageKindCard, ImageKindGallery, ImageKindProduct:
		return true
	}
	return false
}

// ShopImageRepositoryGCS stores shop imagery in object storage.
//
// Layout (single bucket):
// - objectPath: shops/{shopId}/{kind}/{uuid}.jpg
//
// Public access: the bucket is expected to grant allUsers object-viewer via
// uniform IAM, so uploads are publicly readable without per-object ACLs.
type ShopImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
	// PublicBaseURL defaults to https://storage.googleapis.com when empty.
	PublicBaseURL string
}

func NewShopImageRepositoryGCS(client *storage.Client, bucket string) *ShopImageRepositoryGCS {
	return &ShopImageRepositoryGCS{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
	}
}

// Upload writes JPEG bytes (the client compresses before sending, so the
// payload is already sized down) and returns the public URL.
func (r *ShopImageRepositoryGCS) Upload(ctx context.Context, shopID string, kind ImageKind, data []byte) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("shop_image_repository_gcs: storage client is nil")
	}

	bucket := strings.TrimSpace(r.Bucket)
	if bucket == "" {
		return "", errors.New("shop_image_repository_gcs: bucket is empty")
	}

	sid := strings.TrimSpace(shopID)
	if sid == "" {
		return "", errors.New("shop_image_repository_gcs: shopID is empty")
	}
	if !kind.IsValid() {
		return "", fmt.Errorf("shop_image_repository_gcs: unknown image kind %q", kind)
	}
	if len(data) == 0 {
		return "", errors.New("shop_image_repository_gcs: empty payload")
	}

	objectPath := fmt.Sprintf("shops/%s/%s/%s.jpg", sid, kind, uuid.NewString())

	wctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	w := r.Client.Bucket(bucket).Object(objectPath).NewWriter(wctx)
	w.ContentType = "image/jpeg"
	w.CacheControl = "public, max-age=86400"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("shop_image_repository_gcs: write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("shop_image_repository_gcs: close failed: %w", err)
	}

	return PublicURL(r.PublicBaseURL, bucket, objectPath), nil
}

// DeletePrefix removes every object under shops/{shopId}/ when a shop is
// destroyed. Missing objects are not an error.
func (r *ShopImageRepositoryGCS) DeletePrefix(ctx context.Context, shopID string) error {
	if r == nil || r.Client == nil {
		return errors.New("shop_image_repository_gcs: storage client is nil")
	}

	sid := strings.TrimSpace(shopID)
	if sid == "" {
		return errors.New("shop_image_repository_gcs: shopID is empty")
	}

	bucket := strings.TrimSpace(r.Bucket)
	if bucket == "" {
		return errors.New("shop_image_repository_gcs: bucket is empty")
	}

	it := r.Client.Bucket(bucket).Objects(ctx, &storage.Query{Prefix: "shops/" + sid + "/"})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return err
		}
		if delErr := r.Client.Bucket(bucket).Object(attrs.Name).Delete(ctx); delErr != nil {
			if errors.Is(delErr, storage.ErrObjectNotExist) {
				continue
			}
			return delErr
		}
	}
}
