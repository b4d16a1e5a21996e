// internal/adapters/out/gcs/public_url_test.go
package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	got := PublicURL("", "borgo-images", "/shops/s1/card/x.jpg")

	assert.Equal(t, "https://storage.googleapis.com/borgo-images/shops/s1/card/x.jpg", got)
}

func TestPublicURL_CustomBase(t *testing.T) {
	got := PublicURL("https://cdn.example.com/", "borgo-images", "shops/s1/a.jpg")

	assert.Equal(t, "https://cdn.example.com/borgo-images/shops/s1/a.jpg", got)
}

func TestParsePublicURL(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantBucket string
		wantObject string
		wantOK     bool
	}{
		{
			name:       "standard host",
			in:         "https://storage.googleapis.com/borgo-images/shops/s1/card/x.jpg",
			wantBucket: "borgo-images",
			wantObject: "shops/s1/card/x.jpg",
			wantOK:     true,
		},
		{
			name:       "console host",
			in:         "https://storage.cloud.google.com/borgo-images/a.jpg",
			wantBucket: "borgo-images",
			wantObject: "a.jpg",
			wantOK:     true,
		},
		{name: "foreign host", in: "https://example.com/bucket/obj", wantOK: false},
		{name: "no object", in: "https://storage.googleapis.com/bucket-only", wantOK: false},
		{name: "empty", in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, object, ok := ParsePublicURL(tt.in)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantBucket, bucket)
				assert.Equal(t, tt.wantObject, object)
			}
		})
	}
}

func TestImageKindIsValid(t *testing.T) {
	assert.True(t, ImageKindCard.IsValid())
	assert.True(t, ImageKindGallery.IsValid())
	assert.True(t, ImageKindProduct.IsValid())
	assert.False(t, ImageKind("banner").IsValid())
}
