// internal/adapters/out/gcs/public_url.go
package gcs

import (
	"fmt"
	"net/url"
	"strings"
)

// PublicURL builds a public object URL.
// baseURL defaults to https://storage.googleapis.com when empty.
func PublicURL(baseURL, bucket, objectPath string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	return fmt.Sprintf("%s/%s/%s", base, strings.TrimSpace(bucket), obj)
}

// ParsePublicURL parses a GCS-style public URL into (bucket, objectPath, ok).
// Recognized hosts:
//   - storage.googleapis.com
//   - storage.cloud.google.com
func ParsePublicURL(u string) (string, string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return "", "", false
	}

	host := strings.ToLower(parsed.Host)
	if host != "storage.googleapis.com" && host != "storage.cloud.google.com" {
		return "", "", false
	}

	p := strings.TrimLeft(parsed.EscapedPath(), "/")
	if p == "" {
		return "", "", false
	}

	parts := strings.SplitN(p, "/", 2)
	if len(parts) < 2 {
		return "", "", false
	}

	objectPath, err := url.PathUnescape(parts[1])
	if err != nil {
		return "", "", false
	}
	return parts[0], objectPath, true
}
