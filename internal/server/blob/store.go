// Package blob abstracts the binary object store that owns image payloads.
// The production implementation is S3; tests substitute in-memory fakes.
package blob

import (
	"context"
	"strings"
)

// Store writes binary payloads and returns a retrievable URL per object.
type Store interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
}

// SanitizeFilename replaces spaces with underscores. No other normalization
// is applied; keys otherwise keep the caller-supplied name intact.
func SanitizeFilename(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// ProfileImageKey builds the deterministic object key for a registration
// display image.
func ProfileImageKey(email, filename string) string {
	return "profile_images/" + email + "_" + SanitizeFilename(filename)
}

// PostImageKey builds the deterministic object key for a post image.
func PostImageKey(identityID, filename string) string {
	return "uploads/" + identityID + "_" + SanitizeFilename(filename)
}
