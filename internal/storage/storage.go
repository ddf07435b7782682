// Package storage is the byte-addressable file store for original invoice
// documents. Keys are content-derived so a restore can reuse retained bytes
// without a re-upload.
package storage

import "context"

// Store holds raw document bytes under opaque locators.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// ContentType maps an allowed extension to its MIME type.
func ContentType(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
