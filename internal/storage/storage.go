// Package storage contains the object-store adapter holding raw scan
// image bytes. Scan rows reference objects by public URL; the adapter
// owns the key convention and its inverse.
package storage

import (
	"context"
	"io"
	"strings"
)

// ScanFolder is the namespace all scan images are stored under.
const ScanFolder = "oralvis_scans"

// UploadResult describes a stored object: the durable public URL saved
// on the scan row, and the key needed to delete the object later.
type UploadResult struct {
	URL string
	Key string
}

// Storage is the object-store client interface. Implementations stream
// content and never touch local disk.
type Storage interface {
	// Put uploads image bytes under a fresh key in the scan namespace.
	Put(ctx context.Context, r io.Reader, size int64, contentType string) (UploadResult, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}

// KeyFromURL derives the deletable object key from a stored image URL:
// the last two /-separated path segments rejoined, with any trailing
// filename extension stripped. This inverts the Put key convention
// (keys are extension-less, so the strip only matters for legacy refs).
func KeyFromURL(ref string) string {
	parts := strings.Split(strings.TrimSuffix(ref, "/"), "/")
	if len(parts) < 2 {
		return ref
	}
	key := strings.Join(parts[len(parts)-2:], "/")
	if i := strings.LastIndex(key, "."); i > strings.LastIndex(key, "/") {
		key = key[:i]
	}
	return key
}
