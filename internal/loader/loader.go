// Package loader reads document text from local paths or URLs
package loader

import (
	"context"
	"fmt"

	"github.com/viant/afs"
)

// Loader fetches document text through an abstract file system, so check
// and batch commands accept file paths and URLs uniformly
type Loader struct {
	fs       afs.Service
	maxBytes int64
}

// New creates a loader; maxBytes <= 0 disables the size limit
func New(maxBytes int64) *Loader {
	return &Loader{fs: afs.New(), maxBytes: maxBytes}
}

// Load reads the document at location and returns its text
func (l *Loader) Load(ctx context.Context, location string) (string, error) {
	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return "", fmt.Errorf("load document %s: %w", location, err)
	}
	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return "", fmt.Errorf("document %s exceeds %d bytes (%d)", location, l.maxBytes, len(data))
	}
	return string(data), nil
}
