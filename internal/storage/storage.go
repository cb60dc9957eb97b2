// Package storage holds the single-slot blob backends for the resume
// artifact. The choice of backend is a configuration decision; both expose
// the same Store interface.
package storage

import "context"

// Blob locates a stored artifact. Data is populated only by the embedded
// backend; the disk backend locates the artifact by file name under its
// content root. The two are never both meaningful at once.
type Blob struct {
	FileName string
	URL      string
	Data     []byte
}

type Store interface {
	// Save persists the bytes as the sole current artifact and returns its
	// location. Implementations must validate the write before returning.
	Save(ctx context.Context, fileName string, data []byte) (Blob, error)
	// Load returns the artifact's bytes, or an error if they are not
	// retrievable.
	Load(ctx context.Context, blob Blob) ([]byte, error)
}
