package storage

import (
	"context"
	"errors"
)

var ErrNoData = errors.New("no stored bytes")

// EmbeddedStore keeps the artifact bytes inside the resume record itself.
// This survives restarts on hosts with ephemeral filesystems, so it is the
// default mode.
type EmbeddedStore struct{}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) Save(_ context.Context, fileName string, data []byte) (Blob, error) {
	buf := make([]byte, len(data))
	copy(buf, data)
	return Blob{
		FileName: fileName,
		URL:      "/api/resume/view",
		Data:     buf,
	}, nil
}

func (s *EmbeddedStore) Load(_ context.Context, blob Blob) ([]byte, error) {
	if len(blob.Data) == 0 {
		return nil, ErrNoData
	}
	return blob.Data, nil
}
