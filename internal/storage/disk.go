package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore writes the artifact as a single file under a content root. The
// root holds exactly one file after every successful Save: the write goes to
// a temp file first and is renamed into place, then every other entry in the
// root is removed.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) Save(_ context.Context, fileName string, data []byte) (Blob, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return Blob{}, fmt.Errorf("create content root: %w", err)
	}

	// Strip any path component from the client-supplied name.
	fileName = filepath.Base(fileName)
	final := filepath.Join(s.root, fileName)

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return Blob{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return Blob{}, fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return Blob{}, fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return Blob{}, fmt.Errorf("commit artifact: %w", err)
	}

	// Validate the committed write before reclaiming anything.
	info, err := os.Stat(final)
	if err != nil {
		return Blob{}, fmt.Errorf("verify artifact: %w", err)
	}
	if info.Size() != int64(len(data)) {
		return Blob{}, fmt.Errorf("verify artifact: wrote %d bytes, expected %d", info.Size(), len(data))
	}

	if err := s.removeOthers(fileName); err != nil {
		return Blob{}, err
	}

	return Blob{
		FileName: fileName,
		URL:      "/uploads/" + fileName,
	}, nil
}

func (s *DiskStore) Load(_ context.Context, blob Blob) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.Base(blob.FileName)))
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return data, nil
}

// removeOthers deletes every entry in the root except the just-written file.
func (s *DiskStore) removeOthers(keep string) error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return fmt.Errorf("list content root: %w", err)
	}
	for _, entry := range entries {
		if entry.Name() == keep {
			continue
		}
		if err := os.RemoveAll(filepath.Join(s.root, entry.Name())); err != nil {
			return fmt.Errorf("remove stale artifact %s: %w", entry.Name(), err)
		}
	}
	return nil
}
