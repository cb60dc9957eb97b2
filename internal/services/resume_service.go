package services

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/models"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/repo"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/storage"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

type ResumeStore interface {
	Get(ctx context.Context) (*models.Resume, error)
	Upsert(ctx context.Context, resume *models.Resume) (*models.Resume, error)
}

// ResumeService manages the single resume slot: validation, the blob write
// and the metadata record, in that order, so a failed write never leaves the
// record pointing at a missing artifact.
type ResumeService struct {
	resumes  ResumeStore
	store    storage.Store
	maxBytes int64
}

func NewResumeService(resumes ResumeStore, store storage.Store, maxBytes int64) *ResumeService {
	return &ResumeService{resumes: resumes, store: store, maxBytes: maxBytes}
}

// Metadata returns the current record without bytes, or nil if none exists.
func (s *ResumeService) Metadata(ctx context.Context) (*models.Resume, error) {
	resume, err := s.resumes.Get(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, utils.WrapAppError(http.StatusInternalServerError, "could not load resume", err)
	}
	resume.Data = nil
	return resume, nil
}

// View returns the current record and its raw bytes.
func (s *ResumeService) View(ctx context.Context) (*models.Resume, []byte, error) {
	resume, err := s.resumes.Get(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, utils.ErrNotFound("Resume not found")
		}
		return nil, nil, utils.WrapAppError(http.StatusInternalServerError, "could not load resume", err)
	}

	data, err := s.store.Load(ctx, storage.Blob{
		FileName: resume.FileName,
		URL:      resume.URL,
		Data:     resume.Data,
	})
	if err != nil {
		return nil, nil, utils.ErrNotFound("Resume not found")
	}

	return resume, data, nil
}

// Upload validates and stores a new artifact, then commits the metadata.
// Exactly one record and one artifact exist afterwards; the previous bytes
// are gone.
func (s *ResumeService) Upload(ctx context.Context, fileName, contentType string, data []byte) (*models.Resume, error) {
	if int64(len(data)) > s.maxBytes {
		return nil, utils.ErrInvalidInput("File too large")
	}
	if strings.ToLower(filepath.Ext(fileName)) != ".pdf" {
		return nil, utils.ErrInvalidInput("Only PDFs are allowed")
	}
	if contentType == "" {
		contentType = "application/pdf"
	}

	blob, err := s.store.Save(ctx, fileName, data)
	if err != nil {
		return nil, utils.WrapAppError(http.StatusInternalServerError, "could not store resume file", err)
	}

	resume, err := s.resumes.Upsert(ctx, &models.Resume{
		FileName:    blob.FileName,
		URL:         blob.URL,
		ContentType: contentType,
		Data:        blob.Data,
	})
	if err != nil {
		return nil, utils.WrapAppError(http.StatusInternalServerError, "could not save resume record", err)
	}

	return resume, nil
}
