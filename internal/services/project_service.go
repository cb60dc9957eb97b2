package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/models"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/repo"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ProjectService struct {
	projects ProjectStore
}

func NewProjectService(projects ProjectStore) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	items, err := s.projects.List(ctx)
	if err != nil {
		return nil, utils.WrapAppError(http.StatusInternalServerError, "could not list projects", err)
	}
	return items, nil
}

func (s *ProjectService) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, utils.WrapAppError(http.StatusInternalServerError, "could not create project", err)
	}
	return created, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrNotFound("Project not found")
	}
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.ErrNotFound("Project not found")
		}
		return nil, utils.WrapAppError(http.StatusInternalServerError, "could not load project", err)
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	updated, err := s.projects.Update(ctx, project)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.ErrNotFound("Project not found")
		}
		return nil, utils.WrapAppError(http.StatusInternalServerError, "could not update project", err)
	}
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrNotFound("Project not found")
	}
	deleted, err := s.projects.Delete(ctx, id)
	if err != nil {
		return utils.WrapAppError(http.StatusInternalServerError, "could not delete project", err)
	}
	if !deleted {
		return utils.ErrNotFound("Project not found")
	}
	return nil
}
