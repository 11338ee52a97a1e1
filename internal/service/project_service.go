package service

import (
	"context"

	"maturiq/internal/model"
	"maturiq/internal/repository"
)

// ProjectService handles project CRUD and maturity reads
type ProjectService struct {
	projectRepo repository.ProjectRepo
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepo) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// Create creates a new project
func (s *ProjectService) Create(ctx context.Context, project *model.Project) (string, error) {
	return s.projectRepo.Create(ctx, project)
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// GetByOwnerID retrieves all projects of an owner
func (s *ProjectService) GetByOwnerID(ctx context.Context, ownerID string) ([]*model.Project, error) {
	return s.projectRepo.GetByOwnerID(ctx, ownerID)
}
