package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository"
)

var (
	ErrProjectNotFound      = repository.ErrProjectNotFound
	ErrProjectAlreadyJoined = repository.ErrProjectAlreadyJoined
	ErrProjectCompleted     = errors.New("cannot register for a completed project")
	ErrProjectNotOpen       = errors.New("project is not open for registration")
	ErrInvalidStatusChange  = errors.New("invalid project status change")
)

type ProjectRepository interface {
	Create(ctx context.Context, project domain.Project) (domain.Project, error)
	FindByID(ctx context.Context, id uint) (domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	Update(ctx context.Context, project domain.Project) (domain.Project, error)
	Delete(ctx context.Context, id uint) error
	RegisterParticipant(ctx context.Context, userID, projectID uint) (domain.ProjectParticipation, error)
}

type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

func (s *ProjectService) GetProject(ctx context.Context, id uint) (domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Project{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return project, nil
}

// ListProjects returns all projects, or only those with the given
// status when one is supplied.
func (s *ProjectService) ListProjects(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	var (
		projects []domain.Project
		err      error
	)
	if status == "" {
		projects, err = s.repo.FindAll(ctx)
	} else {
		projects, err = s.repo.FindByStatus(ctx, status)
	}
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return projects, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	if project.Status == "" {
		project.Status = domain.ProjectUpcoming
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return domain.Project{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateProject applies changes to a project. Status may only move
// forward through the lifecycle, never back.
func (s *ProjectService) UpdateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	existing, err := s.repo.FindByID(ctx, project.ID)
	if err != nil {
		return domain.Project{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if project.Status != "" && !existing.Status.CanTransitionTo(project.Status) {
		return domain.Project{}, ErrInvalidStatusChange
	}
	if project.Status == "" {
		project.Status = existing.Status
	}

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return domain.Project{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Register signs a user up as participant of an ongoing project.
func (s *ProjectService) Register(ctx context.Context, userID, projectID uint) (domain.ProjectParticipation, error) {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return domain.ProjectParticipation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	switch project.Status {
	case domain.ProjectOngoing:
	case domain.ProjectCompleted:
		return domain.ProjectParticipation{}, ErrProjectCompleted
	default:
		return domain.ProjectParticipation{}, ErrProjectNotOpen
	}

	participation, err := s.repo.RegisterParticipant(ctx, userID, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectAlreadyJoined) {
			return domain.ProjectParticipation{}, ErrProjectAlreadyJoined
		}

		return domain.ProjectParticipation{}, fmt.Errorf("s.repo.RegisterParticipant -> %w", err)
	}

	return participation, nil
}
