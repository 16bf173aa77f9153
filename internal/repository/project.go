package repository

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository/dao"
)

var (
	ErrProjectNotFound      = dao.ErrProjectNotFound
	ErrProjectAlreadyJoined = dao.ErrProjectAlreadyJoined
)

type ProjectDAO interface {
	Insert(ctx context.Context, project dao.Project) (dao.Project, error)
	FindByID(ctx context.Context, id uint) (dao.Project, error)
	FindAll(ctx context.Context) ([]dao.Project, error)
	FindByStatus(ctx context.Context, status string) ([]dao.Project, error)
	Update(ctx context.Context, project dao.Project) (dao.Project, error)
	Delete(ctx context.Context, id uint) error
	RegisterParticipant(ctx context.Context, userID, projectID uint) (dao.ProjectParticipation, error)
	CountCompletedByUserID(ctx context.Context, userID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type ProjectRepository struct {
	dao ProjectDAO
}

func NewProjectRepository(dao ProjectDAO) *ProjectRepository {
	return &ProjectRepository{
		dao: dao,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(project))
	if err != nil {
		return domain.Project{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (domain.Project, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Project{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ProjectRepository) FindByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	found, err := r.dao.FindByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatus -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ProjectRepository) Update(ctx context.Context, project domain.Project) (domain.Project, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(project))
	if err != nil {
		return domain.Project{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProjectRepository) RegisterParticipant(ctx context.Context, userID, projectID uint) (domain.ProjectParticipation, error) {
	created, err := r.dao.RegisterParticipant(ctx, userID, projectID)
	if err != nil {
		return domain.ProjectParticipation{}, fmt.Errorf("r.dao.RegisterParticipant -> %w", err)
	}

	return domain.ProjectParticipation{
		ID:        created.ID,
		UserID:    created.UserID,
		ProjectID: created.ProjectID,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *ProjectRepository) CountCompletedByUserID(ctx context.Context, userID uint) (int, error) {
	count, err := r.dao.CountCompletedByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountCompletedByUserID -> %w", err)
	}

	return int(count), nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return int(count), nil
}

func (r *ProjectRepository) domainToDao(p domain.Project) dao.Project {
	return dao.Project{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Domain:       p.Domain,
		Status:       string(p.Status),
		Participants: p.Participants,
		ImageURL:     p.ImageURL,
	}
}

func (r *ProjectRepository) daoToDomain(p dao.Project) domain.Project {
	return domain.Project{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Domain:       p.Domain,
		Status:       domain.ProjectStatus(p.Status),
		Participants: p.Participants,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
	}
}

func (r *ProjectRepository) daosToDomain(found []dao.Project) []domain.Project {
	projects := make([]domain.Project, len(found))
	for i, p := range found {
		projects[i] = r.daoToDomain(p)
	}

	return projects
}
