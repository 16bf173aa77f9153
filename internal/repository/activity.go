package repository

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository/dao"
)

var (
	ErrActivityNotFound      = dao.ErrActivityNotFound
	ErrActivityFull          = dao.ErrActivityFull
	ErrAlreadyRegistered     = dao.ErrAlreadyRegistered
	ErrParticipationNotFound = dao.ErrParticipationNotFound
)

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	FindByID(ctx context.Context, id uint) (dao.Activity, error)
	FindAll(ctx context.Context) ([]dao.Activity, error)
	FindUpcoming(ctx context.Context) ([]dao.Activity, error)
	Update(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	Delete(ctx context.Context, id uint) error
	RegisterParticipant(ctx context.Context, userID, activityID uint) (dao.Participation, error)
	CancelParticipation(ctx context.Context, userID, activityID uint) (dao.Participation, error)
	FindParticipation(ctx context.Context, userID, activityID uint) (dao.Participation, error)
	FindParticipationsByUserID(ctx context.Context, userID uint) ([]dao.Participation, error)
	CountByType(ctx context.Context, activityType string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ActivityRepository) FindAll(ctx context.Context) ([]domain.Activity, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ActivityRepository) FindUpcoming(ctx context.Context) ([]domain.Activity, error) {
	found, err := r.dao.FindUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindUpcoming -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) RegisterParticipant(ctx context.Context, userID, activityID uint) (domain.Participation, error) {
	created, err := r.dao.RegisterParticipant(ctx, userID, activityID)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("r.dao.RegisterParticipant -> %w", err)
	}

	return r.participationDaoToDomain(created), nil
}

func (r *ActivityRepository) CancelParticipation(ctx context.Context, userID, activityID uint) (domain.Participation, error) {
	cancelled, err := r.dao.CancelParticipation(ctx, userID, activityID)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("r.dao.CancelParticipation -> %w", err)
	}

	return r.participationDaoToDomain(cancelled), nil
}

func (r *ActivityRepository) FindParticipation(ctx context.Context, userID, activityID uint) (domain.Participation, error) {
	found, err := r.dao.FindParticipation(ctx, userID, activityID)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("r.dao.FindParticipation -> %w", err)
	}

	return r.participationDaoToDomain(found), nil
}

func (r *ActivityRepository) FindParticipationsByUserID(ctx context.Context, userID uint) ([]domain.Participation, error) {
	found, err := r.dao.FindParticipationsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipationsByUserID -> %w", err)
	}

	participations := make([]domain.Participation, len(found))
	for i, p := range found {
		participations[i] = r.participationDaoToDomain(p)
	}

	return participations, nil
}

func (r *ActivityRepository) CountByType(ctx context.Context, activityType domain.ActivityType) (int, error) {
	count, err := r.dao.CountByType(ctx, string(activityType))
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByType -> %w", err)
	}

	return int(count), nil
}

func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return int(count), nil
}

func (r *ActivityRepository) domainToDao(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Type:            string(a.Type),
		Date:            a.Date,
		Location:        a.Location,
		Capacity:        a.Capacity,
		RegisteredCount: a.RegisteredCount,
		ImageURL:        a.ImageURL,
	}
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Type:            domain.ActivityType(a.Type),
		Date:            a.Date,
		Location:        a.Location,
		Capacity:        a.Capacity,
		RegisteredCount: a.RegisteredCount,
		ImageURL:        a.ImageURL,
		CreatedAt:       a.CreatedAt,
	}
}

func (r *ActivityRepository) daosToDomain(found []dao.Activity) []domain.Activity {
	activities := make([]domain.Activity, len(found))
	for i, a := range found {
		activities[i] = r.daoToDomain(a)
	}

	return activities
}

func (r *ActivityRepository) participationDaoToDomain(p dao.Participation) domain.Participation {
	return domain.Participation{
		ID:         p.ID,
		UserID:     p.UserID,
		ActivityID: p.ActivityID,
		Status:     domain.ParticipationStatus(p.Status),
		CreatedAt:  p.CreatedAt,
	}
}
