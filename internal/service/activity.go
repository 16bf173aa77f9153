package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository"
)

var (
	ErrActivityNotFound      = repository.ErrActivityNotFound
	ErrActivityFull          = repository.ErrActivityFull
	ErrAlreadyRegistered     = repository.ErrAlreadyRegistered
	ErrParticipationNotFound = repository.ErrParticipationNotFound
)

type ActivityRepository interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	FindAll(ctx context.Context) ([]domain.Activity, error)
	FindUpcoming(ctx context.Context) ([]domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, id uint) error
	RegisterParticipant(ctx context.Context, userID, activityID uint) (domain.Participation, error)
	CancelParticipation(ctx context.Context, userID, activityID uint) (domain.Participation, error)
	FindParticipationsByUserID(ctx context.Context, userID uint) ([]domain.Participation, error)
}

type ActivityService struct {
	repo ActivityRepository
}

func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{
		repo: repo,
	}
}

func (s *ActivityService) GetActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return activity, nil
}

// ListActivities returns all activities, or only future ones when
// upcomingOnly is set.
func (s *ActivityService) ListActivities(ctx context.Context, upcomingOnly bool) ([]domain.Activity, error) {
	var (
		activities []domain.Activity
		err        error
	)
	if upcomingOnly {
		activities, err = s.repo.FindUpcoming(ctx)
	} else {
		activities, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return activities, nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	updated, err := s.repo.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Register signs a user up for an activity. The seat is claimed
// atomically so the capacity can never be oversubscribed.
func (s *ActivityService) Register(ctx context.Context, userID, activityID uint) (domain.Participation, error) {
	participation, err := s.repo.RegisterParticipant(ctx, userID, activityID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyRegistered):
			return domain.Participation{}, ErrAlreadyRegistered
		case errors.Is(err, repository.ErrActivityFull):
			return domain.Participation{}, ErrActivityFull
		case errors.Is(err, repository.ErrActivityNotFound):
			return domain.Participation{}, ErrActivityNotFound
		}

		return domain.Participation{}, fmt.Errorf("s.repo.RegisterParticipant -> %w", err)
	}

	return participation, nil
}

// CancelRegistration cancels a user's active registration and frees
// the seat for someone else.
func (s *ActivityService) CancelRegistration(ctx context.Context, userID, activityID uint) (domain.Participation, error) {
	participation, err := s.repo.CancelParticipation(ctx, userID, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipationNotFound) {
			return domain.Participation{}, ErrParticipationNotFound
		}

		return domain.Participation{}, fmt.Errorf("s.repo.CancelParticipation -> %w", err)
	}

	return participation, nil
}

// GetUserParticipations returns a user's participations, each joined
// with the activity it belongs to.
func (s *ActivityService) GetUserParticipations(ctx context.Context, userID uint) ([]domain.UserParticipation, error) {
	participations, err := s.repo.FindParticipationsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindParticipationsByUserID -> %w", err)
	}

	result := make([]domain.UserParticipation, 0, len(participations))
	for _, p := range participations {
		activity, err := s.repo.FindByID(ctx, p.ActivityID)
		if err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				continue
			}

			return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
		}

		result = append(result, domain.UserParticipation{
			Participation: p,
			Activity:      activity,
		})
	}

	return result, nil
}
