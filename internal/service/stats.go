package service

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
)

// trainingHoursPerActivity credits a flat number of training hours for
// every activity a user attended.
const trainingHoursPerActivity = 2

type StatsProjectRepository interface {
	Count(ctx context.Context) (int, error)
	CountCompletedByUserID(ctx context.Context, userID uint) (int, error)
}

type StatsActivityRepository interface {
	Count(ctx context.Context) (int, error)
	CountByType(ctx context.Context, activityType domain.ActivityType) (int, error)
	FindParticipationsByUserID(ctx context.Context, userID uint) ([]domain.Participation, error)
}

type StatsUserRepository interface {
	Count(ctx context.Context) (int, error)
}

type StatsDonationRepository interface {
	SumAmounts(ctx context.Context) (float64, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Donation, error)
}

type StatsService struct {
	projectRepo  StatsProjectRepository
	activityRepo StatsActivityRepository
	userRepo     StatsUserRepository
	donationRepo StatsDonationRepository
}

func NewStatsService(
	projectRepo StatsProjectRepository,
	activityRepo StatsActivityRepository,
	userRepo StatsUserRepository,
	donationRepo StatsDonationRepository,
) *StatsService {
	return &StatsService{
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		donationRepo: donationRepo,
	}
}

// GetSiteStats aggregates the public landing page counters.
func (s *StatsService) GetSiteStats(ctx context.Context) (domain.SiteStats, error) {
	projects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return domain.SiteStats{}, fmt.Errorf("s.projectRepo.Count -> %w", err)
	}

	activities, err := s.activityRepo.Count(ctx)
	if err != nil {
		return domain.SiteStats{}, fmt.Errorf("s.activityRepo.Count -> %w", err)
	}

	workshops, err := s.activityRepo.CountByType(ctx, domain.ActivityWorkshop)
	if err != nil {
		return domain.SiteStats{}, fmt.Errorf("s.activityRepo.CountByType -> %w", err)
	}

	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return domain.SiteStats{}, fmt.Errorf("s.userRepo.Count -> %w", err)
	}

	donations, err := s.donationRepo.SumAmounts(ctx)
	if err != nil {
		return domain.SiteStats{}, fmt.Errorf("s.donationRepo.SumAmounts -> %w", err)
	}

	return domain.SiteStats{
		Projects:        projects,
		TotalActivities: activities,
		Workshops:       workshops,
		TotalUsers:      users,
		TotalDonations:  donations,
	}, nil
}

// GetUserStats aggregates a user's dashboard counters from their
// participations, projects and donations.
func (s *StatsService) GetUserStats(ctx context.Context, userID uint) (domain.UserStats, error) {
	completedProjects, err := s.projectRepo.CountCompletedByUserID(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("s.projectRepo.CountCompletedByUserID -> %w", err)
	}

	participations, err := s.activityRepo.FindParticipationsByUserID(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("s.activityRepo.FindParticipationsByUserID -> %w", err)
	}

	var joined, attended int
	for _, p := range participations {
		switch p.Status {
		case domain.ParticipationRegistered:
			joined++
		case domain.ParticipationAttended:
			joined++
			attended++
		}
	}

	donations, err := s.donationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("s.donationRepo.FindByUserID -> %w", err)
	}

	var totalDonated float64
	for _, d := range donations {
		if d.Amount != nil {
			totalDonated += *d.Amount
		}
	}

	return domain.UserStats{
		CompletedProjects:  completedProjects,
		TrainingHours:      attended * trainingHoursPerActivity,
		TotalDonated:       totalDonated,
		ActivitiesJoined:   joined,
		ActivitiesAttended: attended,
	}, nil
}
