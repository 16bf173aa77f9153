package service

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
)

type DonationRepository interface {
	Create(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	FindAll(ctx context.Context) ([]domain.Donation, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Donation, error)
}

type DonationService struct {
	repo DonationRepository
}

func NewDonationService(repo DonationRepository) *DonationService {
	return &DonationService{
		repo: repo,
	}
}

// CreateDonation records a donation pledge after validating the fields
// required by its type.
func (s *DonationService) CreateDonation(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	if err := donation.Validate(); err != nil {
		return domain.Donation{}, err
	}

	created, err := s.repo.Create(ctx, donation)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *DonationService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	donations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return donations, nil
}
