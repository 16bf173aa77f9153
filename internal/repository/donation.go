package repository

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository/dao"
)

var ErrDonationNotFound = dao.ErrDonationNotFound

type DonationDAO interface {
	Insert(ctx context.Context, donation dao.Donation) (dao.Donation, error)
	FindByID(ctx context.Context, id uint) (dao.Donation, error)
	FindAll(ctx context.Context) ([]dao.Donation, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Donation, error)
	SumAmounts(ctx context.Context) (float64, error)
}

type DonationRepository struct {
	dao DonationDAO
}

func NewDonationRepository(dao DonationDAO) *DonationRepository {
	return &DonationRepository{
		dao: dao,
	}
}

func (r *DonationRepository) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	created, err := r.dao.Insert(ctx, dao.Donation{
		UserID:      donation.UserID,
		Name:        donation.Name,
		Email:       donation.Email,
		Type:        string(donation.Type),
		Amount:      donation.Amount,
		Description: donation.Description,
	})
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DonationRepository) FindAll(ctx context.Context) ([]domain.Donation, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *DonationRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Donation, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *DonationRepository) SumAmounts(ctx context.Context) (float64, error) {
	total, err := r.dao.SumAmounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.SumAmounts -> %w", err)
	}

	return total, nil
}

func (r *DonationRepository) daoToDomain(d dao.Donation) domain.Donation {
	return domain.Donation{
		ID:          d.ID,
		UserID:      d.UserID,
		Name:        d.Name,
		Email:       d.Email,
		Type:        domain.DonationType(d.Type),
		Amount:      d.Amount,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *DonationRepository) daosToDomain(found []dao.Donation) []domain.Donation {
	donations := make([]domain.Donation, len(found))
	for i, d := range found {
		donations[i] = r.daoToDomain(d)
	}

	return donations
}
