package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellcap/association-api/internal/domain"
)

type fakeDonationRepo struct {
	donations []domain.Donation
}

func (f *fakeDonationRepo) Create(_ context.Context, donation domain.Donation) (domain.Donation, error) {
	donation.ID = uint(len(f.donations) + 1)
	f.donations = append(f.donations, donation)

	return donation, nil
}

func (f *fakeDonationRepo) FindAll(context.Context) ([]domain.Donation, error) {
	return f.donations, nil
}

func (f *fakeDonationRepo) FindByUserID(_ context.Context, userID uint) ([]domain.Donation, error) {
	var found []domain.Donation
	for _, d := range f.donations {
		if d.UserID != nil && *d.UserID == userID {
			found = append(found, d)
		}
	}

	return found, nil
}

func TestDonationService_CreateDonation(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{})
	amount := 50.0

	created, err := svc.CreateDonation(context.Background(), domain.Donation{
		Name:   "Alice",
		Email:  "alice@example.com",
		Type:   domain.DonationFinancial,
		Amount: &amount,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestDonationService_CreateDonation_FinancialNeedsAmount(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{})

	_, err := svc.CreateDonation(context.Background(), domain.Donation{
		Name:  "Alice",
		Email: "alice@example.com",
		Type:  domain.DonationFinancial,
	})
	assert.ErrorIs(t, err, domain.ErrDonationAmountRequired)

	negative := -5.0
	_, err = svc.CreateDonation(context.Background(), domain.Donation{
		Type:   domain.DonationFinancial,
		Amount: &negative,
	})
	assert.ErrorIs(t, err, domain.ErrDonationAmountRequired)
}

func TestDonationService_CreateDonation_InKindNeedsDescription(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{})

	for _, donationType := range []domain.DonationType{domain.DonationTechnical, domain.DonationMaterial} {
		_, err := svc.CreateDonation(context.Background(), domain.Donation{Type: donationType})
		assert.ErrorIs(t, err, domain.ErrDonationDetailsRequired, "type %q", donationType)

		_, err = svc.CreateDonation(context.Background(), domain.Donation{
			Type:        donationType,
			Description: "ten laptops",
		})
		assert.NoError(t, err, "type %q", donationType)
	}
}

func TestDonationService_CreateDonation_InvalidType(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{})

	_, err := svc.CreateDonation(context.Background(), domain.Donation{Type: "crypto"})
	assert.ErrorIs(t, err, domain.ErrDonationInvalidType)
}
