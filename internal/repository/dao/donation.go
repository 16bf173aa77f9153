package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDonationNotFound = errors.New("donation not found")

type Donation struct {
	ID uint `gorm:"primaryKey"`

	UserID      *uint
	Name        string   `gorm:"not null"`
	Email       string   `gorm:"not null"`
	Type        string   `gorm:"not null"`
	Amount      *float64 `gorm:"type:decimal(10,2)"`
	Description string

	CreatedAt time.Time `gorm:"not null"`
}

type DonationDAO struct {
	db *gorm.DB
}

func NewDonationDAO(db *gorm.DB) *DonationDAO {
	return &DonationDAO{
		db: db,
	}
}

func (d *DonationDAO) Insert(ctx context.Context, donation Donation) (Donation, error) {
	result := d.db.WithContext(ctx).Create(&donation)
	if result.Error != nil {
		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) FindByID(ctx context.Context, id uint) (Donation, error) {
	var donation Donation

	result := d.db.WithContext(ctx).First(&donation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donation{}, ErrDonationNotFound
		}

		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) FindAll(ctx context.Context) ([]Donation, error) {
	var donations []Donation

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}

// SumAmounts totals the financial donations across all donors.
func (d *DonationDAO) SumAmounts(ctx context.Context) (float64, error) {
	var total float64

	result := d.db.WithContext(ctx).Model(&Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

func (d *DonationDAO) FindByUserID(ctx context.Context, userID uint) ([]Donation, error) {
	var donations []Donation

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}
