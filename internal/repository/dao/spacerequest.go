package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSpaceRequestNotFound = errors.New("space request not found")

type SpaceRequest struct {
	ID uint `gorm:"primaryKey"`

	UserID  *uint
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Type    string `gorm:"not null"`
	Details string `gorm:"not null"`
	Status  string `gorm:"not null;default:pending"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SpaceRequestDAO struct {
	db *gorm.DB
}

func NewSpaceRequestDAO(db *gorm.DB) *SpaceRequestDAO {
	return &SpaceRequestDAO{
		db: db,
	}
}

func (d *SpaceRequestDAO) Insert(ctx context.Context, request SpaceRequest) (SpaceRequest, error) {
	result := d.db.WithContext(ctx).Create(&request)
	if result.Error != nil {
		return SpaceRequest{}, result.Error
	}

	return request, nil
}

func (d *SpaceRequestDAO) FindByID(ctx context.Context, id uint) (SpaceRequest, error) {
	var request SpaceRequest

	result := d.db.WithContext(ctx).First(&request, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SpaceRequest{}, ErrSpaceRequestNotFound
		}

		return SpaceRequest{}, result.Error
	}

	return request, nil
}

func (d *SpaceRequestDAO) FindAll(ctx context.Context) ([]SpaceRequest, error) {
	var requests []SpaceRequest

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}

func (d *SpaceRequestDAO) UpdateStatus(ctx context.Context, id uint, status string) (SpaceRequest, error) {
	result := d.db.WithContext(ctx).Model(&SpaceRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return SpaceRequest{}, result.Error
	}
	if result.RowsAffected == 0 {
		return SpaceRequest{}, ErrSpaceRequestNotFound
	}

	return d.FindByID(ctx, id)
}
