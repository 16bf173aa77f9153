package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact not found")

type Contact struct {
	ID uint `gorm:"primaryKey"`

	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Subject string `gorm:"not null"`
	Message string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type ContactDAO struct {
	db *gorm.DB
}

func NewContactDAO(db *gorm.DB) *ContactDAO {
	return &ContactDAO{
		db: db,
	}
}

func (d *ContactDAO) Insert(ctx context.Context, contact Contact) (Contact, error) {
	result := d.db.WithContext(ctx).Create(&contact)
	if result.Error != nil {
		return Contact{}, result.Error
	}

	return contact, nil
}

func (d *ContactDAO) FindByID(ctx context.Context, id uint) (Contact, error) {
	var contact Contact

	result := d.db.WithContext(ctx).First(&contact, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Contact{}, ErrContactNotFound
		}

		return Contact{}, result.Error
	}

	return contact, nil
}

func (d *ContactDAO) FindAll(ctx context.Context) ([]Contact, error) {
	var contacts []Contact

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&contacts)
	if result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}
