package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrGalleryItemNotFound = errors.New("gallery item not found")

type GalleryItem struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	ImageURL    string `gorm:"not null"`
	Category    string

	CreatedAt time.Time `gorm:"not null"`
}

type GalleryDAO struct {
	db *gorm.DB
}

func NewGalleryDAO(db *gorm.DB) *GalleryDAO {
	return &GalleryDAO{
		db: db,
	}
}

func (d *GalleryDAO) Insert(ctx context.Context, item GalleryItem) (GalleryItem, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return GalleryItem{}, result.Error
	}

	return item, nil
}

func (d *GalleryDAO) FindAll(ctx context.Context) ([]GalleryItem, error) {
	var items []GalleryItem

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *GalleryDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&GalleryItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryItemNotFound
	}

	return nil
}
