package repository

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository/dao"
)

var ErrGalleryItemNotFound = dao.ErrGalleryItemNotFound

type GalleryDAO interface {
	Insert(ctx context.Context, item dao.GalleryItem) (dao.GalleryItem, error)
	FindAll(ctx context.Context) ([]dao.GalleryItem, error)
	Delete(ctx context.Context, id uint) error
}

type GalleryRepository struct {
	dao GalleryDAO
}

func NewGalleryRepository(dao GalleryDAO) *GalleryRepository {
	return &GalleryRepository{
		dao: dao,
	}
}

func (r *GalleryRepository) Create(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error) {
	created, err := r.dao.Insert(ctx, dao.GalleryItem{
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Category:    item.Category,
	})
	if err != nil {
		return domain.GalleryItem{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GalleryRepository) FindAll(ctx context.Context) ([]domain.GalleryItem, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.GalleryItem, len(found))
	for i, item := range found {
		items[i] = r.daoToDomain(item)
	}

	return items, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *GalleryRepository) daoToDomain(item dao.GalleryItem) domain.GalleryItem {
	return domain.GalleryItem{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Category:    item.Category,
		CreatedAt:   item.CreatedAt,
	}
}
