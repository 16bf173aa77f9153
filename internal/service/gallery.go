package service

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository"
)

var ErrGalleryItemNotFound = repository.ErrGalleryItemNotFound

type GalleryRepository interface {
	Create(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error)
	FindAll(ctx context.Context) ([]domain.GalleryItem, error)
	Delete(ctx context.Context, id uint) error
}

type GalleryService struct {
	repo GalleryRepository
}

func NewGalleryService(repo GalleryRepository) *GalleryService {
	return &GalleryService{
		repo: repo,
	}
}

func (s *GalleryService) AddItem(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error) {
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.GalleryItem{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *GalleryService) ListItems(ctx context.Context) ([]domain.GalleryItem, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return items, nil
}

func (s *GalleryService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
