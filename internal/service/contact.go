package service

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	FindAll(ctx context.Context) ([]domain.Contact, error)
}

type ContactService struct {
	repo ContactRepository
}

func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{
		repo: repo,
	}
}

func (s *ContactService) CreateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ContactService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return contacts, nil
}
