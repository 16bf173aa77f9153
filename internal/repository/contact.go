package repository

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository/dao"
)

var ErrContactNotFound = dao.ErrContactNotFound

type ContactDAO interface {
	Insert(ctx context.Context, contact dao.Contact) (dao.Contact, error)
	FindByID(ctx context.Context, id uint) (dao.Contact, error)
	FindAll(ctx context.Context) ([]dao.Contact, error)
}

type ContactRepository struct {
	dao ContactDAO
}

func NewContactRepository(dao ContactDAO) *ContactRepository {
	return &ContactRepository{
		dao: dao,
	}
}

func (r *ContactRepository) Create(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	created, err := r.dao.Insert(ctx, dao.Contact{
		Name:    contact.Name,
		Email:   contact.Email,
		Subject: contact.Subject,
		Message: contact.Message,
	})
	if err != nil {
		return domain.Contact{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]domain.Contact, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	contacts := make([]domain.Contact, len(found))
	for i, c := range found {
		contacts[i] = r.daoToDomain(c)
	}

	return contacts, nil
}

func (r *ContactRepository) daoToDomain(c dao.Contact) domain.Contact {
	return domain.Contact{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
