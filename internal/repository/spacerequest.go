package repository

import (
	"context"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository/dao"
)

var ErrSpaceRequestNotFound = dao.ErrSpaceRequestNotFound

type SpaceRequestDAO interface {
	Insert(ctx context.Context, request dao.SpaceRequest) (dao.SpaceRequest, error)
	FindByID(ctx context.Context, id uint) (dao.SpaceRequest, error)
	FindAll(ctx context.Context) ([]dao.SpaceRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.SpaceRequest, error)
}

type SpaceRequestRepository struct {
	dao SpaceRequestDAO
}

func NewSpaceRequestRepository(dao SpaceRequestDAO) *SpaceRequestRepository {
	return &SpaceRequestRepository{
		dao: dao,
	}
}

func (r *SpaceRequestRepository) Create(ctx context.Context, request domain.SpaceRequest) (domain.SpaceRequest, error) {
	created, err := r.dao.Insert(ctx, dao.SpaceRequest{
		UserID:  request.UserID,
		Name:    request.Name,
		Email:   request.Email,
		Type:    string(request.Type),
		Details: request.Details,
		Status:  string(domain.SpaceRequestPending),
	})
	if err != nil {
		return domain.SpaceRequest{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SpaceRequestRepository) FindByID(ctx context.Context, id uint) (domain.SpaceRequest, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.SpaceRequest{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SpaceRequestRepository) FindAll(ctx context.Context) ([]domain.SpaceRequest, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	requests := make([]domain.SpaceRequest, len(found))
	for i, req := range found {
		requests[i] = r.daoToDomain(req)
	}

	return requests, nil
}

func (r *SpaceRequestRepository) UpdateStatus(ctx context.Context, id uint, status domain.SpaceRequestStatus) (domain.SpaceRequest, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return domain.SpaceRequest{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SpaceRequestRepository) daoToDomain(req dao.SpaceRequest) domain.SpaceRequest {
	return domain.SpaceRequest{
		ID:        req.ID,
		UserID:    req.UserID,
		Name:      req.Name,
		Email:     req.Email,
		Type:      domain.SpaceRequestType(req.Type),
		Details:   req.Details,
		Status:    domain.SpaceRequestStatus(req.Status),
		CreatedAt: req.CreatedAt,
	}
}
