package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository"
)

var (
	ErrSpaceRequestNotFound   = repository.ErrSpaceRequestNotFound
	ErrRequestAlreadyResolved = errors.New("space request has already been resolved")
	ErrInvalidRequestStatus   = errors.New("invalid space request status")
)

type SpaceRequestRepository interface {
	Create(ctx context.Context, request domain.SpaceRequest) (domain.SpaceRequest, error)
	FindByID(ctx context.Context, id uint) (domain.SpaceRequest, error)
	FindAll(ctx context.Context) ([]domain.SpaceRequest, error)
	UpdateStatus(ctx context.Context, id uint, status domain.SpaceRequestStatus) (domain.SpaceRequest, error)
}

type SpaceRequestService struct {
	repo SpaceRequestRepository
}

func NewSpaceRequestService(repo SpaceRequestRepository) *SpaceRequestService {
	return &SpaceRequestService{
		repo: repo,
	}
}

// CreateRequest files a new space request, always starting as pending.
func (s *SpaceRequestService) CreateRequest(ctx context.Context, request domain.SpaceRequest) (domain.SpaceRequest, error) {
	request.Status = domain.SpaceRequestPending

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		return domain.SpaceRequest{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SpaceRequestService) ListRequests(ctx context.Context) ([]domain.SpaceRequest, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return requests, nil
}

// Resolve moves a pending request to approved or rejected. A request
// can be resolved only once.
func (s *SpaceRequestService) Resolve(ctx context.Context, id uint, status domain.SpaceRequestStatus) (domain.SpaceRequest, error) {
	if status != domain.SpaceRequestApproved && status != domain.SpaceRequestRejected {
		return domain.SpaceRequest{}, ErrInvalidRequestStatus
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.SpaceRequest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if existing.Status.IsTerminal() {
		return domain.SpaceRequest{}, ErrRequestAlreadyResolved
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.SpaceRequest{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return updated, nil
}
