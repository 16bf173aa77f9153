package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository"
)

var (
	ErrSettingNotFound   = repository.ErrSettingNotFound
	ErrInvalidSettingKey = errors.New("invalid setting key")
)

type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (domain.Setting, error)
	FindAll(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, setting domain.Setting) (domain.Setting, error)
}

type SettingService struct {
	repo SettingRepository
}

func NewSettingService(repo SettingRepository) *SettingService {
	return &SettingService{
		repo: repo,
	}
}

func (s *SettingService) GetSetting(ctx context.Context, key string) (domain.Setting, error) {
	if err := validateSettingKey(key); err != nil {
		return domain.Setting{}, err
	}

	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return domain.Setting{}, fmt.Errorf("s.repo.FindByKey -> %w", err)
	}

	return setting, nil
}

func (s *SettingService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return settings, nil
}

// UpsertSetting creates the setting if the key is new, otherwise
// overwrites its value.
func (s *SettingService) UpsertSetting(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	if err := validateSettingKey(setting.Key); err != nil {
		return domain.Setting{}, err
	}

	upserted, err := s.repo.Upsert(ctx, setting)
	if err != nil {
		return domain.Setting{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return upserted, nil
}

// validateSettingKey rejects empty keys and the literal string "null",
// which shows up when a client serializes a JS null into the URL.
func validateSettingKey(key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return ErrInvalidSettingKey
	}

	return nil
}
