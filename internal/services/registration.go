package services

import (
	"context"
	"errors"
	"fmt"

	"almocoprodigi/internal/domain"
)

type registrationService struct {
	repo domain.RegistrationRepository
}

// NewRegistrationService creates a RegistrationService backed by the given
// repository.
func NewRegistrationService(repo domain.RegistrationRepository) domain.RegistrationService {
	return &registrationService{repo: repo}
}

func (s *registrationService) Register(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

func (s *registrationService) CancelByID(ctx context.Context, id int) (*domain.Registration, bool, error) {
	reg, err := s.repo.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCancelled) {
			// Idempotent: report the earlier cancellation, change nothing.
			return reg, false, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("cancel registration: %w", err)
	}
	return reg, true, nil
}

func (s *registrationService) CancelByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	reg, err := s.repo.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find active registration: %w", err)
	}
	if _, err := s.repo.Cancel(ctx, reg.ID); err != nil && !errors.Is(err, domain.ErrAlreadyCancelled) {
		return nil, fmt.Errorf("cancel registration: %w", err)
	}
	return reg, nil
}

func (s *registrationService) List(ctx context.Context) ([]*domain.Registration, error) {
	regs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
