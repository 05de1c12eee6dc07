package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/platform/config"
)

type passwordResetService struct {
	cfg       *config.Config
	resetRepo portsrepo.PasswordResetRepository
}

// NewPasswordResetService creates the reset-token service.
func NewPasswordResetService(cfg *config.Config, resetRepo portsrepo.PasswordResetRepository) portssvc.PasswordResetSvcFacade {
	return &passwordResetService{cfg: cfg, resetRepo: resetRepo}
}

var _ portssvc.PasswordResetSvcFacade = (*passwordResetService)(nil)

// RequestReset issues a token for a known email. For an unknown email it
// returns (nil, nil): the handler responds with the same generic success
// either way so account existence cannot be probed.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) (*domain.PasswordReset, error) {
	reset, err := s.resetRepo.CreateReset(ctx, email, s.cfg.ResetTokenLifetime)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create password reset: %w", err)
	}
	return reset, nil
}

func (s *passwordResetService) ConsumeReset(ctx context.Context, token, newPassword string) (bool, error) {
	ok, err := s.resetRepo.ConsumeReset(ctx, token, newPassword)
	if err != nil {
		return false, fmt.Errorf("failed to consume password reset: %w", err)
	}
	return ok, nil
}
