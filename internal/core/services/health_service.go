package services

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
)

type healthService struct {
	healthRepo portsrepo.HealthRepository
}

// NewHealthService creates the health-check service.
func NewHealthService(healthRepo portsrepo.HealthRepository) portssvc.HealthSvcFacade {
	return &healthService{healthRepo: healthRepo}
}

var _ portssvc.HealthSvcFacade = (*healthService)(nil)

func (s *healthService) Check(ctx context.Context) (time.Time, error) {
	now, err := s.healthRepo.Check(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("database health check failed: %w", err)
	}
	return now, nil
}
