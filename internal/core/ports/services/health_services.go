package services

import (
	"context"
	"time"
)

// HealthSvcFacade reports store reachability for the health endpoint.
type HealthSvcFacade interface {
	// Check pings the store and returns its clock.
	Check(ctx context.Context) (time.Time, error)
}
