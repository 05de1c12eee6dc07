package repositories

import (
	"context"
	"time"
)

// HealthRepository checks that the store is reachable.
type HealthRepository interface {
	// Check runs a trivial query and returns the store's clock.
	Check(ctx context.Context) (time.Time, error)
}
