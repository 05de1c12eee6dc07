package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		SessionRepo:       newPgxSessionRepository(dbPool),
		PasswordResetRepo: newPgxPasswordResetRepository(dbPool),
		ScanHistoryRepo:   newPgxScanHistoryRepository(dbPool),
		HealthRepo:        newPgxHealthRepository(dbPool),
	}
}
