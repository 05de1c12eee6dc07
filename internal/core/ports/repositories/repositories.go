package repositories

// RepositoryProvider holds instances of all repositories backed by the store.
// Constructed once at startup and handed to the service container.
type RepositoryProvider struct {
	UserRepo          UserRepository
	SessionRepo       SessionRepository
	PasswordResetRepo PasswordResetRepository
	ScanHistoryRepo   ScanHistoryRepository
	HealthRepo        HealthRepository
}
