package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) RegisterUser(ctx context.Context, user domain.NewUser) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) AuthenticateUser(ctx context.Context, identifier, password string) (string, error) {
	args := m.Called(ctx, identifier, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) PatchUser(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock SessionRepository ---

type MockSessionRepository struct {
	mock.Mock
}

var _ portsrepo.SessionRepository = (*MockSessionRepository)(nil)

func (m *MockSessionRepository) CreateSession(ctx context.Context, userID string, lifetime time.Duration) (string, error) {
	args := m.Called(ctx, userID, lifetime)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) RevokeSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// --- Mock PasswordResetRepository ---

type MockPasswordResetRepository struct {
	mock.Mock
}

var _ portsrepo.PasswordResetRepository = (*MockPasswordResetRepository)(nil)

func (m *MockPasswordResetRepository) CreateReset(ctx context.Context, email string, lifetime time.Duration) (*domain.PasswordReset, error) {
	args := m.Called(ctx, email, lifetime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordReset), args.Error(1)
}

func (m *MockPasswordResetRepository) ConsumeReset(ctx context.Context, token, newPassword string) (bool, error) {
	args := m.Called(ctx, token, newPassword)
	return args.Bool(0), args.Error(1)
}

// --- Mock ScanHistoryRepository ---

type MockScanHistoryRepository struct {
	mock.Mock
}

var _ portsrepo.ScanHistoryRepository = (*MockScanHistoryRepository)(nil)

func (m *MockScanHistoryRepository) SaveScan(ctx context.Context, entry domain.ScanEntry) (*domain.ScanEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEntry), args.Error(1)
}

func (m *MockScanHistoryRepository) ListScans(ctx context.Context, userID string, limit, offset int) ([]domain.ScanEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanEntry), args.Error(1)
}

func (m *MockScanHistoryRepository) CountScans(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock IdentityVerifier ---

type MockIdentityVerifier struct {
	mock.Mock
}

var _ portssvc.IdentityVerifier = (*MockIdentityVerifier)(nil)

func (m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleIdentity, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleIdentity), args.Error(1)
}
