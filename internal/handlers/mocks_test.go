package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
)

// --- Mock UserService ---

type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock AuthService ---

type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) LoginWithPassword(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) LoginWithGoogle(ctx context.Context, idToken string) (*domain.User, string, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// --- Mock ScanHistoryService ---

type MockScanHistoryService struct {
	mock.Mock
}

var _ portssvc.ScanHistorySvcFacade = (*MockScanHistoryService)(nil)

func (m *MockScanHistoryService) AppendScan(ctx context.Context, userID string, req dto.SaveScanRequest) (*domain.ScanEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEntry), args.Error(1)
}

func (m *MockScanHistoryService) ListScans(ctx context.Context, userID string, limit, offset int) ([]domain.ScanEntry, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.ScanEntry), args.Get(1).(int64), args.Error(2)
}

// --- Mock PasswordResetService ---

type MockPasswordResetService struct {
	mock.Mock
}

var _ portssvc.PasswordResetSvcFacade = (*MockPasswordResetService)(nil)

func (m *MockPasswordResetService) RequestReset(ctx context.Context, email string) (*domain.PasswordReset, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordReset), args.Error(1)
}

func (m *MockPasswordResetService) ConsumeReset(ctx context.Context, token, newPassword string) (bool, error) {
	args := m.Called(ctx, token, newPassword)
	return args.Bool(0), args.Error(1)
}

// --- Mock HealthService ---

type MockHealthService struct {
	mock.Mock
}

var _ portssvc.HealthSvcFacade = (*MockHealthService)(nil)

func (m *MockHealthService) Check(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

// expiresIn is a small helper for reset fixtures.
func expiresIn(d time.Duration) time.Time {
	return time.Now().Add(d)
}
