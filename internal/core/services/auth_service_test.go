package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/core/services"
	"github.com/upcyclehq/recycle_scan_api/internal/platform/config"
)

// MockUserProvisioning stubs federated account provisioning.
type MockUserProvisioning struct {
	mock.Mock
}

var _ portssvc.UserProvisioningSvc = (*MockUserProvisioning)(nil)

func (m *MockUserProvisioning) FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type AuthServiceTestSuite struct {
	suite.Suite
	cfg             *config.Config
	mockUserRepo    *MockUserRepository
	mockSessionRepo *MockSessionRepository
	mockProvision   *MockUserProvisioning
	mockVerifier    *MockIdentityVerifier
	service         portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{SessionLifetime: 7 * 24 * time.Hour}
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSessionRepo = new(MockSessionRepository)
	suite.mockProvision = new(MockUserProvisioning)
	suite.mockVerifier = new(MockIdentityVerifier)
	suite.service = services.NewAuthService(suite.cfg, suite.mockUserRepo, suite.mockSessionRepo, suite.mockProvision, suite.mockVerifier)
}

// --- LoginWithPassword Tests ---

func (suite *AuthServiceTestSuite) TestLoginWithPassword_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "maria"}

	suite.mockUserRepo.On("AuthenticateUser", ctx, "maria", "pw").Return(userID, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockSessionRepo.On("CreateSession", ctx, userID, suite.cfg.SessionLifetime).
		Return("opaque-session-token", nil).Once()

	gotUser, token, err := suite.service.LoginWithPassword(ctx, "maria", "pw")

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.Equal("opaque-session-token", token)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLoginWithPassword_InvalidCredentials() {
	ctx := context.Background()

	suite.mockUserRepo.On("AuthenticateUser", ctx, "nosuchuser", "pw").
		Return("", apperrors.ErrUnauthorized).Once()

	_, _, err := suite.service.LoginWithPassword(ctx, "nosuchuser", "pw")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "CreateSession", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLoginWithPassword_SessionCreationFails() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("AuthenticateUser", ctx, "maria", "pw").Return(userID, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockSessionRepo.On("CreateSession", ctx, userID, suite.cfg.SessionLifetime).
		Return("", assert.AnError).Once()

	_, _, err := suite.service.LoginWithPassword(ctx, "maria", "pw")

	suite.Require().Error(err)
	// Authentication succeeded; the failure is distinguishable from a
	// credential problem so the login is not silently lost.
	suite.ErrorIs(err, apperrors.ErrSessionCreation)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLoginWithPassword_UserLoadFailureIsSessionFailure() {
	ctx := context.Background()
	userID := uuid.NewString()

	// The credentials were accepted; a store failure while loading the
	// authenticated user must read as a session problem, not as a bad login.
	suite.mockUserRepo.On("AuthenticateUser", ctx, "maria", "pw").Return(userID, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(nil, assert.AnError).Once()

	_, _, err := suite.service.LoginWithPassword(ctx, "maria", "pw")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSessionCreation)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "CreateSession", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLoginWithPassword_MissingFields() {
	_, _, err := suite.service.LoginWithPassword(context.Background(), "", "pw")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = suite.service.LoginWithPassword(context.Background(), "maria", "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockUserRepo.AssertNotCalled(suite.T(), "AuthenticateUser", mock.Anything, mock.Anything, mock.Anything)
}

// --- LoginWithGoogle Tests ---

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	identity := &domain.GoogleIdentity{Email: "maria@example.com", Subject: "sub-123", Name: "Maria"}
	user := &domain.User{UserID: userID, Email: identity.Email}

	suite.mockVerifier.On("VerifyIDToken", ctx, "good-id-token").Return(identity, nil).Once()
	suite.mockProvision.On("FindOrCreateGoogleUser", ctx, *identity).Return(user, nil).Once()
	suite.mockSessionRepo.On("CreateSession", ctx, userID, suite.cfg.SessionLifetime).
		Return("session-token", nil).Once()

	gotUser, token, err := suite.service.LoginWithGoogle(ctx, "good-id-token")

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.Equal("session-token", token)
}

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_VerificationFails() {
	ctx := context.Background()

	suite.mockVerifier.On("VerifyIDToken", ctx, "bad-token").
		Return(nil, assert.AnError).Once()

	_, _, err := suite.service.LoginWithGoogle(ctx, "bad-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockProvision.AssertNotCalled(suite.T(), "FindOrCreateGoogleUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_MissingClaims() {
	ctx := context.Background()

	// A token that verifies but lacks email or subject is still rejected.
	suite.mockVerifier.On("VerifyIDToken", ctx, "empty-claims").
		Return(&domain.GoogleIdentity{Subject: "sub-only"}, nil).Once()

	_, _, err := suite.service.LoginWithGoogle(ctx, "empty-claims")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- ValidateSession Tests ---

func (suite *AuthServiceTestSuite) TestValidateSession_Valid() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockSessionRepo.On("FindValidSession", ctx, "tok").
		Return(&domain.Session{Token: "tok", UserID: userID}, nil).Once()

	gotID, err := suite.service.ValidateSession(ctx, "tok")

	suite.Require().NoError(err)
	suite.Equal(userID, gotID)
}

func (suite *AuthServiceTestSuite) TestValidateSession_RevokedOrExpired() {
	ctx := context.Background()

	// The store's lookup only matches unrevoked, unexpired sessions, so a
	// revoked or expired token surfaces as not-found.
	suite.mockSessionRepo.On("FindValidSession", ctx, "stale").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ValidateSession(ctx, "stale")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Logout Tests ---

func (suite *AuthServiceTestSuite) TestLogout_Revokes() {
	ctx := context.Background()

	suite.mockSessionRepo.On("RevokeSession", ctx, "tok").Return(nil).Once()

	suite.Require().NoError(suite.service.Logout(ctx, "tok"))
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
