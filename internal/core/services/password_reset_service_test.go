package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/core/services"
	"github.com/upcyclehq/recycle_scan_api/internal/platform/config"
)

type PasswordResetServiceTestSuite struct {
	suite.Suite
	cfg           *config.Config
	mockResetRepo *MockPasswordResetRepository
	service       portssvc.PasswordResetSvcFacade
}

func (suite *PasswordResetServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{ResetTokenLifetime: 30 * time.Minute}
	suite.mockResetRepo = new(MockPasswordResetRepository)
	suite.service = services.NewPasswordResetService(suite.cfg, suite.mockResetRepo)
}

func (suite *PasswordResetServiceTestSuite) TestRequestReset_KnownEmail() {
	ctx := context.Background()
	reset := &domain.PasswordReset{
		Token:     "reset-token",
		UserID:    uuid.NewString(),
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	suite.mockResetRepo.On("CreateReset", ctx, "maria@example.com", suite.cfg.ResetTokenLifetime).
		Return(reset, nil).Once()

	got, err := suite.service.RequestReset(ctx, "maria@example.com")

	suite.Require().NoError(err)
	suite.Equal(reset, got)
}

func (suite *PasswordResetServiceTestSuite) TestRequestReset_UnknownEmailIsNotAnError() {
	ctx := context.Background()

	suite.mockResetRepo.On("CreateReset", ctx, "ghost@example.com", suite.cfg.ResetTokenLifetime).
		Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.RequestReset(ctx, "ghost@example.com")

	// (nil, nil) lets the handler answer with the same generic success as
	// for a registered email.
	suite.Require().NoError(err)
	suite.Nil(got)
}

func (suite *PasswordResetServiceTestSuite) TestRequestReset_StoreFailure() {
	ctx := context.Background()

	suite.mockResetRepo.On("CreateReset", ctx, "maria@example.com", suite.cfg.ResetTokenLifetime).
		Return(nil, assert.AnError).Once()

	_, err := suite.service.RequestReset(ctx, "maria@example.com")

	suite.Require().Error(err)
}

func (suite *PasswordResetServiceTestSuite) TestConsumeReset_Valid() {
	ctx := context.Background()

	suite.mockResetRepo.On("ConsumeReset", ctx, "reset-token", "new-password").
		Return(true, nil).Once()

	ok, err := suite.service.ConsumeReset(ctx, "reset-token", "new-password")

	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *PasswordResetServiceTestSuite) TestConsumeReset_UsedExpiredOrUnknown() {
	ctx := context.Background()

	suite.mockResetRepo.On("ConsumeReset", ctx, "stale-token", "new-password").
		Return(false, nil).Once()

	ok, err := suite.service.ConsumeReset(ctx, "stale-token", "new-password")

	suite.Require().NoError(err)
	suite.False(ok)
}

func TestPasswordResetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PasswordResetServiceTestSuite))
}
