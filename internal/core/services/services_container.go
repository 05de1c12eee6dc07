package services

import (
	"time"

	"github.com/upcyclehq/recycle_scan_api/internal/classifier"
	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/platform/config"
)

// NewServiceContainer wires all application services over the repository
// provider. Construction order matters only for the user service, which the
// auth service uses to provision federated accounts.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)
	verifier := NewGoogleIdentityVerifier(cfg.GoogleClientID)
	authSvc := NewAuthService(cfg, repos.UserRepo, repos.SessionRepo, userSvc, verifier)

	return &portssvc.ServiceContainer{
		User:          userSvc,
		Auth:          authSvc,
		PasswordReset: NewPasswordResetService(cfg, repos.PasswordResetRepo),
		ScanHistory:   NewScanHistoryService(repos.ScanHistoryRepo),
		Idea:          NewIdeaService(),
		Health:        NewHealthService(repos.HealthRepo),
		Classifier:    newClassifier(cfg),
	}
}

func newClassifier(cfg *config.Config) classifier.Classifier {
	if cfg.ClassifierBackend == config.ClassifierRemote {
		return classifier.NewRemoteDetector(cfg.DetectionAPIURL, nil)
	}
	return classifier.NewMock(time.Now().UnixNano())
}
