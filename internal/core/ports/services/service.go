package services

import (
	"github.com/upcyclehq/recycle_scan_api/internal/classifier"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User          UserSvcFacade
	Auth          AuthSvcFacade
	PasswordReset PasswordResetSvcFacade
	ScanHistory   ScanHistorySvcFacade
	Idea          IdeaSvcFacade
	Health        HealthSvcFacade
	Classifier    classifier.Classifier
}
