package dto

import (
	"time"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	"github.com/upcyclehq/recycle_scan_api/internal/utils"
)

// ProfileResponse mirrors the row shape the mobile client already consumes,
// hence the snake_case keys. FullName carries the derived display name.
type ProfileResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToProfileResponse converts a domain.User, computing the display name.
func ToProfileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:          u.UserID,
		Email:       u.Email,
		Username:    u.Username,
		FullName:    utils.DisplayName(u.FullName, u.Username),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// UpdateProfileRequest defines the data allowed for updating a profile.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
	Username *string `json:"username"`
}

// ProfileSummary is the updated subset echoed back after a profile update.
type ProfileSummary struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

// UpdateProfileResponse wraps the update confirmation.
type UpdateProfileResponse struct {
	Message string         `json:"message"`
	Profile ProfileSummary `json:"profile"`
}

// ToUpdateProfileResponse builds the confirmation for an updated user.
func ToUpdateProfileResponse(u *domain.User) UpdateProfileResponse {
	return UpdateProfileResponse{
		Message: "Profile updated successfully",
		Profile: ProfileSummary{
			FullName: utils.DisplayName(u.FullName, u.Username),
			Username: u.Username,
		},
	}
}
