package repositories

import (
	"context"

	"pulpit/internal/domain/models"
)

// UserFilter narrows List results. Nil fields mean "no filter".
type UserFilter struct {
	Username *string
	Email    *string
	IsActive *bool
	Skip     int
	Limit    int
}

// PreferenceUpdate carries the scalar onboarding fields written onto the
// user row. All three preference fields are written as given (including
// nil, which clears a previously set preference).
type PreferenceUpdate struct {
	BibleReadingPreference  *models.BibleApproach
	TeachingStylePreference *models.TeachingStyle
	EnvironmentPreference   *models.EnvironmentStyle
	OnboardingCompleted     bool
}

// UserRepository defines data access operations for users
type UserRepository interface {
	// Create inserts a user and fills in its generated ID and timestamps
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// List retrieves users matching the filter, ordered by id
	List(ctx context.Context, filter UserFilter) ([]models.User, error)

	// Update overwrites a user's mutable profile fields
	Update(ctx context.Context, user *models.User) error

	// UpdatePreferences writes the onboarding preference fields and the
	// completed flag onto the user row. Transaction-aware.
	UpdatePreferences(ctx context.Context, userID int64, update PreferenceUpdate) error

	// Delete removes a user row
	Delete(ctx context.Context, id int64) error
}
