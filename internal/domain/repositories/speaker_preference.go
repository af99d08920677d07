package repositories

import (
	"context"

	"pulpit/internal/domain/models"
)

// SpeakerPreferenceRepository manages the user_speaker_preferences link
// table populated by onboarding.
type SpeakerPreferenceRepository interface {
	// ReplaceForUser deletes the user's existing links and inserts one per
	// speakerID. Re-submission is idempotent with respect to final state:
	// the stored set always equals the last submitted set. Transaction-aware.
	ReplaceForUser(ctx context.Context, userID int64, speakerIDs []int64) error

	// ListSpeakerIDs returns the user's chosen speaker ids in ascending order
	ListSpeakerIDs(ctx context.Context, userID int64) ([]int64, error)

	// ListSpeakers returns the user's chosen speakers with church
	// projections, in primary-key order
	ListSpeakers(ctx context.Context, userID int64) ([]models.Speaker, error)
}
