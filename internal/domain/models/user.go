package models

import "time"

type User struct {
	ID                      int64             `json:"id" db:"id"`
	Username                string            `json:"username" db:"username"`
	Email                   string            `json:"email" db:"email"`
	Password                string            `json:"-" db:"password"`
	FirstName               string            `json:"first_name" db:"first_name"`
	LastName                string            `json:"last_name" db:"last_name"`
	IsActive                bool              `json:"is_active" db:"is_active"`
	OnboardingCompleted     bool              `json:"onboarding_completed" db:"onboarding_completed"`
	BibleReadingPreference  *BibleApproach    `json:"bible_reading_preference,omitempty" db:"bible_reading_preference"`
	TeachingStylePreference *TeachingStyle    `json:"teaching_style_preference,omitempty" db:"teaching_style_preference"`
	EnvironmentPreference   *EnvironmentStyle `json:"environment_preference,omitempty" db:"environment_preference"`
	CreatedAt               time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt               *time.Time        `json:"updated_at,omitempty" db:"updated_at"`
}

// UserWithSpeakers is the user projection returned by onboarding: the user
// row plus the speakers they explicitly chose.
type UserWithSpeakers struct {
	User
	PreferredSpeakers []Speaker `json:"preferred_speakers"`
}
