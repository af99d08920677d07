package models

import "time"

// Link rows. Each pair is unique at the persistence layer; violating the
// constraint surfaces as a Conflict, never a silent success.

// SpeakerFollower records that a user follows a speaker.
type SpeakerFollower struct {
	ID        int64     `json:"id" db:"id"`
	SpeakerID int64     `json:"speaker_id" db:"speaker_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChurchFollower records that a user follows a church.
type ChurchFollower struct {
	ID        int64     `json:"id" db:"id"`
	ChurchID  int64     `json:"church_id" db:"church_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SermonPreference is a thumbs-up/down on a sermon.
type SermonPreference struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
	SermonID  int64      `json:"sermon_id" db:"sermon_id"`
	Liked     bool       `json:"liked" db:"liked"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
