package models

import "time"

type Sermon struct {
	ID          int64      `json:"id" db:"id"`
	SpeakerID   int64      `json:"speaker_id" db:"speaker_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	MediaURL    string     `json:"media_url" db:"media_url"`
	IsClip      bool       `json:"is_clip" db:"is_clip"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`

	// Speaker is populated on reads that join the speakers table.
	Speaker *Speaker `json:"speaker,omitempty" db:"-"`
}
