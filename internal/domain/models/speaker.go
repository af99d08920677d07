package models

import "time"

// SpeakingTopic is one entry in a speaker's speaking_topics JSONB array.
type SpeakingTopic struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
}

type Speaker struct {
	ID                int64            `json:"id" db:"id"`
	ChurchID          *int64           `json:"church_id,omitempty" db:"church_id"`
	Name              string           `json:"name" db:"name"`
	Title             string           `json:"title" db:"title"`
	Bio               *string          `json:"bio,omitempty" db:"bio"`
	Email             *string          `json:"email,omitempty" db:"email"`
	Phone             *string          `json:"phone,omitempty" db:"phone"`
	YearsOfService    *int             `json:"years_of_service,omitempty" db:"years_of_service"`
	ProfilePictureURL *string          `json:"profile_picture_url,omitempty" db:"profile_picture_url"`
	SocialMedia       JSONMap          `json:"social_media,omitempty" db:"social_media"`
	SpeakingTopics    []SpeakingTopic  `json:"speaking_topics" db:"speaking_topics"`
	SortOrder         int              `json:"sort_order" db:"sort_order"`
	TeachingStyle     TeachingStyle    `json:"teaching_style" db:"teaching_style"`
	BibleApproach     BibleApproach    `json:"bible_approach" db:"bible_approach"`
	EnvironmentStyle  EnvironmentStyle `json:"environment_style" db:"environment_style"`
	IsRecommended     bool             `json:"is_recommended" db:"is_recommended"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt         *time.Time       `json:"updated_at,omitempty" db:"updated_at"`

	// Church is the nested projection, populated on reads that join the
	// churches table. Never written through this struct.
	Church *Church `json:"church,omitempty" db:"-"`
}
