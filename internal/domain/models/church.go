package models

import "time"

// JSONMap is a type alias for JSONB columns
type JSONMap map[string]interface{}

type Church struct {
	ID              int64      `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Denomination    string     `json:"denomination" db:"denomination"`
	Description     *string    `json:"description,omitempty" db:"description"`
	Address         JSONMap    `json:"address,omitempty" db:"address"`
	Phone           *string    `json:"phone,omitempty" db:"phone"`
	Email           *string    `json:"email,omitempty" db:"email"`
	Website         *string    `json:"website,omitempty" db:"website"`
	FoundedYear     *int       `json:"founded_year,omitempty" db:"founded_year"`
	MembershipCount *int       `json:"membership_count,omitempty" db:"membership_count"`
	ServiceTimes    JSONMap    `json:"service_times,omitempty" db:"service_times"`
	SocialMedia     JSONMap    `json:"social_media,omitempty" db:"social_media"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	SortOrder       int        `json:"sort_order" db:"sort_order"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
