package models

import "time"

// FeaturedSermon pins a sermon onto a church's featured shelf. Each
// (church_id, sermon_id) pair is unique; clips are never featured.
type FeaturedSermon struct {
	ID        int64      `json:"id" db:"id"`
	ChurchID  int64      `json:"church_id" db:"church_id"`
	SermonID  int64      `json:"sermon_id" db:"sermon_id"`
	SortOrder int        `json:"sort_order" db:"sort_order"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`

	// Church and Sermon are populated on reads that join their tables.
	Church *Church `json:"church,omitempty" db:"-"`
	Sermon *Sermon `json:"sermon,omitempty" db:"-"`
}
