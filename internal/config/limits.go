package config

const (
	// MaxNameLength is the maximum length for church, speaker, and user
	// names. Limited to 255 to fit in PostgreSQL VARCHAR(255).
	MaxNameLength = 255

	// MaxUsernameLength matches the users.username column width.
	MaxUsernameLength = 255

	// MaxTitleLength is the maximum length for speaker titles and sermon
	// titles.
	MaxTitleLength = 255

	// DefaultPageLimit is the page size used when a list request does not
	// specify one.
	DefaultPageLimit = 100

	// MaxPageLimit caps the page size a list request may ask for.
	MaxPageLimit = 1000

	// RecommendationLimit is the number of speakers returned by the
	// recommendation endpoints.
	RecommendationLimit = 10
)
