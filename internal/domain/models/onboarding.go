package models

// QuestionOption is one selectable option inside an onboarding question.
// Subtitle, ChurchName and ProfilePictureURL are only set on the
// dynamically generated speaker options.
type QuestionOption struct {
	Value             string  `json:"value" yaml:"value"`
	Label             string  `json:"label" yaml:"label"`
	Subtitle          *string `json:"subtitle,omitempty" yaml:"-"`
	ChurchName        *string `json:"church,omitempty" yaml:"-"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty" yaml:"-"`
}

// Question is one onboarding question definition. The static questions are
// fixed enumerations; the speakers question's options are populated from a
// live read of the speakers table at request time.
type Question struct {
	ID          string           `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description" yaml:"description"`
	Type        string           `json:"type" yaml:"type"` // "single-select" or "multi-select"
	Options     []QuestionOption `json:"options" yaml:"options"`
}

// OnboardingAnswers carries a user's questionnaire answers. All fields are
// optional; enum fields must be drawn from their closed sets.
type OnboardingAnswers struct {
	Speakers                []int64           `json:"speakers,omitempty"`
	BibleReadingPreference  *BibleApproach    `json:"bible_reading_preference,omitempty"`
	TeachingStylePreference *TeachingStyle    `json:"teaching_style_preference,omitempty"`
	EnvironmentPreference   *EnvironmentStyle `json:"environment_preference,omitempty"`
}

// OnboardingSubmitRequest is the POST /api/onboarding/submit body.
type OnboardingSubmitRequest struct {
	UserID  int64             `json:"user_id"`
	Answers OnboardingAnswers `json:"answers"`
}

// OnboardingResponse is the submit response: the updated user projection
// plus the ranked recommendation list.
type OnboardingResponse struct {
	User                UserWithSpeakers `json:"user"`
	RecommendedSpeakers []Speaker        `json:"recommended_speakers"`
}
