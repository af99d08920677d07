package models

import "strings"

// Preference dimensions are closed enumerations. The wire values below are
// exact and case-sensitive; display labels live in the label maps so the
// API and the onboarding questions share one definition per dimension.

// BibleApproach describes how a speaker handles Scripture, and doubles as
// the user's bible_reading_preference.
type BibleApproach string

const (
	BibleMoreScripture   BibleApproach = "MORE_SCRIPTURE"
	BibleMoreApplication BibleApproach = "MORE_APPLICATION"
	BibleBalanced        BibleApproach = "BALANCED"
)

// TeachingStyle describes a speaker's delivery, and doubles as the user's
// teaching_style_preference.
type TeachingStyle string

const (
	TeachingAcademic  TeachingStyle = "ACADEMIC"
	TeachingRelatable TeachingStyle = "RELATABLE"
	TeachingBalanced  TeachingStyle = "BALANCED"
)

// EnvironmentStyle describes the worship environment a speaker is
// associated with, and doubles as the user's environment_preference.
type EnvironmentStyle string

const (
	EnvironmentTraditional  EnvironmentStyle = "TRADITIONAL"
	EnvironmentContemporary EnvironmentStyle = "CONTEMPORARY"
	EnvironmentBlended      EnvironmentStyle = "BLENDED"
)

// BibleApproachValues returns the permitted wire values, in display order.
func BibleApproachValues() []BibleApproach {
	return []BibleApproach{BibleMoreApplication, BibleMoreScripture, BibleBalanced}
}

// TeachingStyleValues returns the permitted wire values, in display order.
func TeachingStyleValues() []TeachingStyle {
	return []TeachingStyle{TeachingAcademic, TeachingRelatable, TeachingBalanced}
}

// EnvironmentStyleValues returns the permitted wire values, in display order.
func EnvironmentStyleValues() []EnvironmentStyle {
	return []EnvironmentStyle{EnvironmentTraditional, EnvironmentContemporary, EnvironmentBlended}
}

var bibleApproachLabels = map[BibleApproach]string{
	BibleMoreApplication: "Practical, everyday life application",
	BibleMoreScripture:   "Deep, verse-by-verse Scripture teaching",
	BibleBalanced:        "A balance of both",
}

var teachingStyleLabels = map[TeachingStyle]string{
	TeachingAcademic:  "Academic and in-depth",
	TeachingRelatable: "Warm and relatable",
	TeachingBalanced:  "A balance of both",
}

var environmentStyleLabels = map[EnvironmentStyle]string{
	EnvironmentTraditional:  "Traditional",
	EnvironmentContemporary: "Contemporary",
	EnvironmentBlended:      "Blended",
}

func (b BibleApproach) Valid() bool {
	switch b {
	case BibleMoreScripture, BibleMoreApplication, BibleBalanced:
		return true
	}
	return false
}

func (b BibleApproach) Label() string { return bibleApproachLabels[b] }

func (t TeachingStyle) Valid() bool {
	switch t {
	case TeachingAcademic, TeachingRelatable, TeachingBalanced:
		return true
	}
	return false
}

func (t TeachingStyle) Label() string { return teachingStyleLabels[t] }

func (e EnvironmentStyle) Valid() bool {
	switch e {
	case EnvironmentTraditional, EnvironmentContemporary, EnvironmentBlended:
		return true
	}
	return false
}

func (e EnvironmentStyle) Label() string { return environmentStyleLabels[e] }

// EqualFold reports whether two enum values match ignoring case. The
// matcher compares stored speaker attributes against user preferences with
// this so legacy mixed-case rows still match.
func EqualFold[T ~string](a, b T) bool {
	return strings.EqualFold(string(a), string(b))
}
