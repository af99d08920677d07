package questions

import (
	"testing"

	"pulpit/internal/domain/models"
)

func TestNewRegistry_LoadsEmbeddedQuestions(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	qs := registry.WithSpeakerOptions(nil)
	if len(qs) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(qs))
	}

	// static questions come first, speakers last
	wantIDs := []string{"bibleReadingPreference", "teachingStylePreference", "environmentPreference", "speakers"}
	for i, want := range wantIDs {
		if qs[i].ID != want {
			t.Errorf("question %d: expected id %q, got %q", i, want, qs[i].ID)
		}
	}

	for _, q := range qs[:3] {
		if q.Type != "single-select" {
			t.Errorf("question %s: expected single-select, got %s", q.ID, q.Type)
		}
		if len(q.Options) != 3 {
			t.Errorf("question %s: expected 3 options, got %d", q.ID, len(q.Options))
		}
	}

	if qs[3].Type != "multi-select" {
		t.Errorf("speakers question: expected multi-select, got %s", qs[3].Type)
	}
	if len(qs[3].Options) != 0 {
		t.Errorf("speakers question: expected no options without speakers, got %d", len(qs[3].Options))
	}
}

func TestWithSpeakerOptions_BuildsSpeakerOptions(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	pictureURL := "https://example.com/jane.jpg"
	speakers := []models.Speaker{
		{
			ID:                7,
			Name:              "Jane Doe",
			Title:             "Lead Pastor",
			ProfilePictureURL: &pictureURL,
			Church:            &models.Church{ID: 2, Name: "Grace Fellowship"},
		},
		{
			ID:   9,
			Name: "John Smith",
		},
	}

	qs := registry.WithSpeakerOptions(speakers)
	options := qs[3].Options
	if len(options) != 2 {
		t.Fatalf("expected 2 speaker options, got %d", len(options))
	}

	first := options[0]
	if first.Value != "7" || first.Label != "Jane Doe" {
		t.Errorf("unexpected first option: %+v", first)
	}
	if first.Subtitle == nil || *first.Subtitle != "Lead Pastor" {
		t.Errorf("expected subtitle 'Lead Pastor', got %v", first.Subtitle)
	}
	if first.ChurchName == nil || *first.ChurchName != "Grace Fellowship" {
		t.Errorf("expected church 'Grace Fellowship', got %v", first.ChurchName)
	}

	second := options[1]
	if second.Subtitle != nil {
		t.Errorf("expected no subtitle for untitled speaker, got %v", *second.Subtitle)
	}
	if second.ChurchName == nil || *second.ChurchName != "No Church" {
		t.Errorf("expected 'No Church' fallback, got %v", second.ChurchName)
	}

	// a second call must not see the first call's options
	empty := registry.WithSpeakerOptions(nil)
	if len(empty[3].Options) != 0 {
		t.Errorf("registry state leaked between calls: %d options", len(empty[3].Options))
	}
}

// TestQuestionOptionsMatchEnums pins the YAML option values to the enum
// definitions so the two cannot drift apart.
func TestQuestionOptionsMatchEnums(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	qs := registry.WithSpeakerOptions(nil)

	byID := map[string]models.Question{}
	for _, q := range qs {
		byID[q.ID] = q
	}

	bible := byID["bibleReadingPreference"]
	for i, v := range models.BibleApproachValues() {
		if bible.Options[i].Value != string(v) {
			t.Errorf("bible option %d: expected %s, got %s", i, v, bible.Options[i].Value)
		}
		if bible.Options[i].Label != v.Label() {
			t.Errorf("bible option %d: expected label %q, got %q", i, v.Label(), bible.Options[i].Label)
		}
	}

	teaching := byID["teachingStylePreference"]
	for i, v := range models.TeachingStyleValues() {
		if teaching.Options[i].Value != string(v) {
			t.Errorf("teaching option %d: expected %s, got %s", i, v, teaching.Options[i].Value)
		}
	}

	environment := byID["environmentPreference"]
	for i, v := range models.EnvironmentStyleValues() {
		if environment.Options[i].Value != string(v) {
			t.Errorf("environment option %d: expected %s, got %s", i, v, environment.Options[i].Value)
		}
	}
}
