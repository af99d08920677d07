package recommend

import (
	"reflect"
	"testing"

	"pulpit/internal/domain/models"
)

func prefs(teaching models.TeachingStyle, bible models.BibleApproach, env models.EnvironmentStyle) Preferences {
	return Preferences{
		TeachingStyle: &teaching,
		BibleReading:  &bible,
		Environment:   &env,
	}
}

func speaker(id int64, teaching models.TeachingStyle, bible models.BibleApproach, env models.EnvironmentStyle, recommended bool) models.Speaker {
	return models.Speaker{
		ID:               id,
		TeachingStyle:    teaching,
		BibleApproach:    bible,
		EnvironmentStyle: env,
		IsRecommended:    recommended,
	}
}

func resultIDs(speakers []models.Speaker) []int64 {
	ids := make([]int64, 0, len(speakers))
	for _, s := range speakers {
		ids = append(ids, s.ID)
	}
	return ids
}

// TestRecommend_FullMatchScenario verifies the canonical ranking: a full
// match with is_recommended beats a full match without it, which beats a
// partial match.
func TestRecommend_FullMatchScenario(t *testing.T) {
	p := prefs(models.TeachingRelatable, models.BibleBalanced, models.EnvironmentContemporary)
	candidates := []models.Speaker{
		speaker(1, models.TeachingRelatable, models.BibleBalanced, models.EnvironmentContemporary, false), // A
		speaker(2, models.TeachingRelatable, models.BibleBalanced, models.EnvironmentContemporary, true),  // B
		speaker(3, models.TeachingAcademic, models.BibleBalanced, models.EnvironmentTraditional, false),   // C
	}

	got := resultIDs(Recommend(p, candidates, nil, 10))
	want := []int64{2, 1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

// TestRecommend_Monotonicity verifies more attribute matches always rank
// higher, regardless of the is_recommended bonus on the weaker candidate.
func TestRecommend_Monotonicity(t *testing.T) {
	p := prefs(models.TeachingAcademic, models.BibleMoreScripture, models.EnvironmentTraditional)
	candidates := []models.Speaker{
		// zero matches, but curated
		speaker(1, models.TeachingRelatable, models.BibleBalanced, models.EnvironmentBlended, true),
		// one match
		speaker(2, models.TeachingAcademic, models.BibleBalanced, models.EnvironmentBlended, false),
		// two matches
		speaker(3, models.TeachingAcademic, models.BibleMoreScripture, models.EnvironmentBlended, false),
		// three matches
		speaker(4, models.TeachingAcademic, models.BibleMoreScripture, models.EnvironmentTraditional, false),
	}

	got := resultIDs(Recommend(p, candidates, nil, 10))
	want := []int64{4, 3, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

func TestRecommend_Determinism(t *testing.T) {
	p := prefs(models.TeachingBalanced, models.BibleBalanced, models.EnvironmentBlended)
	candidates := []models.Speaker{
		speaker(5, models.TeachingBalanced, models.BibleBalanced, models.EnvironmentBlended, false),
		speaker(3, models.TeachingBalanced, models.BibleBalanced, models.EnvironmentBlended, false),
		speaker(8, models.TeachingAcademic, models.BibleMoreScripture, models.EnvironmentTraditional, false),
		speaker(1, models.TeachingBalanced, models.BibleBalanced, models.EnvironmentBlended, false),
	}

	first := resultIDs(Recommend(p, candidates, nil, 10))
	second := resultIDs(Recommend(p, candidates, nil, 10))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two identical calls disagreed: %v vs %v", first, second)
	}

	// equal-score ties break by id ascending
	want := []int64{1, 3, 5, 8}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("expected order %v, got %v", want, first)
	}
}

// TestRecommend_PadsWithZeroScores verifies the list is always filled to
// min(limit, candidates) even when nothing matches.
func TestRecommend_PadsWithZeroScores(t *testing.T) {
	p := prefs(models.TeachingAcademic, models.BibleMoreScripture, models.EnvironmentTraditional)
	candidates := []models.Speaker{
		speaker(1, models.TeachingRelatable, models.BibleBalanced, models.EnvironmentBlended, false),
		speaker(2, models.TeachingRelatable, models.BibleBalanced, models.EnvironmentBlended, false),
		speaker(3, models.TeachingAcademic, models.BibleMoreScripture, models.EnvironmentTraditional, false),
	}

	got := Recommend(p, candidates, nil, 10)
	if len(got) != 3 {
		t.Fatalf("expected all 3 candidates, got %d", len(got))
	}
	if got[0].ID != 3 {
		t.Errorf("expected full match first, got speaker %d", got[0].ID)
	}

	seen := map[int64]bool{}
	for _, s := range got {
		if seen[s.ID] {
			t.Fatalf("duplicate speaker %d in result", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestRecommend_LimitAndExclusions(t *testing.T) {
	p := prefs(models.TeachingBalanced, models.BibleBalanced, models.EnvironmentBlended)
	candidates := make([]models.Speaker, 0, 20)
	for i := int64(1); i <= 20; i++ {
		candidates = append(candidates, speaker(i, models.TeachingBalanced, models.BibleBalanced, models.EnvironmentBlended, false))
	}

	got := Recommend(p, candidates, []int64{1, 2, 3}, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 results, got %d", len(got))
	}
	for _, s := range got {
		if s.ID <= 3 {
			t.Errorf("excluded speaker %d appeared in result", s.ID)
		}
	}
	if got[0].ID != 4 {
		t.Errorf("expected speaker 4 first after exclusions, got %d", got[0].ID)
	}
}

// TestRecommend_UnsetPreferences verifies an unset dimension neither
// rewards nor penalizes any candidate.
func TestRecommend_UnsetPreferences(t *testing.T) {
	teaching := models.TeachingRelatable
	p := Preferences{TeachingStyle: &teaching}

	candidates := []models.Speaker{
		speaker(1, models.TeachingAcademic, models.BibleMoreScripture, models.EnvironmentTraditional, false),
		speaker(2, models.TeachingRelatable, models.BibleBalanced, models.EnvironmentBlended, false),
	}

	got := resultIDs(Recommend(p, candidates, nil, 10))
	want := []int64{2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}

	// no preferences at all: pure tie-break order
	none := Recommend(Preferences{}, candidates, nil, 10)
	if none[0].ID != 1 || none[1].ID != 2 {
		t.Fatalf("expected id order with no preferences, got %v", resultIDs(none))
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	teaching := models.TeachingStyle("relatable")
	p := Preferences{TeachingStyle: &teaching}
	s := speaker(1, models.TeachingRelatable, models.BibleBalanced, models.EnvironmentBlended, false)

	if got := Score(p, &s); got != matchWeight {
		t.Fatalf("expected case-insensitive match score %d, got %d", matchWeight, got)
	}
}

func TestRecommend_EmptyInputs(t *testing.T) {
	if got := Recommend(Preferences{}, nil, nil, 10); len(got) != 0 {
		t.Fatalf("expected empty result for no candidates, got %d", len(got))
	}
	candidates := []models.Speaker{speaker(1, models.TeachingBalanced, models.BibleBalanced, models.EnvironmentBlended, false)}
	if got := Recommend(Preferences{}, candidates, nil, 0); len(got) != 0 {
		t.Fatalf("expected empty result for zero limit, got %d", len(got))
	}
}
