// Package recommend ranks speakers against a user's onboarding
// preferences. It is a pure filter/sort: no state, no side effects, safe
// for concurrent use.
package recommend

import (
	"sort"

	"pulpit/internal/domain/models"
)

// Preferences holds the user's categorical answers. A nil field means the
// user expressed no preference on that dimension and contributes nothing
// to any candidate's score.
type Preferences struct {
	BibleReading  *models.BibleApproach
	TeachingStyle *models.TeachingStyle
	Environment   *models.EnvironmentStyle
}

// matchWeight spaces match-count scores so the is_recommended bonus can
// break ties without ever outranking an extra attribute match.
const (
	matchWeight      = 2
	recommendedBonus = 1
)

// Score computes a speaker's match score: matchWeight per attribute that
// equals the corresponding preference (case-insensitive), plus
// recommendedBonus for curated speakers.
func Score(prefs Preferences, speaker *models.Speaker) int {
	score := 0
	if prefs.TeachingStyle != nil && models.EqualFold(speaker.TeachingStyle, *prefs.TeachingStyle) {
		score += matchWeight
	}
	if prefs.BibleReading != nil && models.EqualFold(speaker.BibleApproach, *prefs.BibleReading) {
		score += matchWeight
	}
	if prefs.Environment != nil && models.EqualFold(speaker.EnvironmentStyle, *prefs.Environment) {
		score += matchWeight
	}
	if speaker.IsRecommended {
		score += recommendedBonus
	}
	return score
}

// Recommend scores every candidate not in excludeIDs and returns the top
// speakers ordered by score descending, is_recommended, then id ascending.
// The ordering keys are total, so output is deterministic for identical
// inputs. Zero-score candidates are kept so the result always has
// min(limit, candidates) entries.
func Recommend(prefs Preferences, candidates []models.Speaker, excludeIDs []int64, limit int) []models.Speaker {
	if limit <= 0 {
		return []models.Speaker{}
	}

	excluded := make(map[int64]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	type scored struct {
		speaker models.Speaker
		score   int
	}

	ranked := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := excluded[candidate.ID]; ok {
			continue
		}
		ranked = append(ranked, scored{speaker: candidate, score: Score(prefs, &candidate)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if ranked[i].speaker.IsRecommended != ranked[j].speaker.IsRecommended {
			return ranked[i].speaker.IsRecommended
		}
		return ranked[i].speaker.ID < ranked[j].speaker.ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]models.Speaker, 0, len(ranked))
	for _, entry := range ranked {
		result = append(result, entry.speaker)
	}
	return result
}
