package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"pulpit/internal/domain"
	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// PostgresSpeakerPreferenceRepository implements the
// SpeakerPreferenceRepository interface
type PostgresSpeakerPreferenceRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSpeakerPreferenceRepository creates a new speaker preference repository
func NewSpeakerPreferenceRepository(config *RepositoryConfig) repositories.SpeakerPreferenceRepository {
	return &PostgresSpeakerPreferenceRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ReplaceForUser deletes the user's existing links and inserts the new set.
// Callers wrap this in a transaction together with the user-row update so
// a failure never leaves a partially replaced set.
func (r *PostgresSpeakerPreferenceRepository) ReplaceForUser(ctx context.Context, userID int64, speakerIDs []int64) error {
	executor := GetExecutor(ctx, r.pool)

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, r.tables.SpeakerPreferences)
	if _, err := executor.Exec(ctx, deleteQuery, userID); err != nil {
		return fmt.Errorf("clear speaker preferences: %w", err)
	}

	if len(speakerIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (user_id, speaker_id)
		SELECT $1, unnest($2::bigint[])
	`, r.tables.SpeakerPreferences)

	if _, err := executor.Exec(ctx, insertQuery, userID, speakerIDs); err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("speaker: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert speaker preferences: %w", err)
	}

	return nil
}

// ListSpeakerIDs returns the user's chosen speaker ids in ascending order
func (r *PostgresSpeakerPreferenceRepository) ListSpeakerIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := fmt.Sprintf(`
		SELECT speaker_id
		FROM %s
		WHERE user_id = $1
		ORDER BY speaker_id
	`, r.tables.SpeakerPreferences)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list speaker preferences: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan speaker preference: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list speaker preferences: %w", err)
	}

	return ids, nil
}

// ListSpeakers returns the user's chosen speakers with church projections
func (r *PostgresSpeakerPreferenceRepository) ListSpeakers(ctx context.Context, userID int64) ([]models.Speaker, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		JOIN %s s ON s.id = p.speaker_id
		LEFT JOIN %s c ON c.id = s.church_id
		WHERE p.user_id = $1
		ORDER BY s.id
	`, speakerJoinColumns, r.tables.SpeakerPreferences, r.tables.Speakers, r.tables.Churches)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list preferred speakers: %w", err)
	}
	defer rows.Close()

	speakers := []models.Speaker{}
	for rows.Next() {
		speaker, err := scanSpeakerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preferred speaker: %w", err)
		}
		speakers = append(speakers, *speaker)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list preferred speakers: %w", err)
	}

	return speakers, nil
}
