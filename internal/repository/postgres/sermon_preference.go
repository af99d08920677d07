package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"pulpit/internal/domain"
	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// PostgresSermonPreferenceRepository implements the
// SermonPreferenceRepository interface
type PostgresSermonPreferenceRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSermonPreferenceRepository creates a new sermon preference repository
func NewSermonPreferenceRepository(config *RepositoryConfig) repositories.SermonPreferenceRepository {
	return &PostgresSermonPreferenceRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a preference
func (r *PostgresSermonPreferenceRepository) Create(ctx context.Context, pref *models.SermonPreference) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, sermon_id, liked)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.SermonPreferences)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, pref.UserID, pref.SermonID, pref.Liked).
		Scan(&pref.ID, &pref.CreatedAt, &pref.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("user %d already rated sermon %d", pref.UserID, pref.SermonID),
				ResourceType: "sermon_preference",
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("sermon %d or user %d: %w", pref.SermonID, pref.UserID, domain.ErrNotFound)
		}
		return fmt.Errorf("create sermon preference: %w", err)
	}

	return nil
}

// GetByID retrieves a preference by ID
func (r *PostgresSermonPreferenceRepository) GetByID(ctx context.Context, id int64) (*models.SermonPreference, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, sermon_id, liked, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.SermonPreferences)

	var pref models.SermonPreference
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&pref.ID,
		&pref.UserID,
		&pref.SermonID,
		&pref.Liked,
		&pref.CreatedAt,
		&pref.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("sermon preference %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get sermon preference: %w", err)
	}

	return &pref, nil
}

// List retrieves preferences matching the filter
func (r *PostgresSermonPreferenceRepository) List(ctx context.Context, filter repositories.SermonPreferenceFilter) ([]models.SermonPreference, error) {
	var conditions []string
	var args []interface{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.SermonID != nil {
		args = append(args, *filter.SermonID)
		conditions = append(conditions, fmt.Sprintf("sermon_id = $%d", len(args)))
	}
	if filter.Liked != nil {
		args = append(args, *filter.Liked)
		conditions = append(conditions, fmt.Sprintf("liked = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, filter.Limit)
	limitArg := len(args)
	args = append(args, filter.Skip)
	skipArg := len(args)

	query := fmt.Sprintf(`
		SELECT id, user_id, sermon_id, liked, created_at, updated_at
		FROM %s
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, r.tables.SermonPreferences, where, limitArg, skipArg)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sermon preferences: %w", err)
	}
	defer rows.Close()

	prefs := []models.SermonPreference{}
	for rows.Next() {
		var pref models.SermonPreference
		err := rows.Scan(&pref.ID, &pref.UserID, &pref.SermonID, &pref.Liked, &pref.CreatedAt, &pref.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan sermon preference: %w", err)
		}
		prefs = append(prefs, pref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sermon preferences: %w", err)
	}

	return prefs, nil
}

// Update overwrites the liked flag
func (r *PostgresSermonPreferenceRepository) Update(ctx context.Context, pref *models.SermonPreference) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET liked = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, r.tables.SermonPreferences)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, pref.ID, pref.Liked).Scan(&pref.UpdatedAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("sermon preference %d: %w", pref.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update sermon preference: %w", err)
	}

	return nil
}

// Delete removes a preference row
func (r *PostgresSermonPreferenceRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.SermonPreferences)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete sermon preference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sermon preference %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
