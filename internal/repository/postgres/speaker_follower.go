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

// PostgresSpeakerFollowerRepository implements the
// SpeakerFollowerRepository interface
type PostgresSpeakerFollowerRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSpeakerFollowerRepository creates a new speaker follower repository
func NewSpeakerFollowerRepository(config *RepositoryConfig) repositories.SpeakerFollowerRepository {
	return &PostgresSpeakerFollowerRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a follow link
func (r *PostgresSpeakerFollowerRepository) Create(ctx context.Context, follower *models.SpeakerFollower) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (speaker_id, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, r.tables.SpeakerFollowers)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, follower.SpeakerID, follower.UserID).
		Scan(&follower.ID, &follower.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("user %d already follows speaker %d", follower.UserID, follower.SpeakerID),
				ResourceType: "speaker_follower",
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("speaker %d or user %d: %w", follower.SpeakerID, follower.UserID, domain.ErrNotFound)
		}
		return fmt.Errorf("create speaker follower: %w", err)
	}

	return nil
}

// GetByID retrieves a follow link by ID
func (r *PostgresSpeakerFollowerRepository) GetByID(ctx context.Context, id int64) (*models.SpeakerFollower, error) {
	query := fmt.Sprintf(`
		SELECT id, speaker_id, user_id, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.SpeakerFollowers)

	var follower models.SpeakerFollower
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&follower.ID,
		&follower.SpeakerID,
		&follower.UserID,
		&follower.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("speaker follower %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get speaker follower: %w", err)
	}

	return &follower, nil
}

// List retrieves follow links matching the filter
func (r *PostgresSpeakerFollowerRepository) List(ctx context.Context, filter repositories.FollowerFilter) ([]models.SpeakerFollower, error) {
	var conditions []string
	var args []interface{}

	if filter.SubjectID != nil {
		args = append(args, *filter.SubjectID)
		conditions = append(conditions, fmt.Sprintf("speaker_id = $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
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
		SELECT id, speaker_id, user_id, created_at
		FROM %s
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, r.tables.SpeakerFollowers, where, limitArg, skipArg)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list speaker followers: %w", err)
	}
	defer rows.Close()

	followers := []models.SpeakerFollower{}
	for rows.Next() {
		var follower models.SpeakerFollower
		err := rows.Scan(&follower.ID, &follower.SpeakerID, &follower.UserID, &follower.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan speaker follower: %w", err)
		}
		followers = append(followers, follower)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list speaker followers: %w", err)
	}

	return followers, nil
}

// Delete removes a follow link
func (r *PostgresSpeakerFollowerRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.SpeakerFollowers)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete speaker follower: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("speaker follower %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
