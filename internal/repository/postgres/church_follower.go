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

// PostgresChurchFollowerRepository implements the ChurchFollowerRepository
// interface
type PostgresChurchFollowerRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewChurchFollowerRepository creates a new church follower repository
func NewChurchFollowerRepository(config *RepositoryConfig) repositories.ChurchFollowerRepository {
	return &PostgresChurchFollowerRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a follow link
func (r *PostgresChurchFollowerRepository) Create(ctx context.Context, follower *models.ChurchFollower) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (church_id, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, r.tables.ChurchFollowers)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, follower.ChurchID, follower.UserID).
		Scan(&follower.ID, &follower.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("user %d already follows church %d", follower.UserID, follower.ChurchID),
				ResourceType: "church_follower",
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("church %d or user %d: %w", follower.ChurchID, follower.UserID, domain.ErrNotFound)
		}
		return fmt.Errorf("create church follower: %w", err)
	}

	return nil
}

// GetByID retrieves a follow link by ID
func (r *PostgresChurchFollowerRepository) GetByID(ctx context.Context, id int64) (*models.ChurchFollower, error) {
	query := fmt.Sprintf(`
		SELECT id, church_id, user_id, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.ChurchFollowers)

	var follower models.ChurchFollower
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&follower.ID,
		&follower.ChurchID,
		&follower.UserID,
		&follower.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("church follower %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get church follower: %w", err)
	}

	return &follower, nil
}

// List retrieves follow links matching the filter
func (r *PostgresChurchFollowerRepository) List(ctx context.Context, filter repositories.FollowerFilter) ([]models.ChurchFollower, error) {
	var conditions []string
	var args []interface{}

	if filter.SubjectID != nil {
		args = append(args, *filter.SubjectID)
		conditions = append(conditions, fmt.Sprintf("church_id = $%d", len(args)))
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
		SELECT id, church_id, user_id, created_at
		FROM %s
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, r.tables.ChurchFollowers, where, limitArg, skipArg)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list church followers: %w", err)
	}
	defer rows.Close()

	followers := []models.ChurchFollower{}
	for rows.Next() {
		var follower models.ChurchFollower
		err := rows.Scan(&follower.ID, &follower.ChurchID, &follower.UserID, &follower.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan church follower: %w", err)
		}
		followers = append(followers, follower)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list church followers: %w", err)
	}

	return followers, nil
}

// Delete removes a follow link
func (r *PostgresChurchFollowerRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.ChurchFollowers)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete church follower: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("church follower %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
