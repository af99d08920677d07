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

// PostgresSermonRepository implements the SermonRepository interface
type PostgresSermonRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSermonRepository creates a new sermon repository
func NewSermonRepository(config *RepositoryConfig) repositories.SermonRepository {
	return &PostgresSermonRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const sermonColumns = `m.id, m.speaker_id, m.title, m.description, m.media_url, m.is_clip,
		m.created_at, m.updated_at, s.name, s.title`

// Create inserts a sermon
func (r *PostgresSermonRepository) Create(ctx context.Context, sermon *models.Sermon) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (speaker_id, title, description, media_url, is_clip)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Sermons)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		sermon.SpeakerID,
		sermon.Title,
		sermon.Description,
		sermon.MediaURL,
		sermon.IsClip,
	).Scan(&sermon.ID, &sermon.CreatedAt, &sermon.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("speaker %d: %w", sermon.SpeakerID, domain.ErrNotFound)
		}
		return fmt.Errorf("create sermon: %w", err)
	}

	return nil
}

// GetByID retrieves a sermon by ID with a slim speaker projection
func (r *PostgresSermonRepository) GetByID(ctx context.Context, id int64) (*models.Sermon, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s m
		JOIN %s s ON s.id = m.speaker_id
		WHERE m.id = $1
	`, sermonColumns, r.tables.Sermons, r.tables.Speakers)

	executor := GetExecutor(ctx, r.pool)
	sermon, err := scanSermonRow(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("sermon %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get sermon: %w", err)
	}

	return sermon, nil
}

func scanSermonRow(row interface {
	Scan(dest ...interface{}) error
}) (*models.Sermon, error) {
	var sermon models.Sermon
	var speakerName, speakerTitle string

	err := row.Scan(
		&sermon.ID,
		&sermon.SpeakerID,
		&sermon.Title,
		&sermon.Description,
		&sermon.MediaURL,
		&sermon.IsClip,
		&sermon.CreatedAt,
		&sermon.UpdatedAt,
		&speakerName,
		&speakerTitle,
	)
	if err != nil {
		return nil, err
	}

	sermon.Speaker = &models.Speaker{
		ID:    sermon.SpeakerID,
		Name:  speakerName,
		Title: speakerTitle,
	}

	return &sermon, nil
}

// List retrieves sermons matching the filter, newest first
func (r *PostgresSermonRepository) List(ctx context.Context, filter repositories.SermonFilter) ([]models.Sermon, error) {
	var conditions []string
	var args []interface{}

	if filter.SpeakerID != nil {
		args = append(args, *filter.SpeakerID)
		conditions = append(conditions, fmt.Sprintf("m.speaker_id = $%d", len(args)))
	}
	if filter.IsClip != nil {
		args = append(args, *filter.IsClip)
		conditions = append(conditions, fmt.Sprintf("m.is_clip = $%d", len(args)))
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
		SELECT %s
		FROM %s m
		JOIN %s s ON s.id = m.speaker_id
		%s
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $%d OFFSET $%d
	`, sermonColumns, r.tables.Sermons, r.tables.Speakers, where, limitArg, skipArg)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sermons: %w", err)
	}
	defer rows.Close()

	sermons := []models.Sermon{}
	for rows.Next() {
		sermon, err := scanSermonRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sermon: %w", err)
		}
		sermons = append(sermons, *sermon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sermons: %w", err)
	}

	return sermons, nil
}

// Update overwrites a sermon row
func (r *PostgresSermonRepository) Update(ctx context.Context, sermon *models.Sermon) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET speaker_id = $2, title = $3, description = $4, media_url = $5, is_clip = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, r.tables.Sermons)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		sermon.ID,
		sermon.SpeakerID,
		sermon.Title,
		sermon.Description,
		sermon.MediaURL,
		sermon.IsClip,
	).Scan(&sermon.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("sermon %d: %w", sermon.ID, domain.ErrNotFound)
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("speaker %d: %w", sermon.SpeakerID, domain.ErrNotFound)
		}
		return fmt.Errorf("update sermon: %w", err)
	}

	return nil
}

// Delete removes a sermon row
func (r *PostgresSermonRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Sermons)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete sermon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sermon %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
