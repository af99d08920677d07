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

// PostgresFeaturedSermonRepository implements the
// FeaturedSermonRepository interface
type PostgresFeaturedSermonRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFeaturedSermonRepository creates a new featured sermon repository
func NewFeaturedSermonRepository(config *RepositoryConfig) repositories.FeaturedSermonRepository {
	return &PostgresFeaturedSermonRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// featuredColumns joins the featured row with slim church and sermon
// projections. f, c, m and s are the aliases used by every read here.
const featuredColumns = `f.id, f.church_id, f.sermon_id, f.sort_order, f.is_active,
		f.created_at, f.updated_at,
		c.name, c.denomination, c.is_active,
		m.speaker_id, m.title, m.description, m.media_url, m.is_clip,
		m.created_at, m.updated_at, s.name, s.title`

func scanFeaturedRow(row interface {
	Scan(dest ...interface{}) error
}) (*models.FeaturedSermon, error) {
	var featured models.FeaturedSermon
	var church models.Church
	var sermon models.Sermon
	var speakerName, speakerTitle string

	err := row.Scan(
		&featured.ID,
		&featured.ChurchID,
		&featured.SermonID,
		&featured.SortOrder,
		&featured.IsActive,
		&featured.CreatedAt,
		&featured.UpdatedAt,
		&church.Name,
		&church.Denomination,
		&church.IsActive,
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

	church.ID = featured.ChurchID
	sermon.ID = featured.SermonID
	sermon.Speaker = &models.Speaker{
		ID:    sermon.SpeakerID,
		Name:  speakerName,
		Title: speakerTitle,
	}
	featured.Church = &church
	featured.Sermon = &sermon

	return &featured, nil
}

// Create inserts a featured row
func (r *PostgresFeaturedSermonRepository) Create(ctx context.Context, featured *models.FeaturedSermon) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (church_id, sermon_id, sort_order, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, r.tables.FeaturedSermons)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		featured.ChurchID,
		featured.SermonID,
		featured.SortOrder,
		featured.IsActive,
	).Scan(&featured.ID, &featured.CreatedAt, &featured.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("sermon %d is already featured for church %d", featured.SermonID, featured.ChurchID),
				ResourceType: "featured_sermon",
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("church %d or sermon %d: %w", featured.ChurchID, featured.SermonID, domain.ErrNotFound)
		}
		return fmt.Errorf("create featured sermon: %w", err)
	}

	return nil
}

// GetByID retrieves a featured row with its church and sermon projections
func (r *PostgresFeaturedSermonRepository) GetByID(ctx context.Context, id int64) (*models.FeaturedSermon, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s f
		JOIN %s c ON c.id = f.church_id
		JOIN %s m ON m.id = f.sermon_id
		JOIN %s s ON s.id = m.speaker_id
		WHERE f.id = $1
	`, featuredColumns, r.tables.FeaturedSermons, r.tables.Churches, r.tables.Sermons, r.tables.Speakers)

	executor := GetExecutor(ctx, r.pool)
	featured, err := scanFeaturedRow(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("featured sermon %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get featured sermon: %w", err)
	}

	return featured, nil
}

// List retrieves featured rows matching the filter. Clips are excluded:
// only full sermons belong on a featured shelf.
func (r *PostgresFeaturedSermonRepository) List(ctx context.Context, filter repositories.FeaturedSermonFilter) ([]models.FeaturedSermon, error) {
	conditions := []string{"m.is_clip = FALSE"}
	var args []interface{}

	if filter.ChurchID != nil {
		args = append(args, *filter.ChurchID)
		conditions = append(conditions, fmt.Sprintf("f.church_id = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, fmt.Sprintf("f.is_active = $%d", len(args)))
	}

	args = append(args, filter.Limit)
	limitArg := len(args)
	args = append(args, filter.Skip)
	skipArg := len(args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s f
		JOIN %s c ON c.id = f.church_id
		JOIN %s m ON m.id = f.sermon_id
		JOIN %s s ON s.id = m.speaker_id
		WHERE %s
		ORDER BY f.church_id, f.sort_order, f.created_at, f.id
		LIMIT $%d OFFSET $%d
	`, featuredColumns, r.tables.FeaturedSermons, r.tables.Churches, r.tables.Sermons, r.tables.Speakers,
		strings.Join(conditions, " AND "), limitArg, skipArg)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list featured sermons: %w", err)
	}
	defer rows.Close()

	featureds := []models.FeaturedSermon{}
	for rows.Next() {
		featured, err := scanFeaturedRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan featured sermon: %w", err)
		}
		featureds = append(featureds, *featured)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list featured sermons: %w", err)
	}

	return featureds, nil
}

// Update overwrites the sort_order and is_active columns
func (r *PostgresFeaturedSermonRepository) Update(ctx context.Context, featured *models.FeaturedSermon) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET sort_order = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, r.tables.FeaturedSermons)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, featured.ID, featured.SortOrder, featured.IsActive).
		Scan(&featured.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("featured sermon %d: %w", featured.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update featured sermon: %w", err)
	}

	return nil
}

// Delete removes a featured row
func (r *PostgresFeaturedSermonRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.FeaturedSermons)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete featured sermon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("featured sermon %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
