package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"pulpit/internal/domain"
	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// PostgresSpeakerRepository implements the SpeakerRepository interface
type PostgresSpeakerRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSpeakerRepository creates a new speaker repository
func NewSpeakerRepository(config *RepositoryConfig) repositories.SpeakerRepository {
	return &PostgresSpeakerRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// speakerJoinColumns selects the speaker row plus the nullable church
// projection. s and c are the aliases used by every read query here.
const speakerJoinColumns = `s.id, s.church_id, s.name, s.title, s.bio, s.email, s.phone,
		s.years_of_service, s.profile_picture_url, s.social_media, s.speaking_topics,
		s.sort_order, s.teaching_style, s.bible_approach, s.environment_style,
		s.is_recommended, s.created_at, s.updated_at,
		c.id, c.name, c.denomination, c.is_active`

// scanSpeakerRow scans one joined row. Every read carries the same slim
// church projection; callers needing the full church go through the
// church repository.
func scanSpeakerRow(row pgx.Row) (*models.Speaker, error) {
	var speaker models.Speaker
	var churchID *int64
	var churchName, churchDenomination *string
	var churchActive *bool

	err := row.Scan(
		&speaker.ID,
		&speaker.ChurchID,
		&speaker.Name,
		&speaker.Title,
		&speaker.Bio,
		&speaker.Email,
		&speaker.Phone,
		&speaker.YearsOfService,
		&speaker.ProfilePictureURL,
		&speaker.SocialMedia,
		&speaker.SpeakingTopics,
		&speaker.SortOrder,
		&speaker.TeachingStyle,
		&speaker.BibleApproach,
		&speaker.EnvironmentStyle,
		&speaker.IsRecommended,
		&speaker.CreatedAt,
		&speaker.UpdatedAt,
		&churchID,
		&churchName,
		&churchDenomination,
		&churchActive,
	)
	if err != nil {
		return nil, err
	}

	if churchID != nil {
		speaker.Church = &models.Church{
			ID:           *churchID,
			Name:         *churchName,
			Denomination: *churchDenomination,
			IsActive:     *churchActive,
		}
	}

	if speaker.SpeakingTopics == nil {
		speaker.SpeakingTopics = []models.SpeakingTopic{}
	}

	return &speaker, nil
}

// Create inserts a speaker
func (r *PostgresSpeakerRepository) Create(ctx context.Context, speaker *models.Speaker) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (church_id, name, title, bio, email, phone, years_of_service,
			profile_picture_url, social_media, speaking_topics, sort_order,
			teaching_style, bible_approach, environment_style, is_recommended)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`, r.tables.Speakers)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		speaker.ChurchID,
		speaker.Name,
		speaker.Title,
		speaker.Bio,
		speaker.Email,
		speaker.Phone,
		speaker.YearsOfService,
		speaker.ProfilePictureURL,
		speaker.SocialMedia,
		speaker.SpeakingTopics,
		speaker.SortOrder,
		speaker.TeachingStyle,
		speaker.BibleApproach,
		speaker.EnvironmentStyle,
		speaker.IsRecommended,
	).Scan(&speaker.ID, &speaker.CreatedAt, &speaker.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("church %v: %w", speaker.ChurchID, domain.ErrNotFound)
		}
		return fmt.Errorf("create speaker: %w", err)
	}

	return nil
}

// GetByID retrieves a speaker by ID with its church projection
func (r *PostgresSpeakerRepository) GetByID(ctx context.Context, id int64) (*models.Speaker, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s s
		LEFT JOIN %s c ON c.id = s.church_id
		WHERE s.id = $1
	`, speakerJoinColumns, r.tables.Speakers, r.tables.Churches)

	executor := GetExecutor(ctx, r.pool)
	speaker, err := scanSpeakerRow(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("speaker %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}

	return speaker, nil
}

// List retrieves speakers matching the filter with church projections
func (r *PostgresSpeakerRepository) List(ctx context.Context, filter repositories.SpeakerFilter) ([]models.Speaker, error) {
	var conditions []string
	var args []interface{}

	if filter.ChurchID != nil {
		args = append(args, *filter.ChurchID)
		conditions = append(conditions, fmt.Sprintf("s.church_id = $%d", len(args)))
	}
	if filter.IsRecommended != nil {
		args = append(args, *filter.IsRecommended)
		conditions = append(conditions, fmt.Sprintf("s.is_recommended = $%d", len(args)))
	}
	if filter.TeachingStyle != nil {
		args = append(args, *filter.TeachingStyle)
		conditions = append(conditions, fmt.Sprintf("s.teaching_style = $%d", len(args)))
	}
	if filter.BibleApproach != nil {
		args = append(args, *filter.BibleApproach)
		conditions = append(conditions, fmt.Sprintf("s.bible_approach = $%d", len(args)))
	}
	if filter.EnvironmentStyle != nil {
		args = append(args, *filter.EnvironmentStyle)
		conditions = append(conditions, fmt.Sprintf("s.environment_style = $%d", len(args)))
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
		FROM %s s
		LEFT JOIN %s c ON c.id = s.church_id
		%s
		ORDER BY s.sort_order, s.id
		LIMIT $%d OFFSET $%d
	`, speakerJoinColumns, r.tables.Speakers, r.tables.Churches, where, limitArg, skipArg)

	return r.querySpeakers(ctx, query, args...)
}

// ListAll retrieves every speaker in primary-key order
func (r *PostgresSpeakerRepository) ListAll(ctx context.Context) ([]models.Speaker, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s s
		LEFT JOIN %s c ON c.id = s.church_id
		ORDER BY s.id
	`, speakerJoinColumns, r.tables.Speakers, r.tables.Churches)

	return r.querySpeakers(ctx, query)
}

func (r *PostgresSpeakerRepository) querySpeakers(ctx context.Context, query string, args ...interface{}) ([]models.Speaker, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query speakers: %w", err)
	}
	defer rows.Close()

	speakers := []models.Speaker{}
	for rows.Next() {
		speaker, err := scanSpeakerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan speaker: %w", err)
		}
		speakers = append(speakers, *speaker)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query speakers: %w", err)
	}

	return speakers, nil
}

// MissingIDs returns the subset of ids with no matching speaker row
func (r *PostgresSpeakerRepository) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT wanted.id
		FROM unnest($1::bigint[]) AS wanted(id)
		LEFT JOIN %s s ON s.id = wanted.id
		WHERE s.id IS NULL
		ORDER BY wanted.id
	`, r.tables.Speakers)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("check speaker ids: %w", err)
	}
	defer rows.Close()

	var missing []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan speaker id: %w", err)
		}
		missing = append(missing, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("check speaker ids: %w", err)
	}

	return missing, nil
}

// Update overwrites a speaker row
func (r *PostgresSpeakerRepository) Update(ctx context.Context, speaker *models.Speaker) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET church_id = $2, name = $3, title = $4, bio = $5, email = $6, phone = $7,
			years_of_service = $8, profile_picture_url = $9, social_media = $10,
			speaking_topics = $11, sort_order = $12, teaching_style = $13,
			bible_approach = $14, environment_style = $15, is_recommended = $16,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, r.tables.Speakers)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		speaker.ID,
		speaker.ChurchID,
		speaker.Name,
		speaker.Title,
		speaker.Bio,
		speaker.Email,
		speaker.Phone,
		speaker.YearsOfService,
		speaker.ProfilePictureURL,
		speaker.SocialMedia,
		speaker.SpeakingTopics,
		speaker.SortOrder,
		speaker.TeachingStyle,
		speaker.BibleApproach,
		speaker.EnvironmentStyle,
		speaker.IsRecommended,
	).Scan(&speaker.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("speaker %d: %w", speaker.ID, domain.ErrNotFound)
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("church %v: %w", speaker.ChurchID, domain.ErrNotFound)
		}
		return fmt.Errorf("update speaker: %w", err)
	}

	return nil
}

// Delete removes a speaker row
func (r *PostgresSpeakerRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Speakers)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete speaker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("speaker %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
