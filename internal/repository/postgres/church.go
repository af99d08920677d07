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

// PostgresChurchRepository implements the ChurchRepository interface
type PostgresChurchRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewChurchRepository creates a new church repository
func NewChurchRepository(config *RepositoryConfig) repositories.ChurchRepository {
	return &PostgresChurchRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const churchColumns = `id, name, denomination, description, address, phone, email, website,
		founded_year, membership_count, service_times, social_media,
		is_active, sort_order, created_at, updated_at`

// Create inserts a church
func (r *PostgresChurchRepository) Create(ctx context.Context, church *models.Church) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, denomination, description, address, phone, email, website,
			founded_year, membership_count, service_times, social_media, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, r.tables.Churches)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		church.Name,
		church.Denomination,
		church.Description,
		church.Address,
		church.Phone,
		church.Email,
		church.Website,
		church.FoundedYear,
		church.MembershipCount,
		church.ServiceTimes,
		church.SocialMedia,
		church.IsActive,
		church.SortOrder,
	).Scan(&church.ID, &church.CreatedAt, &church.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create church: %w", err)
	}

	return nil
}

// GetByID retrieves a church by ID
func (r *PostgresChurchRepository) GetByID(ctx context.Context, id int64) (*models.Church, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, churchColumns, r.tables.Churches)

	var church models.Church
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&church.ID,
		&church.Name,
		&church.Denomination,
		&church.Description,
		&church.Address,
		&church.Phone,
		&church.Email,
		&church.Website,
		&church.FoundedYear,
		&church.MembershipCount,
		&church.ServiceTimes,
		&church.SocialMedia,
		&church.IsActive,
		&church.SortOrder,
		&church.CreatedAt,
		&church.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("church %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get church: %w", err)
	}

	return &church, nil
}

// List retrieves churches matching the filter
func (r *PostgresChurchRepository) List(ctx context.Context, filter repositories.ChurchFilter) ([]models.Church, error) {
	var conditions []string
	var args []interface{}

	if filter.Denomination != nil {
		args = append(args, *filter.Denomination)
		conditions = append(conditions, fmt.Sprintf("denomination = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
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
		FROM %s
		%s
		ORDER BY sort_order, id
		LIMIT $%d OFFSET $%d
	`, churchColumns, r.tables.Churches, where, limitArg, skipArg)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list churches: %w", err)
	}
	defer rows.Close()

	churches := []models.Church{}
	for rows.Next() {
		var church models.Church
		err := rows.Scan(
			&church.ID,
			&church.Name,
			&church.Denomination,
			&church.Description,
			&church.Address,
			&church.Phone,
			&church.Email,
			&church.Website,
			&church.FoundedYear,
			&church.MembershipCount,
			&church.ServiceTimes,
			&church.SocialMedia,
			&church.IsActive,
			&church.SortOrder,
			&church.CreatedAt,
			&church.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan church: %w", err)
		}
		churches = append(churches, church)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list churches: %w", err)
	}

	return churches, nil
}

// Update overwrites a church row
func (r *PostgresChurchRepository) Update(ctx context.Context, church *models.Church) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $2, denomination = $3, description = $4, address = $5, phone = $6,
			email = $7, website = $8, founded_year = $9, membership_count = $10,
			service_times = $11, social_media = $12, is_active = $13, sort_order = $14,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, r.tables.Churches)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		church.ID,
		church.Name,
		church.Denomination,
		church.Description,
		church.Address,
		church.Phone,
		church.Email,
		church.Website,
		church.FoundedYear,
		church.MembershipCount,
		church.ServiceTimes,
		church.SocialMedia,
		church.IsActive,
		church.SortOrder,
	).Scan(&church.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("church %d: %w", church.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update church: %w", err)
	}

	return nil
}

// Delete removes a church row
func (r *PostgresChurchRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Churches)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete church: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("church %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
