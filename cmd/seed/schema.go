package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"pulpit/internal/repository/postgres"
)

// runSchema creates tables and indexes if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	createChurches := `
		CREATE TABLE IF NOT EXISTS ` + tables.Churches + ` (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			denomination TEXT NOT NULL,
			description TEXT,
			address JSONB,
			phone TEXT,
			email TEXT,
			website TEXT,
			founded_year INTEGER,
			membership_count INTEGER,
			service_times JSONB,
			social_media JSONB,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)
	`
	if _, err := pool.Exec(ctx, createChurches); err != nil {
		return err
	}

	createSpeakers := `
		CREATE TABLE IF NOT EXISTS ` + tables.Speakers + ` (
			id BIGSERIAL PRIMARY KEY,
			church_id BIGINT REFERENCES ` + tables.Churches + `(id) ON DELETE SET NULL,
			name TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			bio TEXT,
			email TEXT,
			phone TEXT,
			years_of_service INTEGER,
			profile_picture_url TEXT,
			social_media JSONB,
			speaking_topics JSONB NOT NULL DEFAULT '[]',
			sort_order INTEGER NOT NULL DEFAULT 0,
			teaching_style TEXT NOT NULL DEFAULT 'BALANCED',
			bible_approach TEXT NOT NULL DEFAULT 'BALANCED',
			environment_style TEXT NOT NULL DEFAULT 'BLENDED',
			is_recommended BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)
	`
	if _, err := pool.Exec(ctx, createSpeakers); err != nil {
		return err
	}

	createUsers := `
		CREATE TABLE IF NOT EXISTS ` + tables.Users + ` (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE,
			bible_reading_preference TEXT,
			teaching_style_preference TEXT,
			environment_preference TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)
	`
	if _, err := pool.Exec(ctx, createUsers); err != nil {
		return err
	}

	createSermons := `
		CREATE TABLE IF NOT EXISTS ` + tables.Sermons + ` (
			id BIGSERIAL PRIMARY KEY,
			speaker_id BIGINT NOT NULL REFERENCES ` + tables.Speakers + `(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT,
			media_url TEXT NOT NULL,
			is_clip BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)
	`
	if _, err := pool.Exec(ctx, createSermons); err != nil {
		return err
	}

	createSpeakerPreferences := `
		CREATE TABLE IF NOT EXISTS ` + tables.SpeakerPreferences + ` (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES ` + tables.Users + `(id) ON DELETE CASCADE,
			speaker_id BIGINT NOT NULL REFERENCES ` + tables.Speakers + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE(user_id, speaker_id)
		)
	`
	if _, err := pool.Exec(ctx, createSpeakerPreferences); err != nil {
		return err
	}

	createSpeakerFollowers := `
		CREATE TABLE IF NOT EXISTS ` + tables.SpeakerFollowers + ` (
			id BIGSERIAL PRIMARY KEY,
			speaker_id BIGINT NOT NULL REFERENCES ` + tables.Speakers + `(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES ` + tables.Users + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE(speaker_id, user_id)
		)
	`
	if _, err := pool.Exec(ctx, createSpeakerFollowers); err != nil {
		return err
	}

	createChurchFollowers := `
		CREATE TABLE IF NOT EXISTS ` + tables.ChurchFollowers + ` (
			id BIGSERIAL PRIMARY KEY,
			church_id BIGINT NOT NULL REFERENCES ` + tables.Churches + `(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES ` + tables.Users + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE(church_id, user_id)
		)
	`
	if _, err := pool.Exec(ctx, createChurchFollowers); err != nil {
		return err
	}

	createSermonPreferences := `
		CREATE TABLE IF NOT EXISTS ` + tables.SermonPreferences + ` (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES ` + tables.Users + `(id) ON DELETE CASCADE,
			sermon_id BIGINT NOT NULL REFERENCES ` + tables.Sermons + `(id) ON DELETE CASCADE,
			liked BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ,
			UNIQUE(user_id, sermon_id)
		)
	`
	if _, err := pool.Exec(ctx, createSermonPreferences); err != nil {
		return err
	}

	createFeaturedSermons := `
		CREATE TABLE IF NOT EXISTS ` + tables.FeaturedSermons + ` (
			id BIGSERIAL PRIMARY KEY,
			church_id BIGINT NOT NULL REFERENCES ` + tables.Churches + `(id) ON DELETE CASCADE,
			sermon_id BIGINT NOT NULL REFERENCES ` + tables.Sermons + `(id) ON DELETE CASCADE,
			sort_order INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ,
			UNIQUE(church_id, sermon_id)
		)
	`
	if _, err := pool.Exec(ctx, createFeaturedSermons); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `speakers_church_id ON ` + tables.Speakers + `(church_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `speakers_is_recommended ON ` + tables.Speakers + `(is_recommended)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `sermons_speaker_id ON ` + tables.Sermons + `(speaker_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `speaker_preferences_user_id ON ` + tables.SpeakerPreferences + `(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `speaker_followers_user_id ON ` + tables.SpeakerFollowers + `(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `church_followers_user_id ON ` + tables.ChurchFollowers + `(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `sermon_preferences_user_id ON ` + tables.SermonPreferences + `(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `featured_sermons_church_id ON ` + tables.FeaturedSermons + `(church_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `featured_sermons_sort_order ON ` + tables.FeaturedSermons + `(sort_order)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.FeaturedSermons,
		tables.SermonPreferences,
		tables.ChurchFollowers,
		tables.SpeakerFollowers,
		tables.SpeakerPreferences,
		tables.Sermons,
		tables.Users,
		tables.Speakers,
		tables.Churches,
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " + table + " CASCADE"
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
		log.Printf("  dropped %s", table)
	}

	return nil
}

// clearSeedData deletes all rows but keeps the schema in place
func clearSeedData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.FeaturedSermons,
		tables.SermonPreferences,
		tables.ChurchFollowers,
		tables.SpeakerFollowers,
		tables.SpeakerPreferences,
		tables.Sermons,
		tables.Users,
		tables.Speakers,
		tables.Churches,
	}

	for _, table := range tableNames {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	return nil
}
