package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"pulpit/internal/config"
	"pulpit/internal/domain/services"
	"pulpit/internal/repository/postgres"
	"pulpit/internal/service"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	clearData := flag.Bool("clear-data", false, "Delete all rows (keep schema)")
	churchesCSV := flag.String("churches-csv", "", "Path to a churches CSV file (default: built-in fixtures)")
	speakersCSV := flag.String("speakers-csv", "", "Path to a speakers CSV file (default: built-in fixtures)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	log.Printf("seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	log.Println("ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}

	if *schemaOnly {
		log.Println("schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		log.Println("clearing all rows...")
		if err := clearSeedData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("data cleared")
		return
	}

	churches := builtinChurches()
	if *churchesCSV != "" {
		churches, err = loadChurchesCSV(*churchesCSV)
		if err != nil {
			log.Fatalf("Failed to load churches CSV: %v", err)
		}
	}

	speakers := builtinSpeakers()
	if *speakersCSV != "" {
		speakers, err = loadSpeakersCSV(*speakersCSV)
		if err != nil {
			log.Fatalf("Failed to load speakers CSV: %v", err)
		}
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	sermonRepo := postgres.NewSermonRepository(repoConfig)
	churchService := service.NewChurchService(postgres.NewChurchRepository(repoConfig), logger)
	speakerService := service.NewSpeakerService(postgres.NewSpeakerRepository(repoConfig), logger)
	sermonService := service.NewSermonService(sermonRepo, logger)
	featuredService := service.NewFeaturedSermonService(postgres.NewFeaturedSermonRepository(repoConfig), sermonRepo, logger)

	// Seed through the service layer so fixtures go through the same
	// validation as API writes.
	churchIDs := map[string]int64{}
	for _, fixture := range churches {
		church, err := churchService.CreateChurch(ctx, &fixture.request)
		if err != nil {
			log.Fatalf("Failed to create church %q: %v", fixture.request.Name, err)
		}
		churchIDs[church.Name] = church.ID
		log.Printf("created church %q (id %d)", church.Name, church.ID)
	}

	speakerIDs := map[string]int64{}
	for _, fixture := range speakers {
		req := fixture.request
		if fixture.churchName != "" {
			id, ok := churchIDs[fixture.churchName]
			if !ok {
				log.Fatalf("Speaker %q references unknown church %q", req.Name, fixture.churchName)
			}
			req.ChurchID = &id
		}

		speaker, err := speakerService.CreateSpeaker(ctx, &req)
		if err != nil {
			log.Fatalf("Failed to create speaker %q: %v", req.Name, err)
		}
		speakerIDs[speaker.Name] = speaker.ID
		log.Printf("created speaker %q (id %d)", speaker.Name, speaker.ID)
	}

	sermonIDs := map[string]int64{}
	for _, fixture := range builtinSermons() {
		id, ok := speakerIDs[fixture.speakerName]
		if !ok {
			continue
		}
		req := fixture.request
		req.SpeakerID = id

		sermon, err := sermonService.CreateSermon(ctx, &req)
		if err != nil {
			log.Fatalf("Failed to create sermon %q: %v", req.Title, err)
		}
		sermonIDs[sermon.Title] = sermon.ID
		log.Printf("created sermon %q (id %d)", sermon.Title, sermon.ID)
	}

	for _, fixture := range builtinFeaturedSermons() {
		churchID, ok := churchIDs[fixture.churchName]
		if !ok {
			continue
		}
		sermonID, ok := sermonIDs[fixture.sermonTitle]
		if !ok {
			continue
		}

		featured, err := featuredService.Create(ctx, &services.CreateFeaturedSermonRequest{
			ChurchID:  churchID,
			SermonID:  sermonID,
			SortOrder: fixture.sortOrder,
		})
		if err != nil {
			log.Fatalf("Failed to feature sermon %q: %v", fixture.sermonTitle, err)
		}
		log.Printf("featured sermon %q for church %q (id %d)", fixture.sermonTitle, fixture.churchName, featured.ID)
	}

	log.Println("seeding complete")
}
