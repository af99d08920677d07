package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"pulpit/internal/domain"
	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
)

type fakeFeaturedRepo struct {
	featured map[int64]*models.FeaturedSermon
	nextID   int64
}

func newFakeFeaturedRepo() *fakeFeaturedRepo {
	return &fakeFeaturedRepo{featured: map[int64]*models.FeaturedSermon{}, nextID: 1}
}

func (f *fakeFeaturedRepo) Create(ctx context.Context, featured *models.FeaturedSermon) error {
	for _, existing := range f.featured {
		if existing.ChurchID == featured.ChurchID && existing.SermonID == featured.SermonID {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("sermon %d is already featured for church %d", featured.SermonID, featured.ChurchID),
				ResourceType: "featured_sermon",
			}
		}
	}
	featured.ID = f.nextID
	f.nextID++
	copied := *featured
	f.featured[featured.ID] = &copied
	return nil
}

func (f *fakeFeaturedRepo) GetByID(ctx context.Context, id int64) (*models.FeaturedSermon, error) {
	featured, ok := f.featured[id]
	if !ok {
		return nil, fmt.Errorf("featured sermon %d: %w", id, domain.ErrNotFound)
	}
	copied := *featured
	return &copied, nil
}

func (f *fakeFeaturedRepo) List(ctx context.Context, filter repositories.FeaturedSermonFilter) ([]models.FeaturedSermon, error) {
	return nil, nil
}

func (f *fakeFeaturedRepo) Update(ctx context.Context, featured *models.FeaturedSermon) error {
	if _, ok := f.featured[featured.ID]; !ok {
		return fmt.Errorf("featured sermon %d: %w", featured.ID, domain.ErrNotFound)
	}
	copied := *featured
	f.featured[featured.ID] = &copied
	return nil
}

func (f *fakeFeaturedRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.featured[id]; !ok {
		return fmt.Errorf("featured sermon %d: %w", id, domain.ErrNotFound)
	}
	delete(f.featured, id)
	return nil
}

type fakeSermonRepo struct {
	sermons map[int64]*models.Sermon
}

func (f *fakeSermonRepo) Create(ctx context.Context, sermon *models.Sermon) error { return nil }

func (f *fakeSermonRepo) GetByID(ctx context.Context, id int64) (*models.Sermon, error) {
	sermon, ok := f.sermons[id]
	if !ok {
		return nil, fmt.Errorf("sermon %d: %w", id, domain.ErrNotFound)
	}
	copied := *sermon
	return &copied, nil
}

func (f *fakeSermonRepo) List(ctx context.Context, filter repositories.SermonFilter) ([]models.Sermon, error) {
	return nil, nil
}

func (f *fakeSermonRepo) Update(ctx context.Context, sermon *models.Sermon) error { return nil }
func (f *fakeSermonRepo) Delete(ctx context.Context, id int64) error              { return nil }

func newTestFeaturedService() (services.FeaturedSermonService, *fakeFeaturedRepo) {
	featuredRepo := newFakeFeaturedRepo()
	sermonRepo := &fakeSermonRepo{sermons: map[int64]*models.Sermon{
		1: {ID: 1, SpeakerID: 1, Title: "The Covenant Thread", MediaURL: "https://media.example.org/covenant.mp3"},
		2: {ID: 2, SpeakerID: 1, Title: "Sixty Seconds on Grace", MediaURL: "https://media.example.org/sixty.mp4", IsClip: true},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFeaturedSermonService(featuredRepo, sermonRepo, logger), featuredRepo
}

func TestCreateFeatured_DefaultsToActive(t *testing.T) {
	svc, _ := newTestFeaturedService()

	featured, err := svc.Create(context.Background(), &services.CreateFeaturedSermonRequest{
		ChurchID: 5,
		SermonID: 1,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !featured.IsActive {
		t.Error("new featured sermon is not active by default")
	}
}

func TestCreateFeatured_RejectsClips(t *testing.T) {
	svc, repo := newTestFeaturedService()

	_, err := svc.Create(context.Background(), &services.CreateFeaturedSermonRequest{
		ChurchID: 5,
		SermonID: 2,
	})
	var fieldErr *domain.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("Create() error = %v, want field error", err)
	}
	if fieldErr.Field != "sermon_id" {
		t.Errorf("field = %q, want sermon_id", fieldErr.Field)
	}
	if len(repo.featured) != 0 {
		t.Error("a clip was featured")
	}
}

func TestCreateFeatured_DuplicatePairConflicts(t *testing.T) {
	svc, _ := newTestFeaturedService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &services.CreateFeaturedSermonRequest{ChurchID: 5, SermonID: 1}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := svc.Create(ctx, &services.CreateFeaturedSermonRequest{ChurchID: 5, SermonID: 1})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("second Create() error = %v, want conflict", err)
	}
}

func TestUpdateFeatured_PartialUpdate(t *testing.T) {
	svc, _ := newTestFeaturedService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &services.CreateFeaturedSermonRequest{ChurchID: 5, SermonID: 1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	order := 3
	updated, err := svc.Update(ctx, created.ID, &services.UpdateFeaturedSermonRequest{SortOrder: &order})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.SortOrder != 3 {
		t.Errorf("sort_order = %d, want 3", updated.SortOrder)
	}
	if !updated.IsActive {
		t.Error("unset is_active flipped the active flag")
	}
}

func TestCreateFeatured_UnknownSermon(t *testing.T) {
	svc, _ := newTestFeaturedService()

	_, err := svc.Create(context.Background(), &services.CreateFeaturedSermonRequest{
		ChurchID: 5,
		SermonID: 99,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Create() error = %v, want not found", err)
	}
}
