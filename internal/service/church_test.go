package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"pulpit/internal/config"
	"pulpit/internal/domain"
	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
)

type fakeChurchRepo struct {
	churches   map[int64]*models.Church
	nextID     int64
	lastFilter repositories.ChurchFilter
}

func newFakeChurchRepo() *fakeChurchRepo {
	return &fakeChurchRepo{churches: map[int64]*models.Church{}, nextID: 1}
}

func (f *fakeChurchRepo) Create(ctx context.Context, church *models.Church) error {
	church.ID = f.nextID
	f.nextID++
	copied := *church
	f.churches[church.ID] = &copied
	return nil
}

func (f *fakeChurchRepo) GetByID(ctx context.Context, id int64) (*models.Church, error) {
	church, ok := f.churches[id]
	if !ok {
		return nil, fmt.Errorf("church %d: %w", id, domain.ErrNotFound)
	}
	copied := *church
	return &copied, nil
}

func (f *fakeChurchRepo) List(ctx context.Context, filter repositories.ChurchFilter) ([]models.Church, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeChurchRepo) Update(ctx context.Context, church *models.Church) error {
	if _, ok := f.churches[church.ID]; !ok {
		return fmt.Errorf("church %d: %w", church.ID, domain.ErrNotFound)
	}
	copied := *church
	f.churches[church.ID] = &copied
	return nil
}

func (f *fakeChurchRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.churches[id]; !ok {
		return fmt.Errorf("church %d: %w", id, domain.ErrNotFound)
	}
	delete(f.churches, id)
	return nil
}

func newTestChurchService() (services.ChurchService, *fakeChurchRepo) {
	repo := newFakeChurchRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewChurchService(repo, logger), repo
}

func TestCreateChurch_RequiresNameAndDenomination(t *testing.T) {
	svc, repo := newTestChurchService()

	_, err := svc.CreateChurch(context.Background(), &services.CreateChurchRequest{
		Name: "Grace Fellowship",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("CreateChurch() error = %v, want validation error", err)
	}
	if len(repo.churches) != 0 {
		t.Error("invalid request created a church")
	}
}

func TestCreateChurch_DefaultsToActive(t *testing.T) {
	svc, _ := newTestChurchService()

	church, err := svc.CreateChurch(context.Background(), &services.CreateChurchRequest{
		Name:         "  Grace Fellowship  ",
		Denomination: "Baptist",
	})
	if err != nil {
		t.Fatalf("CreateChurch() error = %v", err)
	}
	if !church.IsActive {
		t.Error("new church is not active by default")
	}
	if church.Name != "Grace Fellowship" {
		t.Errorf("name = %q, want trimmed", church.Name)
	}
}

func TestUpdateChurch_PartialUpdate(t *testing.T) {
	svc, _ := newTestChurchService()
	ctx := context.Background()

	created, err := svc.CreateChurch(ctx, &services.CreateChurchRequest{
		Name:         "Grace Fellowship",
		Denomination: "Baptist",
	})
	if err != nil {
		t.Fatalf("CreateChurch() error = %v", err)
	}

	newName := "Grace Community"
	updated, err := svc.UpdateChurch(ctx, created.ID, &services.UpdateChurchRequest{
		Name: &newName,
	})
	if err != nil {
		t.Fatalf("UpdateChurch() error = %v", err)
	}
	if updated.Name != newName {
		t.Errorf("name = %q, want %q", updated.Name, newName)
	}
	if updated.Denomination != "Baptist" {
		t.Errorf("denomination = %q, unset fields must keep their values", updated.Denomination)
	}
}

func TestUpdateChurch_UnknownID(t *testing.T) {
	svc, _ := newTestChurchService()

	name := "Anything"
	_, err := svc.UpdateChurch(context.Background(), 42, &services.UpdateChurchRequest{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("UpdateChurch() error = %v, want not found", err)
	}
}

func TestListChurches_ClampsLimit(t *testing.T) {
	svc, repo := newTestChurchService()
	ctx := context.Background()

	if _, err := svc.ListChurches(ctx, repositories.ChurchFilter{}); err != nil {
		t.Fatalf("ListChurches() error = %v", err)
	}
	if repo.lastFilter.Limit != config.DefaultPageLimit {
		t.Errorf("default limit = %d, want %d", repo.lastFilter.Limit, config.DefaultPageLimit)
	}

	if _, err := svc.ListChurches(ctx, repositories.ChurchFilter{Limit: 5000}); err != nil {
		t.Fatalf("ListChurches() error = %v", err)
	}
	if repo.lastFilter.Limit != config.MaxPageLimit {
		t.Errorf("oversized limit = %d, want %d", repo.lastFilter.Limit, config.MaxPageLimit)
	}
}
