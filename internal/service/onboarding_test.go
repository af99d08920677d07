package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"testing"

	"pulpit/internal/domain"
	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
	"pulpit/internal/questions"
)

type fakeUserRepo struct {
	users           map[int64]*models.User
	prefWriteCount  int
	lastPrefsUpdate repositories.PreferenceUpdate
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) List(ctx context.Context, filter repositories.UserFilter) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserRepo) UpdatePreferences(ctx context.Context, userID int64, update repositories.PreferenceUpdate) error {
	user, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	user.BibleReadingPreference = update.BibleReadingPreference
	user.TeachingStylePreference = update.TeachingStylePreference
	user.EnvironmentPreference = update.EnvironmentPreference
	user.OnboardingCompleted = update.OnboardingCompleted
	f.prefWriteCount++
	f.lastPrefsUpdate = update
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error { return nil }

type fakeSpeakerRepo struct {
	speakers []models.Speaker
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, speaker *models.Speaker) error { return nil }

func (f *fakeSpeakerRepo) GetByID(ctx context.Context, id int64) (*models.Speaker, error) {
	for i := range f.speakers {
		if f.speakers[i].ID == id {
			copied := f.speakers[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("speaker %d: %w", id, domain.ErrNotFound)
}

func (f *fakeSpeakerRepo) List(ctx context.Context, filter repositories.SpeakerFilter) ([]models.Speaker, error) {
	return f.speakers, nil
}

func (f *fakeSpeakerRepo) ListAll(ctx context.Context) ([]models.Speaker, error) {
	return slices.Clone(f.speakers), nil
}

func (f *fakeSpeakerRepo) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	var missing []int64
	for _, id := range ids {
		found := false
		for i := range f.speakers {
			if f.speakers[i].ID == id {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (f *fakeSpeakerRepo) Update(ctx context.Context, speaker *models.Speaker) error { return nil }
func (f *fakeSpeakerRepo) Delete(ctx context.Context, id int64) error                { return nil }

type fakePrefRepo struct {
	speakerRepo  *fakeSpeakerRepo
	links        map[int64][]int64
	replaceCount int
}

func (f *fakePrefRepo) ReplaceForUser(ctx context.Context, userID int64, speakerIDs []int64) error {
	f.links[userID] = slices.Clone(speakerIDs)
	f.replaceCount++
	return nil
}

func (f *fakePrefRepo) ListSpeakerIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := slices.Clone(f.links[userID])
	slices.Sort(ids)
	return ids, nil
}

func (f *fakePrefRepo) ListSpeakers(ctx context.Context, userID int64) ([]models.Speaker, error) {
	ids, _ := f.ListSpeakerIDs(ctx, userID)
	var out []models.Speaker
	for _, id := range ids {
		speaker, err := f.speakerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *speaker)
	}
	return out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

func testSpeakers() []models.Speaker {
	return []models.Speaker{
		{ID: 1, Name: "A", TeachingStyle: models.TeachingAcademic, BibleApproach: models.BibleMoreScripture, EnvironmentStyle: models.EnvironmentTraditional},
		{ID: 2, Name: "B", TeachingStyle: models.TeachingRelatable, BibleApproach: models.BibleMoreApplication, EnvironmentStyle: models.EnvironmentContemporary},
		{ID: 3, Name: "C", TeachingStyle: models.TeachingRelatable, BibleApproach: models.BibleMoreApplication, EnvironmentStyle: models.EnvironmentContemporary, IsRecommended: true},
		{ID: 4, Name: "D", TeachingStyle: models.TeachingBalanced, BibleApproach: models.BibleBalanced, EnvironmentStyle: models.EnvironmentBlended},
		{ID: 5, Name: "E", TeachingStyle: models.TeachingAcademic, BibleApproach: models.BibleMoreScripture, EnvironmentStyle: models.EnvironmentTraditional},
	}
}

func newTestOnboarding(t *testing.T) (services.OnboardingService, *fakeUserRepo, *fakeSpeakerRepo, *fakePrefRepo) {
	t.Helper()

	registry, err := questions.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	userRepo := &fakeUserRepo{users: map[int64]*models.User{
		7: {ID: 7, Username: "pilgrim", Email: "pilgrim@example.com", IsActive: true},
	}}
	speakerRepo := &fakeSpeakerRepo{speakers: testSpeakers()}
	prefRepo := &fakePrefRepo{speakerRepo: speakerRepo, links: map[int64][]int64{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewOnboardingService(userRepo, speakerRepo, prefRepo, registry, fakeTxManager{}, logger)
	return svc, userRepo, speakerRepo, prefRepo
}

func ptr[T any](v T) *T { return &v }

func TestSubmit_PersistsAnswersAndRecommends(t *testing.T) {
	svc, userRepo, _, prefRepo := newTestOnboarding(t)

	resp, err := svc.Submit(context.Background(), &models.OnboardingSubmitRequest{
		UserID: 7,
		Answers: models.OnboardingAnswers{
			Speakers:                []int64{2},
			BibleReadingPreference:  ptr(models.BibleMoreApplication),
			TeachingStylePreference: ptr(models.TeachingRelatable),
			EnvironmentPreference:   ptr(models.EnvironmentContemporary),
		},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if !resp.User.OnboardingCompleted {
		t.Error("Submit() did not mark onboarding completed")
	}
	if resp.User.BibleReadingPreference == nil || *resp.User.BibleReadingPreference != models.BibleMoreApplication {
		t.Errorf("bible reading preference = %v, want %s", resp.User.BibleReadingPreference, models.BibleMoreApplication)
	}
	if len(resp.User.PreferredSpeakers) != 1 || resp.User.PreferredSpeakers[0].ID != 2 {
		t.Errorf("preferred speakers = %v, want [2]", resp.User.PreferredSpeakers)
	}

	if userRepo.prefWriteCount != 1 || prefRepo.replaceCount != 1 {
		t.Errorf("writes = (%d prefs, %d replaces), want (1, 1)", userRepo.prefWriteCount, prefRepo.replaceCount)
	}

	// Speaker 3 matches everything and carries the recommended flag, so
	// it outranks the identical speaker 2 held out as a chosen speaker.
	if len(resp.RecommendedSpeakers) != 4 {
		t.Fatalf("recommendations = %d speakers, want 4", len(resp.RecommendedSpeakers))
	}
	if resp.RecommendedSpeakers[0].ID != 3 {
		t.Errorf("top recommendation = %d, want 3", resp.RecommendedSpeakers[0].ID)
	}
	for _, speaker := range resp.RecommendedSpeakers {
		if speaker.ID == 2 {
			t.Error("recommendations include an explicitly chosen speaker")
		}
	}
}

func TestSubmit_InvalidEnumRejectedBeforeWrites(t *testing.T) {
	svc, userRepo, _, prefRepo := newTestOnboarding(t)

	bad := models.BibleApproach("SOMETIMES")
	_, err := svc.Submit(context.Background(), &models.OnboardingSubmitRequest{
		UserID: 7,
		Answers: models.OnboardingAnswers{
			BibleReadingPreference: ptr(bad),
		},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Submit() error = %v, want validation error", err)
	}

	var fieldErr *domain.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("Submit() error = %T, want *domain.FieldError", err)
	}
	if fieldErr.Field != "bible_reading_preference" {
		t.Errorf("field = %q, want bible_reading_preference", fieldErr.Field)
	}

	if userRepo.prefWriteCount != 0 || prefRepo.replaceCount != 0 {
		t.Errorf("writes = (%d prefs, %d replaces), want none", userRepo.prefWriteCount, prefRepo.replaceCount)
	}
	if userRepo.users[7].OnboardingCompleted {
		t.Error("rejected submission still marked onboarding completed")
	}
}

func TestSubmit_EmptyEnumRejected(t *testing.T) {
	svc, _, _, _ := newTestOnboarding(t)

	empty := models.TeachingStyle("")
	_, err := svc.Submit(context.Background(), &models.OnboardingSubmitRequest{
		UserID: 7,
		Answers: models.OnboardingAnswers{
			TeachingStylePreference: ptr(empty),
		},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Submit() error = %v, want validation error", err)
	}
}

func TestSubmit_UnknownSpeakerRejectsWholeRequest(t *testing.T) {
	svc, userRepo, _, prefRepo := newTestOnboarding(t)

	_, err := svc.Submit(context.Background(), &models.OnboardingSubmitRequest{
		UserID: 7,
		Answers: models.OnboardingAnswers{
			Speakers: []int64{1, 99},
		},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Submit() error = %v, want validation error", err)
	}

	var fieldErr *domain.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("Submit() error = %T, want *domain.FieldError", err)
	}
	if fieldErr.Field != "speakers" {
		t.Errorf("field = %q, want speakers", fieldErr.Field)
	}

	if userRepo.prefWriteCount != 0 || prefRepo.replaceCount != 0 {
		t.Error("partially valid submission wrote to the database")
	}
}

func TestSubmit_ResubmissionReplacesLinks(t *testing.T) {
	svc, _, _, prefRepo := newTestOnboarding(t)
	ctx := context.Background()

	first := &models.OnboardingSubmitRequest{
		UserID:  7,
		Answers: models.OnboardingAnswers{Speakers: []int64{1, 2}},
	}
	if _, err := svc.Submit(ctx, first); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}

	second := &models.OnboardingSubmitRequest{
		UserID:  7,
		Answers: models.OnboardingAnswers{Speakers: []int64{3}},
	}
	resp, err := svc.Submit(ctx, second)
	if err != nil {
		t.Fatalf("second Submit() error = %v", err)
	}

	if got := prefRepo.links[7]; !slices.Equal(got, []int64{3}) {
		t.Errorf("stored links = %v, want [3]", got)
	}
	if len(resp.User.PreferredSpeakers) != 1 || resp.User.PreferredSpeakers[0].ID != 3 {
		t.Errorf("preferred speakers = %v, want [3]", resp.User.PreferredSpeakers)
	}
}

func TestSubmit_UnknownUser(t *testing.T) {
	svc, _, _, _ := newTestOnboarding(t)

	_, err := svc.Submit(context.Background(), &models.OnboardingSubmitRequest{UserID: 404})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Submit() error = %v, want not found", err)
	}
}

func TestGetRecommendations_RequiresCompletedOnboarding(t *testing.T) {
	svc, _, _, _ := newTestOnboarding(t)

	_, err := svc.GetRecommendations(context.Background(), 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetRecommendations() error = %v, want not found", err)
	}
}

func TestGetRecommendations_UsesStoredPreferences(t *testing.T) {
	svc, _, _, _ := newTestOnboarding(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, &models.OnboardingSubmitRequest{
		UserID: 7,
		Answers: models.OnboardingAnswers{
			Speakers:                []int64{1},
			BibleReadingPreference:  ptr(models.BibleMoreScripture),
			TeachingStylePreference: ptr(models.TeachingAcademic),
			EnvironmentPreference:   ptr(models.EnvironmentTraditional),
		},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	got, err := svc.GetRecommendations(ctx, 7)
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}

	// Speaker 5 is the only remaining full match once chosen speaker 1
	// is excluded.
	if len(got) == 0 || got[0].ID != 5 {
		t.Fatalf("top recommendation = %v, want speaker 5 first", got)
	}
	for _, speaker := range got {
		if speaker.ID == 1 {
			t.Error("recommendations include an explicitly chosen speaker")
		}
	}
}

func TestGetQuestions_PopulatesSpeakerOptions(t *testing.T) {
	svc, _, speakerRepo, _ := newTestOnboarding(t)

	qs, err := svc.GetQuestions(context.Background())
	if err != nil {
		t.Fatalf("GetQuestions() error = %v", err)
	}

	var speakersQ *models.Question
	for i := range qs {
		if qs[i].ID == "speakers" {
			speakersQ = &qs[i]
		}
	}
	if speakersQ == nil {
		t.Fatal("GetQuestions() returned no speakers question")
	}
	if len(speakersQ.Options) != len(speakerRepo.speakers) {
		t.Errorf("speaker options = %d, want %d", len(speakersQ.Options), len(speakerRepo.speakers))
	}
}
