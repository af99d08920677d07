package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulpit/internal/domain"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("%w: name is required", domain.ErrValidation),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "field error",
			err:        &domain.FieldError{Field: "teaching_style_preference", Message: "bad value"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("church 9: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "conflict",
			err:        &domain.ConflictError{Message: "already following", ResourceType: "speaker_follower"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("content type = %q, want application/problem+json", ct)
			}
		})
	}
}

func TestHandleError_FieldErrorNamesField(t *testing.T) {
	rec := httptest.NewRecorder()
	handleError(rec, &domain.FieldError{Field: "speakers", Message: "unknown speaker ids [99]"})

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["field"] != "speakers" {
		t.Errorf("field = %v, want speakers", body["field"])
	}
	if body["status"] != float64(http.StatusUnprocessableEntity) {
		t.Errorf("status field = %v, want 422", body["status"])
	}
}

func TestParsePathID(t *testing.T) {
	mux := http.NewServeMux()
	var gotID int64
	var gotErr error
	mux.HandleFunc("GET /api/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotID, gotErr = parsePathID(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/things/42", nil)
	mux.ServeHTTP(httptest.NewRecorder(), req)
	if gotErr != nil || gotID != 42 {
		t.Errorf("parsePathID(42) = (%d, %v), want (42, nil)", gotID, gotErr)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/things/nope", nil)
	mux.ServeHTTP(httptest.NewRecorder(), req)
	if gotErr == nil {
		t.Error("parsePathID accepted a non-numeric id")
	}
}

func TestPagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/things?skip=20&limit=50", nil)
	skip, limit := pagination(req)
	if skip != 20 || limit != 50 {
		t.Errorf("pagination = (%d, %d), want (20, 50)", skip, limit)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/things?skip=-5&limit=junk", nil)
	skip, limit = pagination(req)
	if skip != 0 || limit != 0 {
		t.Errorf("pagination with bad input = (%d, %d), want (0, 0)", skip, limit)
	}
}
