package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-partner-backend/internal/domain"
)

func newFeedbackRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:feedback_repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateFeedback_Error_NoTable(t *testing.T) {
	db := newFeedbackRepoDB(t /* no migrations */)
	f, err := CreateFeedback(context.Background(), db, "u1", "a@b.c", "A B", "home", nil, "hello")
	if err == nil || f != nil {
		t.Fatalf("expected error creating without table, got f=%v err=%v", f, err)
	}
}

func TestCreateFeedback_Success_PersistsAndSetsFields(t *testing.T) {
	db := newFeedbackRepoDB(t, &domain.Feedback{}, &domain.FeedbackResponse{})

	start := time.Now().UTC().Add(-time.Minute)
	section := "hero"
	f, err := CreateFeedback(context.Background(), db, "u1", "jane@acme.io", "Jane Doe", "home", &section, "great page")
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	if f.ID == "" || f.UserID != "u1" || f.UserEmail != "jane@acme.io" || f.UserName != "Jane Doe" {
		t.Fatalf("unexpected author fields: %+v", f)
	}
	if f.Page != "home" || f.Section == nil || *f.Section != "hero" || f.Content != "great page" {
		t.Fatalf("unexpected payload fields: %+v", f)
	}
	if f.Status != domain.StatusNew {
		t.Fatalf("new feedback must start as %q, got %q", domain.StatusNew, f.Status)
	}
	if f.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset/really old: %v", f.CreatedAt)
	}
	// round-trip
	var got domain.Feedback
	if err := db.First(&got, "id = ?", f.ID).Error; err != nil {
		t.Fatalf("load created feedback: %v", err)
	}
	if got.Page != "home" || got.Status != domain.StatusNew {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestCreateFeedback_NilSection_StoredAsNull(t *testing.T) {
	db := newFeedbackRepoDB(t, &domain.Feedback{}, &domain.FeedbackResponse{})

	f, err := CreateFeedback(context.Background(), db, "u1", "a@b.c", "A", "pricing", nil, "x")
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	var got domain.Feedback
	if err := db.First(&got, "id = ?", f.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Section != nil {
		t.Fatalf("expected NULL section, got %q", *got.Section)
	}
}

func TestGetFeedback_NotFound(t *testing.T) {
	db := newFeedbackRepoDB(t, &domain.Feedback{}, &domain.FeedbackResponse{})

	f, err := GetFeedback(context.Background(), db, "missing")
	if f != nil || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got f=%v err=%v", f, err)
	}
}

func TestGetFeedback_PreloadsResponsesAscending(t *testing.T) {
	db := newFeedbackRepoDB(t, &domain.Feedback{}, &domain.FeedbackResponse{})

	f, err := CreateFeedback(context.Background(), db, "u1", "a@b.c", "A", "home", nil, "x")
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}

	// Seed replies with explicit timestamps so order is deterministic.
	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	for i, ts := range []time.Time{t2, t1} { // insert newest first on purpose
		r := &domain.FeedbackResponse{
			ID:         fmt.Sprintf("r%d", i),
			FeedbackID: f.ID,
			UserID:     "u2",
			UserEmail:  "b@b.c",
			UserName:   "B",
			Content:    fmt.Sprintf("reply %d", i),
			CreatedAt:  ts,
		}
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("insert reply: %v", err)
		}
	}

	got, err := GetFeedback(context.Background(), db, f.ID)
	if err != nil {
		t.Fatalf("GetFeedback: %v", err)
	}
	if len(got.Responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(got.Responses))
	}
	if !got.Responses[0].CreatedAt.Before(got.Responses[1].CreatedAt) {
		t.Fatalf("responses not ascending: %v then %v", got.Responses[0].CreatedAt, got.Responses[1].CreatedAt)
	}
}

func TestListFeedback_NewestFirstAndLimit(t *testing.T) {
	db := newFeedbackRepoDB(t, &domain.Feedback{}, &domain.FeedbackResponse{})

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f := &domain.Feedback{
			ID:        fmt.Sprintf("f%d", i),
			UserID:    "u1",
			UserEmail: "a@b.c",
			UserName:  "A",
			Page:      "home",
			Content:   fmt.Sprintf("item %d", i),
			Status:    domain.StatusNew,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := ListFeedback(context.Background(), db, 3)
	if err != nil {
		t.Fatalf("ListFeedback: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	if got[0].ID != "f4" || got[1].ID != "f3" || got[2].ID != "f2" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestCountFeedback(t *testing.T) {
	db := newFeedbackRepoDB(t, &domain.Feedback{}, &domain.FeedbackResponse{})

	n, err := CountFeedback(context.Background(), db)
	if err != nil || n != 0 {
		t.Fatalf("empty table: n=%d err=%v", n, err)
	}
	if _, err := CreateFeedback(context.Background(), db, "u1", "a@b.c", "A", "home", nil, "x"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err = CountFeedback(context.Background(), db)
	if err != nil || n != 1 {
		t.Fatalf("after insert: n=%d err=%v", n, err)
	}
}

func TestUpdateFeedbackStatus_MissingRow_ReturnsNotFound(t *testing.T) {
	db := newFeedbackRepoDB(t, &domain.Feedback{}, &domain.FeedbackResponse{})

	err := UpdateFeedbackStatus(context.Background(), db, "missing", domain.StatusReviewed)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateFeedbackStatus_Success_UpdatesStatusAndTimestamp(t *testing.T) {
	db := newFeedbackRepoDB(t, &domain.Feedback{}, &domain.FeedbackResponse{})

	f, err := CreateFeedback(context.Background(), db, "u1", "a@b.c", "A", "home", nil, "x")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Push UpdatedAt far into the past so the bump is observable.
	past := time.Now().UTC().Add(-48 * time.Hour)
	if err := db.Model(&domain.Feedback{}).Where("id = ?", f.ID).Update("updated_at", past).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	if err := UpdateFeedbackStatus(context.Background(), db, f.ID, domain.StatusAddressed); err != nil {
		t.Fatalf("UpdateFeedbackStatus: %v", err)
	}

	var got domain.Feedback
	if err := db.First(&got, "id = ?", f.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Status != domain.StatusAddressed {
		t.Fatalf("status not updated: %q", got.Status)
	}
	if !got.UpdatedAt.After(past.Add(time.Hour)) {
		t.Fatalf("UpdatedAt not bumped: %v", got.UpdatedAt)
	}
}
