package repo

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-partner-backend/internal/domain"
)

func newDownloadRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:download_repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Download{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateDownload_Anonymous_NullUserFields(t *testing.T) {
	db := newDownloadRepoDB(t)

	d, err := CreateDownload(context.Background(), db, nil, nil, domain.DownloadWhitepaper, "unknown", "unknown")
	if err != nil {
		t.Fatalf("CreateDownload: %v", err)
	}
	if d.UserID != nil || d.UserEmail != nil {
		t.Fatalf("expected null identity for anonymous event: %+v", d)
	}

	var got domain.Download
	if err := db.First(&got, "id = ?", d.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.UserID != nil || got.UserEmail != nil {
		t.Fatalf("identity not stored as NULL: %+v", got)
	}
	if got.Type != domain.DownloadWhitepaper || got.IPAddress != "unknown" || got.UserAgent != "unknown" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestCreateDownload_Identified(t *testing.T) {
	db := newDownloadRepoDB(t)

	uid, email := "u1", "a@b.c"
	d, err := CreateDownload(context.Background(), db, &uid, &email, domain.DownloadTechnicalPlan, "203.0.113.9", "curl/8")
	if err != nil {
		t.Fatalf("CreateDownload: %v", err)
	}
	if d.UserID == nil || *d.UserID != "u1" || d.UserEmail == nil || *d.UserEmail != "a@b.c" {
		t.Fatalf("identity not attached: %+v", d)
	}
}

func TestCountDownloadsByType_FiltersType(t *testing.T) {
	db := newDownloadRepoDB(t)

	ctx := context.Background()
	for _, typ := range []string{
		domain.DownloadWhitepaper,
		domain.DownloadWhitepaper,
		domain.DownloadTechnicalPlan,
	} {
		if _, err := CreateDownload(ctx, db, nil, nil, typ, "unknown", "unknown"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	n, err := CountDownloadsByType(ctx, db, domain.DownloadWhitepaper)
	if err != nil || n != 2 {
		t.Fatalf("whitepaper count: n=%d err=%v", n, err)
	}
	n, err = CountDownloadsByType(ctx, db, domain.DownloadTechnicalPlan)
	if err != nil || n != 1 {
		t.Fatalf("technical-plan count: n=%d err=%v", n, err)
	}
	total, err := CountDownloads(ctx, db)
	if err != nil || total != 3 {
		t.Fatalf("total count: n=%d err=%v", total, err)
	}
}
