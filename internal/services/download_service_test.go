package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tbourn/go-partner-backend/internal/domain"
	"github.com/tbourn/go-partner-backend/internal/identity"
)

func TestDownloadRecord_InvalidType_WritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := &DownloadService{DB: db}

	d, err := svc.Record(context.Background(), nil, "slides", "1.2.3.4", "ua")
	if d != nil || !errors.Is(err, ErrInvalidDownloadType) {
		t.Fatalf("expected ErrInvalidDownloadType, got d=%v err=%v", d, err)
	}

	var n int64
	if err := db.Model(&domain.Download{}).Count(&n).Error; err != nil || n != 0 {
		t.Fatalf("invalid type must not write: n=%d err=%v", n, err)
	}
}

func TestDownloadRecord_Anonymous_DefaultsApplied(t *testing.T) {
	db := newTestDB(t)
	svc := &DownloadService{DB: db}

	d, err := svc.Record(context.Background(), nil, domain.DownloadWhitepaper, "", "")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if d.UserID != nil || d.UserEmail != nil {
		t.Fatalf("anonymous event must have null identity: %+v", d)
	}
	if d.IPAddress != "unknown" || d.UserAgent != "unknown" {
		t.Fatalf("blank origin fields must default to unknown: %+v", d)
	}
}

func TestDownloadRecord_Identified_AttachesIdentityAndRecomputes(t *testing.T) {
	db := newTestDB(t)
	svc := &DownloadService{DB: db, Metrics: &MetricsService{DB: db}}

	p := &identity.Principal{ID: "u1", Email: "jane@acme.io"}
	d, err := svc.Record(context.Background(), p, domain.DownloadTechnicalPlan, "203.0.113.9", "curl/8")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if d.UserID == nil || *d.UserID != "u1" || d.UserEmail == nil || *d.UserEmail != "jane@acme.io" {
		t.Fatalf("identity not attached: %+v", d)
	}

	var m domain.ProjectMetric
	if err := db.First(&m, "metric_name = ?", "technical-plan_downloads").Error; err != nil {
		t.Fatalf("per-type metric missing: %v", err)
	}
	if m.MetricValue != 1 {
		t.Fatalf("expected recount 1, got %v", m.MetricValue)
	}
}

func TestDownloadRecord_EmailMissing_StoredAsNull(t *testing.T) {
	db := newTestDB(t)
	svc := &DownloadService{DB: db}

	p := &identity.Principal{ID: "u1"} // provider gave no email
	d, err := svc.Record(context.Background(), p, domain.DownloadWhitepaper, "1.2.3.4", "ua")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if d.UserID == nil || *d.UserID != "u1" {
		t.Fatalf("user id must be attached: %+v", d)
	}
	if d.UserEmail != nil {
		t.Fatalf("missing email must be stored as NULL, got %q", *d.UserEmail)
	}
}
