// Package domain defines the persistence models for feedback, feedback
// responses, download events, and project metrics. These types are mapped
// with GORM and form the core data layer of the partner backend.
package domain

import (
	"time"
)

// Feedback status values. Every stored row carries exactly one of these;
// new feedback always starts as StatusNew.
const (
	StatusNew        = "new"
	StatusReviewed   = "reviewed"
	StatusInProgress = "in_progress"
	StatusAddressed  = "addressed"
)

// ValidStatus reports whether s is one of the four feedback status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusReviewed, StatusInProgress, StatusAddressed:
		return true
	}
	return false
}

// Download type values accepted by the tracking endpoint.
const (
	DownloadWhitepaper    = "whitepaper"
	DownloadTechnicalPlan = "technical-plan"
)

// ValidDownloadType reports whether t is a recognized download type.
func ValidDownloadType(t string) bool {
	return t == DownloadWhitepaper || t == DownloadTechnicalPlan
}

// Feedback is a partner-submitted remark about a page of the product. The
// authoring identity is captured at creation time and never re-fetched.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID / UserEmail / UserName: identity snapshot of the author.
//   - Page: the page the feedback targets (free-form route string).
//   - Section: optional section label within the page (null when absent).
//   - Content: free-text body, required non-empty.
//   - Status: one of the four status constants; starts as "new".
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Feedback struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:varchar(64);not null;index:idx_feedback_user"`
	UserEmail string    `json:"user_email" gorm:"type:varchar(255);not null"`
	UserName  string    `json:"user_name"  gorm:"type:varchar(255);not null"`
	Page      string    `json:"page"       gorm:"type:varchar(255);not null"`
	Section   *string   `json:"section,omitempty" gorm:"type:varchar(255)"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	Status    string    `json:"status"     gorm:"type:varchar(16);not null;default:'new';index;check:status IN ('new','reviewed','in_progress','addressed')"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	// Responses are the replies attached to this feedback item, preloaded
	// on list reads. Responses are cascade-deleted with their parent.
	Responses []FeedbackResponse `json:"feedback_responses" gorm:"foreignKey:FeedbackID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedback" }

// FeedbackResponse is a reply to a feedback item. Responses are immutable
// once created and always reference an existing parent row (enforced by the
// foreign key at the storage layer).
type FeedbackResponse struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	FeedbackID string    `json:"feedback_id" gorm:"type:char(36);not null;index:idx_response_feedback"`
	UserID     string    `json:"user_id"     gorm:"type:varchar(64);not null"`
	UserEmail  string    `json:"user_email"  gorm:"type:varchar(255);not null"`
	UserName   string    `json:"user_name"   gorm:"type:varchar(255);not null"`
	Content    string    `json:"content"     gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the database table name for FeedbackResponse.
func (FeedbackResponse) TableName() string { return "feedback_responses" }

// Download records one download attempt of a gated document. Identity is
// best-effort: both UserID and UserEmail are null for anonymous requests.
// Rows are written once and never updated or deleted.
type Download struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    *string   `json:"user_id,omitempty"    gorm:"type:varchar(64)"`
	UserEmail *string   `json:"user_email,omitempty" gorm:"type:varchar(255)"`
	Type      string    `json:"type"       gorm:"type:varchar(32);not null;index;check:type IN ('whitepaper','technical-plan')"`
	IPAddress string    `json:"ip_address" gorm:"type:varchar(64);not null;default:'unknown'"`
	UserAgent string    `json:"user_agent" gorm:"type:varchar(512);not null;default:'unknown'"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Download.
func (Download) TableName() string { return "downloads" }

// ProjectMetric is a named scalar counter upserted after every relevant
// write. The stored value is always a full recount of the backing table,
// never an incremental delta, so it self-heals from missed updates.
//
// MetricName is unique: each upsert targets the same logical row.
type ProjectMetric struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	MetricName  string    `json:"metric_name"  gorm:"type:varchar(64);not null;uniqueIndex:ux_metric_name"`
	MetricValue float64   `json:"metric_value" gorm:"not null;default:0"`
	MetricType  string    `json:"metric_type"  gorm:"type:varchar(16);not null;default:'count';check:metric_type IN ('count','percentage','currency')"`
	Period      string    `json:"period"       gorm:"type:varchar(32);not null;default:'total'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for ProjectMetric.
func (ProjectMetric) TableName() string { return "project_metrics" }
