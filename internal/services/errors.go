// Package services defines the business logic for feedback, downloads,
// metrics, and PDF export. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Feedback-related errors.
var (
	// ErrFeedbackNotFound indicates that the requested feedback item does
	// not exist.
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrEmptyPage is returned when a feedback submission does not name the
	// page it refers to.
	ErrEmptyPage = errors.New("page is required")

	// ErrEmptyContent is returned when a feedback or response submission
	// carries no content.
	ErrEmptyContent = errors.New("content is required")

	// ErrInvalidStatus is returned when a status update uses a value outside
	// the allowed set (new, reviewed, in_progress, addressed).
	ErrInvalidStatus = errors.New("invalid feedback status")
)

// Download-related errors.
var (
	// ErrInvalidDownloadType is returned when a download event names a type
	// outside the allowed set (whitepaper, technical-plan).
	ErrInvalidDownloadType = errors.New("invalid download type")
)
