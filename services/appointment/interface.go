package appointment

import (
	"context"

	"drmike/models"
)

// ViewService manages the view sessions behind the landing page: opening a
// view, its one-time mount, draft updates and form submission.
type ViewService interface {
	Open(ctx context.Context, sessionID string) (models.ViewState, error)
	Activate(ctx context.Context, state models.ViewState) (models.ViewState, error)
	Draft(ctx context.Context, sessionID string) (models.AppointmentRequestDraft, error)
	UpdateField(ctx context.Context, sessionID string, field models.DraftField, value string) (models.AppointmentRequestDraft, error)
	SubmitForm(ctx context.Context, sessionID string, form models.AppointmentRequestDraft) (*FormResult, error)
}

// FormResult is the outcome of a form post. Exactly one of Missing and
// Acknowledgement is set.
type FormResult struct {
	State           models.ViewState
	Missing         []models.DraftField
	Acknowledgement *models.Acknowledgement
}

// Submitted reports whether the draft reached the sink.
func (r *FormResult) Submitted() bool {
	return r.Acknowledgement != nil
}
