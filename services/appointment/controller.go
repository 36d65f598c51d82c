package appointment

import (
	"context"
	"time"

	"drmike/models"

	"go.uber.org/zap"
)

// Controller holds the single in-progress appointment draft of a view and
// mediates its mutation and submission.
type Controller struct {
	draft  models.AppointmentRequestDraft
	sink   Sink
	logger *zap.Logger
	now    func() time.Time
}

// NewController starts a controller from draft. A nil sink discards submissions.
func NewController(draft models.AppointmentRequestDraft, sink Sink, logger *zap.Logger) *Controller {
	if sink == nil {
		sink = DiscardSink{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		draft:  draft,
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() models.AppointmentRequestDraft {
	return c.draft
}

// Update replaces one field of the draft and leaves the others unchanged.
func (c *Controller) Update(field models.DraftField, value string) {
	c.draft = c.draft.With(field, value)
}

// Submit reports the draft to the sink, replaces it with an empty draft and
// returns the acknowledgement. It always succeeds; a sink failure is only logged.
// Required-field presence is the caller's concern (see MissingRequired).
func (c *Controller) Submit(ctx context.Context) models.Acknowledgement {
	submitted := c.draft
	c.draft = models.EmptyDraft()

	if err := c.sink.Report(ctx, submitted); err != nil {
		c.logger.Warn("appointment sink failed; acknowledging anyway", zap.Error(err))
	}

	return models.Acknowledgement{
		Message:     models.AcknowledgementMessage,
		SubmittedAt: c.now(),
	}
}

// MissingRequired returns the required fields of d that are empty, in form order.
// A draft with missing fields must not be submitted.
func MissingRequired(d models.AppointmentRequestDraft) []models.DraftField {
	var missing []models.DraftField
	for _, f := range models.RequiredDraftFields {
		if d.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
