package appointment

import (
	"context"

	"drmike/models"

	"go.uber.org/zap"
)

// Sink receives submitted drafts. A booking or notification service would
// implement it; the landing page ships with LogSink only.
type Sink interface {
	Report(ctx context.Context, draft models.AppointmentRequestDraft) error
}

// LogSink writes each submission as a structured log entry.
type LogSink struct {
	Logger *zap.Logger
}

// NewLogSink returns a Sink that logs each request; a nil logger uses zap.L().
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.L()
	}
	return &LogSink{Logger: logger}
}

func (s *LogSink) Report(_ context.Context, d models.AppointmentRequestDraft) error {
	s.Logger.Info("appointment request",
		zap.String("name", d.Name),
		zap.String("email", d.Email),
		zap.String("phone", d.Phone),
		zap.String("preferredDate", d.PreferredDate),
		zap.String("preferredTime", d.PreferredTime),
		zap.String("reason", d.Reason),
		zap.String("message", d.Message),
	)
	return nil
}

// DiscardSink drops every submission.
type DiscardSink struct{}

func (DiscardSink) Report(context.Context, models.AppointmentRequestDraft) error { return nil }

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, d models.AppointmentRequestDraft) error

func (f SinkFunc) Report(ctx context.Context, d models.AppointmentRequestDraft) error {
	return f(ctx, d)
}
