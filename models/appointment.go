package models

import (
	"errors"
	"fmt"
	"time"
)

// AcknowledgementMessage is shown after every submission, independent of what the sink did.
const AcknowledgementMessage = "Appointment request submitted! We will contact you soon."

// ErrUnknownField is returned when a field name is not part of the draft.
var ErrUnknownField = errors.New("unknown appointment draft field")

// DraftField names one field of an AppointmentRequestDraft.
type DraftField string

const (
	FieldName          DraftField = "name"
	FieldEmail         DraftField = "email"
	FieldPhone         DraftField = "phone"
	FieldPreferredDate DraftField = "preferredDate"
	FieldPreferredTime DraftField = "preferredTime"
	FieldReason        DraftField = "reason"
	FieldMessage       DraftField = "message"
)

// AllDraftFields lists the draft fields in form order.
var AllDraftFields = []DraftField{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldPreferredDate,
	FieldPreferredTime,
	FieldReason,
	FieldMessage,
}

// RequiredDraftFields must be non-empty before the form may be submitted.
var RequiredDraftFields = []DraftField{FieldName, FieldEmail, FieldPhone}

// ParseDraftField maps a form/JSON field name to a DraftField.
func ParseDraftField(s string) (DraftField, error) {
	for _, f := range AllDraftFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// IsRequired reports whether f is gated by the form before submission.
func (f DraftField) IsRequired() bool {
	for _, r := range RequiredDraftFields {
		if r == f {
			return true
		}
	}
	return false
}

// AppointmentRequestDraft is the in-progress, unsaved appointment request.
type AppointmentRequestDraft struct {
	Name          string `json:"name" form:"name"`
	Email         string `json:"email" form:"email"`
	Phone         string `json:"phone" form:"phone"`
	PreferredDate string `json:"preferredDate" form:"preferredDate"`
	PreferredTime string `json:"preferredTime" form:"preferredTime"`
	Reason        string `json:"reason" form:"reason"`
	Message       string `json:"message" form:"message"`
}

// EmptyDraft returns the all-empty draft a form starts from.
func EmptyDraft() AppointmentRequestDraft {
	return AppointmentRequestDraft{}
}

// IsEmpty reports whether every field is blank.
func (d AppointmentRequestDraft) IsEmpty() bool {
	return d == AppointmentRequestDraft{}
}

// Get returns the value of field f.
func (d AppointmentRequestDraft) Get(f DraftField) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldPreferredDate:
		return d.PreferredDate
	case FieldPreferredTime:
		return d.PreferredTime
	case FieldReason:
		return d.Reason
	case FieldMessage:
		return d.Message
	}
	return ""
}

// With returns a copy of d with field f replaced by value. Unknown fields leave d unchanged.
func (d AppointmentRequestDraft) With(f DraftField, value string) AppointmentRequestDraft {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldPreferredDate:
		d.PreferredDate = value
	case FieldPreferredTime:
		d.PreferredTime = value
	case FieldReason:
		d.Reason = value
	case FieldMessage:
		d.Message = value
	}
	return d
}

// Acknowledgement is the confirmation shown to the visitor after a submission.
type Acknowledgement struct {
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// DraftUpdateInput is the body of a single-field draft update.
type DraftUpdateInput struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}
