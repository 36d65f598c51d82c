package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"drmike/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultViewService implements ViewService on top of a Store and a Sink.
// Updates to one session are serialized within the process.
type DefaultViewService struct {
	Store  Store
	Sink   Sink
	Logger *zap.Logger
	Now    func() time.Time

	locks sessionLocks
}

func NewDefaultViewService(store Store, sink Sink, logger *zap.Logger) (*DefaultViewService, error) {
	if store == nil {
		return nil, fmt.Errorf("view service initialization error: store is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultViewService{
		Store:  store,
		Sink:   sink,
		Logger: logger,
		Now:    time.Now,
	}, nil
}

// Open returns the view for sessionID, or a fresh unmounted view with an
// empty draft when the session is unknown or expired.
func (s *DefaultViewService) Open(ctx context.Context, sessionID string) (models.ViewState, error) {
	if sessionID != "" {
		state, err := s.Store.Load(ctx, sessionID)
		if err == nil {
			return state, nil
		}
		if !errors.Is(err, ErrViewNotFound) {
			return models.ViewState{}, err
		}
	}

	now := s.Now()
	state := models.ViewState{
		SessionID: uuid.New().String(),
		Draft:     models.EmptyDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, state); err != nil {
		return models.ViewState{}, err
	}
	s.Logger.Debug("landing view opened", zap.String("sessionID", state.SessionID))
	return state, nil
}

// Activate flips the mount flag after the first render. It never reverts.
func (s *DefaultViewService) Activate(ctx context.Context, state models.ViewState) (models.ViewState, error) {
	if state.Mounted {
		return state, nil
	}
	defer s.locks.lock(state.SessionID)()

	// reload so a concurrent update to the draft is not overwritten
	current, err := s.Store.Load(ctx, state.SessionID)
	switch {
	case err == nil:
		state = current
	case !errors.Is(err, ErrViewNotFound):
		return models.ViewState{}, err
	}
	state.Mounted = true
	if err := s.save(ctx, &state); err != nil {
		return models.ViewState{}, err
	}
	return state, nil
}

func (s *DefaultViewService) Draft(ctx context.Context, sessionID string) (models.AppointmentRequestDraft, error) {
	state, err := s.Open(ctx, sessionID)
	if err != nil {
		return models.AppointmentRequestDraft{}, err
	}
	return state.Draft, nil
}

// UpdateField replaces one field of the session's draft.
func (s *DefaultViewService) UpdateField(ctx context.Context, sessionID string, field models.DraftField, value string) (models.AppointmentRequestDraft, error) {
	if _, err := models.ParseDraftField(string(field)); err != nil {
		return models.AppointmentRequestDraft{}, err
	}
	defer s.locks.lock(sessionID)()

	state, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return models.AppointmentRequestDraft{}, err
	}

	ctrl := NewController(state.Draft, s.Sink, s.Logger)
	ctrl.Update(field, value)
	state.Draft = ctrl.Draft()

	if err := s.save(ctx, &state); err != nil {
		return models.AppointmentRequestDraft{}, err
	}
	return state.Draft, nil
}

// SubmitForm applies every field of form to the session's draft. When a
// required field is empty the draft is kept and nothing is submitted;
// otherwise the draft is submitted and the view returns to an empty draft.
// Once the draft has been reported the acknowledgement is always returned; a
// failure to store the reset draft is only logged.
func (s *DefaultViewService) SubmitForm(ctx context.Context, sessionID string, form models.AppointmentRequestDraft) (*FormResult, error) {
	if sessionID != "" {
		defer s.locks.lock(sessionID)()
	}
	state, err := s.Open(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ctrl := NewController(state.Draft, s.Sink, s.Logger)
	for _, f := range models.AllDraftFields {
		ctrl.Update(f, form.Get(f))
	}

	if missing := MissingRequired(ctrl.Draft()); len(missing) > 0 {
		state.Draft = ctrl.Draft()
		if err := s.save(ctx, &state); err != nil {
			return nil, err
		}
		return &FormResult{State: state, Missing: missing}, nil
	}

	ack := ctrl.Submit(ctx)
	state.Draft = ctrl.Draft()
	if err := s.save(ctx, &state); err != nil {
		s.Logger.Warn("failed to store reset draft after submit",
			zap.String("sessionID", state.SessionID), zap.Error(err))
	}
	return &FormResult{State: state, Acknowledgement: &ack}, nil
}

func (s *DefaultViewService) save(ctx context.Context, state *models.ViewState) error {
	state.UpdatedAt = s.Now()
	return s.Store.Save(ctx, *state)
}
