package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"drmike/middleware"
	"drmike/models"
	"drmike/services/appointment"
	"drmike/utils"
	"drmike/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LandingHandler serves the landing page and its appointment form.
type LandingHandler struct {
	views      appointment.ViewService
	content    views.PageContent
	cookieName string
	cookieTTL  time.Duration
	secure     bool
}

func NewLandingHandler(svc appointment.ViewService, content views.PageContent, cookieName string, cookieTTL time.Duration, secure bool) *LandingHandler {
	return &LandingHandler{
		views:      svc,
		content:    content,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
		secure:     secure,
	}
}

// LandingPage renders the page for the visitor's view session. The first
// render of a session runs the entrance transition; the session is then
// marked mounted.
func (h *LandingHandler) LandingPage(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	state, err := h.views.Open(ctx, h.sessionID(c))
	if err != nil {
		logger.Error("failed to open landing view", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	h.setSessionCookie(c, state.SessionID)

	view, err := views.NewView(middleware.AuthStatusFrom(c), state, h.content)
	if err != nil {
		logger.Error("failed to build landing view", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if !h.renderHTML(c, http.StatusOK, view) {
		return
	}

	if _, err := h.views.Activate(ctx, state); err != nil {
		logger.Warn("failed to mark landing view mounted", zap.Error(err), zap.String("sessionID", state.SessionID))
	}
}

// SubmitAppointment handles the form post. A draft missing a required field
// is re-rendered with HTTP 422 and never submitted.
func (h *LandingHandler) SubmitAppointment(c *gin.Context) {
	logger := getLogger(c)

	var form models.AppointmentRequestDraft
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("unreadable appointment form", zap.Error(err))
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	result, err := h.views.SubmitForm(c.Request.Context(), h.sessionID(c), form)
	if err != nil {
		logger.Error("failed to submit appointment form", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	h.setSessionCookie(c, result.State.SessionID)

	view, err := views.NewView(middleware.AuthStatusFrom(c), result.State, h.content)
	if err != nil {
		logger.Error("failed to build landing view", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if !result.Submitted() {
		missing := make([]string, len(result.Missing))
		for i, f := range result.Missing {
			missing[i] = string(f)
		}
		logger.Info("appointment form missing required fields", zap.Strings("fields", missing))
		h.renderHTML(c, http.StatusUnprocessableEntity, view.WithMissing(result.Missing))
		return
	}

	h.renderHTML(c, http.StatusOK, view.WithAcknowledgement(result.Acknowledgement))
}

// GetDraft returns the session's current draft.
func (h *LandingHandler) GetDraft(c *gin.Context) {
	state, err := h.views.Open(c.Request.Context(), h.sessionID(c))
	if err != nil {
		getLogger(c).Error("failed to open landing view", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load draft", "")
		return
	}
	h.setSessionCookie(c, state.SessionID)
	c.JSON(http.StatusOK, gin.H{"sessionId": state.SessionID, "draft": state.Draft})
}

// UpdateDraft replaces one field of the session's draft.
func (h *LandingHandler) UpdateDraft(c *gin.Context) {
	var input models.DraftUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	field, err := models.ParseDraftField(input.Field)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid field", err.Error())
		return
	}

	draft, err := h.views.UpdateField(c.Request.Context(), h.sessionID(c), field, input.Value)
	switch {
	case errors.Is(err, appointment.ErrViewNotFound):
		utils.JSONError(c, http.StatusNotFound, "landing view not found or expired", "")
		return
	case err != nil:
		getLogger(c).Error("failed to update draft", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update draft", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Health reports liveness and the last view-store probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}

func (h *LandingHandler) sessionID(c *gin.Context) string {
	id, err := c.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return id
}

func (h *LandingHandler) setSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, id, int(h.cookieTTL.Seconds()), "/", "", h.secure, true)
}

// renderHTML buffers the page so a render failure can still become a 500.
func (h *LandingHandler) renderHTML(c *gin.Context, status int, view *views.View) bool {
	var buf bytes.Buffer
	if err := view.Render(&buf); err != nil {
		getLogger(c).Error("failed to render landing view", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return false
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
	return true
}
