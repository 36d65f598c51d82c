package views

import (
	"bytes"
	"strings"
	"testing"

	"drmike/models"
	"drmike/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func testContent(t *testing.T) PageContent {
	t.Helper()
	c, err := DefaultContent()
	require.NoError(t, err)
	return c
}

// assertInOrder checks that every needle appears exactly once, in order.
func assertInOrder(t *testing.T, html string, needles ...string) {
	t.Helper()
	last := -1
	for _, n := range needles {
		require.Equal(t, 1, strings.Count(html, n), "occurrences of %q", n)
		idx := strings.Index(html, n)
		assert.Greater(t, idx, last, "%q out of order", n)
		last = idx
	}
}

func TestHeaderAuthenticated(t *testing.T) {
	auth := models.AuthStatus{IsAuthenticated: true, User: &models.AuthUser{ID: "u1", Name: "Jane Doe"}}
	html := render(t, SiteHeader(auth))

	assert.Contains(t, html, "Welcome, Jane!")
	assert.Contains(t, html, `href="/dashboard"`)
	assert.NotContains(t, html, `href="/login"`)
	assert.NotContains(t, html, `href="/register"`)
}

func TestHeaderAnonymous(t *testing.T) {
	html := render(t, SiteHeader(models.AuthStatus{}))

	assert.Contains(t, html, `href="/login"`)
	assert.Contains(t, html, `href="/register"`)
	assert.NotContains(t, html, "Welcome")
	assert.NotContains(t, html, `href="/dashboard"`)
}

func TestHeaderAuthenticatedWithoutName(t *testing.T) {
	html := render(t, SiteHeader(models.AuthStatus{IsAuthenticated: true}))
	assert.Contains(t, html, "Welcome!")
	assert.Contains(t, html, `href="/dashboard"`)
}

func TestHeaderEscapesName(t *testing.T) {
	auth := models.AuthStatus{IsAuthenticated: true, User: &models.AuthUser{Name: "<b>Jane</b> Doe"}}
	html := render(t, SiteHeader(auth))
	assert.NotContains(t, html, "<b>Jane</b>")
	assert.Contains(t, html, "&lt;b&gt;Jane&lt;/b&gt;")
}

func TestStatsRenderFourCardsInOrder(t *testing.T) {
	c := testContent(t)
	html := render(t, Stats(c.Stats, c.IDs.StatCards))

	assert.Equal(t, 4, strings.Count(html, `class="stat-card `))
	assertInOrder(t, html,
		`data-component-id="stat-card-0"`, "Years Experience",
		`data-component-id="stat-card-1"`, "Patients Treated",
		`data-component-id="stat-card-2"`, "Success Rate",
		`data-component-id="stat-card-3"`, "Awards Won",
	)
}

func TestServicesRenderFourCardsInOrder(t *testing.T) {
	c := testContent(t)
	html := render(t, Services(c.Services, c.IDs.ServiceCards))

	assert.Equal(t, 4, strings.Count(html, `class="service-card `))
	assertInOrder(t, html,
		`data-component-id="service-card-0"`, "Cardiology",
		`data-component-id="service-card-1"`, "General Medicine",
		`data-component-id="service-card-2"`, "Preventive Care",
		`data-component-id="service-card-3"`, "Specialized Treatment",
	)
	assert.Contains(t, html, `data-icon="lucide:heart"`)
}

func TestCardsBeyondTableGetNoID(t *testing.T) {
	short, err := registry.Sequence("stat-card", 2)
	require.NoError(t, err)
	c := testContent(t)

	html := render(t, Stats(c.Stats, short))
	assert.Equal(t, 4, strings.Count(html, `class="stat-card `))
	assert.Equal(t, 2, strings.Count(html, "data-component-id="))
	assert.NotContains(t, html, "noID")
}

func TestAboutRendersSpecialties(t *testing.T) {
	c := testContent(t)
	html := render(t, About(c.Specialties, c.IDs.SpecialtyBadges, c.IDs.SpecialtyIcons, c.Contact))

	assert.Equal(t, 6, strings.Count(html, `class="specialty-badge `))
	assert.Contains(t, html, `data-component-id="specialty-icon-5"`)
	assert.Contains(t, html, `data-component-id="specialty-badge-0"`)
	assert.Contains(t, html, `id="about"`)
	assert.Contains(t, html, "123 Medical Center Dr, Health City, HC 12345")
	assert.Contains(t, html, "Mon-Fri: 8AM-6PM, Sat: 9AM-2PM")
}

func TestHeroMountState(t *testing.T) {
	before := render(t, Hero(false))
	assert.Contains(t, before, "opacity-0 translate-y-8")
	assert.Contains(t, before, `data-mount="pending"`)

	after := render(t, Hero(true))
	assert.Contains(t, after, "opacity-100 translate-y-0")
	assert.Contains(t, after, `data-mount="done"`)
}

func TestAppointmentFormRendersDraft(t *testing.T) {
	c := testContent(t)
	draft := models.AppointmentRequestDraft{
		Name:          "Jane Doe",
		PreferredTime: "evening",
		Reason:        "follow-up",
		Message:       "Headaches",
	}
	html := render(t, AppointmentForm(draft, nil, c))

	assert.Contains(t, html, `action="/appointments"`)
	assert.Contains(t, html, `value="Jane Doe"`)
	assert.Contains(t, html, `<option value="evening" selected>`)
	assert.Contains(t, html, `<option value="follow-up" selected>`)
	assert.Contains(t, html, ">Headaches</textarea>")
	assert.Equal(t, 3, strings.Count(html, " required"))
	assert.NotContains(t, html, "form-missing-notice")
}

func TestAppointmentFormFlagsMissing(t *testing.T) {
	c := testContent(t)
	html := render(t, AppointmentForm(models.EmptyDraft(), []models.DraftField{models.FieldEmail}, c))

	assert.Contains(t, html, "form-missing-notice")
	assert.Equal(t, 1, strings.Count(html, `aria-invalid="true"`))
}

func TestViewRender(t *testing.T) {
	c := testContent(t)
	v, err := NewView(models.AuthStatus{}, models.ViewState{Draft: models.EmptyDraft()}, c)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assertInOrder(t, html, `id="main-header"`, `id="hero"`, `id="stats"`, `id="services"`, `id="about"`, `id="appointment-form"`, `id="main-footer"`)
	assert.NotContains(t, html, "appointment-acknowledgement")
}

func TestViewRenderAcknowledgementOnce(t *testing.T) {
	c := testContent(t)
	v, err := NewView(models.AuthStatus{}, models.ViewState{Mounted: true}, c)
	require.NoError(t, err)

	ack := models.Acknowledgement{Message: models.AcknowledgementMessage}
	html := render(t, v.WithAcknowledgement(&ack).Node())

	assert.Equal(t, 1, strings.Count(html, `id="appointment-acknowledgement"`))
	assert.Equal(t, 1, strings.Count(html, models.AcknowledgementMessage))
}

func TestNewViewRejectsMismatchedTables(t *testing.T) {
	c := testContent(t)
	c.Stats = c.Stats[:3]
	_, err := NewView(models.AuthStatus{}, models.ViewState{}, c)
	assert.ErrorIs(t, err, registry.ErrTableSize)
}
