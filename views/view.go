package views

import (
	"io"

	"drmike/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// View is the landing page for one visitor. Auth status is injected; the view
// never reads it from ambient state.
type View struct {
	auth    models.AuthStatus
	draft   models.AppointmentRequestDraft
	mounted bool
	content PageContent

	missing []models.DraftField
	ack     *models.Acknowledgement
}

// NewView builds a view from a visitor's auth status and view state.
func NewView(auth models.AuthStatus, state models.ViewState, content PageContent) (*View, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return &View{
		auth:    auth,
		draft:   state.Draft,
		mounted: state.Mounted,
		content: content,
	}, nil
}

// WithMissing flags required fields the visitor left empty.
func (v *View) WithMissing(fields []models.DraftField) *View {
	v.missing = fields
	return v
}

// WithAcknowledgement shows ack on the next render.
func (v *View) WithAcknowledgement(ack *models.Acknowledgement) *View {
	v.ack = ack
	return v
}

// Node composes every section of the page.
func (v *View) Node() g.Node {
	return Layout(
		PageConfig{},
		Div(
			ID("main-wrapper"),
			Class("min-h-screen bg-gradient-to-br from-blue-50 via-white to-green-50"),
			SiteHeader(v.auth),
			Main(
				Hero(v.mounted),
				Stats(v.content.Stats, v.content.IDs.StatCards),
				Services(v.content.Services, v.content.IDs.ServiceCards),
				About(v.content.Specialties, v.content.IDs.SpecialtyBadges, v.content.IDs.SpecialtyIcons, v.content.Contact),
				AppointmentForm(v.draft, v.missing, v.content),
			),
			SiteFooter(v.content.Contact),
		),
		g.Iff(v.ack != nil, func() g.Node { return AcknowledgementDialog(*v.ack) }),
	)
}

func (v *View) Render(w io.Writer) error {
	return v.Node().Render(w)
}
