package views

import (
	"drmike/models"
	"drmike/registry"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// About renders the doctor's bio, the specialty tiles and the contact card.
func About(specialties []models.Specialty, badgeIDs, iconIDs registry.Table, contact models.ContactInfo) g.Node {
	tiles := make([]g.Node, 0, len(specialties))
	for i, s := range specialties {
		tiles = append(tiles, specialtyTile(s, idAt(iconIDs, i), idAt(badgeIDs, i)))
	}

	return Section(
		ID("about"),
		Class("container mx-auto px-4 py-20 bg-gradient-to-r from-blue-50 to-green-50 rounded-3xl"),
		Div(
			Class("grid md:grid-cols-2 gap-12 items-center"),
			Div(
				H2(Class("text-4xl font-bold text-gray-800 mb-6"), g.Text("About "+BrandName)),
				P(
					Class("text-gray-600 mb-6 text-lg leading-relaxed"),
					g.Text("With over 15 years of experience in medicine, Dr. Mike has dedicated his career to providing "+
						"exceptional healthcare services. Board-certified and committed to staying at the forefront of "+
						"medical advances, he combines clinical expertise with genuine compassion for patient care."),
				),
				Div(Class("grid grid-cols-2 md:grid-cols-3 gap-4 mb-8"), g.Group(tiles)),
			),
			ContactCard(contact),
		),
	)
}

func specialtyTile(s models.Specialty, iconID, badgeID string) g.Node {
	return Div(
		Class("text-center"),
		Div(
			componentID(iconID),
			Class("w-12 h-12 mx-auto mb-2 rounded-lg bg-gradient-to-br "+s.Color+" flex items-center justify-center"),
			Span(Class("text-white font-bold text-sm"), g.Text(s.Initial())),
		),
		Span(
			componentID(badgeID),
			Class("specialty-badge inline-block rounded-full px-2 py-0.5 text-xs text-gray-600 font-medium bg-white/50"),
			g.Text(s.Name),
		),
	)
}

// ContactCard renders the practice address, phone and email.
func ContactCard(c models.ContactInfo) g.Node {
	row := func(icon, text string) g.Node {
		return Div(
			Class("flex items-center space-x-3"),
			glyph(icon, "w-5 h-5 text-blue-600"),
			Span(Class("text-gray-700"), g.Text(text)),
		)
	}
	return Div(
		ID("contact"),
		Class("bg-white rounded-2xl p-8 shadow-xl"),
		H2(Class("text-2xl font-bold text-gray-800 mb-6"), g.Text("Contact Information")),
		Div(
			Class("space-y-4"),
			row("phone", c.Phone),
			row("mail", c.Email),
			row("map-pin", c.Address()),
			row("clock", c.Hours),
		),
	)
}
