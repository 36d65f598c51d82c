package views

import (
	"drmike/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const linkClass = "block text-gray-600 hover:text-blue-600 transition-colors"

// SiteFooter renders the brand blurb, quick links and contact details.
func SiteFooter(contact models.ContactInfo) g.Node {
	return Footer(
		ID("main-footer"),
		Class("container mx-auto px-4 py-12 border-t border-gray-200"),
		Div(
			Class("grid md:grid-cols-3 gap-8"),
			Div(
				Div(Class("mb-4"), brand("small")),
				P(Class("text-gray-600 mb-4"), g.Text("Providing exceptional healthcare services with compassion and expertise for over 15 years.")),
			),
			Div(
				H3(Class("font-semibold text-gray-800 mb-4"), g.Text("Quick Links")),
				Div(
					Class("space-y-2"),
					A(Href("#services"), Class(linkClass), g.Text("Services")),
					A(Href("#about"), Class(linkClass), g.Text("About")),
					A(Href("#appointment-form"), Class(linkClass), g.Text("Book Appointment")),
					A(Href("/login"), Class(linkClass), g.Text("Patient Portal")),
				),
			),
			Div(
				H3(Class("font-semibold text-gray-800 mb-4"), g.Text("Contact Info")),
				Div(
					Class("space-y-2 text-gray-600"),
					P(g.Text(contact.Phone)),
					P(g.Text(contact.Email)),
					P(g.Text(contact.AddressLine1), Br(), g.Text(contact.AddressLine2)),
				),
			),
		),
		Div(
			Class("border-t border-gray-200 mt-8 pt-8 text-center"),
			P(Class("text-gray-600"), g.Text("© 2024 Dr. Mike Medical Practice. All rights reserved. | Licensed Healthcare Provider")),
		),
	)
}
