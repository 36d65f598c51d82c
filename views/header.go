package views

import (
	"drmike/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func brand(size string) g.Node {
	badge, icon, text := "w-10 h-10", "w-6 h-6 text-white", "text-2xl font-bold text-gray-800"
	if size == "small" {
		badge, icon, text = "w-8 h-8", "w-5 h-5 text-white", "text-xl font-bold text-gray-800"
	}
	return Div(
		Class("flex items-center space-x-2"),
		Div(
			Class(badge+" bg-gradient-to-r from-blue-600 to-green-600 rounded-full flex items-center justify-center"),
			glyph("stethoscope", icon),
		),
		Span(Class(text), g.Text(BrandName)),
	)
}

// SiteHeader renders the top navigation. Its only branch is on auth status.
func SiteHeader(auth models.AuthStatus) g.Node {
	return Header(
		ID("main-header"),
		Class("container mx-auto px-4 py-6"),
		Nav(
			Class("flex items-center justify-between"),
			brand(""),
			Div(
				ID("nav-actions"),
				Class("flex items-center space-x-4"),
				A(Href("#services"), Class("text-gray-600 hover:text-blue-600 transition-colors"), g.Text("Services")),
				A(Href("#about"), Class("text-gray-600 hover:text-blue-600 transition-colors"), g.Text("About")),
				g.If(auth.IsAuthenticated, userSection(auth)),
				g.If(!auth.IsAuthenticated, authButtons()),
			),
		),
	)
}

func welcomeText(auth models.AuthStatus) string {
	if name := auth.FirstName(); name != "" {
		return "Welcome, " + name + "!"
	}
	return "Welcome!"
}

func userSection(auth models.AuthStatus) g.Node {
	return Div(
		ID("user-section"),
		Class("flex items-center space-x-4"),
		Span(ID("welcome-message"), Class("text-gray-600"), g.Text(welcomeText(auth))),
		A(
			ID("nav-dashboard-button"),
			Href("/dashboard"),
			Class("inline-flex items-center bg-blue-600 hover:bg-blue-700 text-white px-4 py-2 rounded-lg transition-colors"),
			glyph("user", "w-4 h-4 mr-2"),
			g.Text("Dashboard"),
		),
	)
}

func authButtons() g.Node {
	return Div(
		ID("auth-buttons"),
		Class("flex items-center space-x-2"),
		A(
			ID("nav-login-button"),
			Href("/login"),
			Class("text-gray-600 hover:text-blue-600 transition-colors"),
			g.Text("Login"),
		),
		A(
			ID("nav-register-button"),
			Href("/register"),
			Class("bg-blue-600 hover:bg-blue-700 text-white px-4 py-2 rounded-lg transition-colors"),
			g.Text("Book Appointment"),
		),
	)
}
