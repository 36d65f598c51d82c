package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero renders the introduction. Before the view is mounted the content
// starts hidden and the layout script runs the entrance transition.
func Hero(mounted bool) g.Node {
	state, mount := "opacity-100 translate-y-0", "done"
	if !mounted {
		state, mount = "opacity-0 translate-y-8", "pending"
	}

	return Section(
		ID("hero"),
		Class("container mx-auto px-4 py-20 text-center"),
		Div(
			ID("hero-content-wrapper"),
			Class("transition-all duration-1000 "+state),
			g.Attr("data-mount", mount),
			H1(
				Class("text-5xl md:text-7xl font-bold text-gray-800 mb-6"),
				g.Text("Your Health, "),
				Span(
					Class("bg-gradient-to-r from-blue-600 to-green-600 bg-clip-text text-transparent"),
					g.Text("Our Priority"),
				),
			),
			P(
				Class("text-xl text-gray-600 mb-8 max-w-3xl mx-auto"),
				g.Text("Providing comprehensive healthcare services with over 15 years of experience. "+
					"From routine checkups to specialized treatments, your wellness is our mission."),
			),
			Div(
				Class("flex flex-col sm:flex-row gap-4 justify-center"),
				A(
					ID("hero-book-appointment"),
					Href("#appointment-form"),
					Class("inline-flex items-center justify-center bg-gradient-to-r from-blue-600 to-green-600 hover:from-blue-700 hover:to-green-700 text-white px-8 py-3 rounded-lg font-semibold transition-all transform hover:scale-105"),
					glyph("calendar", "w-5 h-5 mr-2"),
					g.Text("Book Appointment"),
				),
				A(
					ID("hero-learn-more"),
					Href("#services"),
					Class("inline-flex items-center justify-center border-2 border-blue-600 text-blue-600 hover:bg-blue-600 hover:text-white px-8 py-3 rounded-lg font-semibold transition-all"),
					g.Text("Learn More"),
				),
			),
		),
	)
}
