package views

import (
	"drmike/models"
	"drmike/registry"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Services renders one card per offering, labelled from ids in order.
func Services(services []models.ServiceOffering, ids registry.Table) g.Node {
	cards := make([]g.Node, 0, len(services))
	for i, svc := range services {
		cards = append(cards, serviceCard(svc, idAt(ids, i)))
	}
	return Section(
		ID("services"),
		Class("container mx-auto px-4 py-20"),
		Div(
			Class("text-center mb-16"),
			H2(Class("text-4xl font-bold text-gray-800 mb-4"), g.Text("Medical Services")),
			P(
				Class("text-gray-600 max-w-2xl mx-auto"),
				g.Text("Comprehensive healthcare services tailored to meet your individual needs with the highest standards of medical care"),
			),
		),
		Div(Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"), g.Group(cards)),
	)
}

func serviceCard(svc models.ServiceOffering, id string) g.Node {
	return Div(
		componentID(id),
		Class("service-card bg-white rounded-xl p-6 border border-gray-100 shadow-lg hover:shadow-xl transition-all hover:border-blue-200"),
		Div(Class("mb-4"), Icon(svc.Icon)),
		H3(Class("text-xl font-semibold text-gray-800 mb-2"), g.Text(svc.Title)),
		P(Class("text-gray-600"), g.Text(svc.Description)),
	)
}
