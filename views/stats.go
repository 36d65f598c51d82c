package views

import (
	"drmike/models"
	"drmike/registry"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Stats renders one card per metric, labelled from ids in order.
func Stats(stats []models.StatMetric, ids registry.Table) g.Node {
	cards := make([]g.Node, 0, len(stats))
	for i, stat := range stats {
		cards = append(cards, statCard(stat, idAt(ids, i)))
	}
	return Section(
		ID("stats"),
		Class("container mx-auto px-4 py-12"),
		Div(Class("grid grid-cols-2 md:grid-cols-4 gap-6"), g.Group(cards)),
	)
}

func statCard(stat models.StatMetric, id string) g.Node {
	return Div(
		componentID(id),
		Class("stat-card bg-white/80 backdrop-blur-sm rounded-xl p-6 text-center border border-blue-100 shadow-lg hover:shadow-xl transition-shadow"),
		Div(Class("text-3xl font-bold text-blue-600 mb-2"), g.Text(stat.Value)),
		Div(Class("text-gray-600 font-medium"), g.Text(stat.Label)),
	)
}

// idAt looks up index i; out-of-range indexes yield no id.
func idAt(t registry.Table, i int) string {
	id, err := t.At(i)
	if err != nil {
		return ""
	}
	return string(id)
}
