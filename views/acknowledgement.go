package views

import (
	"drmike/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AcknowledgementDialog is shown once, on the response to a submission.
func AcknowledgementDialog(ack models.Acknowledgement) g.Node {
	return g.El("dialog",
		ID("appointment-acknowledgement"),
		g.Attr("open"),
		g.Attr("role", "alertdialog"),
		Class("fixed inset-0 z-50 m-auto max-w-md rounded-2xl bg-white p-8 shadow-2xl text-center"),
		P(Class("text-lg text-gray-800 mb-6"), g.Text(ack.Message)),
		Form(
			Method("dialog"),
			Button(Class("bg-blue-600 hover:bg-blue-700 text-white px-6 py-2 rounded-lg"), g.Text("OK")),
		),
	)
}
