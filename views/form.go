package views

import (
	"drmike/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const inputClass = "w-full px-4 py-3 border border-gray-300 rounded-lg focus:ring-2 focus:ring-blue-500 focus:border-transparent"

// appointmentAction is where the appointment form posts.
const appointmentAction = "/appointments"

// DraftEndpoint receives single-field updates as the visitor types.
const DraftEndpoint = "/api/appointments/draft"

const draftSyncScript = `(function(){var f=document.getElementById("appointment-request");if(!f)return;` +
	`f.addEventListener("change",function(e){var t=e.target;if(!t.name)return;` +
	`fetch("` + DraftEndpoint + `",{method:"PATCH",credentials:"same-origin",headers:{"Content-Type":"application/json"},` +
	`body:JSON.stringify({field:t.name,value:t.value})});});})();`

// AppointmentForm renders the request form from the current draft. Fields in
// missing are flagged; the browser enforces presence through "required".
func AppointmentForm(draft models.AppointmentRequestDraft, missing []models.DraftField, content PageContent) g.Node {
	flagged := make(map[models.DraftField]bool, len(missing))
	for _, f := range missing {
		flagged[f] = true
	}

	return Section(
		ID("appointment-form"),
		Class("container mx-auto px-4 py-20"),
		Div(
			Class("max-w-2xl mx-auto"),
			Div(
				Class("text-center mb-12"),
				H2(Class("text-4xl font-bold text-gray-800 mb-4"), g.Text("Request an Appointment")),
				P(Class("text-gray-600"), g.Text("Fill out the form below and we'll contact you to schedule your appointment")),
			),
			Div(
				ID("appointment-form-card"),
				Class("bg-white rounded-2xl shadow-xl border border-gray-100 p-8"),
				g.If(len(missing) > 0, missingNotice()),
				Form(
					ID("appointment-request"),
					Method("post"),
					Action(appointmentAction),
					Class("space-y-6"),
					Div(
						Class("grid md:grid-cols-2 gap-4"),
						textField(models.FieldName, "Full Name *", "text", draft.Name, "Enter your full name", flagged),
						textField(models.FieldEmail, "Email *", "email", draft.Email, "Enter your email", flagged),
					),
					Div(
						Class("grid md:grid-cols-2 gap-4"),
						textField(models.FieldPhone, "Phone Number *", "tel", draft.Phone, "(555) 123-4567", flagged),
						textField(models.FieldPreferredDate, "Preferred Date", "date", draft.PreferredDate, "", flagged),
					),
					Div(
						Class("grid md:grid-cols-2 gap-4"),
						selectField(models.FieldPreferredTime, "Preferred Time", "Select time", content.TimeOptions, draft.PreferredTime),
						selectField(models.FieldReason, "Reason for Visit", "Select reason", content.ReasonOptions, draft.Reason),
					),
					Div(
						fieldLabel(models.FieldMessage, "Additional Message"),
						Textarea(
							ID(fieldID(models.FieldMessage)),
							Name(string(models.FieldMessage)),
							g.Attr("rows", "4"),
							Class(inputClass),
							Placeholder("Please describe your symptoms or any additional information..."),
							g.Text(draft.Message),
						),
					),
					Button(
						ID("submit-appointment-request"),
						Type("submit"),
						Class("w-full inline-flex items-center justify-center bg-gradient-to-r from-blue-600 to-green-600 hover:from-blue-700 hover:to-green-700 text-white py-3 rounded-lg font-semibold transition-all transform hover:scale-105"),
						glyph("calendar", "w-5 h-5 mr-2"),
						g.Text("Request Appointment"),
					),
				),
				Script(g.Raw(draftSyncScript)),
			),
		),
	)
}

func fieldID(f models.DraftField) string {
	return "appointment-" + string(f)
}

func fieldLabel(f models.DraftField, text string) g.Node {
	return Label(
		For(fieldID(f)),
		Class("block text-sm font-medium text-gray-700 mb-2"),
		g.Text(text),
	)
}

func textField(f models.DraftField, label, inputType, value, placeholder string, flagged map[models.DraftField]bool) g.Node {
	class := inputClass
	if flagged[f] {
		class += " border-red-500"
	}
	return Div(
		fieldLabel(f, label),
		Input(
			ID(fieldID(f)),
			Type(inputType),
			Name(string(f)),
			Value(value),
			Class(class),
			g.If(placeholder != "", Placeholder(placeholder)),
			g.If(f.IsRequired(), Required()),
			g.If(flagged[f], g.Attr("aria-invalid", "true")),
		),
	)
}

func selectField(f models.DraftField, label, prompt string, options []models.SelectOption, selected string) g.Node {
	opts := []g.Node{Option(Value(""), g.Text(prompt))}
	for _, o := range options {
		opts = append(opts, Option(Value(o.Value), g.If(o.Value == selected, Selected()), g.Text(o.Label)))
	}
	return Div(
		fieldLabel(f, label),
		Select(ID(fieldID(f)), Name(string(f)), Class(inputClass), g.Group(opts)),
	)
}

func missingNotice() g.Node {
	return P(
		ID("form-missing-notice"),
		Class("mb-4 text-sm text-red-600"),
		g.Attr("role", "alert"),
		g.Text("Please fill out all required fields."),
	)
}
