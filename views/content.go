package views

import (
	"fmt"

	"drmike/models"
	"drmike/registry"
)

const BrandName = "Dr. Mike"

// PageContent is the fixed literal data the sections render, with the component
// id tables that label the repeated cards.
type PageContent struct {
	Services      []models.ServiceOffering
	Stats         []models.StatMetric
	Specialties   []models.Specialty
	Contact       models.ContactInfo
	TimeOptions   []models.SelectOption
	ReasonOptions []models.SelectOption
	IDs           registry.Landing
}

// DefaultContent returns the practice's page content.
func DefaultContent() (PageContent, error) {
	ids, err := registry.NewLanding()
	if err != nil {
		return PageContent{}, err
	}
	c := PageContent{
		Services: []models.ServiceOffering{
			{
				Icon:        models.Glyph{Name: "heart", Class: "w-8 h-8 text-red-500"},
				Title:       "Cardiology",
				Description: "Comprehensive heart health assessments and treatments for optimal cardiovascular wellness",
			},
			{
				Icon:        models.Glyph{Name: "stethoscope", Class: "w-8 h-8 text-blue-500"},
				Title:       "General Medicine",
				Description: "Primary care services including routine checkups, preventive care, and health screenings",
			},
			{
				Icon:        models.Glyph{Name: "shield", Class: "w-8 h-8 text-green-500"},
				Title:       "Preventive Care",
				Description: "Proactive healthcare approach focusing on disease prevention and health maintenance",
			},
			{
				Icon:        models.Glyph{Name: "award", Class: "w-8 h-8 text-purple-500"},
				Title:       "Specialized Treatment",
				Description: "Advanced medical treatments tailored to individual patient needs and conditions",
			},
		},
		Stats: []models.StatMetric{
			{Label: "Years Experience", Value: "15+"},
			{Label: "Patients Treated", Value: "10K+"},
			{Label: "Success Rate", Value: "98%"},
			{Label: "Awards Won", Value: "25+"},
		},
		Specialties: []models.Specialty{
			{Name: "Cardiology", Color: "from-red-400 to-red-500"},
			{Name: "Internal Medicine", Color: "from-blue-400 to-blue-500"},
			{Name: "Preventive Care", Color: "from-green-400 to-green-500"},
			{Name: "Emergency Medicine", Color: "from-purple-400 to-purple-500"},
			{Name: "Geriatrics", Color: "from-orange-400 to-orange-500"},
			{Name: "Family Medicine", Color: "from-teal-400 to-teal-500"},
		},
		Contact: models.ContactInfo{
			Phone:        "(555) 123-4567",
			Email:        "contact@drmike.com",
			AddressLine1: "123 Medical Center Dr",
			AddressLine2: "Health City, HC 12345",
			Hours:        "Mon-Fri: 8AM-6PM, Sat: 9AM-2PM",
		},
		TimeOptions: []models.SelectOption{
			{Value: "morning", Label: "Morning (8AM-12PM)"},
			{Value: "afternoon", Label: "Afternoon (12PM-5PM)"},
			{Value: "evening", Label: "Evening (5PM-7PM)"},
		},
		ReasonOptions: []models.SelectOption{
			{Value: "checkup", Label: "Routine Checkup"},
			{Value: "consultation", Label: "Consultation"},
			{Value: "follow-up", Label: "Follow-up"},
			{Value: "emergency", Label: "Urgent Care"},
			{Value: "other", Label: "Other"},
		},
		IDs: ids,
	}
	if err := c.Validate(); err != nil {
		return PageContent{}, err
	}
	return c, nil
}

// Validate checks every id table against the literal it labels.
func (c PageContent) Validate() error {
	checks := []struct {
		table registry.Table
		n     int
	}{
		{c.IDs.StatCards, len(c.Stats)},
		{c.IDs.ServiceCards, len(c.Services)},
		{c.IDs.SpecialtyBadges, len(c.Specialties)},
		{c.IDs.SpecialtyIcons, len(c.Specialties)},
	}
	for _, chk := range checks {
		if chk.table.Len() != chk.n {
			return fmt.Errorf("%w: table %q has %d ids for %d items", registry.ErrTableSize, chk.table.Name(), chk.table.Len(), chk.n)
		}
	}
	return nil
}
