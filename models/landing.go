package models

import (
	"strings"
	"time"
)

// ServiceOffering is one card of the services section.
type ServiceOffering struct {
	Icon        Glyph
	Title       string
	Description string
}

// StatMetric is one card of the stats section.
type StatMetric struct {
	Label string
	Value string
}

// Specialty is one badge of the about section. Color is a tailwind gradient.
type Specialty struct {
	Name  string
	Color string
}

// Initial is the letter shown on the specialty tile.
func (s Specialty) Initial() string {
	for _, r := range s.Name {
		return string(r)
	}
	return ""
}

type ContactInfo struct {
	Phone        string
	Email        string
	AddressLine1 string
	AddressLine2 string
	Hours        string
}

// Address joins both address lines.
func (c ContactInfo) Address() string {
	return c.AddressLine1 + ", " + c.AddressLine2
}

// SelectOption is one <option> of a form select.
type SelectOption struct {
	Value string
	Label string
}

// Glyph is a decorative icon: a lucide icon name plus tailwind classes.
type Glyph struct {
	Name  string
	Class string
}

// AuthUser is the signed-in visitor, as far as this page needs to know.
type AuthUser struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// AuthStatus is supplied by the authentication provider and read-only to views.
type AuthStatus struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	User            *AuthUser `json:"user,omitempty"`
}

// FirstName returns the first word of the user's name, or "" when unknown.
func (a AuthStatus) FirstName() string {
	if a.User == nil {
		return ""
	}
	fields := strings.Fields(a.User.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ViewState is the per-visitor state of a mounted landing view.
type ViewState struct {
	SessionID string                  `json:"sessionId"`
	Draft     AppointmentRequestDraft `json:"draft"`
	Mounted   bool                    `json:"mounted"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}
