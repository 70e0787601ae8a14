// Package types provides type definitions for the wire format shared with the
// Profolio API and the request payloads the CLI sends to it.
package types

import "time"

// Template names accepted by the API.
const (
	TemplateProfessional = "professional"
	TemplateModern       = "modern"
	TemplateMinimalist   = "minimalist"
)

// ValidTemplate reports whether name is one of the supported resume templates.
func ValidTemplate(name string) bool {
	switch name {
	case TemplateProfessional, TemplateModern, TemplateMinimalist:
		return true
	}
	return false
}

// Resume is a single resume owned by the authenticated user. ID is empty until
// the first persisted save assigns one server-side.
type Resume struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	Data      Document  `json:"data"`
	ATSScore  float64   `json:"ats_score,omitempty"`
	IsPublic  bool      `json:"is_public,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Document is the structured content of a resume. Slices are ordered; Skills
// is additionally deduplicated at insertion time by the document package.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// PersonalInfo holds the contact header of a resume. All fields are optional.
type PersonalInfo struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`
}

// Experience is one work history entry. ID is generated client-side at
// creation and stays stable for the lifetime of the entry.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education is one education entry.
type Education struct {
	ID           string   `json:"id"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	GPA          string   `json:"gpa"`
	Achievements []string `json:"achievements"`
}

// Certification is one certification entry.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	Expiry       string `json:"expiry"`
	CredentialID string `json:"credential_id"`
}

// Project is one project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
	Highlights   []string `json:"highlights"`
}
