package types

import "time"

// CoverLetter is a standalone cover letter, optionally linked to one of the
// user's resumes. ID is empty until first persisted save.
type CoverLetter struct {
	ID             string    `json:"id,omitempty"`
	Title          string    `json:"title"`
	ResumeID       string    `json:"resume_id,omitempty"`
	CompanyName    string    `json:"company_name,omitempty"`
	JobDescription string    `json:"job_description,omitempty"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// Preferences is the body/response shape for GET/PUT /user/preferences.
type Preferences struct {
	Theme string `json:"theme"`
}

// PublicResume is the response for GET /public/resume/{slug}. When the slug is
// password protected and no valid password accompanied the request, the server
// answers 200 with only PasswordRequired set.
type PublicResume struct {
	PasswordRequired bool     `json:"password_required,omitempty"`
	Title            string   `json:"title,omitempty"`
	Template         string   `json:"template,omitempty"`
	Data             Document `json:"data,omitempty"`
	FullName         string   `json:"full_name,omitempty"`
}
