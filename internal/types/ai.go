package types

import "github.com/go-playground/validator/v10"

// STARRequest is the payload for POST /ai/star-enhance.
type STARRequest struct {
	ExperienceDescription string `json:"experience_description" validate:"required"`
	Role                  string `json:"role"`
}

// STARResponse carries the rewritten achievement text, one bullet per line.
type STARResponse struct {
	EnhancedText string `json:"enhanced_text"`
}

// CoverLetterGenRequest is the payload for POST /ai/generate-cover-letter.
type CoverLetterGenRequest struct {
	ResumeID       string `json:"resume_id" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	CompanyName    string `json:"company_name" validate:"required"`
	Tone           string `json:"tone"`
}

// CoverLetterGenResponse carries the generated letter body.
type CoverLetterGenResponse struct {
	Content string `json:"content"`
}

// ATSRequest is the payload for POST /ai/ats-optimize and /ai/tailor-resume.
type ATSRequest struct {
	ResumeID       string `json:"resume_id" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// ATSResult is the analysis returned by /ai/ats-optimize.
type ATSResult struct {
	Score           int      `json:"score"`
	MissingKeywords []string `json:"missing_keywords"`
	Suggestions     []string `json:"suggestions"`
}

// TailorResult is the suggestion set returned by /ai/tailor-resume. Both
// fields are optional; an empty field means no change for that part.
type TailorResult struct {
	TailoredSummary string   `json:"tailored_summary,omitempty"`
	SkillsToAdd     []string `json:"skills_to_add,omitempty"`
}

// Validate validates the STARRequest using the validator.
func (r *STARRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the CoverLetterGenRequest using the validator.
func (r *CoverLetterGenRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ATSRequest using the validator.
func (r *ATSRequest) Validate() error {
	return validator.New().Struct(r)
}
