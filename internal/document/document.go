// Package document implements pure structural operations over a resume
// document. Every mutation returns a new Document value and leaves the input
// untouched; sub-structures the operation does not reach stay shared by
// reference, so unrelated sections are never reallocated.
package document

import (
	"strings"

	"github.com/google/uuid"

	"github.com/profolio/profolio-cli/internal/types"
)

// New returns an empty document with all collections initialized, so the wire
// encoding carries [] rather than null for every list.
func New() types.Document {
	return types.Document{
		Experiences:    []types.Experience{},
		Education:      []types.Education{},
		Skills:         []string{},
		Projects:       []types.Project{},
		Certifications: []types.Certification{},
	}
}

// NewResume returns an unpersisted resume carrying an empty document. The
// server assigns the id on first save.
func NewResume(title string) types.Resume {
	if title == "" {
		title = "Untitled Resume"
	}
	return types.Resume{
		Title:    title,
		Template: types.TemplateProfessional,
		Data:     New(),
	}
}

// newItemID generates the stable client-side id carried by every list item.
func newItemID() string {
	return uuid.NewString()
}

// SetPersonalField sets one personal_info field by its wire name.
func SetPersonalField(d types.Document, field, value string) (types.Document, error) {
	pi := d.PersonalInfo
	switch field {
	case "full_name":
		pi.FullName = value
	case "email":
		pi.Email = value
	case "phone":
		pi.Phone = value
	case "location":
		pi.Location = value
	case "linkedin":
		pi.LinkedIn = value
	case "portfolio":
		pi.Portfolio = value
	case "summary":
		pi.Summary = value
	default:
		return d, &UnknownFieldError{Section: "personal_info", Field: field}
	}
	d.PersonalInfo = pi
	return d, nil
}

// SetTitle returns the resume with its title replaced.
func SetTitle(r types.Resume, title string) types.Resume {
	r.Title = title
	return r
}

// SetTemplate returns the resume with its template replaced, rejecting names
// the server does not render.
func SetTemplate(r types.Resume, template string) (types.Resume, error) {
	if !types.ValidTemplate(template) {
		return r, &UnknownFieldError{Section: "template", Field: template}
	}
	r.Template = template
	return r, nil
}

// AddSkill inserts a skill preserving first-insertion order. Inserting a blank
// or already-present value is a no-op and returns the document unchanged.
func AddSkill(d types.Document, skill string) types.Document {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return d
	}
	for _, existing := range d.Skills {
		if existing == skill {
			return d
		}
	}
	skills := make([]string, 0, len(d.Skills)+1)
	skills = append(skills, d.Skills...)
	skills = append(skills, skill)
	d.Skills = skills
	return d
}

// RemoveSkill removes a skill by value. Values are unique by construction, so
// the value identifies the entry. Removing an absent value is a no-op.
func RemoveSkill(d types.Document, skill string) types.Document {
	for i, existing := range d.Skills {
		if existing == skill {
			skills := make([]string, 0, len(d.Skills)-1)
			skills = append(skills, d.Skills[:i]...)
			skills = append(skills, d.Skills[i+1:]...)
			d.Skills = skills
			return d
		}
	}
	return d
}

// SplitAchievementsText converts newline-joined editor text into the stored
// achievement list. Empty entries are preserved, including trailing ones: the
// user may still be typing, and blank filtering belongs to render time only.
func SplitAchievementsText(text string) []string {
	return strings.Split(text, "\n")
}

// VisibleAchievements returns the achievements with blank entries removed,
// for display. Storage keeps the blanks.
func VisibleAchievements(achievements []string) []string {
	visible := make([]string, 0, len(achievements))
	for _, a := range achievements {
		if strings.TrimSpace(a) != "" {
			visible = append(visible, a)
		}
	}
	return visible
}
