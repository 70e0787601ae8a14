package document

import (
	"strings"

	"github.com/profolio/profolio-cli/internal/types"
)

// Experience, education, and project edits are keyed by the item's stable
// client-generated id, never by position; concurrent reordering cannot
// redirect an edit to the wrong logical item.

// AppendExperience adds an empty experience entry and returns it alongside the
// new document. The entry starts with a single blank achievement, matching the
// empty editor line presented to the user.
func AppendExperience(d types.Document) (types.Document, types.Experience) {
	exp := types.Experience{
		ID:           newItemID(),
		Achievements: []string{""},
	}
	experiences := make([]types.Experience, 0, len(d.Experiences)+1)
	experiences = append(experiences, d.Experiences...)
	experiences = append(experiences, exp)
	d.Experiences = experiences
	return d, exp
}

// UpdateExperienceField sets one scalar field of the experience with the given
// id by its wire name.
func UpdateExperienceField(d types.Document, id, field, value string) (types.Document, error) {
	return updateExperience(d, id, func(exp *types.Experience) error {
		switch field {
		case "company":
			exp.Company = value
		case "position":
			exp.Position = value
		case "start_date":
			exp.StartDate = value
		case "end_date":
			exp.EndDate = value
		case "description":
			exp.Description = value
		default:
			return &UnknownFieldError{Section: "experience", Field: field}
		}
		return nil
	})
}

// SetExperienceCurrent marks an experience as the current position.
func SetExperienceCurrent(d types.Document, id string, current bool) (types.Document, error) {
	return updateExperience(d, id, func(exp *types.Experience) error {
		exp.Current = current
		return nil
	})
}

// SetAchievements replaces the full achievement list of an experience. The
// slice is copied so later caller mutations cannot reach into the document.
func SetAchievements(d types.Document, id string, achievements []string) (types.Document, error) {
	return updateExperience(d, id, func(exp *types.Experience) error {
		exp.Achievements = append([]string{}, achievements...)
		return nil
	})
}

// SetAchievementsText replaces an experience's achievements from
// newline-joined editor text, preserving empty entries.
func SetAchievementsText(d types.Document, id, text string) (types.Document, error) {
	return SetAchievements(d, id, SplitAchievementsText(text))
}

// RemoveExperience deletes the experience with the given id.
func RemoveExperience(d types.Document, id string) (types.Document, error) {
	for i, exp := range d.Experiences {
		if exp.ID == id {
			experiences := make([]types.Experience, 0, len(d.Experiences)-1)
			experiences = append(experiences, d.Experiences[:i]...)
			experiences = append(experiences, d.Experiences[i+1:]...)
			d.Experiences = experiences
			return d, nil
		}
	}
	return d, &NotFoundError{Section: "experience", ID: id}
}

func updateExperience(d types.Document, id string, apply func(*types.Experience) error) (types.Document, error) {
	for i, exp := range d.Experiences {
		if exp.ID == id {
			if err := apply(&exp); err != nil {
				return d, err
			}
			experiences := make([]types.Experience, len(d.Experiences))
			copy(experiences, d.Experiences)
			experiences[i] = exp
			d.Experiences = experiences
			return d, nil
		}
	}
	return d, &NotFoundError{Section: "experience", ID: id}
}

// AppendEducation adds an empty education entry.
func AppendEducation(d types.Document) (types.Document, types.Education) {
	edu := types.Education{ID: newItemID(), Achievements: []string{}}
	education := make([]types.Education, 0, len(d.Education)+1)
	education = append(education, d.Education...)
	education = append(education, edu)
	d.Education = education
	return d, edu
}

// UpdateEducationField sets one field of the education entry with the given id
// by its wire name.
func UpdateEducationField(d types.Document, id, field, value string) (types.Document, error) {
	for i, edu := range d.Education {
		if edu.ID == id {
			switch field {
			case "institution":
				edu.Institution = value
			case "degree":
				edu.Degree = value
			case "field":
				edu.Field = value
			case "start_date":
				edu.StartDate = value
			case "end_date":
				edu.EndDate = value
			case "gpa":
				edu.GPA = value
			case "achievements":
				edu.Achievements = SplitAchievementsText(value)
			default:
				return d, &UnknownFieldError{Section: "education", Field: field}
			}
			education := make([]types.Education, len(d.Education))
			copy(education, d.Education)
			education[i] = edu
			d.Education = education
			return d, nil
		}
	}
	return d, &NotFoundError{Section: "education", ID: id}
}

// RemoveEducation deletes the education entry with the given id.
func RemoveEducation(d types.Document, id string) (types.Document, error) {
	for i, edu := range d.Education {
		if edu.ID == id {
			education := make([]types.Education, 0, len(d.Education)-1)
			education = append(education, d.Education[:i]...)
			education = append(education, d.Education[i+1:]...)
			d.Education = education
			return d, nil
		}
	}
	return d, &NotFoundError{Section: "education", ID: id}
}

// AppendCertification adds an empty certification entry.
func AppendCertification(d types.Document) (types.Document, types.Certification) {
	cert := types.Certification{ID: newItemID()}
	certifications := make([]types.Certification, 0, len(d.Certifications)+1)
	certifications = append(certifications, d.Certifications...)
	certifications = append(certifications, cert)
	d.Certifications = certifications
	return d, cert
}

// UpdateCertificationField sets one field of the certification with the given
// id by its wire name.
func UpdateCertificationField(d types.Document, id, field, value string) (types.Document, error) {
	for i, cert := range d.Certifications {
		if cert.ID == id {
			switch field {
			case "name":
				cert.Name = value
			case "issuer":
				cert.Issuer = value
			case "date":
				cert.Date = value
			case "expiry":
				cert.Expiry = value
			case "credential_id":
				cert.CredentialID = value
			default:
				return d, &UnknownFieldError{Section: "certification", Field: field}
			}
			certifications := make([]types.Certification, len(d.Certifications))
			copy(certifications, d.Certifications)
			certifications[i] = cert
			d.Certifications = certifications
			return d, nil
		}
	}
	return d, &NotFoundError{Section: "certification", ID: id}
}

// RemoveCertification deletes the certification with the given id.
func RemoveCertification(d types.Document, id string) (types.Document, error) {
	for i, cert := range d.Certifications {
		if cert.ID == id {
			certifications := make([]types.Certification, 0, len(d.Certifications)-1)
			certifications = append(certifications, d.Certifications[:i]...)
			certifications = append(certifications, d.Certifications[i+1:]...)
			d.Certifications = certifications
			return d, nil
		}
	}
	return d, &NotFoundError{Section: "certification", ID: id}
}

// AppendProject adds an empty project entry.
func AppendProject(d types.Document) (types.Document, types.Project) {
	proj := types.Project{
		ID:           newItemID(),
		Technologies: []string{},
		Highlights:   []string{},
	}
	projects := make([]types.Project, 0, len(d.Projects)+1)
	projects = append(projects, d.Projects...)
	projects = append(projects, proj)
	d.Projects = projects
	return d, proj
}

// UpdateProjectField sets one scalar field of the project with the given id by
// its wire name. Technologies accept a comma-separated list.
func UpdateProjectField(d types.Document, id, field, value string) (types.Document, error) {
	for i, proj := range d.Projects {
		if proj.ID == id {
			switch field {
			case "name":
				proj.Name = value
			case "description":
				proj.Description = value
			case "url":
				proj.URL = value
			case "technologies":
				proj.Technologies = splitCommaList(value)
			default:
				return d, &UnknownFieldError{Section: "project", Field: field}
			}
			projects := make([]types.Project, len(d.Projects))
			copy(projects, d.Projects)
			projects[i] = proj
			d.Projects = projects
			return d, nil
		}
	}
	return d, &NotFoundError{Section: "project", ID: id}
}

// RemoveProject deletes the project with the given id.
func RemoveProject(d types.Document, id string) (types.Document, error) {
	for i, proj := range d.Projects {
		if proj.ID == id {
			projects := make([]types.Project, 0, len(d.Projects)-1)
			projects = append(projects, d.Projects[:i]...)
			projects = append(projects, d.Projects[i+1:]...)
			d.Projects = projects
			return d, nil
		}
	}
	return d, &NotFoundError{Section: "project", ID: id}
}

func splitCommaList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
