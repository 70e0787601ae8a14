package document

import "github.com/profolio/profolio-cli/internal/types"

// Normalize returns a document in canonical form: no nil collections, a
// stable id on every list item, and skills deduplicated preserving
// first-insertion order. Server responses predating the current format pass
// through here before further edits or saves. The input is not modified.
func Normalize(d types.Document) types.Document {
	experiences := make([]types.Experience, len(d.Experiences))
	for i, exp := range d.Experiences {
		if exp.ID == "" {
			exp.ID = newItemID()
		}
		if exp.Achievements == nil {
			exp.Achievements = []string{}
		}
		experiences[i] = exp
	}
	d.Experiences = experiences

	education := make([]types.Education, len(d.Education))
	for i, edu := range d.Education {
		if edu.ID == "" {
			edu.ID = newItemID()
		}
		if edu.Achievements == nil {
			edu.Achievements = []string{}
		}
		education[i] = edu
	}
	d.Education = education

	projects := make([]types.Project, len(d.Projects))
	for i, proj := range d.Projects {
		if proj.ID == "" {
			proj.ID = newItemID()
		}
		if proj.Technologies == nil {
			proj.Technologies = []string{}
		}
		if proj.Highlights == nil {
			proj.Highlights = []string{}
		}
		projects[i] = proj
	}
	d.Projects = projects

	skills := make([]string, 0, len(d.Skills))
	seen := make(map[string]struct{}, len(d.Skills))
	for _, skill := range d.Skills {
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}
	d.Skills = skills

	certifications := make([]types.Certification, len(d.Certifications))
	for i, cert := range d.Certifications {
		if cert.ID == "" {
			cert.ID = newItemID()
		}
		certifications[i] = cert
	}
	d.Certifications = certifications

	return d
}
