package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/document"
	"github.com/profolio/profolio-cli/internal/types"
)

var resumeEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Apply edits to a resume and save it",
	Long:  "Fetch a resume, apply the requested edits locally, and save the result back. Flags may be combined; edits apply in a fixed order (title, template, personal fields, skills, sections).",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeEdit,
}

var (
	editTitle          string
	editTemplate       string
	editPersonal       []string
	editAddSkills      []string
	editRemoveSkills   []string
	editAddExperience  bool
	editExperienceID   string
	editExperienceSet  []string
	editAchievements   string
	editRemoveSection  string
	editRemoveItemID   string
	editAddEducation   bool
	editEducationID    string
	editEducationSet   []string
	editAddProject     bool
	editProjectID      string
	editProjectSet     []string
	editAddCert        bool
	editCertID         string
	editCertSet        []string
)

func init() {
	resumeEditCmd.Flags().StringVar(&editTitle, "title", "", "Set the resume title")
	resumeEditCmd.Flags().StringVar(&editTemplate, "template", "", "Set the template (professional, modern, minimalist)")
	resumeEditCmd.Flags().StringArrayVar(&editPersonal, "personal", nil, "Set a personal field as field=value (e.g. full_name=Jane Doe)")
	resumeEditCmd.Flags().StringArrayVar(&editAddSkills, "add-skill", nil, "Add a skill (duplicates are ignored)")
	resumeEditCmd.Flags().StringArrayVar(&editRemoveSkills, "remove-skill", nil, "Remove a skill")
	resumeEditCmd.Flags().BoolVar(&editAddExperience, "add-experience", false, "Append an empty experience entry")
	resumeEditCmd.Flags().StringVar(&editExperienceID, "experience", "", "Target experience entry by id")
	resumeEditCmd.Flags().StringArrayVar(&editExperienceSet, "set", nil, "Set a field on the targeted entry as field=value")
	resumeEditCmd.Flags().StringVar(&editAchievements, "achievements", "", "Replace the targeted experience's achievements (newline separated)")
	resumeEditCmd.Flags().BoolVar(&editAddEducation, "add-education", false, "Append an empty education entry")
	resumeEditCmd.Flags().StringVar(&editEducationID, "education", "", "Target education entry by id")
	resumeEditCmd.Flags().StringArrayVar(&editEducationSet, "set-education", nil, "Set a field on the targeted education entry as field=value")
	resumeEditCmd.Flags().BoolVar(&editAddProject, "add-project", false, "Append an empty project entry")
	resumeEditCmd.Flags().StringVar(&editProjectID, "project", "", "Target project entry by id")
	resumeEditCmd.Flags().StringArrayVar(&editProjectSet, "set-project", nil, "Set a field on the targeted project entry as field=value")
	resumeEditCmd.Flags().BoolVar(&editAddCert, "add-certification", false, "Append an empty certification entry")
	resumeEditCmd.Flags().StringVar(&editCertID, "certification", "", "Target certification entry by id")
	resumeEditCmd.Flags().StringArrayVar(&editCertSet, "set-certification", nil, "Set a field on the targeted certification entry as field=value")
	resumeEditCmd.Flags().StringVar(&editRemoveSection, "remove-from", "", "Section to remove an entry from (experiences, education, projects, certifications)")
	resumeEditCmd.Flags().StringVar(&editRemoveItemID, "remove-id", "", "Id of the entry to remove")

	resumeCmd.AddCommand(resumeEditCmd)
}

func runResumeEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	resume, err := a.resumes.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch resume: %w", err)
	}

	edited, err := applyEdits(*resume)
	if err != nil {
		return err
	}

	saved, err := a.resumes.Save(cmd.Context(), edited)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Saved resume %s\n", saved.ID)
	if a.cfg.Verbose {
		a.printer.PrintResume(saved)
	}
	return nil
}

func applyEdits(resume types.Resume) (types.Resume, error) {
	if editTitle != "" {
		resume = document.SetTitle(resume, editTitle)
	}
	if editTemplate != "" {
		var err error
		resume, err = document.SetTemplate(resume, editTemplate)
		if err != nil {
			return resume, err
		}
	}

	d := resume.Data
	var err error

	for _, pair := range editPersonal {
		field, value, ok := splitPair(pair)
		if !ok {
			return resume, fmt.Errorf("invalid --personal value %q; expected field=value", pair)
		}
		if d, err = document.SetPersonalField(d, field, value); err != nil {
			return resume, err
		}
	}

	for _, skill := range editAddSkills {
		d = document.AddSkill(d, skill)
	}
	for _, skill := range editRemoveSkills {
		d = document.RemoveSkill(d, skill)
	}

	if editAddExperience {
		var exp types.Experience
		d, exp = document.AppendExperience(d)
		fmt.Fprintf(os.Stdout, "Added experience %s\n", exp.ID)
		if editExperienceID == "" {
			editExperienceID = exp.ID
		}
	}
	if editExperienceID != "" {
		for _, pair := range editExperienceSet {
			field, value, ok := splitPair(pair)
			if !ok {
				return resume, fmt.Errorf("invalid --set value %q; expected field=value", pair)
			}
			if d, err = document.UpdateExperienceField(d, editExperienceID, field, value); err != nil {
				return resume, err
			}
		}
		if editAchievements != "" {
			if d, err = document.SetAchievementsText(d, editExperienceID, editAchievements); err != nil {
				return resume, err
			}
		}
	}

	if editAddEducation {
		var edu types.Education
		d, edu = document.AppendEducation(d)
		fmt.Fprintf(os.Stdout, "Added education %s\n", edu.ID)
		if editEducationID == "" {
			editEducationID = edu.ID
		}
	}
	if editEducationID != "" {
		for _, pair := range editEducationSet {
			field, value, ok := splitPair(pair)
			if !ok {
				return resume, fmt.Errorf("invalid --set-education value %q; expected field=value", pair)
			}
			if d, err = document.UpdateEducationField(d, editEducationID, field, value); err != nil {
				return resume, err
			}
		}
	}

	if editAddProject {
		var proj types.Project
		d, proj = document.AppendProject(d)
		fmt.Fprintf(os.Stdout, "Added project %s\n", proj.ID)
		if editProjectID == "" {
			editProjectID = proj.ID
		}
	}
	if editProjectID != "" {
		for _, pair := range editProjectSet {
			field, value, ok := splitPair(pair)
			if !ok {
				return resume, fmt.Errorf("invalid --set-project value %q; expected field=value", pair)
			}
			if d, err = document.UpdateProjectField(d, editProjectID, field, value); err != nil {
				return resume, err
			}
		}
	}

	if editAddCert {
		var cert types.Certification
		d, cert = document.AppendCertification(d)
		fmt.Fprintf(os.Stdout, "Added certification %s\n", cert.ID)
		if editCertID == "" {
			editCertID = cert.ID
		}
	}
	if editCertID != "" {
		for _, pair := range editCertSet {
			field, value, ok := splitPair(pair)
			if !ok {
				return resume, fmt.Errorf("invalid --set-certification value %q; expected field=value", pair)
			}
			if d, err = document.UpdateCertificationField(d, editCertID, field, value); err != nil {
				return resume, err
			}
		}
	}

	if editRemoveSection != "" || editRemoveItemID != "" {
		if editRemoveSection == "" || editRemoveItemID == "" {
			return resume, fmt.Errorf("--remove-from and --remove-id must be used together")
		}
		switch editRemoveSection {
		case "experiences":
			d, err = document.RemoveExperience(d, editRemoveItemID)
		case "education":
			d, err = document.RemoveEducation(d, editRemoveItemID)
		case "projects":
			d, err = document.RemoveProject(d, editRemoveItemID)
		case "certifications":
			d, err = document.RemoveCertification(d, editRemoveItemID)
		default:
			return resume, fmt.Errorf("unknown section %q; expected experiences, education, projects, or certifications", editRemoveSection)
		}
		if err != nil {
			return resume, err
		}
	}

	resume.Data = d
	return resume, nil
}

func splitPair(pair string) (field, value string, ok bool) {
	return strings.Cut(pair, "=")
}
