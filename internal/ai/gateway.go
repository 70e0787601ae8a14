// Package ai sends document fragments to the remote enhancement service and
// merges the structured responses back into the document model. Every merge is
// all-or-nothing: a failure of any kind leaves the document untouched.
package ai

import (
	"context"
	"strings"

	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/document"
	"github.com/profolio/profolio-cli/internal/types"
)

// Entitlements reports whether the session may use premium features. The check
// is a UX gate; the server re-checks on every call.
type Entitlements interface {
	IsPremium() bool
}

// Gateway is the client for the /ai endpoints.
type Gateway struct {
	client  *api.Client
	session Entitlements
}

// NewGateway creates an AI gateway bound to the given session.
func NewGateway(client *api.Client, session Entitlements) *Gateway {
	return &Gateway{client: client, session: session}
}

// EnhanceExperience rewrites an experience into STAR-method bullets. It fails
// locally, before any network I/O, when the experience has neither a
// description nor a non-blank achievement.
func (g *Gateway) EnhanceExperience(ctx context.Context, exp types.Experience) ([]string, error) {
	if !g.session.IsPremium() {
		return nil, &EntitlementError{Feature: "STAR enhancement"}
	}

	input := exp.Description
	if input == "" {
		visible := document.VisibleAchievements(exp.Achievements)
		if len(visible) == 0 {
			return nil, &EmptyInputError{}
		}
		input = strings.Join(visible, ". ")
	}

	req := types.STARRequest{ExperienceDescription: input, Role: exp.Position}
	var resp types.STARResponse
	if err := g.client.Post(ctx, "/ai/star-enhance", &req, &resp); err != nil {
		return nil, err
	}

	bullets := parseBullets(resp.EnhancedText)
	if len(bullets) == 0 {
		return nil, &api.RequestError{URL: "/ai/star-enhance", Message: "enhancement returned no usable bullets"}
	}
	return bullets, nil
}

// ApplyEnhancement replaces the target experience's achievement list with the
// enhanced bullets, returning the new document.
func ApplyEnhancement(d types.Document, experienceID string, bullets []string) (types.Document, error) {
	return document.SetAchievements(d, experienceID, bullets)
}

// GenerateCoverLetter produces a cover letter body for a persisted resume and
// a target job. All three identifiers are required before any network call.
func (g *Gateway) GenerateCoverLetter(ctx context.Context, resumeID, jobDescription, companyName, tone string) (string, error) {
	if !g.session.IsPremium() {
		return "", &EntitlementError{Feature: "cover letter generation"}
	}
	switch {
	case strings.TrimSpace(resumeID) == "":
		return "", &MissingFieldError{Field: "resume_id"}
	case strings.TrimSpace(jobDescription) == "":
		return "", &MissingFieldError{Field: "job_description"}
	case strings.TrimSpace(companyName) == "":
		return "", &MissingFieldError{Field: "company_name"}
	}

	req := types.CoverLetterGenRequest{
		ResumeID:       resumeID,
		JobDescription: jobDescription,
		CompanyName:    companyName,
		Tone:           tone,
	}
	var resp types.CoverLetterGenResponse
	if err := g.client.Post(ctx, "/ai/generate-cover-letter", &req, &resp); err != nil {
		return "", err
	}
	return resp.Content, nil
}

// ATSOptimize scores a persisted resume against a job description.
func (g *Gateway) ATSOptimize(ctx context.Context, resumeID, jobDescription string) (*types.ATSResult, error) {
	if err := g.checkTailorInput(resumeID, jobDescription); err != nil {
		return nil, err
	}
	req := types.ATSRequest{ResumeID: resumeID, JobDescription: jobDescription}
	var result types.ATSResult
	if err := g.client.Post(ctx, "/ai/ats-optimize", &req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TailorResume asks for a summary rewrite and skill suggestions targeting a
// job description. The resume must already be persisted.
func (g *Gateway) TailorResume(ctx context.Context, resumeID, jobDescription string) (*types.TailorResult, error) {
	if err := g.checkTailorInput(resumeID, jobDescription); err != nil {
		return nil, err
	}
	req := types.ATSRequest{ResumeID: resumeID, JobDescription: jobDescription}
	var result types.TailorResult
	if err := g.client.Post(ctx, "/ai/tailor-resume", &req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyTailoring merges a tailor result into the document: a non-empty
// summary overwrites personal_info.summary, and each suggested skill is
// appended through the skill set's dedup-on-insert rule.
func ApplyTailoring(d types.Document, result *types.TailorResult) types.Document {
	if result == nil {
		return d
	}
	if result.TailoredSummary != "" {
		d, _ = document.SetPersonalField(d, "summary", result.TailoredSummary)
	}
	for _, skill := range result.SkillsToAdd {
		d = document.AddSkill(d, skill)
	}
	return d
}

func (g *Gateway) checkTailorInput(resumeID, jobDescription string) error {
	if !g.session.IsPremium() {
		return &EntitlementError{Feature: "resume tailoring"}
	}
	if strings.TrimSpace(resumeID) == "" {
		return &NotPersistedError{}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return &MissingFieldError{Field: "job_description"}
	}
	return nil
}

// parseBullets splits the enhancement response into individual achievements,
// stripping leading bullet markers and dropping blank lines.
func parseBullets(text string) []string {
	lines := strings.Split(text, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "•-* \t")
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}
