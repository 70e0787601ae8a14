package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profolio/profolio-cli/internal/types"
)

func TestNew_EncodesEmptyLists(t *testing.T) {
	encoded, err := json.Marshal(New())
	require.NoError(t, err)

	text := string(encoded)
	assert.Contains(t, text, `"experiences":[]`)
	assert.Contains(t, text, `"skills":[]`)
	assert.NotContains(t, text, "null")
}

func TestNewResume_Defaults(t *testing.T) {
	r := NewResume("")
	assert.Equal(t, "Untitled Resume", r.Title)
	assert.Equal(t, types.TemplateProfessional, r.Template)
	assert.Empty(t, r.ID)

	r = NewResume("Backend Engineer")
	assert.Equal(t, "Backend Engineer", r.Title)
}

func TestSetPersonalField(t *testing.T) {
	d, err := SetPersonalField(New(), "full_name", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", d.PersonalInfo.FullName)

	d, err = SetPersonalField(d, "summary", "Ten years of Go.")
	require.NoError(t, err)
	assert.Equal(t, "Ten years of Go.", d.PersonalInfo.Summary)
	assert.Equal(t, "Jane Doe", d.PersonalInfo.FullName)
}

func TestSetPersonalField_UnknownField(t *testing.T) {
	_, err := SetPersonalField(New(), "twitter", "@jane")
	require.Error(t, err)

	var fieldErr *UnknownFieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "twitter", fieldErr.Field)
}

func TestSetPersonalField_DoesNotMutateInput(t *testing.T) {
	original := New()
	original.PersonalInfo.FullName = "Before"

	updated, err := SetPersonalField(original, "full_name", "After")
	require.NoError(t, err)
	assert.Equal(t, "Before", original.PersonalInfo.FullName)
	assert.Equal(t, "After", updated.PersonalInfo.FullName)
}

func TestSetTemplate(t *testing.T) {
	r, err := SetTemplate(NewResume(""), types.TemplateModern)
	require.NoError(t, err)
	assert.Equal(t, types.TemplateModern, r.Template)

	_, err = SetTemplate(r, "baroque")
	require.Error(t, err)
	assert.Equal(t, types.TemplateModern, r.Template)
}

func TestAddSkill_PreservesInsertionOrder(t *testing.T) {
	d := New()
	d = AddSkill(d, "Go")
	d = AddSkill(d, "Postgres")
	d = AddSkill(d, "Kubernetes")

	assert.Equal(t, []string{"Go", "Postgres", "Kubernetes"}, d.Skills)
}

func TestAddSkill_DuplicateIsNoOp(t *testing.T) {
	d := AddSkill(AddSkill(New(), "Go"), "Postgres")
	d = AddSkill(d, "Go")

	assert.Equal(t, []string{"Go", "Postgres"}, d.Skills)
}

func TestAddSkill_BlankIsNoOp(t *testing.T) {
	d := AddSkill(New(), "   ")
	assert.Empty(t, d.Skills)
}

func TestAddSkill_TrimsWhitespace(t *testing.T) {
	d := AddSkill(New(), "  Go  ")
	assert.Equal(t, []string{"Go"}, d.Skills)

	// The trimmed form is the identity, so the padded form is a duplicate.
	d = AddSkill(d, "Go")
	assert.Equal(t, []string{"Go"}, d.Skills)
}

func TestAddSkill_DoesNotMutateInput(t *testing.T) {
	original := AddSkill(New(), "Go")
	updated := AddSkill(original, "Rust")

	assert.Equal(t, []string{"Go"}, original.Skills)
	assert.Equal(t, []string{"Go", "Rust"}, updated.Skills)
}

func TestRemoveSkill(t *testing.T) {
	d := AddSkill(AddSkill(AddSkill(New(), "Go"), "Postgres"), "Kubernetes")

	d = RemoveSkill(d, "Postgres")
	assert.Equal(t, []string{"Go", "Kubernetes"}, d.Skills)

	// Absent value is a no-op.
	d = RemoveSkill(d, "Postgres")
	assert.Equal(t, []string{"Go", "Kubernetes"}, d.Skills)
}

func TestSplitAchievementsText_PreservesEmptyLines(t *testing.T) {
	lines := SplitAchievementsText("Led migration\n\nCut costs by 40%\n")
	assert.Equal(t, []string{"Led migration", "", "Cut costs by 40%", ""}, lines)
}

func TestVisibleAchievements_FiltersBlanks(t *testing.T) {
	visible := VisibleAchievements([]string{"Led migration", "", "  ", "Cut costs"})
	assert.Equal(t, []string{"Led migration", "Cut costs"}, visible)
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	d := New()
	d, err := SetPersonalField(d, "full_name", "Jane Doe")
	require.NoError(t, err)
	d = AddSkill(d, "Go")
	d, exp := AppendExperience(d)
	d, err = UpdateExperienceField(d, exp.ID, "company", "Acme")
	require.NoError(t, err)
	d, err = SetAchievementsText(d, exp.ID, "Shipped v2\n")
	require.NoError(t, err)
	d, edu := AppendEducation(d)
	d, err = UpdateEducationField(d, edu.ID, "achievements", "Dean's list")
	require.NoError(t, err)
	d, cert := AppendCertification(d)
	d, err = UpdateCertificationField(d, cert.ID, "issuer", "Amazon")
	require.NoError(t, err)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded types.Document
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, d, decoded)
}

func TestDocument_DecodesServerCertifications(t *testing.T) {
	payload := `{"personal_info":{},"experiences":[],` +
		`"education":[{"id":"e1","institution":"MIT","achievements":["Dean's list"]}],` +
		`"skills":[],"projects":[],` +
		`"certifications":[{"id":"c1","name":"AWS SAA","issuer":"Amazon","date":"2024-01","expiry":"","credential_id":"ABC-123"}]}`

	var decoded types.Document
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))

	require.Len(t, decoded.Certifications, 1)
	assert.Equal(t, "AWS SAA", decoded.Certifications[0].Name)
	assert.Equal(t, "ABC-123", decoded.Certifications[0].CredentialID)
	require.Len(t, decoded.Education, 1)
	assert.Equal(t, []string{"Dean's list"}, decoded.Education[0].Achievements)
}
