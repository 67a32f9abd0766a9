package model_test

import (
	"encoding/json"
	"testing"

	"resume-templates/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestFromMap(t *testing.T) {
	t.Run("nil map yields an empty resume", func(t *testing.T) {
		d := model.FromMap(nil)
		require.NotNil(t, d)
		assert.Empty(t, d.FirstName)
		assert.Empty(t, d.Experience)
	})

	t.Run("scalar fields", func(t *testing.T) {
		d := model.FromMap(decode(t, `{
			"firstName": "John", "lastName": "Doe",
			"profession": "Engineer", "email": "j@x.com",
			"language": "es"
		}`))
		assert.Equal(t, "John", d.FirstName)
		assert.Equal(t, "Doe", d.LastName)
		assert.Equal(t, "es", d.Language)
	})

	t.Run("malformed scalars coerce to empty", func(t *testing.T) {
		d := model.FromMap(decode(t, `{
			"firstName": 42, "summary": null, "email": ["a"]
		}`))
		assert.Empty(t, d.FirstName)
		assert.Empty(t, d.Summary)
		assert.Empty(t, d.Email)
	})

	t.Run("skill lists drop non-string members", func(t *testing.T) {
		d := model.FromMap(decode(t, `{"skillsRaw": ["Go", 7, null, "SQL"]}`))
		assert.Equal(t, []string{"Go", "SQL"}, d.SkillsRaw)
	})

	t.Run("experience entries", func(t *testing.T) {
		d := model.FromMap(decode(t, `{"experience": [{
			"id": "e1", "title": "Engineer", "company": "Acme",
			"startDate": "2020-01-01", "isCurrent": true,
			"achievements": ["Shipped it"]
		}]}`))
		require.Len(t, d.Experience, 1)
		exp := d.Experience[0]
		assert.Equal(t, "e1", exp.ID)
		assert.True(t, exp.IsCurrent)
		assert.Equal(t, []string{"Shipped it"}, exp.Achievements)
	})

	t.Run("missing ids become synthetic index ids", func(t *testing.T) {
		d := model.FromMap(decode(t, `{"experience": [
			{"title": "A"}, {"title": "B"}, {"id": "real", "title": "C"}
		]}`))
		require.Len(t, d.Experience, 3)
		assert.Equal(t, "exp-0", d.Experience[0].ID)
		assert.Equal(t, "exp-1", d.Experience[1].ID)
		assert.Equal(t, "real", d.Experience[2].ID)
	})

	t.Run("numeric ids and years become strings", func(t *testing.T) {
		d := model.FromMap(decode(t, `{
			"achievements": [{"id": 12, "title": "Award", "year": 2022}],
			"education": [{"degree": "BSc", "gpa": 3.8}]
		}`))
		require.Len(t, d.Achievements, 1)
		assert.Equal(t, "12", d.Achievements[0].ID)
		assert.Equal(t, "2022", d.Achievements[0].Year)
		require.Len(t, d.Education, 1)
		assert.Equal(t, "3.8", d.Education[0].GPA)
	})

	t.Run("non-object list members are skipped", func(t *testing.T) {
		d := model.FromMap(decode(t, `{"projects": ["oops", {"name": "P"}]}`))
		require.Len(t, d.Projects, 1)
		assert.Equal(t, "P", d.Projects[0].Name)
	})
}

func TestEducationInProgress(t *testing.T) {
	f, tr := false, true

	assert.False(t, model.EducationEntry{}.InProgress(), "absent flag means completed")
	assert.False(t, model.EducationEntry{IsCompleted: &tr}.InProgress())
	assert.True(t, model.EducationEntry{IsCompleted: &f}.InProgress())

	t.Run("from map", func(t *testing.T) {
		d := model.FromMap(decode(t, `{"education": [
			{"degree": "A"},
			{"degree": "B", "isCompleted": false},
			{"degree": "C", "isCompleted": "nope"}
		]}`))
		require.Len(t, d.Education, 3)
		assert.False(t, d.Education[0].InProgress())
		assert.True(t, d.Education[1].InProgress())
		assert.False(t, d.Education[2].InProgress(), "non-bool flag is ignored")
	})
}
