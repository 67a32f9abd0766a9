package render_test

import (
	"testing"

	"resume-templates/internal/render"

	"github.com/stretchr/testify/assert"
)

func TestLabelsFor(t *testing.T) {
	t.Run("english", func(t *testing.T) {
		l := render.LabelsFor("en")
		assert.Equal(t, "Professional Experience", l.Experience)
		assert.Equal(t, "Present", l.Present)
	})

	t.Run("spanish", func(t *testing.T) {
		l := render.LabelsFor("es")
		assert.Equal(t, "Experiencia Profesional", l.Experience)
		assert.Equal(t, "Idiomas", l.Languages)
		assert.Equal(t, "Actual", l.Current)
	})

	t.Run("unsupported code falls back to english", func(t *testing.T) {
		for _, code := range []string{"fr", "de", "", "EN"} {
			l := render.LabelsFor(code)
			assert.Equal(t, "Profile", l.Profile, "code %q", code)
		}
	})
}

func TestLabelsLevel(t *testing.T) {
	en := render.LabelsFor("en")
	es := render.LabelsFor("es")

	assert.Equal(t, "Advanced", en.Level("advanced"))
	assert.Equal(t, "Avanzado", es.Level("advanced"))
	assert.Equal(t, "Nativo", es.Level("native"))

	t.Run("unknown level falls back to the raw code", func(t *testing.T) {
		assert.Equal(t, "conversational", en.Level("conversational"))
	})
}
