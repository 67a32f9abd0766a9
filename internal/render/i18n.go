package render

// Labels holds every human-readable heading a template can emit. Styles
// never hardcode headings; they go through the active language's table.
type Labels struct {
	Profile        string
	Summary        string
	Experience     string
	Education      string
	Projects       string
	Certifications string
	Languages      string
	Achievements   string
	Skills         string
	Contact        string
	Present        string
	Current        string

	levels map[string]string
}

// Level returns the localized proficiency word, falling back to the raw
// code so an unknown level is never rendered blank.
func (l Labels) Level(code string) string {
	if word, ok := l.levels[code]; ok {
		return word
	}
	return code
}

var labelTables = map[string]Labels{
	"en": {
		Profile:        "Profile",
		Summary:        "Summary",
		Experience:     "Professional Experience",
		Education:      "Education",
		Projects:       "Projects",
		Certifications: "Certifications",
		Languages:      "Languages",
		Achievements:   "Achievements",
		Skills:         "Skills",
		Contact:        "Contact",
		Present:        "Present",
		Current:        "Current",
		levels: map[string]string{
			"basic":        "Basic",
			"intermediate": "Intermediate",
			"advanced":     "Advanced",
			"native":       "Native",
		},
	},
	"es": {
		Profile:        "Perfil",
		Summary:        "Resumen",
		Experience:     "Experiencia Profesional",
		Education:      "Educación",
		Projects:       "Proyectos",
		Certifications: "Certificaciones",
		Languages:      "Idiomas",
		Achievements:   "Logros",
		Skills:         "Habilidades",
		Contact:        "Contacto",
		Present:        "Presente",
		Current:        "Actual",
		levels: map[string]string{
			"basic":        "Básico",
			"intermediate": "Intermedio",
			"advanced":     "Avanzado",
			"native":       "Nativo",
		},
	},
}

// LabelsFor resolves the label table for a 2-letter language code. An
// unsupported code silently falls back to English.
func LabelsFor(lang string) Labels {
	if t, ok := labelTables[lang]; ok {
		return t
	}
	return labelTables["en"]
}

var monthAbbrevs = map[string][12]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"es": {"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"},
}

func monthsFor(lang string) [12]string {
	if m, ok := monthAbbrevs[lang]; ok {
		return m
	}
	return monthAbbrevs["en"]
}
