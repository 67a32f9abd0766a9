package render

// Section identifies one of the optional resume sections. The values double
// as the data-section keys exposed on the rendered markup for external
// tooling (pagination, selective editing).
type Section string

const (
	SectionProfile        Section = "profile"
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionProjects       Section = "projects"
	SectionAchievements   Section = "achievements"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
)

// Layout selects the page skeleton a style renders into.
type Layout int

const (
	// LayoutSingle is a single column under a full-width header.
	LayoutSingle Layout = iota
	// LayoutSidebarLeft puts a colored sidebar on the left and the main
	// column on the right.
	LayoutSidebarLeft
	// LayoutSidebarRight mirrors LayoutSidebarLeft.
	LayoutSidebarRight
	// LayoutBanner is a single column under a full-bleed colored header.
	LayoutBanner
)

// SkillDisplay selects how the effective skills list is arranged.
type SkillDisplay int

const (
	// SkillsInline joins skills on one line with a separator glyph.
	SkillsInline SkillDisplay = iota
	// SkillsChips renders each skill as a rounded chip.
	SkillsChips
	// SkillsList renders skills as a bulleted list (sidebar styles).
	SkillsList
	// SkillsColumns renders skills in a two-column grid.
	SkillsColumns
)

// LevelMarker selects the visual proficiency indicator for languages.
type LevelMarker int

const (
	// LevelText shows only the localized proficiency word.
	LevelText LevelMarker = iota
	// LevelDots shows filled/empty dots plus the word.
	LevelDots
	// LevelBars shows a proportional bar.
	LevelBars
)

// Palette is the color treatment of one style. Sidebar colors are only
// consulted by sidebar and banner layouts.
type Palette struct {
	Ink        string // primary text
	Muted      string // secondary text (dates, issuers)
	Accent     string // headings, markers, links
	Rule       string // separator lines
	PageBg     string
	SidebarBg  string
	SidebarInk string
}

// Style is the complete declarative description of one template variant.
// All 29 variants share the same rendering algorithm; only these knobs
// differ between them.
type Style struct {
	Key         string // stable tag identifier, e.g. "gqr-resume-classic"
	Name        string // display name shown in the gallery
	Description string

	Layout  Layout
	Palette Palette

	BodyFont    string
	HeadingFont string
	BaseSizePx  float64 // body font size, defaults to 13

	HeadingUppercase bool
	HeadingRule      bool // underline below section titles
	AccentHeader     bool // name/profession tinted with the accent color

	DateFormat     DateFormat
	RangeSeparator string // "–" or "-", defaults to "–"
	UseCurrent     bool   // "Current" wording instead of "Present"

	Skills        SkillDisplay
	SkillSep      string // separator glyph for SkillsInline, defaults to "•"
	Levels        LevelMarker
	LevelScale    int  // dot/bar total, defaults to 5
	ContactGlyphs bool // prefix contact rows with text glyphs

	// Order lists the sections of the main column top to bottom. Sidebar
	// lists the sections rendered inside the sidebar for two-column
	// layouts; sections must not appear in both.
	Order   []Section
	Sidebar []Section

	// ExtraCSS is appended verbatim after the generated stylesheet, with
	// every selector still expected to carry the scope placeholder.
	ExtraCSS string
}

// classicOrder is the section order most single-column variants use.
var classicOrder = []Section{
	SectionProfile,
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionAchievements,
	SectionEducation,
	SectionCertifications,
	SectionLanguages,
}

func (s *Style) order() []Section {
	if len(s.Order) > 0 {
		return s.Order
	}
	return classicOrder
}

func (s *Style) rangeOptions(labels Labels) RangeOptions {
	present := labels.Present
	if s.UseCurrent {
		present = labels.Current
	}
	return RangeOptions{
		Format:       s.DateFormat,
		Separator:    s.RangeSeparator,
		PresentLabel: present,
	}
}

func (s *Style) baseSize() float64 {
	if s.BaseSizePx > 0 {
		return s.BaseSizePx
	}
	return 13
}

func (s *Style) levelScale() int {
	if s.LevelScale > 0 {
		return s.LevelScale
	}
	return 5
}

func (s *Style) skillSep() string {
	if s.SkillSep != "" {
		return s.SkillSep
	}
	return "•"
}
