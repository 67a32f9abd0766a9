package render

// Two-column variants: contact plus a subset of sections in a colored
// sidebar, the rest in the main column.

// sidebarMain is the main-column order shared by most two-column variants;
// the sidebar takes contact, skills and languages.
var sidebarMain = []Section{
	SectionProfile,
	SectionExperience,
	SectionProjects,
	SectionAchievements,
	SectionEducation,
	SectionCertifications,
}

var sidebarAside = []Section{SectionSkills, SectionLanguages}

func sidebarStyles() []*Style {
	return []*Style{
		{
			Key:         "gqr-resume-mercury",
			Name:        "Velocity",
			Description: "Modern two-column resume with a dark left sidebar and clean white main area, dot-rated languages, and icon contact rows.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#22222e", Muted: "#5d5d70", Accent: "#1a1a2e", Rule: "#d0d0da", PageBg: "#fff",
				SidebarBg: "#1a1a2e", SidebarInk: "#ececf2",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			ContactGlyphs:    true,
			Skills:           SkillsList,
			Levels:           LevelDots,
			Order:            sidebarMain,
			Sidebar:          sidebarAside,
		},
		{
			Key:         "gqr-resume-atlantic",
			Name:        "Atlantis",
			Description: "Two-column resume with a dark navy sidebar, coral accent markers, skill badges, and dot-rated languages.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#1f2a38", Muted: "#5c6b7c", Accent: "#ef7d66", Rule: "#d4dae2", PageBg: "#fff",
				SidebarBg: "#163050", SidebarInk: "#eef3f8",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			HeadingRule:      true,
			ContactGlyphs:    true,
			Skills:           SkillsChips,
			Levels:           LevelDots,
			Order:            sidebarMain,
			Sidebar:          sidebarAside,
		},
		{
			Key:         "gqr-resume-desert",
			Name:        "Sandstone",
			Description: "Two-column resume with a warm sand sidebar, serif section headings, and dot-rated languages.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#33261c", Muted: "#6f5e4e", Accent: "#a9743c", Rule: "#e3d5c4", PageBg: "#fff",
				SidebarBg: "#ead9bf", SidebarInk: "#3d2d1e",
			},
			BodyFont:    fontSans,
			HeadingFont: fontSerif,
			HeadingRule: true,
			Skills:      SkillsList,
			Levels:      LevelDots,
			Order:       sidebarMain,
			Sidebar:     sidebarAside,
		},
		{
			Key:         "gqr-resume-designer",
			Name:        "Canvas",
			Description: "Two-column resume with a deep plum sidebar, skill progress bars, dot-rated languages, and clean modern typography.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#2b2430", Muted: "#6a5e72", Accent: "#6d3a7e", Rule: "#ddd2e2", PageBg: "#fff",
				SidebarBg: "#432052", SidebarInk: "#f1eaf5",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			Skills:           SkillsList,
			Levels:           LevelBars,
			Order:            sidebarMain,
			Sidebar:          sidebarAside,
		},
		{
			Key:         "gqr-resume-saffron",
			Name:        "Aurora",
			Description: "Two-column resume with a warm gray sidebar and saffron accent markers on section headings.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#2c2a26", Muted: "#6d6a62", Accent: "#d99a2b", Rule: "#e2ded6", PageBg: "#fff",
				SidebarBg: "#efece6", SidebarInk: "#3a372f",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			HeadingRule:      true,
			Skills:           SkillsList,
			Levels:           LevelText,
			Order:            sidebarMain,
			Sidebar:          sidebarAside,
		},
		{
			Key:         "gqr-resume-seapearl",
			Name:        "Coral",
			Description: "Two-column resume with a warm cream sidebar, justified profile text, and uppercase section headings.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#2d2f2e", Muted: "#68706d", Accent: "#3d8a80", Rule: "#dde6e3", PageBg: "#fff",
				SidebarBg: "#f6f1e7", SidebarInk: "#37403d",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			ContactGlyphs:    true,
			Skills:           SkillsList,
			Levels:           LevelDots,
			Order:            sidebarMain,
			Sidebar:          sidebarAside,
		},
		{
			Key:         "gqr-resume-slate",
			Name:        "Zen",
			Description: "Dense two-column resume with a light gray header band, compact typography, and maximum information density.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#2a2d30", Muted: "#62676c", Accent: "#3f464c", Rule: "#d8dcdf", PageBg: "#fff",
				SidebarBg: "#eceef0", SidebarInk: "#33373b",
			},
			BodyFont:    fontSans,
			HeadingFont: fontSans,
			BaseSizePx:  12,
			HeadingRule: true,
			DateFormat:  DateYearOnly,
			Skills:      SkillsList,
			Levels:      LevelText,
			Order:       sidebarMain,
			Sidebar:     sidebarAside,
		},
		{
			Key:         "gqr-resume-steady",
			Name:        "Compass",
			Description: "Two-column resume with a teal right sidebar and a white left main area for experience.",
			Layout:      LayoutSidebarRight,
			Palette: Palette{
				Ink: "#21302f", Muted: "#5d6e6c", Accent: "#1d7a72", Rule: "#d3e0de", PageBg: "#fff",
				SidebarBg: "#135f59", SidebarInk: "#eaf4f2",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			Skills:           SkillsList,
			Levels:           LevelBars,
			Order:            sidebarMain,
			Sidebar:          sidebarAside,
		},
		{
			Key:         "gqr-resume-typewriter",
			Name:        "Hemingway",
			Description: "Two-column resume with a dark sidebar, monospace typewriter body, and bold serif section headings.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#262626", Muted: "#5e5e5e", Accent: "#262626", Rule: "#cfcfcf", PageBg: "#fdfbf6",
				SidebarBg: "#2b2b2b", SidebarInk: "#efece4",
			},
			BodyFont:    fontMono,
			HeadingFont: fontSerif,
			BaseSizePx:  12,
			HeadingRule: true,
			DateFormat:  DateYearOnly,
			SkillSep:    "·",
			Levels:      LevelText,
			Order:       sidebarMain,
			Sidebar:     sidebarAside,
		},
		{
			Key:         "gqr-resume-webworker",
			Name:        "Circuit",
			Description: "Two-column resume with a dark sidebar, uppercase section headings with short underlines, and skill badges.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#23282c", Muted: "#5f676d", Accent: "#2f89c5", Rule: "#d4dade", PageBg: "#fff",
				SidebarBg: "#24323c", SidebarInk: "#e9f0f4",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			HeadingRule:      true,
			ContactGlyphs:    true,
			Skills:           SkillsChips,
			Levels:           LevelBars,
			Order:            sidebarMain,
			Sidebar:          sidebarAside,
		},
		{
			Key:         "gqr-resume-two-col-blue",
			Name:        "Harbor",
			Description: "Two-column resume with a dark blue left sidebar and white main content, icon contact rows, and text-rated languages.",
			Layout:      LayoutSidebarLeft,
			Palette: Palette{
				Ink: "#1e2836", Muted: "#5a6a80", Accent: "#1e4f8f", Rule: "#ccd6e4", PageBg: "#fff",
				SidebarBg: "#143a6b", SidebarInk: "#eef3fa",
			},
			BodyFont:      fontSans,
			HeadingFont:   fontSans,
			ContactGlyphs: true,
			UseCurrent:    true,
			Skills:        SkillsList,
			Levels:        LevelText,
			Order:         sidebarMain,
			Sidebar:       sidebarAside,
		},
	}
}
