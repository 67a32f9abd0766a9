package render

// Banner variants: a full-bleed colored header band over a single column.

func bannerStyles() []*Style {
	return []*Style{
		{
			Key:         "gqr-resume-cobalt",
			Name:        "Sapphire",
			Description: "Elegant resume with a dark navy header band, serif section headings with short underlines, and a clean white body.",
			Layout:      LayoutBanner,
			Palette: Palette{
				Ink: "#23283a", Muted: "#5c6278", Accent: "#1f3a6d", Rule: "#c9cede", PageBg: "#fff",
				SidebarBg: "#1f3a6d", SidebarInk: "#f2f4fa",
			},
			BodyFont:    fontSans,
			HeadingFont: fontSerif,
			HeadingRule: true,
			Levels:      LevelDots,
		},
		{
			Key:         "gqr-resume-navybar",
			Name:        "Admiral",
			Description: "Resume with a dark navy header banner, centered name, full-width navy section bars, and a two-column skills grid.",
			Layout:      LayoutBanner,
			Palette: Palette{
				Ink: "#20242c", Muted: "#5a6070", Accent: "#14305c", Rule: "#c5ccd9", PageBg: "#fff",
				SidebarBg: "#14305c", SidebarInk: "#f4f6fa",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			Skills:           SkillsColumns,
			ExtraCSS: `
{scope} .header { text-align: center; }
{scope} .section-title { background: #14305c; color: #f4f6fa; padding: 4px 10px; border-bottom: none; }
`,
		},
		{
			Key:         "gqr-resume-minty",
			Name:        "Breeze",
			Description: "Elegant resume with a soft mint header band, serif headings with short green underlines, a skills grid, and dot-rated languages.",
			Layout:      LayoutBanner,
			Palette: Palette{
				Ink: "#25332d", Muted: "#5e7066", Accent: "#2e8b6e", Rule: "#cfe6dc", PageBg: "#fff",
				SidebarBg: "#dff2ea", SidebarInk: "#1f4335",
			},
			BodyFont:    fontSans,
			HeadingFont: fontSerif,
			HeadingRule: true,
			Skills:      SkillsColumns,
			Levels:      LevelDots,
		},
		{
			Key:         "gqr-resume-happy",
			Name:        "Soleil",
			Description: "Vibrant resume with a warm peach header, colorful accents, inline skill badges, and dot-rated languages.",
			Layout:      LayoutBanner,
			Palette: Palette{
				Ink: "#3a2f2a", Muted: "#7c6a60", Accent: "#e2694a", Rule: "#f2d7cc", PageBg: "#fff",
				SidebarBg: "#fbe3d4", SidebarInk: "#6b3a26",
			},
			BodyFont:      fontSans,
			HeadingFont:   fontSans,
			AccentHeader:  true,
			ContactGlyphs: true,
			Skills:        SkillsChips,
			Levels:        LevelDots,
			UseCurrent:    true,
		},
		{
			Key:         "gqr-resume-obsidian",
			Name:        "Onyx",
			Description: "Resume with a dark header, dark section-title bars, and a clean white body.",
			Layout:      LayoutBanner,
			Palette: Palette{
				Ink: "#242424", Muted: "#636363", Accent: "#1b1b1b", Rule: "#d2d2d2", PageBg: "#fff",
				SidebarBg: "#1b1b1b", SidebarInk: "#f3f3f3",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			ExtraCSS: `
{scope} .section-title { background: #1b1b1b; color: #f3f3f3; padding: 4px 10px; border-bottom: none; }
`,
		},
		{
			Key:         "gqr-resume-precision",
			Name:        "Architect",
			Description: "Compact resume with a dark navy header, full-width section title bars, and a dense professional layout.",
			Layout:      LayoutBanner,
			Palette: Palette{
				Ink: "#21262e", Muted: "#59606c", Accent: "#19324a", Rule: "#c8cfd8", PageBg: "#fff",
				SidebarBg: "#19324a", SidebarInk: "#eef2f6",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			BaseSizePx:       12,
			HeadingUppercase: true,
			DateFormat:       DateNumeric,
			RangeSeparator:   "-",
			ExtraCSS: `
{scope} .section-title { background: #e8edf2; padding: 3px 8px; border-bottom: none; }
{scope} .section { margin-bottom: 13px; }
`,
		},
	}
}
