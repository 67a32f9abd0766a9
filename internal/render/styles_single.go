package render

// Single-column variants: a full-width header over one flow of sections.

func singleColumnStyles() []*Style {
	return []*Style{
		{
			Key:         "gqr-resume-classic",
			Name:        "Ivory",
			Description: "Traditional single-column resume with serif headings, thin underlines, and a timeless black/gray palette.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#222", Muted: "#555", Accent: "#333", Rule: "#bbb", PageBg: "#fff",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSerif,
			HeadingUppercase: true,
			HeadingRule:      true,
			ContactGlyphs:    true,
			Levels:           LevelDots,
		},
		{
			Key:         "gqr-resume-corporate",
			Name:        "Summit",
			Description: "Corporate single-column resume with centered header, uppercase section headings, and a refined black/dark-gray palette.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#1c1c1c", Muted: "#4a4a4a", Accent: "#2d2d2d", Rule: "#999", PageBg: "#fff",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			HeadingRule:      true,
			ExtraCSS: `
{scope} .header { text-align: center; }
{scope} .header-contact { border-top: none; border-bottom: 1px solid #999; padding-bottom: 8px; }
`,
		},
		{
			Key:         "gqr-resume-finance",
			Name:        "Ledger",
			Description: "Clean, dense single-column resume with minimal gray accents and thin rules, optimized for finance roles.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#1a1a1a", Muted: "#5d5d5d", Accent: "#444", Rule: "#ccc", PageBg: "#fff",
			},
			BodyFont:    fontSans,
			HeadingFont: fontSans,
			BaseSizePx:  12,
			HeadingRule: true,
			DateFormat:  DateNumeric,
		},
		{
			Key:         "gqr-resume-fineline",
			Name:        "Horizon",
			Description: "Dense single-column resume with an inline name and profession header, thin divider lines, and maximum content density.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#202020", Muted: "#606060", Accent: "#303030", Rule: "#d5d5d5", PageBg: "#fff",
			},
			BodyFont:    fontSans,
			HeadingFont: fontSans,
			BaseSizePx:  12,
			HeadingRule: true,
			DateFormat:  DateYearOnly,
			ExtraCSS: `
{scope} .header-name { display: inline; font-size: 24px; margin-right: 10px; }
{scope} .header-profession { display: inline; }
{scope} .section { margin-bottom: 12px; }
`,
		},
		{
			Key:         "gqr-resume-silver",
			Name:        "Sterling",
			Description: "Clean minimalist single-column resume with light gray section bars, centered headings, and a warm neutral palette.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#2b2b2b", Muted: "#6e6e6e", Accent: "#4f4f4f", Rule: "#e0e0e0", PageBg: "#fff",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			ExtraCSS: `
{scope} .section-title { text-align: center; background: #efefef; padding: 5px 0; }
`,
		},
		{
			Key:         "gqr-resume-monochrome",
			Name:        "Graphite",
			Description: "Minimal monochrome single-column resume with a timeline feel, two-column skills grid, and thin section dividers.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#111", Muted: "#666", Accent: "#111", Rule: "#ddd", PageBg: "#fff",
			},
			BodyFont:    fontSans,
			HeadingFont: fontSans,
			HeadingRule: true,
			Skills:      SkillsColumns,
			DateFormat:  DateYearOnly,
		},
		{
			Key:         "gqr-resume-boldname",
			Name:        "Vanguard",
			Description: "Single-column resume with an oversized bold uppercase name on a light gray page and a two-column skills grid.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#1f1f1f", Muted: "#5a5a5a", Accent: "#1f1f1f", Rule: "#c9c9c9", PageBg: "#f5f5f5",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			Skills:           SkillsColumns,
			ExtraCSS: `
{scope} .header-name { font-size: 44px; text-transform: uppercase; letter-spacing: 2px; }
`,
		},
		{
			Key:         "gqr-resume-pristine",
			Name:        "Crystal",
			Description: "Clean single-column resume with centered section headings flanked by decorative lines, a skills grid, and dot-rated languages.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#262626", Muted: "#6b6b6b", Accent: "#3d3d3d", Rule: "#cfcfcf", PageBg: "#fff",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSerif,
			HeadingUppercase: true,
			Skills:           SkillsColumns,
			Levels:           LevelDots,
			ExtraCSS: `
{scope} .section-title { text-align: center; }
`,
		},
		{
			Key:         "gqr-resume-blueaccent",
			Name:        "Indigo",
			Description: "Single-column resume with a deep indigo accent, centered name, icon contact row, and rounded skill badges.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#24243a", Muted: "#5f5f7a", Accent: "#3b3b8f", Rule: "#c7c7e0", PageBg: "#fff",
			},
			BodyFont:      fontSans,
			HeadingFont:   fontSans,
			HeadingRule:   true,
			AccentHeader:  true,
			ContactGlyphs: true,
			Skills:        SkillsChips,
			Levels:        LevelBars,
			ExtraCSS: `
{scope} .header { text-align: center; }
`,
		},
		{
			Key:         "gqr-resume-redaccent",
			Name:        "Crimson",
			Description: "Single-column resume with a centered red name, red contact icons, heading bands, and red skill and language bars.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#2a2a2a", Muted: "#777", Accent: "#b3261e", Rule: "#e9c8c6", PageBg: "#fff",
			},
			BodyFont:      fontSans,
			HeadingFont:   fontSans,
			AccentHeader:  true,
			ContactGlyphs: true,
			Skills:        SkillsChips,
			Levels:        LevelBars,
			ExtraCSS: `
{scope} .header { text-align: center; }
{scope} .section-title { text-align: center; background: #fbeeed; padding: 4px 0; }
`,
		},
		{
			Key:         "gqr-resume-charcoal",
			Name:        "Ember",
			Description: "Dark charcoal single-column resume with gold accents and a modern A4 layout.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#eaeaea", Muted: "#b9b9b9", Accent: "#d9a441", Rule: "#555", PageBg: "#2e2e2e",
			},
			BodyFont:     fontSans,
			HeadingFont:  fontSans,
			HeadingRule:  true,
			AccentHeader: true,
			Skills:       SkillsChips,
			Levels:       LevelDots,
		},
		{
			Key:         "gqr-resume-darkbg",
			Name:        "Eclipse",
			Description: "Dark navy single-column resume with teal accent headings, a two-column skills grid, and light text throughout.",
			Layout:      LayoutSingle,
			Palette: Palette{
				Ink: "#e4ecec", Muted: "#9fb3b3", Accent: "#35c4b5", Rule: "#2f4a4a", PageBg: "#16242f",
			},
			BodyFont:         fontSans,
			HeadingFont:      fontSans,
			HeadingUppercase: true,
			AccentHeader:     true,
			Skills:           SkillsColumns,
			Levels:           LevelBars,
		},
	}
}
