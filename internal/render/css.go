package render

import (
	"fmt"
	"strings"
)

// stylesheet generates the scoped CSS for one style. Every selector is
// prefixed with the scope class so two templates rendered into the same
// document can never leak rules into each other or the host page.
func stylesheet(scope string, st *Style) string {
	s := "." + scope
	pal := st.Palette
	var b strings.Builder

	fmt.Fprintf(&b, `
%[1]s { display: block; font-family: %[2]s; font-size: %[3]gpx; line-height: 1.55; color: %[4]s; background: %[5]s; }
%[1]s * { margin: 0; padding: 0; box-sizing: border-box; }
%[1]s .page { width: 210mm; min-height: 297mm; margin: 0 auto; background: %[5]s; }
`, s, st.BodyFont, st.baseSize(), pal.Ink, pal.PageBg)

	switch st.Layout {
	case LayoutSidebarLeft, LayoutSidebarRight:
		dir := "row"
		if st.Layout == LayoutSidebarRight {
			dir = "row-reverse"
		}
		fmt.Fprintf(&b, `
%[1]s .columns { display: flex; flex-direction: %[2]s; min-height: 297mm; }
%[1]s .sidebar { width: 64mm; background: %[3]s; color: %[4]s; padding: 36px 22px; }
%[1]s .sidebar .section-title { color: %[4]s; border-color: %[4]s; }
%[1]s .sidebar .contact-row { font-size: %[5]gpx; margin-bottom: 6px; word-break: break-word; }
%[1]s .main { flex: 1; padding: 36px 30px; }
`, s, dir, pal.SidebarBg, pal.SidebarInk, st.baseSize()-1)
	case LayoutBanner:
		fmt.Fprintf(&b, `
%[1]s .page { padding: 0 0 40px; }
%[1]s .header { background: %[2]s; color: %[3]s; padding: 34px 44px; margin-bottom: 22px; }
%[1]s .header .header-name, %[1]s .header .header-profession, %[1]s .header .header-contact { color: %[3]s; }
%[1]s .section { margin-left: 44px; margin-right: 44px; }
`, s, pal.SidebarBg, pal.SidebarInk)
	default:
		fmt.Fprintf(&b, `%s .page { padding: 42px 48px 48px; }
`, s)
	}

	headerColor := pal.Ink
	titleColor := pal.Ink
	if st.AccentHeader {
		headerColor = pal.Accent
		titleColor = pal.Accent
	}
	fmt.Fprintf(&b, `
%[1]s .header { margin-bottom: 20px; }
%[1]s .header-name { font-family: %[2]s; font-size: 30px; font-weight: 700; letter-spacing: 0.5px; color: %[3]s; line-height: 1.2; margin-bottom: 2px; }
%[1]s .header-profession { font-size: 15px; color: %[4]s; margin-bottom: 10px; }
%[1]s .header-contact { font-size: %[5]gpx; color: %[4]s; border-top: 1px solid %[6]s; padding-top: 8px; }
%[1]s .header-contact span { white-space: nowrap; }
%[1]s .header-contact .sep { margin: 0 8px; color: %[6]s; }
%[1]s .glyph { color: %[7]s; }
`, s, st.HeadingFont, headerColor, pal.Muted, st.baseSize()-0.5, pal.Rule, pal.Accent)

	transform := "none"
	spacing := "0"
	if st.HeadingUppercase {
		transform = "uppercase"
		spacing = "1px"
	}
	rule := "none"
	if st.HeadingRule {
		rule = "1px solid " + pal.Accent
	}
	fmt.Fprintf(&b, `
%[1]s .section { margin-bottom: 18px; }
%[1]s .section-title { font-family: %[2]s; font-size: 16px; font-weight: 700; text-transform: %[3]s; letter-spacing: %[4]s; color: %[5]s; padding-bottom: 4px; border-bottom: %[6]s; margin-bottom: 12px; }
%[1]s .profile-text { line-height: 1.65; text-align: justify; }
%[1]s .entry { margin-bottom: 14px; }
%[1]s .entry:last-child { margin-bottom: 0; }
%[1]s .entry-header { display: flex; justify-content: space-between; align-items: baseline; flex-wrap: wrap; margin-bottom: 2px; }
%[1]s .entry-title { font-size: 14px; font-weight: 700; }
%[1]s .entry-date { font-size: %[7]gpx; color: %[8]s; white-space: nowrap; text-align: right; }
%[1]s .entry-sub { font-weight: 600; color: %[8]s; margin-bottom: 4px; }
%[1]s .entry-sub-inline { color: %[8]s; }
%[1]s .entry-date-inline, %[1]s .entry-year { font-size: %[9]gpx; color: %[8]s; margin-left: 4px; }
%[1]s .entry-tech { font-size: %[9]gpx; color: %[8]s; font-style: italic; }
%[1]s .entry-desc { color: %[10]s; line-height: 1.55; margin-top: 2px; }
%[1]s .entry-note { font-size: %[9]gpx; color: %[8]s; margin-top: 2px; }
%[1]s .entry-link { font-size: %[9]gpx; color: %[11]s; text-decoration: none; }
%[1]s .bullets { list-style: none; padding-left: 16px; margin-top: 4px; }
%[1]s .bullets li { position: relative; line-height: 1.55; margin-bottom: 3px; padding-left: 2px; }
%[1]s .bullets li::before { content: '•'; position: absolute; left: -14px; color: %[11]s; }
`, s, st.HeadingFont, transform, spacing, titleColor, rule,
		st.baseSize()-0.5, pal.Muted, st.baseSize()-1, pal.Ink, pal.Accent)

	switch st.Skills {
	case SkillsChips:
		fmt.Fprintf(&b, `
%[1]s .skills-chips { display: flex; flex-wrap: wrap; gap: 6px; }
%[1]s .chip { background: %[2]s; color: %[3]s; border-radius: 10px; padding: 2px 10px; font-size: %[4]gpx; }
`, s, pal.Accent, pal.PageBg, st.baseSize()-1)
	case SkillsList:
		fmt.Fprintf(&b, `
%[1]s .skills-list { list-style: none; }
%[1]s .skills-list li { position: relative; padding-left: 12px; margin-bottom: 3px; }
%[1]s .skills-list li::before { content: '–'; position: absolute; left: 0; }
`, s)
	case SkillsColumns:
		fmt.Fprintf(&b, `
%[1]s .skills-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 2px 18px; }
`, s)
	default:
		fmt.Fprintf(&b, `
%[1]s .skills-inline { line-height: 1.7; }
%[1]s .skills-inline .skill-sep { margin: 0 6px; color: %[2]s; }
`, s, pal.Muted)
	}

	fmt.Fprintf(&b, `
%[1]s .lang-entry { display: flex; align-items: center; margin-bottom: 5px; }
%[1]s .lang-name { min-width: 110px; font-weight: 600; }
%[1]s .lang-dots { letter-spacing: 2px; margin-right: 8px; color: %[2]s; }
%[1]s .lang-bar { display: inline-block; width: 70px; height: 5px; background: %[3]s; border-radius: 3px; margin-right: 8px; overflow: hidden; }
%[1]s .lang-bar-fill { display: block; height: 100%%; background: %[2]s; }
%[1]s .lang-label { font-size: %[4]gpx; color: %[5]s; }
`, s, pal.Accent, pal.Rule, st.baseSize()-1, pal.Muted)

	fmt.Fprintf(&b, `
@media print {
  @page { size: A4; margin: 0; }
  %[1]s .page { margin: 0; width: 210mm; min-height: 297mm; }
}
`, s)

	if st.ExtraCSS != "" {
		b.WriteString(strings.ReplaceAll(st.ExtraCSS, "{scope}", s))
	}
	return b.String()
}
