package render

import (
	"fmt"
	"strings"

	"resume-templates/internal/model"
)

// Render produces the complete self-contained markup fragment for one
// resume in one style. It is a pure function of its inputs: no I/O, no
// shared state, a single synchronous pass over the data. A nil resume
// renders a minimal valid, empty document.
func Render(data *model.ResumeData, lang string, st *Style) string {
	return renderScoped(data, lang, st, st.Key)
}

// EffectiveSkills merges the declared skills with the tools list, keeping
// the first occurrence of each entry. skillsRaw order is preserved as a
// prefix; tools contribute only entries not already present.
func EffectiveSkills(skills, tools []string) []string {
	out := make([]string, 0, len(skills)+len(tools))
	seen := make(map[string]struct{}, len(skills)+len(tools))
	for _, list := range [][]string{skills, tools} {
		for _, s := range list {
			if s == "" {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

type page struct {
	buf    strings.Builder
	st     *Style
	labels Labels
	lang   string
	data   *model.ResumeData
}

func renderScoped(data *model.ResumeData, lang string, st *Style, scope string) string {
	if data == nil {
		data = &model.ResumeData{}
	}
	p := &page{st: st, labels: LabelsFor(lang), lang: lang, data: data}

	p.buf.WriteString("<style>")
	p.buf.WriteString(stylesheet(scope, st))
	p.buf.WriteString("</style>")
	fmt.Fprintf(&p.buf, `<div class="%s"><div class="page">`, scope)

	switch st.Layout {
	case LayoutSidebarLeft, LayoutSidebarRight:
		p.buf.WriteString(`<div class="columns">`)
		p.buf.WriteString(`<aside class="sidebar">`)
		p.contactBlock()
		for _, sec := range st.Sidebar {
			p.section(sec)
		}
		p.buf.WriteString(`</aside>`)
		p.buf.WriteString(`<div class="main">`)
		p.header(false)
		for _, sec := range st.order() {
			p.section(sec)
		}
		p.buf.WriteString(`</div></div>`)
	default:
		p.header(true)
		for _, sec := range st.order() {
			p.section(sec)
		}
	}

	p.buf.WriteString(`</div></div>`)
	return p.buf.String()
}

// header emits the name, profession and, for single-column layouts, the
// contact line. Absent fields contribute nothing, including the wrapper
// when every field is empty.
func (p *page) header(withContact bool) {
	fullName := strings.TrimSpace(p.data.FirstName + " " + p.data.LastName)
	profession := p.data.Profession
	contact := p.contactParts()

	if fullName == "" && profession == "" && (!withContact || len(contact) == 0) {
		return
	}

	p.buf.WriteString(`<header class="header" data-section="header">`)
	if fullName != "" {
		fmt.Fprintf(&p.buf, `<div class="header-name">%s</div>`, EscapeHTML(fullName))
	}
	if profession != "" {
		fmt.Fprintf(&p.buf, `<div class="header-profession">%s</div>`, EscapeHTML(profession))
	}
	if withContact && len(contact) > 0 {
		p.buf.WriteString(`<div class="header-contact">`)
		for i, part := range contact {
			if i > 0 {
				p.buf.WriteString(`<span class="sep">|</span>`)
			}
			fmt.Fprintf(&p.buf, `<span>%s</span>`, part)
		}
		p.buf.WriteString(`</div>`)
	}
	p.buf.WriteString(`</header>`)
}

// contactBlock is the sidebar's version of the contact line, one row per
// present field under a Contact heading.
func (p *page) contactBlock() {
	contact := p.contactParts()
	if len(contact) == 0 {
		return
	}
	p.buf.WriteString(`<div class="section" data-section="contact">`)
	fmt.Fprintf(&p.buf, `<div class="section-title">%s</div>`, EscapeHTML(p.labels.Contact))
	for _, part := range contact {
		fmt.Fprintf(&p.buf, `<div class="contact-row">%s</div>`, part)
	}
	p.buf.WriteString(`</div>`)
}

// contactParts returns the already-escaped contact fragments in a fixed
// order, skipping absent fields entirely.
func (p *page) contactParts() []string {
	glyph := func(g string) string {
		if p.st.ContactGlyphs {
			return `<span class="glyph">` + g + `</span> `
		}
		return ""
	}
	var parts []string
	if p.data.Email != "" {
		parts = append(parts, glyph("✉")+EscapeHTML(p.data.Email))
	}
	if p.data.Phone != "" {
		parts = append(parts, glyph("☎")+EscapeHTML(p.data.Phone))
	}
	if p.data.Country != "" {
		parts = append(parts, glyph("⚲")+EscapeHTML(p.data.Country))
	}
	if p.data.LinkedIn != "" {
		parts = append(parts, glyph("🔗")+EscapeHTML(p.data.LinkedIn))
	}
	return parts
}

func (p *page) section(sec Section) {
	switch sec {
	case SectionProfile:
		p.profileSection()
	case SectionSkills:
		p.skillsSection()
	case SectionExperience:
		p.experienceSection()
	case SectionProjects:
		p.projectsSection()
	case SectionAchievements:
		p.achievementsSection()
	case SectionEducation:
		p.educationSection()
	case SectionCertifications:
		p.certificationsSection()
	case SectionLanguages:
		p.languagesSection()
	}
}

// open writes the section wrapper and heading. Callers must have checked
// presence first; an empty backing collection means the section, heading
// included, is omitted.
func (p *page) open(sec Section, title string) {
	fmt.Fprintf(&p.buf, `<div class="section" data-section="%s">`, sec)
	fmt.Fprintf(&p.buf, `<div class="section-title">%s</div>`, EscapeHTML(title))
}

func (p *page) close() {
	p.buf.WriteString(`</div>`)
}

func (p *page) profileSection() {
	if p.data.Summary == "" {
		return
	}
	p.open(SectionProfile, p.labels.Profile)
	fmt.Fprintf(&p.buf, `<div class="profile-text">%s</div>`, EscapeHTML(p.data.Summary))
	p.close()
}

func (p *page) skillsSection() {
	skills := EffectiveSkills(p.data.SkillsRaw, p.data.ToolsRaw)
	if len(skills) == 0 {
		return
	}
	p.open(SectionSkills, p.labels.Skills)
	switch p.st.Skills {
	case SkillsChips:
		p.buf.WriteString(`<div class="skills-chips">`)
		for i, s := range skills {
			fmt.Fprintf(&p.buf, `<span class="chip" data-entry-id="skill-%d">%s</span>`, i, EscapeHTML(s))
		}
		p.buf.WriteString(`</div>`)
	case SkillsList:
		p.buf.WriteString(`<ul class="skills-list">`)
		for i, s := range skills {
			fmt.Fprintf(&p.buf, `<li data-entry-id="skill-%d">%s</li>`, i, EscapeHTML(s))
		}
		p.buf.WriteString(`</ul>`)
	case SkillsColumns:
		p.buf.WriteString(`<div class="skills-grid">`)
		for i, s := range skills {
			fmt.Fprintf(&p.buf, `<div class="skills-cell" data-entry-id="skill-%d">%s</div>`, i, EscapeHTML(s))
		}
		p.buf.WriteString(`</div>`)
	default:
		p.buf.WriteString(`<div class="skills-inline">`)
		for i, s := range skills {
			if i > 0 {
				fmt.Fprintf(&p.buf, `<span class="skill-sep">%s</span>`, p.st.skillSep())
			}
			fmt.Fprintf(&p.buf, `<span data-entry-id="skill-%d">%s</span>`, i, EscapeHTML(s))
		}
		p.buf.WriteString(`</div>`)
	}
	p.close()
}

func (p *page) experienceSection() {
	if len(p.data.Experience) == 0 {
		return
	}
	opts := p.st.rangeOptions(p.labels)
	p.open(SectionExperience, p.labels.Experience)
	for _, exp := range p.data.Experience {
		fmt.Fprintf(&p.buf, `<div class="entry" data-entry-id="%s">`, EscapeHTML(exp.ID))
		dateRange := FormatDateRange(exp.StartDate, exp.EndDate, exp.IsCurrent, p.lang, opts)
		p.buf.WriteString(`<div class="entry-header">`)
		fmt.Fprintf(&p.buf, `<span class="entry-title">%s</span>`, EscapeHTML(exp.Title))
		if dateRange != "" {
			fmt.Fprintf(&p.buf, `<span class="entry-date">%s</span>`, EscapeHTML(dateRange))
		}
		p.buf.WriteString(`</div>`)
		sub := exp.Company
		if exp.Location != "" {
			if sub != "" {
				sub += " · "
			}
			sub += exp.Location
		}
		if sub != "" {
			fmt.Fprintf(&p.buf, `<div class="entry-sub">%s</div>`, EscapeHTML(sub))
		}
		// bullets are achievements first, then responsibilities; empty
		// strings are skipped rather than rendered as blank items
		bullets := make([]string, 0, len(exp.Achievements)+len(exp.Responsibilities))
		bullets = append(bullets, exp.Achievements...)
		bullets = append(bullets, exp.Responsibilities...)
		p.bulletList(bullets)
		p.buf.WriteString(`</div>`)
	}
	p.close()
}

func (p *page) bulletList(bullets []string) {
	var kept []string
	for _, b := range bullets {
		if b != "" {
			kept = append(kept, b)
		}
	}
	if len(kept) == 0 {
		return
	}
	p.buf.WriteString(`<ul class="bullets">`)
	for _, b := range kept {
		fmt.Fprintf(&p.buf, `<li>%s</li>`, EscapeHTML(b))
	}
	p.buf.WriteString(`</ul>`)
}

func (p *page) projectsSection() {
	if len(p.data.Projects) == 0 {
		return
	}
	p.open(SectionProjects, p.labels.Projects)
	for _, proj := range p.data.Projects {
		fmt.Fprintf(&p.buf, `<div class="entry" data-entry-id="%s">`, EscapeHTML(proj.ID))
		fmt.Fprintf(&p.buf, `<span class="entry-title">%s</span>`, EscapeHTML(proj.Name))
		if len(proj.Technologies) > 0 {
			techs := make([]string, 0, len(proj.Technologies))
			for _, t := range proj.Technologies {
				if t != "" {
					techs = append(techs, EscapeHTML(t))
				}
			}
			if len(techs) > 0 {
				fmt.Fprintf(&p.buf, ` <span class="entry-tech">(%s)</span>`, strings.Join(techs, ", "))
			}
		}
		if proj.URL != "" {
			fmt.Fprintf(&p.buf, ` <a class="entry-link" href="%s" target="_blank" rel="noopener">%s</a>`,
				EscapeHTML(proj.URL), EscapeHTML(LinkLabel(proj.URL)))
		}
		if proj.Description != "" {
			fmt.Fprintf(&p.buf, `<div class="entry-desc">%s</div>`, EscapeHTML(proj.Description))
		}
		p.buf.WriteString(`</div>`)
	}
	p.close()
}

func (p *page) achievementsSection() {
	if len(p.data.Achievements) == 0 {
		return
	}
	p.open(SectionAchievements, p.labels.Achievements)
	for _, ach := range p.data.Achievements {
		fmt.Fprintf(&p.buf, `<div class="entry" data-entry-id="%s">`, EscapeHTML(ach.ID))
		fmt.Fprintf(&p.buf, `<span class="entry-title">%s</span>`, EscapeHTML(ach.Title))
		if ach.Year != "" {
			fmt.Fprintf(&p.buf, `<span class="entry-year">(%s)</span>`, EscapeHTML(ach.Year))
		}
		if ach.Description != "" {
			fmt.Fprintf(&p.buf, `<div class="entry-desc">%s</div>`, EscapeHTML(ach.Description))
		}
		p.buf.WriteString(`</div>`)
	}
	p.close()
}

func (p *page) educationSection() {
	if len(p.data.Education) == 0 {
		return
	}
	opts := p.st.rangeOptions(p.labels)
	p.open(SectionEducation, p.labels.Education)
	for _, edu := range p.data.Education {
		degree := edu.Degree
		if edu.Field != "" {
			if degree != "" {
				degree += " — "
			}
			degree += edu.Field
		}
		dateRange := FormatDateRange(edu.StartDate, edu.EndDate, edu.InProgress(), p.lang, opts)

		fmt.Fprintf(&p.buf, `<div class="entry" data-entry-id="%s">`, EscapeHTML(edu.ID))
		p.buf.WriteString(`<div class="entry-header">`)
		fmt.Fprintf(&p.buf, `<span class="entry-title">%s</span>`, EscapeHTML(degree))
		if dateRange != "" {
			fmt.Fprintf(&p.buf, `<span class="entry-date">%s</span>`, EscapeHTML(dateRange))
		}
		p.buf.WriteString(`</div>`)
		if edu.Institution != "" {
			fmt.Fprintf(&p.buf, `<div class="entry-sub">%s</div>`, EscapeHTML(edu.Institution))
		}
		if edu.GPA != "" {
			fmt.Fprintf(&p.buf, `<div class="entry-note">GPA: %s</div>`, EscapeHTML(edu.GPA))
		}
		p.buf.WriteString(`</div>`)
	}
	p.close()
}

func (p *page) certificationsSection() {
	if len(p.data.Certifications) == 0 {
		return
	}
	p.open(SectionCertifications, p.labels.Certifications)
	for _, cert := range p.data.Certifications {
		fmt.Fprintf(&p.buf, `<div class="entry" data-entry-id="%s">`, EscapeHTML(cert.ID))
		fmt.Fprintf(&p.buf, `<span class="entry-title">%s</span>`, EscapeHTML(cert.Name))
		if cert.Issuer != "" {
			fmt.Fprintf(&p.buf, ` <span class="entry-sub-inline">— %s</span>`, EscapeHTML(cert.Issuer))
		}
		if cert.Date != "" {
			fmt.Fprintf(&p.buf, ` <span class="entry-date-inline">(%s)</span>`,
				EscapeHTML(FormatDate(cert.Date, p.lang, p.st.DateFormat)))
		}
		p.buf.WriteString(`</div>`)
	}
	p.close()
}

func (p *page) languagesSection() {
	if len(p.data.Languages) == 0 {
		return
	}
	p.open(SectionLanguages, p.labels.Languages)
	scale := p.st.levelScale()
	for _, entry := range p.data.Languages {
		level := entry.Level
		if level == "" {
			level = "basic"
		}
		fmt.Fprintf(&p.buf, `<div class="lang-entry" data-entry-id="%s">`, EscapeHTML(entry.ID))
		fmt.Fprintf(&p.buf, `<span class="lang-name">%s</span>`, EscapeHTML(entry.Name))
		switch p.st.Levels {
		case LevelDots:
			filled := LevelUnits(level, scale)
			dots := strings.Repeat("●", filled) + strings.Repeat("○", scale-filled)
			fmt.Fprintf(&p.buf, `<span class="lang-dots">%s</span>`, dots)
		case LevelBars:
			filled := LevelUnits(level, scale)
			pct := filled * 100 / scale
			fmt.Fprintf(&p.buf,
				`<span class="lang-bar"><span class="lang-bar-fill" style="width:%d%%"></span></span>`, pct)
		}
		fmt.Fprintf(&p.buf, `<span class="lang-label">%s</span>`, EscapeHTML(p.labels.Level(level)))
		p.buf.WriteString(`</div>`)
	}
	p.close()
}
