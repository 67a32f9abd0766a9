package model

import "fmt"

// Go models for the resume payload consumed by every template. The shape
// matches resume.schema.json; every field is optional and collections may be
// absent, so callers should build instances through FromMap when the source
// is untrusted JSON.

type ExperienceEntry struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate,omitempty"`
	IsCurrent        bool     `json:"isCurrent"`
	Achievements     []string `json:"achievements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

type EducationEntry struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	IsCompleted *bool  `json:"isCompleted,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// InProgress reports whether the entry should render with an open-ended date
// range. Education defaults to completed when the flag is absent, unlike
// experience which carries an explicit isCurrent.
func (e EducationEntry) InProgress() bool {
	return e.IsCompleted != nil && !*e.IsCompleted
}

type ProjectEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

type CertificationEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

type LanguageEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type AchievementEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Year        string `json:"year,omitempty"`
}

type ResumeData struct {
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Profession string `json:"profession,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Country    string `json:"country,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	Summary    string `json:"summary,omitempty"`

	SkillsRaw []string `json:"skillsRaw,omitempty"`
	ToolsRaw  []string `json:"toolsRaw,omitempty"`

	Experience     []ExperienceEntry    `json:"experience,omitempty"`
	Education      []EducationEntry     `json:"education,omitempty"`
	Projects       []ProjectEntry       `json:"projects,omitempty"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
	Languages      []LanguageEntry      `json:"languages,omitempty"`
	Achievements   []AchievementEntry   `json:"achievements,omitempty"`

	// UI language for labels and dates, not the owner's spoken languages.
	Language string `json:"language,omitempty"`
}

// FromMap builds a ResumeData from a generic JSON map, coercing malformed
// fields to their zero values so a render can never trip over a null or a
// number where a string was expected.
func FromMap(m map[string]interface{}) *ResumeData {
	d := &ResumeData{}
	if m == nil {
		return d
	}

	d.FirstName = str(m["firstName"])
	d.LastName = str(m["lastName"])
	d.Profession = str(m["profession"])
	d.Email = str(m["email"])
	d.Phone = str(m["phone"])
	d.Country = str(m["country"])
	d.LinkedIn = str(m["linkedin"])
	d.Summary = str(m["summary"])
	d.Language = str(m["language"])

	d.SkillsRaw = strList(m["skillsRaw"])
	d.ToolsRaw = strList(m["toolsRaw"])

	for i, em := range objList(m["experience"]) {
		d.Experience = append(d.Experience, ExperienceEntry{
			ID:               entryID(em, "exp", i),
			Title:            str(em["title"]),
			Company:          str(em["company"]),
			Location:         str(em["location"]),
			StartDate:        str(em["startDate"]),
			EndDate:          str(em["endDate"]),
			IsCurrent:        boolean(em["isCurrent"]),
			Achievements:     strList(em["achievements"]),
			Responsibilities: strList(em["responsibilities"]),
		})
	}
	for i, em := range objList(m["education"]) {
		entry := EducationEntry{
			ID:          entryID(em, "edu", i),
			Institution: str(em["institution"]),
			Degree:      str(em["degree"]),
			Field:       str(em["field"]),
			StartDate:   str(em["startDate"]),
			EndDate:     str(em["endDate"]),
			GPA:         stringify(em["gpa"]),
		}
		if v, ok := em["isCompleted"].(bool); ok {
			entry.IsCompleted = &v
		}
		d.Education = append(d.Education, entry)
	}
	for i, em := range objList(m["projects"]) {
		d.Projects = append(d.Projects, ProjectEntry{
			ID:           entryID(em, "proj", i),
			Name:         str(em["name"]),
			Description:  str(em["description"]),
			Technologies: strList(em["technologies"]),
			URL:          str(em["url"]),
		})
	}
	for i, em := range objList(m["certifications"]) {
		d.Certifications = append(d.Certifications, CertificationEntry{
			ID:     entryID(em, "cert", i),
			Name:   str(em["name"]),
			Issuer: str(em["issuer"]),
			Date:   str(em["date"]),
		})
	}
	for i, em := range objList(m["languages"]) {
		d.Languages = append(d.Languages, LanguageEntry{
			ID:    entryID(em, "lang", i),
			Name:  str(em["name"]),
			Level: str(em["level"]),
		})
	}
	for i, em := range objList(m["achievements"]) {
		d.Achievements = append(d.Achievements, AchievementEntry{
			ID:          entryID(em, "ach", i),
			Title:       str(em["title"]),
			Description: str(em["description"]),
			Year:        stringify(em["year"]),
		})
	}

	return d
}

func str(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// stringify renders scalar values (years, GPAs) that arrive as JSON numbers.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case int:
		return fmt.Sprintf("%d", t)
	default:
		return ""
	}
}

func boolean(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func strList(v interface{}) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func objList(v interface{}) []map[string]interface{} {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(arr))
	for _, it := range arr {
		if m, ok := it.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// entryID prefers the source id and falls back to a synthetic index-based
// one so rendered entries stay addressable by external tooling.
func entryID(m map[string]interface{}, prefix string, i int) string {
	if id := stringify(m["id"]); id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", prefix, i)
}
