// Package types provides type definitions for structured data used throughout the cv-generator engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVData represents the canonical CV content supplied by the content store.
// It is read-only input from the engine's point of view.
type CVData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	Languages      []Language      `json:"languages"`
}

// PersonalInfo holds the identity fields every layout depends on.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Summary   string `json:"summary"`
}

// Skill represents a single selectable skill entry.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Experience represents a single work experience entry.
type Experience struct {
	ID           string   `json:"id"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education represents a single education entry.
type Education struct {
	ID           string   `json:"id"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Certification represents a single certification entry.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Project represents a single project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

// Language represents a single language entry.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// SelectionSet maps a section name to the set of content item IDs included
// in the current editing session. IDs that do not exist in the CV data are
// treated as absent and silently excluded.
type SelectionSet map[string][]string

// Includes reports whether the given item ID is selected for a section.
func (s SelectionSet) Includes(section, id string) bool {
	for _, selected := range s[section] {
		if selected == id {
			return true
		}
	}
	return false
}

// SelectAll builds a SelectionSet that includes every item in the CV data.
// This mirrors the initial state of an editing session.
func SelectAll(data *CVData) SelectionSet {
	set := SelectionSet{
		SectionSkills:         make([]string, 0, len(data.Skills)),
		SectionExperience:     make([]string, 0, len(data.Experience)),
		SectionEducation:      make([]string, 0, len(data.Education)),
		SectionCertifications: make([]string, 0, len(data.Certifications)),
		SectionProjects:       make([]string, 0, len(data.Projects)),
		SectionLanguages:      make([]string, 0, len(data.Languages)),
	}
	for _, item := range data.Skills {
		set[SectionSkills] = append(set[SectionSkills], item.ID)
	}
	for _, item := range data.Experience {
		set[SectionExperience] = append(set[SectionExperience], item.ID)
	}
	for _, item := range data.Education {
		set[SectionEducation] = append(set[SectionEducation], item.ID)
	}
	for _, item := range data.Certifications {
		set[SectionCertifications] = append(set[SectionCertifications], item.ID)
	}
	for _, item := range data.Projects {
		set[SectionProjects] = append(set[SectionProjects], item.ID)
	}
	for _, item := range data.Languages {
		set[SectionLanguages] = append(set[SectionLanguages], item.ID)
	}
	return set
}
