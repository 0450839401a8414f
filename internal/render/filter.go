package render

import "github.com/jonathan/cv-generator/internal/types"

// Filter intersects each content array with the selection set, preserving
// content-store order. Selection ids that do not exist in the data simply
// never match and are excluded silently.
func Filter(data *types.CVData, selection types.SelectionSet) *types.CVData {
	filtered := &types.CVData{
		PersonalInfo:   data.PersonalInfo,
		Skills:         []types.Skill{},
		Experience:     []types.Experience{},
		Education:      []types.Education{},
		Certifications: []types.Certification{},
		Projects:       []types.Project{},
		Languages:      []types.Language{},
	}
	for _, item := range data.Skills {
		if selection.Includes(types.SectionSkills, item.ID) {
			filtered.Skills = append(filtered.Skills, item)
		}
	}
	for _, item := range data.Experience {
		if selection.Includes(types.SectionExperience, item.ID) {
			filtered.Experience = append(filtered.Experience, item)
		}
	}
	for _, item := range data.Education {
		if selection.Includes(types.SectionEducation, item.ID) {
			filtered.Education = append(filtered.Education, item)
		}
	}
	for _, item := range data.Certifications {
		if selection.Includes(types.SectionCertifications, item.ID) {
			filtered.Certifications = append(filtered.Certifications, item)
		}
	}
	for _, item := range data.Projects {
		if selection.Includes(types.SectionProjects, item.ID) {
			filtered.Projects = append(filtered.Projects, item)
		}
	}
	for _, item := range data.Languages {
		if selection.Includes(types.SectionLanguages, item.ID) {
			filtered.Languages = append(filtered.Languages, item)
		}
	}
	return filtered
}
