// Package plan resolves a template's section list into an ordered,
// enabled-only render plan.
package plan

import (
	"sort"

	"github.com/jonathan/cv-generator/internal/types"
)

// SectionKind is the tagged variant over the eight built-in section kinds
// plus user-authored custom sections.
type SectionKind int

// Section kinds. KindCustom covers every identifier that is not one of the
// eight built-in section ids.
const (
	KindHeader SectionKind = iota
	KindSummary
	KindSkills
	KindExperience
	KindEducation
	KindProjects
	KindCertifications
	KindLanguages
	KindCustom
)

// PlannedSection is one entry of the render plan.
type PlannedSection struct {
	ID    string
	Name  string
	Kind  SectionKind
	Order int
}

// KindOf maps a section identifier to its kind. Unknown identifiers are
// custom sections.
func KindOf(id string) SectionKind {
	switch id {
	case types.SectionHeader:
		return KindHeader
	case types.SectionSummary:
		return KindSummary
	case types.SectionSkills:
		return KindSkills
	case types.SectionExperience:
		return KindExperience
	case types.SectionEducation:
		return KindEducation
	case types.SectionProjects:
		return KindProjects
	case types.SectionCertifications:
		return KindCertifications
	case types.SectionLanguages:
		return KindLanguages
	default:
		return KindCustom
	}
}

// Plan returns the ordered, enabled-only sequence of sections to render.
// Sections are sorted by Order ascending with ties resolved by original list
// position, so planning an unchanged template twice yields identical output.
// Built-in content sections with no items at all are dropped entirely, even
// when the selection set still carries stale ids for them; header and summary
// always render because they come from personal info, not from a filterable
// array.
func Plan(template *types.Template, data *types.CVData, selection types.SelectionSet) []PlannedSection {
	ordered := append([]types.Section(nil), template.Sections...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	planned := make([]PlannedSection, 0, len(ordered))
	for _, section := range ordered {
		if !section.Enabled {
			continue
		}
		kind := KindOf(section.ID)
		if suppressEmpty(kind, data) {
			continue
		}
		planned = append(planned, PlannedSection{
			ID:    section.ID,
			Name:  section.Name,
			Kind:  kind,
			Order: section.Order,
		})
	}
	return planned
}

// suppressEmpty reports whether a section should be dropped from the plan
// because its content array holds nothing selectable. Selection ids pointing
// at deleted items count for nothing; with zero total items there is zero to
// select.
func suppressEmpty(kind SectionKind, data *types.CVData) bool {
	if data == nil {
		return false
	}
	switch kind {
	case KindSkills:
		return len(data.Skills) == 0
	case KindExperience:
		return len(data.Experience) == 0
	case KindEducation:
		return len(data.Education) == 0
	case KindProjects:
		return len(data.Projects) == 0
	case KindCertifications:
		return len(data.Certifications) == 0
	case KindLanguages:
		return len(data.Languages) == 0
	default:
		// Header, summary, and custom sections carry no filterable array.
		return false
	}
}

// Reorder moves the section at index from to index to and renumbers every
// section's Order to its new positional index, so gaps never accumulate
// across repeated edits. Out-of-range indexes return a copy of the input
// untouched, existing gaps included.
func Reorder(sections []types.Section, from, to int) []types.Section {
	result := append([]types.Section(nil), sections...)
	if from < 0 || from >= len(result) || to < 0 || to >= len(result) {
		return result
	}
	moved := result[from]
	result = append(result[:from], result[from+1:]...)
	result = append(result[:to], append([]types.Section{moved}, result[to:]...)...)
	return renumber(result)
}

// RemoveCustom deletes a custom section by id and renumbers the rest.
// Built-in-named sections are never removed.
func RemoveCustom(sections []types.Section, id string) []types.Section {
	result := make([]types.Section, 0, len(sections))
	for _, section := range sections {
		if section.ID == id && section.Custom {
			continue
		}
		result = append(result, section)
	}
	return renumber(result)
}

// renumber assigns contiguous 0..n-1 orders matching array position.
func renumber(sections []types.Section) []types.Section {
	for i := range sections {
		sections[i].Order = i
	}
	return sections
}
