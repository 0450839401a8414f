package render

import (
	"fmt"

	"github.com/jonathan/cv-generator/internal/plan"
	"github.com/jonathan/cv-generator/internal/style"
	"github.com/jonathan/cv-generator/internal/types"
)

// Variant selects the arrangement of section blocks, independently of the
// template's section configuration.
type Variant string

// Layout variants.
const (
	// VariantModern is a two-column layout: sidebar for summary, skills,
	// languages, and certifications; main column for the rest.
	VariantModern Variant = "modern"
	// VariantClassic is a single full-width column with underlined section
	// headers and a two-panel certifications/languages footer row.
	VariantClassic Variant = "classic"
	// VariantMinimal is a single column with uppercase low-weight headings,
	// divider rules, and an optional branding footer.
	VariantMinimal Variant = "minimal"
)

// ParseVariant maps a variant name to a Variant. Unrecognized names fall
// back to the modern layout.
func ParseVariant(name string) Variant {
	switch Variant(name) {
	case VariantClassic:
		return VariantClassic
	case VariantMinimal:
		return VariantMinimal
	default:
		return VariantModern
	}
}

// SectionBlock is one block of the document tree, tagged with its section
// identifier and carrying exactly the typed content its kind needs. For
// custom sections only the name is carried; the renderer emits the heading
// with a placeholder body because custom sections have no content schema.
type SectionBlock struct {
	ID    string
	Title string
	Kind  plan.SectionKind

	Summary        string
	Skills         []types.Skill
	Experience     []types.Experience
	Education      []types.Education
	Projects       []types.Project
	Certifications []types.Certification
	Languages      []types.Language
}

// KindName returns the template-facing name of the block's kind.
func (b *SectionBlock) KindName() string {
	switch b.Kind {
	case plan.KindHeader:
		return "header"
	case plan.KindSummary:
		return "summary"
	case plan.KindSkills:
		return "skills"
	case plan.KindExperience:
		return "experience"
	case plan.KindEducation:
		return "education"
	case plan.KindProjects:
		return "projects"
	case plan.KindCertifications:
		return "certifications"
	case plan.KindLanguages:
		return "languages"
	default:
		return "custom"
	}
}

// HasBody reports whether the block carries any items to render. Header,
// summary, and custom blocks always have a body.
func (b *SectionBlock) HasBody() bool {
	switch b.Kind {
	case plan.KindSkills:
		return len(b.Skills) > 0
	case plan.KindExperience:
		return len(b.Experience) > 0
	case plan.KindEducation:
		return len(b.Education) > 0
	case plan.KindProjects:
		return len(b.Projects) > 0
	case plan.KindCertifications:
		return len(b.Certifications) > 0
	case plan.KindLanguages:
		return len(b.Languages) > 0
	default:
		return true
	}
}

// Document is the renderer's structured output: the ordered section blocks
// plus everything a serializer needs to produce a standalone document.
type Document struct {
	Variant    Variant
	FileBase   string
	Stylesheet string
	Branding   types.Branding
	Personal   types.PersonalInfo
	Blocks     []SectionBlock
}

// Build combines CV content filtered by the selection set, the template's
// render plan, the compiled stylesheet, and branding overrides into a
// document tree. It fails only when the required identity fields are absent;
// missing optional style or branding fields substitute documented defaults.
func Build(data *types.CVData, selection types.SelectionSet, template *types.Template, variant Variant, branding types.Branding) (*Document, error) {
	var missing []string
	if data.PersonalInfo.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if data.PersonalInfo.LastName == "" {
		missing = append(missing, "lastName")
	}
	if len(missing) > 0 {
		return nil, &MissingPersonalInfoError{Fields: missing}
	}

	resolved := branding.WithDefaults()
	planned := plan.Plan(template, data, selection)
	filtered := Filter(data, selection)

	blocks := make([]SectionBlock, 0, len(planned))
	for _, section := range planned {
		block := SectionBlock{ID: section.ID, Title: section.Name, Kind: section.Kind}
		switch section.Kind {
		case plan.KindSkills:
			block.Skills = filtered.Skills
		case plan.KindExperience:
			block.Experience = filtered.Experience
		case plan.KindEducation:
			block.Education = filtered.Education
		case plan.KindProjects:
			block.Projects = filtered.Projects
		case plan.KindCertifications:
			block.Certifications = filtered.Certifications
		case plan.KindLanguages:
			block.Languages = filtered.Languages
		case plan.KindSummary:
			block.Summary = data.PersonalInfo.Summary
		case plan.KindHeader, plan.KindCustom:
			// Rendered from personal info or as a placeholder.
		}
		blocks = append(blocks, block)
	}

	return &Document{
		Variant:    variant,
		FileBase:   fmt.Sprintf("%s_%s_CV", data.PersonalInfo.FirstName, data.PersonalInfo.LastName),
		Stylesheet: style.Compile(effectiveStyles(template.Styles, branding)),
		Branding:   resolved,
		Personal:   data.PersonalInfo,
		Blocks:     blocks,
	}, nil
}

// effectiveStyles overlays branding color and font overrides onto the
// template's style configuration.
func effectiveStyles(styles types.StyleConfig, branding types.Branding) types.StyleConfig {
	if branding.PrimaryColor != "" {
		styles.PrimaryColor = branding.PrimaryColor
	}
	if branding.SecondaryColor != "" {
		styles.SecondaryColor = branding.SecondaryColor
	}
	if branding.Font != "" {
		styles.FontFamily = branding.Font
	}
	return styles
}

// HeaderBlock returns the planned header block, or nil when the template
// disables it.
func (d *Document) HeaderBlock() *SectionBlock {
	for i := range d.Blocks {
		if d.Blocks[i].Kind == plan.KindHeader {
			return &d.Blocks[i]
		}
	}
	return nil
}

// sidebarKinds are the block kinds the modern layout places in its sidebar.
var sidebarKinds = map[plan.SectionKind]bool{
	plan.KindSummary:        true,
	plan.KindSkills:         true,
	plan.KindLanguages:      true,
	plan.KindCertifications: true,
}

// footerKinds are the block kinds the classic layout renders as a two-panel
// footer row.
var footerKinds = map[plan.SectionKind]bool{
	plan.KindCertifications: true,
	plan.KindLanguages:      true,
}

// Sidebar returns the blocks the modern layout renders in its sidebar, in
// plan order.
func (d *Document) Sidebar() []SectionBlock {
	var blocks []SectionBlock
	for _, block := range d.Blocks {
		if sidebarKinds[block.Kind] {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Main returns the blocks the modern layout renders in its main column.
func (d *Document) Main() []SectionBlock {
	var blocks []SectionBlock
	for _, block := range d.Blocks {
		if block.Kind != plan.KindHeader && !sidebarKinds[block.Kind] {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Footer returns the blocks the classic layout renders as its footer row.
func (d *Document) Footer() []SectionBlock {
	var blocks []SectionBlock
	for _, block := range d.Blocks {
		if footerKinds[block.Kind] {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Body returns every non-header block except the classic footer row.
func (d *Document) Body() []SectionBlock {
	var blocks []SectionBlock
	for _, block := range d.Blocks {
		if block.Kind != plan.KindHeader && !footerKinds[block.Kind] {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Sections returns every non-header block in plan order.
func (d *Document) Sections() []SectionBlock {
	var blocks []SectionBlock
	for _, block := range d.Blocks {
		if block.Kind != plan.KindHeader {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
