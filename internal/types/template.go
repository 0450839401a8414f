package types

import "time"

// Template types as stored in the catalogue.
const (
	TemplateTypeBuiltIn = "built-in"
	TemplateTypeCustom  = "custom"
)

// Built-in section identifiers. These have engine-defined rendering and
// cannot be deleted, only toggled or reordered.
const (
	SectionHeader         = "header"
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
)

// Section represents one orderable, enable-able block of a template.
// Order values need not be contiguous; ties are broken by array position.
type Section struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
	Custom  bool   `json:"custom,omitempty"`
}

// StyleConfig is the declarative style configuration a template carries.
// Every field has a documented default; compilation must be deterministic
// when any field is absent.
type StyleConfig struct {
	FontFamily      string `json:"fontFamily,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	LineHeight      string `json:"lineHeight,omitempty"`
	PrimaryColor    string `json:"primaryColor,omitempty" validate:"omitempty,hexcolor"`
	SecondaryColor  string `json:"secondaryColor,omitempty" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"backgroundColor,omitempty" validate:"omitempty,hexcolor"`
	TextColor       string `json:"textColor,omitempty" validate:"omitempty,hexcolor"`
	HeadingStyle    string `json:"headingStyle,omitempty" validate:"omitempty,oneof=normal bold light uppercase underline"`
	SectionSpacing  string `json:"sectionSpacing,omitempty" validate:"omitempty,oneof=small medium large"`
	Border          string `json:"border,omitempty" validate:"omitempty,oneof=none bottom all"`
}

// Documented style defaults.
const (
	DefaultFontFamily      = "Inter, sans-serif"
	DefaultFontSize        = "1rem"
	DefaultLineHeight      = "1.5"
	DefaultPrimaryColor    = "#0ea5e9"
	DefaultSecondaryColor  = "#64748b"
	DefaultBackgroundColor = "#ffffff"
	DefaultTextColor       = "#333333"
	DefaultHeadingStyle    = "normal"
	DefaultSectionSpacing  = "medium"
	DefaultBorder          = "none"
)

// WithDefaults returns a copy of the config with every unset field replaced
// by its documented default.
func (s StyleConfig) WithDefaults() StyleConfig {
	if s.FontFamily == "" {
		s.FontFamily = DefaultFontFamily
	}
	if s.FontSize == "" {
		s.FontSize = DefaultFontSize
	}
	if s.LineHeight == "" {
		s.LineHeight = DefaultLineHeight
	}
	if s.PrimaryColor == "" {
		s.PrimaryColor = DefaultPrimaryColor
	}
	if s.SecondaryColor == "" {
		s.SecondaryColor = DefaultSecondaryColor
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = DefaultBackgroundColor
	}
	if s.TextColor == "" {
		s.TextColor = DefaultTextColor
	}
	if s.HeadingStyle == "" {
		s.HeadingStyle = DefaultHeadingStyle
	}
	if s.SectionSpacing == "" {
		s.SectionSpacing = DefaultSectionSpacing
	}
	if s.Border == "" {
		s.Border = DefaultBorder
	}
	return s
}

// Branding is a lightweight style override (colors, font, logo) applied
// independently of a full template's StyleConfig.
type Branding struct {
	PrimaryColor   string `json:"primaryColor,omitempty" validate:"omitempty,hexcolor"`
	SecondaryColor string `json:"secondaryColor,omitempty" validate:"omitempty,hexcolor"`
	Font           string `json:"font,omitempty"`
	Logo           string `json:"logo,omitempty"`
}

// WithDefaults returns a copy of the branding with unset colors and font
// replaced by their documented defaults. The logo stays optional.
func (b Branding) WithDefaults() Branding {
	if b.PrimaryColor == "" {
		b.PrimaryColor = DefaultPrimaryColor
	}
	if b.SecondaryColor == "" {
		b.SecondaryColor = DefaultSecondaryColor
	}
	if b.Font == "" {
		b.Font = "Inter"
	}
	return b
}

// Template is a named bundle of section configuration and style configuration
// defining a document's shape.
type Template struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description,omitempty"`
	Type        string      `json:"type"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	Sections    []Section   `json:"sections"`
	Styles      StyleConfig `json:"styles"`
	ClonedFrom  string      `json:"clonedFrom,omitempty"`
	Imported    bool        `json:"imported,omitempty"`
	CreatedAt   time.Time   `json:"createdAt,omitzero"`
	UpdatedAt   time.Time   `json:"updatedAt,omitzero"`
}

// IsBuiltIn reports whether the template is one of the seeded read-only templates.
func (t *Template) IsBuiltIn() bool {
	return t.Type == TemplateTypeBuiltIn
}

// TemplatePatch is an explicit field-level patch for template updates.
// Only the enumerated fields are recognized; nil fields are left untouched.
type TemplatePatch struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Thumbnail   *string      `json:"thumbnail,omitempty"`
	Sections    []Section    `json:"sections,omitempty"`
	Styles      *StyleConfig `json:"styles,omitempty"`
}

// DefaultSections returns the eight standard sections in their default order.
func DefaultSections() []Section {
	return []Section{
		{ID: SectionHeader, Name: "Header", Enabled: true, Order: 0},
		{ID: SectionSummary, Name: "Summary", Enabled: true, Order: 1},
		{ID: SectionSkills, Name: "Skills", Enabled: true, Order: 2},
		{ID: SectionExperience, Name: "Experience", Enabled: true, Order: 3},
		{ID: SectionEducation, Name: "Education", Enabled: true, Order: 4},
		{ID: SectionProjects, Name: "Projects", Enabled: true, Order: 5},
		{ID: SectionCertifications, Name: "Certifications", Enabled: true, Order: 6},
		{ID: SectionLanguages, Name: "Languages", Enabled: true, Order: 7},
	}
}
