package templates

import "github.com/jonathan/cv-generator/internal/types"

// Built-in template identifiers.
const (
	BuiltInModern  = "modern"
	BuiltInClassic = "classic"
	BuiltInMinimal = "minimal"
)

// BuiltInTemplates returns the seeded read-only templates. Each carries the
// full default section list plus a style matched to its layout so it renders
// without further configuration.
func BuiltInTemplates() []types.Template {
	return []types.Template{
		{
			ID:          BuiltInModern,
			Name:        "Modern",
			Description: "Clean, modern design with sidebar for skills and contact info",
			Type:        types.TemplateTypeBuiltIn,
			Thumbnail:   "/templates/modern-thumb.png",
			Sections:    types.DefaultSections(),
			Styles: types.StyleConfig{
				FontFamily:   "Inter, sans-serif",
				HeadingStyle: "bold",
			},
		},
		{
			ID:          BuiltInClassic,
			Name:        "Classic",
			Description: "Traditional CV layout with header and section formatting",
			Type:        types.TemplateTypeBuiltIn,
			Thumbnail:   "/templates/classic-thumb.png",
			Sections:    types.DefaultSections(),
			Styles: types.StyleConfig{
				FontFamily:   "Georgia, serif",
				HeadingStyle: "underline",
				Border:       "bottom",
			},
		},
		{
			ID:          BuiltInMinimal,
			Name:        "Minimal",
			Description: "Simple, minimalist design focusing on content",
			Type:        types.TemplateTypeBuiltIn,
			Thumbnail:   "/templates/minimal-thumb.png",
			Sections:    types.DefaultSections(),
			Styles: types.StyleConfig{
				HeadingStyle:   "uppercase",
				SectionSpacing: "small",
			},
		},
	}
}
