// Package style compiles a declarative StyleConfig into a concrete stylesheet
// scoped to the rendered document.
package style

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-generator/internal/types"
)

// Heading weight mapping. Anything other than bold/light gets medium weight.
const (
	weightBold   = "700"
	weightLight  = "300"
	weightMedium = "500"
)

// Compile converts a style configuration into stylesheet text. The output is
// deterministic: the same input always yields byte-identical text, and unset
// fields compile to their documented defaults rather than being omitted.
func Compile(config types.StyleConfig) string {
	s := config.WithDefaults()

	var buf strings.Builder

	fmt.Fprintf(&buf, `.cv-container {
  font-family: %s;
  font-size: %s;
  line-height: %s;
  color: %s;
  background-color: %s;
  max-width: 210mm;
  margin: 0 auto;
  padding: 20mm;
}
`, s.FontFamily, s.FontSize, s.LineHeight, s.TextColor, s.BackgroundColor)

	fmt.Fprintf(&buf, `
.cv-section {
  margin-bottom: %s;
`, sectionMargin(s.SectionSpacing))
	switch s.Border {
	case "bottom":
		fmt.Fprintf(&buf, "  border-bottom: 1px solid %s;\n  padding-bottom: 0.5rem;\n", s.SecondaryColor)
	case "all":
		fmt.Fprintf(&buf, "  border: 1px solid %s;\n  padding: 0.5rem;\n", s.SecondaryColor)
	}
	buf.WriteString("}\n")

	fmt.Fprintf(&buf, `
.cv-section-title {
  color: %s;
  margin-bottom: 1rem;
  font-weight: %s;
`, s.PrimaryColor, headingWeight(s.HeadingStyle))
	if s.HeadingStyle == "uppercase" {
		buf.WriteString("  text-transform: uppercase;\n")
	}
	if s.HeadingStyle == "underline" {
		fmt.Fprintf(&buf, "  border-bottom: 2px solid %s;\n  padding-bottom: 0.5rem;\n", s.PrimaryColor)
	}
	buf.WriteString("}\n")

	return buf.String()
}

// sectionMargin maps the spacing keyword to vertical margin between sections.
func sectionMargin(spacing string) string {
	switch spacing {
	case "small":
		return "1rem"
	case "large":
		return "3rem"
	default:
		return "2rem"
	}
}

// headingWeight maps the heading style keyword to a font weight.
// Uppercase and underline keep the medium default weight.
func headingWeight(headingStyle string) string {
	switch headingStyle {
	case "bold":
		return weightBold
	case "light":
		return weightLight
	default:
		return weightMedium
	}
}
