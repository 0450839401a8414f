package templates

import "github.com/jonathan/cv-generator/internal/types"

// applyPatch merges the recognized patch fields into a copy of the stored
// template. Nil fields leave the stored value untouched.
func applyPatch(stored types.Template, patch types.TemplatePatch) types.Template {
	if patch.Name != nil {
		stored.Name = *patch.Name
	}
	if patch.Description != nil {
		stored.Description = *patch.Description
	}
	if patch.Thumbnail != nil {
		stored.Thumbnail = *patch.Thumbnail
	}
	if patch.Sections != nil {
		stored.Sections = append([]types.Section(nil), patch.Sections...)
	}
	if patch.Styles != nil {
		stored.Styles = *patch.Styles
	}
	return stored
}
