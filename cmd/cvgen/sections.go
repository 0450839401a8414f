package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-generator/internal/plan"
	"github.com/jonathan/cv-generator/internal/types"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Edit a custom template's section list",
}

var sectionsReorderCmd = &cobra.Command{
	Use:   "reorder <template-id>",
	Short: "Move a section to a new position",
	Long:  "Moves the section at --from to --to and renumbers every section's order to its new positional index.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionsReorder,
}

var sectionsToggleCmd = &cobra.Command{
	Use:   "toggle <template-id> <section-id>",
	Short: "Enable or disable a section",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionsToggle,
}

var sectionsAddCmd = &cobra.Command{
	Use:   "add <template-id> <name>",
	Short: "Append a custom section",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionsAdd,
}

var sectionsRemoveCmd = &cobra.Command{
	Use:   "remove <template-id> <section-id>",
	Short: "Remove a custom section",
	Long:  "Removes a user-authored section. Built-in sections cannot be removed, only toggled or reordered.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionsRemove,
}

var (
	sectionsReorderFrom int
	sectionsReorderTo   int
)

func init() {
	sectionsReorderCmd.Flags().IntVar(&sectionsReorderFrom, "from", -1, "Current index of the section (required)")
	sectionsReorderCmd.Flags().IntVar(&sectionsReorderTo, "to", -1, "Target index (required)")
	_ = sectionsReorderCmd.MarkFlagRequired("from")
	_ = sectionsReorderCmd.MarkFlagRequired("to")

	sectionsCmd.AddCommand(sectionsReorderCmd, sectionsToggleCmd, sectionsAddCmd, sectionsRemoveCmd)
	rootCmd.AddCommand(sectionsCmd)
}

// updateSections loads a template, transforms its section list, and persists
// the result through the store's patch path.
func updateSections(templateID string, transform func([]types.Section) ([]types.Section, error)) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	template, err := store.Get(templateID)
	if err != nil {
		return err
	}
	sections, err := transform(template.Sections)
	if err != nil {
		return err
	}
	_, err = store.Update(templateID, types.TemplatePatch{Sections: sections})
	return err
}

func runSectionsReorder(_ *cobra.Command, args []string) error {
	return updateSections(args[0], func(sections []types.Section) ([]types.Section, error) {
		if sectionsReorderFrom < 0 || sectionsReorderFrom >= len(sections) ||
			sectionsReorderTo < 0 || sectionsReorderTo >= len(sections) {
			return nil, fmt.Errorf("indexes out of range: template has %d sections", len(sections))
		}
		return plan.Reorder(sections, sectionsReorderFrom, sectionsReorderTo), nil
	})
}

func runSectionsToggle(_ *cobra.Command, args []string) error {
	return updateSections(args[0], func(sections []types.Section) ([]types.Section, error) {
		for i := range sections {
			if sections[i].ID == args[1] {
				sections[i].Enabled = !sections[i].Enabled
				return sections, nil
			}
		}
		return nil, fmt.Errorf("section %s not found in template %s", args[1], args[0])
	})
}

func runSectionsAdd(_ *cobra.Command, args []string) error {
	return updateSections(args[0], func(sections []types.Section) ([]types.Section, error) {
		return append(sections, types.Section{
			ID:      "custom-" + uuid.NewString(),
			Name:    args[1],
			Enabled: true,
			Order:   len(sections),
			Custom:  true,
		}), nil
	})
}

func runSectionsRemove(_ *cobra.Command, args []string) error {
	return updateSections(args[0], func(sections []types.Section) ([]types.Section, error) {
		result := plan.RemoveCustom(sections, args[1])
		if len(result) == len(sections) {
			return nil, fmt.Errorf("section %s is not a removable custom section", args[1])
		}
		return result, nil
	})
}
