package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-generator/internal/types"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the template catalogue",
	Long:  "List, inspect, author, clone, delete, export, and import CV templates. Built-in templates are read-only.",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all templates",
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a template as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a custom template",
	RunE:  runTemplateCreate,
}

var templateCloneCmd = &cobra.Command{
	Use:   "clone <id>",
	Short: "Clone a template into a new custom template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateClone,
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateDelete,
}

var templateExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a template to JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateExport,
}

var templateImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a template from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateImport,
}

var (
	templateCreateName        string
	templateCreateDescription string
	templateCloneName         string
	templateExportOut         string
)

func init() {
	templateCreateCmd.Flags().StringVarP(&templateCreateName, "name", "n", "", "Template name (required)")
	templateCreateCmd.Flags().StringVarP(&templateCreateDescription, "description", "d", "", "Template description")
	_ = templateCreateCmd.MarkFlagRequired("name")

	templateCloneCmd.Flags().StringVarP(&templateCloneName, "name", "n", "", "Name for the clone (default \"Copy of <original>\")")

	templateExportCmd.Flags().StringVarP(&templateExportOut, "out", "o", "", "Path to write the exported JSON (default stdout)")

	templateCmd.AddCommand(templateListCmd, templateShowCmd, templateCreateCmd,
		templateCloneCmd, templateDeleteCmd, templateExportCmd, templateImportCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateList(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	catalogue, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tDESCRIPTION")
	for _, t := range catalogue {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Type, t.Description)
	}
	return w.Flush()
}

func runTemplateShow(_ *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	template, err := store.Get(args[0])
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runTemplateCreate(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	created, err := store.Create(types.Template{
		Name:        templateCreateName,
		Description: templateCreateDescription,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created template %s (%s)\n", created.Name, created.ID)
	return nil
}

func runTemplateClone(_ *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	clone, err := store.Clone(args[0], templateCloneName)
	if err != nil {
		return err
	}
	fmt.Printf("Cloned %s into %s (%s)\n", args[0], clone.Name, clone.ID)
	return nil
}

func runTemplateDelete(_ *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted template %s\n", args[0])
	return nil
}

func runTemplateExport(_ *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	out, err := store.ExportOne(args[0])
	if err != nil {
		return err
	}
	if templateExportOut == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(templateExportOut, out, 0o600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("Exported template %s to %s\n", args[0], templateExportOut)
	return nil
}

func runTemplateImport(_ *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	imported, err := store.Import(payload)
	if err != nil {
		return err
	}
	fmt.Printf("Imported template %s (%s)\n", imported.Name, imported.ID)
	return nil
}
