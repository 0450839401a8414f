package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-generator/internal/render"
	"github.com/jonathan/cv-generator/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV to HTML",
	Long:  "Combines CV content (filtered by an optional selection), a template, and branding overrides into an HTML document.",
	RunE:  runRender,
}

var (
	renderDataFile      string
	renderSelectionFile string
	renderTemplateID    string
	renderVariant       string
	renderOutFile       string
)

func init() {
	renderCmd.Flags().StringVarP(&renderDataFile, "data", "d", "", "Path to CV content JSON file")
	renderCmd.Flags().StringVarP(&renderSelectionFile, "selection", "s", "", "Path to selection JSON file (default: everything selected)")
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", "modern", "Template ID")
	renderCmd.Flags().StringVar(&renderVariant, "variant", "", "Layout variant: modern, classic, minimal (default: follows template ID)")
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "", "Path to output HTML file (default stdout)")

	rootCmd.AddCommand(renderCmd)
}

// buildDocument resolves everything a render needs and builds the tree.
func buildDocument(dataFile, selectionFile, templateID, variantName string, branding types.Branding) (*render.Document, error) {
	cfg, err := loadCLIConfig()
	if err != nil {
		return nil, err
	}
	if dataFile == "" {
		dataFile = cfg.DataFile
	}
	data, err := loadCVData(dataFile)
	if err != nil {
		return nil, err
	}
	selection, err := loadSelection(selectionFile, data)
	if err != nil {
		return nil, err
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	template, err := store.Get(templateID)
	if err != nil {
		return nil, err
	}

	// The layout variant defaults to the template ID so the built-ins pick
	// their matching arrangement.
	if variantName == "" {
		variantName = templateID
	}
	return render.Build(data, selection, template, render.ParseVariant(variantName), branding)
}

func runRender(_ *cobra.Command, _ []string) error {
	doc, err := buildDocument(renderDataFile, renderSelectionFile, renderTemplateID, renderVariant, types.Branding{})
	if err != nil {
		return err
	}

	if renderOutFile == "" {
		return render.WriteHTML(doc, os.Stdout)
	}
	f, err := os.Create(renderOutFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := render.WriteHTML(doc, f); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", renderOutFile)
	return nil
}
