package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-generator/internal/export"
	"github.com/jonathan/cv-generator/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a CV as PDF and/or HTML",
	Long:  "Renders the CV and exports it as a paginated A4 PDF (via headless Chrome), a standalone HTML snapshot, or both. File names derive from the CV owner's name.",
	RunE:  runExport,
}

var (
	exportDataFile       string
	exportSelectionFile  string
	exportTemplateID     string
	exportVariant        string
	exportOutDir         string
	exportPDF            bool
	exportHTML           bool
	exportPrimaryColor   string
	exportSecondaryColor string
	exportFont           string
	exportLogo           string
)

func init() {
	exportCmd.Flags().StringVarP(&exportDataFile, "data", "d", "", "Path to CV content JSON file")
	exportCmd.Flags().StringVarP(&exportSelectionFile, "selection", "s", "", "Path to selection JSON file (default: everything selected)")
	exportCmd.Flags().StringVarP(&exportTemplateID, "template", "t", "modern", "Template ID")
	exportCmd.Flags().StringVar(&exportVariant, "variant", "", "Layout variant: modern, classic, minimal (default: follows template ID)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", "", "Directory export artifacts are written to (default .)")
	exportCmd.Flags().BoolVar(&exportPDF, "pdf", false, "Export a PDF")
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "Export an HTML snapshot")
	exportCmd.Flags().StringVar(&exportPrimaryColor, "primary-color", "", "Branding primary color override (hex)")
	exportCmd.Flags().StringVar(&exportSecondaryColor, "secondary-color", "", "Branding secondary color override (hex)")
	exportCmd.Flags().StringVar(&exportFont, "font", "", "Branding font override")
	exportCmd.Flags().StringVar(&exportLogo, "logo", "", "Branding logo reference")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	if !exportPDF && !exportHTML {
		return fmt.Errorf("nothing to export: pass --pdf, --html, or both")
	}

	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	branding := types.Branding{
		PrimaryColor:   exportPrimaryColor,
		SecondaryColor: exportSecondaryColor,
		Font:           exportFont,
		Logo:           exportLogo,
	}
	if branding.PrimaryColor == "" {
		branding.PrimaryColor = cfg.PrimaryColor
	}
	if branding.SecondaryColor == "" {
		branding.SecondaryColor = cfg.SecondaryColor
	}
	if branding.Font == "" {
		branding.Font = cfg.Font
	}
	if branding.Logo == "" {
		branding.Logo = cfg.Logo
	}

	doc, err := buildDocument(exportDataFile, exportSelectionFile, exportTemplateID, exportVariant, branding)
	if err != nil {
		return err
	}

	outDir := exportOutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rasterizer := export.NewChromeRasterizer()
	rasterizer.Timeout = time.Duration(cfg.BrowserTimeoutSecs) * time.Second
	pipeline := export.NewPipeline(rasterizer, export.FPDFEncoder{})

	// Each format works on the same immutable document tree; the two
	// exports share no mutable state, so they can run concurrently.
	group, ctx := errgroup.WithContext(context.Background())

	if exportPDF {
		group.Go(func() error {
			pdf, err := pipeline.ToPDF(ctx, doc)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, export.Filename(doc, "pdf"))
			if err := os.WriteFile(path, pdf, 0o600); err != nil {
				return fmt.Errorf("failed to write PDF: %w", err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		})
	}
	if exportHTML {
		group.Go(func() error {
			html, err := pipeline.ToHTML(doc)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, export.Filename(doc, "html"))
			if err := os.WriteFile(path, html, 0o600); err != nil {
				return fmt.Errorf("failed to write HTML: %w", err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		})
	}

	return group.Wait()
}
