package export

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// PageWidthPx is the fixed rasterization width: 210mm at 96dpi.
const PageWidthPx = 794

// DefaultBrowserTimeout bounds a single rasterization.
const DefaultBrowserTimeout = 30 * time.Second

// Rasterizer converts a markup document into a bitmap. Implementations must
// be deterministic for identical input.
type Rasterizer interface {
	Render(ctx context.Context, html string) (img []byte, width, height int, err error)
}

// ChromeRasterizer renders HTML in headless Chrome and captures a full-page
// PNG at the fixed page width. Requires Chrome/Chromium on the system.
type ChromeRasterizer struct {
	Timeout time.Duration
}

// NewChromeRasterizer creates a rasterizer with the default timeout.
func NewChromeRasterizer() *ChromeRasterizer {
	return &ChromeRasterizer{Timeout: DefaultBrowserTimeout}
}

// Render implements Rasterizer.
func (r *ChromeRasterizer) Render(ctx context.Context, html string) ([]byte, int, int, error) {
	// Chrome reads the document from a file URL; data URLs hit length limits
	// for real CVs.
	tmpDir, err := os.MkdirTemp("", "cvgen-*")
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "cv.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to write temp HTML: %w", err)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("hide-scrollbars", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var shot []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(PageWidthPx, 0),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("browser rendering failed: %w", err)
	}

	config, err := png.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read screenshot dimensions: %w", err)
	}
	return shot, config.Width, config.Height, nil
}

// Compile-time interface check
var _ Rasterizer = (*ChromeRasterizer)(nil)
