package export

import (
	"context"
	"math"

	"github.com/jonathan/cv-generator/internal/render"
)

// A4 portrait page dimensions in millimeters.
const (
	A4WidthMM  = 210.0
	A4HeightMM = 297.0
)

// Pipeline produces export artifacts from rendered document trees. The two
// delegated steps (rasterize, encode) run sequentially; each export call
// operates on its own tree snapshot, so concurrent exports share nothing
// mutable.
type Pipeline struct {
	rasterizer Rasterizer
	encoder    Encoder
}

// NewPipeline creates a pipeline over the given rasterizer and encoder.
func NewPipeline(rasterizer Rasterizer, encoder Encoder) *Pipeline {
	return &Pipeline{rasterizer: rasterizer, encoder: encoder}
}

// ToPDF serializes the document tree, rasterizes it at the fixed page width,
// and embeds the bitmap full-bleed across as many A4 portrait pages as its
// aspect ratio requires. Failure of either delegated step is reported once
// and leaves no partial output behind.
func (p *Pipeline) ToPDF(ctx context.Context, doc *render.Document) ([]byte, error) {
	html, err := render.HTML(doc)
	if err != nil {
		return nil, err
	}

	img, width, height, err := p.rasterizer.Render(ctx, html)
	if err != nil {
		return nil, &ExportFailedError{Stage: "rasterize", Cause: err}
	}
	if width <= 0 || height <= 0 {
		return nil, &ExportFailedError{Stage: "rasterize", Cause: errEmptyBitmap}
	}

	// Scale the bitmap to the page width; its height in page units follows
	// from the aspect ratio.
	imageHeightMM := A4WidthMM * float64(height) / float64(width)
	pages := int(math.Ceil(imageHeightMM / A4HeightMM))
	if pages < 1 {
		pages = 1
	}

	document := p.encoder.NewDocument("A4")
	for page := 0; page < pages; page++ {
		document.AddPage()
		if err := document.EmbedImage(img, 0, -float64(page)*A4HeightMM, A4WidthMM, imageHeightMM); err != nil {
			return nil, &ExportFailedError{Stage: "encode", Cause: err}
		}
	}

	out, err := document.Save()
	if err != nil {
		return nil, &ExportFailedError{Stage: "encode", Cause: err}
	}
	return out, nil
}

// ToHTML serializes the document tree and its stylesheet into one
// self-contained static markup snapshot.
func (p *Pipeline) ToHTML(doc *render.Document) ([]byte, error) {
	html, err := render.HTML(doc)
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

// Filename derives the export file name from the CV owner's name.
func Filename(doc *render.Document, ext string) string {
	return doc.FileBase + "." + ext
}
