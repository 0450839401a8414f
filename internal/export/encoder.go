package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Document is an open paginated document being assembled by an Encoder.
type Document interface {
	// AddPage appends a page; subsequent EmbedImage calls draw on it.
	AddPage()
	// EmbedImage draws PNG bytes on the current page at the given position
	// and size in millimeters.
	EmbedImage(img []byte, x, y, w, h float64) error
	// Save finalizes the document and returns its bytes.
	Save() ([]byte, error)
}

// Encoder creates paginated documents for a page format.
type Encoder interface {
	NewDocument(pageFormat string) Document
}

// FPDFEncoder encodes documents with gofpdf.
type FPDFEncoder struct{}

// NewDocument implements Encoder.
func (FPDFEncoder) NewDocument(pageFormat string) Document {
	pdf := gofpdf.New("P", "mm", pageFormat, "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &fpdfDocument{pdf: pdf}
}

type fpdfDocument struct {
	pdf        *gofpdf.Fpdf
	images     int
	registered map[[sha256.Size]byte]string
}

func (d *fpdfDocument) AddPage() {
	d.pdf.AddPage()
}

func (d *fpdfDocument) EmbedImage(img []byte, x, y, w, h float64) error {
	if len(img) == 0 {
		return fmt.Errorf("empty image")
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	// A bitmap drawn on several pages is registered once, keyed by content.
	if d.registered == nil {
		d.registered = make(map[[sha256.Size]byte]string)
	}
	key := sha256.Sum256(img)
	name, ok := d.registered[key]
	if !ok {
		d.images++
		name = fmt.Sprintf("img%d", d.images)
		d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
		d.registered[key] = name
	}
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if err := d.pdf.Error(); err != nil {
		return err
	}
	return nil
}

func (d *fpdfDocument) Save() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compile-time interface checks
var (
	_ Encoder  = FPDFEncoder{}
	_ Document = (*fpdfDocument)(nil)
)
