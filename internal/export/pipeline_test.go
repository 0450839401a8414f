package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-generator/internal/render"
	"github.com/jonathan/cv-generator/internal/templates"
	"github.com/jonathan/cv-generator/internal/types"
)

// fakeRasterizer returns fixed bitmap dimensions, or an error.
type fakeRasterizer struct {
	img    []byte
	width  int
	height int
	err    error

	gotHTML string
}

func (f *fakeRasterizer) Render(_ context.Context, html string) ([]byte, int, int, error) {
	f.gotHTML = html
	if f.err != nil {
		return nil, 0, 0, f.err
	}
	return f.img, f.width, f.height, nil
}

// recordingEncoder captures page and image placement calls.
type recordingEncoder struct {
	doc *recordingDocument
}

func (e *recordingEncoder) NewDocument(pageFormat string) Document {
	e.doc = &recordingDocument{format: pageFormat}
	return e.doc
}

type placement struct {
	x, y, w, h float64
}

type recordingDocument struct {
	format     string
	pages      int
	placements []placement
	embedErr   error
	saveErr    error
}

func (d *recordingDocument) AddPage() { d.pages++ }

func (d *recordingDocument) EmbedImage(_ []byte, x, y, w, h float64) error {
	if d.embedErr != nil {
		return d.embedErr
	}
	d.placements = append(d.placements, placement{x, y, w, h})
	return nil
}

func (d *recordingDocument) Save() ([]byte, error) {
	if d.saveErr != nil {
		return nil, d.saveErr
	}
	return []byte("%PDF-fake"), nil
}

func testDocument(t *testing.T) *render.Document {
	t.Helper()
	data := &types.CVData{
		PersonalInfo: types.PersonalInfo{FirstName: "Ada", LastName: "Lovelace"},
		Skills:       []types.Skill{{ID: "s1", Name: "Go"}},
	}
	catalogue := templates.BuiltInTemplates()
	doc, err := render.Build(data, types.SelectAll(data), &catalogue[0], render.VariantModern, types.Branding{})
	require.NoError(t, err)
	return doc
}

func TestToPDF_SinglePage(t *testing.T) {
	rasterizer := &fakeRasterizer{img: []byte("png"), width: 794, height: 794}
	encoder := &recordingEncoder{}
	pipeline := NewPipeline(rasterizer, encoder)

	out, err := pipeline.ToPDF(context.Background(), testDocument(t))
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	assert.Equal(t, "A4", encoder.doc.format)
	require.Equal(t, 1, encoder.doc.pages)
	require.Len(t, encoder.doc.placements, 1)
	p := encoder.doc.placements[0]
	assert.Equal(t, 0.0, p.x)
	assert.Equal(t, 0.0, p.y)
	assert.Equal(t, A4WidthMM, p.w)
	assert.InDelta(t, 210.0, p.h, 0.001, "square bitmap scales to a 210mm square")
	assert.Contains(t, rasterizer.gotHTML, "Ada Lovelace")
}

func TestToPDF_TallBitmapSpansPages(t *testing.T) {
	// Three page-widths of height: 794x2382 px scales to 210x630 mm, which
	// needs three 297mm pages.
	rasterizer := &fakeRasterizer{img: []byte("png"), width: 794, height: 2382}
	encoder := &recordingEncoder{}
	pipeline := NewPipeline(rasterizer, encoder)

	_, err := pipeline.ToPDF(context.Background(), testDocument(t))
	require.NoError(t, err)

	require.Equal(t, 3, encoder.doc.pages)
	require.Len(t, encoder.doc.placements, 3)
	for page, p := range encoder.doc.placements {
		assert.InDelta(t, -float64(page)*A4HeightMM, p.y, 0.001, "page %d offset", page)
		assert.Equal(t, A4WidthMM, p.w)
		assert.InDelta(t, 630.0, p.h, 0.001)
	}
}

func TestToPDF_RasterizerFailure(t *testing.T) {
	cause := errors.New("browser crashed")
	pipeline := NewPipeline(&fakeRasterizer{err: cause}, &recordingEncoder{})

	_, err := pipeline.ToPDF(context.Background(), testDocument(t))

	var exportErr *ExportFailedError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "rasterize", exportErr.Stage)
	assert.ErrorIs(t, err, cause)
}

func TestToPDF_EmptyBitmap(t *testing.T) {
	pipeline := NewPipeline(&fakeRasterizer{img: []byte("png"), width: 0, height: 0}, &recordingEncoder{})

	_, err := pipeline.ToPDF(context.Background(), testDocument(t))

	var exportErr *ExportFailedError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "rasterize", exportErr.Stage)
}

func TestToPDF_EncoderFailure(t *testing.T) {
	encoder := &recordingEncoder{}
	pipeline := NewPipeline(&fakeRasterizer{img: []byte("png"), width: 794, height: 794}, encoderWithEmbedError{encoder})

	_, err := pipeline.ToPDF(context.Background(), testDocument(t))

	var exportErr *ExportFailedError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "encode", exportErr.Stage)
}

type encoderWithEmbedError struct {
	inner *recordingEncoder
}

func (e encoderWithEmbedError) NewDocument(pageFormat string) Document {
	doc := e.inner.NewDocument(pageFormat).(*recordingDocument)
	doc.embedErr = errors.New("bad image data")
	return doc
}

func TestToHTML_StandaloneSnapshot(t *testing.T) {
	pipeline := NewPipeline(&fakeRasterizer{}, &recordingEncoder{})
	doc := testDocument(t)

	out, err := pipeline.ToHTML(doc)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, ".cv-container")
	assert.Contains(t, html, "Ada Lovelace")
}

func TestFilename(t *testing.T) {
	doc := testDocument(t)

	assert.Equal(t, "Ada_Lovelace_CV.pdf", Filename(doc, "pdf"))
	assert.Equal(t, "Ada_Lovelace_CV.html", Filename(doc, "html"))
}

// encodePNG builds a small real bitmap for exercising the gofpdf encoder.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFPDFEncoder_ProducesPDFBytes(t *testing.T) {
	bitmap := encodePNG(t, 10, 10)

	doc := FPDFEncoder{}.NewDocument("A4")
	doc.AddPage()
	require.NoError(t, doc.EmbedImage(bitmap, 0, 0, A4WidthMM, A4WidthMM))
	doc.AddPage()
	require.NoError(t, doc.EmbedImage(bitmap, 0, -A4HeightMM, A4WidthMM, A4WidthMM))

	out, err := doc.Save()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF document")
}

func TestFPDFEncoder_RegistersEqualBitmapsOnce(t *testing.T) {
	bitmap := encodePNG(t, 10, 10)
	distinctCopy := append([]byte(nil), bitmap...)

	doc := FPDFEncoder{}.NewDocument("A4").(*fpdfDocument)
	doc.AddPage()
	require.NoError(t, doc.EmbedImage(bitmap, 0, 0, A4WidthMM, A4WidthMM))
	doc.AddPage()
	require.NoError(t, doc.EmbedImage(distinctCopy, 0, -A4HeightMM, A4WidthMM, A4WidthMM))

	assert.Equal(t, 1, doc.images, "identical content in a different slice reuses the registration")

	other := encodePNG(t, 20, 20)
	doc.AddPage()
	require.NoError(t, doc.EmbedImage(other, 0, 0, A4WidthMM, A4WidthMM))
	assert.Equal(t, 2, doc.images)
}

func TestFPDFEncoder_RejectsEmptyImage(t *testing.T) {
	doc := FPDFEncoder{}.NewDocument("A4")
	doc.AddPage()

	assert.Error(t, doc.EmbedImage(nil, 0, 0, A4WidthMM, A4WidthMM))
}
