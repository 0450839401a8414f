package render

import (
	"embed"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.tmpl
var layoutFiles embed.FS

// layouts holds the parsed layout templates, shared across renders.
// Parsing happens once; the files are embedded and known-good.
var layouts = template.Must(template.New("layouts").Funcs(template.FuncMap{
	"formatDate": FormatDate,
	"dateRange":  FormatDateRange,
	"join":       strings.Join,
	"css":        func(s string) template.CSS { return template.CSS(s) },
}).ParseFS(layoutFiles, "templates/*.tmpl"))

// WriteHTML serializes the document tree as a standalone HTML document using
// the template for its layout variant.
func WriteHTML(doc *Document, w io.Writer) error {
	name := "doc_" + string(doc.Variant)
	if err := layouts.ExecuteTemplate(w, name, doc); err != nil {
		return &TemplateError{Message: "failed to execute layout " + name, Cause: err}
	}
	return nil
}

// HTML returns the serialized document as a string.
func HTML(doc *Document) (string, error) {
	var sb strings.Builder
	if err := WriteHTML(doc, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
