// Package report exports the results of a finished quiz session as Markdown and PDF.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
	"unicode"

	"github.com/vocabquiz/vocabquiz/internal/quiz"
)

// Data is what the report template renders.
type Data struct {
	DayName     string
	GeneratedAt time.Time
	Report      quiz.Report
}

func WriteMarkdown(w io.Writer, tmpl *template.Template, data Data) error {
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

type Exporter struct {
	template  *template.Template
	directory string
	pdfFont   string
}

func NewExporter(tmpl *template.Template, directory string) *Exporter {
	return &Exporter{
		template:  tmpl,
		directory: directory,
	}
}

// WithPDFFont renders PDFs with the TrueType font at fontFile, so text outside Latin-1 is drawn.
func (e *Exporter) WithPDFFont(fontFile string) *Exporter {
	e.pdfFont = fontFile
	return e
}

// Export writes the report of data into the export directory and returns the written paths.
// The PDF is rendered from the Markdown file when withPDF is set.
func (e *Exporter) Export(data Data, withPDF bool) ([]string, error) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, e.template, data); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.directory, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", e.directory, err)
	}
	markdownPath := filepath.Join(e.directory, fileName(data))
	if err := os.WriteFile(markdownPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	paths := []string{markdownPath}

	if withPDF {
		pdfPath, err := ConvertMarkdownToPDF(markdownPath, e.pdfFont)
		if err != nil {
			return paths, fmt.Errorf("ConvertMarkdownToPDF() > %w", err)
		}
		paths = append(paths, pdfPath)
	}
	return paths, nil
}

func fileName(data Data) string {
	slug := "quiz"
	if name := slugify(data.DayName); name != "" {
		slug = name
	}
	return fmt.Sprintf("%s-%s.md", slug, data.GeneratedAt.Format("20060102-150405"))
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
