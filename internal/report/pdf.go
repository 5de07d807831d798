package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/mandolyte/mdtopdf"
)

// Families the mdtopdf stylers ask for. A UTF-8 font registered under these
// names replaces the cp1252 core fonts, which cannot draw Vietnamese.
var (
	pdfFontFamilies = []string{"Arial", "Courier"}
	pdfFontStyles   = []string{"", "B", "I", "BI"}
)

// ConvertMarkdownToPDF writes a PDF next to the markdown file and returns its absolute path.
// With an empty fontFile the core PDF fonts are used and only Latin-1 text renders correctly.
func ConvertMarkdownToPDF(markdownPath, fontFile string) (string, error) {
	if filepath.Ext(markdownPath) != ".md" {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if fontFile != "" {
		if err := useUTF8Font(renderer.Pdf, fontFile); err != nil {
			return "", err
		}
		renderer.Pdf.SetFont(renderer.Normal.Font, renderer.Normal.Style, renderer.Normal.Size)
	}
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

func useUTF8Font(pdf *fpdf.Fpdf, fontFile string) error {
	font, err := os.ReadFile(fontFile)
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s) > %w", fontFile, err)
	}
	for _, family := range pdfFontFamilies {
		for _, style := range pdfFontStyles {
			pdf.AddUTF8FontFromBytes(family, style, font)
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf.AddUTF8FontFromBytes(%s) > %w", fontFile, err)
	}
	// fpdf skips a font it cannot parse without recording an error.
	if pdf.GetFontDesc(pdfFontFamilies[0], "").Ascent == 0 {
		return fmt.Errorf("%s is not a TrueType font", fontFile)
	}
	return nil
}
