package report

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

const fallbackTemplateName = "report.md.go.tmpl"

//go:embed templates/report.md.go.tmpl
var fallbackReportTemplate string

var funcMap = template.FuncMap{
	"pronunciation": vocabulary.PronunciationURL,
}

// ParseReportTemplate parses the template at templatePath, or the embedded one
// when templatePath is empty or cannot be parsed.
func ParseReportTemplate(templatePath string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackTemplateName).
		Funcs(funcMap).
		Parse(fallbackReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
