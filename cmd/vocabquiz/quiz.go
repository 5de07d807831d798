package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocabquiz/vocabquiz/internal/cli"
	"github.com/vocabquiz/vocabquiz/internal/quiz"
	"github.com/vocabquiz/vocabquiz/internal/report"
)

func newQuizCommand() *cobra.Command {
	var (
		export  bool
		withPDF bool
	)
	command := &cobra.Command{
		Use:   "quiz <day>",
		Short: "Take the typing and matching tests of a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(env *commandEnv) error {
				day, err := findDay(cmd.Context(), env.store, args[0])
				if err != nil {
					return err
				}
				entries, err := env.store.GetVocabulary(cmd.Context(), day.ID)
				if err != nil {
					return fmt.Errorf("store.GetVocabulary() > %w", err)
				}

				session, err := quiz.NewSession(entries, sessionOptions(env.cfg.Quiz), quiz.NewRand(env.cfg.Quiz.Seed))
				if err != nil {
					return fmt.Errorf("quiz.NewSession() > %w", err)
				}

				vocabQuizCLI := cli.NewVocabQuizCLI(day.Name, session, cmd.InOrStdin(), cmd.OutOrStdout())
				if export || withPDF {
					tmpl, err := report.ParseReportTemplate(env.cfg.Templates.ReportTemplate)
					if err != nil {
						return fmt.Errorf("report.ParseReportTemplate() > %w", err)
					}
					exporter := report.NewExporter(tmpl, env.cfg.Outputs.ReportDirectory).WithPDFFont(env.cfg.Outputs.PDFFontFile)
					vocabQuizCLI.WithExporter(exporter, withPDF)
				}
				return vocabQuizCLI.Run(cmd.Context(), vocabQuizCLI)
			})
		},
	}
	command.Flags().BoolVar(&export, "export", false, "Export the results as markdown to the report directory")
	command.Flags().BoolVar(&withPDF, "pdf", false, "Also convert the exported results to PDF")
	return command
}
