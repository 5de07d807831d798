package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

func newVocabCommand() *cobra.Command {
	vocabCommand := &cobra.Command{
		Use:   "vocab",
		Short: "Manage the vocabulary of a day",
	}

	vocabCommand.AddCommand(
		&cobra.Command{
			Use:   "list <day>",
			Short: "List the vocabulary of a day with pronunciation links",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(env *commandEnv) error {
					day, err := findDay(cmd.Context(), env.store, args[0])
					if err != nil {
						return err
					}
					if len(day.Vocabulary) == 0 {
						printf(cmd, "%s has no words yet\n", day.Name)
						return nil
					}

					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					_, _ = fmt.Fprintln(w, "ID\tENGLISH\tVIETNAMESE\tPRONUNCIATION")
					for _, entry := range day.Vocabulary {
						_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
							entry.ID, entry.English, entry.Vietnamese, vocabulary.PronunciationURL(entry.English))
					}
					return w.Flush()
				})
			},
		},
		&cobra.Command{
			Use:   "add <day> <english> <vietnamese>",
			Short: "Add a word to a day",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(env *commandEnv) error {
					day, err := findDay(cmd.Context(), env.store, args[0])
					if err != nil {
						return err
					}
					entry, err := env.store.AddEntry(cmd.Context(), day.ID, args[1], args[2])
					if err != nil {
						return fmt.Errorf("store.AddEntry() > %w", err)
					}
					printf(cmd, "Added %s = %s (%s)\n", entry.English, entry.Vietnamese, entry.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "edit <day> <id> <english> <vietnamese>",
			Short: "Edit a word of a day",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(env *commandEnv) error {
					day, err := findDay(cmd.Context(), env.store, args[0])
					if err != nil {
						return err
					}
					entry := vocabulary.Entry{ID: args[1], English: args[2], Vietnamese: args[3]}
					if err := env.store.UpdateEntry(cmd.Context(), day.ID, entry); err != nil {
						return fmt.Errorf("store.UpdateEntry() > %w", err)
					}
					printf(cmd, "Updated %s\n", entry.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete <day> <id>",
			Short: "Delete a word from a day",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(env *commandEnv) error {
					day, err := findDay(cmd.Context(), env.store, args[0])
					if err != nil {
						return err
					}
					if err := env.store.DeleteEntry(cmd.Context(), day.ID, args[1]); err != nil {
						return fmt.Errorf("store.DeleteEntry() > %w", err)
					}
					printf(cmd, "Deleted %s\n", args[1])
					return nil
				})
			},
		},
	)
	return vocabCommand
}
