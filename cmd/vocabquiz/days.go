package main

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDaysCommand() *cobra.Command {
	daysCommand := &cobra.Command{
		Use:   "days",
		Short: "Manage the days vocabulary is grouped by",
	}

	daysCommand.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List days",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(env *commandEnv) error {
					days, err := env.store.ListDays(cmd.Context())
					if err != nil {
						return fmt.Errorf("store.ListDays() > %w", err)
					}
					if len(days) == 0 {
						printf(cmd, "No days yet. Add one with: vocabquiz days add <name>\n")
						return nil
					}

					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					_, _ = fmt.Fprintln(w, "ID\tNAME\tWORDS\tCREATED")
					for _, day := range days {
						_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", day.ID, day.Name, len(day.Vocabulary), day.CreatedAt.Local().Format("2006-01-02"))
					}
					return w.Flush()
				})
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Add a day",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(env *commandEnv) error {
					day, err := env.store.CreateDay(cmd.Context(), args[0])
					if err != nil {
						return fmt.Errorf("store.CreateDay() > %w", err)
					}
					printf(cmd, "Added %s (%s)\n", day.Name, day.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rename <day> <name>",
			Short: "Rename a day",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(env *commandEnv) error {
					day, err := findDay(cmd.Context(), env.store, args[0])
					if err != nil {
						return err
					}
					if err := env.store.RenameDay(cmd.Context(), day.ID, args[1]); err != nil {
						return fmt.Errorf("store.RenameDay() > %w", err)
					}
					printf(cmd, "Renamed %s to %s\n", day.Name, strings.TrimSpace(args[1]))
					return nil
				})
			},
		},
		newDaysDeleteCommand(),
	)
	return daysCommand
}

func newDaysDeleteCommand() *cobra.Command {
	var yes bool
	command := &cobra.Command{
		Use:   "delete <day>",
		Short: "Delete a day and its vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(env *commandEnv) error {
				day, err := findDay(cmd.Context(), env.store, args[0])
				if err != nil {
					return err
				}
				if !yes {
					printf(cmd, "Delete %s and its %d words? [y/N]: ", day.Name, len(day.Vocabulary))
					answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
					if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
						printf(cmd, "Canceled\n")
						return nil
					}
				}
				if err := env.store.DeleteDay(cmd.Context(), day.ID); err != nil {
					return fmt.Errorf("store.DeleteDay() > %w", err)
				}
				printf(cmd, "Deleted %s\n", day.Name)
				return nil
			})
		},
	}
	command.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without confirmation")
	return command
}
