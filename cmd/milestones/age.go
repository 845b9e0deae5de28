package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"MILESTONES_BACK-END/internal/agecalc"
)

func newAgeCmd(a *app) *cobra.Command {
	var birthday, on string

	cmd := &cobra.Command{
		Use:   "age",
		Short: "Compute an age without touching the server",
		Long: `Age prints the years/months/days between a birthday and a date,
the same way ageAtEvent is computed for new achievements.

Example:
  milestones age --birthday 2023-01-15 --on 2024-03-10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if on == "" {
				on = time.Now().Format(time.DateOnly)
			}
			age, err := agecalc.Compute(birthday, on)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return printJSON(a.out, age)
			}
			fmt.Fprintln(a.out, age)
			return nil
		},
	}
	cmd.Flags().StringVar(&birthday, "birthday", "", "birth date as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&on, "on", "", "date to measure at (default: today)")
	_ = cmd.MarkFlagRequired("birthday")
	return cmd
}
