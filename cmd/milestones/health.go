package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the server and its database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.api.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check: %w", err)
			}
			if a.jsonOut {
				return printJSON(a.out, h)
			}
			fmt.Fprintf(a.out, "Status:   %s\n", h.Status)
			if h.Postgres != "" {
				fmt.Fprintf(a.out, "Postgres: %s\n", h.Postgres)
			}
			if h.Error != "" {
				fmt.Fprintf(a.out, "Error:    %s\n", h.Error)
			}
			if h.Status != "UP" {
				return fmt.Errorf("server is %s", h.Status)
			}
			return nil
		},
	}
}
