package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"MILESTONES_BACK-END/internal/client"
	"MILESTONES_BACK-END/internal/client/state"
)

// app carries what every subcommand needs once flags and config are read.
type app struct {
	configDir string
	apiURL    string
	jsonOut   bool

	api   *client.Client
	store *state.Store
	out   io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "milestones",
		Short:         "Record and browse a child's milestones",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `milestones talks to a running milestones server.

The server URL comes from --api-url, then MILESTONES_API_URL, then
api_url in ~/.milestones/config.yaml, then http://localhost:8080.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", defaultConfigDir(), "configuration directory")
	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "milestones server URL")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "output as JSON")

	root.AddCommand(
		newHealthCmd(a),
		newProfileCmd(a),
		newListCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newPhotoCmd(a),
		newAgeCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()

	cfg, err := loadConfig(a.configDir)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("api-url"); f != nil {
		if err := cfg.BindPFlag(cfgKeyAPIURL, f); err != nil {
			return fmt.Errorf("bind api-url: %w", err)
		}
	}

	a.api = client.New(cfg.GetString(cfgKeyAPIURL), client.WithTimeout(cfg.GetDuration(cfgKeyTimeout)))
	a.store = state.NewStore()
	return nil
}
