package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"MILESTONES_BACK-END/internal/client/state"
	"MILESTONES_BACK-END/internal/dto"
)

var errNoProfile = errors.New("no profile saved yet; run 'milestones profile set' first")

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the child's profile",
	}
	cmd.AddCommand(newProfileGetCmd(a), newProfileSetCmd(a))
	return cmd
}

func newProfileGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profile(cmd)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return printJSON(a.out, p)
			}
			printProfile(a.out, p)
			return nil
		},
	}
}

func newProfileSetCmd(a *app) *cobra.Command {
	var req dto.ProfileRequest

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace the profile",
		Long: `Set saves the child's profile. All three fields are required.

Example:
  milestones profile set --nickname Mochi --gender female --birthday 2023-01-15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := state.SaveProfile(cmd.Context(), a.store, a.api, req)
			if err != nil {
				return fmt.Errorf("save profile: %w", err)
			}
			if a.jsonOut {
				return printJSON(a.out, p)
			}
			printProfile(a.out, p)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Nickname, "nickname", "", "child's nickname (required)")
	cmd.Flags().StringVar(&req.Gender, "gender", "", "male, female or other (required)")
	cmd.Flags().StringVar(&req.Birthday, "birthday", "", "birthday as YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("nickname")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("birthday")
	return cmd
}

// profile loads the profile through the store, turning "none yet" into
// errNoProfile.
func (a *app) profile(cmd *cobra.Command) (dto.ProfileResponse, error) {
	if err := state.FetchProfile(cmd.Context(), a.store, a.api); err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("fetch profile: %w", err)
	}
	p := a.store.State().Profile.Profile
	if p == nil {
		return dto.ProfileResponse{}, errNoProfile
	}
	return *p, nil
}
