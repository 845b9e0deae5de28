package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"MILESTONES_BACK-END/internal/agecalc"
	"MILESTONES_BACK-END/internal/client/state"
	"MILESTONES_BACK-END/internal/dto"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List achievements, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.FetchAchievements(cmd.Context(), a.store, a.api); err != nil {
				return fmt.Errorf("list achievements: %w", err)
			}
			items := a.store.State().Achievements.Items
			if a.jsonOut {
				return printJSON(a.out, items)
			}
			printAchievementTable(a.out, items)
			return nil
		},
	}
}

// achievementFlags are shared by add and edit.
type achievementFlags struct {
	date        string
	title       string
	description string
	tags        string
	photoURL    string
}

func (f *achievementFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "event date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&f.title, "title", "", "short title")
	cmd.Flags().StringVar(&f.description, "description", "", "longer description")
	cmd.Flags().StringVar(&f.tags, "tags", "", "comma-separated tags")
	cmd.Flags().StringVar(&f.photoURL, "photo-url", "", "URL of an already hosted photo")
}

func newAddCmd(a *app) *cobra.Command {
	var f achievementFlags
	var photo string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new achievement",
		Long: `Add records an achievement. The child's age at the event is computed
from the saved profile's birthday.

Example:
  milestones add --title "First steps" --date 2024-03-10 --tags walking,first
  milestones add --title "Beach day" --photo ./beach.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.date == "" {
				f.date = time.Now().Format(time.DateOnly)
			}
			age, err := a.ageAt(cmd, f.date)
			if err != nil {
				return err
			}

			req := dto.AchievementRequest{
				Date:       f.date,
				Title:      f.title,
				AgeAtEvent: ageRequest(age),
				Tags:       dto.ParseTags(f.tags),
			}
			if f.description != "" {
				req.Description = &f.description
			}
			if f.photoURL != "" {
				req.PhotoURL = &f.photoURL
			}

			created, err := state.AddAchievement(cmd.Context(), a.store, a.api, req)
			if err != nil {
				return fmt.Errorf("create achievement: %w", err)
			}
			if photo != "" {
				created, err = a.attach(cmd, created.ID, photo)
				if err != nil {
					return err
				}
			}
			return a.showAchievement(created)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&photo, "photo", "", "image file to upload after creating")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var f achievementFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an achievement",
		Long: `Edit replaces an achievement with its current values overlaid by the
flags given. Changing --date recomputes the age from the profile.

Example:
  milestones edit 5f0c9a1e --title "First steps alone"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			cur, err := a.api.GetAchievement(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get achievement: %w", err)
			}

			req := dto.AchievementRequest{
				Date:        cur.Date,
				Title:       cur.Title,
				Description: cur.Description,
				Tags:        cur.Tags,
				PhotoURL:    cur.Photo,
			}
			if cur.AgeAtEvent != nil {
				req.AgeAtEvent = ageRequest(*cur.AgeAtEvent)
			}

			flags := cmd.Flags()
			if flags.Changed("date") {
				req.Date = f.date
			}
			if flags.Changed("date") || req.AgeAtEvent == nil {
				age, err := a.ageAt(cmd, req.Date)
				if err != nil {
					return err
				}
				req.AgeAtEvent = ageRequest(age)
			}
			if flags.Changed("title") {
				req.Title = f.title
			}
			if flags.Changed("description") {
				req.Description = &f.description
			}
			if flags.Changed("tags") {
				req.Tags = dto.ParseTags(f.tags)
			}
			if flags.Changed("photo-url") {
				req.PhotoURL = &f.photoURL
			}

			updated, err := state.EditAchievement(cmd.Context(), a.store, a.api, id, req)
			if err != nil {
				return fmt.Errorf("update achievement: %w", err)
			}
			return a.showAchievement(updated)
		},
	}
	f.register(cmd)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an achievement and its photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := state.RemoveAchievement(cmd.Context(), a.store, a.api, id); err != nil {
				return fmt.Errorf("delete achievement: %w", err)
			}
			if a.jsonOut {
				return printJSON(a.out, dto.DeleteResponse{Message: "Achievement deleted successfully", ID: id})
			}
			fmt.Fprintf(a.out, "Deleted achievement %s\n", id)
			return nil
		},
	}
}

func newPhotoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo",
		Short: "Attach or remove an achievement's photo",
	}

	upload := &cobra.Command{
		Use:   "upload <id> <file>",
		Short: "Upload an image and attach it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := a.attach(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			return a.showAchievement(updated)
		},
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Detach the photo and delete the stored image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := state.DetachPhoto(cmd.Context(), a.store, a.api, args[0])
			if err != nil {
				return fmt.Errorf("delete photo: %w", err)
			}
			return a.showAchievement(updated)
		},
	}

	cmd.AddCommand(upload, remove)
	return cmd
}

func (a *app) attach(cmd *cobra.Command, id, path string) (dto.AchievementResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dto.AchievementResponse{}, fmt.Errorf("read photo: %w", err)
	}
	updated, err := state.AttachPhoto(cmd.Context(), a.store, a.api, id, filepath.Base(path), data)
	if err != nil {
		return dto.AchievementResponse{}, fmt.Errorf("upload photo: %w", err)
	}
	return updated, nil
}

// ageAt computes the child's age on date from the saved birthday.
func (a *app) ageAt(cmd *cobra.Command, date string) (agecalc.Age, error) {
	p, err := a.profile(cmd)
	if err != nil {
		return agecalc.Age{}, err
	}
	age, err := agecalc.Compute(p.Birthday, date)
	if err != nil {
		return agecalc.Age{}, fmt.Errorf("compute age: %w", err)
	}
	return age, nil
}

func (a *app) showAchievement(v dto.AchievementResponse) error {
	if a.jsonOut {
		return printJSON(a.out, v)
	}
	printAchievement(a.out, v)
	return nil
}

func ageRequest(age agecalc.Age) *dto.AgeRequest {
	return &dto.AgeRequest{Years: &age.Years, Months: &age.Months, Days: &age.Days}
}
