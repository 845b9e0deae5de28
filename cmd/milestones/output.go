package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"MILESTONES_BACK-END/internal/dto"
)

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func printAchievementTable(w io.Writer, items []dto.AchievementResponse) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No achievements found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tAGE\tTITLE\tTAGS\tPHOTO")
	for _, a := range items {
		age := "-"
		if a.AgeAtEvent != nil {
			age = a.AgeAtEvent.String()
		}
		title := a.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		photo := "no"
		if a.Photo != nil {
			photo = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", shortID(a.ID), a.Date, age, title, strings.Join(a.Tags, ","), photo)
	}
	tw.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	fmt.Fprintf(w, "Total: %d achievement(s)\n", len(items))
}

func printAchievement(w io.Writer, a dto.AchievementResponse) {
	fmt.Fprintf(w, "ID:          %s\n", a.ID)
	fmt.Fprintf(w, "Date:        %s\n", a.Date)
	fmt.Fprintf(w, "Title:       %s\n", a.Title)
	if a.Description != nil {
		fmt.Fprintf(w, "Description: %s\n", *a.Description)
	}
	if a.AgeAtEvent != nil {
		fmt.Fprintf(w, "Age:         %s\n", a.AgeAtEvent)
	}
	if len(a.Tags) > 0 {
		fmt.Fprintf(w, "Tags:        %s\n", strings.Join(a.Tags, ", "))
	}
	if a.Photo != nil {
		fmt.Fprintf(w, "Photo:       %s\n", *a.Photo)
	}
}

func printProfile(w io.Writer, p dto.ProfileResponse) {
	fmt.Fprintf(w, "Nickname: %s\n", p.Nickname)
	fmt.Fprintf(w, "Gender:   %s\n", p.Gender)
	fmt.Fprintf(w, "Birthday: %s\n", p.Birthday)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
