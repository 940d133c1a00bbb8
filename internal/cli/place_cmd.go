package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mariusbk/wander/internal/cli/formatter"
	"github.com/mariusbk/wander/internal/domain"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// resolvePlaceID resolves user input (full ID or unique prefix) to a place ID.
func resolvePlaceID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("place ID is required")
	}

	places, err := app.Places.List(ctx)
	if err != nil {
		return "", err
	}

	// Exact match first.
	for _, p := range places {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range places {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("place not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("place ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newAddCmd(app *App) *cobra.Command {
	var location, description string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a place to visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Place{
				Name:        args[0],
				Location:    location,
				Description: description,
			}
			if err := app.Places.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "Where the place is")
	cmd.Flags().StringVar(&description, "description", "", "Why it is worth visiting")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var visitedOnly, unvisitedOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List places, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if visitedOnly && unvisitedOnly {
				return fmt.Errorf("--visited and --unvisited are mutually exclusive")
			}

			// Spinner only on a real terminal; scripted output stays clean.
			stop := func() {}
			if isatty.IsTerminal(os.Stdout.Fd()) {
				stop = formatter.StartSpinner("Loading places...")
			}
			places, err := app.Places.List(context.Background())
			stop()
			if err != nil {
				return err
			}

			shown := 0
			for _, p := range places {
				if visitedOnly && !p.Visited {
					continue
				}
				if unvisitedOnly && p.Visited {
					continue
				}
				shown++
				line := fmt.Sprintf("%s %s %s",
					formatter.VisitedIcon(p.Visited),
					formatter.Dim(p.DisplayID()),
					p.Name)
				if p.Location != "" {
					line += "  " + formatter.Dim(p.Location)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No places yet. Add one with: wander add NAME"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&visitedOnly, "visited", false, "Only show visited places")
	cmd.Flags().BoolVar(&unvisitedOnly, "unvisited", false, "Only show places not visited yet")

	return cmd
}

func newVisitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "visit ID",
		Short: "Mark a place as visited",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlaceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Places.SetVisited(ctx, id, true); err != nil {
				return err
			}
			p, err := app.Places.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Visited: %s\n",
				formatter.StyleGreen.Render("✓"), p.Name)
			return nil
		},
	}
}

func newUnvisitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unvisit ID",
		Short: "Mark a place as not visited",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlaceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Places.SetVisited(ctx, id, false); err != nil {
				return err
			}
			p, err := app.Places.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Not visited: %s\n",
				formatter.Dim("○"), p.Name)
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlaceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Places.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if !yes {
				confirmed, err := confirmPrompt(fmt.Sprintf("Delete %q?", p.Name))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Places.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted: %s\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(p.Name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// confirmPrompt runs a standalone huh confirmation outside the TUI.
func confirmPrompt(title string) (bool, error) {
	var confirmed bool
	form := wizardConfirm(title, &confirmed)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
