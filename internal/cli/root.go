package cli

import (
	"github.com/mariusbk/wander/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Places service.PlaceService

	// IsInteractive reports whether stdin is a terminal. When set and
	// true, a bare "wander" invocation opens the TUI instead of help.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "wander" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "wander",
		Short: "Track places to visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newVisitCmd(app),
		newUnvisitCmd(app),
		newRemoveCmd(app),
		newTUICmd(app),
	)

	return root
}
