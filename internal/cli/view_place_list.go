package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mariusbk/wander/internal/cli/formatter"
	"github.com/mariusbk/wander/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// placesLoadedMsg signals that place list data has been loaded.
type placesLoadedMsg struct {
	places []*domain.Place
	err    error
}

// toggleVisitedResultMsg reports the outcome of a visited-flag update.
// prev is the value to restore if the remote call failed.
type toggleVisitedResultMsg struct {
	id   string
	name string
	prev bool
	err  error
}

// deleteConfirmedMsg is sent by the confirm wizard once the user has
// approved a delete. The list view starts the actual removal.
type deleteConfirmedMsg struct {
	id   string
	name string
}

// deleteResultMsg reports the outcome of a delete. snapshot is the full
// pre-delete collection, restored verbatim on failure.
type deleteResultMsg struct {
	id       string
	name     string
	snapshot []*domain.Place
	err      error
}

// placeListView shows all places, newest first, and owns the
// authoritative in-memory collection that mutations operate on.
type placeListView struct {
	state   *SharedState
	places  []*domain.Place
	cursor  int
	loading bool
	err     error
}

func newPlaceListView(state *SharedState) *placeListView {
	return &placeListView{
		state:   state,
		loading: true,
	}
}

func (v *placeListView) ID() ViewID    { return ViewPlaceList }
func (v *placeListView) Title() string { return "Places" }

func (v *placeListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle visited")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add place")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *placeListView) Init() tea.Cmd {
	return v.loadPlaces()
}

func (v *placeListView) loadPlaces() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		places, err := app.Places.List(ctx)
		return placesLoadedMsg{places: places, err: err}
	}
}

func (v *placeListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case placesLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.places = msg.places
		v.clampCursor()
		return v, nil

	case placeCreatedMsg:
		// New records go to the head of the list (created_at DESC).
		v.places = append([]*domain.Place{msg.place}, v.places...)
		return v, nil

	case toggleVisitedResultMsg:
		v.state.UpdatingID = ""
		if msg.err != nil {
			// Roll back the optimistic flip.
			for _, p := range v.places {
				if p.ID == msg.id {
					p.Visited = msg.prev
					break
				}
			}
			return v, alert(fmt.Sprintf("Could not update %q: %s", msg.name, msg.err))
		}
		return v, nil

	case deleteConfirmedMsg:
		return v.startDelete(msg.id, msg.name)

	case deleteResultMsg:
		v.state.DeletingID = ""
		if msg.err != nil {
			// Restore the exact pre-delete collection.
			v.places = msg.snapshot
			v.clampCursor()
			return v, alert(fmt.Sprintf("Could not delete %q: %s", msg.name, msg.err))
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.places)-1 {
				v.cursor++
			}
		case " ":
			if v.cursor < len(v.places) {
				return v, v.toggleVisited(v.places[v.cursor])
			}
		case "x":
			if v.cursor < len(v.places) {
				return v, v.confirmDelete(v.places[v.cursor])
			}
		case "a":
			return v, pushView(newAddPlaceView(v.state))
		case "r":
			v.loading = true
			return v, v.loadPlaces()
		}
	}
	return v, nil
}

// toggleVisited flips the visited flag locally, then issues the remote
// update. No-op while any mutation is in flight (shared markers).
func (v *placeListView) toggleVisited(p *domain.Place) tea.Cmd {
	if v.state.MutationInFlight() {
		return nil
	}

	prev := p.Visited
	p.Visited = !prev
	v.state.UpdatingID = p.ID

	app := v.state.App
	id, name := p.ID, p.Name
	next := !prev
	return func() tea.Msg {
		err := app.Places.SetVisited(context.Background(), id, next)
		return toggleVisitedResultMsg{id: id, name: name, prev: prev, err: err}
	}
}

// confirmDelete pushes a confirmation wizard; the delete itself starts
// only after the user approves.
func (v *placeListView) confirmDelete(p *domain.Place) tea.Cmd {
	if v.state.MutationInFlight() {
		return nil
	}

	id, name := p.ID, p.Name
	var confirmed bool
	form := wizardConfirm(fmt.Sprintf("Delete %q?", name), &confirmed)
	return pushView(newWizardView(v.state, "Confirm Delete", form, func() tea.Cmd {
		if !confirmed {
			return nil
		}
		return func() tea.Msg { return deleteConfirmedMsg{id: id, name: name} }
	}))
}

// startDelete removes the record locally and issues the remote delete,
// keeping a snapshot of the whole collection for rollback.
func (v *placeListView) startDelete(id, name string) (tea.Model, tea.Cmd) {
	if v.state.MutationInFlight() {
		return v, nil
	}

	idx := -1
	for i, p := range v.places {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return v, nil
	}

	snapshot := make([]*domain.Place, len(v.places))
	copy(snapshot, v.places)

	v.places = append(v.places[:idx], v.places[idx+1:]...)
	v.clampCursor()
	v.state.DeletingID = id

	app := v.state.App
	return v, func() tea.Msg {
		err := app.Places.Delete(context.Background(), id)
		return deleteResultMsg{id: id, name: name, snapshot: snapshot, err: err}
	}
}

func (v *placeListView) clampCursor() {
	if v.cursor >= len(v.places) {
		v.cursor = len(v.places) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *placeListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading places...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) +
			"\n\n  " + formatter.Dim("r: retry")
	}
	if len(v.places) == 0 {
		return "\n  " + formatter.Dim("No places yet. Press 'a' to add one.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, p := range v.places {
		b.WriteString(v.renderRow(p, i == v.cursor))
		b.WriteByte('\n')
	}
	return b.String()
}

func (v *placeListView) renderRow(p *domain.Place, isCursor bool) string {
	cursor := "  "
	nameStyle := formatter.StyleFg
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
		nameStyle = formatter.StyleBold
	}

	icon := formatter.VisitedIcon(p.Visited)
	if v.state.UpdatingID == p.ID || v.state.DeletingID == p.ID {
		icon = formatter.StyleYellow.Render("⋯")
	}

	line := fmt.Sprintf("%s%s %s", cursor, icon, nameStyle.Render(formatter.PadRight(p.Name, 28)))
	if p.Location != "" {
		line += " " + formatter.Dim(formatter.PadRight(p.Location, 18))
	} else {
		line += " " + strings.Repeat(" ", 19)
	}
	line += " " + formatter.Dim(formatter.RelativeDate(p.CreatedAt))
	return line
}
