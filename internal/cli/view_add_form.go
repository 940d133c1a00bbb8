package cli

import (
	"context"
	"time"

	"github.com/mariusbk/wander/internal/cli/formatter"
	"github.com/mariusbk/wander/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// flashDuration is how long form success/error messages stay visible.
const flashDuration = 4 * time.Second

// createResultMsg reports the outcome of a create submission.
type createResultMsg struct {
	place *domain.Place
	err   error
}

// flashClearMsg clears the form flash after flashDuration. The seq
// guard drops timers made stale by a newer flash.
type flashClearMsg struct {
	seq int
}

// addPlaceView collects name, location and description for a new place.
// The field values live on the view so a failed submission keeps them.
type addPlaceView struct {
	state *SharedState
	form  *huh.Form

	name        string
	location    string
	description string

	// submitting enforces a single in-flight create: all input is
	// ignored while a submission is outstanding.
	submitting bool

	flash      string
	flashIsErr bool
	flashSeq   int
}

func newAddPlaceView(state *SharedState) *addPlaceView {
	v := &addPlaceView{state: state}
	v.form = v.buildForm()
	return v
}

// buildForm constructs the huh form over the view's field pointers.
// Rebuilt after every submission so the completed form becomes
// editable again with the current values.
func (v *addPlaceView) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Kyoto").
				Value(&v.name).
				Validate(validateRequired("Name")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Location (optional)").
				Placeholder("Japan").
				Value(&v.location),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Description (optional)").
				Value(&v.description),
		),
	).WithTheme(wanderHuhTheme()).WithShowHelp(false)
}

func (v *addPlaceView) ID() ViewID    { return ViewForm }
func (v *addPlaceView) Title() string { return "Add Place" }

func (v *addPlaceView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/submit")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *addPlaceView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *addPlaceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createResultMsg:
		v.submitting = false
		v.form = v.buildForm()
		if msg.err != nil {
			// Field values are untouched; the user can fix and resubmit.
			return v, tea.Batch(v.form.Init(), v.setFlash(msg.err.Error(), true))
		}
		v.name, v.location, v.description = "", "", ""
		flash := v.setFlash("✔ Added "+msg.place.Name, false)
		created := msg.place
		return v, tea.Batch(
			v.form.Init(),
			flash,
			func() tea.Msg { return placeCreatedMsg{place: created} },
		)

	case flashClearMsg:
		if msg.seq == v.flashSeq {
			v.flash = ""
		}
		return v, nil

	case tea.KeyMsg:
		if v.submitting {
			// Control is disabled while a create is outstanding.
			return v, nil
		}
		if msg.Type == tea.KeyEsc {
			return v, popView()
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.submitting {
		v.submitting = true
		return v, tea.Batch(cmd, v.submit())
	}

	return v, cmd
}

// submit issues the remote insert. Validation already ran locally, so
// an empty name never reaches this point.
func (v *addPlaceView) submit() tea.Cmd {
	app := v.state.App
	p := &domain.Place{
		Name:        v.name,
		Location:    v.location,
		Description: v.description,
	}
	return func() tea.Msg {
		err := app.Places.Create(context.Background(), p)
		return createResultMsg{place: p, err: err}
	}
}

// setFlash sets the flash text and returns the auto-clear timer.
func (v *addPlaceView) setFlash(text string, isErr bool) tea.Cmd {
	v.flash = text
	v.flashIsErr = isErr
	v.flashSeq++
	seq := v.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}

func (v *addPlaceView) View() string {
	s := "\n" + v.form.View()
	if v.submitting {
		s += "\n  " + formatter.Dim("Saving...")
	}
	if v.flash != "" {
		style := formatter.StyleGreen
		if v.flashIsErr {
			style = formatter.StyleRed
		}
		s += "\n  " + style.Render(v.flash)
	}
	return s
}
