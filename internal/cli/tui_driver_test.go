package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/mariusbk/wander/internal/domain"
	"github.com/mariusbk/wander/internal/service"
	"github.com/mariusbk/wander/internal/teatest"
)

// TestDriver wraps teatest.Driver with wander-specific inspection methods.
// It provides access to appModel internals (view stack, shared state,
// alert overlay) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which loads the place list synchronously via in-memory SQLite).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// AlertText returns the current alert overlay text ("" when none).
func (d *TestDriver) AlertText() string {
	return d.appModel().alert
}

// PlaceList returns the place list view at the bottom of the stack.
func (d *TestDriver) PlaceList() *placeListView {
	return d.appModel().viewStack[0].(*placeListView)
}

// AddForm returns the add-place form, which must be the active view.
func (d *TestDriver) AddForm() *addPlaceView {
	d.T.Helper()
	m := d.appModel()
	v, ok := m.activeView().(*addPlaceView)
	if !ok {
		d.T.Fatalf("active view is not the add form")
	}
	return v
}

// PlaceNames returns the names in the list view's current order.
func (d *TestDriver) PlaceNames() []string {
	list := d.PlaceList()
	names := make([]string, len(list.places))
	for i, p := range list.places {
		names[i] = p.Name
	}
	return names
}

// IsQuitting reports whether tea.Quit was observed.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}

// ── failure injection ────────────────────────────────────────────────────────

var errBackend = errors.New("backend unavailable")

// faultyService wraps a real PlaceService and fails selected operations,
// for exercising rollback and error-state paths.
type faultyService struct {
	service.PlaceService

	failList       bool
	failCreate     bool
	failSetVisited bool
	failDelete     bool
}

func (s *faultyService) List(ctx context.Context) ([]*domain.Place, error) {
	if s.failList {
		return nil, errBackend
	}
	return s.PlaceService.List(ctx)
}

func (s *faultyService) Create(ctx context.Context, p *domain.Place) error {
	if s.failCreate {
		return errBackend
	}
	return s.PlaceService.Create(ctx, p)
}

func (s *faultyService) SetVisited(ctx context.Context, id string, visited bool) error {
	if s.failSetVisited {
		return errBackend
	}
	return s.PlaceService.SetVisited(ctx, id, visited)
}

func (s *faultyService) Delete(ctx context.Context, id string) error {
	if s.failDelete {
		return errBackend
	}
	return s.PlaceService.Delete(ctx, id)
}
