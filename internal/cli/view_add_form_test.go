package cli

import (
	"context"
	"testing"
	"time"

	"github.com/mariusbk/wander/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openAddForm drives the list view's "a" binding and returns the form.
func openAddForm(t *testing.T, d *TestDriver) *addPlaceView {
	t.Helper()
	d.PressKey('a')
	require.Equal(t, ViewForm, d.ActiveViewID())
	return d.AddForm()
}

// submitForm walks the three single-field groups: Name, Location, Description.
func submitForm(d *TestDriver, name, location, description string) {
	d.Type(name)
	d.PressEnter()
	d.Type(location)
	d.PressEnter()
	d.Type(description)
	d.PressEnter()
}

func TestAddForm_CreatePlace(t *testing.T) {
	app := testApp(t)
	// Seed firmly in the past so the new record sorts first in storage too.
	seedPlace(t, app, testutil.NewTestPlace("Existing",
		testutil.WithCreatedAt(time.Now().UTC().Add(-time.Hour))))

	d := NewTestDriver(t, app)
	form := openAddForm(t, d)

	submitForm(d, "Kyoto", "Japan", "Temples")

	// New record lands at the head of the list behind the form.
	assert.Equal(t, []string{"Kyoto", "Existing"}, d.PlaceNames())

	// Form stays open with cleared fields and a success flash.
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.False(t, form.submitting)
	assert.Empty(t, form.name)
	assert.Empty(t, form.location)
	assert.Empty(t, form.description)
	assert.Contains(t, form.flash, "Added Kyoto")
	assert.False(t, form.flashIsErr)

	places, err := app.Places.List(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Kyoto", places[0].Name)
	assert.Equal(t, "Japan", places[0].Location)
	assert.Equal(t, "Temples", places[0].Description)
}

func TestAddForm_EmptyNameBlockedLocally(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	form := openAddForm(t, d)

	// Whitespace-only name never leaves the first field.
	d.Type("   ")
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()

	assert.False(t, form.submitting)
	assert.Equal(t, ViewForm, d.ActiveViewID())

	places, err := app.Places.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, places, "no create call should reach the backend")
}

func TestAddForm_FailureKeepsValues(t *testing.T) {
	app := testApp(t)
	app.Places = &faultyService{PlaceService: app.Places, failCreate: true}

	d := NewTestDriver(t, app)
	form := openAddForm(t, d)

	submitForm(d, "Kyoto", "Japan", "Temples")

	// Values survive so the user can fix and resubmit.
	assert.False(t, form.submitting)
	assert.Equal(t, "Kyoto", form.name)
	assert.Equal(t, "Japan", form.location)
	assert.Equal(t, "Temples", form.description)
	assert.True(t, form.flashIsErr)
	assert.Contains(t, form.flash, "backend unavailable")

	assert.Empty(t, d.PlaceNames())
	assert.Equal(t, ViewForm, d.ActiveViewID())
}

func TestAddForm_FlashClears(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	form := openAddForm(t, d)

	submitForm(d, "Kyoto", "", "")
	require.NotEmpty(t, form.flash)

	// A stale timer from an earlier flash is ignored.
	d.Send(flashClearMsg{seq: form.flashSeq - 1})
	assert.NotEmpty(t, form.flash)

	d.Send(flashClearMsg{seq: form.flashSeq})
	assert.Empty(t, form.flash)
}

func TestAddForm_SubmittingSwallowsInput(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	form := openAddForm(t, d)

	d.Type("Kyo")
	form.submitting = true

	d.Type("to")
	d.PressEsc()

	// Keys and Esc are ignored until the outstanding create resolves.
	assert.Equal(t, "Kyo", form.name)
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.View(), "Saving...")
}

func TestAddForm_EscReturnsToList(t *testing.T) {
	app := testApp(t)
	seedPlace(t, app, testutil.NewTestPlace("Existing"))

	d := NewTestDriver(t, app)
	openAddForm(t, d)

	d.PressEsc()
	assert.Equal(t, ViewPlaceList, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, []string{"Existing"}, d.PlaceNames())
}
