package cli

import (
	"testing"

	"github.com/mariusbk/wander/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_QuitWithQ(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestApp_QuitWithCtrlC(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestApp_EscOnHomeViewIsNoop(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressEsc()
	assert.False(t, d.IsQuitting())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestApp_HeaderAndBreadcrumb(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "wander")
	assert.Contains(t, view, "Places")

	d.PressKey('a')
	assert.Contains(t, d.View(), "Add Place")
}

func TestApp_AlertBlocksInput(t *testing.T) {
	app := testApp(t)
	seedPlace(t, app, testutil.NewTestPlace("B"))
	seedPlace(t, app, testutil.NewTestPlace("A"))

	d := NewTestDriver(t, app)
	d.Send(alertMsg{text: "something broke"})

	require.Equal(t, "something broke", d.AlertText())
	view := d.View()
	assert.Contains(t, view, "something broke")
	assert.Contains(t, view, "press any key to continue")

	// The dismissing key is swallowed, not forwarded to the list.
	d.PressKey('j')
	assert.Empty(t, d.AlertText())
	assert.Equal(t, 0, d.PlaceList().cursor)

	// Input flows again after dismissal.
	d.PressKey('j')
	assert.Equal(t, 1, d.PlaceList().cursor)
}

func TestApp_StatusBarShowsShortHelp(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "toggle visited")
	assert.Contains(t, view, "q: quit")
}
