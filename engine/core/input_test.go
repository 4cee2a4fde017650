package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInput(t *testing.T) {
	t.Helper()
	require.True(t, EventSystemInitialize())
	require.NoError(t, InputInitialize())
	t.Cleanup(func() {
		// Drop any state the test left behind so the next one starts clean.
		inputState.KeyboardCurrent = KeyboardState{}
		inputState.KeyboardPrevious = KeyboardState{}
		inputState.MouseCurrent = MouseState{}
		inputState.MousePrevious = MouseState{}
		_ = InputShutdown()
		EventSystemShutdown()
	})
	inputInitialized = true
}

func TestKeyDownAndUp(t *testing.T) {
	setupInput(t)

	assert.False(t, InputIsKeyDown(KEY_W))
	require.NoError(t, InputProcessKey(KEY_W, true))
	assert.True(t, InputIsKeyDown(KEY_W))
	assert.False(t, InputIsKeyUp(KEY_W))

	require.NoError(t, InputProcessKey(KEY_W, false))
	assert.True(t, InputIsKeyUp(KEY_W))
}

func TestKeyPressedFiresOncePerPress(t *testing.T) {
	setupInput(t)

	// Frame 1: key goes down, the press edge fires immediately.
	require.NoError(t, InputProcessKey(KEY_F3, true))
	assert.True(t, InputKeyPressed(KEY_F3))
	require.NoError(t, InputUpdate(0.016))

	// Frame 2: key still held, the toggle must not re-trigger.
	assert.False(t, InputKeyPressed(KEY_F3), "still held")
	require.NoError(t, InputProcessKey(KEY_F3, false))
	require.NoError(t, InputUpdate(0.016))

	// Frame 3: releasing is not a press.
	assert.False(t, InputKeyPressed(KEY_F3))

	// A fresh press fires again.
	require.NoError(t, InputProcessKey(KEY_F3, true))
	assert.True(t, InputKeyPressed(KEY_F3))
}

func TestKeyEventsFireOnStateChangeOnly(t *testing.T) {
	setupInput(t)

	var pressed, released int
	EventRegister(EVENT_CODE_KEY_PRESSED, func(EventContext) { pressed++ })
	EventRegister(EVENT_CODE_KEY_RELEASED, func(EventContext) { released++ })

	require.NoError(t, InputProcessKey(KEY_SPACE, true))
	require.NoError(t, InputProcessKey(KEY_SPACE, true)) // repeat, no event
	require.NoError(t, InputProcessKey(KEY_SPACE, false))
	EventPump()

	assert.Equal(t, 1, pressed)
	assert.Equal(t, 1, released)
}

func TestKeyEventCarriesKeyCode(t *testing.T) {
	setupInput(t)

	var got KeyCode
	EventRegister(EVENT_CODE_KEY_PRESSED, func(context EventContext) {
		got = context.Data.(*KeyEvent).KeyCode
	})

	require.NoError(t, InputProcessKey(KEY_ESCAPE, true))
	EventPump()

	assert.Equal(t, KEY_ESCAPE, got)
}

func TestMouseMoveUpdatesPosition(t *testing.T) {
	setupInput(t)

	require.NoError(t, InputProcessMouseMove(120, 64))
	x, y := InputGetMousePosition()
	assert.Equal(t, int32(120), x)
	assert.Equal(t, int32(64), y)
}

func TestButtonEventsFireOnStateChangeOnly(t *testing.T) {
	setupInput(t)

	var events int
	EventRegister(EVENT_CODE_BUTTON_PRESSED, func(EventContext) { events++ })

	require.NoError(t, InputProcessButton(BUTTON_LEFT, true))
	require.NoError(t, InputProcessButton(BUTTON_LEFT, true))
	EventPump()

	assert.Equal(t, 1, events)
	assert.True(t, InputIsButtonDown(BUTTON_LEFT))
}
