package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEventSystem(t *testing.T) {
	t.Helper()
	require.True(t, EventSystemInitialize())
	t.Cleanup(func() { EventSystemShutdown() })
}

func TestEventsAreDeferredUntilPump(t *testing.T) {
	setupEventSystem(t)

	var got []EventContext
	EventRegister(EVENT_CODE_SCENE_CHANGED, func(context EventContext) {
		got = append(got, context)
	})

	require.True(t, EventFire(EventContext{Type: EVENT_CODE_SCENE_CHANGED, Data: "projection"}))
	assert.Empty(t, got, "nothing dispatched before the pump")

	EventPump()
	require.Len(t, got, 1)
	assert.Equal(t, "projection", got[0].Data)

	// The queue is drained, a second pump delivers nothing new.
	EventPump()
	assert.Len(t, got, 1)
}

func TestEventsDispatchInFireOrder(t *testing.T) {
	setupEventSystem(t)

	var order []EventCode
	handler := func(context EventContext) {
		order = append(order, context.Type)
	}
	EventRegister(EVENT_CODE_KEY_PRESSED, handler)
	EventRegister(EVENT_CODE_KEY_RELEASED, handler)

	EventFire(EventContext{Type: EVENT_CODE_KEY_PRESSED})
	EventFire(EventContext{Type: EVENT_CODE_KEY_RELEASED})
	EventFire(EventContext{Type: EVENT_CODE_KEY_PRESSED})
	EventPump()

	assert.Equal(t, []EventCode{
		EVENT_CODE_KEY_PRESSED,
		EVENT_CODE_KEY_RELEASED,
		EVENT_CODE_KEY_PRESSED,
	}, order)
}

func TestMultipleListenersRunInRegistrationOrder(t *testing.T) {
	setupEventSystem(t)

	var order []int
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(EventContext) { order = append(order, 1) })
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(EventContext) { order = append(order, 2) })

	EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT})
	EventPump()

	assert.Equal(t, []int{1, 2}, order)
}

func TestEventsFiredDuringPumpDispatchSamePump(t *testing.T) {
	setupEventSystem(t)

	quits := 0
	EventRegister(EVENT_CODE_KEY_PRESSED, func(EventContext) {
		EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT})
	})
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(EventContext) { quits++ })

	EventFire(EventContext{Type: EVENT_CODE_KEY_PRESSED})
	EventPump()

	assert.Equal(t, 1, quits, "chained event delivered by the same pump")
}

func TestRegisterRejectsNilHandler(t *testing.T) {
	setupEventSystem(t)
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, nil))
}
