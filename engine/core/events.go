package core

import (
	"sync"

	"github.com/gpietz/go-gl-forge/engine/containers"
)

type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data is *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data is *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data is *MouseEvent.
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data is *MouseEvent.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data is *MouseEvent.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel scrolled. Data is *MouseEvent.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Resized/resolution changed from the OS. Data is *SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08
	// Active scene changed. Data is the scene name (string).
	EVENT_CODE_SCENE_CHANGED EventCode = 0x09
	// A drawable within the active scene was toggled. Data is the drawable index (int).
	EVENT_CODE_DRAWABLE_TOGGLED EventCode = 0x0A
	// An asset on disk changed (hot reload). Data is the asset path (string).
	EVENT_CODE_ASSET_MODIFIED EventCode = 0x0B

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type FnOnEvent func(context EventContext)

// Queue depth for one frame worth of events. Input is sparse, this is plenty.
const maxQueuedEvents = 512

type eventSystemState struct {
	registered [MAX_EVENT_CODE + 1][]FnOnEvent
	queue      *containers.RingQueue
}

var onceEvent sync.Once
var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			queue: containers.NewRingQueue(maxQueuedEvents),
		}
	})
	return true
}

func EventSystemShutdown() error {
	if eventState == nil {
		return nil
	}
	for i := range eventState.registered {
		eventState.registered[i] = nil
	}
	for !eventState.queue.IsEmpty() {
		_, _ = eventState.queue.Dequeue()
	}
	return nil
}

// EventRegister adds a listener for the given code. Listeners are invoked
// in registration order when the queue is pumped.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if eventState == nil || onEvent == nil {
		return false
	}
	eventState.registered[code] = append(eventState.registered[code], onEvent)
	return true
}

// EventFire enqueues an event for dispatch on the next EventPump call.
// Everything runs on the main thread; the queue only defers delivery to a
// well-defined point in the frame.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	if err := eventState.queue.Enqueue(context); err != nil {
		LogWarn("event queue full, dropping event code %d", context.Type)
		return false
	}
	return true
}

// EventPump drains the queue and dispatches every pending event. Called once
// per frame by the engine loop.
func EventPump() {
	if eventState == nil {
		return
	}
	for !eventState.queue.IsEmpty() {
		value, err := eventState.queue.Dequeue()
		if err != nil {
			return
		}
		context := value.(EventContext)
		for _, cb := range eventState.registered[context.Type] {
			cb(context)
		}
	}
}
