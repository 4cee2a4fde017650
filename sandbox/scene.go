package sandbox

import (
	"fmt"

	"github.com/gpietz/go-gl-forge/engine/core"
)

// Scene is one self-contained rendering experiment. Activate runs on first
// entry and after every re-entry; GPU resources created there must be freed
// in Deactivate.
type Scene interface {
	Name() string
	Activate(ctx *RenderContext) error
	Update(ctx *RenderContext, deltaTime float64) error
	Draw(ctx *RenderContext) error
	Deactivate(ctx *RenderContext) error
}

// SceneManager keeps scenes in registration order and runs exactly one at a
// time. Switching deactivates the old scene before activating the new one
// and announces the change on the event bus.
type SceneManager struct {
	scenes  []Scene
	byName  map[string]int
	current int
}

func NewSceneManager() *SceneManager {
	return &SceneManager{
		byName:  make(map[string]int),
		current: -1,
	}
}

func (sm *SceneManager) Register(scene Scene) {
	sm.byName[scene.Name()] = len(sm.scenes)
	sm.scenes = append(sm.scenes, scene)
}

func (sm *SceneManager) Count() int {
	return len(sm.scenes)
}

// Current returns the active scene, nil before the first switch.
func (sm *SceneManager) Current() Scene {
	if sm.current < 0 {
		return nil
	}
	return sm.scenes[sm.current]
}

// Switch activates the named scene. Switching to the active scene is a no-op.
func (sm *SceneManager) Switch(ctx *RenderContext, name string) error {
	index, ok := sm.byName[name]
	if !ok {
		return fmt.Errorf("unknown scene %q", name)
	}
	return sm.SwitchIndex(ctx, index)
}

// SwitchIndex activates the scene at the given registration position.
func (sm *SceneManager) SwitchIndex(ctx *RenderContext, index int) error {
	if index < 0 || index >= len(sm.scenes) {
		return fmt.Errorf("scene index %d out of range", index)
	}
	if index == sm.current {
		return nil
	}

	if sm.current >= 0 {
		if err := sm.scenes[sm.current].Deactivate(ctx); err != nil {
			core.LogError("deactivating scene %q: %s", sm.scenes[sm.current].Name(), err)
		}
	}

	sm.current = index
	next := sm.scenes[index]
	if err := next.Activate(ctx); err != nil {
		return fmt.Errorf("activating scene %q: %w", next.Name(), err)
	}

	core.LogInfo("scene: %s", next.Name())
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_SCENE_CHANGED,
		Data: next.Name(),
	})
	return nil
}

func (sm *SceneManager) Update(ctx *RenderContext, deltaTime float64) error {
	if scene := sm.Current(); scene != nil {
		return scene.Update(ctx, deltaTime)
	}
	return nil
}

func (sm *SceneManager) Draw(ctx *RenderContext) error {
	if scene := sm.Current(); scene != nil {
		return scene.Draw(ctx)
	}
	return nil
}

// Shutdown deactivates the active scene.
func (sm *SceneManager) Shutdown(ctx *RenderContext) {
	if scene := sm.Current(); scene != nil {
		if err := scene.Deactivate(ctx); err != nil {
			core.LogError("deactivating scene %q: %s", scene.Name(), err)
		}
		sm.current = -1
	}
}
