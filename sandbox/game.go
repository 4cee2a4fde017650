package sandbox

import (
	"github.com/gpietz/go-gl-forge/engine"
	"github.com/gpietz/go-gl-forge/engine/config"
	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/engine/renderer/opengl"
)

// ForgeGame wires the sandbox scenes into the engine loop.
type ForgeGame struct {
	*engine.Game
}

type gameState struct {
	ctx    *RenderContext
	scenes *SceneManager

	clearColor [4]float32
}

func NewForgeGame(cfg *config.Config) (*ForgeGame, error) {
	fg := &ForgeGame{
		Game: &engine.Game{
			Config: cfg,
			State: &gameState{
				clearColor: cfg.Scene.ClearColor,
			},
		},
	}

	fg.FnInitialize = fg.Initialize
	fg.FnUpdate = fg.Update
	fg.FnRender = fg.Render
	fg.FnOnResize = fg.OnResize
	fg.FnShutdown = fg.Shutdown

	return fg, nil
}

// Initialize runs after the window and GL context exist.
func (g *ForgeGame) Initialize(e *engine.Engine) error {
	state := g.State.(*gameState)

	backend, err := opengl.NewBackend()
	if err != nil {
		return err
	}

	am := e.AssetManager()
	width, height := e.GetFramebufferSize()
	state.ctx = &RenderContext{
		Backend:  backend,
		Shaders:  NewShaderManager(am),
		Textures: NewTextureManager(am),
		Assets:   am,
		Width:    width,
		Height:   height,
	}

	state.scenes = NewSceneManager()
	state.scenes.Register(NewFirstTriangle())
	state.scenes.Register(NewIndexedQuad())
	state.scenes.Register(NewShaderTriangle())
	state.scenes.Register(NewTextureTriangle())
	state.scenes.Register(NewTransformation())
	state.scenes.Register(NewProjection())
	state.scenes.Register(NewTextOverlay())

	core.EventRegister(core.EVENT_CODE_ASSET_MODIFIED, g.onAssetModified)
	core.EventRegister(core.EVENT_CODE_DRAWABLE_TOGGLED, g.onDrawableToggled)

	core.LogInfo("keys 1-%d switch scenes, TAB advances, ESC quits", state.scenes.Count())

	if err := state.scenes.Switch(state.ctx, g.Config.Scene.Startup); err != nil {
		core.LogWarn("startup scene: %s, falling back to the first one", err)
		return state.scenes.SwitchIndex(state.ctx, 0)
	}
	return nil
}

func (g *ForgeGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)

	if err := g.handleSceneKeys(state); err != nil {
		return err
	}
	return state.scenes.Update(state.ctx, deltaTime)
}

// handleSceneKeys switches scenes on the number row and TAB.
func (g *ForgeGame) handleSceneKeys(state *gameState) error {
	for i := 0; i < state.scenes.Count() && i < 9; i++ {
		if core.InputKeyPressed(core.KEY_1 + core.KeyCode(i)) {
			return state.scenes.SwitchIndex(state.ctx, i)
		}
	}
	if core.InputKeyPressed(core.KEY_TAB) {
		next := 0
		if current := state.scenes.Current(); current != nil {
			for i := 0; i < state.scenes.Count(); i++ {
				if state.scenes.scenes[i] == current {
					next = (i + 1) % state.scenes.Count()
					break
				}
			}
		}
		return state.scenes.SwitchIndex(state.ctx, next)
	}
	return nil
}

func (g *ForgeGame) Render(deltaTime float64) error {
	state := g.State.(*gameState)

	c := state.clearColor
	state.ctx.Backend.Clear(c[0], c[1], c[2], c[3])

	return state.scenes.Draw(state.ctx)
}

func (g *ForgeGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	if state.ctx == nil {
		return nil
	}

	state.ctx.Width = width
	state.ctx.Height = height
	state.ctx.Backend.Viewport(int32(width), int32(height))
	return nil
}

func (g *ForgeGame) Shutdown() error {
	state := g.State.(*gameState)
	if state.ctx == nil {
		return nil
	}

	state.scenes.Shutdown(state.ctx)
	state.ctx.Textures.Shutdown()
	state.ctx.Shaders.Shutdown()
	return nil
}

func (g *ForgeGame) onAssetModified(context core.EventContext) {
	state := g.State.(*gameState)

	path, ok := context.Data.(string)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}
	core.LogDebug("asset changed on disk: %s", path)
	state.ctx.Shaders.Reload(path)
}

func (g *ForgeGame) onDrawableToggled(context core.EventContext) {
	index, ok := context.Data.(int)
	if !ok {
		return
	}
	scene := "none"
	if current := g.State.(*gameState).scenes.Current(); current != nil {
		scene = current.Name()
	}
	core.LogDebug("drawable %d toggled in scene %s", index, scene)
}
