package sandbox

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gpietz/go-gl-forge/engine/assets"
	"github.com/gpietz/go-gl-forge/engine/assets/types"
	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/engine/renderer/opengl"
)

// Shader names used by the scenes.
const (
	SHADER_TRIANGLE          = "triangle"
	SHADER_COLORED_TRIANGLE  = "shader_triangle"
	SHADER_TEXTURED_TRIANGLE = "textured_triangle"
	SHADER_TRANSFORM         = "transform"
	SHADER_PROJECTION        = "projection"
	SHADER_TEXT              = "text"
)

type shaderEntry struct {
	vertPath string
	fragPath string
	program  *opengl.ShaderProgram
}

// ShaderManager compiles shader programs from source assets on first use and
// caches them by name. When a watched source file changes on disk, Reload
// recompiles every program built from it; the old program stays active if the
// new source fails to compile.
type ShaderManager struct {
	assets  *assets.AssetManager
	shaders map[string]*shaderEntry
}

func NewShaderManager(am *assets.AssetManager) *ShaderManager {
	sm := &ShaderManager{
		assets:  am,
		shaders: make(map[string]*shaderEntry),
	}
	sm.register(SHADER_TRIANGLE, "triangle")
	sm.register(SHADER_COLORED_TRIANGLE, "shader_triangle")
	sm.register(SHADER_TEXTURED_TRIANGLE, "textured_triangle")
	sm.register(SHADER_TRANSFORM, "transform")
	sm.register(SHADER_PROJECTION, "projection")
	sm.register(SHADER_TEXT, "text")
	return sm
}

// register maps a shader name to its vert/frag pair under assets/shaders.
func (sm *ShaderManager) register(name, basename string) {
	sm.shaders[name] = &shaderEntry{
		vertPath: filepath.Join("shaders", basename+".vert"),
		fragPath: filepath.Join("shaders", basename+".frag"),
	}
}

// Get returns the compiled program for the name, compiling it on first use.
func (sm *ShaderManager) Get(name string) (*opengl.ShaderProgram, error) {
	entry, ok := sm.shaders[name]
	if !ok {
		return nil, fmt.Errorf("unknown shader %q", name)
	}
	if entry.program == nil {
		program, err := sm.compile(entry)
		if err != nil {
			return nil, err
		}
		entry.program = program
	}
	return entry.program, nil
}

func (sm *ShaderManager) compile(entry *shaderEntry) (*opengl.ShaderProgram, error) {
	vertSrc, err := sm.loadSource(entry.vertPath)
	if err != nil {
		return nil, err
	}
	fragSrc, err := sm.loadSource(entry.fragPath)
	if err != nil {
		return nil, err
	}
	return opengl.NewShaderProgram(vertSrc, fragSrc)
}

func (sm *ShaderManager) loadSource(path string) (string, error) {
	res, err := sm.assets.LoadAsset(path, nil)
	if err != nil {
		return "", err
	}
	data, ok := res.Data.(*types.ShaderResourceData)
	if !ok {
		return "", fmt.Errorf("asset %s is not shader source", path)
	}
	return data.Source, nil
}

// Reload recompiles every compiled program that was built from the changed
// file. Called from the asset-modified event handler.
func (sm *ShaderManager) Reload(changedPath string) {
	for name, entry := range sm.shaders {
		if entry.program == nil {
			continue
		}
		if !strings.HasSuffix(changedPath, entry.vertPath) && !strings.HasSuffix(changedPath, entry.fragPath) {
			continue
		}
		program, err := sm.compile(entry)
		if err != nil {
			core.LogError("hot reload of shader %q failed, keeping previous program: %s", name, err)
			continue
		}
		entry.program.Release()
		entry.program = program
		core.LogInfo("shader %q reloaded", name)
	}
}

func (sm *ShaderManager) Shutdown() {
	for _, entry := range sm.shaders {
		if entry.program != nil {
			entry.program.Release()
			entry.program = nil
		}
	}
}
