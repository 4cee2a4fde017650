//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Validates every GLSL source under assets/shaders with glslangValidator.
func (Build) Shaders() error {
	entries, err := os.ReadDir("assets/shaders")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if ext != ".vert" && ext != ".frag" {
			continue
		}
		path := filepath.Join("assets/shaders", entry.Name())
		if _, err := executeCmd("glslangValidator", withArgs(path), withStream()); err != nil {
			return err
		}
	}
	return nil
}

// Compiles the sandbox binary.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "gl-forge", "."), withStream()); err != nil {
		return err
	}
	return nil
}
