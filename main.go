/*
An OpenGL learning sandbox. Each scene is a small rendering experiment
built on the engine's buffer abstraction; switch between them with the
number keys.
*/
package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gpietz/go-gl-forge/engine"
	"github.com/gpietz/go-gl-forge/engine/config"
	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/sandbox"
)

func main() {
	configPath := flag.String("config", "forge.toml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			core.LogFatal("loading config: %s", err)
		}
		core.LogWarn("config file %s not found, using defaults", *configPath)
		cfg = config.Default()
	}

	game, err := sandbox.NewForgeGame(cfg)
	if err != nil {
		panic(err)
	}

	forge, err := engine.New(game.Game)
	if err != nil {
		panic(err)
	}

	if err := forge.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = forge.Shutdown()
	}()

	// run engine
	if err := forge.Run(); err != nil {
		panic(err)
	}
}
