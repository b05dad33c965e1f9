package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/diorama-raytracer/pkg/config"
	"github.com/df07/diorama-raytracer/pkg/loaders"
	"github.com/df07/diorama-raytracer/pkg/logging"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

const windowTitle = "Refractor"

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "Environment file to load before reading configuration")
	sceneName := flag.String("scene", "", "Scene to view: 'diorama' or a YAML scene file (overrides DIORAMA_SCENE)")
	workers := flag.Int("workers", -1, "Render workers, 0 = number of CPUs (overrides DIORAMA_WORKERS)")
	textures := flag.Bool("textures", true, "Load textures (false renders base diffuse colors)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *sceneName != "" {
		cfg.Scene = *sceneName
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	cfg.Textures = cfg.Textures && *textures

	logger, err := logging.NewFromConfig(cfg.LogLevel, "diorama-viewer")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}

	desc, err := loaders.ResolveScene(cfg.Scene, cfg.ScenesDir)
	if err != nil {
		logger.Error("failed to load scene", logging.Error(err))
		os.Exit(1)
	}

	var loadTexture scene.TextureLoader
	if cfg.Textures {
		loadTexture = loaders.NewTextureLoader(cfg.AssetsDir, cfg.MaxTextureSize)
	}
	sceneObj, err := scene.Build(desc, loadTexture)
	if err != nil {
		logger.Error("failed to build scene", logging.Error(err))
		os.Exit(1)
	}
	logger.Info("scene loaded",
		logging.String("scene", sceneObj.Name),
		logging.Int("primitives", sceneObj.GetPrimitiveCount()))

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(windowTitle)

	game := NewGame(sceneObj, cfg.Width, cfg.Height, cfg.Workers, logger)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", logging.Error(err))
		os.Exit(1)
	}
}
