package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/diorama-raytracer/pkg/config"
	"github.com/df07/diorama-raytracer/pkg/controls"
	"github.com/df07/diorama-raytracer/pkg/loaders"
	"github.com/df07/diorama-raytracer/pkg/logging"
	"github.com/df07/diorama-raytracer/pkg/publish"
	"github.com/df07/diorama-raytracer/pkg/renderer"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

// viewOptions moves the scene's initial view before rendering
type viewOptions struct {
	Yaw   float64
	Pitch float64
	Zoom  float64
	Night bool
}

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "Environment file to load before reading configuration")
	sceneName := flag.String("scene", "", "Scene: 'diorama', a name in the scenes directory or a YAML file path")
	width := flag.Int("width", 0, "Image width (overrides DIORAMA_WIDTH)")
	height := flag.Int("height", 0, "Image height (overrides DIORAMA_HEIGHT)")
	workers := flag.Int("workers", -1, "Render workers, 0 = number of CPUs (overrides DIORAMA_WORKERS)")
	night := flag.Bool("night", false, "Render the night preset")
	yaw := flag.Float64("yaw", 0, "Orbit the camera around its center by this many radians")
	pitch := flag.Float64("pitch", 0, "Orbit the camera above its center by this many radians")
	zoom := flag.Float64("zoom", 0, "Move the camera toward its center; negative moves away")
	textures := flag.Bool("textures", true, "Load textures (false renders base diffuse colors)")
	publishRender := flag.Bool("publish", false, "Upload the render to the configured S3 bucket")
	dumpScene := flag.Bool("dump-scene", false, "Print the resolved scene as YAML and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Diorama Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Scenes:")
		fmt.Println("  diorama - Built-in nether portal diorama (default)")
		fmt.Println("  <name>  - scenes/<name>.yaml, or any YAML scene file path")
		fmt.Println()
		fmt.Println("Textures:")
		fmt.Println("  Loaded from DIORAMA_ASSETS_DIR (default assets/); set DIORAMA_TEXTURES=false for flat colors")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *sceneName != "" {
		cfg.Scene = *sceneName
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	cfg.Textures = cfg.Textures && *textures

	logger, err := logging.NewFromConfig(cfg.LogLevel, "diorama-cli")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}

	if *dumpScene {
		desc, err := loaders.ResolveScene(cfg.Scene, cfg.ScenesDir)
		if err != nil {
			logger.Error("failed to load scene", logging.Error(err))
			os.Exit(1)
		}
		if err := loaders.WriteScene(os.Stdout, desc); err != nil {
			logger.Error("failed to write scene", logging.Error(err))
			os.Exit(1)
		}
		return
	}

	selectedScene, err := createScene(cfg)
	if err != nil {
		logger.Error("failed to create scene", logging.Error(err))
		os.Exit(1)
	}

	view, err := createView(selectedScene, viewOptions{Yaw: *yaw, Pitch: *pitch, Zoom: *zoom, Night: *night})
	if err != nil {
		logger.Error("invalid view", logging.Error(err))
		os.Exit(1)
	}

	logger.Info("rendering",
		logging.String("scene", selectedScene.Name),
		logging.Int("primitives", selectedScene.GetPrimitiveCount()),
		logging.Int("width", cfg.Width),
		logging.Int("height", cfg.Height),
		logging.Bool("day", view.IsDay))

	fb := renderer.NewFramebuffer(cfg.Width, cfg.Height)
	stats, err := renderer.RenderParallel(context.Background(), fb, selectedScene, view.Camera, view.Light, view.IsDay, cfg.Workers)
	if err != nil {
		logger.Error("render failed", logging.Error(err))
		os.Exit(1)
	}
	logger.Info("render completed",
		logging.Duration("elapsed_ms", stats.Elapsed),
		logging.Int("tiles", stats.Tiles),
		logging.Int("workers", stats.Workers),
		logging.Float("pixels_per_second", stats.PixelsPerSecond()))

	outputDir := createOutputDir(cfg.OutputDir, cfg.Scene)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		logger.Error("failed to create output directory", logging.Error(err))
		os.Exit(1)
	}

	img := fb.Image()
	filename := filepath.Join(outputDir, renderFilename(time.Now()))
	if err := savePNG(filename, img); err != nil {
		logger.Error("failed to save render", logging.Error(err))
		os.Exit(1)
	}
	logger.Info("render saved", logging.String("file", filename))

	if *publishRender {
		if !cfg.S3.Enabled() {
			logger.Error("publishing requested but S3_BUCKET is not set")
			os.Exit(1)
		}
		client, err := publish.NewS3Client(cfg.S3)
		if err != nil {
			logger.Error("failed to create S3 client", logging.Error(err))
			os.Exit(1)
		}
		publisher := publish.NewPublisher(client, cfg.S3.Bucket, cfg.S3.Prefix, logger)
		name := path.Join(filepath.Base(outputDir), filepath.Base(filename))
		key, err := publisher.PublishPNG(context.Background(), name, img)
		if err != nil {
			logger.Error("failed to publish render", logging.Error(err))
			os.Exit(1)
		}
		logger.Info("render published", logging.String("bucket", cfg.S3.Bucket), logging.String("key", key))
	}
}

// createScene resolves and builds the configured scene, loading textures when enabled
func createScene(cfg *config.Config) (*scene.Scene, error) {
	desc, err := loaders.ResolveScene(cfg.Scene, cfg.ScenesDir)
	if err != nil {
		return nil, err
	}

	var loadTexture scene.TextureLoader
	if cfg.Textures {
		loadTexture = loaders.NewTextureLoader(cfg.AssetsDir, cfg.MaxTextureSize)
	}
	return scene.Build(desc, loadTexture)
}

// createView applies the command line camera and time of day to the scene's initial view
func createView(s *scene.Scene, opts viewOptions) (*controls.View, error) {
	view := controls.NewView(s)
	if err := view.ApplyAll(controls.ViewCommands(opts.Yaw, opts.Pitch, opts.Zoom, opts.Night)); err != nil {
		return nil, err
	}
	return view, nil
}

// createOutputDir returns output/<scene> for a scene name or file path
func createOutputDir(root, sceneName string) string {
	base := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	if sceneName == "" || base == "" || base == "." {
		base = loaders.BuiltinScene
	}
	return filepath.Join(root, base)
}

func renderFilename(t time.Time) string {
	return fmt.Sprintf("render_%s.png", t.Format("20060102_150405"))
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return file.Close()
}
