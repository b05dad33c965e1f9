package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultWidth is the framebuffer width in pixels.
	DefaultWidth = 800
	// DefaultHeight is the framebuffer height in pixels.
	DefaultHeight = 600
	// DefaultAssetsDir is where texture paths in scene descriptions are resolved.
	DefaultAssetsDir = "assets"
	// DefaultScenesDir holds YAML scene files.
	DefaultScenesDir = "scenes"
	// DefaultMaxTextureSize bounds the larger side of a loaded texture.
	DefaultMaxTextureSize = 512
	// DefaultLogLevel controls verbosity.
	DefaultLogLevel = "info"
	// DefaultAddr is the web server listen address.
	DefaultAddr = ":8080"
	// DefaultOutputDir is where the CLI writes renders.
	DefaultOutputDir = "output"
	// DefaultEnvFile is loaded before reading the environment when present.
	DefaultEnvFile = ".env"
)

// Config captures all runtime tunables shared by the CLI, viewer and web server.
type Config struct {
	Width          int
	Height         int
	Scene          string
	ScenesDir      string
	AssetsDir      string
	Textures       bool
	MaxTextureSize int
	Workers        int
	LogLevel       string
	Addr           string
	OutputDir      string
	S3             S3Config
}

// S3Config describes where finished renders are published.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Enabled reports whether a publish target is configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Load reads envFile into the process environment (existing variables win,
// a missing file is ignored) and then builds the configuration from the
// environment, applying defaults and collecting every invalid override.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Scene:          strings.TrimSpace(os.Getenv("DIORAMA_SCENE")),
		ScenesDir:      getString("DIORAMA_SCENES_DIR", DefaultScenesDir),
		AssetsDir:      getString("DIORAMA_ASSETS_DIR", DefaultAssetsDir),
		Textures:       true,
		MaxTextureSize: DefaultMaxTextureSize,
		LogLevel:       getString("DIORAMA_LOG_LEVEL", DefaultLogLevel),
		Addr:           getString("DIORAMA_ADDR", DefaultAddr),
		OutputDir:      getString("DIORAMA_OUTPUT_DIR", DefaultOutputDir),
		S3: S3Config{
			Bucket:    strings.TrimSpace(os.Getenv("S3_BUCKET")),
			Region:    strings.TrimSpace(os.Getenv("S3_REGION")),
			Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
			AccessKey: strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
			SecretKey: strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
			Prefix:    strings.TrimSpace(os.Getenv("S3_PREFIX")),
		},
	}

	var problems []string

	positiveInt := func(key string, target *int) {
		if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil || value <= 0 {
				problems = append(problems, fmt.Sprintf("%s must be a positive integer, got %q", key, raw))
			} else {
				*target = value
			}
		}
	}
	positiveInt("DIORAMA_WIDTH", &cfg.Width)
	positiveInt("DIORAMA_HEIGHT", &cfg.Height)

	if raw := strings.TrimSpace(os.Getenv("DIORAMA_MAX_TEXTURE_SIZE")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("DIORAMA_MAX_TEXTURE_SIZE must be a non-negative integer, got %q", raw))
		} else {
			cfg.MaxTextureSize = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("DIORAMA_WORKERS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("DIORAMA_WORKERS must be a non-negative integer, got %q", raw))
		} else {
			cfg.Workers = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("DIORAMA_TEXTURES")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("DIORAMA_TEXTURES must be a boolean value, got %q", raw))
		} else {
			cfg.Textures = value
		}
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	default:
		problems = append(problems, fmt.Sprintf("DIORAMA_LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel))
	}

	if cfg.S3.Enabled() && cfg.S3.Region == "" {
		problems = append(problems, "S3_REGION is required when S3_BUCKET is set")
	}
	if (cfg.S3.AccessKey == "") != (cfg.S3.SecretKey == "") {
		problems = append(problems, "S3_ACCESS_KEY and S3_SECRET_KEY must be provided together")
	}

	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "; "))
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
