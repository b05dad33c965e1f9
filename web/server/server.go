package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzhttp"

	"github.com/df07/diorama-raytracer/pkg/config"
	"github.com/df07/diorama-raytracer/pkg/loaders"
	"github.com/df07/diorama-raytracer/pkg/logging"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

// Request limits shared by the frame, inspect and view endpoints
const (
	MinDimension = 16
	MaxDimension = 2000
	MaxZoom      = 20.0
)

var errSceneUnavailable = errors.New("failed to load scene")

// Server handles web requests for the diorama viewer
type Server struct {
	cfg       *config.Config
	staticDir string
	logger    *logging.Logger

	mu     sync.Mutex
	scenes map[string]*scene.Scene // Built scenes by id, shared read-only between requests
}

// NewServer creates a new web server
func NewServer(cfg *config.Config, staticDir string, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.L()
	}
	return &Server{
		cfg:       cfg,
		staticDir: staticDir,
		logger:    logger,
		scenes:    make(map[string]*scene.Scene),
	}
}

// Handler returns the routed handler. The WebSocket endpoint is not gzip
// wrapped because the upgrade needs the raw connection.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", gzhttp.GzipHandler(http.FileServer(http.Dir(s.staticDir))))

	mux.Handle("/api/health", gzhttp.GzipHandler(http.HandlerFunc(s.handleHealth)))
	mux.Handle("/api/scenes", gzhttp.GzipHandler(http.HandlerFunc(s.handleScenes)))
	mux.Handle("/api/scene-config", gzhttp.GzipHandler(http.HandlerFunc(s.handleSceneConfig)))
	mux.Handle("/api/inspect", gzhttp.GzipHandler(http.HandlerFunc(s.handleInspect)))
	mux.HandleFunc("/api/frame", s.handleFrame)
	mux.HandleFunc("/api/view", s.handleView)

	return logging.HTTPMiddleware(s.logger)(mux)
}

// Start starts the web server
func (s *Server) Start() error {
	s.logger.Info("starting web server", logging.String("addr", s.cfg.Addr))
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scene and the scene files on disk
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.cfg.ScenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the initial camera, light and day/night presets of a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneObj, err := s.loadScene(r.URL.Query().Get("scene"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cam := sceneObj.Camera
	response := map[string]interface{}{
		"scene":      sceneObj.Name,
		"primitives": sceneObj.GetPrimitiveCount(),
		"camera": map[string]interface{}{
			"eye":    [3]float64{cam.Eye.X, cam.Eye.Y, cam.Eye.Z},
			"center": [3]float64{cam.Center.X, cam.Center.Y, cam.Center.Z},
			"up":     [3]float64{cam.Up.X, cam.Up.Y, cam.Up.Z},
		},
		"light": map[string]interface{}{
			"position":  [3]float64{sceneObj.Light.Position.X, sceneObj.Light.Position.Y, sceneObj.Light.Position.Z},
			"color":     sceneObj.Light.Color.String(),
			"intensity": sceneObj.Light.Intensity,
		},
		"sky": map[string]string{
			"day":   sceneObj.Cycle.Sky(true).String(),
			"night": sceneObj.Cycle.Sky(false).String(),
		},
		"defaults": map[string]int{
			"width":  s.cfg.Width,
			"height": s.cfg.Height,
		},
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": MinDimension, "max": MaxDimension},
			"height": map[string]int{"min": MinDimension, "max": MaxDimension},
			"zoom":   map[string]float64{"min": -MaxZoom, "max": MaxZoom},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// loadScene builds a scene by id once and caches it. Ids are "diorama" or a
// discovered "yaml:<name>" id inside the scenes directory. An empty id selects
// the configured scene, which may be any path the operator chose.
func (s *Server) loadScene(id string) (*scene.Scene, error) {
	key := "config:" + s.cfg.Scene
	if id != "" || s.cfg.Scene == "" {
		if id == "" {
			id = loaders.BuiltinScene
		}
		canonical, err := loaders.SceneID(id)
		if err != nil {
			return nil, err
		}
		key = canonical
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.scenes[key]; ok {
		return cached, nil
	}

	var desc *scene.Description
	var err error
	if strings.HasPrefix(key, "config:") {
		desc, err = loaders.ResolveScene(s.cfg.Scene, s.cfg.ScenesDir)
	} else {
		desc, err = loaders.ResolveSceneID(key, s.cfg.ScenesDir)
	}
	if errors.Is(err, loaders.ErrUnknownScene) {
		return nil, loaders.ErrUnknownScene
	}
	if err != nil {
		s.logger.Error("failed to load scene", logging.String("scene", key), logging.Error(err))
		return nil, errSceneUnavailable
	}

	var loadTexture scene.TextureLoader
	if s.cfg.Textures {
		loadTexture = loaders.NewTextureLoader(s.cfg.AssetsDir, s.cfg.MaxTextureSize)
	}

	sceneObj, err := scene.Build(desc, loadTexture)
	if err != nil {
		s.logger.Error("failed to build scene", logging.String("scene", key), logging.Error(err))
		return nil, errSceneUnavailable
	}

	s.logger.Info("scene loaded",
		logging.String("scene", key),
		logging.Int("primitives", sceneObj.GetPrimitiveCount()))
	s.scenes[key] = sceneObj
	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
