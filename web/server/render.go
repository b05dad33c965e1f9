package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/diorama-raytracer/pkg/controls"
	"github.com/df07/diorama-raytracer/pkg/logging"
	"github.com/df07/diorama-raytracer/pkg/renderer"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

// FrameRequest describes one still frame: the scene, the framebuffer size and
// the controls applied to the scene's initial view before rendering
type FrameRequest struct {
	Scene  string
	Width  int
	Height int
	Yaw    float64 // Orbit around the camera center, radians
	Pitch  float64 // Orbit above the camera center, radians
	Zoom   float64 // Distance moved toward the center
	Night  bool
}

// parseFrameRequest parses the query parameters shared by /api/frame, /api/inspect and /api/view
func (s *Server) parseFrameRequest(r *http.Request) (*FrameRequest, error) {
	query := r.URL.Query()
	req := &FrameRequest{Scene: query.Get("scene")}

	var err error
	if req.Width, err = parseIntParam(query, "width", s.cfg.Width, MinDimension, MaxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", s.cfg.Height, MinDimension, MaxDimension); err != nil {
		return nil, err
	}
	if req.Yaw, err = parseFloatParam(query, "yaw", 0, -2*math.Pi, 2*math.Pi); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseFloatParam(query, "pitch", 0, -2*math.Pi, 2*math.Pi); err != nil {
		return nil, err
	}
	if req.Zoom, err = parseFloatParam(query, "zoom", 0, -MaxZoom, MaxZoom); err != nil {
		return nil, err
	}
	if req.Night, err = parseBoolParam(query, "night", false); err != nil {
		return nil, err
	}

	return req, nil
}

// Commands returns the control commands that take the initial view to the requested one
func (req *FrameRequest) Commands() []controls.Command {
	return controls.ViewCommands(req.Yaw, req.Pitch, req.Zoom, req.Night)
}

// newView creates the view a frame request describes
func newView(sceneObj *scene.Scene, req *FrameRequest) (*controls.View, error) {
	view := controls.NewView(sceneObj)
	if err := view.ApplyAll(req.Commands()); err != nil {
		return nil, err
	}
	return view, nil
}

// renderFrame renders one frame of view with the configured worker count
func (s *Server) renderFrame(ctx context.Context, sceneObj *scene.Scene, view *controls.View, width, height int) (*renderer.Framebuffer, renderer.RenderStats, error) {
	fb := renderer.NewFramebuffer(width, height)
	stats, err := renderer.RenderParallel(ctx, fb, sceneObj, view.Camera, view.Light, view.IsDay, s.cfg.Workers)
	if err != nil {
		return nil, stats, err
	}
	return fb, stats, nil
}

// handleFrame renders a single frame and returns it as PNG
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseFrameRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.loadScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := newView(sceneObj, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fb, stats, err := s.renderFrame(r.Context(), sceneObj, view, req.Width, req.Height)
	if err != nil {
		// Client went away mid-render
		logging.FromContext(r.Context()).Debug("frame cancelled", logging.Error(err))
		return
	}

	data, err := encodePNG(fb.Image())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logging.FromContext(r.Context()).Info("frame rendered",
		logging.String("scene", sceneObj.Name),
		logging.Int("width", req.Width),
		logging.Int("height", req.Height),
		logging.Int("tiles", stats.Tiles),
		logging.Duration("elapsed_ms", stats.Elapsed))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
