package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/diorama-raytracer/pkg/controls"
	"github.com/df07/diorama-raytracer/pkg/logging"
	"github.com/df07/diorama-raytracer/pkg/renderer"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

var keyBindings = map[controls.Key]ebiten.Key{
	controls.KeyLeft:  ebiten.KeyArrowLeft,
	controls.KeyRight: ebiten.KeyArrowRight,
	controls.KeyUp:    ebiten.KeyArrowUp,
	controls.KeyDown:  ebiten.KeyArrowDown,
	controls.KeyW:     ebiten.KeyW,
	controls.KeyS:     ebiten.KeyS,
	controls.KeyT:     ebiten.KeyT,
}

// Game presents the diorama in a window. Input is applied in Update and a
// frame is rendered in Draw only when the view changed.
type Game struct {
	scene   *scene.Scene
	view    *controls.View
	fb      *renderer.Framebuffer
	frame   *ebiten.Image
	pix     []byte
	workers int
	dirty   bool
	frames  int
	logger  *logging.Logger
}

// NewGame creates a game rendering s at width x height
func NewGame(s *scene.Scene, width, height, workers int, logger *logging.Logger) *Game {
	return &Game{
		scene:   s,
		view:    controls.NewView(s),
		fb:      renderer.NewFramebuffer(width, height),
		frame:   ebiten.NewImage(width, height),
		pix:     make([]byte, width*height*4),
		workers: workers,
		dirty:   true,
		logger:  logger,
	}
}

// Update applies key presses to the view
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, key := range controls.BoundKeys {
		if !inpututil.IsKeyJustPressed(keyBindings[key]) {
			continue
		}
		cmd, _ := controls.CommandForKey(key)
		if err := g.view.Apply(cmd); err != nil {
			return err
		}
		g.dirty = true
		if cmd.Action == controls.ActionToggle {
			g.logger.Info("time of day switched", logging.Bool("day", g.view.IsDay))
		}
	}
	return nil
}

// Draw renders the view when it changed and presents the framebuffer
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		stats, err := renderer.RenderParallel(context.Background(), g.fb, g.scene, g.view.Camera, g.view.Light, g.view.IsDay, g.workers)
		if err != nil {
			g.logger.Error("render failed", logging.Error(err))
			return
		}
		g.fb.CopyPix(g.pix)
		g.frame.WritePixels(g.pix)
		g.dirty = false
		g.frames++
		g.logger.Debug("frame rendered",
			logging.Int("frame", g.frames),
			logging.Int("tiles", stats.Tiles),
			logging.Duration("elapsed_ms", stats.Elapsed))
	}
	screen.DrawImage(g.frame, nil)
}

// Layout keeps the logical screen at the framebuffer size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
