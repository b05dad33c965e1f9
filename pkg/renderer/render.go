package renderer

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/geometry"
	"github.com/df07/diorama-raytracer/pkg/lights"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

// FieldOfView is the vertical field of view in radians
const FieldOfView = math.Pi / 3

// pass binds everything one frame reads. Nothing in it changes until the pass ends.
type pass struct {
	fb        *Framebuffer
	camera    *geometry.Camera
	raytracer *Raytracer
}

func newPass(fb *Framebuffer, s *scene.Scene, camera *geometry.Camera, light lights.PointLight, isDay bool) *pass {
	return &pass{
		fb:        fb,
		camera:    camera,
		raytracer: NewRaytracer(s.Shapes, light, s.Cycle.Sky(isDay)),
	}
}

// PrimaryDirection returns the world-space direction of the ray through pixel (x, y)
func PrimaryDirection(x, y, width, height int, camera *geometry.Camera) core.Vec3 {
	w := float64(width)
	h := float64(height)
	aspectRatio := w / h
	perspectiveScale := math.Tan(FieldOfView * 0.5)

	screenX := (2*float64(x))/w - 1
	screenY := -(2*float64(y))/h + 1

	screenX *= aspectRatio * perspectiveScale
	screenY *= perspectiveScale

	direction := core.NewVec3(screenX, screenY, -1).Normalize()
	return camera.BaseChange(direction)
}

// renderBounds shades every pixel inside bounds and returns how many it wrote
func (p *pass) renderBounds(bounds image.Rectangle) int {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			direction := PrimaryDirection(x, y, p.fb.Width, p.fb.Height, p.camera)
			p.fb.SetPixel(x, y, p.raytracer.CastRay(p.camera.Eye, direction, 0))
		}
	}
	return bounds.Dx() * bounds.Dy()
}

// Render draws one frame in scan order on the calling goroutine
func Render(fb *Framebuffer, s *scene.Scene, camera *geometry.Camera, light lights.PointLight, isDay bool) {
	newPass(fb, s, camera, light, isDay).renderBounds(image.Rect(0, 0, fb.Width, fb.Height))
}

// RenderParallel draws one frame with a worker pool. The output is identical to
// Render. On cancellation the frame is left partially drawn and ctx.Err() is returned.
func RenderParallel(ctx context.Context, fb *Framebuffer, s *scene.Scene, camera *geometry.Camera, light lights.PointLight, isDay bool, workers int) (RenderStats, error) {
	start := time.Now()
	tiles := NewTileGrid(fb.Width, fb.Height, DefaultTileSize)

	pool := newWorkerPool(newPass(fb, s, camera, light, isDay), len(tiles), workers)
	pool.Start(ctx)

	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: tile.ID})
	}

	stats := RenderStats{Tiles: len(tiles), Workers: pool.GetNumWorkers()}
	var firstErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		stats.TotalPixels += result.Pixels
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	return stats, firstErr
}
