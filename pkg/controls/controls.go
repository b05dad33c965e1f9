package controls

import (
	"fmt"
	"math"

	"github.com/df07/diorama-raytracer/pkg/geometry"
	"github.com/df07/diorama-raytracer/pkg/lights"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

const (
	// RotationSpeed is the orbit step per key press, in radians
	RotationSpeed = math.Pi / 10
	// ZoomStep is the distance moved per zoom key press
	ZoomStep = 0.4
)

// Action names accepted in a Command
const (
	ActionOrbit  = "orbit"
	ActionZoom   = "zoom"
	ActionToggle = "toggle"
)

// Command is one user input, as sent by the web view or produced from key presses
type Command struct {
	Action string  `json:"action"`
	Yaw    float64 `json:"yaw,omitempty"`
	Pitch  float64 `json:"pitch,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
}

// Orbit returns a command that rotates the camera around its center
func Orbit(yaw, pitch float64) Command {
	return Command{Action: ActionOrbit, Yaw: yaw, Pitch: pitch}
}

// Zoom returns a command that moves the camera toward its center; negative moves away
func Zoom(delta float64) Command {
	return Command{Action: ActionZoom, Delta: delta}
}

// Toggle returns a command that flips between day and night
func Toggle() Command {
	return Command{Action: ActionToggle}
}

// View is the mutable per-viewer state: camera, light and time of day.
// It is only changed between render passes.
type View struct {
	Camera *geometry.Camera
	Light  lights.PointLight
	IsDay  bool
	Cycle  lights.DayNightCycle
}

// NewView starts a view at the scene's camera and light, in daytime
func NewView(s *scene.Scene) *View {
	return &View{
		Camera: geometry.NewCamera(s.Camera),
		Light:  s.Light,
		IsDay:  true,
		Cycle:  s.Cycle,
	}
}

// Apply mutates the view according to cmd
func (v *View) Apply(cmd Command) error {
	switch cmd.Action {
	case ActionOrbit:
		v.Camera.Orbit(cmd.Yaw, cmd.Pitch)
	case ActionZoom:
		v.Camera.Zoom(cmd.Delta)
	case ActionToggle:
		v.IsDay = v.Cycle.Toggle(&v.Light, v.IsDay)
	default:
		return fmt.Errorf("unknown action %q", cmd.Action)
	}
	return nil
}

// ViewCommands returns the commands that take a fresh view to the given
// orbit, zoom and time of day. Zero values issue no command.
func ViewCommands(yaw, pitch, zoom float64, night bool) []Command {
	var cmds []Command
	if yaw != 0 || pitch != 0 {
		cmds = append(cmds, Orbit(yaw, pitch))
	}
	if zoom != 0 {
		cmds = append(cmds, Zoom(zoom))
	}
	if night {
		cmds = append(cmds, Toggle())
	}
	return cmds
}

// ApplyAll applies cmds in order, stopping at the first error
func (v *View) ApplyAll(cmds []Command) error {
	for _, cmd := range cmds {
		if err := v.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}
