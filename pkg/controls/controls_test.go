package controls

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

func newTestView(t *testing.T) *View {
	t.Helper()
	s, err := scene.Build(scene.DefaultDiorama(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return NewView(s)
}

func TestNewView(t *testing.T) {
	view := newTestView(t)

	if !view.IsDay {
		t.Error("Expected the view to start in daytime")
	}
	if view.Camera.Eye != core.NewVec3(-1.5, 2, 5) {
		t.Errorf("Expected diorama eye, got %v", view.Camera.Eye)
	}
	if view.Light.Position != core.NewVec3(1, 5, 5) {
		t.Errorf("Expected initial light at (1,5,5), got %v", view.Light.Position)
	}
}

func TestView_Apply(t *testing.T) {
	view := newTestView(t)
	center := view.Camera.Center
	radius := view.Camera.Eye.Subtract(center).Length()

	if err := view.Apply(Orbit(RotationSpeed, 0)); err != nil {
		t.Fatalf("Apply(orbit) error: %v", err)
	}
	if got := view.Camera.Eye.Subtract(center).Length(); math.Abs(got-radius) > 1e-9 {
		t.Errorf("Expected orbit to keep radius %f, got %f", radius, got)
	}

	if err := view.Apply(Zoom(ZoomStep)); err != nil {
		t.Fatalf("Apply(zoom) error: %v", err)
	}
	if got := view.Camera.Eye.Subtract(center).Length(); math.Abs(got-(radius-ZoomStep)) > 1e-9 {
		t.Errorf("Expected zoom to distance %f, got %f", radius-ZoomStep, got)
	}

	if err := view.Apply(Toggle()); err != nil {
		t.Fatalf("Apply(toggle) error: %v", err)
	}
	if view.IsDay {
		t.Error("Expected night after toggle")
	}
	if view.Light.Position != core.NewVec3(-2, 5, 5) || view.Light.Color != core.NewColor(100, 100, 200) {
		t.Errorf("Expected night light, got %+v", view.Light)
	}

	if err := view.Apply(Command{Action: "jump"}); err == nil {
		t.Error("Expected error for unknown action")
	}
}

func TestCommand_JSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Command
	}{
		{`{"action":"orbit","yaw":0.5,"pitch":-0.25}`, Orbit(0.5, -0.25)},
		{`{"action":"zoom","delta":-0.4}`, Zoom(-0.4)},
		{`{"action":"toggle"}`, Toggle()},
	}

	for _, tt := range tests {
		t.Run(tt.expected.Action, func(t *testing.T) {
			var cmd Command
			if err := json.Unmarshal([]byte(tt.input), &cmd); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if cmd != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, cmd)
			}
		})
	}
}

func TestViewCommands(t *testing.T) {
	tests := []struct {
		name     string
		yaw      float64
		pitch    float64
		zoom     float64
		night    bool
		expected []string
	}{
		{"initial view", 0, 0, 0, false, nil},
		{"pitch only", 0, 0.2, 0, false, []string{ActionOrbit}},
		{"zoom at night", 0, 0, -1, true, []string{ActionZoom, ActionToggle}},
		{"everything", 0.5, 0.1, 1, true, []string{ActionOrbit, ActionZoom, ActionToggle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := ViewCommands(tt.yaw, tt.pitch, tt.zoom, tt.night)
			if len(cmds) != len(tt.expected) {
				t.Fatalf("Expected %d commands, got %d", len(tt.expected), len(cmds))
			}
			for i, action := range tt.expected {
				if cmds[i].Action != action {
					t.Errorf("Command %d: expected %s, got %s", i, action, cmds[i].Action)
				}
			}
		})
	}
}

func TestView_ApplyAll(t *testing.T) {
	view := newTestView(t)
	if err := view.ApplyAll(ViewCommands(0, 0, 0, true)); err != nil {
		t.Fatalf("ApplyAll failed: %v", err)
	}
	if view.IsDay {
		t.Error("Expected night after applying the night commands")
	}

	err := view.ApplyAll([]Command{Toggle(), {Action: "spin"}, Toggle()})
	if err == nil {
		t.Fatal("Expected an error for the unknown action")
	}
	// The first toggle applied, the one after the error did not
	if !view.IsDay {
		t.Error("Expected ApplyAll to stop at the failing command")
	}
}
