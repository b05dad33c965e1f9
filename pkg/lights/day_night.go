package lights

import "github.com/df07/diorama-raytracer/pkg/core"

// Preset is the light placement and sky color for one time of day
type Preset struct {
	Sky      core.Color
	Position core.Vec3
	Color    core.Color
}

// DayNightCycle holds the two presets the toggle switches between.
// Intensity is never touched by the toggle.
type DayNightCycle struct {
	Day   Preset
	Night Preset
}

// DefaultDayNightCycle returns the blue-sky day and the moonlit night
func DefaultDayNightCycle() DayNightCycle {
	return DayNightCycle{
		Day: Preset{
			Sky:      core.NewColor(68, 142, 228),
			Position: core.NewVec3(2, 5, 5),
			Color:    core.White(),
		},
		Night: Preset{
			Sky:      core.NewColor(25, 25, 112),
			Position: core.NewVec3(-2, 5, 5),
			Color:    core.NewColor(100, 100, 200),
		},
	}
}

// DefaultLight is the light a scene starts with before the first toggle
func DefaultLight() PointLight {
	return NewPointLight(core.NewVec3(1, 5, 5), core.White(), 1.0)
}

// Preset returns the day or night preset
func (c DayNightCycle) Preset(isDay bool) Preset {
	if isDay {
		return c.Day
	}
	return c.Night
}

// Sky returns the background color for the given time of day
func (c DayNightCycle) Sky(isDay bool) core.Color {
	return c.Preset(isDay).Sky
}

// Apply moves the light and recolors it for the given time of day
func (c DayNightCycle) Apply(light *PointLight, isDay bool) {
	preset := c.Preset(isDay)
	light.Position = preset.Position
	light.Color = preset.Color
}

// Toggle flips the time of day, applies it to the light and returns the new state
func (c DayNightCycle) Toggle(light *PointLight, isDay bool) bool {
	isDay = !isDay
	c.Apply(light, isDay)
	return isDay
}
