package controls

// Key names a viewer key independent of the windowing library
type Key string

// Keys bound to view commands
const (
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyW      Key = "w"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyEscape Key = "escape"
)

// BoundKeys lists the keys CommandForKey maps, in the order a frame loop should poll them
var BoundKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyW, KeyS, KeyT}

// CommandForKey returns the command a key press issues
func CommandForKey(key Key) (Command, bool) {
	switch key {
	case KeyLeft:
		return Orbit(-RotationSpeed, 0), true
	case KeyRight:
		return Orbit(RotationSpeed, 0), true
	case KeyUp:
		return Orbit(0, -RotationSpeed), true
	case KeyDown:
		return Orbit(0, RotationSpeed), true
	case KeyW:
		return Zoom(ZoomStep), true
	case KeyS:
		return Zoom(-ZoomStep), true
	case KeyT:
		return Toggle(), true
	}
	return Command{}, false
}
