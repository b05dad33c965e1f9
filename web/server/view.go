package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/diorama-raytracer/pkg/controls"
	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/logging"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

const (
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
	// maxCommandSize bounds one client message
	maxCommandSize = 4096
)

// upgrader keeps the default origin check: browsers may only open the view socket from this host
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ViewEvent is one message sent to the browser over the view socket
type ViewEvent struct {
	Type      string          `json:"type"` // "frame", "console", "error"
	ImageData string          `json:"imageData,omitempty"`
	Width     int             `json:"width,omitempty"`
	Height    int             `json:"height,omitempty"`
	ElapsedMs int64           `json:"elapsedMs"`
	Frame     int             `json:"frame,omitempty"`
	IsDay     bool            `json:"isDay"` // Set on frame and error events
	Console   *ConsoleMessage `json:"console,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// viewSession is one browser connected to /api/view. Commands are applied
// only between frames, on the session goroutine.
type viewSession struct {
	server *Server
	conn   *websocket.Conn
	scene  *scene.Scene
	view   *controls.View
	width  int
	height int
	frames int
	send   chan []byte
	logger core.Logger
}

// handleView upgrades to a WebSocket, streams rendered frames and applies camera commands
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseFrameRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
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

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response
		logging.FromContext(r.Context()).Warn("websocket upgrade failed", logging.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionID := logging.GenerateRequestID()
	consoleChan := make(chan ConsoleMessage, 50)
	session := &viewSession{
		server: s,
		conn:   conn,
		scene:  sceneObj,
		view:   view,
		width:  req.Width,
		height: req.Height,
		send:   make(chan []byte, 16),
		logger: NewWebLogger(sessionID, consoleChan, logging.FromContext(r.Context())),
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		session.writeLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		session.streamConsoleMessages(ctx, consoleChan)
	}()

	commands := make(chan controls.Command, 16)
	go session.readLoop(ctx, cancel, commands)

	session.run(ctx, commands)
	cancel()
	wg.Wait()
}

// readLoop decodes client commands until the connection fails
func (vs *viewSession) readLoop(ctx context.Context, cancel context.CancelFunc, commands chan<- controls.Command) {
	defer cancel()
	vs.conn.SetReadLimit(maxCommandSize)
	for {
		var cmd controls.Command
		if err := vs.conn.ReadJSON(&cmd); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				vs.logger.Printf("Ignoring malformed command: %v\n", err)
				continue
			}
			return
		}
		select {
		case commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

// run renders the first frame, then one frame per batch of queued commands
func (vs *viewSession) run(ctx context.Context, commands <-chan controls.Command) {
	vs.logger.Printf("Viewing %s at %dx%d (%d primitives)\n", vs.scene.Name, vs.width, vs.height, vs.scene.GetPrimitiveCount())
	if !vs.renderAndSend(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-commands:
			vs.apply(ctx, cmd)
		drain:
			for {
				select {
				case next := <-commands:
					vs.apply(ctx, next)
				default:
					break drain
				}
			}
			if !vs.renderAndSend(ctx) {
				return
			}
		}
	}
}

func (vs *viewSession) apply(ctx context.Context, cmd controls.Command) {
	wasDay := vs.view.IsDay
	if err := vs.view.Apply(cmd); err != nil {
		vs.queue(ctx, ViewEvent{Type: "error", IsDay: vs.view.IsDay, Error: err.Error()})
		return
	}
	if vs.view.IsDay != wasDay {
		if vs.view.IsDay {
			vs.logger.Printf("Switched to day\n")
		} else {
			vs.logger.Printf("Switched to night\n")
		}
	}
}

// renderAndSend renders the current view and queues it. It returns false once the session is over.
func (vs *viewSession) renderAndSend(ctx context.Context) bool {
	fb, stats, err := vs.server.renderFrame(ctx, vs.scene, vs.view, vs.width, vs.height)
	if err != nil {
		return false
	}
	imageData, err := imageToBase64PNG(fb.Image())
	if err != nil {
		vs.queue(ctx, ViewEvent{Type: "error", IsDay: vs.view.IsDay, Error: err.Error()})
		return true
	}

	vs.frames++
	vs.logger.Printf("Frame %d: %d tiles on %d workers in %dms (%.0f px/s)\n",
		vs.frames, stats.Tiles, stats.Workers, stats.Elapsed.Milliseconds(), stats.PixelsPerSecond())
	return vs.queue(ctx, ViewEvent{
		Type:      "frame",
		ImageData: imageData,
		Width:     vs.width,
		Height:    vs.height,
		ElapsedMs: stats.Elapsed.Milliseconds(),
		Frame:     vs.frames,
		IsDay:     vs.view.IsDay,
	})
}

// queue hands an event to the writer, giving up when ctx ends
func (vs *viewSession) queue(ctx context.Context, event ViewEvent) bool {
	data, err := json.Marshal(event)
	if err != nil {
		return true
	}
	select {
	case vs.send <- data:
		return true
	case <-ctx.Done():
		return false
	}
}

// streamConsoleMessages forwards console messages as events, dropping them when the writer is behind
func (vs *viewSession) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			data, err := json.Marshal(ViewEvent{Type: "console", Console: &msg})
			if err != nil {
				continue
			}
			select {
			case vs.send <- data:
			case <-ctx.Done():
				return
			default:
				// Channel full, skip message to avoid blocking
			}
		case <-ctx.Done():
			return
		}
	}
}

// writeLoop is the only goroutine that writes to the connection
func (vs *viewSession) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-vs.send:
			vs.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := vs.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			vs.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := vs.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			vs.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			_ = vs.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
