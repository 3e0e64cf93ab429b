// Package gui renders the pendulum in a desktop window with Raylib and feeds
// mouse and keyboard input into the session. This is the primary interactive
// surface: grab the bob with the left button, drag, release.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/pendlab/internal/config"
	"github.com/san-kum/pendlab/internal/session"
	"github.com/san-kum/pendlab/internal/trace"
)

type App struct {
	sess     *session.Session
	cfg      *config.Config
	recorder *trace.Recorder
	font     rl.Font
}

func NewApp(cfg *config.Config, sess *session.Session, rec *trace.Recorder) *App {
	return &App{sess: sess, cfg: cfg, recorder: rec}
}

// Run opens the window and blocks in the frame loop until it is closed.
func (a *App) Run() {
	rl.InitWindow(int32(a.cfg.Window.Width), int32(a.cfg.Window.Height), a.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(a.cfg.Window.FPS))

	a.font = loadFont()

	for !rl.WindowShouldClose() {
		a.handleInput()
		snap := a.sess.OnFrame()
		if a.recorder != nil {
			a.recorder.Observe(snap)
		}
		a.draw(snap)
	}
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// handleInput forwards this frame's events to the session, before the tick.
func (a *App) handleInput() {
	mouse := rl.GetMousePosition()
	a.sess.OnPointerMove(float64(mouse.X), float64(mouse.Y))

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.sess.OnPointerDown()
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.sess.OnPointerUp()
	}

	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		a.sess.OnKey(session.ActionGravityUp)
	case rl.IsKeyPressed(rl.KeyDown):
		a.sess.OnKey(session.ActionGravityDown)
	case rl.IsKeyPressed(rl.KeyLeft):
		a.sess.OnKey(session.ActionMassDown)
	case rl.IsKeyPressed(rl.KeyRight):
		a.sess.OnKey(session.ActionMassUp)
	case rl.IsKeyPressed(rl.KeyR):
		if rl.IsKeyDown(rl.KeyLeftShift) {
			a.sess.OnKey(session.ActionFullReset)
		} else {
			a.sess.OnKey(session.ActionReset)
		}
	}
}
