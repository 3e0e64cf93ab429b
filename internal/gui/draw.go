package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/session"
)

var (
	colSky      = rl.NewColor(204, 230, 255, 255)
	colArm      = rl.Gray
	colBobOuter = rl.DarkGray
	colBobInner = rl.LightGray
	colText     = rl.Black
)

const (
	armThickness = 3.0
	textSize     = 30.0
)

func (a *App) draw(snap pendulum.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(colSky)

	origin := rl.NewVector2(float32(snap.Origin.X), float32(snap.Origin.Y))
	bob := rl.NewVector2(float32(snap.Bob.X), float32(snap.Bob.Y))

	rl.DrawLineEx(origin, bob, armThickness, colArm)
	rl.DrawCircleV(bob, pendulum.BobRadius, colBobOuter)
	rl.DrawCircleV(bob, pendulum.BobInnerRadius, colBobInner)

	for i, line := range session.FormatReadouts(snap.Readouts) {
		pos := rl.NewVector2(0, float32(session.ReadoutOffsets[i]))
		rl.DrawTextEx(a.font, line, pos, textSize, 1, colText)
	}
}
