package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"jelly-engine/internal/input"
)

// Window describes the window Run opens.
type Window struct {
	Width, Height int32
	Title         string
	TargetFPS     int32
}

// Run opens the window and runs the main loop. Each frame it calls update with the frame time in
// seconds, then clears the screen and calls draw. ESC is left to the console; close via the window button.
func Run(win Window, update func(dt float64), draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if win.TargetFPS <= 0 {
		win.TargetFPS = 60
	}
	rl.SetTargetFPS(win.TargetFPS)

	for !rl.WindowShouldClose() {
		update(float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// SetTitle changes the window title.
func SetTitle(title string) {
	rl.SetWindowTitle(title)
}

var keyMap = [input.KeyCount]int32{
	input.KeyUp:    rl.KeyUp,
	input.KeyDown:  rl.KeyDown,
	input.KeyLeft:  rl.KeyLeft,
	input.KeyRight: rl.KeyRight,
	input.KeySpace: rl.KeySpace,
	input.KeyEnter: rl.KeyEnter,
}

// PollInput snapshots the arrow keys, space and enter for this frame.
func PollInput() input.State {
	return input.FromHeld(
		func(k input.Key) bool { return rl.IsKeyDown(keyMap[k]) },
		func(k input.Key) bool { return rl.IsKeyPressed(keyMap[k]) },
		func(k input.Key) bool { return rl.IsKeyReleased(keyMap[k]) },
	)
}
