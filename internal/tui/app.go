package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"jelly-engine/internal/game"
	"jelly-engine/internal/render"
)

const frameTime = 16 * time.Millisecond // ~60 FPS

// App runs the game in a terminal: one world frame per tick, the world stretched over the screen
// with a status line at the bottom. Esc or Ctrl+C quits, 'p' pauses.
type App struct {
	screen tcell.Screen
	game   *game.Game
	keys   *Keys
	grid   *Grid
	world  [2]float32

	title  string
	paused bool
}

// NewApp wraps an initialised screen. width and height are the world size in world units.
func NewApp(screen tcell.Screen, g *game.Game, width, height float32) *App {
	a := &App{
		screen: screen,
		game:   g,
		keys:   NewKeys(DefaultHoldTimeout),
		world:  [2]float32{width, height},
		title:  game.Title,
	}
	a.resize()
	return a
}

// SetTitle changes the text shown in the status line.
func (a *App) SetTitle(title string) { a.title = title }

func (a *App) resize() {
	cols, rows := a.screen.Size()
	// Bottom row is the status line.
	a.grid = NewGrid(cols, max(rows-1, 1))
}

// Run blocks until the player quits.
func (a *App) Run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handle(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			in := a.keys.Snapshot(now)
			if !a.paused {
				a.game.Step(dt, in)
			}
			a.draw()
		}
	}
}

func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
			a.paused = !a.paused
			return true
		}
		if k, ok := MapKey(ev); ok {
			a.keys.Press(k, time.Now())
		}
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

func (a *App) draw() {
	a.screen.Clear()
	a.grid.Clear()
	a.grid.Rasterize(a.game.World.Bodies(), render.Fit(a.world[0], a.world[1], a.grid.Cols, a.grid.Rows))

	for y := 0; y < a.grid.Rows; y++ {
		for x := 0; x < a.grid.Cols; x++ {
			c := a.grid.At(x, y)
			if c.Rune == 0 {
				continue
			}
			r, g, b := render.RGB(c.Color)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			a.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}

	status := fmt.Sprintf(" %s | score %d | bricks %d/%d | arrows/wasd move, p pause, esc quit",
		a.title, a.game.Score(), a.game.Broken(), game.BrickCount)
	if a.paused {
		status += " | PAUSED"
	}
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	for x, ch := range []rune(status) {
		if x >= a.grid.Cols {
			break
		}
		a.screen.SetContent(x, a.grid.Rows, ch, nil, statusStyle)
	}
	a.screen.Show()
}
