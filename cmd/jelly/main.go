package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"jelly-engine/internal/audio"
	"jelly-engine/internal/commands"
	"jelly-engine/internal/debug"
	"jelly-engine/internal/engineconfig"
	"jelly-engine/internal/env"
	"jelly-engine/internal/fonts"
	"jelly-engine/internal/game"
	"jelly-engine/internal/graphics"
	"jelly-engine/internal/input"
	"jelly-engine/internal/logger"
	"jelly-engine/internal/physics"
	"jelly-engine/internal/prototype"
	"jelly-engine/internal/render"
	"jelly-engine/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jelly: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := env.Load(".env"); err != nil {
		return err
	}
	stored, err := engineconfig.Load(engineconfig.Path)
	if err != nil {
		return err
	}
	prefs, err := engineconfig.ApplyEnv(stored)
	if err != nil {
		return err
	}

	log := logger.New(prefs.LogPath)
	protos, err := prototype.LoadDir(prefs.PrototypeDir)
	if err != nil {
		return err
	}
	world := physics.NewWorld(prefs.Physics())
	g, err := game.New(world, protos, game.Options{Log: log})
	if err != nil {
		return err
	}

	player := audio.New(0.5)
	if err := player.Init(); err != nil {
		log.Logf("audio disabled: %v", err)
	}
	defer player.Close()
	player.SetMuted(prefs.Muted)
	g.OnBrickHit = func(*physics.Body) { player.PlayHit() }
	g.OnTitle = func(title string) {
		graphics.SetTitle(title)
		player.PlayRound()
	}

	dbg := debug.New(world)
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMemAlloc
	dbg.ShowStats = prefs.ShowStats

	reg := commands.NewRegistry()
	commands.RegisterWorld(reg, world, log.Log)
	commands.RegisterToggle(reg, "fps", &dbg.ShowFPS, log.Log)
	commands.RegisterToggle(reg, "mem", &dbg.ShowMemAlloc, log.Log)
	commands.RegisterToggle(reg, "counters", &dbg.ShowStats, log.Log)
	commands.RegisterHelp(reg, log.Log)
	term := terminal.New(log, reg)

	tf := render.Identity(prefs.Height)
	update := func(dt float64) {
		term.Update()
		var in input.State
		if !term.IsOpen() {
			in = graphics.PollInput()
		}
		g.Step(dt, in)
	}
	// Fonts need the GL context, so they load on the first frame.
	fontLoaded := prefs.Font == ""
	draw := func() {
		if !fontLoaded {
			fontLoaded = true
			if path, err := fonts.FindFont(prefs.Font, nil); err == nil {
				font := rl.LoadFontEx(path, 32, nil)
				term.SetFont(font)
				dbg.SetFont(font)
			} else {
				log.Logf("font %q not found under assets/fonts", prefs.Font)
			}
		}
		graphics.DrawBodies(world.Bodies(), tf)
		term.Draw()
		dbg.Draw()
	}

	log.Logf("starting %s", prefs.Title)
	graphics.Run(graphics.Window{
		Width:     int32(prefs.Width),
		Height:    int32(prefs.Height),
		Title:     prefs.Title,
		TargetFPS: int32(prefs.TargetFPS),
	}, update, draw)

	// Overlay toggles made in the console persist; env overrides do not.
	stored.ShowFPS = dbg.ShowFPS
	stored.ShowMemAlloc = dbg.ShowMemAlloc
	stored.ShowStats = dbg.ShowStats
	return engineconfig.Save(engineconfig.Path, stored)
}
