package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"jelly-engine/internal/audio"
	"jelly-engine/internal/engineconfig"
	"jelly-engine/internal/env"
	"jelly-engine/internal/game"
	"jelly-engine/internal/logger"
	"jelly-engine/internal/physics"
	"jelly-engine/internal/prototype"
	"jelly-engine/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jelly-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := env.Load(".env"); err != nil {
		return err
	}
	prefs, err := engineconfig.Load(engineconfig.Path)
	if err != nil {
		return err
	}
	if prefs, err = engineconfig.ApplyEnv(prefs); err != nil {
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	player := audio.New(0.5)
	if err := player.Init(); err != nil {
		// Non-fatal, the game runs without sound
		log.Logf("audio disabled: %v", err)
	}
	defer player.Close()
	player.SetMuted(prefs.Muted)

	app := tui.NewApp(screen, g, prefs.Width, prefs.Height)
	app.SetTitle(prefs.Title)
	g.OnBrickHit = func(*physics.Body) { player.PlayHit() }
	g.OnTitle = func(title string) {
		app.SetTitle(title)
		player.PlayRound()
	}

	log.Logf("starting %s in terminal", prefs.Title)
	app.Run()
	return nil
}
