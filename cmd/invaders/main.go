//go:build !js
// +build !js

// Command invaders runs the game in a desktop window.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/config"
	"github.com/simukka/sorades-invaders/game"
	"github.com/simukka/sorades-invaders/highscore"
	"github.com/simukka/sorades-invaders/ui"
)

// App adapts the simulation to ebiten's Update/Draw/Layout loop.
type App struct {
	game   *game.Game
	tuning config.Tuning
	scores highscore.Store
	sound  *sound

	snap  game.Snapshot
	stats ui.StatsOverlay

	started   time.Time
	last      time.Time
	submitted bool
}

func newApp(t config.Tuning, seed uint32, scores highscore.Store, snd *sound) *App {
	g := game.NewGame(t, common.NewSeededRNG(seed))
	g.SetHighScore(scores.Load())

	now := time.Now()
	return &App{
		game:    g,
		tuning:  t,
		scores:  scores,
		sound:   snd,
		started: now,
		last:    now,
	}
}

// Update advances the game by the wall-clock time since the last call.
func (a *App) Update() error {
	now := time.Now()
	dt := min(now.Sub(a.last).Seconds(), config.MaxDeltaTime)
	a.last = now

	a.handleCommands()
	a.game.StepFrame(dt, readIntents())

	for _, ev := range a.game.Events() {
		a.sound.play(ev.Kind)
	}
	if a.game.Status() == game.StatusGameOver && !a.submitted {
		a.submitScore()
	}

	a.stats.UpdateFPS(float64(now.Sub(a.started).Milliseconds()))
	return nil
}

func (a *App) handleCommands() {
	status := a.game.Status()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if status == game.StatusMenu || status == game.StatusGameOver {
			a.game.StartGame()
			a.submitted = false
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		a.game.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if status != game.StatusMenu {
			if status != game.StatusGameOver {
				a.submitScore()
			}
			a.game.ReturnToMenu()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		a.stats.Toggle()
	}
}

func (a *App) submitScore() {
	a.submitted = true
	best, err := highscore.Submit(a.scores, a.game.Ship.Score)
	if err != nil {
		log.Printf("failed to save high score: %v", err)
	}
	a.game.SetHighScore(best)
}

func readIntents() game.Intents {
	return game.Intents{
		Left:    ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:    inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyZ),
		Special: inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
}

// Layout reports the logical field size; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return int(a.tuning.FieldWidth), int(a.tuning.FieldHeight)
}

func defaultScoreFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "highscore.toml"
	}
	return filepath.Join(dir, "sorades-invaders", "highscore.toml")
}

func main() {
	configPath := flag.String("config", "", "TOML tuning file (defaults are used when empty)")
	seed := flag.Uint("seed", 0, "game seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "log simulation events to stderr")
	scoreFile := flag.String("score-file", defaultScoreFile(), "high score file")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	tuning := config.Default()
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}

	if *debug {
		game.EnableDebug = true
		game.SetDebugOutput(os.Stderr)
	}

	s := uint32(*seed)
	if s == 0 {
		s = uint32(time.Now().UnixNano())
	}

	snd := newSound(s, !*mute)
	app := newApp(tuning, s, highscore.NewFileStore(*scoreFile), snd)
	game.Debugf("seed=%d config=%q scores=%s", s, *configPath, *scoreFile)

	ebiten.SetWindowTitle("Sorades Invaders")
	ebiten.SetWindowSize(int(tuning.FieldWidth), int(tuning.FieldHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
