//go:build js
// +build js

package main

import (
	"encoding/json"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/config"
	"github.com/simukka/sorades-invaders/game"
	"github.com/simukka/sorades-invaders/highscore"
	"github.com/simukka/sorades-invaders/ui"
)

// browser owns everything the page needs: the canvas, input latch, sound
// and the rAF loop.
type browser struct {
	game   *game.Game
	tuning config.Tuning
	ctx    *js.Object
	scores highscore.Store
	sound  *sound

	keys  game.KeyLatch
	snap  game.Snapshot
	stats ui.StatsOverlay

	lastFrame float64
	submitted bool
}

func main() {
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	query := js.Global.Get("location").Get("search").String()
	if hasParam(query, "debug") {
		game.EnableDebug = true
		game.SetDebugOutput(consoleWriter{})
	}

	// The server publishes its tuning; a plain static host falls back to
	// the defaults.
	js.Global.Call("fetch", "/api/tuning").
		Call("then", func(resp *js.Object) *js.Object {
			if !resp.Get("ok").Bool() {
				return js.Global.Get("Promise").Call("reject", "tuning unavailable")
			}
			return resp.Call("text")
		}).
		Call("then", func(body string) {
			start(canvas, decodeTuning(body))
		}).
		Call("catch", func(reason *js.Object) {
			game.Debug("using default tuning:", reason.String())
			start(canvas, config.Default())
		})

	select {}
}

func decodeTuning(body string) config.Tuning {
	t := config.Default()
	if err := json.Unmarshal([]byte(body), &t); err != nil {
		game.Debug("bad tuning:", err.Error())
		return config.Default()
	}
	if err := t.Validate(); err != nil {
		game.Debug("bad tuning:", err.Error())
		return config.Default()
	}
	return t
}

func start(canvas *js.Object, tuning config.Tuning) {
	canvas.Set("width", tuning.FieldWidth)
	canvas.Set("height", tuning.FieldHeight)

	seed := uint32(js.Global.Get("Date").Call("now").Int64())
	b := &browser{
		game:   game.NewGame(tuning, common.NewSeededRNG(seed)),
		tuning: tuning,
		ctx:    canvas.Call("getContext", "2d"),
		scores: localStore{key: "sorades-invaders.highscore"},
		sound:  newSound(seed),
	}
	b.game.SetHighScore(b.scores.Load())
	fetchServerScore(func(best int) {
		b.game.SetHighScore(max(best, b.scores.Load()))
	})
	b.setupInput()

	js.Global.Set("SoradesInvaders", map[string]interface{}{
		"seed":    func() uint32 { return b.game.Seed() },
		"setSeed": func(seed uint32) { b.game.SetSeed(seed) },
	})

	js.Global.Call("requestAnimationFrame", b.frame)
}

// frame is the rAF callback. now is the high-resolution timestamp in ms.
func (b *browser) frame(now float64) {
	dt := 0.0
	if b.lastFrame > 0 {
		dt = min((now-b.lastFrame)/1000, config.MaxDeltaTime)
	}
	b.lastFrame = now

	b.game.StepFrame(dt, b.keys.Intents())
	for _, ev := range b.game.Events() {
		b.sound.play(ev.Kind)
	}
	if b.game.Status() == game.StatusGameOver && !b.submitted {
		b.submitScore()
	}

	b.stats.UpdateFPS(now)
	b.render()
	js.Global.Call("requestAnimationFrame", b.frame)
}

func (b *browser) submitScore() {
	b.submitted = true
	score := b.game.Ship.Score
	best, err := highscore.Submit(b.scores, score)
	if err != nil {
		game.Debug("high score not saved:", err.Error())
	}
	b.game.SetHighScore(best)

	// The server keeps the best score across browsers; localStorage covers
	// static hosting and offline play.
	postServerScore(score, func(serverBest int) {
		b.game.SetHighScore(max(serverBest, best))
	})
}

func (b *browser) setupInput() {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		raw := event.Get("keyCode").Int()
		code := game.TranslateKeyCode(raw)

		// Stats overlay toggle (F10 = 121)
		if raw == 121 {
			b.stats.Toggle()
			event.Call("preventDefault")
			return
		}

		status := b.game.Status()
		switch code {
		case game.CodeEnter:
			if status == game.StatusMenu || status == game.StatusGameOver {
				b.sound.resume()
				b.game.StartGame()
				b.submitted = false
			}
		case game.CodeP:
			b.game.TogglePause()
		case game.CodeEsc:
			if status != game.StatusMenu {
				if status != game.StatusGameOver {
					b.submitScore()
				}
				b.game.ReturnToMenu()
			}
		}

		if bit := game.KeyBit(code); bit != 0 {
			b.keys.Down(bit)
			event.Call("preventDefault")
		}
	})

	doc.Call("addEventListener", "keyup", func(event *js.Object) {
		code := game.TranslateKeyCode(event.Get("keyCode").Int())
		if bit := game.KeyBit(code); bit != 0 {
			b.keys.Up(bit)
		}
	})

	js.Global.Call("addEventListener", "blur", func() {
		b.keys.Reset()
	})
}

func hasParam(query, name string) bool {
	params := js.Global.Get("URLSearchParams").New(query)
	return params.Call("has", name).Bool()
}
