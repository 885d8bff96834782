//go:build js
// +build js

package main

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/game"
	"github.com/simukka/sorades-invaders/ui"
)

func (b *browser) render() {
	b.game.SnapshotInto(&b.snap)
	s := &b.snap
	ctx := b.ctx
	w, h := b.tuning.FieldWidth, b.tuning.FieldHeight

	ctx.Set("fillStyle", ui.Theme.BackgroundColor)
	ctx.Call("fillRect", 0, 0, w, h)

	ctx.Set("fillStyle", ui.Theme.StarColor)
	for _, p := range s.Particles {
		ctx.Call("fillRect", p.X, p.Y, 2, 2)
	}

	for _, bar := range s.Barriers {
		color := ui.Theme.BarrierColor
		if bar.HP <= 1 && b.tuning.BarrierDepletion {
			color = ui.Theme.BarrierWornColor
		}
		fillRect(ctx, bar.Rect, color)
	}

	ctx.Set("shadowBlur", 8)
	ctx.Set("shadowColor", ui.Theme.EnemyColor)
	for _, e := range s.Enemies {
		fillRect(ctx, e.Rect, ui.Theme.EnemyColor)
		if e.FireTimer < 3 {
			ctx.Set("fillStyle", ui.Theme.EnemyChargeGlow)
			ctx.Call("fillRect", e.X+e.W/4, e.Y+e.H/3, e.W/2, 4)
		}
	}
	ctx.Set("shadowBlur", 0)

	for _, sh := range s.Shots {
		color := ui.Theme.ShotColor
		if sh.Origin == game.OriginEnemy {
			color = ui.Theme.EnemyShotColor
		}
		fillRect(ctx, sh.Rect, color)
	}

	if s.Status != game.StatusMenu {
		fillRect(ctx, s.Ship, ui.Theme.ShipColor)
		ctx.Set("fillStyle", ui.Theme.ShipCenterColor)
		ctx.Call("fillRect", s.Ship.CenterX()-3, s.Ship.Y-6, 6, 6)
	}

	if s.FadeAlpha > 0 {
		ctx.Set("globalAlpha", s.FadeAlpha)
		ctx.Set("fillStyle", ui.Theme.FadeColor)
		ctx.Call("fillRect", 0, 0, w, h)
		ctx.Set("globalAlpha", 1)
	}

	ctx.Set("textAlign", "left")
	ctx.Set("textBaseline", "top")
	ctx.Set("font", ui.Theme.HUDFont)
	ctx.Set("fillStyle", ui.Theme.ScoreColor)
	ctx.Call("fillText", ui.HUD(s), 8, 6)

	if title, sub := ui.Banner(s); title != "" {
		ctx.Set("fillStyle", ui.Theme.OverlayPanelColor)
		ctx.Call("fillRect", 0, h/2-40, w, 80)
		ctx.Set("textAlign", "center")
		ctx.Set("font", ui.Theme.BannerFont)
		ctx.Set("fillStyle", ui.Theme.TextPrimaryColor)
		ctx.Call("fillText", title, w/2, h/2-32)
		ctx.Set("font", ui.Theme.HUDFont)
		ctx.Set("fillStyle", ui.Theme.TextSecondaryColor)
		ctx.Call("fillText", sub, w/2, h/2+12)
	}

	if b.stats.Visible {
		b.renderStats(s)
	}
}

func (b *browser) renderStats(s *game.Snapshot) {
	ctx := b.ctx
	lines := b.stats.Lines(s, b.game.Seed(), b.tuning.MaxShots)
	x := b.tuning.FieldWidth - 190
	y := 30.0

	ctx.Set("fillStyle", ui.Theme.OverlayPanelColor)
	ctx.Call("fillRect", x, y, 180, len(lines)*18+12)
	ctx.Set("strokeStyle", ui.Theme.OverlayBorderColor)
	ctx.Call("strokeRect", x, y, 180, len(lines)*18+12)

	ctx.Set("font", "12px monospace")
	ctx.Set("textAlign", "left")
	for i, l := range lines {
		ly := y + 8 + float64(i)*18
		ctx.Set("fillStyle", "#888888")
		ctx.Call("fillText", l.Label+":", x+10, ly)
		ctx.Set("fillStyle", l.Color)
		ctx.Call("fillText", l.Value, x+90, ly)
	}
}

func fillRect(ctx *js.Object, r common.Rect, color string) {
	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", r.X, r.Y, r.W, r.H)
}

// consoleWriter sends debug lines to the browser console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global.Get("console").Call("log", string(p))
	return len(p), nil
}

// localStore keeps the high score in localStorage.
type localStore struct {
	key string
}

func (l localStore) Load() int {
	v := js.Global.Get("localStorage").Call("getItem", l.key)
	if v == nil || v == js.Undefined {
		return 0
	}
	n, err := strconv.Atoi(v.String())
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (l localStore) Save(score int) (err error) {
	// setItem throws when storage is full or disabled
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*js.Error); ok {
				err = e
			}
		}
	}()
	js.Global.Get("localStorage").Call("setItem", l.key, strconv.Itoa(max(score, 0)))
	return nil
}
