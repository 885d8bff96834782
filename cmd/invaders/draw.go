//go:build !js
// +build !js

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/game"
	"github.com/simukka/sorades-invaders/ui"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Palette resolved once from the shared theme.
var (
	colBackground = ui.MustRGBA(ui.Theme.BackgroundColor)
	colStar       = ui.MustRGBA(ui.Theme.StarColor)
	colShip       = ui.MustRGBA(ui.Theme.ShipColor)
	colShipCenter = ui.MustRGBA(ui.Theme.ShipCenterColor)
	colShot       = ui.MustRGBA(ui.Theme.ShotColor)
	colEnemy      = ui.MustRGBA(ui.Theme.EnemyColor)
	colEnemyShot  = ui.MustRGBA(ui.Theme.EnemyShotColor)
	colCharge     = ui.MustRGBA(ui.Theme.EnemyChargeGlow)
	colBarrier    = ui.MustRGBA(ui.Theme.BarrierColor)
	colWorn       = ui.MustRGBA(ui.Theme.BarrierWornColor)
	colScore      = ui.MustRGBA(ui.Theme.ScoreColor)
	colTitle      = ui.MustRGBA(ui.Theme.TextPrimaryColor)
	colText       = ui.MustRGBA(ui.Theme.TextSecondaryColor)
	colPanel      = ui.MustRGBA(ui.Theme.OverlayPanelColor)
	colFade       = ui.MustRGBA(ui.Theme.FadeColor)
)

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	a.game.SnapshotInto(&a.snap)
	s := &a.snap

	screen.Fill(colBackground)
	for _, p := range s.Particles {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), 2, 2, colStar, false)
	}

	for _, b := range s.Barriers {
		c := colBarrier
		if b.HP <= 1 && a.tuning.BarrierDepletion {
			c = colWorn
		}
		fillRect(screen, b.Rect, c)
	}

	for _, e := range s.Enemies {
		fillRect(screen, e.Rect, colEnemy)
		// quick-tempered enemies (low readiness) glow
		if e.FireTimer < 3 {
			vector.DrawFilledRect(screen, float32(e.X+e.W/4), float32(e.Y+e.H/3), float32(e.W/2), 4, colCharge, false)
		}
	}

	for _, sh := range s.Shots {
		c := colShot
		if sh.Origin == game.OriginEnemy {
			c = colEnemyShot
		}
		fillRect(screen, sh.Rect, c)
	}

	if s.Status != game.StatusMenu {
		fillRect(screen, s.Ship, colShip)
		vector.DrawFilledRect(screen, float32(s.Ship.CenterX()-3), float32(s.Ship.Y-6), 6, 6, colShipCenter, false)
	}

	if s.FadeAlpha > 0 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), ui.WithAlpha(colFade, s.FadeAlpha), false)
	}

	drawText(screen, ui.HUD(s), 8, 4, colScore)
	if title, sub := ui.Banner(s); title != "" {
		a.drawBanner(screen, title, sub)
	}
	if a.stats.Visible {
		a.drawStats(screen, s)
	}
}

func (a *App) drawBanner(screen *ebiten.Image, title, sub string) {
	w := float32(a.tuning.FieldWidth)
	h := float32(a.tuning.FieldHeight)
	vector.DrawFilledRect(screen, 0, h/2-40, w, 80, colPanel, false)

	tw, _ := text.Measure(title, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(w)/2-tw, float64(h)/2-30)
	op.ColorScale.ScaleWithColor(colTitle)
	text.Draw(screen, title, face, op)

	sw, _ := text.Measure(sub, face, 0)
	drawText(screen, sub, float64(w)/2-sw/2, float64(h)/2+10, colText)
}

func (a *App) drawStats(screen *ebiten.Image, s *game.Snapshot) {
	lines := a.stats.Lines(s, a.game.Seed(), a.tuning.MaxShots)
	x := a.tuning.FieldWidth - 170
	vector.DrawFilledRect(screen, float32(x-8), 24, 168, float32(len(lines)*16+8), colPanel, false)

	y := 28.0
	for _, l := range lines {
		drawText(screen, l.Label+":", x, y, colText)
		drawText(screen, l.Value, x+80, y, ui.MustRGBA(l.Color))
		y += 16
	}
}

func fillRect(dst *ebiten.Image, r common.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}
