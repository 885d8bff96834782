package game

import "github.com/simukka/sorades-invaders/common"

// Ship holds player ship state. There is exactly one per Game.
type Ship struct {
	common.Rect
	Speed float64
	Lives int
	Score int

	// Cooldowns count down by dt and may go negative; firing is allowed
	// whenever they are <= 0.
	PrimaryCooldown float64
	SpecialCooldown float64
}

// resetShip centers the ship at the bottom of the field with full lives,
// zero score and both weapons ready.
func (g *Game) resetShip() {
	t := g.Tuning
	g.Ship = Ship{
		Rect: common.Rect{
			X: (t.FieldWidth - t.ShipWidth) / 2,
			Y: t.ShipY(),
			W: t.ShipWidth,
			H: t.ShipHeight,
		},
		Speed: t.ShipSpeed,
		Lives: t.StartLives,
	}
}

// moveShip applies the horizontal intents and keeps the ship in the field.
func (g *Game) moveShip(dt float64, in Intents) {
	dir := 0.0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	g.Ship.X += dir * g.Ship.Speed * dt
	g.Ship.ClampX(0, g.Tuning.FieldWidth)
}

// fireShip spawns one upward shot centered dx pixels off the ship's middle.
func (g *Game) fireShip(dx float64) bool {
	t := g.Tuning
	r := common.Rect{
		X: g.Ship.CenterX() - t.ShotWidth/2 + dx,
		Y: g.Ship.Y - t.ShotHeight,
		W: t.ShotWidth,
		H: t.ShotHeight,
	}
	if g.Shots.Fire(r, t.ShipShotSpeed, OriginShip) == nil {
		Debug("shot pool full, ship shot skipped")
		return false
	}
	g.emit(EventShotFired, r.CenterX(), r.Y, -1)
	return true
}

// updateWeapons ticks both cooldowns and handles the fire intents.
func (g *Game) updateWeapons(dt float64, in Intents) {
	s := &g.Ship
	s.PrimaryCooldown -= dt
	s.SpecialCooldown -= dt

	if in.Fire && s.PrimaryCooldown <= 0 {
		g.fireShip(0)
		s.PrimaryCooldown = g.Tuning.PrimaryCooldown
	}

	if in.Special && s.SpecialCooldown <= 0 {
		spread := g.Tuning.SpecialSpread
		for _, dx := range [3]float64{-spread, 0, spread} {
			g.fireShip(dx)
		}
		s.SpecialCooldown = g.Tuning.SpecialCooldown
	}
}
