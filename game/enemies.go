package game

import (
	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/config"
)

// sweepInterval shrinks with the level so the grid steps more often.
func (g *Game) sweepInterval() float64 {
	return g.Tuning.SweepInterval / float64(g.Level.Num)
}

// sweepSpeed is the horizontal distance of one sweep step.
func (g *Game) sweepSpeed() float64 {
	return g.Tuning.SweepStep * (0.8 + 0.2*float64(g.Level.Num))
}

// enemyFireInterval shrinks with the level so the grid shoots more often.
func (g *Game) enemyFireInterval() float64 {
	return g.Tuning.EnemyFireInterval / (0.5 + 0.5*float64(g.Level.Num))
}

// AdvanceEnemies moves the whole grid in lockstep once the sweep timer
// elapses. Edges are checked after the move, so the grid may overshoot a
// wall by one step before it reverses and drops. An enemy reaching the
// bottom margin ends the game on the spot.
func (g *Game) AdvanceEnemies(dt float64) {
	lv := &g.Level
	lv.SweepTimer += dt
	if lv.SweepTimer < g.sweepInterval() {
		return
	}
	lv.SweepTimer = 0

	t := g.Tuning
	step := g.sweepSpeed() * lv.Direction
	limit := t.FieldHeight - t.LossMargin
	hitWall := false

	for i := 0; i < lv.SpawnCount; i++ {
		e := &g.Enemies[i]
		if !e.Alive {
			continue
		}
		e.X += step
		if e.X <= 0 || e.Right() >= t.FieldWidth {
			hitWall = true
		}
		if e.Bottom() >= limit {
			g.broad.markDirty()
			g.gameOver(OutcomeInvaded)
			return
		}
	}

	if hitWall {
		lv.Direction = -lv.Direction
		for i := 0; i < lv.SpawnCount; i++ {
			if g.Enemies[i].Alive {
				g.Enemies[i].Y += t.DropStep
			}
		}
	}
	g.broad.markDirty()
}

// SelectEnemyShooter fires one enemy shot each time the fire timer elapses.
// The shooter is drawn uniformly from the live enemies across the whole
// pool. The timer resets even when nobody is left to shoot.
func (g *Game) SelectEnemyShooter(dt float64) {
	lv := &g.Level
	lv.FireTimer += dt
	if lv.FireTimer < g.enemyFireInterval() {
		return
	}
	lv.FireTimer = 0

	alive := g.aliveScratch[:0]
	for i := 0; i < config.MaxEnemies; i++ {
		if g.Enemies[i].Alive {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		return
	}

	idx := alive[g.RNG.Intn(len(alive))]
	e := &g.Enemies[idx]
	t := g.Tuning
	r := common.Rect{
		X: e.CenterX() - t.ShotWidth/2,
		Y: e.Bottom(),
		W: t.ShotWidth,
		H: t.ShotHeight,
	}
	if g.Shots.Fire(r, t.EnemyShotSpeed, OriginEnemy) == nil {
		Debug("shot pool full, enemy shot skipped")
		return
	}
	g.emit(EventEnemyFired, r.CenterX(), r.Y, idx)
}
