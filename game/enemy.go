package game

import "github.com/simukka/sorades-invaders/common"

// Enemy is one slot of the invader grid.
type Enemy struct {
	common.Rect
	Alive bool
	// FireTimer is the readiness drawn at spawn. Shooter selection uses the
	// grid-wide timer; renderers use this one to stagger charge-up effects.
	FireTimer float64
}

// Barrier is a shield block between the ship and the grid.
type Barrier struct {
	common.Rect
	HP     int
	Active bool
}

// killEnemy marks slot i dead and keeps the live counter in step.
// It must only be called for a live enemy.
func (g *Game) killEnemy(i int) {
	e := &g.Enemies[i]
	e.Alive = false
	g.Level.LiveEnemies--
	g.broad.remove(i)
	g.emit(EventEnemyKilled, e.CenterX(), e.Y+e.H/2, i)
}

// hitBarrier reports whether r strikes an active barrier, applying hit-point
// depletion when enabled. Only the first barrier in slot order is hit.
func (g *Game) hitBarrier(r common.Rect) bool {
	for i := 0; i < g.Tuning.BarrierCount; i++ {
		b := &g.Barriers[i]
		if !b.Active || !b.Overlaps(r) {
			continue
		}
		if g.Tuning.BarrierDepletion {
			b.HP--
			if b.HP <= 0 {
				b.HP = 0
				b.Active = false
				Debugf("barrier %d destroyed", i)
			}
		}
		g.emit(EventBarrierHit, r.CenterX(), r.Y, i)
		return true
	}
	return false
}
