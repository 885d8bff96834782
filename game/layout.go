package game

import (
	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/config"
)

// LayoutEnemies clears every enemy slot and spawns a rows x cols grid,
// centered horizontally, in row-major slot order. Grids larger than the
// pool are truncated. The live counter is recomputed from scratch.
func (g *Game) LayoutEnemies(rows, cols int) {
	t := g.Tuning
	for i := range g.Enemies {
		g.Enemies[i] = Enemy{}
	}
	g.Level.LiveEnemies = 0

	spawn := rows * cols
	if rows <= 0 || cols <= 0 {
		spawn = 0
	}
	if spawn > config.MaxEnemies {
		spawn = config.MaxEnemies
	}
	g.Level.SpawnCount = spawn

	cellW := t.EnemyWidth + t.EnemyGapX
	cellH := t.EnemyHeight + t.EnemyGapY
	gridW := float64(cols)*cellW - t.EnemyGapX
	left := (t.FieldWidth - gridW) / 2

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= spawn {
				break
			}
			g.Enemies[i] = Enemy{
				Rect: common.Rect{
					X: left + float64(c)*cellW,
					Y: t.EnemyTop + float64(r)*cellH,
					W: t.EnemyWidth,
					H: t.EnemyHeight,
				},
				Alive:     true,
				FireTimer: g.RNG.RandomFloat(t.FireTimerMin, t.FireTimerMax),
			}
			g.Level.LiveEnemies++
		}
	}
	g.broad.markDirty()
}

// LayoutBarriers rebuilds the barrier row: equal gaps at both sides and
// between barriers, all at full hit points.
func (g *Game) LayoutBarriers() {
	t := g.Tuning
	for i := range g.Barriers {
		g.Barriers[i] = Barrier{}
	}
	n := t.BarrierCount
	if n <= 0 {
		return
	}
	gap := (t.FieldWidth - float64(n)*t.BarrierWidth) / float64(n+1)
	for i := 0; i < n; i++ {
		g.Barriers[i] = Barrier{
			Rect: common.Rect{
				X: gap + float64(i)*(t.BarrierWidth+gap),
				Y: t.BarrierY,
				W: t.BarrierWidth,
				H: t.BarrierHeight,
			},
			HP:     t.BarrierHP,
			Active: true,
		}
	}
}
