package game

import (
	"testing"

	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectAt(x, y float64) common.Rect {
	return common.Rect{X: x, Y: y, W: 4, H: 14}
}

// TestResolveCollisions_KillsEnemyZero tests that a primary shot resolved
// against slot 0 kills it, scores once and retires the shot.
func TestResolveCollisions_KillsEnemyZero(t *testing.T) {
	g := newTestGame(t)
	require.Equal(t, 10, g.Level.LiveEnemies)

	g.updateWeapons(0.016, Intents{Fire: true})
	require.Equal(t, 1, g.Shots.ActiveCount())
	s := &g.Shots.Pool[0]
	s.X = g.Enemies[0].CenterX() - s.W/2
	s.Y = g.Enemies[0].Y + 5

	g.ResolveCollisions()

	assert.False(t, s.Active)
	assert.False(t, g.Enemies[0].Alive)
	assert.Equal(t, g.Tuning.KillBonus, g.Ship.Score)
	assert.Equal(t, 9, g.Level.LiveEnemies)
	assert.Equal(t, 9, aliveCount(g))
}

// TestResolveCollisions_LowestSlotWins tests that overlapping enemies are
// resolved in slot order.
func TestResolveCollisions_LowestSlotWins(t *testing.T) {
	g := newTestGame(t)
	g.Enemies[4].Rect = g.Enemies[2].Rect
	g.broad.markDirty()

	g.Shots.Fire(rectAt(g.Enemies[2].CenterX()-2, g.Enemies[2].Y+5), 480, OriginShip)
	g.ResolveCollisions()

	assert.False(t, g.Enemies[2].Alive)
	assert.True(t, g.Enemies[4].Alive)
	assert.Equal(t, 9, g.Level.LiveEnemies)
}

// TestResolveCollisions_DeadEnemyIgnored tests that a shot passes a killed slot.
func TestResolveCollisions_DeadEnemyIgnored(t *testing.T) {
	g := newTestGame(t)
	g.killEnemy(0)

	s := g.Shots.Fire(rectAt(238, 55), 480, OriginShip)
	g.ResolveCollisions()

	assert.True(t, s.Active)
	assert.Equal(t, 9, g.Level.LiveEnemies)
	assert.Zero(t, g.Ship.Score)
}

// TestResolveCollisions_AfterSweep tests that hits follow enemies that moved.
func TestResolveCollisions_AfterSweep(t *testing.T) {
	g := newTestGame(t)
	require.Equal(t, 0, g.broad.firstHit(rectAt(221, 55), g.Enemies[:g.Level.SpawnCount]))

	g.AdvanceEnemies(g.Tuning.SweepInterval)
	require.InDelta(t, 230.0, g.Enemies[0].X, 1e-9)

	// Inside the old rectangle only.
	miss := g.Shots.Fire(rectAt(221, 55), 480, OriginShip)
	hit := g.Shots.Fire(rectAt(262, 55), 480, OriginShip)
	g.ResolveCollisions()

	assert.True(t, miss.Active)
	assert.False(t, hit.Active)
	assert.False(t, g.Enemies[0].Alive)
}

// TestResolveCollisions_TouchingEdgeMisses tests that edge contact is not a hit.
func TestResolveCollisions_TouchingEdgeMisses(t *testing.T) {
	g := newTestGame(t)
	s := g.Shots.Fire(rectAt(216, 55), 480, OriginShip)
	g.ResolveCollisions()
	assert.True(t, s.Active)
	assert.True(t, g.Enemies[0].Alive)
}

// TestResolveCollisions_BarrierShieldsEnemy tests that a shot overlapping a
// barrier and an enemy only hits the barrier.
func TestResolveCollisions_BarrierShieldsEnemy(t *testing.T) {
	g := newTestGame(t)
	g.Enemies[0].Rect = common.Rect{X: 90, Y: 425, W: 40, H: 30}
	g.broad.markDirty()

	s := g.Shots.Fire(rectAt(100, 430), 480, OriginShip)
	g.ResolveCollisions()

	assert.False(t, s.Active)
	assert.True(t, g.Enemies[0].Alive)
	assert.Equal(t, 10, g.Level.LiveEnemies)
	assert.Zero(t, g.Ship.Score)
}

// TestResolveCollisions_BarrierShieldsShip tests that an enemy shot overlapping
// a barrier and the ship costs no life.
func TestResolveCollisions_BarrierShieldsShip(t *testing.T) {
	g := newTestGame(t)
	g.Barriers[0].Rect = g.Ship.Rect
	lives := g.Ship.Lives

	s := g.Shots.Fire(rectAt(g.Ship.CenterX()-2, g.Ship.Y+2), 240, OriginEnemy)
	g.ResolveCollisions()

	assert.False(t, s.Active)
	assert.Equal(t, lives, g.Ship.Lives)
}

// TestResolveCollisions_EnemyShotHitsShip tests the life loss.
func TestResolveCollisions_EnemyShotHitsShip(t *testing.T) {
	g := newTestGame(t)
	lives := g.Ship.Lives

	s := g.Shots.Fire(rectAt(g.Ship.CenterX()-2, g.Ship.Y+2), 240, OriginEnemy)
	g.ResolveCollisions()

	assert.False(t, s.Active)
	assert.Equal(t, lives-1, g.Ship.Lives)
	require.Len(t, g.Events(), 2)
	assert.Equal(t, EventShipHit, g.Events()[1].Kind)
}

// TestResolveCollisions_ShipShotSparesShip tests that own shots never hurt the ship.
func TestResolveCollisions_ShipShotSparesShip(t *testing.T) {
	g := newTestGame(t)
	lives := g.Ship.Lives
	s := g.Shots.Fire(rectAt(g.Ship.CenterX()-2, g.Ship.Y+2), 480, OriginShip)
	g.ResolveCollisions()
	assert.True(t, s.Active)
	assert.Equal(t, lives, g.Ship.Lives)
}

// TestStepFrame_LastLifeEndsGame tests that losing the last life ends the game
// on the same frame even with enemies left.
func TestStepFrame_LastLifeEndsGame(t *testing.T) {
	g := newTestGame(t)
	g.Ship.Lives = 1
	g.Shots.Fire(rectAt(g.Ship.CenterX()-2, g.Ship.Y+4), 240, OriginEnemy)

	g.StepFrame(0.001, Intents{})

	assert.Zero(t, g.Ship.Lives)
	assert.Equal(t, StatusGameOver, g.Status())
	assert.Equal(t, OutcomeShipDestroyed, g.Outcome())
	assert.Equal(t, 10, g.Level.LiveEnemies)
}

// TestStepFrame_LossCheckedAfterWin tests that a frame clearing the wave and
// losing the last life ends in game over.
func TestStepFrame_LossCheckedAfterWin(t *testing.T) {
	g := newTestGame(t)
	for i := 1; i < g.Level.SpawnCount; i++ {
		g.killEnemy(i)
	}
	g.Ship.Lives = 1
	g.Shots.Fire(rectAt(238, 60), 480, OriginShip)
	g.Shots.Fire(rectAt(g.Ship.CenterX()-2, g.Ship.Y+4), 240, OriginEnemy)

	g.StepFrame(0.001, Intents{})

	assert.Zero(t, g.Level.LiveEnemies)
	assert.Equal(t, StatusGameOver, g.Status())
	assert.Equal(t, OutcomeShipDestroyed, g.Outcome())
}

// linearHit is the plain slot-order scan the broad phase must agree with.
func linearHit(r common.Rect, enemies []Enemy) int {
	for i := range enemies {
		if enemies[i].Alive && enemies[i].Overlaps(r) {
			return i
		}
	}
	return -1
}

// TestResolveCollisions_ContainedShot tests that a shot wholly inside an
// enemy is a hit.
func TestResolveCollisions_ContainedShot(t *testing.T) {
	g := newTestGame(t)
	r := rectAt(238, 55)
	require.True(t, g.Enemies[0].X < r.X && r.Right() < g.Enemies[0].Right())
	require.True(t, g.Enemies[0].Y < r.Y && r.Bottom() < g.Enemies[0].Bottom())
	assert.Equal(t, 0, g.broad.firstHit(r, g.Enemies[:g.Level.SpawnCount]))

	s := g.Shots.Fire(r, 480, OriginShip)
	g.ResolveCollisions()

	assert.False(t, s.Active)
	assert.False(t, g.Enemies[0].Alive)
	assert.Equal(t, 9, g.Level.LiveEnemies)
}

// TestResolveCollisions_LowerSlotBeatsNearer tests that array order, not
// proximity, picks between two overlapped enemies.
func TestResolveCollisions_LowerSlotBeatsNearer(t *testing.T) {
	g := newTestGame(t)
	// slot 1 spans 300..340; slot 3 is moved to 320..360 on the same row
	g.Enemies[3].Rect = g.Enemies[1].Rect
	g.Enemies[3].X += 20
	g.broad.markDirty()

	r := rectAt(336, 55)
	require.True(t, g.Enemies[1].Overlaps(r))
	require.True(t, g.Enemies[3].Overlaps(r))

	g.Shots.Fire(r, 480, OriginShip)
	g.ResolveCollisions()

	assert.False(t, g.Enemies[1].Alive)
	assert.True(t, g.Enemies[3].Alive)
	assert.Equal(t, 9, g.Level.LiveEnemies)
}

// TestResolveCollisions_OutsideActiveRange tests that slots past the spawn
// count are never targets.
func TestResolveCollisions_OutsideActiveRange(t *testing.T) {
	g := newTestGame(t)
	extra := &g.Enemies[g.Level.SpawnCount]
	extra.Rect = common.Rect{X: 100, Y: 300, W: 40, H: 30}
	extra.Alive = true
	g.broad.markDirty()

	s := g.Shots.Fire(rectAt(110, 305), 480, OriginShip)
	g.ResolveCollisions()

	assert.True(t, s.Active)
	assert.True(t, extra.Alive)
	assert.Equal(t, 10, g.Level.LiveEnemies)
	assert.Zero(t, g.Ship.Score)
}

// TestResolveCollisions_FastShotLandsInside tests a shot that crosses the
// enemy's bottom edge and ends inside it within one clamped frame.
func TestResolveCollisions_FastShotLandsInside(t *testing.T) {
	g := newTestGame(t)
	e := &g.Enemies[5]
	s := g.Shots.Fire(rectAt(e.CenterX()-2, e.Bottom()+2), g.Tuning.ShipShotSpeed, OriginShip)
	require.False(t, e.Overlaps(s.Rect))

	g.AdvanceShots(config.MaxDeltaTime)
	require.True(t, s.Y > e.Y && s.Bottom() < e.Bottom())
	g.ResolveCollisions()

	assert.False(t, s.Active)
	assert.False(t, e.Alive)
	assert.Equal(t, 9, g.Level.LiveEnemies)
}

// TestFirstHit_MatchesLinearScan tests the broad phase against a plain scan
// over random shots, with some slots dead and the grid swept.
func TestFirstHit_MatchesLinearScan(t *testing.T) {
	g := newTestGame(t)
	g.LayoutEnemies(config.MaxRows, config.MaxCols)
	for _, i := range []int{0, 7, 13, 22, 49} {
		g.killEnemy(i)
	}
	for k := 0; k < 3; k++ {
		g.AdvanceEnemies(g.Tuning.SweepInterval)
	}
	require.Equal(t, StatusPlaying, g.Status())

	enemies := g.Enemies[:g.Level.SpawnCount]
	rng := common.NewSeededRNG(7)
	for n := 0; n < 5000; n++ {
		r := common.Rect{
			X: rng.RandomFloat(-20, g.Tuning.FieldWidth),
			Y: rng.RandomFloat(-20, 400),
			W: rng.RandomFloat(1, 60),
			H: rng.RandomFloat(1, 40),
		}
		require.Equal(t, linearHit(r, enemies), g.broad.firstHit(r, enemies), "shot %+v", r)
	}
}
