package game

import "github.com/simukka/sorades-invaders/common"

// EnemyView is the read-only rendering view of one enemy slot.
type EnemyView struct {
	common.Rect
	Slot      int
	FireTimer float64
}

// ShotView is the read-only rendering view of one active shot.
type ShotView struct {
	common.Rect
	Origin Origin
}

// BarrierView is the read-only rendering view of one active barrier.
type BarrierView struct {
	common.Rect
	HP int
}

// Snapshot is everything a renderer needs for one frame. It holds copies;
// mutating it has no effect on the game.
type Snapshot struct {
	Status    Status
	Outcome   Outcome
	FadeAlpha float64

	Ship            common.Rect
	Lives           int
	Score           int
	HighScore       int
	Level           int
	PrimaryCooldown float64
	SpecialCooldown float64

	Enemies   []EnemyView
	Shots     []ShotView
	Barriers  []BarrierView
	Particles []Particle
}

// Snapshot returns a freshly allocated view of the current state.
func (g *Game) Snapshot() Snapshot {
	var s Snapshot
	g.SnapshotInto(&s)
	return s
}

// SnapshotInto fills dst, reusing its slices. Frontends call it once per
// frame to avoid allocating.
func (g *Game) SnapshotInto(dst *Snapshot) {
	dst.Status = g.status
	dst.Outcome = g.outcome
	dst.FadeAlpha = g.FadeAlpha()

	dst.Ship = g.Ship.Rect
	dst.Lives = g.Ship.Lives
	dst.Score = g.Ship.Score
	dst.HighScore = g.HighScore()
	dst.Level = g.Level.Num
	dst.PrimaryCooldown = g.Ship.PrimaryCooldown
	dst.SpecialCooldown = g.Ship.SpecialCooldown

	dst.Enemies = dst.Enemies[:0]
	for i := 0; i < g.Level.SpawnCount; i++ {
		e := &g.Enemies[i]
		if e.Alive {
			dst.Enemies = append(dst.Enemies, EnemyView{Rect: e.Rect, Slot: i, FireTimer: e.FireTimer})
		}
	}

	dst.Shots = dst.Shots[:0]
	g.Shots.ForEachActive(func(s *Shot, _ int) {
		dst.Shots = append(dst.Shots, ShotView{Rect: s.Rect, Origin: s.Origin})
	})

	dst.Barriers = dst.Barriers[:0]
	for i := 0; i < g.Tuning.BarrierCount; i++ {
		b := &g.Barriers[i]
		if b.Active {
			dst.Barriers = append(dst.Barriers, BarrierView{Rect: b.Rect, HP: b.HP})
		}
	}

	dst.Particles = append(dst.Particles[:0], g.Particles.Pool[:g.Particles.Count]...)
}
