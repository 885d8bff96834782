package game

import (
	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/config"
)

// Level holds the per-wave parameters.
type Level struct {
	Num  int
	Rows int
	Cols int

	// SpawnCount bounds the active enemy range [0, SpawnCount).
	// LiveEnemies always equals the number of alive slots in that range.
	SpawnCount  int
	LiveEnemies int

	// Direction is +1 (right) or -1 (left).
	Direction  float64
	SweepTimer float64
	FireTimer  float64
}

// Transition is the wave-clear timer. Advanced records that the next wave
// has already been laid out during this transition.
type Transition struct {
	Timer    float64
	Advanced bool
}

// seeder is implemented by random sources that can be reseeded per wave.
type seeder interface {
	Seed() uint32
	SetSeed(seed uint32)
}

// Game holds the complete simulation state. All mutation goes through
// StepFrame and the controller methods; nothing here is safe for
// concurrent use.
type Game struct {
	Tuning config.Tuning
	RNG    common.Random

	Ship      Ship
	Enemies   [config.MaxEnemies]Enemy
	Shots     *ShotPool
	Barriers  [config.MaxBarriers]Barrier
	Particles *ParticlePool
	Level     Level

	status     Status
	resume     Status
	transition Transition
	outcome    Outcome
	highScore  int
	events     []Event

	broad *broadPhase
	seed  uint32

	aliveScratch [config.MaxEnemies]int
}

// NewGame creates a game sitting at the menu. The tuning is assumed valid;
// frontends run config.Load or Tuning.Validate first.
func NewGame(t config.Tuning, rng common.Random) *Game {
	if rng == nil {
		rng = common.NewSeededRNG(1)
	}
	g := &Game{
		Tuning:    t,
		RNG:       rng,
		Shots:     NewShotPool(t.MaxShots),
		Particles: NewParticlePool(t.Particles, t.FieldWidth, t.FieldHeight, t.ParticleSpeedMin, t.ParticleSpeedMax, rng),
		status:    StatusMenu,
		events:    make([]Event, 0, 16),
		broad:     newBroadPhase(),
	}
	if s, ok := rng.(seeder); ok {
		g.seed = s.Seed()
	}
	g.resetShip()
	g.Level = Level{Num: 1, Rows: t.StartRows, Cols: t.StartCols, Direction: 1}
	return g
}

// Status returns the current high-level state.
func (g *Game) Status() Status { return g.status }

// Outcome reports why the last game ended. OutcomeNone while a game runs.
func (g *Game) Outcome() Outcome { return g.outcome }

// Transition returns the wave-clear timer state.
func (g *Game) Transition() Transition { return g.transition }

// Seed returns the game seed waves are derived from.
func (g *Game) Seed() uint32 { return g.seed }

// SetSeed changes the game seed. It takes effect at the next StartGame.
func (g *Game) SetSeed(seed uint32) { g.seed = seed }

// StartGame begins a fresh game at level 1 from the menu or game over.
func (g *Game) StartGame() {
	g.events = g.events[:0]
	t := g.Tuning

	g.reseed(1)
	g.resetShip()
	g.Shots.Clear()
	g.Level = Level{
		Num:       1,
		Rows:      t.StartRows,
		Cols:      t.StartCols,
		Direction: 1,
	}
	g.transition = Transition{}
	g.outcome = OutcomeNone

	g.LayoutBarriers()
	g.LayoutEnemies(g.Level.Rows, g.Level.Cols)

	g.setStatus(StatusPlaying)
	g.emit(EventWaveStarted, t.FieldWidth/2, t.FieldHeight/2, -1)
	Debugf("game started: seed=%d grid=%dx%d", g.seed, g.Level.Rows, g.Level.Cols)
}

// TogglePause pauses a running game or resumes a paused one. Pausing during
// a wave-clear transition resumes into the same sub-phase.
func (g *Game) TogglePause() {
	switch {
	case g.status == StatusPaused:
		g.setStatus(g.resume)
	case g.status == StatusPlaying || g.status.IsWaveClear():
		g.resume = g.status
		g.setStatus(StatusPaused)
	}
}

// ReturnToMenu abandons the current game. The high score survives.
func (g *Game) ReturnToMenu() {
	g.events = g.events[:0]
	g.highScore = g.HighScore()
	g.resetShip()
	g.Shots.Clear()
	for i := range g.Enemies {
		g.Enemies[i] = Enemy{}
	}
	g.Level.SpawnCount, g.Level.LiveEnemies = 0, 0
	g.broad.markDirty()
	g.transition = Transition{}
	g.outcome = OutcomeNone
	g.setStatus(StatusMenu)
}

// SetHighScore seeds the high score from storage. Negative values are
// treated as absent.
func (g *Game) SetHighScore(score int) {
	if score < 0 {
		score = 0
	}
	g.highScore = score
}

// HighScore returns the best of the stored high score and the current score.
func (g *Game) HighScore() int {
	if g.Ship.Score > g.highScore {
		return g.Ship.Score
	}
	return g.highScore
}

func (g *Game) gameOver(outcome Outcome) {
	if g.status == StatusGameOver {
		return
	}
	g.outcome = outcome
	g.highScore = g.HighScore()
	g.setStatus(StatusGameOver)
	g.emit(EventGameOver, g.Ship.CenterX(), g.Ship.Y, -1)
	Debugf("game over (%s): level=%d score=%d", outcome, g.Level.Num, g.Ship.Score)
}

// setStatus is the single place status changes. It rejects transitions the
// state machine does not allow.
func (g *Game) setStatus(next Status) {
	prev := g.status
	if prev == next {
		return
	}
	if !allowedTransition(prev, next) {
		Debugf("status %s -> %s rejected", prev, next)
		return
	}
	g.status = next
	Debugf("status %s -> %s", prev, next)
}

func allowedTransition(from, to Status) bool {
	switch to {
	case StatusMenu:
		return true
	case StatusPlaying:
		return from == StatusMenu || from == StatusGameOver || from == StatusPaused || from.IsWaveClear()
	case StatusPaused:
		return from == StatusPlaying || from.IsWaveClear()
	case StatusWaveClearFadeIn:
		return from == StatusPlaying || from == StatusPaused
	case StatusWaveClearHold:
		return from == StatusWaveClearFadeIn || from == StatusPaused
	case StatusWaveClearFadeOut:
		return from == StatusWaveClearHold || from == StatusWaveClearFadeIn || from == StatusPaused
	case StatusGameOver:
		// Lives can run out on the frame that clears the wave.
		return from == StatusPlaying || from.IsWaveClear()
	}
	return false
}

// reseed points the random source at the seed of the given wave.
func (g *Game) reseed(level int) {
	if s, ok := g.RNG.(seeder); ok {
		s.SetSeed(common.LevelSeed(g.seed, level))
	}
}
