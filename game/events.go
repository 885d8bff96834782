package game

// EventKind names a cue the frontends may react to with sound or effects.
type EventKind int

const (
	EventShotFired EventKind = iota
	EventEnemyFired
	EventEnemyKilled
	EventShipHit
	EventBarrierHit
	EventWaveCleared
	EventWaveStarted
	EventExtraLife
	EventGameOver
)

var eventNames = [...]string{
	EventShotFired:   "shot-fired",
	EventEnemyFired:  "enemy-fired",
	EventEnemyKilled: "enemy-killed",
	EventShipHit:     "ship-hit",
	EventBarrierHit:  "barrier-hit",
	EventWaveCleared: "wave-cleared",
	EventWaveStarted: "wave-started",
	EventExtraLife:   "extra-life",
	EventGameOver:    "game-over",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is one cue raised during a frame. X and Y locate it on the field;
// Index is the enemy or barrier slot involved, -1 when none.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Index int
}

func (g *Game) emit(kind EventKind, x, y float64, index int) {
	g.events = append(g.events, Event{Kind: kind, X: x, Y: y, Index: index})
}

// Events returns the cues raised since the last StepFrame began, or since
// the last controller call. The slice is reused; copy it to keep it.
func (g *Game) Events() []Event {
	return g.events
}
