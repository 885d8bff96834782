package game

// Origin tags who fired a shot.
type Origin int

const (
	OriginShip Origin = iota
	OriginEnemy
)

func (o Origin) String() string {
	if o == OriginEnemy {
		return "enemy"
	}
	return "ship"
}

// Status is the high-level state the outer controller reacts to.
// The three wave-clear variants are the sub-phases of the transition
// between waves.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusWaveClearFadeIn
	StatusWaveClearHold
	StatusWaveClearFadeOut
	StatusGameOver
)

var statusNames = [...]string{
	StatusMenu:             "menu",
	StatusPlaying:          "playing",
	StatusPaused:           "paused",
	StatusWaveClearFadeIn:  "wave-clear/fade-in",
	StatusWaveClearHold:    "wave-clear/hold",
	StatusWaveClearFadeOut: "wave-clear/fade-out",
	StatusGameOver:         "game-over",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// IsWaveClear reports whether s is one of the transition sub-phases.
func (s Status) IsWaveClear() bool {
	return s == StatusWaveClearFadeIn || s == StatusWaveClearHold || s == StatusWaveClearFadeOut
}

// Outcome records why a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeShipDestroyed: the ship ran out of lives.
	OutcomeShipDestroyed
	// OutcomeInvaded: an enemy reached the bottom margin.
	OutcomeInvaded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeShipDestroyed:
		return "ship destroyed"
	case OutcomeInvaded:
		return "invaded"
	}
	return "none"
}
