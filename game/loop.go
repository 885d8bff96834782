package game

// StepFrame advances the simulation by dt seconds. The caller decides the
// pacing and should keep dt bounded (see config.MaxDeltaTime).
//
// While playing the order is fixed: ship movement, weapons, enemy sweep,
// enemy fire, shots, collisions, then the win check and finally the loss
// check. During a wave-clear transition only the transition timer runs.
// Menu, pause and game over leave the gameplay state untouched.
func (g *Game) StepFrame(dt float64, in Intents) {
	g.events = g.events[:0]

	if g.status != StatusPaused {
		t := g.Tuning
		g.Particles.Advance(dt, t.FieldWidth, t.FieldHeight, g.RNG)
	}

	switch {
	case g.status == StatusPlaying:
		g.stepPlaying(dt, in)
	case g.status.IsWaveClear():
		g.advanceTransition(dt)
	}
}

func (g *Game) stepPlaying(dt float64, in Intents) {
	g.moveShip(dt, in)
	g.updateWeapons(dt, in)

	g.AdvanceEnemies(dt)
	if g.status != StatusPlaying {
		return
	}
	g.SelectEnemyShooter(dt)
	g.AdvanceShots(dt)
	g.ResolveCollisions()

	if g.Level.LiveEnemies == 0 {
		g.beginTransition()
	}
	if g.Ship.Lives <= 0 {
		g.gameOver(OutcomeShipDestroyed)
	}
}
