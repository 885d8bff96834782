package game

import "github.com/simukka/sorades-invaders/config"

// beginTransition starts the wave-clear sequence.
func (g *Game) beginTransition() {
	g.transition = Transition{}
	g.setStatus(StatusWaveClearFadeIn)
	g.emit(EventWaveCleared, g.Tuning.FieldWidth/2, g.Tuning.FieldHeight/2, -1)
	Debugf("wave %d cleared, score=%d", g.Level.Num, g.Ship.Score)
}

// advanceTransition moves the wave-clear timer. Sub-phases are pure
// threshold comparisons on the timer; the next wave is laid out exactly
// once, when the timer first reaches the end of the fade-in.
func (g *Game) advanceTransition(dt float64) {
	t := g.Tuning
	tr := &g.transition
	tr.Timer += dt

	if !tr.Advanced && tr.Timer >= t.FadeDuration {
		g.AdvanceWave()
		tr.Advanced = true
	}

	switch {
	case tr.Timer >= t.TransitionDuration():
		g.transition = Transition{}
		g.setStatus(StatusPlaying)
		g.emit(EventWaveStarted, t.FieldWidth/2, t.FieldHeight/2, -1)
		Debugf("wave %d started: grid=%dx%d", g.Level.Num, g.Level.Rows, g.Level.Cols)
	case tr.Timer >= t.FadeDuration+t.HoldDuration:
		g.setStatus(StatusWaveClearFadeOut)
	case tr.Timer >= t.FadeDuration:
		g.setStatus(StatusWaveClearHold)
	}
}

// AdvanceWave escalates to the next level and rebuilds the field.
func (g *Game) AdvanceWave() {
	t := g.Tuning
	lv := &g.Level

	completed := lv.Num
	lv.Num++
	g.Ship.Score += t.LevelBonus * completed

	lv.Rows = min(lv.Rows+1, config.MaxRows)
	lv.Cols = min(lv.Cols+1, config.MaxCols)

	g.Shots.Clear()
	g.Ship.PrimaryCooldown = 0
	g.Ship.SpecialCooldown = 0

	g.reseed(lv.Num)
	g.LayoutBarriers()
	g.LayoutEnemies(lv.Rows, lv.Cols)

	lv.SweepTimer = 0
	lv.Direction = 1
	lv.FireTimer = 0

	if t.ExtraLifeEvery > 0 && lv.Num%t.ExtraLifeEvery == 0 {
		g.Ship.Lives++
		g.emit(EventExtraLife, g.Ship.CenterX(), g.Ship.Y, -1)
		Debugf("extra life at level %d", lv.Num)
	}
}

// FadeAlpha is the opacity of the wave-clear overlay: rising during the
// fade-in, 1 during the hold, falling during the fade-out, 0 otherwise.
func (g *Game) FadeAlpha() float64 {
	st := g.status
	if st == StatusPaused {
		st = g.resume
	}
	if !st.IsWaveClear() {
		return 0
	}

	t := g.Tuning
	timer := g.transition.Timer
	var a float64
	switch {
	case timer < t.FadeDuration:
		a = timer / t.FadeDuration
	case timer < t.FadeDuration+t.HoldDuration:
		a = 1
	default:
		a = (t.TransitionDuration() - timer) / t.FadeDuration
	}
	return max(0, min(1, a))
}
