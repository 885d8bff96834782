package ui

import (
	"fmt"
	"strconv"

	"github.com/simukka/sorades-invaders/game"
)

// HUD is the one-line status bar drawn above the field.
func HUD(s *game.Snapshot) string {
	return fmt.Sprintf("SCORE %d   HI %d   LEVEL %d   LIVES %d", s.Score, s.HighScore, s.Level, s.Lives)
}

// Banner returns the centered title and subtitle for the current status.
// Both are empty while playing.
func Banner(s *game.Snapshot) (title, sub string) {
	switch {
	case s.Status == game.StatusMenu:
		return "SORADES INVADERS", "ENTER to start   ARROWS move   SPACE fire   X special"
	case s.Status == game.StatusPaused:
		return "PAUSED", "P to resume   ESC for menu"
	case s.Status.IsWaveClear():
		return "WAVE CLEARED", "level " + strconv.Itoa(s.Level)
	case s.Status == game.StatusGameOver:
		if s.Outcome == game.OutcomeInvaded {
			return "GAME OVER", "the invaders landed   ENTER to retry"
		}
		return "GAME OVER", "ENTER to retry"
	}
	return "", ""
}

// StatLine is one label/value row of the stats overlay.
type StatLine struct {
	Label string
	Value string
	Color string
}

// StatsOverlay displays real-time game statistics.
type StatsOverlay struct {
	Visible bool

	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64
}

// Toggle toggles the stats overlay visibility.
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS counts a frame at currentTime (milliseconds) and refreshes the
// FPS figure once a second.
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Lines returns the overlay rows for the current frame.
func (s *StatsOverlay) Lines(snap *game.Snapshot, seed uint32, shotCapacity int) []StatLine {
	return []StatLine{
		{"FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), "#00ff00"},
		{"Status", snap.Status.String(), "#ffffff"},
		{"Level", strconv.Itoa(snap.Level), "#ffffff"},
		{"Seed", strconv.FormatUint(uint64(seed), 10), "#aaaaaa"},
		{"Shots", strconv.Itoa(len(snap.Shots)) + "/" + strconv.Itoa(shotCapacity), "#ff8800"},
		{"Enemies", strconv.Itoa(len(snap.Enemies)), "#ff0066"},
		{"Barriers", strconv.Itoa(len(snap.Barriers)), "#00aaff"},
		{"Lives", strconv.Itoa(snap.Lives), livesColor(snap.Lives)},
		{"Primary", cooldown(snap.PrimaryCooldown), "#8888ff"},
		{"Special", cooldown(snap.SpecialCooldown), "#00ffff"},
	}
}

func cooldown(v float64) string {
	if v <= 0 {
		return "ready"
	}
	return strconv.FormatFloat(v, 'f', 2, 64) + "s"
}

func livesColor(lives int) string {
	switch {
	case lives > 2:
		return "#00ff00"
	case lives == 2:
		return "#ffff00"
	}
	return "#ff0000"
}
