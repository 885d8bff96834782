package ui

import (
	"image/color"
	"testing"

	"github.com/simukka/sorades-invaders/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRGBA tests every accepted hex form.
func TestRGBA(t *testing.T) {
	cases := map[string]color.RGBA{
		"#9F0":      {R: 0x99, G: 0xff, B: 0x00, A: 0xff},
		"#62F8":     {R: 0x66, G: 0x22, B: 0xff, A: 0x88},
		"#0a0b0c":   {R: 0x0a, G: 0x0b, B: 0x0c, A: 0xff},
		"#000000C0": {A: 0xc0},
	}
	for in, want := range cases {
		got, err := RGBA(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

// TestRGBA_Errors tests malformed colors.
func TestRGBA_Errors(t *testing.T) {
	for _, in := range []string{"", "9F0", "#12", "#GGG"} {
		_, err := RGBA(in)
		assert.Error(t, err, in)
	}
}

// TestTheme_Parses tests that every theme color is valid.
func TestTheme_Parses(t *testing.T) {
	for _, c := range []string{
		Theme.BackgroundColor, Theme.StarColor, Theme.ShipColor, Theme.ShipCenterColor,
		Theme.ShotColor, Theme.EnemyColor, Theme.EnemyShotColor, Theme.EnemyChargeGlow,
		Theme.BarrierColor, Theme.BarrierWornColor, Theme.ScoreColor, Theme.TextPrimaryColor,
		Theme.TextSecondaryColor, Theme.OverlayPanelColor, Theme.OverlayBorderColor, Theme.FadeColor,
	} {
		assert.NotPanics(t, func() { MustRGBA(c) }, c)
	}
}

// TestWithAlpha tests premultiplied scaling and clamping.
func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 255}
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 127}, WithAlpha(c, 0.5))
	assert.Equal(t, c, WithAlpha(c, 3))
	assert.Equal(t, color.RGBA{}, WithAlpha(c, -1))
}

// TestBanner tests the status texts.
func TestBanner(t *testing.T) {
	s := &game.Snapshot{Status: game.StatusPlaying}
	title, sub := Banner(s)
	assert.Empty(t, title)
	assert.Empty(t, sub)

	s.Status = game.StatusWaveClearHold
	s.Level = 3
	title, sub = Banner(s)
	assert.Equal(t, "WAVE CLEARED", title)
	assert.Equal(t, "level 3", sub)

	s.Status = game.StatusGameOver
	s.Outcome = game.OutcomeInvaded
	title, sub = Banner(s)
	assert.Equal(t, "GAME OVER", title)
	assert.Contains(t, sub, "landed")
}

// TestHUD tests the status bar.
func TestHUD(t *testing.T) {
	s := &game.Snapshot{Score: 120, HighScore: 300, Level: 2, Lives: 3}
	assert.Equal(t, "SCORE 120   HI 300   LEVEL 2   LIVES 3", HUD(s))
}

// TestStatsOverlay_UpdateFPS tests the once-a-second refresh.
func TestStatsOverlay_UpdateFPS(t *testing.T) {
	var s StatsOverlay
	for i := 1; i <= 60; i++ {
		s.UpdateFPS(float64(i) * 1000 / 60)
	}
	assert.InDelta(t, 60.0, s.CurrentFPS, 1e-9)
	assert.Zero(t, s.FrameCount)

	s.UpdateFPS(1500)
	assert.Equal(t, 1, s.FrameCount)
}

// TestStatsOverlay_Lines tests the overlay rows.
func TestStatsOverlay_Lines(t *testing.T) {
	var s StatsOverlay
	snap := &game.Snapshot{
		Status:          game.StatusPlaying,
		Lives:           1,
		Shots:           make([]game.ShotView, 3),
		PrimaryCooldown: -0.2,
		SpecialCooldown: 1.5,
	}
	lines := s.Lines(snap, 42, 32)

	byLabel := map[string]StatLine{}
	for _, l := range lines {
		byLabel[l.Label] = l
	}
	assert.Equal(t, "3/32", byLabel["Shots"].Value)
	assert.Equal(t, "42", byLabel["Seed"].Value)
	assert.Equal(t, "ready", byLabel["Primary"].Value)
	assert.Equal(t, "1.50s", byLabel["Special"].Value)
	assert.Equal(t, "#ff0000", byLabel["Lives"].Color)
}
