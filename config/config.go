// Package config holds every tunable of the simulation. Defaults live in
// Default; a TOML file may override any subset of them.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Fixed ceilings. Pools are arrays sized to these, tunables may only go lower.
const (
	MaxRows         = 5
	MaxCols         = 10
	MaxEnemies      = MaxRows * MaxCols
	MaxShotCapacity = 64
	MaxBarriers     = 8
	MaxParticles    = 128

	// MaxFieldSize bounds both field dimensions so the collision space can
	// be allocated once.
	MaxFieldSize = 1536

	// MaxDeltaTime caps the frame time frontends feed into the simulation.
	MaxDeltaTime = 0.06
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid tuning")

// Tuning is the full set of simulation parameters. Times are in seconds,
// distances in field pixels, speeds in pixels per second unless noted.
type Tuning struct {
	FieldWidth  float64 `toml:"field_width"`
	FieldHeight float64 `toml:"field_height"`

	ShipWidth        float64 `toml:"ship_width"`
	ShipHeight       float64 `toml:"ship_height"`
	ShipBottomMargin float64 `toml:"ship_bottom_margin"`
	ShipSpeed        float64 `toml:"ship_speed"`
	StartLives       int     `toml:"start_lives"`
	PrimaryCooldown  float64 `toml:"primary_cooldown"`
	SpecialCooldown  float64 `toml:"special_cooldown"`
	SpecialSpread    float64 `toml:"special_spread"`

	ShotWidth      float64 `toml:"shot_width"`
	ShotHeight     float64 `toml:"shot_height"`
	ShipShotSpeed  float64 `toml:"ship_shot_speed"`
	EnemyShotSpeed float64 `toml:"enemy_shot_speed"`
	MaxShots       int     `toml:"max_shots"`

	EnemyWidth  float64 `toml:"enemy_width"`
	EnemyHeight float64 `toml:"enemy_height"`
	EnemyGapX   float64 `toml:"enemy_gap_x"`
	EnemyGapY   float64 `toml:"enemy_gap_y"`
	EnemyTop    float64 `toml:"enemy_top"`
	StartRows   int     `toml:"start_rows"`
	StartCols   int     `toml:"start_cols"`

	// Per-enemy fire readiness is drawn from [FireTimerMin, FireTimerMax).
	FireTimerMin float64 `toml:"fire_timer_min"`
	FireTimerMax float64 `toml:"fire_timer_max"`

	// A sweep happens every SweepInterval/level seconds and moves the grid
	// SweepStep*(0.8+0.2*level) pixels. SweepStep is per sweep, not per second.
	SweepInterval     float64 `toml:"sweep_interval"`
	SweepStep         float64 `toml:"sweep_step"`
	DropStep          float64 `toml:"drop_step"`
	LossMargin        float64 `toml:"loss_margin"`
	EnemyFireInterval float64 `toml:"enemy_fire_interval"`

	BarrierCount  int     `toml:"barrier_count"`
	BarrierWidth  float64 `toml:"barrier_width"`
	BarrierHeight float64 `toml:"barrier_height"`
	BarrierY      float64 `toml:"barrier_y"`
	BarrierHP     int     `toml:"barrier_hp"`
	// BarrierDepletion makes each hit cost a barrier one hit point.
	// Off, barriers absorb shots forever.
	BarrierDepletion bool `toml:"barrier_depletion"`

	KillBonus      int `toml:"kill_bonus"`
	LevelBonus     int `toml:"level_bonus"`
	ExtraLifeEvery int `toml:"extra_life_every"`

	FadeDuration float64 `toml:"fade_duration"`
	HoldDuration float64 `toml:"hold_duration"`

	Particles        int     `toml:"particles"`
	ParticleSpeedMin float64 `toml:"particle_speed_min"`
	ParticleSpeedMax float64 `toml:"particle_speed_max"`
}

// Default returns the canonical tuning.
func Default() Tuning {
	return Tuning{
		FieldWidth:  800,
		FieldHeight: 600,

		ShipWidth:        50,
		ShipHeight:       24,
		ShipBottomMargin: 40,
		ShipSpeed:        300,
		StartLives:       3,
		PrimaryCooldown:  0.35,
		SpecialCooldown:  2.0,
		SpecialSpread:    16,

		ShotWidth:      4,
		ShotHeight:     14,
		ShipShotSpeed:  480,
		EnemyShotSpeed: 240,
		MaxShots:       32,

		EnemyWidth:  40,
		EnemyHeight: 30,
		EnemyGapX:   40,
		EnemyGapY:   20,
		EnemyTop:    50,
		StartRows:   2,
		StartCols:   5,

		FireTimerMin: 2.0,
		FireTimerMax: 7.0,

		SweepInterval:     0.6,
		SweepStep:         10,
		DropStep:          20,
		LossMargin:        100,
		EnemyFireInterval: 1.2,

		BarrierCount:  4,
		BarrierWidth:  90,
		BarrierHeight: 36,
		BarrierY:      420,
		BarrierHP:     10,

		KillBonus:      10,
		LevelBonus:     100,
		ExtraLifeEvery: 3,

		FadeDuration: 1.0,
		HoldDuration: 1.5,

		Particles:        60,
		ParticleSpeedMin: 20,
		ParticleSpeedMax: 60,
	}
}

// TransitionDuration is the full wave-clear sequence: fade in, hold, fade out.
func (t Tuning) TransitionDuration() float64 {
	return 2*t.FadeDuration + t.HoldDuration
}

// ShipY is the fixed top edge of the ship.
func (t Tuning) ShipY() float64 {
	return t.FieldHeight - t.ShipBottomMargin - t.ShipHeight
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"field_width", t.FieldWidth},
		{"field_height", t.FieldHeight},
		{"ship_width", t.ShipWidth},
		{"ship_height", t.ShipHeight},
		{"ship_speed", t.ShipSpeed},
		{"shot_width", t.ShotWidth},
		{"shot_height", t.ShotHeight},
		{"ship_shot_speed", t.ShipShotSpeed},
		{"enemy_shot_speed", t.EnemyShotSpeed},
		{"enemy_width", t.EnemyWidth},
		{"enemy_height", t.EnemyHeight},
		{"sweep_interval", t.SweepInterval},
		{"sweep_step", t.SweepStep},
		{"enemy_fire_interval", t.EnemyFireInterval},
		{"barrier_width", t.BarrierWidth},
		{"barrier_height", t.BarrierHeight},
		{"fade_duration", t.FadeDuration},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.v)
		}
	}

	if t.FieldWidth > MaxFieldSize || t.FieldHeight > MaxFieldSize {
		return fmt.Errorf("%w: field %vx%v exceeds %d", ErrInvalid, t.FieldWidth, t.FieldHeight, MaxFieldSize)
	}
	if t.StartRows < 1 || t.StartRows > MaxRows {
		return fmt.Errorf("%w: start_rows must be in [1, %d], got %d", ErrInvalid, MaxRows, t.StartRows)
	}
	if t.StartCols < 1 || t.StartCols > MaxCols {
		return fmt.Errorf("%w: start_cols must be in [1, %d], got %d", ErrInvalid, MaxCols, t.StartCols)
	}
	if t.MaxShots < 1 || t.MaxShots > MaxShotCapacity {
		return fmt.Errorf("%w: max_shots must be in [1, %d], got %d", ErrInvalid, MaxShotCapacity, t.MaxShots)
	}
	if t.BarrierCount < 0 || t.BarrierCount > MaxBarriers {
		return fmt.Errorf("%w: barrier_count must be in [0, %d], got %d", ErrInvalid, MaxBarriers, t.BarrierCount)
	}
	if t.Particles < 0 || t.Particles > MaxParticles {
		return fmt.Errorf("%w: particles must be in [0, %d], got %d", ErrInvalid, MaxParticles, t.Particles)
	}
	if float64(t.BarrierCount)*t.BarrierWidth > t.FieldWidth {
		return fmt.Errorf("%w: %d barriers of width %v do not fit the field", ErrInvalid, t.BarrierCount, t.BarrierWidth)
	}
	// The widest and tallest grid a wave can grow to must start inside the
	// field, clear of the loss margin.
	if w := MaxCols*(t.EnemyWidth+t.EnemyGapX) - t.EnemyGapX; w > t.FieldWidth {
		return fmt.Errorf("%w: a %d-column grid is %v wide, field is %v", ErrInvalid, MaxCols, w, t.FieldWidth)
	}
	if t.EnemyTop < 0 {
		return fmt.Errorf("%w: enemy_top must not be negative, got %v", ErrInvalid, t.EnemyTop)
	}
	if bottom := t.EnemyTop + MaxRows*(t.EnemyHeight+t.EnemyGapY) - t.EnemyGapY; bottom >= t.FieldHeight-t.LossMargin {
		return fmt.Errorf("%w: a %d-row grid reaches %v, loss line is at %v", ErrInvalid, MaxRows, bottom, t.FieldHeight-t.LossMargin)
	}
	if t.ShipWidth > t.FieldWidth {
		return fmt.Errorf("%w: ship is wider than the field", ErrInvalid)
	}
	if t.FireTimerMax < t.FireTimerMin {
		return fmt.Errorf("%w: fire_timer_max %v below fire_timer_min %v", ErrInvalid, t.FireTimerMax, t.FireTimerMin)
	}
	if t.StartLives < 1 {
		return fmt.Errorf("%w: start_lives must be at least 1, got %d", ErrInvalid, t.StartLives)
	}
	if t.HoldDuration < 0 {
		return fmt.Errorf("%w: hold_duration must not be negative", ErrInvalid)
	}
	return nil
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (Tuning, error) {
	t := Default()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to decode tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// Save writes t as TOML.
func Save(path string, t Tuning) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tuning file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(t); err != nil {
		return fmt.Errorf("failed to encode tuning: %w", err)
	}
	return nil
}
