package game

import (
	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/config"
)

// --- Shots ---

// Shot is a projectile slot. Speed is a magnitude; Origin decides direction.
type Shot struct {
	common.Rect
	Active bool
	Speed  float64
	Origin Origin
}

// ShotPool is a fixed-capacity slot array. Slots are reused in place, so
// iteration order is stable and equals slot order.
type ShotPool struct {
	Pool     [config.MaxShotCapacity]Shot
	Capacity int
}

// NewShotPool creates a pool with capacity usable slots, capped at
// config.MaxShotCapacity.
func NewShotPool(capacity int) *ShotPool {
	if capacity > config.MaxShotCapacity {
		capacity = config.MaxShotCapacity
	}
	if capacity < 0 {
		capacity = 0
	}
	return &ShotPool{Capacity: capacity}
}

// Fire activates the first inactive slot. Returns nil when the pool is full.
func (p *ShotPool) Fire(r common.Rect, speed float64, origin Origin) *Shot {
	for i := 0; i < p.Capacity; i++ {
		s := &p.Pool[i]
		if s.Active {
			continue
		}
		*s = Shot{Rect: r, Active: true, Speed: speed, Origin: origin}
		return s
	}
	return nil
}

// Release deactivates slot i.
func (p *ShotPool) Release(i int) {
	if i < 0 || i >= p.Capacity {
		return
	}
	p.Pool[i].Active = false
}

// Clear deactivates every slot.
func (p *ShotPool) Clear() {
	for i := range p.Pool {
		p.Pool[i].Active = false
	}
}

// ActiveCount returns the number of live shots.
func (p *ShotPool) ActiveCount() int {
	n := 0
	for i := 0; i < p.Capacity; i++ {
		if p.Pool[i].Active {
			n++
		}
	}
	return n
}

// ForEachActive calls fn for every active shot in slot order. fn may
// release the shot it is given.
func (p *ShotPool) ForEachActive(fn func(*Shot, int)) {
	for i := 0; i < p.Capacity; i++ {
		if p.Pool[i].Active {
			fn(&p.Pool[i], i)
		}
	}
}

// --- Background particles ---

// Particle is one star of the scrolling background.
type Particle struct {
	X, Y  float64
	Speed float64
}

// ParticlePool holds the star field. Stars never die; they wrap.
type ParticlePool struct {
	Pool  [config.MaxParticles]Particle
	Count int
}

// NewParticlePool scatters count stars over a width x height field.
func NewParticlePool(count int, width, height, minSpeed, maxSpeed float64, rng common.Random) *ParticlePool {
	if count > config.MaxParticles {
		count = config.MaxParticles
	}
	p := &ParticlePool{Count: count}
	for i := 0; i < p.Count; i++ {
		p.Pool[i] = Particle{
			X:     rng.RandomFloat(0, width),
			Y:     rng.RandomFloat(0, height),
			Speed: rng.RandomFloat(minSpeed, maxSpeed),
		}
	}
	return p
}

// Advance drifts every star down and wraps the ones leaving the bottom
// back to the top at a new x.
func (p *ParticlePool) Advance(dt, width, height float64, rng common.Random) {
	for i := 0; i < p.Count; i++ {
		s := &p.Pool[i]
		s.Y += s.Speed * dt
		if s.Y > height {
			s.Y -= height
			s.X = rng.RandomFloat(0, width)
		}
	}
}
