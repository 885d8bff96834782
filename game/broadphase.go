package game

import (
	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/config"
	"github.com/solarlune/resolv"
)

// The collision space is a fixed square with the field inset by spacePad so
// shapes overshooting a wall or spawning above the top stay inside it.
const (
	spaceSize = config.MaxFieldSize + 2*spacePad
	spaceCell = 64
	spacePad  = 256
)

var tagEnemy = resolv.NewTag("enemy")

// broadPhase mirrors live enemy rectangles into a cell space so a shot only
// tests the enemies sharing its cells. Exact overlap and slot order still
// decide the hit.
type broadPhase struct {
	space  *resolv.Space
	shapes [config.MaxEnemies]resolv.IShape
	slots  map[resolv.IShape]int
	dirty  bool
}

func newBroadPhase() *broadPhase {
	return &broadPhase{
		space: resolv.NewSpace(spaceSize, spaceSize, spaceCell, spaceCell),
		slots: make(map[resolv.IShape]int, config.MaxEnemies),
		dirty: true,
	}
}

func shapeFor(r common.Rect) resolv.IShape {
	return resolv.NewRectangleFromTopLeft(r.X+spacePad, r.Y+spacePad, r.W, r.H)
}

// markDirty schedules a rebuild before the next query. Called whenever
// enemies move or are laid out.
func (b *broadPhase) markDirty() {
	b.dirty = true
}

// remove drops slot i from the space right away.
func (b *broadPhase) remove(i int) {
	sh := b.shapes[i]
	if sh == nil {
		return
	}
	b.space.Remove(sh)
	delete(b.slots, sh)
	b.shapes[i] = nil
}

// sync rebuilds the space from the alive enemies in the active range.
func (b *broadPhase) sync(enemies []Enemy) {
	if !b.dirty {
		return
	}
	for i := range b.shapes {
		b.remove(i)
	}
	for i := range enemies {
		if !enemies[i].Alive {
			continue
		}
		sh := shapeFor(enemies[i].Rect)
		sh.Tags().Set(tagEnemy)
		b.space.Add(sh)
		b.shapes[i] = sh
		b.slots[sh] = i
	}
	b.dirty = false
}

// firstHit returns the lowest enemy slot whose rectangle strictly overlaps
// r, or -1. The space only narrows the candidates to enemies registered in
// the cells r covers; the exact test is Rect.Overlaps, so a shot lying
// wholly inside an enemy still counts.
func (b *broadPhase) firstHit(r common.Rect, enemies []Enemy) int {
	b.sync(enemies)
	if len(b.slots) == 0 {
		return -1
	}

	area := resolv.Bounds{
		Min: resolv.NewVector(r.X+spacePad, r.Y+spacePad),
		Max: resolv.NewVector(r.Right()+spacePad, r.Bottom()+spacePad),
	}

	best := -1
	b.space.FilterCells(area).FilterShapes().ByTags(tagEnemy).ForEach(func(sh resolv.IShape) bool {
		i, ok := b.slots[sh]
		if !ok || !enemies[i].Alive || !enemies[i].Overlaps(r) {
			return true
		}
		if best < 0 || i < best {
			best = i
		}
		return true
	})
	return best
}
