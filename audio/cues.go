package audio

import (
	"fmt"

	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/game"
)

// Cues maps every game event to its sound.
var Cues = map[game.EventKind]string{
	game.EventShotFired:   "0,,.167,.1637,.1361,.7212,.0399,-.363,,,,,,.1314,.0517,,.0154,-.1633,1,,,.0515,,.2",
	game.EventEnemyFired:  "0,,.2863,,.3048,.751,.2,-.316,,,,,,.4416,.1008,,,,1,,,.2962,,.3",
	game.EventEnemyKilled: "3,.2,.1899,.4799,.91,.0599,,-.2199,-.2,.5299,.5299,-.0399,.3,,.0799,.1899,-.1194,.2327,.8815,-.2364,.43,.2099,-.5799,.5",
	game.EventShipHit:     "3,.0704,.0462,.3388,.4099,.1599,,.0109,-.3247,.0006,,-.1592,.4477,.1028,.1787,,-.0157,-.3372,.1896,.1628,,.0016,-.0003,.5",
	game.EventBarrierHit:  "3,,.3626,.5543,.191,.0731,,-.3749,,,,,,,,,,,1,,,,,.25",
	game.EventWaveCleared: "0,.43,.1099,.67,.4499,.6999,,-.2199,-.2,.5299,.5299,-.0399,.3,,.0799,.1899,-.1194,.2327,.8815,-.2364,.43,.2099,-.5799,.5",
	game.EventWaveStarted: "1,.1,1,.1901,.2847,.3199,,.0007,.1492,,,-.9636,,,-.3893,.1636,-.0047,.6646,.9653,-.1103,.5924,.484,.1547,.6",
	game.EventExtraLife:   "0,.09,.1099,.0733,.0854,.1099,,-.1891,.827,,,.9826,,,.4642,,-.1194,.2327,.8815,-.2364,.0992,.0076,.8314,.5",
	game.EventGameOver:    "1,1,.09,.5,.4111,.506,.0942,.1499,.0199,.8799,.1099,-.68,.0268,.1652,.62,.6999,-.0399,.4799,.5199,-.0429,.0599,.8199,-.4199,.7",
}

// Bank holds every cue pre-rendered.
type Bank struct {
	samples map[game.EventKind][]int16
}

// NewBank renders all cues. Noise is drawn from a generator seeded with
// seed so a bank is reproducible.
func NewBank(seed uint32) (*Bank, error) {
	rng := common.NewSeededRNG(seed)
	b := &Bank{samples: make(map[game.EventKind][]int16, len(Cues))}
	for kind, settings := range Cues {
		p, err := ParseParams(settings)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", kind, err)
		}
		rng.SetSeed(seed ^ uint32(kind))
		b.samples[kind] = Render(p, rng)
	}
	return b, nil
}

// Samples returns the rendered cue for kind, nil if none is defined.
func (b *Bank) Samples(kind game.EventKind) []int16 {
	return b.samples[kind]
}

// Len returns the number of rendered cues.
func (b *Bank) Len() int {
	return len(b.samples)
}
