//go:build !js
// +build !js

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "github.com/simukka/sorades-invaders/audio"
	"github.com/simukka/sorades-invaders/game"
)

// sound plays one rendered cue per event kind. A nil *sound is silent.
type sound struct {
	ctx     *audio.Context
	players map[game.EventKind]*audio.Player
}

func newSound(seed uint32, enabled bool) *sound {
	if !enabled {
		return nil
	}
	bank, err := sfx.NewBank(seed)
	if err != nil {
		log.Printf("sound disabled: %v", err)
		return nil
	}

	s := &sound{
		ctx:     audio.NewContext(sfx.SampleRate),
		players: make(map[game.EventKind]*audio.Player, bank.Len()),
	}
	for kind := range sfx.Cues {
		s.players[kind] = s.ctx.NewPlayerFromBytes(sfx.PCM16Stereo(bank.Samples(kind)))
	}
	return s
}

func (s *sound) play(kind game.EventKind) {
	if s == nil {
		return
	}
	p := s.players[kind]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
