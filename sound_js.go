//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/sorades-invaders/audio"
	"github.com/simukka/sorades-invaders/game"
)

// sound plays cues through HTML audio elements built from inline WAVs.
type sound struct {
	elements map[game.EventKind]*js.Object
	volume   float64
}

func newSound(seed uint32) *sound {
	bank, err := audio.NewBank(seed)
	if err != nil {
		game.Debug("sound disabled:", err.Error())
		return nil
	}
	s := &sound{
		elements: make(map[game.EventKind]*js.Object, bank.Len()),
		volume:   0.5,
	}
	for kind := range audio.Cues {
		el := js.Global.Get("Audio").New(audio.DataURL(bank.Samples(kind)))
		el.Set("preload", "auto")
		s.elements[kind] = el
	}
	return s
}

// resume unlocks playback; browsers block audio until a user gesture.
func (s *sound) resume() {
	if s == nil {
		return
	}
	for _, el := range s.elements {
		el.Call("load")
	}
}

func (s *sound) play(kind game.EventKind) {
	if s == nil {
		return
	}
	el, ok := s.elements[kind]
	if !ok {
		return
	}
	// clone so overlapping cues of one kind do not cut each other off
	c := el.Call("cloneNode")
	c.Set("volume", s.volume)
	c.Call("play")
}
