package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/fragmentrun/input/controls"
	"github.com/milk9111/fragmentrun/sim"
)

// holdTimeout keeps a move key "held" between terminal key repeats, which
// are the only signal a terminal gives for a held key.
const holdTimeout = 180 * time.Millisecond

type keyAction int

const (
	keyNone keyAction = iota
	keyQuit
	keyConfirm
)

// keyState turns terminal key presses into polled input.
type keyState struct {
	leftUntil  time.Time
	rightUntil time.Time
	raw        controls.Raw
}

// handle records one key press.
func (k *keyState) handle(key tcell.Key, r rune, now time.Time) keyAction {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyQuit
	case tcell.KeyEnter:
		return keyConfirm
	case tcell.KeyLeft:
		k.pressLeft(now)
	case tcell.KeyRight:
		k.pressRight(now)
	case tcell.KeyUp:
		k.raw.Jump = true
	case tcell.KeyRune:
		switch r {
		case 'q':
			return keyQuit
		case 'a', 'A':
			k.pressLeft(now)
		case 'd', 'D':
			k.pressRight(now)
		case 'w', 'W', ' ':
			k.raw.Jump = true
		case 'k', 'K', 'l', 'L':
			k.raw.Dash = true
		case 'j', 'J':
			k.raw.Attack = true
		case 'r', 'R':
			k.raw.Restart = true
		}
	}
	return keyNone
}

// a press on one side releases the other; terminals report no key-up
func (k *keyState) pressLeft(now time.Time) {
	k.leftUntil = now.Add(holdTimeout)
	k.rightUntil = time.Time{}
}

func (k *keyState) pressRight(now time.Time) {
	k.rightUntil = now.Add(holdTimeout)
	k.leftUntil = time.Time{}
}

// sample returns this tick's input and clears the one-shot triggers.
func (k *keyState) sample(now time.Time) sim.Input {
	r := k.raw
	r.Left = now.Before(k.leftUntil)
	r.Right = now.Before(k.rightUntil)
	k.raw = controls.Raw{}
	return controls.Merge(r)
}
