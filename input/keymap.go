// Package input turns terminal events into per-tick input state: held keys, discrete actions and the pointer.
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is a discrete, edge-triggered command
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionReset
	ActionZoomIn
	ActionZoomOut
	ActionRecenter
	ActionToggleMode
	ActionToggleMute
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionQuit:       "quit",
	ActionPause:      "pause",
	ActionReset:      "reset",
	ActionZoomIn:     "zoom_in",
	ActionZoomOut:    "zoom_out",
	ActionRecenter:   "recenter",
	ActionToggleMode: "toggle_mode",
	ActionToggleMute: "toggle_mute",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// KeyTable maps keys to discrete actions
// Runes not bound here are candidates for held-key tracking
type KeyTable struct {
	SpecialKeys map[tcell.Key]Action
	Runes       map[rune]Action
}

// DefaultKeyTable returns the default action bindings
// Tunable bindings (m/n, g/f) are tracked as held keys, not listed here
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlS:  ActionToggleMute,
			tcell.KeyTab:    ActionToggleMode,
		},
		Runes: map[rune]Action{
			'q': ActionQuit,
			'p': ActionPause,
			' ': ActionPause,
			'r': ActionReset,
			'+': ActionZoomIn,
			'=': ActionZoomIn,
			'-': ActionZoomOut,
			'c': ActionRecenter,
		},
	}
}

// Classify resolves a key event into an action or a rune to track as held
// Exactly one of the results is meaningful: a non-None action, or a non-zero rune
func (kt *KeyTable) Classify(key tcell.Key, r rune) (Action, rune) {
	if key != tcell.KeyRune {
		if a, ok := kt.SpecialKeys[key]; ok {
			return a, 0
		}
		return ActionNone, 0
	}
	lower := unicode.ToLower(r)
	if a, ok := kt.Runes[lower]; ok {
		return a, 0
	}
	if !unicode.IsPrint(lower) {
		return ActionNone, 0
	}
	return ActionNone, lower
}

// Unbind removes rune bindings that collide with held-key bindings
// Returns the runes that were removed
func (kt *KeyTable) Unbind(runes ...rune) []rune {
	var removed []rune
	for _, r := range runes {
		lower := unicode.ToLower(r)
		if _, ok := kt.Runes[lower]; ok {
			delete(kt.Runes, lower)
			removed = append(removed, lower)
		}
	}
	return removed
}
