package input

import (
	"time"
	"unicode"
)

// KeySet is a per-tick snapshot of held keys
// Keys are case-folded to lower case
type KeySet map[rune]bool

// Held reports whether key is in the set
func (s KeySet) Held(key rune) bool {
	return s[unicode.ToLower(key)]
}

// Tracker derives held state from key press events
// Terminals deliver auto-repeat presses but no releases. An isolated press counts as held for one
// snapshot; once a repeat arrives within delay of the previous press, the key stays held until no
// repeat has arrived for gap
type Tracker struct {
	delay time.Duration
	gap   time.Duration
	keys  map[rune]*keyEntry
}

type keyEntry struct {
	last      time.Time
	repeating bool
	consumed  bool
}

// NewTracker creates a tracker
// delay bounds the wait for the first auto-repeat, gap the spacing between later repeats
func NewTracker(delay, gap time.Duration) *Tracker {
	return &Tracker{
		delay: delay,
		gap:   gap,
		keys:  make(map[rune]*keyEntry),
	}
}

// Press records a press or repeat of key at now
func (t *Tracker) Press(key rune, now time.Time) {
	key = unicode.ToLower(key)
	e, ok := t.keys[key]
	if ok && now.Sub(e.last) <= t.delay {
		e.repeating = true
		e.last = now
		return
	}
	t.keys[key] = &keyEntry{last: now}
}

// Clear forgets every key
func (t *Tracker) Clear() {
	clear(t.keys)
}

// Snapshot fills dst with the keys held at now and returns it
// Expired entries are pruned; dst may be nil
func (t *Tracker) Snapshot(now time.Time, dst KeySet) KeySet {
	if dst == nil {
		dst = make(KeySet, len(t.keys))
	} else {
		clear(dst)
	}
	for k, e := range t.keys {
		age := now.Sub(e.last)
		switch {
		case e.repeating:
			if age > t.gap {
				delete(t.keys, k)
				continue
			}
			dst[k] = true
		case !e.consumed:
			e.consumed = true
			dst[k] = true
		case age > t.delay:
			delete(t.keys, k)
		}
	}
	return dst
}
