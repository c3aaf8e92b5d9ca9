// Package tuning holds the runtime-adjustable physics constants.
//
// The identifier set is closed and fixed at compile time; each identifier maps to a record carrying its current
// value, its increase/decrease bindings and the per-tick step applied while a binding is held. Values are not
// bounded here: clamping is the consumer's concern.
package tuning

import (
	"fmt"

	"github.com/lixenwraith/gravity-swarm/parameter"
)

// ID identifies a tunable constant
type ID uint8

const (
	MaxAcceleration ID = iota
	InterParticleGravity

	// Count is the number of registered identifiers
	Count
)

var idNames = [Count]string{
	MaxAcceleration:      "MaxAcceleration",
	InterParticleGravity: "InterParticleGravity",
}

// String returns the display name
func (id ID) String() string {
	if id >= Count {
		return fmt.Sprintf("ID(%d)", uint8(id))
	}
	return idNames[id]
}

// ParseID resolves a display name back to its identifier
func ParseID(name string) (ID, bool) {
	for i, n := range idNames {
		if n == name {
			return ID(i), true
		}
	}
	return 0, false
}

// KeyState reports which keys are held during the current tick
type KeyState interface {
	Held(key rune) bool
}

// Constant is one tunable record
type Constant struct {
	ID       ID
	Value    float64
	Delta    float64
	Increase rune
	Decrease rune
}

// Adjustment is the net change applied to one constant during a tick
type Adjustment struct {
	ID    ID
	Delta float64
	Value float64 // value after the change
}

// Store is the fixed-size constant table
// Not safe for concurrent use; the tick loop owns it
type Store struct {
	constants [Count]Constant
	initial   [Count]Constant
	changed   []Adjustment
}

// Defaults returns the compiled default records in identifier order
func Defaults() [Count]Constant {
	return [Count]Constant{
		MaxAcceleration: {
			ID:       MaxAcceleration,
			Value:    parameter.MaxAccelerationDefault,
			Delta:    parameter.MaxAccelerationDelta,
			Increase: parameter.MaxAccelerationIncrease,
			Decrease: parameter.MaxAccelerationDecrease,
		},
		InterParticleGravity: {
			ID:       InterParticleGravity,
			Value:    parameter.InterParticleGravityDefault,
			Delta:    parameter.InterParticleGravityDelta,
			Increase: parameter.InterParticleGravityIncrease,
			Decrease: parameter.InterParticleGravityDecrease,
		},
	}
}

// NewStore creates a store from the given records, which also become the Reset target
// Records are indexed by their ID field; identifiers missing from records keep compiled defaults
func NewStore(records ...Constant) *Store {
	s := &Store{
		constants: Defaults(),
		changed:   make([]Adjustment, 0, Count),
	}
	for _, r := range records {
		mustRegistered(r.ID)
		s.constants[r.ID] = r
	}
	s.initial = s.constants
	return s
}

func mustRegistered(id ID) {
	if id >= Count {
		panic(fmt.Sprintf("tuning: unregistered constant %s", id))
	}
}

// Get returns the current value of id
// Panics on an unregistered identifier
func (s *Store) Get(id ID) float64 {
	mustRegistered(id)
	return s.constants[id].Value
}

// Constant returns the full record of id for display
// Panics on an unregistered identifier
func (s *Store) Constant(id ID) Constant {
	mustRegistered(id)
	return s.constants[id]
}

// Set overwrites the value of id
func (s *Store) Set(id ID, value float64) {
	mustRegistered(id)
	s.constants[id].Value = value
}

// Each calls fn for every constant in identifier order
func (s *Store) Each(fn func(c Constant)) {
	for _, c := range s.constants {
		fn(c)
	}
}

// Reset restores every record to the values the store was created with
func (s *Store) Reset() {
	s.constants = s.initial
}

// Adjust applies one tick of held-key adjustments
// Increase and decrease are independent: both held nets to zero and leaves the value untouched
// The returned slice lists constants whose value changed; it is reused by the next call
func (s *Store) Adjust(held KeyState) []Adjustment {
	s.changed = s.changed[:0]
	if held == nil {
		return s.changed
	}

	for i := range s.constants {
		c := &s.constants[i]
		net := 0.0
		if held.Held(c.Increase) {
			net += c.Delta
		}
		if held.Held(c.Decrease) {
			net -= c.Delta
		}
		if net == 0 {
			continue
		}
		c.Value += net
		s.changed = append(s.changed, Adjustment{ID: c.ID, Delta: net, Value: c.Value})
	}
	return s.changed
}
