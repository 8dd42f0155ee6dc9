package building

import (
	"errors"
	"slices"
	"strings"
)

// State is the operational mode of a building.
type State string

const (
	// Open means the building is open to occupants.
	Open State = "open"
	// Closed means the building is locked up.
	Closed State = "closed"
	// OutOfHours means the building is staffed but closed to the public.
	OutOfHours State = "out of hours"
	// FireAlarm is the emergency raised by a real alarm.
	FireAlarm State = "fire alarm"
	// FireDrill is the emergency raised by a drill.
	FireDrill State = "fire drill"

	// InitialState is used when no start state is supplied.
	InitialState = OutOfHours
)

// transition is an ordered pair of states.
type transition struct {
	from State
	to   State
}

var (
	//nolint:gochecknoglobals // Static lookup tables shared by all controllers.
	validStates = []State{Open, OutOfHours, Closed, FireAlarm, FireDrill}

	//nolint:gochecknoglobals // Static lookup tables shared by all controllers.
	normalStates = map[State]struct{}{
		Open:       {},
		OutOfHours: {},
		Closed:     {},
	}

	//nolint:gochecknoglobals // Static lookup tables shared by all controllers.
	abnormalStates = map[State]struct{}{
		FireAlarm: {},
		FireDrill: {},
	}

	// deniedTransitions are forbidden whatever the controller context.
	//nolint:gochecknoglobals // Static lookup tables shared by all controllers.
	deniedTransitions = map[transition]struct{}{
		{from: Open, to: Closed}: {},
		{from: Closed, to: Open}: {},
	}
)

// ErrInvalidInitialState is returned when a controller is asked to start in
// anything other than a normal state.
var ErrInvalidInitialState = errors.New(
	"controller can only be initialised to the following states 'open', 'closed', 'out of hours'")

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// IsValidState reports whether s is one of the five building states.
// The comparison is case sensitive against the canonical lowercase form.
func IsValidState(s State) bool {
	return IsNormalState(s) || IsAbnormalState(s)
}

// IsNormalState reports whether s is open, closed or out of hours.
func IsNormalState(s State) bool {
	_, ok := normalStates[s]

	return ok
}

// IsAbnormalState reports whether s is an emergency state.
func IsAbnormalState(s State) bool {
	_, ok := abnormalStates[s]

	return ok
}

// IsLegalTransition reports whether moving from one state to another is
// allowed by the denylist. Identity transitions are legal.
func IsLegalTransition(from, to State) bool {
	_, denied := deniedTransitions[transition{from: from, to: to}]

	return !denied
}

// NormalizeInitialState lowercases candidate and accepts it only when it is
// a normal state. A building must not boot straight into an emergency.
func NormalizeInitialState(candidate string) (State, error) {
	s := State(strings.ToLower(candidate))
	if !IsNormalState(s) {
		return "", ErrInvalidInitialState
	}

	return s, nil
}

// ValidStates returns every building state in canonical order.
func ValidStates() []State {
	return slices.Clone(validStates)
}

// NormalStates returns the states a building may start in, in canonical order.
func NormalStates() []State {
	result := make([]State, 0, len(normalStates))

	for _, s := range validStates {
		if IsNormalState(s) {
			result = append(result, s)
		}
	}

	return result
}
