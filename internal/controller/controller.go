package controller

import (
	"context"
	"strings"

	"github.com/kazukazukun/building-controller/internal/domain/building"
	"github.com/kazukazukun/building-controller/internal/logger"
	"github.com/kazukazukun/building-controller/internal/status"
)

// Controller is the state machine of a single building.
type Controller struct {
	// id is the lowercase building identity.
	id string
	// current is always a valid state.
	current building.State
	// previous names the normal state an emergency interrupted.
	previous building.State

	lights LightManager
	doors  DoorManager
	alarm  FireAlarmManager
	web    WebService
	email  EmailService

	// parser decides whether a manager status line reports a fault.
	parser status.Parser
}

// New creates a controller for the building id. The id is lowercased.
// It returns building.ErrInvalidInitialState when WithStartState names
// anything but a normal state.
func New(id string, opts ...Option) (*Controller, error) {
	o := &options{
		parser: status.CommaParser{},
	}

	for _, opt := range opts {
		opt(o)
	}

	start := building.InitialState

	if o.hasStartState {
		var err error

		start, err = building.NormalizeInitialState(o.startState)
		if err != nil {
			return nil, err
		}
	}

	return &Controller{
		id:       strings.ToLower(id),
		current:  start,
		previous: start,
		lights:   o.lights,
		doors:    o.doors,
		alarm:    o.alarm,
		web:      o.web,
		email:    o.email,
		parser:   o.parser,
	}, nil
}

// ID returns the building identity.
func (c *Controller) ID() string {
	return c.id
}

// SetID replaces the building identity, lowercasing it.
func (c *Controller) SetID(id string) {
	c.id = strings.ToLower(id)
}

// CurrentState returns the state the building is in.
func (c *Controller) CurrentState() building.State {
	return c.current
}

// PreviousState returns the state held before the last committed transition.
func (c *Controller) PreviousState() building.State {
	return c.previous
}

// Snapshot returns a copy of the controller state.
func (c *Controller) Snapshot() *building.Snapshot {
	return &building.Snapshot{
		ID:       c.id,
		Current:  c.current,
		Previous: c.previous,
	}
}

// SetCurrentState moves the building to target and reports whether it did.
//
// The move is refused when target is unknown, when the pair is denylisted,
// or when the building is in an emergency and target is not the state the
// emergency interrupted. Moving to the current state succeeds without side
// effects. Otherwise the side effects of target run first and the state is
// committed only if they succeed.
func (c *Controller) SetCurrentState(ctx context.Context, target string) bool {
	to := building.State(target)

	ctx = logger.WithKV(ctx, "building_id", c.id, "from", c.current.String(), "to", target)

	switch {
	case !building.IsValidState(to):
		logger.DebugKV(ctx, "Transition rejected", "reason", "unknown state")

		return false
	case !building.IsLegalTransition(c.current, to):
		logger.DebugKV(ctx, "Transition rejected", "reason", "denied pair")

		return false
	case to == c.current:
		return true
	case building.IsAbnormalState(c.current) && to != c.previous:
		logger.DebugKV(ctx, "Transition rejected", "reason", "emergency exit must restore previous state",
			"previous", c.previous.String())

		return false
	}

	if !c.affectStateTransition(ctx, to) {
		logger.DebugKV(ctx, "Transition aborted", "reason", "side effects failed")

		return false
	}

	c.previous = c.current
	c.current = to

	logger.InfoKV(ctx, "State changed")

	return true
}
