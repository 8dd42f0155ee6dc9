package controller

import "github.com/kazukazukun/building-controller/internal/status"

// Option configures a Controller.
type Option func(*options)

// options collects construction parameters before validation.
type options struct {
	startState    string
	hasStartState bool

	lights LightManager
	doors  DoorManager
	alarm  FireAlarmManager
	web    WebService
	email  EmailService

	parser status.Parser
}

// WithStartState starts the controller in state instead of "out of hours".
// The value is case folded and must be a normal state.
func WithStartState(state string) Option {
	return func(o *options) {
		o.startState = state
		o.hasStartState = true
	}
}

// WithLightManager sets the light manager.
func WithLightManager(m LightManager) Option {
	return func(o *options) {
		o.lights = m
	}
}

// WithDoorManager sets the door manager.
func WithDoorManager(m DoorManager) Option {
	return func(o *options) {
		o.doors = m
	}
}

// WithFireAlarmManager sets the fire alarm manager.
func WithFireAlarmManager(m FireAlarmManager) Option {
	return func(o *options) {
		o.alarm = m
	}
}

// WithWebService sets the web logging service.
func WithWebService(s WebService) Option {
	return func(o *options) {
		o.web = s
	}
}

// WithEmailService sets the email service.
func WithEmailService(s EmailService) Option {
	return func(o *options) {
		o.email = s
	}
}

// WithStatusParser replaces the comma status parser.
func WithStatusParser(p status.Parser) Option {
	return func(o *options) {
		o.parser = p
	}
}
