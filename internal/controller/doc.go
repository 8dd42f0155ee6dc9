// Package controller implements the building controller state machine.
//
// A Controller owns the current and previous building state, validates and
// executes transitions, drives the door, light and fire alarm managers, and
// builds the consolidated status report. Collaborators are optional; a
// transition that needs a missing one fails instead of skipping it.
//
// A Controller is not safe for concurrent use. Callers serialize access,
// typically one controller per building behind their own lock.
package controller
