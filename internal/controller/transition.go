package controller

import (
	"context"

	"github.com/kazukazukun/building-controller/internal/domain/building"
	"github.com/kazukazukun/building-controller/internal/logger"
)

const (
	// AlertAddress receives mail when the fire alarm cannot be logged.
	AlertAddress = "smartbuilding@uclan.ac.uk"
	// AlertSubject is the subject of that mail.
	AlertSubject = "failed to log alarm"
)

// affectStateTransition runs the side effects required before entering
// target and reports whether the transition may be committed.
func (c *Controller) affectStateTransition(ctx context.Context, target building.State) bool {
	switch target {
	case building.Open:
		return c.openBuilding(ctx)
	case building.Closed:
		return c.closeBuilding(ctx)
	case building.FireAlarm:
		return c.raiseFireAlarm(ctx)
	default:
		return true
	}
}

func (c *Controller) openBuilding(ctx context.Context) bool {
	if c.doors == nil {
		logger.WarnKV(ctx, "Cannot open building", "missing", "door manager")

		return false
	}

	return c.doors.OpenAllDoors(ctx)
}

// closeBuilding locks the doors first; lights go off only once they are locked.
func (c *Controller) closeBuilding(ctx context.Context) bool {
	if c.doors == nil || c.lights == nil {
		logger.WarnKV(ctx, "Cannot close building", "has_doors", c.doors != nil, "has_lights", c.lights != nil)

		return false
	}

	if !c.doors.LockAllDoors(ctx) {
		return false
	}

	c.lights.SetAllLights(ctx, false)

	return true
}

// raiseFireAlarm sounds the alarm and forces egress. Door and light results
// are not consulted. A failure to log the alarm is reported by mail and does
// not abort the transition.
func (c *Controller) raiseFireAlarm(ctx context.Context) bool {
	if c.alarm == nil || c.doors == nil || c.lights == nil || c.web == nil {
		logger.WarnKV(ctx, "Cannot raise fire alarm",
			"has_alarm", c.alarm != nil,
			"has_doors", c.doors != nil,
			"has_lights", c.lights != nil,
			"has_web", c.web != nil)

		return false
	}

	c.alarm.SetAlarm(ctx, true)
	c.doors.OpenAllDoors(ctx)
	c.lights.SetAllLights(ctx, true)

	if err := c.web.LogFireAlarm(ctx, building.FireAlarm.String()); err != nil {
		logger.WarnKV(ctx, "Failed to log fire alarm", "error", err)
		c.sendAlert(ctx, err)
	}

	return true
}

// sendAlert mails the fire log failure to the building operators.
func (c *Controller) sendAlert(ctx context.Context, cause error) {
	if c.email == nil {
		logger.WarnKV(ctx, "No email service to report fire log failure")

		return
	}

	if err := c.email.SendMail(ctx, AlertAddress, AlertSubject, cause.Error()); err != nil {
		logger.ErrorKV(ctx, "Failed to send alert mail", "error", err)
	}
}
