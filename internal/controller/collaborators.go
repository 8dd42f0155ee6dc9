package controller

import "context"

// DoorManager drives the building doors.
type DoorManager interface {
	OpenDoor(ctx context.Context, doorID int) bool
	LockDoor(ctx context.Context, doorID int) bool
	OpenAllDoors(ctx context.Context) bool
	LockAllDoors(ctx context.Context) bool
	GetStatus(ctx context.Context) string
}

// LightManager drives the building lights.
type LightManager interface {
	SetLight(ctx context.Context, isOn bool, lightID int)
	SetAllLights(ctx context.Context, isOn bool)
	GetStatus(ctx context.Context) string
}

// FireAlarmManager drives the fire alarm.
type FireAlarmManager interface {
	SetAlarm(ctx context.Context, isActive bool)
	GetStatus(ctx context.Context) string
}

// WebService records building events with the remote log.
// Any call may fail.
type WebService interface {
	LogStateChange(ctx context.Context, details string) error
	LogEngineerRequired(ctx context.Context, details string) error
	LogFireAlarm(ctx context.Context, details string) error
}

// EmailService sends alert mail.
type EmailService interface {
	SendMail(ctx context.Context, address, subject, body string) error
}
