package controller

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// doorManagerMock is a testify mock of DoorManager.
type doorManagerMock struct {
	mock.Mock
}

func (m *doorManagerMock) OpenDoor(ctx context.Context, doorID int) bool {
	return m.Called(ctx, doorID).Bool(0)
}

func (m *doorManagerMock) LockDoor(ctx context.Context, doorID int) bool {
	return m.Called(ctx, doorID).Bool(0)
}

func (m *doorManagerMock) OpenAllDoors(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *doorManagerMock) LockAllDoors(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *doorManagerMock) GetStatus(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

// lightManagerMock is a testify mock of LightManager.
type lightManagerMock struct {
	mock.Mock
}

func (m *lightManagerMock) SetLight(ctx context.Context, isOn bool, lightID int) {
	m.Called(ctx, isOn, lightID)
}

func (m *lightManagerMock) SetAllLights(ctx context.Context, isOn bool) {
	m.Called(ctx, isOn)
}

func (m *lightManagerMock) GetStatus(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

// fireAlarmManagerMock is a testify mock of FireAlarmManager.
type fireAlarmManagerMock struct {
	mock.Mock
}

func (m *fireAlarmManagerMock) SetAlarm(ctx context.Context, isActive bool) {
	m.Called(ctx, isActive)
}

func (m *fireAlarmManagerMock) GetStatus(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

// webServiceMock is a testify mock of WebService.
type webServiceMock struct {
	mock.Mock
}

func (m *webServiceMock) LogStateChange(ctx context.Context, details string) error {
	return m.Called(ctx, details).Error(0)
}

func (m *webServiceMock) LogEngineerRequired(ctx context.Context, details string) error {
	return m.Called(ctx, details).Error(0)
}

func (m *webServiceMock) LogFireAlarm(ctx context.Context, details string) error {
	return m.Called(ctx, details).Error(0)
}

// emailServiceMock is a testify mock of EmailService.
type emailServiceMock struct {
	mock.Mock
}

func (m *emailServiceMock) SendMail(ctx context.Context, address, subject, body string) error {
	return m.Called(ctx, address, subject, body).Error(0)
}

// fixture wires one mock of every collaborator with permissive defaults.
// Door results and the fire log error can be changed between steps.
type fixture struct {
	lights *lightManagerMock
	doors  *doorManagerMock
	alarm  *fireAlarmManagerMock
	web    *webServiceMock
	email  *emailServiceMock

	openAll *mock.Call
	lockAll *mock.Call
	fireLog *mock.Call

	// order records side effect calls across all mocks.
	order []string
}

func newFixture() *fixture {
	f := &fixture{
		lights: new(lightManagerMock),
		doors:  new(doorManagerMock),
		alarm:  new(fireAlarmManagerMock),
		web:    new(webServiceMock),
		email:  new(emailServiceMock),
	}

	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) {
			f.order = append(f.order, name)
		}
	}

	f.openAll = f.doors.On("OpenAllDoors", mock.Anything).Return(true).Run(record("OpenAllDoors")).Maybe()
	f.lockAll = f.doors.On("LockAllDoors", mock.Anything).Return(true).Run(record("LockAllDoors")).Maybe()
	f.lights.On("SetAllLights", mock.Anything, mock.Anything).Return().Run(record("SetAllLights")).Maybe()
	f.alarm.On("SetAlarm", mock.Anything, mock.Anything).Return().Run(record("SetAlarm")).Maybe()
	f.fireLog = f.web.On("LogFireAlarm", mock.Anything, mock.Anything).Return(nil).Run(record("LogFireAlarm")).Maybe()
	f.web.On("LogEngineerRequired", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.email.On("SendMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return f
}

// options returns every collaborator as controller options.
func (f *fixture) options() []Option {
	return []Option{
		WithLightManager(f.lights),
		WithDoorManager(f.doors),
		WithFireAlarmManager(f.alarm),
		WithWebService(f.web),
		WithEmailService(f.email),
	}
}

// setDoors changes what OpenAllDoors and LockAllDoors return.
func (f *fixture) setDoors(open, lock bool) {
	f.openAll.ReturnArguments = mock.Arguments{open}
	f.lockAll.ReturnArguments = mock.Arguments{lock}
}

// setFireLogError makes LogFireAlarm fail with err.
func (f *fixture) setFireLogError(err error) {
	f.fireLog.ReturnArguments = mock.Arguments{err}
}

// setStatus configures the three manager status lines.
func (f *fixture) setStatus(lights, doors, alarm string) {
	f.lights.On("GetStatus", mock.Anything).Return(lights)
	f.doors.On("GetStatus", mock.Anything).Return(doors)
	f.alarm.On("GetStatus", mock.Anything).Return(alarm)
}

// clearCalls forgets every recorded call, keeping expectations.
func (f *fixture) clearCalls() {
	f.lights.Calls = nil
	f.doors.Calls = nil
	f.alarm.Calls = nil
	f.web.Calls = nil
	f.email.Calls = nil
	f.order = nil
}
