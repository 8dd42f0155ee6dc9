package scenario

import (
	"context"
	"fmt"

	"github.com/kazukazukun/building-controller/internal/config"
	"github.com/kazukazukun/building-controller/internal/controller"
	"github.com/kazukazukun/building-controller/internal/logger"
	"github.com/kazukazukun/building-controller/internal/notify"
	"github.com/kazukazukun/building-controller/internal/simulator"
)

// site is a controller together with the simulators and services it drives.
// Disabled collaborators are nil.
type site struct {
	controller *controller.Controller

	doors  *simulator.Doors
	lights *simulator.Lights
	alarm  *simulator.FireAlarm
	web    *notify.WebLog
	mail   *notify.Outbox
}

// newSite wires the configured collaborators into a controller.
func newSite(cfg *config.Config) (*site, error) {
	var (
		b    = new(site)
		opts []controller.Option
	)

	if cfg.StartState != nil {
		opts = append(opts, controller.WithStartState(*cfg.StartState))
	}

	if bank := cfg.Devices.Lights; !bank.Disabled {
		b.lights = simulator.NewLights(bank.Count, bank.Faulty)
		opts = append(opts, controller.WithLightManager(b.lights))
	}

	if bank := cfg.Devices.Doors; !bank.Disabled {
		b.doors = simulator.NewDoors(bank.Count, bank.Faulty)
		opts = append(opts, controller.WithDoorManager(b.doors))
	}

	if bank := cfg.Devices.FireAlarm; !bank.Disabled {
		b.alarm = simulator.NewFireAlarm(bank.Count, bank.Faulty)
		opts = append(opts, controller.WithFireAlarmManager(b.alarm))
	}

	if !cfg.Web.Disabled {
		var webOpts []notify.WebLogOption
		if cfg.Web.FailFireLog {
			webOpts = append(webOpts, notify.WithFailingFireLog())
		}

		b.web = notify.NewWebLog(webOpts...)
		opts = append(opts, controller.WithWebService(b.web))
	}

	if !cfg.Email.Disabled {
		b.mail = notify.NewOutbox()
		opts = append(opts, controller.WithEmailService(b.mail))
	}

	c, err := controller.New(cfg.BuildingID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create controller: %w", err)
	}

	b.controller = c

	return b, nil
}

// execute runs one step and returns its outcome line.
func (b *site) execute(ctx context.Context, step config.Step) string {
	switch step.Action {
	case config.ActionTransition:
		return b.transition(ctx, step.State)
	case config.ActionReport:
		return "report: " + b.controller.GetStatusReport(ctx)
	default:
		return fmt.Sprintf("%s: skipped", step.Action)
	}
}

// transition changes state and tells the web log about committed changes.
func (b *site) transition(ctx context.Context, target string) string {
	from := b.controller.CurrentState()

	if !b.controller.SetCurrentState(ctx, target) {
		return fmt.Sprintf("transition %q: refused (state: %s)", target, from)
	}

	to := b.controller.CurrentState()

	if b.web != nil && from != to {
		if err := b.web.LogStateChange(ctx, fmt.Sprintf("%s -> %s", from, to)); err != nil {
			logger.WarnKV(ctx, "Failed to log state change", "error", err)
		}
	}

	return fmt.Sprintf("transition %q: ok (state: %s)", target, to)
}

// summary describes the site after a run.
func (b *site) summary() []string {
	snap := b.controller.Snapshot()

	lines := []string{
		fmt.Sprintf("building: %q state: %s previous: %s", snap.ID, snap.Current, snap.Previous),
	}

	if b.doors != nil {
		lines = append(lines, fmt.Sprintf("doors open: %d", b.doors.OpenCount()))
	}

	if b.lights != nil {
		lines = append(lines, fmt.Sprintf("lights on: %d", b.lights.OnCount()))
	}

	if b.alarm != nil {
		lines = append(lines, fmt.Sprintf("alarm active: %t", b.alarm.Active()))
	}

	if b.web != nil {
		lines = append(lines, fmt.Sprintf("engineer requests: %d", b.web.Count(notify.KindEngineerRequired)))
	}

	if b.mail != nil {
		lines = append(lines, fmt.Sprintf("alert mails: %d", len(b.mail.Sent())))
	}

	return lines
}
