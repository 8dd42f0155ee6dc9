package simulator

import (
	"context"
	"sync"

	"github.com/kazukazukun/building-controller/internal/logger"
	"github.com/kazukazukun/building-controller/internal/status"
)

// FireAlarm simulates the fire alarm manager; its devices are the sounders.
type FireAlarm struct {
	bank

	active bool
	mu     sync.Mutex
}

// NewFireAlarm creates an alarm with count sounders, marking the given indexes faulty.
func NewFireAlarm(count int, faulty []int) *FireAlarm {
	return &FireAlarm{
		bank: newBank(status.FireAlarmLabel, count, faulty),
	}
}

// SetAlarm raises or silences the alarm.
func (a *FireAlarm) SetAlarm(ctx context.Context, isActive bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.active = isActive

	logger.InfoKV(ctx, "Fire alarm switched", "active", isActive)
}

// GetStatus returns the fire alarm status line.
func (a *FireAlarm) GetStatus(context.Context) string {
	return a.report()
}

// Active reports whether the alarm is sounding.
func (a *FireAlarm) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.active
}
