package simulator

import (
	"context"
	"sync"

	"github.com/kazukazukun/building-controller/internal/status"
)

// Lights simulates the light manager. Lights start off.
type Lights struct {
	bank

	on []bool
	mu sync.Mutex
}

// NewLights creates count lights, marking the given indexes faulty.
func NewLights(count int, faulty []int) *Lights {
	b := newBank(status.LightsLabel, count, faulty)

	return &Lights{
		bank: b,
		on:   make([]bool, len(b.faulty)),
	}
}

// SetLight switches one light. Faulty or unknown lights are ignored.
func (l *Lights) SetLight(_ context.Context, isOn bool, lightID int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.usable(lightID) {
		l.on[lightID] = isOn
	}
}

// SetAllLights switches every working light.
func (l *Lights) SetAllLights(_ context.Context, isOn bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id := range l.on {
		if l.usable(id) {
			l.on[id] = isOn
		}
	}
}

// GetStatus returns the light status line.
func (l *Lights) GetStatus(context.Context) string {
	return l.report()
}

// OnCount returns how many lights are on.
func (l *Lights) OnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return count(l.on)
}
