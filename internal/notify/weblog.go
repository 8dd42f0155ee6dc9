package notify

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/kazukazukun/building-controller/internal/logger"
)

// Kind tells which web log endpoint an entry was sent to.
type Kind string

const (
	// KindStateChange is a committed building state change.
	KindStateChange Kind = "state_change"
	// KindEngineerRequired is a request for maintenance.
	KindEngineerRequired Kind = "engineer_required"
	// KindFireAlarm is a raised fire alarm.
	KindFireAlarm Kind = "fire_alarm"
)

// ErrTransportUnavailable is returned for calls the web log refuses.
var ErrTransportUnavailable = errors.New("web log transport unavailable")

// Entry is one accepted web log call.
type Entry struct {
	Kind    Kind
	Details string
	At      time.Time
}

// WebLogOption configures a WebLog.
type WebLogOption func(*WebLog)

// WithFailingFireLog makes every LogFireAlarm call fail.
func WithFailingFireLog() WebLogOption {
	return func(w *WebLog) {
		w.failFireLog = true
	}
}

// WebLog is a web service writing entries to the structured log.
type WebLog struct {
	entries     []Entry
	failFireLog bool
	mu          sync.Mutex
}

// NewWebLog creates an empty web log.
func NewWebLog(opts ...WebLogOption) *WebLog {
	w := new(WebLog)
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// LogStateChange records a state change.
func (w *WebLog) LogStateChange(ctx context.Context, details string) error {
	w.record(ctx, KindStateChange, details)

	return nil
}

// LogEngineerRequired records a maintenance request.
func (w *WebLog) LogEngineerRequired(ctx context.Context, details string) error {
	w.record(ctx, KindEngineerRequired, details)

	return nil
}

// LogFireAlarm records a fire alarm, unless the log was built to fail it.
func (w *WebLog) LogFireAlarm(ctx context.Context, details string) error {
	if w.failFireLog {
		return ErrTransportUnavailable
	}

	w.record(ctx, KindFireAlarm, details)

	return nil
}

// Entries returns a copy of the accepted entries in call order.
func (w *WebLog) Entries() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.entries)
}

// Count returns how many entries of kind were accepted.
func (w *WebLog) Count(kind Kind) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := 0

	for _, e := range w.entries {
		if e.Kind == kind {
			n++
		}
	}

	return n
}

func (w *WebLog) record(ctx context.Context, kind Kind, details string) {
	w.mu.Lock()
	w.entries = append(w.entries, Entry{
		Kind:    kind,
		Details: details,
		At:      time.Now(),
	})
	w.mu.Unlock()

	logger.InfoKV(logger.WithName(ctx, "web"), "Logged", "kind", string(kind), "details", details)
}
