package status

import (
	"slices"
	"strings"
)

// Aggregator collects the labels of managers that reported faults.
// Labels are kept in the order they were added; callers add them in the
// fixed Lights, Doors, FireAlarm order.
type Aggregator struct {
	labels []string
}

// Add records a faulty manager label.
func (a *Aggregator) Add(label string) {
	a.labels = append(a.labels, label)
}

// Empty reports whether no fault has been recorded.
func (a *Aggregator) Empty() bool {
	return len(a.labels) == 0
}

// Labels returns a copy of the recorded labels.
func (a *Aggregator) Labels() []string {
	return slices.Clone(a.labels)
}

// Log renders the recorded labels as one engineer log line.
func (a *Aggregator) Log() string {
	return BuildFaultLog(a.labels)
}

// BuildFaultLog joins faulty labels for the engineer log. A single label is
// returned unchanged; several labels are each followed by a separator,
// including the last one.
func BuildFaultLog(labels []string) string {
	if len(labels) == 1 {
		return labels[0]
	}

	var b strings.Builder
	for _, label := range labels {
		b.WriteString(label)
		b.WriteString(separator)
	}

	return b.String()
}
