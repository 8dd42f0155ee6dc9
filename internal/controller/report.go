package controller

import (
	"context"
	"strings"

	"github.com/kazukazukun/building-controller/internal/logger"
	"github.com/kazukazukun/building-controller/internal/status"
)

// statusSource is the status half shared by every manager.
type statusSource interface {
	GetStatus(ctx context.Context) string
}

// labeledSource pairs a manager with the label its status line must carry.
type labeledSource struct {
	label  string
	source statusSource
}

// GetStatusReport concatenates the lights, doors and fire alarm status lines
// in that order, using an empty line for a missing manager. When any present
// manager reports a fault the engineer log is told which ones.
func (c *Controller) GetStatusReport(ctx context.Context) string {
	var (
		report strings.Builder
		faults status.Aggregator
	)

	sources := make([]labeledSource, 0, 3)

	if c.lights != nil {
		sources = append(sources, labeledSource{status.LightsLabel, c.lights})
	}

	if c.doors != nil {
		sources = append(sources, labeledSource{status.DoorsLabel, c.doors})
	}

	if c.alarm != nil {
		sources = append(sources, labeledSource{status.FireAlarmLabel, c.alarm})
	}

	for _, s := range sources {
		line := s.source.GetStatus(ctx)
		report.WriteString(line)

		if c.parser.Faulty(line, s.label) {
			faults.Add(s.label)
		}
	}

	if !faults.Empty() {
		c.requestEngineer(ctx, faults.Log())
	}

	return report.String()
}

// requestEngineer reports faulty managers to the web log if there is one.
// Reporting never fails the status request.
func (c *Controller) requestEngineer(ctx context.Context, details string) {
	if c.web == nil {
		return
	}

	if err := c.web.LogEngineerRequired(ctx, details); err != nil {
		logger.WarnKV(ctx, "Failed to log engineer request", "details", details, "error", err)
	}
}
