// Package notify implements the controller's outward-facing services on top
// of the structured logger: WebLog stands in for the web reporting service
// and Outbox for the email service. Both keep what they were sent so
// callers can summarise a run.
package notify
