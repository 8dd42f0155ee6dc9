// Package scenario builds a simulated building from configuration and runs
// scenario steps against its controller, printing one line per step.
package scenario
