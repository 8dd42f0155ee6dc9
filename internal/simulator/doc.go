// Package simulator provides in-memory door, light and fire alarm managers.
//
// Each manager owns a bank of devices identified by their index, some of
// which may be marked faulty. Faulty devices ignore commands and report
// FAULT in the manager status line, so a simulated building can exercise
// every controller path without hardware.
package simulator
