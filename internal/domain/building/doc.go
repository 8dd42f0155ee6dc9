// Package building contains the core domain types for a building controller.
//
// It defines State (the operational mode of a building), the static tables
// of valid, normal and abnormal states, the transition denylist, and
// Snapshot (identity plus current and previous state) with a Clone helper.
package building
