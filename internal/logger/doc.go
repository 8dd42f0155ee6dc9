// Package logger wraps zap for the controller and its tooling:
//   - a global sugared logger writing console lines to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and runtime level changes,
//   - leveled helpers (InfoKV, WarnKV, ...) that read the logger from a context.
//
// Code that logs takes a context and extracts the logger from it, so names
// and fields attached by callers follow the call chain.
package logger
