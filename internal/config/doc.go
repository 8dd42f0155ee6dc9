// Package config defines the YAML description of a simulated building and
// the scenario to run against it, with helpers to load, validate and save it.
package config
