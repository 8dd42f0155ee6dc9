package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/kazukazukun/building-controller/internal/logger"
)

// Config describes a simulated building and the steps to run against it.
type Config struct {
	// BuildingID identifies the building; it is lowercased by the controller.
	BuildingID string `yaml:"building_id"`
	// StartState overrides the default "out of hours" start state when set.
	StartState *string `yaml:"start_state,omitempty"`
	// LogLevel is the default log level; the command line flag wins.
	LogLevel string `yaml:"log_level,omitempty"`
	// Devices describes the simulated managers.
	Devices Devices `yaml:"devices"`
	// Web configures the web log service.
	Web Service `yaml:"web"`
	// Email configures the email service.
	Email Service `yaml:"email"`
	// Steps is the scenario executed by the run command.
	Steps []Step `yaml:"steps,omitempty"`
}

// Devices groups the three simulated managers.
type Devices struct {
	Doors     Bank `yaml:"doors"`
	Lights    Bank `yaml:"lights"`
	FireAlarm Bank `yaml:"fire_alarm"`
}

// Bank describes one simulated manager.
type Bank struct {
	// Disabled leaves the manager out of the controller.
	Disabled bool `yaml:"disabled,omitempty"`
	// Count is the number of devices. Zero selects the default.
	Count int `yaml:"count,omitempty"`
	// Faulty lists the indexes, starting at 0, of devices that are broken.
	Faulty []int `yaml:"faulty,omitempty"`
}

// Service describes an outward-facing service.
type Service struct {
	// Disabled leaves the service out of the controller.
	Disabled bool `yaml:"disabled,omitempty"`
	// FailFireLog makes the web log refuse fire alarm entries.
	FailFireLog bool `yaml:"fail_fire_log,omitempty"`
}

// Step is one scenario action.
type Step struct {
	// Action is ActionTransition or ActionReport.
	Action string `yaml:"action"`
	// State is the target of a transition. It is passed verbatim so that
	// scenarios can exercise rejected states.
	State string `yaml:"state,omitempty"`
}

const (
	// ActionTransition asks the controller to change state.
	ActionTransition = "transition"
	// ActionReport asks the controller for a status report.
	ActionReport = "report"

	// DefaultConfigFilename is the default filename for the building description.
	DefaultConfigFilename = "building-controller.yaml"

	// DefaultDoorCount is used when no door count is given.
	DefaultDoorCount = 4
	// DefaultLightCount is used when no light count is given.
	DefaultLightCount = 8
	// DefaultSounderCount is used when no fire alarm sounder count is given.
	DefaultSounderCount = 2

	// DefaultFilePermissions is the file permission for saved configs.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// ErrInvalidStep is returned for scenario steps that cannot run.
	ErrInvalidStep = errors.New("invalid step")
	// ErrInvalidBank is returned for device banks that cannot be built.
	ErrInvalidBank = errors.New("invalid device bank")
	// ErrInvalidLogLevel is returned for unknown log levels.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save validates cfg and writes it to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate fills defaults and reports every problem found in cfg at once.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	var err error

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel))
	}

	err = multierr.Append(err, validateBank("doors", &cfg.Devices.Doors, DefaultDoorCount))
	err = multierr.Append(err, validateBank("lights", &cfg.Devices.Lights, DefaultLightCount))
	err = multierr.Append(err, validateBank("fire_alarm", &cfg.Devices.FireAlarm, DefaultSounderCount))

	for i, step := range cfg.Steps {
		switch step.Action {
		case ActionTransition:
			if step.State == "" {
				err = multierr.Append(err, fmt.Errorf("%w: step %d: transition without state", ErrInvalidStep, i))
			}
		case ActionReport:
		default:
			err = multierr.Append(err, fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidStep, i, step.Action))
		}
	}

	if len(cfg.Steps) == 0 {
		cfg.Steps = []Step{{Action: ActionReport}}
	}

	return err
}

func validateBank(name string, bank *Bank, defaultCount int) error {
	if bank.Count < 0 {
		return fmt.Errorf("%w: %s: negative count %d", ErrInvalidBank, name, bank.Count)
	}

	if bank.Count == 0 {
		bank.Count = defaultCount
	}

	var err error

	for _, id := range bank.Faulty {
		if id < 0 || id >= bank.Count {
			err = multierr.Append(err,
				fmt.Errorf("%w: %s: faulty device %d out of range [0, %d)", ErrInvalidBank, name, id, bank.Count))
		}
	}

	return err
}
