package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// TestValidate_Defaults fills device counts and the default scenario.
func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	cfg := new(Config)
	require.NoError(t, Validate(cfg))

	require.Equal(t, DefaultDoorCount, cfg.Devices.Doors.Count)
	require.Equal(t, DefaultLightCount, cfg.Devices.Lights.Count)
	require.Equal(t, DefaultSounderCount, cfg.Devices.FireAlarm.Count)
	require.Equal(t, []Step{{Action: ActionReport}}, cfg.Steps)
	require.Nil(t, cfg.StartState)
}

// TestValidate_CollectsErrors reports every problem in one error.
func TestValidate_CollectsErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		LogLevel: "chatty",
		Devices: Devices{
			Doors:  Bank{Count: -1},
			Lights: Bank{Count: 2, Faulty: []int{0, 2}},
		},
		Steps: []Step{
			{Action: ActionTransition},
			{Action: "dance"},
			{Action: ActionReport},
		},
	}

	err := Validate(cfg)
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 5)
	require.ErrorIs(t, err, ErrInvalidLogLevel)
	require.ErrorIs(t, err, ErrInvalidBank)
	require.ErrorIs(t, err, ErrInvalidStep)

	require.Error(t, Validate(nil))
}

// TestSaveLoadRoundtrip ensures the building description is persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "building.yaml")
	start := "Closed"

	cfg := &Config{
		BuildingID: "UCLan",
		StartState: &start,
		Devices: Devices{
			Doors: Bank{Count: 3, Faulty: []int{1}},
			FireAlarm: Bank{
				Disabled: true,
			},
		},
		Web: Service{FailFireLog: true},
		Steps: []Step{
			{Action: ActionTransition, State: "fire alarm"},
			{Action: ActionReport},
		},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoad_Errors covers missing files and bad YAML.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("steps: {"), 0o600))

	_, err = Load(bad)
	require.Error(t, err)

	require.Error(t, Save(filepath.Join(dir, "nil.yaml"), nil))
}

// TestLoad_YAML decodes the documented file layout.
func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "building.yaml")
	contents := `
building_id: Main
start_state: open
log_level: debug
devices:
  doors:
    count: 2
    faulty: [1]
  lights:
    disabled: true
web:
  fail_fire_log: true
email:
  disabled: true
steps:
  - action: transition
    state: fire alarm
  - action: report
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Main", cfg.BuildingID)
	require.NotNil(t, cfg.StartState)
	require.Equal(t, "open", *cfg.StartState)
	require.Equal(t, []int{1}, cfg.Devices.Doors.Faulty)
	require.True(t, cfg.Devices.Lights.Disabled)
	require.Equal(t, DefaultLightCount, cfg.Devices.Lights.Count)
	require.True(t, cfg.Web.FailFireLog)
	require.True(t, cfg.Email.Disabled)
	require.Len(t, cfg.Steps, 2)
}
