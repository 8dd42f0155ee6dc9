package status

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseReport decodes well formed lines into labels and health flags.
func TestParseReport(t *testing.T) {
	t.Parallel()

	r, err := ParseReport("Doors,OK,FAULT,OK,")
	require.NoError(t, err)
	require.Equal(t, DoorsLabel, r.Label)
	require.Equal(t, []bool{true, false, true}, r.Devices)
	require.True(t, r.Faulty())

	r, err = ParseReport("Lights,")
	require.NoError(t, err)
	require.Empty(t, r.Devices)
	require.False(t, r.Faulty())

	// Lowercase tokens are not OK.
	r, err = ParseReport("Lights,ok,")
	require.NoError(t, err)
	require.True(t, r.Faulty())
}

// TestParseReport_Malformed rejects lines without the trailing separator.
func TestParseReport_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "Lights", "Lights,OK", "Lights,OK,OK", "Doors,FAULT"} {
		_, err := ParseReport(raw)
		require.ErrorIs(t, err, ErrMalformedReport, raw)
	}
}

// TestReportString encodes reports in the manager wire format.
func TestReportString(t *testing.T) {
	t.Parallel()

	r := &Report{
		Label:   FireAlarmLabel,
		Devices: []bool{true, false},
	}
	require.Equal(t, "FireAlarm,OK,FAULT,", r.String())

	decoded, err := ParseReport(r.String())
	require.NoError(t, err)
	require.Equal(t, r, decoded)

	require.Equal(t, "Lights,", (&Report{Label: LightsLabel, Devices: []bool{}}).String())
}

// TestParseFaultiness covers clean, faulty and malformed lines.
func TestParseFaultiness(t *testing.T) {
	t.Parallel()

	fifty := strings.Repeat("OK,", 50)

	cases := []struct {
		name   string
		report string
		label  string
		faulty bool
	}{
		{"no devices", "Lights,", LightsLabel, false},
		{"one ok", "Lights,OK,", LightsLabel, false},
		{"fifty ok", "Doors," + fifty, DoorsLabel, false},
		{"one fault", "Doors,FAULT,", DoorsLabel, true},
		{"fault in the middle", "FireAlarm,OK,FAULT,OK,", FireAlarmLabel, true},
		{"fault at the end", "Doors," + fifty + "FAULT,", DoorsLabel, true},
		{"unknown token", "Lights,OK,BROKEN,", LightsLabel, true},
		{"empty token", "Lights,OK,,", LightsLabel, true},
		{"wrong label", "Doors,OK,", LightsLabel, true},
		{"label case", "lights,OK,", LightsLabel, true},
		{"missing trailing comma", "Lights,OK", LightsLabel, true},
		{"empty", "", LightsLabel, true},
		{"label only", "Lights", LightsLabel, true},
		{"garbage", "@, !, #, $", LightsLabel, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.faulty, ParseFaultiness(tc.report, tc.label))
			require.Equal(t, tc.faulty, CommaParser{}.Faulty(tc.report, tc.label))
		})
	}
}
