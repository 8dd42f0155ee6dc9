package status

import (
	"errors"
	"strings"
)

const (
	// LightsLabel heads the light manager status line.
	LightsLabel = "Lights"
	// DoorsLabel heads the door manager status line.
	DoorsLabel = "Doors"
	// FireAlarmLabel heads the fire alarm manager status line.
	FireAlarmLabel = "FireAlarm"

	// TokenOK marks a healthy device. Any other token is a fault.
	TokenOK = "OK"
	// TokenFault is written for unhealthy devices.
	TokenFault = "FAULT"

	separator = ","
)

// ErrMalformedReport is returned for lines that are not comma terminated.
var ErrMalformedReport = errors.New("malformed status report")

// Report is a decoded manager status line.
type Report struct {
	// Label names the manager, e.g. "Lights".
	Label string
	// Devices holds one health flag per device, in reported order.
	Devices []bool
}

// ParseReport decodes a raw status line. The first token is the label and
// the line must end with a separator.
func ParseReport(raw string) (*Report, error) {
	tokens := strings.Split(raw, separator)

	last := len(tokens) - 1
	if last < 1 || tokens[last] != "" {
		return nil, ErrMalformedReport
	}

	devices := make([]bool, 0, last-1)
	for _, token := range tokens[1:last] {
		devices = append(devices, token == TokenOK)
	}

	return &Report{
		Label:   tokens[0],
		Devices: devices,
	}, nil
}

// Faulty reports whether any device is unhealthy.
func (r *Report) Faulty() bool {
	for _, healthy := range r.Devices {
		if !healthy {
			return true
		}
	}

	return false
}

// String encodes the report back into its wire form.
func (r *Report) String() string {
	var b strings.Builder

	b.WriteString(r.Label)
	b.WriteString(separator)

	for _, healthy := range r.Devices {
		if healthy {
			b.WriteString(TokenOK)
		} else {
			b.WriteString(TokenFault)
		}

		b.WriteString(separator)
	}

	return b.String()
}
