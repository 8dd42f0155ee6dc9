package simulator

import (
	"github.com/kazukazukun/building-controller/internal/status"
)

// bank is a fixed set of devices with a health flag each.
type bank struct {
	label  string
	faulty []bool
}

func newBank(label string, count int, faulty []int) bank {
	b := bank{
		label:  label,
		faulty: make([]bool, max(count, 0)),
	}

	for _, id := range faulty {
		if b.valid(id) {
			b.faulty[id] = true
		}
	}

	return b
}

// valid reports whether id names a device of the bank.
func (b *bank) valid(id int) bool {
	return id >= 0 && id < len(b.faulty)
}

// usable reports whether device id exists and accepts commands.
func (b *bank) usable(id int) bool {
	return b.valid(id) && !b.faulty[id]
}

// report renders the bank as a manager status line.
func (b *bank) report() string {
	devices := make([]bool, len(b.faulty))
	for i, faulty := range b.faulty {
		devices[i] = !faulty
	}

	r := status.Report{
		Label:   b.label,
		Devices: devices,
	}

	return r.String()
}
