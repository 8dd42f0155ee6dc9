package simulator

import (
	"context"
	"sync"

	"github.com/kazukazukun/building-controller/internal/logger"
	"github.com/kazukazukun/building-controller/internal/status"
)

// Doors simulates the door manager. Doors start locked.
type Doors struct {
	bank

	// open holds the position of each door.
	open []bool
	// mu protects open.
	mu sync.Mutex
}

// NewDoors creates count doors, marking the given indexes faulty.
func NewDoors(count int, faulty []int) *Doors {
	b := newBank(status.DoorsLabel, count, faulty)

	return &Doors{
		bank: b,
		open: make([]bool, len(b.faulty)),
	}
}

// OpenDoor opens one door. Faulty or unknown doors fail.
func (d *Doors) OpenDoor(ctx context.Context, doorID int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.set(ctx, doorID, true)
}

// LockDoor locks one door. Faulty or unknown doors fail.
func (d *Doors) LockDoor(ctx context.Context, doorID int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.set(ctx, doorID, false)
}

// OpenAllDoors opens every working door and reports whether all opened.
func (d *Doors) OpenAllDoors(ctx context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.setAll(ctx, true)
}

// LockAllDoors locks every working door and reports whether all locked.
func (d *Doors) LockAllDoors(ctx context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.setAll(ctx, false)
}

// GetStatus returns the door status line.
func (d *Doors) GetStatus(context.Context) string {
	return d.report()
}

// OpenCount returns how many doors are open.
func (d *Doors) OpenCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return count(d.open)
}

func (d *Doors) set(ctx context.Context, doorID int, open bool) bool {
	if !d.usable(doorID) {
		logger.DebugKV(ctx, "Door did not respond", "door_id", doorID, "open", open)

		return false
	}

	d.open[doorID] = open

	return true
}

func (d *Doors) setAll(ctx context.Context, open bool) bool {
	ok := true

	for id := range d.open {
		ok = d.set(ctx, id, open) && ok
	}

	return ok
}

// count returns the number of true flags.
func count(flags []bool) int {
	n := 0

	for _, f := range flags {
		if f {
			n++
		}
	}

	return n
}
