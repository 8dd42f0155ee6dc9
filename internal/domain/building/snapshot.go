package building

// Snapshot is the live view of a controller.
type Snapshot struct {
	// ID is the lowercase building identity.
	ID string
	// Current is the state the building is in.
	Current State
	// Previous is the state held before the last committed transition.
	// It is only meaningful while Current is abnormal, where it names the
	// normal state the emergency interrupted.
	Previous State
}

// Clone returns a copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	cloned := *s

	return &cloned
}

// InEmergency reports whether the building is in an abnormal state.
func (s *Snapshot) InEmergency() bool {
	return IsAbnormalState(s.Current)
}
