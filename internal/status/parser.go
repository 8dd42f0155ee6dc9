package status

// Parser decides whether a raw status line reports a fault.
type Parser interface {
	Faulty(report, label string) bool
}

// CommaParser is the Parser for comma terminated status lines.
type CommaParser struct{}

// Faulty implements Parser.
func (CommaParser) Faulty(report, label string) bool {
	return ParseFaultiness(report, label)
}

// ParseFaultiness returns true when report contains a device token other
// than OK, or when the line is malformed: wrong label or missing the
// trailing separator. Malformed data needs an engineer as much as a broken
// device does.
func ParseFaultiness(report, label string) bool {
	r, err := ParseReport(report)
	if err != nil || r.Label != label {
		return true
	}

	return r.Faulty()
}
