package shields

import "strings"

// DefaultProbes is the standard probe set for a six-probe insertion rig.
const DefaultProbes = "ABCDEF"

// Shield describes one physical implant: its name, the engineering drawing it
// was manufactured from, the labelled holes on it, and the probes expected to
// be inserted through it. Probe letters and hole group letters are separate
// namespaces that happen to overlap.
type Shield struct {
	Name      string      // Shield name, e.g. "2002"
	DrawingID string      // Engineering drawing id, e.g. "0283-200-002"
	Space     *LabelSpace // Valid hole labels for this shield
	Probes    []string    // Expected probes in fixed order, usually A-F
	SVG       string      // Labelled drawing with one tspan placeholder per hole
}

// ProbeLetters splits a probe-set string like "ABCDEF" into the fixed probe order.
func ProbeLetters(probes string) []string {
	letters := make([]string, 0, len(probes))
	for _, r := range probes {
		letters = append(letters, string(r))
	}
	return letters
}

// HasProbe reports whether probe belongs to this shield's probe set.
func (s *Shield) HasProbe(probe string) bool {
	for _, p := range s.Probes {
		if p == probe {
			return true
		}
	}
	return false
}

// ProbeList returns the probe set as a single display string, e.g. "A-F" style "A, B, C".
func (s *Shield) ProbeList() string {
	return strings.Join(s.Probes, ", ")
}
