package shields

import (
	"fmt"
	"strings"
)

// Assignments tracks which probe sits in which hole of one shield.
// probeToHole is the source of truth; holeToProbe is maintained as its exact
// inverse so hole lookups stay O(1). An unassigned probe maps to "".
//
// Instances are single-owner: callers driving one store from several
// goroutines must serialize access themselves.
type Assignments struct {
	space       *LabelSpace
	probes      []string          // Fixed probe order, set at construction
	probeToHole map[string]string // probe -> hole label, "" when unassigned
	holeToProbe map[string]string // hole label -> probe, inverse of the above
}

// NewAssignments creates a store for the given shield with every probe unassigned.
func NewAssignments(shield *Shield) *Assignments {
	probes := shield.Probes
	if len(probes) == 0 {
		probes = ProbeLetters(DefaultProbes)
	}
	a := &Assignments{
		space:       shield.Space,
		probes:      make([]string, len(probes)),
		probeToHole: make(map[string]string, len(probes)),
		holeToProbe: make(map[string]string),
	}
	copy(a.probes, probes)
	for _, p := range a.probes {
		a.probeToHole[p] = ""
	}
	return a
}

// Probes returns the probe identifiers in their fixed order.
func (a *Assignments) Probes() []string {
	probes := make([]string, len(a.probes))
	copy(probes, a.probes)
	return probes
}

// Space returns the label space the store is bound to.
func (a *Assignments) Space() *LabelSpace {
	return a.space
}

// Assign puts probe into the hole named by label. An empty label (or the
// sentinel "none", any case) unassigns the probe. Assigning a hole that is
// already held by another probe vacates that probe first; at most one probe
// can be displaced because a hole only ever holds one probe.
func (a *Assignments) Assign(probe, label string) error {
	current, ok := a.probeToHole[probe]
	if !ok {
		return fmt.Errorf("%w: %q must be one of %s", ErrInvalidProbe, probe, strings.Join(a.probes, ", "))
	}

	if strings.EqualFold(label, "none") {
		label = ""
	}
	if label != "" && !a.space.Contains(label) {
		return fmt.Errorf("%w: %q (valid labels: %s)", ErrInvalidLabel, label, strings.Join(a.space.Labels(), ", "))
	}

	if current == label {
		// Already assigned to exactly this hole.
		return nil
	}

	if current != "" {
		delete(a.holeToProbe, current)
	}

	if label != "" {
		// Vacate whichever probe held the hole before. Scan in fixed probe
		// order so reconstruction from an externally edited record is
		// deterministic even if it named the same hole twice.
		for _, other := range a.probes {
			if other != probe && a.probeToHole[other] == label {
				a.probeToHole[other] = ""
			}
		}
		a.holeToProbe[label] = probe
	}
	a.probeToHole[probe] = label
	return nil
}

// AssignIndex assigns by canonical hole index instead of label: 0 -> A1, etc.
func (a *Assignments) AssignIndex(probe string, index int) error {
	label, err := a.space.LabelAt(index)
	if err != nil {
		return err
	}
	return a.Assign(probe, label)
}

// Hole returns the hole label currently assigned to probe, or "" if unassigned.
func (a *Assignments) Hole(probe string) string {
	return a.probeToHole[probe]
}

// Probe returns the probe currently occupying the hole, or "" if the hole is free.
func (a *Assignments) Probe(label string) string {
	return a.holeToProbe[label]
}

// Reset unassigns every probe.
func (a *Assignments) Reset() {
	for _, p := range a.probes {
		a.probeToHole[p] = ""
	}
	a.holeToProbe = make(map[string]string)
}

// Snapshot returns a read-only copy of probe -> hole, "" meaning unassigned.
func (a *Assignments) Snapshot() map[string]string {
	snapshot := make(map[string]string, len(a.probes))
	for _, p := range a.probes {
		snapshot[p] = a.probeToHole[p]
	}
	return snapshot
}
