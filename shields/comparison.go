package shields

import "fmt"

// AssignmentChange describes how one probe's hole differs between two snapshots.
type AssignmentChange struct {
	Probe  string // Probe identifier
	Action string // What happened: "assign", "move", "clear", "none"
	Before string // Hole before the change, "" when unassigned
	After  string // Hole after the change, "" when unassigned
}

// CompareSnapshots diffs two probe -> hole snapshots (as returned by
// Assignments.Snapshot) in the given fixed probe order. Probes missing from
// either snapshot are treated as unassigned on that side.
func CompareSnapshots(probes []string, before, after map[string]string) []AssignmentChange {
	changes := make([]AssignmentChange, 0, len(probes))
	for _, probe := range probes {
		b := before[probe]
		a := after[probe]
		change := AssignmentChange{Probe: probe, Before: b, After: a}
		switch {
		case b == a:
			change.Action = "none"
		case b == "":
			change.Action = "assign"
		case a == "":
			change.Action = "clear"
		default:
			change.Action = "move"
		}
		changes = append(changes, change)
	}
	return changes
}

// Changed filters a comparison down to the probes that actually moved.
func Changed(changes []AssignmentChange) []AssignmentChange {
	var out []AssignmentChange
	for _, c := range changes {
		if c.Action != "none" {
			out = append(out, c)
		}
	}
	return out
}

// Describe renders one change as a short human-readable line.
func (c AssignmentChange) Describe() string {
	switch c.Action {
	case "assign":
		return fmt.Sprintf("probe %s -> %s", c.Probe, c.After)
	case "move":
		return fmt.Sprintf("probe %s moved %s -> %s", c.Probe, c.Before, c.After)
	case "clear":
		return fmt.Sprintf("probe %s removed from %s", c.Probe, c.Before)
	default:
		return fmt.Sprintf("probe %s unchanged", c.Probe)
	}
}
