package shields

import (
	"testing"
)

// TestCompareSnapshots tests the per-probe change classification
func TestCompareSnapshots(t *testing.T) {
	probes := ProbeLetters(DefaultProbes)
	before := map[string]string{"A": "A1", "B": "B2", "C": "", "D": "D3"}
	after := map[string]string{"A": "A1", "B": "C4", "C": "F1", "D": ""}

	changes := CompareSnapshots(probes, before, after)
	if len(changes) != len(probes) {
		t.Fatalf("Got %d changes, expected one per probe (%d)", len(changes), len(probes))
	}

	expected := map[string]string{
		"A": "none",
		"B": "move",
		"C": "assign",
		"D": "clear",
		"E": "none", // Missing from both snapshots
		"F": "none",
	}
	for _, c := range changes {
		if c.Action != expected[c.Probe] {
			t.Errorf("Probe %s action = %q, expected %q", c.Probe, c.Action, expected[c.Probe])
		}
	}

	changed := Changed(changes)
	if len(changed) != 3 {
		t.Errorf("Changed() kept %d entries, expected 3", len(changed))
	}
}

// TestCompareSnapshotsOrder tests that results follow the fixed probe order
func TestCompareSnapshotsOrder(t *testing.T) {
	probes := ProbeLetters(DefaultProbes)
	changes := CompareSnapshots(probes, nil, map[string]string{"F": "F1", "A": "A1"})

	for i, c := range changes {
		if c.Probe != probes[i] {
			t.Errorf("Change %d is for probe %s, expected %s", i, c.Probe, probes[i])
		}
	}
}

// TestDescribe tests the human-readable change lines
func TestDescribe(t *testing.T) {
	cases := []struct {
		change AssignmentChange
		want   string
	}{
		{AssignmentChange{Probe: "A", Action: "assign", After: "A1"}, "probe A -> A1"},
		{AssignmentChange{Probe: "B", Action: "move", Before: "B1", After: "B2"}, "probe B moved B1 -> B2"},
		{AssignmentChange{Probe: "C", Action: "clear", Before: "C3"}, "probe C removed from C3"},
		{AssignmentChange{Probe: "D", Action: "none"}, "probe D unchanged"},
	}
	for _, tc := range cases {
		if got := tc.change.Describe(); got != tc.want {
			t.Errorf("Describe() = %q, expected %q", got, tc.want)
		}
	}
}
