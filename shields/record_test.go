package shields

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// TestRecordRoundTrip tests that a record built through valid assigns survives
// serialization and reloads into an equivalent store
func TestRecordRoundTrip(t *testing.T) {
	shield := testShield()
	rec := NewInsertionRecord(shield, "366122_20240101", 1)

	store, err := rec.Assignments(shield)
	if err != nil {
		t.Fatalf("Assignments failed: %v", err)
	}
	for probe, hole := range map[string]string{"A": "A1", "B": "C3", "E": "E4"} {
		if err := store.Assign(probe, hole); err != nil {
			t.Fatalf("Assign(%s, %s) failed: %v", probe, hole, err)
		}
	}
	rec.ApplySnapshot(store)
	rec.Notes["A"] = "slight resistance at surface"

	data, err := rec.ToJSON(true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	loaded, err := RecordFromJSON([]byte(data), shield)
	if err != nil {
		t.Fatalf("RecordFromJSON failed: %v", err)
	}
	reloaded, err := loaded.Assignments(shield)
	if err != nil {
		t.Fatalf("Assignments from loaded record failed: %v", err)
	}

	for probe, hole := range store.Snapshot() {
		if got := reloaded.Hole(probe); got != hole {
			t.Errorf("Hole(%s) = %q after round trip, expected %q", probe, got, hole)
		}
	}
	if loaded.Session != "366122_20240101" || loaded.ExperimentDay != 1 {
		t.Errorf("Session metadata lost: %q day %d", loaded.Session, loaded.ExperimentDay)
	}
	if loaded.Notes["A"] != "slight resistance at surface" {
		t.Errorf("Notes lost: %q", loaded.Notes["A"])
	}
}

// TestRecordJSONShape tests the flat on-disk shape: null holes, nested shield identity
func TestRecordJSONShape(t *testing.T) {
	shield := testShield()
	rec := NewInsertionRecord(shield, "366122_20240101", 2)

	data, err := rec.ToJSON(false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal([]byte(data), &wire); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	shieldObj, ok := wire["shield"].(map[string]any)
	if !ok || shieldObj["name"] != "test" || shieldObj["drawing_id"] != "0000-000-000" {
		t.Errorf("shield identity wrong: %v", wire["shield"])
	}
	probes, ok := wire["probes"].(map[string]any)
	if !ok || len(probes) != 6 {
		t.Fatalf("probes wrong: %v", wire["probes"])
	}
	for probe, hole := range probes {
		if hole != nil {
			t.Errorf("probes.%s = %v for a fresh record, expected null", probe, hole)
		}
	}
}

func validRecordJSON() string {
	return `{
		"shield": {"name": "test", "drawing_id": "0000-000-000"},
		"session": "366122_20240101",
		"experiment_day": 1,
		"probes": {"A": "A1", "B": null, "C": "B2", "D": null, "E": null, "F": null}
	}`
}

// TestRecordValidation tests that malformed records fail with ErrMalformedRecord
// naming the offending field, and produce no record at all
func TestRecordValidation(t *testing.T) {
	shield := testShield()

	cases := []struct {
		name    string
		mutate  func(string) string
		errText string
	}{
		{
			name:    "wrong shield name",
			mutate:  func(s string) string { return strings.Replace(s, `"name": "test"`, `"name": "2099"`, 1) },
			errText: "shield.name",
		},
		{
			name:    "unknown hole",
			mutate:  func(s string) string { return strings.Replace(s, `"A": "A1"`, `"A": "Q7"`, 1) },
			errText: "probes.A",
		},
		{
			name:    "duplicate hole",
			mutate:  func(s string) string { return strings.Replace(s, `"C": "B2"`, `"C": "A1"`, 1) },
			errText: "both claim hole A1",
		},
		{
			name:    "missing probe",
			mutate:  func(s string) string { return strings.Replace(s, `"F": null`, `"G": null`, 1) },
			errText: "probe",
		},
		{
			name:    "bad experiment day",
			mutate:  func(s string) string { return strings.Replace(s, `"experiment_day": 1`, `"experiment_day": 0`, 1) },
			errText: "experiment_day",
		},
		{
			name:    "not json",
			mutate:  func(s string) string { return "{" },
			errText: "",
		},
	}

	for _, tc := range cases {
		rec, err := RecordFromJSON([]byte(tc.mutate(validRecordJSON())), shield)
		if !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%s: error = %v, expected ErrMalformedRecord", tc.name, err)
			continue
		}
		if rec != nil {
			t.Errorf("%s: got a record despite validation failure", tc.name)
		}
		if tc.errText != "" && !strings.Contains(err.Error(), tc.errText) {
			t.Errorf("%s: error %q does not name the offending field %q", tc.name, err, tc.errText)
		}
	}
}

// TestRecordNotesValidation tests that notes for unknown probes are rejected
func TestRecordNotesValidation(t *testing.T) {
	shield := testShield()
	data := strings.Replace(validRecordJSON(), `"F": null}`,
		`"F": null}, "notes": {"Q": "not a probe"}`, 1)

	if _, err := RecordFromJSON([]byte(data), shield); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("error = %v, expected ErrMalformedRecord for notes.Q", err)
	}
}

// TestAssignmentsFromHandBuiltRecord tests that a hand-assembled record goes
// through the same validation as a loaded one
func TestAssignmentsFromHandBuiltRecord(t *testing.T) {
	shield := testShield()
	rec := NewInsertionRecord(shield, "s", 1)
	bad := "Q7"
	rec.Probes["A"] = &bad

	if _, err := rec.Assignments(shield); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("error = %v, expected ErrMalformedRecord for invented hole", err)
	}
}
