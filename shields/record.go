package shields

import (
	"encoding/json"
	"fmt"
)

// InsertionRecord is the persisted form of one insertion session: which shield
// was used, which session and experiment day it belongs to, where each probe
// went, and any per-probe notes. A nil hole means the probe was not inserted.
type InsertionRecord struct {
	ShieldName    string             // Shield name, e.g. "2002"
	DrawingID     string             // Engineering drawing id of the shield
	Session       string             // Session identifier, e.g. "366122_20240101"
	ExperimentDay int                // 1-indexed day of experiment for the subject
	Probes        map[string]*string // probe -> hole label, nil when unassigned
	Notes         map[string]string  // probe -> free-text note, omitted when empty
}

// recordWire is the flat JSON shape written to disk.
type recordWire struct {
	Shield        shieldWire         `json:"shield"`
	Session       string             `json:"session"`
	ExperimentDay int                `json:"experiment_day"`
	Probes        map[string]*string `json:"probes"`
	Notes         map[string]string  `json:"notes,omitempty"`
}

type shieldWire struct {
	Name      string `json:"name"`
	DrawingID string `json:"drawing_id"`
}

// NewInsertionRecord creates a record for one session with every probe unassigned.
func NewInsertionRecord(shield *Shield, session string, experimentDay int) *InsertionRecord {
	probes := make(map[string]*string, len(shield.Probes))
	for _, p := range shield.Probes {
		probes[p] = nil
	}
	return &InsertionRecord{
		ShieldName:    shield.Name,
		DrawingID:     shield.DrawingID,
		Session:       session,
		ExperimentDay: experimentDay,
		Probes:        probes,
		Notes:         make(map[string]string),
	}
}

// ToJSON serializes the record to its flat on-disk JSON form.
func (r *InsertionRecord) ToJSON(indent bool) (string, error) {
	wire := recordWire{
		Shield:        shieldWire{Name: r.ShieldName, DrawingID: r.DrawingID},
		Session:       r.Session,
		ExperimentDay: r.ExperimentDay,
		Probes:        r.Probes,
		Notes:         r.Notes,
	}
	if len(wire.Notes) == 0 {
		wire.Notes = nil
	}

	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(wire, "", "  ")
	} else {
		data, err = json.Marshal(wire)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal insertion record: %w", err)
	}
	return string(data), nil
}

// RecordFromJSON parses and validates a persisted record against the shield it
// claims to describe. Validation covers the probe set, every assigned label,
// and the one-probe-per-hole rule; any violation fails with ErrMalformedRecord
// naming the offending field, and no record is returned.
func RecordFromJSON(data []byte, shield *Shield) (*InsertionRecord, error) {
	var wire recordWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	if wire.Shield.Name != shield.Name {
		return nil, fmt.Errorf("%w: shield.name is %q, expected %q",
			ErrMalformedRecord, wire.Shield.Name, shield.Name)
	}
	if wire.ExperimentDay < 1 {
		return nil, fmt.Errorf("%w: experiment_day must be 1 or greater, got %d",
			ErrMalformedRecord, wire.ExperimentDay)
	}

	if err := validateProbeMap(wire.Probes, shield); err != nil {
		return nil, err
	}
	for probe := range wire.Notes {
		if !shield.HasProbe(probe) {
			return nil, fmt.Errorf("%w: notes.%s does not name a probe on shield %s",
				ErrMalformedRecord, probe, shield.Name)
		}
	}

	rec := &InsertionRecord{
		ShieldName:    shield.Name,
		DrawingID:     shield.DrawingID,
		Session:       wire.Session,
		ExperimentDay: wire.ExperimentDay,
		Probes:        wire.Probes,
		Notes:         wire.Notes,
	}
	if rec.Notes == nil {
		rec.Notes = make(map[string]string)
	}
	return rec, nil
}

// validateProbeMap checks that a loaded probe -> hole map names exactly the
// shield's probe set, only valid labels, and no hole twice.
func validateProbeMap(probes map[string]*string, shield *Shield) error {
	if len(probes) != len(shield.Probes) {
		return fmt.Errorf("%w: probes has %d entries, shield %s expects %d (%s)",
			ErrMalformedRecord, len(probes), shield.Name, len(shield.Probes), shield.ProbeList())
	}

	holders := make(map[string]string)
	for _, probe := range shield.Probes {
		hole, ok := probes[probe]
		if !ok {
			return fmt.Errorf("%w: probes is missing probe %s", ErrMalformedRecord, probe)
		}
		if hole == nil {
			continue
		}
		if !shield.Space.Contains(*hole) {
			return fmt.Errorf("%w: probes.%s names unknown hole %q", ErrMalformedRecord, probe, *hole)
		}
		if holder, taken := holders[*hole]; taken {
			return fmt.Errorf("%w: probes.%s and probes.%s both claim hole %s",
				ErrMalformedRecord, holder, probe, *hole)
		}
		holders[*hole] = probe
	}
	return nil
}

// Assignments builds a validated in-memory store from the record.
// A record that came through RecordFromJSON always succeeds here; records
// assembled by hand go through the same validation.
func (r *InsertionRecord) Assignments(shield *Shield) (*Assignments, error) {
	if err := validateProbeMap(r.Probes, shield); err != nil {
		return nil, err
	}
	a := NewAssignments(shield)
	for _, probe := range a.Probes() {
		if hole := r.Probes[probe]; hole != nil {
			if err := a.Assign(probe, *hole); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// ApplySnapshot folds the current state of a store back into the record.
func (r *InsertionRecord) ApplySnapshot(a *Assignments) {
	for probe, hole := range a.Snapshot() {
		if hole == "" {
			r.Probes[probe] = nil
		} else {
			h := hole
			r.Probes[probe] = &h
		}
	}
}
