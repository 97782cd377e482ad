package shields

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// RecordPath returns the conventional record path for a given day:
// <dir>/20240101_insertion_record.json.
func RecordPath(dir string, day time.Time) string {
	return filepath.Join(dir, day.Format("20060102")+"_insertion_record.json")
}

// TargetsPath returns the conventional planned-targets path for a given day:
// <dir>/20240101_insertion_targets.json.
func TargetsPath(dir string, day time.Time) string {
	return filepath.Join(dir, day.Format("20060102")+"_insertion_targets.json")
}

// SaveRecord writes the record to path as indented JSON, creating parent
// directories as needed. The .json suffix is forced.
func SaveRecord(rec *InsertionRecord, path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	data, err := rec.ToJSON(true)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write insertion record: %w", err)
	}

	log.Info("Saved insertion record", "path", path, "session", rec.Session)
	return nil
}

// LoadRecord reads and validates a persisted record for the given shield.
func LoadRecord(path string, shield *Shield) (*InsertionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read insertion record: %w", err)
	}
	rec, err := RecordFromJSON(data, shield)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("Loaded insertion record", "path", path, "session", rec.Session)
	return rec, nil
}

// LoadTargets reads a planned-targets record if one exists for the day,
// returning nil without error when there is none. This mirrors the workflow of
// planning hole targets ahead of the session and starting the record from them.
func LoadTargets(dir string, day time.Time, shield *Shield) (*InsertionRecord, error) {
	path := TargetsPath(dir, day)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debug("No planned targets for day", "path", path)
		return nil, nil
	}
	return LoadRecord(path, shield)
}
