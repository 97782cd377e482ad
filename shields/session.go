package shields

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

// SessionOptions configures one interactive insertion session.
type SessionOptions struct {
	SavePath string // Where to write the record on save, "" to skip saving
	ReadOnly bool   // Show the current state without prompting for changes
}

// RunSession drives one interactive pass over the record: a selector per probe
// for its hole, a note field per probe, and a final save confirmation. Choices
// are applied through Assign in probe order, so picking an occupied hole
// vacates its previous probe the same way it would through any other caller.
func RunSession(rec *InsertionRecord, shield *Shield, opts SessionOptions) error {
	store, err := rec.Assignments(shield)
	if err != nil {
		return err
	}
	if rec.Notes == nil {
		rec.Notes = make(map[string]string)
	}

	if opts.ReadOnly {
		log.Info("Insertion record loaded (read-only)", "session", rec.Session)
		fmt.Println(Summary(rec, store))
		return nil
	}

	before := store.Snapshot()

	holeOptions := []huh.Option[string]{huh.NewOption("none", "none")}
	for _, label := range shield.Space.Labels() {
		holeOptions = append(holeOptions, huh.NewOption(label, label))
	}

	choices := make(map[string]*string, len(store.Probes()))
	notes := make(map[string]*string, len(store.Probes()))
	var fields []huh.Field
	for _, probe := range store.Probes() {
		choice := store.Hole(probe)
		if choice == "" {
			choice = "none"
		}
		note := rec.Notes[probe]
		choices[probe] = &choice
		notes[probe] = &note

		fields = append(fields,
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Probe %s hole", probe)).
				Options(holeOptions...).
				Value(choices[probe]),
			huh.NewInput().
				Title(fmt.Sprintf("Probe %s notes", probe)).
				Placeholder(fmt.Sprintf("Add notes for probe %s", probe)).
				Value(notes[probe]),
		)
	}

	var save bool
	fields = append(fields, huh.NewConfirm().
		Title("Save insertion record?").
		Value(&save))

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return fmt.Errorf("failed to get insertion choices: %w", err)
	}

	for _, probe := range store.Probes() {
		if err := store.Assign(probe, *choices[probe]); err != nil {
			return err
		}
		if note := *notes[probe]; note != "" {
			rec.Notes[probe] = note
		} else {
			delete(rec.Notes, probe)
		}
	}
	rec.ApplySnapshot(store)

	for _, change := range Changed(CompareSnapshots(store.Probes(), before, store.Snapshot())) {
		log.Info(change.Describe())
	}

	fmt.Println(Summary(rec, store))

	if save && opts.SavePath != "" {
		if err := SaveRecord(rec, opts.SavePath); err != nil {
			return err
		}
		log.Info("Insertions saved")
	}
	return nil
}
