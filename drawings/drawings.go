// Package drawings is the catalog of known implant shields: their hole
// layouts and the labelled SVG drawings they were manufactured from. Custom
// shields can be added from YAML definitions.
package drawings

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/mindscope/npc-shields-golang/shields"
)

//go:embed 2002.svg
var svg2002 string

//go:embed 2006.svg
var svg2006 string

// builtin holds the shields shipped with the library, keyed by name.
var builtin = map[string]*shields.Shield{
	"2002": {
		Name:      "2002",
		DrawingID: "0283-200-002",
		Probes:    shields.ProbeLetters(shields.DefaultProbes),
		SVG:       svg2002,
		Space: shields.MustLabelSpace([]shields.LabelGroup{
			{Group: "A", Holes: []int{1, 2, 3}},
			{Group: "B", Holes: []int{1, 2, 3, 4}},
			{Group: "C", Holes: []int{1, 2, 3, 4}},
			{Group: "D", Holes: []int{1, 2, 3}},
			{Group: "E", Holes: []int{1, 2, 3, 4}},
			{Group: "F", Holes: []int{1, 2, 3}},
		}),
	},
	"2006": {
		Name:      "2006",
		DrawingID: "0283-200-006",
		Probes:    shields.ProbeLetters(shields.DefaultProbes),
		SVG:       svg2006,
		Space: shields.MustLabelSpace([]shields.LabelGroup{
			{Group: "A", Holes: []int{1, 2, 3}},
			{Group: "B", Holes: []int{1, 2, 3, 4}},
			{Group: "C", Holes: []int{1, 2, 3, 4}},
			{Group: "D", Holes: []int{1, 2, 3, 4}},
			{Group: "E", Holes: []int{1, 2, 3, 4}},
			{Group: "F", Holes: []int{1, 2, 3}},
		}),
	},
}

// Get returns the built-in shield with the given name.
func Get(name string) (*shields.Shield, error) {
	shield, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown shield %q (known shields: %v)", name, Names())
	}
	return shield, nil
}

// Names lists the built-in shield names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
