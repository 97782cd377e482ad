package drawings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mindscope/npc-shields-golang/shields"
)

// Definition is a YAML-declared shield for rigs using drawings that are not
// built into the library:
//
//	name: "2104"
//	drawing_id: "0283-200-104"
//	probes: ABCDEF
//	groups:
//	  - group: A
//	    holes: [1, 2, 3]
//	  - group: B
//	    holes: [1, 2, 3, 4]
type Definition struct {
	Name      string               `yaml:"name"`
	DrawingID string               `yaml:"drawing_id"`
	Probes    string               `yaml:"probes,omitempty"` // Defaults to A-F
	Groups    []shields.LabelGroup `yaml:"groups"`
}

// ParseDefinition builds a shield from YAML definition data and the text of
// its labelled SVG drawing.
func ParseDefinition(data []byte, svg string) (*shields.Shield, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse shield definition: %w", err)
	}

	if def.Name == "" {
		return nil, fmt.Errorf("shield definition is missing a name")
	}
	probes := def.Probes
	if probes == "" {
		probes = shields.DefaultProbes
	}

	space, err := shields.NewLabelSpace(def.Groups)
	if err != nil {
		return nil, fmt.Errorf("shield definition %q: %w", def.Name, err)
	}

	return &shields.Shield{
		Name:      def.Name,
		DrawingID: def.DrawingID,
		Probes:    shields.ProbeLetters(probes),
		Space:     space,
		SVG:       svg,
	}, nil
}

// LoadDefinition reads a YAML definition and its SVG drawing from disk.
func LoadDefinition(definitionPath, svgPath string) (*shields.Shield, error) {
	data, err := os.ReadFile(definitionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read shield definition: %w", err)
	}
	svg, err := os.ReadFile(svgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read shield drawing: %w", err)
	}
	return ParseDefinition(data, string(svg))
}
