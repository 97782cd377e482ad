package shields

import (
	"fmt"
	"strings"
)

// DrawingRenderer projects a set of probe assignments onto a labelled SVG
// drawing. Each hole label owns one placeholder in the drawing: the tspan
// element whose text content is the label, e.g. ">A1</tspan>". Rendering
// replaces that text with the occupying probe's marker, or blanks it when the
// hole is free. Substitution is scoped to the tspan pattern so a label string
// appearing elsewhere in the document is never touched.
type DrawingRenderer struct {
	svg          string
	space        *LabelSpace
	markerPrefix string // Prepended to the probe letter in the drawing, default " "
	lenient      bool   // Skip assigned labels with no placeholder instead of failing
}

// NewDrawingRenderer creates a renderer for one drawing and its label space.
// The default mode is strict: rendering an assignment whose hole has no
// placeholder in the drawing is an error.
func NewDrawingRenderer(svg string, space *LabelSpace) *DrawingRenderer {
	return &DrawingRenderer{
		svg:          svg,
		space:        space,
		markerPrefix: " ",
	}
}

// SetLenient controls what happens when an assigned hole has no placeholder in
// the drawing: lenient renderers skip it, strict renderers fail. Lenient mode
// is for partial or legacy drawings that only label some of the holes.
func (r *DrawingRenderer) SetLenient(lenient bool) {
	r.lenient = lenient
}

// SetMarkerPrefix changes the text placed before the probe letter in the drawing.
func (r *DrawingRenderer) SetMarkerPrefix(prefix string) {
	r.markerPrefix = prefix
}

// Render produces the drawing with every hole's placeholder showing the
// occupying probe, and every free hole blanked. The input store is not
// modified; rendering twice yields identical output.
func (r *DrawingRenderer) Render(a *Assignments) (string, error) {
	markers := make(map[string]string)
	for _, probe := range a.Probes() {
		if hole := a.Hole(probe); hole != "" {
			markers[hole] = r.markerPrefix + probe
		}
	}
	return r.RenderMarkers(markers)
}

// RenderMarkers is Render for a raw label -> display text mapping. Labels
// missing from the map are treated as unassigned and blanked.
func (r *DrawingRenderer) RenderMarkers(markers map[string]string) (string, error) {
	for label := range markers {
		if !r.space.Contains(label) {
			return "", fmt.Errorf("%w: %q is not a hole on this shield", ErrUnknownLabel, label)
		}
	}

	data := r.svg
	for _, label := range r.space.Labels() {
		placeholder := fmt.Sprintf(">%s</tspan>", label)
		marker, assigned := markers[label]
		if assigned && !strings.Contains(data, placeholder) {
			if r.lenient {
				continue
			}
			return "", fmt.Errorf("%w: drawing has no placeholder for %q", ErrUnknownLabel, label)
		}
		replacement := "></tspan>"
		if assigned {
			replacement = fmt.Sprintf(">%s</tspan>", marker)
		}
		data = strings.Replace(data, placeholder, replacement, 1)
	}
	return data, nil
}
