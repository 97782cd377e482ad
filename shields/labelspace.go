package shields

import (
	"fmt"
	"strings"
)

// LabelGroup is one lettered group of holes on a shield, e.g. group "A" with
// holes 1-3 producing the labels A1, A2, A3.
type LabelGroup struct {
	Group string `json:"group" yaml:"group"` // Single-character group identifier
	Holes []int  `json:"holes" yaml:"holes"` // Hole numbers within the group, in drawing order
}

// LabelSpace is the fixed catalog of valid hole labels for one shield and their
// canonical ordering (group order, then hole order within the group).
// It is immutable after construction and safe to share across assignment sets.
type LabelSpace struct {
	groups []LabelGroup
	labels []string       // "A1", "A2", "A3", "B1", ... in canonical order
	index  map[string]int // label -> position in labels
}

// NewLabelSpace builds a label space from ordered hole groups.
// Group identifiers must be unique single characters and hole numbers positive;
// the resulting labels must be unique.
func NewLabelSpace(groups []LabelGroup) (*LabelSpace, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("label space needs at least one group")
	}

	seen := make(map[string]bool, len(groups))
	space := &LabelSpace{
		groups: make([]LabelGroup, len(groups)),
		index:  make(map[string]int),
	}
	copy(space.groups, groups)

	for _, g := range groups {
		if len(g.Group) != 1 {
			return nil, fmt.Errorf("group identifier must be a single character: %q", g.Group)
		}
		if seen[g.Group] {
			return nil, fmt.Errorf("duplicate group identifier: %q", g.Group)
		}
		seen[g.Group] = true

		for _, hole := range g.Holes {
			if hole <= 0 {
				return nil, fmt.Errorf("hole numbers must be positive: %s%d", g.Group, hole)
			}
			label := fmt.Sprintf("%s%d", g.Group, hole)
			if _, exists := space.index[label]; exists {
				return nil, fmt.Errorf("duplicate hole label: %q", label)
			}
			space.index[label] = len(space.labels)
			space.labels = append(space.labels, label)
		}
	}

	return space, nil
}

// MustLabelSpace is NewLabelSpace for static shield definitions that are known good.
func MustLabelSpace(groups []LabelGroup) *LabelSpace {
	space, err := NewLabelSpace(groups)
	if err != nil {
		panic(err)
	}
	return space
}

// Labels returns all valid hole labels in canonical order.
// The returned slice is a copy; mutating it does not affect the space.
func (s *LabelSpace) Labels() []string {
	labels := make([]string, len(s.labels))
	copy(labels, s.labels)
	return labels
}

// Groups returns the hole groups the space was built from.
func (s *LabelSpace) Groups() []LabelGroup {
	groups := make([]LabelGroup, len(s.groups))
	copy(groups, s.groups)
	return groups
}

// Len returns the number of holes in the space.
func (s *LabelSpace) Len() int {
	return len(s.labels)
}

// Contains reports whether label names a hole on this shield.
func (s *LabelSpace) Contains(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Index returns the canonical position of label: A1 -> 0, A2 -> 1, etc.
func (s *LabelSpace) Index(label string) (int, error) {
	idx, ok := s.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q (group %s has holes %s)",
			ErrInvalidLabel, label, groupOf(label), s.groupHoles(label))
	}
	return idx, nil
}

// LabelAt is the inverse of Index: 0 -> A1, 1 -> A2, etc.
func (s *LabelSpace) LabelAt(index int) (string, error) {
	if index < 0 || index >= len(s.labels) {
		return "", fmt.Errorf("%w: index must be in range 0-%d, got %d",
			ErrIndexOutOfRange, len(s.labels)-1, index)
	}
	return s.labels[index], nil
}

// groupOf extracts the group letter from a label for error messages.
func groupOf(label string) string {
	if label == "" {
		return "?"
	}
	return label[:1]
}

// groupHoles lists the valid labels of the group a bad label belongs to,
// so error messages can name the available alternatives.
func (s *LabelSpace) groupHoles(label string) string {
	group := groupOf(label)
	var available []string
	for _, l := range s.labels {
		if strings.HasPrefix(l, group) {
			available = append(available, l)
		}
	}
	if len(available) == 0 {
		return "none"
	}
	return strings.Join(available, ", ")
}
