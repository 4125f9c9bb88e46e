// Package gem defines the static catalog of conversational stages the
// journey walks through. Definitions are immutable data: they are built
// once at startup and never mutated afterwards.
package gem

import (
	"fmt"
	"strings"
)

// Definition describes one GEM's identity and behavior contract.
type Definition struct {
	ID          string
	Name        string
	Emoji       string
	Role        string
	Specialty   string
	Duration    string
	NextStep    string
	Personality string

	// Marker is the completion marker a reply must contain for the gem
	// to be considered done. For most gems it is an output-id prefix
	// such as "MAPA-"; for a few it is a fixed heading.
	Marker string

	// Instructions is the full prompt text seeded as the gem's system
	// message when a session opens.
	Instructions string
}

// Validate ensures the definition is well-formed.
func (d Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("gem: id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("gem: name is required for %s", d.ID)
	}
	if strings.TrimSpace(d.Instructions) == "" {
		return fmt.Errorf("gem: instructions are required for %s", d.ID)
	}
	if strings.TrimSpace(d.Marker) == "" {
		return fmt.Errorf("gem: completion marker is required for %s", d.ID)
	}
	return nil
}

// Sequence is the canonical total order over gems. Position in the
// sequence is the only precedence relation: there is no dependency
// graph, "next" is simply the positional successor.
type Sequence struct {
	ordered []Definition
	byID    map[string]Definition
}

// NewSequence builds a sequence from definitions in journey order.
func NewSequence(defs ...Definition) (*Sequence, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("gem: sequence requires at least one definition")
	}
	seq := &Sequence{
		ordered: make([]Definition, 0, len(defs)),
		byID:    make(map[string]Definition, len(defs)),
	}
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, exists := seq.byID[def.ID]; exists {
			return nil, fmt.Errorf("gem: %s already registered", def.ID)
		}
		seq.ordered = append(seq.ordered, def)
		seq.byID[def.ID] = def
	}
	return seq, nil
}

// MustNewSequence panics on an invalid catalog. The built-in catalog is
// static data, so a failure here is a programming error.
func MustNewSequence(defs ...Definition) *Sequence {
	seq, err := NewSequence(defs...)
	if err != nil {
		panic(err)
	}
	return seq
}

// Len returns the number of gems in the sequence.
func (s *Sequence) Len() int {
	return len(s.ordered)
}

// All returns the definitions in journey order.
func (s *Sequence) All() []Definition {
	out := make([]Definition, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// ByID looks up a definition by id.
func (s *Sequence) ByID(id string) (Definition, bool) {
	def, ok := s.byID[id]
	return def, ok
}

// First returns the entry point of the journey.
func (s *Sequence) First() Definition {
	return s.ordered[0]
}

// Position returns the zero-based index of id within the sequence.
func (s *Sequence) Position(id string) (int, bool) {
	for i, def := range s.ordered {
		if def.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Next returns the positional successor of id. ok is false when id is
// the last gem in the sequence. An unknown id resolves to the first
// gem: a stale or foreign id must never dead-end the journey, so the
// fallback restarts it from the entry point.
func (s *Sequence) Next(id string) (Definition, bool) {
	pos, found := s.Position(id)
	if !found {
		return s.First(), true
	}
	if pos+1 >= len(s.ordered) {
		return Definition{}, false
	}
	return s.ordered[pos+1], true
}

// MarkerPrefixes returns the structured-output id prefixes declared by
// the catalog (markers ending in "-", e.g. "MAPA-"). Used when
// extracting the output token from a closing reply.
func (s *Sequence) MarkerPrefixes() []string {
	var prefixes []string
	for _, def := range s.ordered {
		if strings.HasSuffix(def.Marker, "-") {
			prefixes = append(prefixes, def.Marker)
		}
	}
	return prefixes
}
