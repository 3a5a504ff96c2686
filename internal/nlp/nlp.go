// Package nlp provides the optional named-entity pass used by name resolution
// and section recovery. It is a soft dependency: when disabled or unavailable
// the no-op augmenter keeps the rest of the pipeline unaffected.
package nlp

// Entity is one recognized span with its label (e.g. PERSON, GPE).
type Entity struct {
	Text  string
	Label string
}

// Augmenter is the narrow capability the parser consumes. Implementations
// must be safe for concurrent use and must never fail: on any internal error
// they return empty results.
type Augmenter interface {
	// PersonEntities returns person names found in text, in order.
	PersonEntities(text string) []string
	// Entities returns all recognized entities relevant to section detection.
	Entities(text string) []Entity
}

// Noop is the default augmenter: every call returns nothing.
type Noop struct{}

func (Noop) PersonEntities(string) []string { return nil }
func (Noop) Entities(string) []Entity       { return nil }

// Active reports whether the augmenter does real work.
func Active(a Augmenter) bool {
	if a == nil {
		return false
	}
	_, noop := a.(Noop)
	return !noop
}
