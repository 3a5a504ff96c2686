package nlp

import (
	"log/slog"
	"sync"

	"github.com/jdkato/prose/v2"
)

// maxInput bounds the text handed to the NLP toolkit; entity extraction over
// very large documents is slow and the interesting entities sit near the top.
const maxInput = 100000

// Prose is an Augmenter backed by the prose NLP toolkit. The underlying model
// is warmed exactly once on first use; concurrent first calls share one load.
type Prose struct {
	log  *slog.Logger
	once sync.Once
	ok   bool
}

// NewProse returns a prose-backed augmenter. The model is not loaded until the
// first call, keeping process start cheap when parsing never happens.
func NewProse(log *slog.Logger) *Prose {
	return &Prose{log: log}
}

func (p *Prose) warm() {
	p.once.Do(func() {
		// A throwaway document forces the embedded model to load outside the
		// first caller's measured parse.
		if _, err := prose.NewDocument("warmup"); err != nil {
			p.log.Warn("nlp model unavailable, entity detection disabled", "error", err)
			return
		}
		p.ok = true
	})
}

func (p *Prose) PersonEntities(text string) []string {
	var names []string
	for _, ent := range p.entities(text) {
		if ent.Label == "PERSON" {
			names = append(names, ent.Text)
		}
	}
	return names
}

func (p *Prose) Entities(text string) []Entity {
	return p.entities(text)
}

func (p *Prose) entities(text string) []Entity {
	p.warm()
	if !p.ok || text == "" {
		return nil
	}
	if len(text) > maxInput {
		text = text[:maxInput]
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		p.log.Warn("nlp entity pass failed", "error", err)
		return nil
	}

	var out []Entity
	for _, ent := range doc.Entities() {
		out = append(out, Entity{Text: ent.Text, Label: ent.Label})
	}
	return out
}
