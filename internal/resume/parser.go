// Package resume is the parsing facade: it runs normalization, segmentation
// and every field extractor over raw résumé text and assembles the structured
// record.
package resume

import (
	"log/slog"

	"github.com/cvflow/cvparse/internal/extract"
	"github.com/cvflow/cvparse/internal/nlp"
	"github.com/cvflow/cvparse/internal/normalize"
	"github.com/cvflow/cvparse/internal/patterns"
	"github.com/cvflow/cvparse/internal/record"
	"github.com/cvflow/cvparse/internal/segment"
)

// Parser turns raw text into a CV record. It is stateless apart from the
// shared pattern library and safe for concurrent use.
type Parser struct {
	lib *patterns.Library
	aug nlp.Augmenter
	log *slog.Logger
}

func NewParser(aug nlp.Augmenter, log *slog.Logger) *Parser {
	if aug == nil {
		aug = nlp.Noop{}
	}
	return &Parser{
		lib: patterns.New(),
		aug: aug,
		log: log,
	}
}

// Parse never fails: malformed input yields a sparsely populated record, and a
// panic anywhere in the pipeline degrades to the empty record.
func (p *Parser) Parse(raw string) (cv *record.CV) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("parse pipeline panicked", "panic", r)
			cv = record.Empty()
		}
	}()

	text := normalize.Text(raw, p.lib)
	sections := segment.Sections(text, p.lib, p.aug)

	cv = &record.CV{
		PersonalInfo: extract.Personal(text, sections, p.lib, p.aug),
		Sections:     segment.Presence(sections, p.lib),
		Content: record.Content{
			Objective:      extract.Objective(sections["objective"], p.lib),
			Education:      extract.Education(sections["education"], text, p.lib),
			Experience:     extract.Experience(sections["experience"], text, p.lib),
			Projects:       extract.Projects(sections["projects"], text, p.lib),
			Languages:      extract.Languages(sections["languages"], text, p.lib),
			Technologies:   extract.Technologies(sections["skills"], text, p.lib),
			Certifications: extract.Certifications(sections["certifications"], text, p.lib),
			Skills:         extract.Skills(text, sections, p.lib),
		},
	}
	return cv
}
