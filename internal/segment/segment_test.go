package segment

import (
	"strings"
	"testing"

	"github.com/cvflow/cvparse/internal/nlp"
	"github.com/cvflow/cvparse/internal/patterns"
)

func TestSectionsBasic(t *testing.T) {
	lib := patterns.New()
	text := "Jane Doe\njane@example.com\n\nEXPERIENCE\nworked at Acme\n\nEDUCATION\nMIT degree program"

	sections := Sections(text, lib, nlp.Noop{})

	if got := sections["personal_info"]; got != "jane@example.com" {
		t.Errorf("personal_info = %q", got)
	}
	if got := sections["experience"]; got != "worked at Acme" {
		t.Errorf("experience = %q", got)
	}
	if got := sections["education"]; got != "MIT degree program" {
		t.Errorf("education = %q", got)
	}
}

func TestObjectiveKeepsLonger(t *testing.T) {
	lib := patterns.New()
	text := "SUMMARY\nShort.\n\nOBJECTIVE\nA considerably longer statement about career goals."

	sections := Sections(text, lib, nlp.Noop{})

	if got := sections["objective"]; !strings.Contains(got, "considerably longer") {
		t.Errorf("objective = %q, want the longer body", got)
	}
}

func TestDuplicateSectionKeepsFirst(t *testing.T) {
	lib := patterns.New()
	text := "EXPERIENCE\nfirst block of work\n\nWORK HISTORY\nsecond block of work"

	sections := Sections(text, lib, nlp.Noop{})

	if got := sections["experience"]; got != "first block of work" {
		t.Errorf("experience = %q, want first block", got)
	}
}

func TestImplicitFallback(t *testing.T) {
	lib := patterns.New()
	text := "worked on various jobs over the years"

	sections := Sections(text, lib, nlp.Noop{})

	if got := sections["experience"]; got != text {
		t.Errorf("experience = %q, want full text", got)
	}
	if _, ok := sections["education"]; ok {
		t.Error("education should not be assigned")
	}
}

func TestNoSignalYieldsNothing(t *testing.T) {
	lib := patterns.New()

	sections := Sections("I like hiking and cooking.", lib, nlp.Noop{})
	if len(sections) != 0 {
		t.Errorf("sections = %v, want none", sections)
	}

	sections = Sections("", lib, nlp.Noop{})
	if len(sections) != 0 {
		t.Errorf("sections = %v, want none", sections)
	}
}

func TestRefineRecoversEducation(t *testing.T) {
	lib := patterns.New()
	// The heading is misspelled so only the keyword window can find it.
	text := "Jane Doe\nsummary of things\n\nEducaton stuff\nStudied at Springfield University from 2010\nmore details here"

	sections := Sections(text, lib, nlp.Noop{})

	if got := sections["education"]; !strings.Contains(got, "Springfield University") {
		t.Errorf("education = %q, want the university window", got)
	}
}

func TestPresence(t *testing.T) {
	lib := patterns.New()
	sections := map[string]string{"experience": "worked", "skills": "  "}

	p := Presence(sections, lib)

	if !p["experience"] {
		t.Error("experience should be present")
	}
	if p["skills"] {
		t.Error("blank skills should not be present")
	}
	if len(p) != len(lib.SectionNames()) {
		t.Errorf("presence has %d keys, want %d", len(p), len(lib.SectionNames()))
	}
}
