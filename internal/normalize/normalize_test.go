package normalize

import (
	"strings"
	"testing"

	"github.com/cvflow/cvparse/internal/patterns"
)

func TestCollapseWhitespace(t *testing.T) {
	lib := patterns.New()

	got := Text("A\n\n\n\n\nB", lib)
	if got != "A\n\nB" {
		t.Errorf("got %q", got)
	}

	got = Text("too   many    spaces", lib)
	if got != "too many spaces" {
		t.Errorf("got %q", got)
	}
}

func TestBulletUnification(t *testing.T) {
	lib := patterns.New()

	got := Text("● one\n◦ two\n✓ three", lib)
	if strings.Count(got, "•") != 3 {
		t.Errorf("expected 3 unified bullets, got %q", got)
	}
}

func TestPageNumberLines(t *testing.T) {
	lib := patterns.New()

	got := Text("first\n 3 \nsecond", lib)
	if strings.Contains(got, "3") {
		t.Errorf("page number survived: %q", got)
	}
}

func TestHeaderFooterStripping(t *testing.T) {
	lib := patterns.New()

	in := "Page 1\nJane Doe\nline one\nline two\n2 of 2"
	got := Text(in, lib)
	if strings.Contains(got, "Page 1") || strings.Contains(got, "2 of 2") {
		t.Errorf("boilerplate survived: %q", got)
	}
	if !strings.Contains(got, "Jane Doe") {
		t.Errorf("content lost: %q", got)
	}

	// Boilerplate-looking lines in the middle are content.
	in = "a\nb\nCurriculum Vitae\nc\nd"
	got = Text(in, lib)
	if !strings.Contains(got, "Curriculum Vitae") {
		t.Errorf("middle line removed: %q", got)
	}
}

func TestHeadingSpacing(t *testing.T) {
	lib := patterns.New()

	got := Text("Jane Doe\nEXPERIENCE\nworked at Acme", lib)
	if !strings.Contains(got, "\n\nEXPERIENCE\n") {
		t.Errorf("heading not isolated: %q", got)
	}
}

func TestEmptyInput(t *testing.T) {
	lib := patterns.New()
	if got := Text("", lib); got != "" {
		t.Errorf("got %q", got)
	}
	if got := Text("   \n\n  ", lib); got != "" {
		t.Errorf("got %q", got)
	}
}
