package ingest

import (
	"strings"
	"testing"
)

func TestMarkdownExtractor(t *testing.T) {
	e := &MarkdownExtractor{}
	src := "# Jane Doe\n\nSoftware engineer based in Berlin.\n\n## Experience\n\n- Built APIs\n- Led a team\n"

	got, err := e.Extract(strings.NewReader(src), "cv.md")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if !strings.Contains(got, "Jane Doe\n") {
		t.Errorf("heading lost: %q", got)
	}
	if !strings.Contains(got, "Experience\n") {
		t.Errorf("section heading lost: %q", got)
	}
	if !strings.Contains(got, "• Built APIs") || !strings.Contains(got, "• Led a team") {
		t.Errorf("list items lost: %q", got)
	}
	if !strings.Contains(got, "Software engineer based in Berlin.") {
		t.Errorf("paragraph lost: %q", got)
	}
}

func TestMarkdownExtractorPlainText(t *testing.T) {
	e := &MarkdownExtractor{}

	got, err := e.Extract(strings.NewReader("just a paragraph"), "cv.md")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(got, "just a paragraph") {
		t.Errorf("got %q", got)
	}
}
