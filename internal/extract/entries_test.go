package extract

import (
	"testing"

	"github.com/cvflow/cvparse/internal/patterns"
)

func TestSplitEntriesOnDateRanges(t *testing.T) {
	lib := patterns.New()
	text := "Engineer - Acme\n2020 - 2021\ndid stuff\nAnalyst - Beta\n2018 - 2019\nother stuff"

	entries := SplitEntries(text, lib)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %q", len(entries), entries)
	}
	if entries[0] != "Engineer - Acme\n2020 - 2021\ndid stuff" {
		t.Errorf("first entry = %q", entries[0])
	}
	if entries[1] != "Analyst - Beta\n2018 - 2019\nother stuff" {
		t.Errorf("second entry = %q", entries[1])
	}
}

func TestSplitEntriesAnchorStaysOnDatedLine(t *testing.T) {
	lib := patterns.New()
	// Two consecutive dated lines: the second anchor must not climb onto the
	// first entry's date line.
	text := "Role One\n2020 - 2021\n2018 - 2019\nnotes"

	entries := SplitEntries(text, lib)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %q", len(entries), entries)
	}
	if entries[0] != "Role One\n2020 - 2021" {
		t.Errorf("first entry = %q", entries[0])
	}
	if entries[1] != "2018 - 2019\nnotes" {
		t.Errorf("second entry = %q", entries[1])
	}
}

func TestSplitEntriesParagraphFallback(t *testing.T) {
	lib := patterns.New()

	entries := SplitEntries("first project\n\nsecond project", lib)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// A single date range is not enough to split.
	entries = SplitEntries("Engineer\n2020 - 2021\nnotes", lib)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
}

func TestSplitEntriesEmpty(t *testing.T) {
	lib := patterns.New()
	if entries := SplitEntries("   ", lib); entries != nil {
		t.Errorf("got %q, want nil", entries)
	}
}

func TestDateSpan(t *testing.T) {
	lib := patterns.New()

	start, end := DateSpan("Jan 2020 to Mar 2021", lib)
	if start != "Jan 2020" || end != "Mar 2021" {
		t.Errorf("got (%q, %q)", start, end)
	}

	start, end = DateSpan("no dates here", lib)
	if start != "" || end != "" {
		t.Errorf("got (%q, %q), want empty", start, end)
	}
}
