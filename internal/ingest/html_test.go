package ingest

import (
	"strings"
	"testing"
)

func TestHTMLExtractor(t *testing.T) {
	e := &HTMLExtractor{}
	src := `<html><head><title>cv</title><style>p{}</style></head>
<body><h1>Jane Doe</h1><p>Engineer at Acme.</p><ul><li>Built APIs</li><li>Led a team</li></ul>
<script>ignore()</script></body></html>`

	got, err := e.Extract(strings.NewReader(src), "cv.html")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if !strings.Contains(got, "Jane Doe") {
		t.Errorf("heading lost: %q", got)
	}
	if !strings.Contains(got, "Engineer at Acme.") {
		t.Errorf("paragraph lost: %q", got)
	}
	if !strings.Contains(got, "Built APIs") || !strings.Contains(got, "Led a team") {
		t.Errorf("list items lost: %q", got)
	}
	if strings.Contains(got, "ignore()") || strings.Contains(got, "p{}") {
		t.Errorf("script or style leaked: %q", got)
	}

	// Items land on separate lines.
	if !strings.Contains(got, "Built APIs\n") && !strings.HasSuffix(got, "Built APIs") {
		idx := strings.Index(got, "Built APIs")
		rest := got[idx+len("Built APIs"):]
		if !strings.HasPrefix(rest, "\n") {
			t.Errorf("items not line-separated: %q", got)
		}
	}
}
