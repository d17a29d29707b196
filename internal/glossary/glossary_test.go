package glossary

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func testEntries() []Entry {
	return []Entry{
		{
			ID:         "dns",
			Term:       "DNS",
			Aliases:    []string{"dns", "Domain Name System"},
			Definition: "The hierarchical naming system that maps hostnames to addresses.",
			Category:   CategoryProtocol,
			RelatedIDs: []string{"tcp", "udp"},
		},
		{
			ID:         "tcp",
			Term:       "TCP",
			Aliases:    []string{"Transmission Control Protocol"},
			Definition: "Reliable, ordered byte-stream transport.",
			Category:   CategoryProtocol,
		},
		{
			ID:         "tls",
			Term:       "TLS",
			Definition: "Transport layer encryption.",
			Category:   CategorySecurity,
			RelatedIDs: []string{"nonexistent"},
		},
	}
}

func mustIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(testEntries())
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return idx
}

func TestLookupExactMatch(t *testing.T) {
	idx := mustIndex(t)

	// Every alias must resolve regardless of case and surrounding whitespace.
	variants := []string{
		"DNS", "dns", "DNS.", " DNS ", `"DNS"`,
		"Domain Name System", "DOMAIN NAME SYSTEM", " domain name system ",
	}
	for _, q := range variants {
		entry, ok := idx.Lookup(q)
		if !ok {
			t.Errorf("Lookup(%q): expected hit", q)
			continue
		}
		if entry.ID != "dns" {
			t.Errorf("Lookup(%q): expected dns, got %s", q, entry.ID)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	idx := mustIndex(t)

	for _, q := range []string{"", "   ", "bgp", "DNS server", "tcp/ip"} {
		if _, ok := idx.Lookup(q); ok {
			t.Errorf("Lookup(%q): expected miss", q)
		}
	}
}

func TestGet(t *testing.T) {
	idx := mustIndex(t)

	entry, ok := idx.Get("tcp")
	if !ok || entry.Term != "TCP" {
		t.Fatalf("Get(tcp): got %+v, ok=%v", entry, ok)
	}
	if _, ok := idx.Get("nope"); ok {
		t.Error("Get(nope): expected miss")
	}
}

func TestNewIndexRejectsMalformedEntries(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
	}{
		{"missing id", []Entry{{Term: "X", Category: CategoryGeneral}}},
		{"missing term", []Entry{{ID: "x", Category: CategoryGeneral}}},
		{"bad category", []Entry{{ID: "x", Term: "X", Category: "bogus"}}},
		{"duplicate id", []Entry{
			{ID: "x", Term: "X", Category: CategoryGeneral},
			{ID: "x", Term: "Y", Category: CategoryGeneral},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewIndex(tc.entries); err == nil {
				t.Error("expected construction error")
			}
		})
	}
}

func TestBrokenReferences(t *testing.T) {
	idx := mustIndex(t)

	// The fixture carries two deliberate broken references: dns lists a
	// udp entry that does not exist, and tls lists "nonexistent".
	broken := idx.BrokenReferences()
	if len(broken) != 2 {
		t.Fatalf("expected 2 entries with broken refs, got %d: %v", len(broken), broken)
	}
	if got := broken["dns"]; len(got) != 1 || got[0] != "udp" {
		t.Errorf("unexpected broken refs for dns: %v", got)
	}
	if got := broken["tls"]; len(got) != 1 || got[0] != "nonexistent" {
		t.Errorf("unexpected broken refs for tls: %v", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  TCP  ":  "tcp",
		"TCP.":     "tcp",
		`"TCP"`:    "tcp",
		"'IPsec'":  "ipsec",
		"BGP...":   "bgp",
		"Anycast":  "anycast",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glossary.yml")
	content := `terms:
  - id: dns
    term: DNS
    aliases: [dns]
    definition: Naming system.
    category: protocol
    related: [tcp]
  - id: tcp
    term: TCP
    definition: Reliable transport.
    category: protocol
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if idx.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", idx.Len())
	}
	if _, ok := idx.Lookup("dns"); !ok {
		t.Error("expected dns to resolve after load")
	}
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glossary.yml")
	if err := os.WriteFile(path, []byte("terms: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLookupRoute(t *testing.T) {
	idx := mustIndex(t)
	r := chi.NewRouter()
	RegisterRoutes(r, idx, nil)

	req := httptest.NewRequest("GET", "/api/glossary/lookup?q=DNS.", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var entry Entry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry.ID != "dns" {
		t.Errorf("expected dns, got %s", entry.ID)
	}

	// A miss is a 404, never a 500.
	req = httptest.NewRequest("GET", "/api/glossary/lookup?q=bgp", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on miss, got %d", w.Code)
	}
}

func TestListRoute(t *testing.T) {
	idx := mustIndex(t)
	r := chi.NewRouter()
	RegisterRoutes(r, idx, nil)

	req := httptest.NewRequest("GET", "/api/glossary/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"dns"`) {
		t.Error("expected dns entry in list response")
	}
}
