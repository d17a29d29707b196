package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rfcpress/rfcpress/internal/glossary"
)

func testIndex(t *testing.T) *glossary.Index {
	t.Helper()
	idx, err := glossary.NewIndex([]glossary.Entry{
		{ID: "dns", Term: "DNS", Aliases: []string{"Domain Name System"}, Definition: "Naming.", Category: glossary.CategoryProtocol},
		{ID: "tcp", Term: "TCP", Definition: "Transport.", Category: glossary.CategoryProtocol},
	})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return idx
}

const sampleArticle = `---
title: "RFC 1034: Domain Names"
slug: rfc1034-dns
rfc: RFC 1034
series: Naming & Addressing
summary: How names become addresses.
order: 1
---

# Resolution

Every lookup starts with [[DNS]] and usually rides on [[UDP]].
`

func TestParseArticle(t *testing.T) {
	a, err := ParseArticle("rfc1034.md", []byte(sampleArticle))
	if err != nil {
		t.Fatalf("ParseArticle: %v", err)
	}
	if a.Title != "RFC 1034: Domain Names" {
		t.Errorf("unexpected title %q", a.Title)
	}
	if a.Slug != "rfc1034-dns" || a.Series != "Naming & Addressing" || a.Order != 1 {
		t.Errorf("unexpected front matter: %+v", a.FrontMatter)
	}
	if !strings.Contains(string(a.Markdown), "# Resolution") {
		t.Error("body not preserved")
	}
}

func TestParseArticleDefaultsSlug(t *testing.T) {
	a, err := ParseArticle("sub/rfc793-tcp.md", []byte("---\ntitle: TCP\n---\nbody\n"))
	if err != nil {
		t.Fatalf("ParseArticle: %v", err)
	}
	if a.Slug != "rfc793-tcp" {
		t.Errorf("expected slug from filename, got %q", a.Slug)
	}
}

func TestParseArticleRequiresFrontMatter(t *testing.T) {
	for _, body := range []string{"# No header\n", "---\ntitle: x\nno terminator", "---\nslug: only\n---\nbody"} {
		if _, err := ParseArticle("a.md", []byte(body)); err == nil {
			t.Errorf("expected error for %q", body)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, title, series string, order int, draft bool) {
		t.Helper()
		content := fmt.Sprintf("---\ntitle: %s\nseries: %s\norder: %d\n", title, series, order)
		if draft {
			content += "draft: true\n"
		}
		content += "---\nbody\n"
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("b.md", "Second", "s1", 2, false)
	write("a.md", "First", "s1", 1, false)
	write("d.md", "Hidden", "s1", 3, true)
	write("notes/skipped.md", "Skipped", "s1", 4, false)

	articles, err := LoadDir(dir, []string{"**/*.md"}, []string{"notes/**"})
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "First" || articles[1].Title != "Second" {
		t.Errorf("unexpected order: %s, %s", articles[0].Title, articles[1].Title)
	}
}

func TestRenderWrapsTriggersAndReportsMisses(t *testing.T) {
	r := NewRenderer(testIndex(t))
	a, err := ParseArticle("rfc1034.md", []byte(sampleArticle))
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Render(a)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.HTML, `<span class="glossary-term" data-term-id="dns"`) {
		t.Errorf("expected wrapped DNS trigger, got:\n%s", out.HTML)
	}
	// UDP is not in the index: plain text plus one miss diagnostic.
	if strings.Contains(out.HTML, "[[UDP]]") {
		t.Error("marker syntax leaked into output")
	}
	if !strings.Contains(out.HTML, "UDP") {
		t.Error("missed trigger should render its text unstyled")
	}
	if len(out.Misses) != 1 || out.Misses[0].Query != "UDP" {
		t.Errorf("expected one UDP miss, got %+v", out.Misses)
	}
}

func TestRenderMermaidBlock(t *testing.T) {
	r := NewRenderer(testIndex(t))
	md := "---\ntitle: x\n---\n```mermaid\ngraph TD\n  A --> B\n```\n"
	a, err := ParseArticle("x.md", []byte(md))
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Render(a)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.HTML, `class="diagram mermaid"`) {
		t.Errorf("expected diagram placeholder, got:\n%s", out.HTML)
	}
	if strings.Contains(out.HTML, "language-mermaid") {
		t.Error("mermaid code block should have been replaced")
	}
}

func TestRenderMermaidFailureBecomesErrorPanel(t *testing.T) {
	r := NewRenderer(testIndex(t))
	md := "---\ntitle: x\n---\nintro\n\n```mermaid\nnot a diagram\n```\n\noutro\n"
	a, _ := ParseArticle("x.md", []byte(md))

	out, err := r.Render(a)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.HTML, "diagram-error") {
		t.Errorf("expected error panel, got:\n%s", out.HTML)
	}
	// The failure stays local: surrounding content renders.
	if !strings.Contains(out.HTML, "intro") || !strings.Contains(out.HTML, "outro") {
		t.Error("diagram failure must not eat the rest of the page")
	}
}

func TestWrapTriggersSkipsCodeBlocks(t *testing.T) {
	idx := testIndex(t)
	in := `<p>[[DNS]]</p><pre><code>lookup([[DNS]])</code></pre>`
	out, misses := WrapTriggers(in, idx, "a.html")

	if !strings.Contains(out, `data-term-id="dns"`) {
		t.Error("expected trigger wrapped outside code")
	}
	if !strings.Contains(out, "lookup([[DNS]])") {
		t.Errorf("marker inside code must stay literal, got:\n%s", out)
	}
	if len(misses) != 0 {
		t.Errorf("unexpected misses: %+v", misses)
	}
}

func TestWrapTriggersOverride(t *testing.T) {
	idx := testIndex(t)
	out, misses := WrapTriggers(`<p>[[the naming system|Domain Name System]]</p>`, idx, "a.html")

	if !strings.Contains(out, `data-term-id="dns"`) {
		t.Errorf("expected override resolved via alias, got:\n%s", out)
	}
	if !strings.Contains(out, ">the naming system</span>") {
		t.Errorf("expected display text preserved, got:\n%s", out)
	}
	if len(misses) != 0 {
		t.Errorf("unexpected misses: %+v", misses)
	}
}

func TestMatchesIncludeExclude(t *testing.T) {
	if !MatchesInclude("a/b.md", nil) {
		t.Error("empty include matches everything")
	}
	if !MatchesInclude("a/b.md", []string{"**/*.md"}) {
		t.Error("doublestar include should match")
	}
	if MatchesExclude("a/b.md", nil) {
		t.Error("empty exclude matches nothing")
	}
	if !MatchesExclude("drafts/b.md", []string{"drafts/**"}) {
		t.Error("exclude should match subtree")
	}
}
