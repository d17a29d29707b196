package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/rfcpress/rfcpress/internal/diagram"
	"github.com/rfcpress/rfcpress/internal/glossary"
	"github.com/rfcpress/rfcpress/internal/popup"
)

// glossaryPayload is the shape of glossary.json read by the popup
// runtime.
type glossaryPayload struct {
	Terms []glossary.Entry `json:"terms"`
}

// writeAssets writes the non-page files: glossary.json for the popup
// runtime, the stylesheet (including syntax-highlighting and badge
// rules), and the page script.
func (g *Generator) writeAssets(idx *glossary.Index) error {
	data, err := json.MarshalIndent(glossaryPayload{Terms: idx.Entries()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling glossary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.cfg.OutputDir, "glossary.json"), data, 0o644); err != nil {
		return err
	}

	css := cssContent + chromaCSS() + badgeCSS()
	if err := os.WriteFile(filepath.Join(g.cfg.OutputDir, "style.css"), []byte(css), 0o644); err != nil {
		return err
	}

	js, err := buildScript()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.cfg.OutputDir, "script.js"), []byte(js), 0o644)
}

// chromaCSS renders the class-based syntax highlighting stylesheet
// matching the style the markdown pipeline highlights with.
func chromaCSS() string {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	style := styles.Get("github")

	var buf bytes.Buffer
	buf.WriteString("\n/* syntax highlighting */\n")
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return ""
	}
	return buf.String()
}

// badgeCSS generates one rule per glossary category so the popup
// runtime can tag badges with a class instead of inline styles.
func badgeCSS() string {
	var b strings.Builder
	b.WriteString("\n/* glossary category badges */\n")
	for _, cat := range glossary.Categories {
		s := popup.StyleFor(cat)
		fmt.Fprintf(&b, ".badge-%s { background: %s; color: %s; }\n", cat, s.Background, s.Text)
	}
	return b.String()
}

// buildScript assembles script.js: the static runtime with the popup
// geometry constants and the dark diagram theme injected.
func buildScript() (string, error) {
	darkTheme, err := json.Marshal(diagram.Dark())
	if err != nil {
		return "", fmt.Errorf("marshalling diagram theme: %w", err)
	}

	js := jsContent
	js = strings.ReplaceAll(js, "__MERMAID_DARK_THEME__", string(darkTheme))
	js = strings.ReplaceAll(js, "__PANEL_WIDTH__", fmt.Sprint(popup.PanelWidth))
	js = strings.ReplaceAll(js, "__PANEL_HEIGHT_ESTIMATE__", fmt.Sprint(popup.PanelHeightEstimate))
	js = strings.ReplaceAll(js, "__VERTICAL_OFFSET__", fmt.Sprint(popup.VerticalOffset))
	js = strings.ReplaceAll(js, "__SMALL_VIEWPORT_BREAKPOINT__", fmt.Sprint(popup.SmallViewportBreakpoint))
	js = strings.ReplaceAll(js, "__MAX_RELATED_COMPACT__", fmt.Sprint(popup.MaxRelatedCompact))
	return js, nil
}
