package site

// pageTemplate is the Go html/template for each page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-default-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  {{if .Summary}}<meta name="description" content="{{.Summary}}">{{end}}
  <link rel="stylesheet" href="{{.BasePath}}style.css">
  <script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="site-title"><a href="{{.BasePath}}index.html">{{.SiteName}}</a></h2>
      <input type="text" id="search-input" placeholder="Search articles..." autocomplete="off">
    </div>
    <div class="sidebar-nav" id="sidebar-nav">
      {{.NavHTML}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      {{if .RFC}}<span class="rfc-tag">{{.RFC}}</span>{{end}}
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the site stylesheet. Syntax-highlighting and badge
// rules are appended at generate time.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --link: #228be6;
  --sidebar-width: 280px;
  --content-max-width: 860px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.15);
}

[data-theme="dark"] {
  --bg: #161b26;
  --bg-secondary: #1e2430;
  --bg-sidebar: #12161f;
  --text: #e9ecef;
  --text-secondary: #ced4da;
  --text-muted: #868e96;
  --border: #2b3245;
  --accent: #4dabf7;
  --accent-hover: #74c0fc;
  --accent-light: #1a2332;
  --code-bg: #1e2430;
  --link: #4dabf7;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.5);
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  font-size: 16px;
  line-height: 1.65;
  color: var(--text);
  background: var(--bg);
}

/* ============ Sidebar ============ */
.sidebar {
  position: fixed;
  top: 0; left: 0; bottom: 0;
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  overflow-y: auto;
  z-index: 100;
}

.sidebar-header { padding: 16px; border-bottom: 1px solid var(--border); }
.site-title { margin: 0 0 12px; font-size: 18px; }
.site-title a { color: var(--text); text-decoration: none; }

#search-input {
  width: 100%;
  padding: 8px 10px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
  font-size: 14px;
}

.sidebar-nav { padding: 8px 0 24px; }
.sidebar-nav ul { list-style: none; margin: 0; padding: 0; }
.sidebar-nav li a {
  display: block;
  padding: 6px 16px;
  color: var(--text-secondary);
  text-decoration: none;
  font-size: 14px;
  border-left: 3px solid transparent;
}
.sidebar-nav li a:hover { color: var(--text); background: var(--bg-secondary); }
.sidebar-nav li a.active {
  color: var(--accent);
  border-left-color: var(--accent);
  background: var(--accent-light);
}
.nav-series {
  padding: 14px 16px 4px;
  font-size: 12px;
  font-weight: 600;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--text-muted);
}
.sidebar-nav li.hidden { display: none; }

.sidebar-overlay {
  display: none;
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.4);
  z-index: 90;
}
.sidebar-overlay.visible { display: block; }

/* ============ Content ============ */
.content { margin-left: var(--sidebar-width); min-height: 100vh; }

.top-bar {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 12px 24px;
  border-bottom: 1px solid var(--border);
  background: var(--bg);
  position: sticky;
  top: 0;
  z-index: 50;
}
.top-bar .rfc-tag { margin-right: auto; }

.menu-toggle, .theme-toggle {
  background: none;
  border: none;
  color: var(--text-secondary);
  cursor: pointer;
  padding: 6px;
  border-radius: 6px;
  display: flex;
}
.menu-toggle:hover, .theme-toggle:hover { background: var(--bg-secondary); color: var(--text); }
.menu-toggle { display: none; }
.theme-toggle { margin-left: auto; }
.theme-toggle .moon-icon { display: none; }
[data-theme="dark"] .theme-toggle .sun-icon { display: none; }
[data-theme="dark"] .theme-toggle .moon-icon { display: block; }

.page-content {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 32px 24px 80px;
}

.page-content h1, .page-content h2, .page-content h3 { line-height: 1.3; }
.page-content h1 { font-size: 30px; margin-top: 0; }
.page-content h2 { font-size: 22px; margin-top: 36px; border-bottom: 1px solid var(--border); padding-bottom: 6px; }
.page-content a { color: var(--link); }
.page-content img { max-width: 100%; }

.page-content pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 14px;
  overflow-x: auto;
  font-size: 14px;
}
.page-content code {
  font-family: "SF Mono", Menlo, Consolas, monospace;
  font-size: 0.9em;
  background: var(--code-bg);
  padding: 2px 5px;
  border-radius: 4px;
}
.page-content pre code { background: none; padding: 0; }

.page-content table { border-collapse: collapse; width: 100%; margin: 16px 0; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 8px 12px; text-align: left; }
.page-content th { background: var(--bg-secondary); }

.page-content blockquote {
  margin: 16px 0;
  padding: 4px 16px;
  border-left: 4px solid var(--accent);
  background: var(--bg-secondary);
  color: var(--text-secondary);
}

.rfc-tag {
  display: inline-block;
  font-size: 12px;
  font-weight: 600;
  padding: 2px 8px;
  border-radius: 10px;
  background: var(--accent-light);
  color: var(--accent);
}

.article-list { list-style: none; padding: 0; }
.article-list li { margin-bottom: 16px; }
.article-list li > a { font-weight: 600; font-size: 17px; }
.article-list li p { margin: 4px 0 0; color: var(--text-secondary); font-size: 14px; }

/* ============ Expandable sections ============ */
.page-content details {
  border: 1px solid var(--border);
  border-radius: 8px;
  margin: 16px 0;
  background: var(--bg-secondary);
}
.page-content summary {
  cursor: pointer;
  padding: 10px 14px;
  font-weight: 600;
  user-select: none;
}
.page-content details[open] summary { border-bottom: 1px solid var(--border); }
.page-content details > *:not(summary) { margin-left: 14px; margin-right: 14px; }

/* ============ Diagrams ============ */
.diagram {
  margin: 20px 0;
  padding: 16px;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--bg-secondary);
  text-align: center;
  overflow-x: auto;
}
.diagram.loading { color: var(--text-muted); font-style: italic; }
.diagram.diagram-error {
  border-color: #e03131;
  background: rgba(224, 49, 49, 0.08);
  color: #e03131;
  font-family: "SF Mono", Menlo, Consolas, monospace;
  font-size: 13px;
  text-align: left;
}

/* ============ Glossary triggers & popup ============ */
.glossary-term {
  border-bottom: 1px dashed var(--accent);
  cursor: pointer;
  color: inherit;
}
.glossary-term:hover, .glossary-term:focus {
  background: var(--accent-light);
  outline: none;
}

.glossary-popup {
  position: fixed;
  width: 320px;
  max-height: 60vh;
  overflow-y: auto;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 10px;
  box-shadow: var(--shadow-lg);
  padding: 14px 16px;
  z-index: 200;
  font-size: 14px;
}
.glossary-popup.modal {
  inset: 0;
  width: auto;
  max-height: none;
  border-radius: 0;
  padding: 24px 20px;
}

.popup-header { display: flex; align-items: center; gap: 8px; margin-bottom: 8px; }
.popup-term { font-weight: 700; font-size: 16px; flex: 1; }
.popup-badge {
  font-size: 11px;
  font-weight: 600;
  padding: 2px 8px;
  border-radius: 10px;
  text-transform: capitalize;
}
.popup-close {
  background: none;
  border: none;
  color: var(--text-muted);
  font-size: 18px;
  cursor: pointer;
  padding: 0 4px;
  line-height: 1;
}
.popup-close:hover { color: var(--text); }

.popup-definition { color: var(--text-secondary); margin: 0 0 10px; }

.popup-related { display: flex; flex-wrap: wrap; gap: 6px; }
.related-chip {
  font-size: 12px;
  padding: 3px 10px;
  border-radius: 12px;
  border: 1px solid var(--border);
  background: var(--bg-secondary);
  color: var(--text-secondary);
  cursor: pointer;
}
.related-chip:hover { border-color: var(--accent); color: var(--accent); }
.related-more {
  font-size: 12px;
  padding: 3px 10px;
  border: none;
  background: none;
  color: var(--text-muted);
  cursor: pointer;
}
.related-more:hover { color: var(--accent); }

/* ============ Responsive ============ */
@media (max-width: 768px) {
  .sidebar { transform: translateX(-100%); transition: transform 0.2s; }
  .sidebar.open { transform: translateX(0); }
  .content { margin-left: 0; }
  .menu-toggle { display: flex; }
}
`

// jsContent is the page runtime: theme switching, mermaid rendering,
// sidebar search, and the glossary popup. Geometry constants and the
// dark diagram theme are injected at generate time.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  // Injected at build time.
  var PANEL_WIDTH = __PANEL_WIDTH__;
  var PANEL_HEIGHT_ESTIMATE = __PANEL_HEIGHT_ESTIMATE__;
  var VERTICAL_OFFSET = __VERTICAL_OFFSET__;
  var SMALL_VIEWPORT_BREAKPOINT = __SMALL_VIEWPORT_BREAKPOINT__;
  var MAX_RELATED_COMPACT = __MAX_RELATED_COMPACT__;
  var MERMAID_DARK = __MERMAID_DARK_THEME__;

  function basePath() {
    var link = document.querySelector("link[rel=stylesheet]");
    return link ? link.getAttribute("href").replace("style.css", "") : "";
  }

  function escapeHtml(str) {
    var div = document.createElement("div");
    div.textContent = str;
    return div.innerHTML;
  }

  // ===== Theme =====
  function storedTheme() {
    try { return localStorage.getItem("rfcpress-theme"); } catch (e) { return null; }
  }

  function resolveTheme() {
    var stored = storedTheme();
    if (stored) return stored;
    var def = html.getAttribute("data-default-theme") || "auto";
    if (def !== "auto") return def;
    if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) return "dark";
    return "light";
  }

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("rfcpress-theme", theme); } catch (e) {}
    renderDiagrams();
  }

  html.setAttribute("data-theme", resolveTheme());

  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme") || "light";
      setTheme(current === "dark" ? "light" : "dark");
    });
  }

  // ===== Diagrams =====
  // Each .diagram.mermaid div carries its source as text. Rendering is
  // asynchronous; a generation counter per element makes sure a stale
  // render (e.g. from a rapid theme toggle) never overwrites a newer one.
  var diagramSources = {};
  var diagramGen = {};

  function mermaidConfig(dark) {
    var cfg = { startOnLoad: false, securityLevel: "strict", theme: dark ? MERMAID_DARK.base : "default" };
    if (dark && MERMAID_DARK.variables) cfg.themeVariables = MERMAID_DARK.variables;
    return cfg;
  }

  function renderDiagrams() {
    if (typeof mermaid === "undefined") return;
    var dark = html.getAttribute("data-theme") === "dark";
    mermaid.initialize(mermaidConfig(dark));

    document.querySelectorAll(".diagram.mermaid").forEach(function(el) {
      var id = el.id;
      if (!id) return;
      if (!(id in diagramSources)) diagramSources[id] = el.textContent;
      var gen = (diagramGen[id] || 0) + 1;
      diagramGen[id] = gen;

      el.classList.add("loading");
      el.textContent = "Rendering diagram...";

      mermaid.render(id + "-svg-" + gen, diagramSources[id]).then(function(result) {
        if (diagramGen[id] !== gen) return;
        el.classList.remove("loading");
        el.innerHTML = result.svg;
      }).catch(function(err) {
        if (diagramGen[id] !== gen) return;
        el.classList.remove("loading");
        el.classList.add("diagram-error");
        el.textContent = "Diagram failed to render: " + (err && err.message ? err.message : err);
      });
    });
  }

  renderDiagrams();

  // ===== Sidebar toggle (mobile) =====
  var menuToggle = document.getElementById("menu-toggle");
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");

  function toggleSidebar() {
    sidebar.classList.toggle("open");
    overlay.classList.toggle("visible");
  }

  if (menuToggle) menuToggle.addEventListener("click", toggleSidebar);
  if (overlay) overlay.addEventListener("click", toggleSidebar);

  // ===== Sidebar search =====
  var searchInput = document.getElementById("search-input");
  var sidebarNav = document.getElementById("sidebar-nav");
  var searchIndex = null;

  fetch(basePath() + "search-index.json")
    .then(function(r) { return r.json(); })
    .then(function(data) { searchIndex = data; })
    .catch(function() { searchIndex = null; });

  if (searchInput && sidebarNav) {
    searchInput.addEventListener("input", function() {
      var query = this.value.toLowerCase().trim();
      var items = sidebarNav.querySelectorAll("li.nav-article");

      if (query === "") {
        items.forEach(function(item) { item.classList.remove("hidden"); });
        return;
      }

      var matching = new Set();
      if (searchIndex) {
        searchIndex.forEach(function(entry) {
          var haystack = (entry.title + " " + (entry.rfc || "") + " " + (entry.summary || "") + " " + entry.content).toLowerCase();
          if (haystack.indexOf(query) !== -1) matching.add(entry.path);
        });
      }

      items.forEach(function(item) {
        var link = item.querySelector("a");
        if (!link) return;
        var text = link.textContent.toLowerCase();
        var href = link.getAttribute("href").replace(/^(\.\.\/)*/, "");
        var match = text.indexOf(query) !== -1 || matching.has(href);
        item.classList.toggle("hidden", !match);
      });
    });
  }

  // ===== Glossary popup =====
  // One popup at a time. Triggering while open closes the old popup and
  // opens a fresh one; dismissal clears everything.
  var glossary = null;       // id -> entry
  var popupEl = null;        // the open popup element, or null
  var popupAnchor = null;    // the anchor point the open popup was placed for

  fetch(basePath() + "glossary.json")
    .then(function(r) { return r.json(); })
    .then(function(data) {
      glossary = {};
      (data.terms || []).forEach(function(e) { glossary[e.id] = e; });
    })
    .catch(function() { glossary = null; });

  function isSmallViewport() {
    return window.innerWidth < SMALL_VIEWPORT_BREAKPOINT;
  }

  // Placement mirrors the build-side geometry: clamp to the right
  // viewport edge, flip above the anchor in the lower half of the
  // viewport. Top is deliberately unclamped.
  function placePanel(el, anchor) {
    var left = Math.min(anchor.x, window.innerWidth - PANEL_WIDTH);
    var top;
    if (anchor.y > window.innerHeight / 2) {
      top = anchor.y - PANEL_HEIGHT_ESTIMATE;
    } else {
      top = anchor.y + VERTICAL_OFFSET;
    }
    el.style.left = left + "px";
    el.style.top = top + "px";
  }

  function applyLayout(el, anchor) {
    if (isSmallViewport()) {
      el.classList.add("modal");
      el.style.left = "";
      el.style.top = "";
    } else {
      el.classList.remove("modal");
      placePanel(el, anchor);
    }
  }

  function dismissPopup() {
    if (popupEl) {
      popupEl.remove();
      popupEl = null;
      popupAnchor = null;
    }
  }

  function relatedChips(entry, expanded) {
    var ids = entry.related || [];
    var chips = [];
    ids.forEach(function(rid) {
      var rel = glossary[rid];
      if (rel) chips.push(rel);
    });

    var limit = (!isSmallViewport() && !expanded) ? MAX_RELATED_COMPACT : chips.length;
    var out = "";
    chips.slice(0, limit).forEach(function(rel) {
      out += '<button class="related-chip" data-term-id="' + escapeHtml(rel.id) + '">' + escapeHtml(rel.term) + "</button>";
    });
    if (chips.length > limit) {
      out += '<button class="related-more">+' + (chips.length - limit) + " more</button>";
    }
    return out;
  }

  function buildPopup(entry, anchor) {
    var el = document.createElement("div");
    el.className = "glossary-popup";

    var category = entry.category || "general";
    var label = category.charAt(0).toUpperCase() + category.slice(1);

    el.innerHTML =
      '<div class="popup-header">' +
      '<span class="popup-term">' + escapeHtml(entry.term) + "</span>" +
      '<span class="popup-badge badge-' + escapeHtml(category) + '">' + escapeHtml(label) + "</span>" +
      '<button class="popup-close" aria-label="Close">&times;</button>' +
      "</div>" +
      '<p class="popup-definition">' + escapeHtml(entry.definition) + "</p>" +
      '<div class="popup-related">' + relatedChips(entry, false) + "</div>";

    el.querySelector(".popup-close").addEventListener("click", dismissPopup);

    var moreBtn = el.querySelector(".related-more");
    if (moreBtn) {
      moreBtn.addEventListener("click", function() {
        el.querySelector(".popup-related").innerHTML = relatedChips(entry, true);
        wireChips(el, anchor);
      });
    }

    wireChips(el, anchor);
    return el;
  }

  function wireChips(el, anchor) {
    el.querySelectorAll(".related-chip").forEach(function(chip) {
      chip.addEventListener("click", function() {
        openPopup(chip.getAttribute("data-term-id"), anchor);
      });
    });
  }

  function openPopup(termID, anchor) {
    if (!glossary) return;
    var entry = glossary[termID];
    if (!entry) {
      console.warn("glossary: no entry for " + termID);
      return;
    }

    dismissPopup();

    popupEl = buildPopup(entry, anchor);
    popupAnchor = anchor;
    document.body.appendChild(popupEl);
    applyLayout(popupEl, anchor);
  }

  document.querySelectorAll(".glossary-term").forEach(function(span) {
    function trigger(e) {
      var rect = span.getBoundingClientRect();
      openPopup(span.getAttribute("data-term-id"), { x: rect.left, y: rect.bottom });
      e.stopPropagation();
    }
    span.addEventListener("click", trigger);
    span.addEventListener("keydown", function(e) {
      if (e.key === "Enter" || e.key === " ") {
        e.preventDefault();
        trigger(e);
      }
    });
  });

  // Dismissal: pointer-down outside the popup, or Escape. In modal
  // layout the popup covers the viewport, so outside-dismissal cannot
  // fire; the close button and Escape still work.
  document.addEventListener("pointerdown", function(e) {
    if (popupEl && !popupEl.contains(e.target)) dismissPopup();
  });

  document.addEventListener("keydown", function(e) {
    if (e.key === "Escape") dismissPopup();
  });

  // Resize reclassifies the open popup between panel and modal layout.
  window.addEventListener("resize", function() {
    if (popupEl && popupAnchor) applyLayout(popupEl, popupAnchor);
  });

  // ===== Live reload (dev server only) =====
  if (location.protocol === "http:" || location.protocol === "https:") {
    try {
      var proto = location.protocol === "https:" ? "wss:" : "ws:";
      var ws = new WebSocket(proto + "//" + location.host + "/livereload");
      ws.onmessage = function() { location.reload(); };
      ws.onerror = function() { ws.close(); };
    } catch (e) { /* static hosting, no dev server */ }
  }
})();
`
