package config

// DefaultExcludes are content glob patterns excluded from the site by
// default.
var DefaultExcludes = []string{
	"drafts/**",
	"README.md",
	"**/_*.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:   "RFC Field Guide",
		ContentDir: "content",
		OutputDir:  "public",
		DataDir:    ".rfcpress",
		Glossary:   "glossary.yml",
		Theme:      ThemeAuto,
		Port:       8080,
		Include:    []string{"**/*.md"},
		Exclude:    DefaultExcludes,
	}
}
