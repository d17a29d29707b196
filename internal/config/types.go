package config

// DefaultTheme selects the theme a page starts in before the reader
// toggles it.
type DefaultTheme string

const (
	ThemeLight DefaultTheme = "light"
	ThemeDark  DefaultTheme = "dark"
	ThemeAuto  DefaultTheme = "auto" // follow the OS preference
)

// Config is the top-level rfcpress configuration, corresponding to
// rfcpress.yml.
type Config struct {
	SiteName   string       `yaml:"site_name" koanf:"site_name"`
	ContentDir string       `yaml:"content_dir" koanf:"content_dir"`
	OutputDir  string       `yaml:"output_dir" koanf:"output_dir"`
	DataDir    string       `yaml:"data_dir" koanf:"data_dir"`
	Glossary   string       `yaml:"glossary" koanf:"glossary"` // relative to content_dir
	Theme      DefaultTheme `yaml:"theme" koanf:"theme"`
	Port       int          `yaml:"port" koanf:"port"`
	Include    []string     `yaml:"include" koanf:"include"`
	Exclude    []string     `yaml:"exclude" koanf:"exclude"`
}
