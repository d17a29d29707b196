package diagram

// Theme is a configuration preset handed to the rendering library. Dark
// mode overrides the named color variables for contrast; this is pure
// configuration selection, nothing is computed.
type Theme struct {
	Mode      string            `json:"mode"`
	Base      string            `json:"base"` // mermaid base theme name
	Variables map[string]string `json:"variables,omitempty"`
}

// Config is the per-attempt configuration for a Renderer.
type Config struct {
	Token string
	Theme Theme
}

// ConfigFor selects the theme preset for a request.
func ConfigFor(req Request) Config {
	theme := Light()
	if req.Dark {
		theme = Dark()
	}
	return Config{Token: req.Token, Theme: theme}
}

// Light is the default preset; mermaid's own defaults are left alone.
func Light() Theme {
	return Theme{Mode: "light", Base: "default"}
}

// Dark overrides the color variables that otherwise lack contrast on a
// dark page background.
func Dark() Theme {
	return Theme{
		Mode: "dark",
		Base: "dark",
		Variables: map[string]string{
			"primaryColor":         "#1e2430",
			"primaryTextColor":     "#e9ecef",
			"primaryBorderColor":   "#4dabf7",
			"secondaryColor":       "#252c3a",
			"secondaryTextColor":   "#dee2e6",
			"secondaryBorderColor": "#3b5bdb",
			"tertiaryColor":        "#2b3245",
			"tertiaryTextColor":    "#ced4da",
			"tertiaryBorderColor":  "#5c7cfa",
			"lineColor":            "#868e96",
			"textColor":            "#e9ecef",
			"mainBkg":              "#1e2430",
			"nodeBorder":           "#4dabf7",
			"clusterBkg":           "#161b26",
			"clusterBorder":        "#343a40",
			"edgeLabelBackground":  "#161b26",
			"actorBkg":             "#1e2430",
			"actorBorder":          "#4dabf7",
			"actorTextColor":       "#e9ecef",
			"signalColor":          "#868e96",
			"signalTextColor":      "#dee2e6",
			"labelBoxBkgColor":     "#252c3a",
			"noteBkgColor":         "#332b00",
			"noteTextColor":        "#ffe066",
		},
	}
}
