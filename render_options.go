package mdhtml

// RenderOption configures Render and HTTPRender.
type RenderOption func(*renderConfig)

type renderConfig struct {
	frontMatter bool
	validate    bool
}

// WithFrontMatter enables or disables stripping of a leading front matter
// block (YAML, TOML or JSON) before conversion.
func WithFrontMatter(strip bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.frontMatter = strip
	}
}

// WithValidation rejects input that is not valid UTF-8 or looks binary.
func WithValidation(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.validate = enabled
	}
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
