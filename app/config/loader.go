package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/intentradar/intent-radar/app/signal"
)

const companyPlaceholder = "{company}"

// Loader handles loading and validation of the watch configuration
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, defaults, and validates the watch configuration file
func (l *Loader) Load() (*WatchConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read watch config: %w", err)
	}

	var config WatchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&config)

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid watch config %s: %w", l.path, err)
	}

	slog.Debug("Watch configuration loaded", "path", l.path,
		"companies", len(config.Companies), "signals", len(config.Signals))

	return &config, nil
}

// setDefaults applies default values to configuration
func (l *Loader) setDefaults(config *WatchConfig) {
	if config.Source == "" {
		config.Source = "google_news"
	}
	if config.FeedURLTemplate == "" {
		config.FeedURLTemplate = "https://news.google.com/rss/search?q=%22" + companyPlaceholder + "%22&hl=en-US&gl=US&ceid=US:en"
	}
	if config.MinScore == 0 {
		config.MinScore = 1
	}
	if len(config.Signals) == 0 {
		config.Signals = signal.DefaultRules()
	}
}

// validate validates the configuration. A configuration with no companies
// or no usable rules cannot drive a run and is rejected outright.
func (l *Loader) validate(config *WatchConfig) error {
	if len(config.Companies) == 0 {
		return fmt.Errorf("at least one company is required")
	}
	for i, company := range config.Companies {
		if strings.TrimSpace(company) == "" {
			return fmt.Errorf("company at index %d is empty", i)
		}
	}

	if !strings.Contains(config.FeedURLTemplate, companyPlaceholder) {
		return fmt.Errorf("feed_url_template must contain %s", companyPlaceholder)
	}

	if config.MinScore < 1 {
		return fmt.Errorf("min_score must be positive")
	}

	seen := make(map[string]bool)
	for i, rule := range config.Signals {
		if rule.Category == "" {
			return fmt.Errorf("signal rule at index %d has no category", i)
		}
		if seen[rule.Category] {
			return fmt.Errorf("duplicate signal category: %s", rule.Category)
		}
		seen[rule.Category] = true

		if rule.Points <= 0 {
			return fmt.Errorf("signal rule %s must have positive points", rule.Category)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("signal rule %s must have at least one keyword", rule.Category)
		}
		for _, keyword := range rule.Keywords {
			if strings.TrimSpace(keyword) == "" {
				return fmt.Errorf("signal rule %s contains an empty keyword", rule.Category)
			}
		}
	}

	return nil
}
