package config

import (
	"github.com/intentradar/intent-radar/app/signal"
)

// WatchConfig is the full watch configuration: which companies to track,
// which keyword rules classify intent signals, and where the news feed
// for a company lives. Loaded once at startup, immutable afterwards.
type WatchConfig struct {
	Source          string        `yaml:"source"`
	FeedURLTemplate string        `yaml:"feed_url_template"`
	MinScore        int           `yaml:"min_score"`
	Companies       []string      `yaml:"companies"`
	Signals         []signal.Rule `yaml:"signals"`
}
