package config

import (
	"net/url"
	"strings"
)

// FeedURL renders the feed URL for one company by substituting the
// query-escaped company name into the configured template.
func (c *WatchConfig) FeedURL(company string) string {
	return strings.ReplaceAll(c.FeedURLTemplate, companyPlaceholder, url.QueryEscape(company))
}
