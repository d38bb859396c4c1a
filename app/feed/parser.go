package feed

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/intentradar/intent-radar/app/signal"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses feed data into raw items, attaching the company hint (the
// company the feed was fetched for, empty for generic feeds) to each.
func (p *Parser) Run(data []byte, companyHint string) ([]signal.RawItem, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]signal.RawItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		items = append(items, p.normalizeItem(item, companyHint))
	}

	return items, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item, companyHint string) signal.RawItem {
	normalized := signal.RawItem{
		Title:       item.Title,
		Summary:     cmp.Or(item.Description, item.Content),
		Link:        item.Link,
		GUID:        item.GUID,
		Published:   item.Published,
		Updated:     item.Updated,
		CompanyHint: companyHint,
		Raw:         rawPayload(item),
	}

	if item.PublishedParsed != nil {
		normalized.PublishedParsed = item.PublishedParsed
	}

	if item.UpdatedParsed != nil {
		normalized.UpdatedParsed = item.UpdatedParsed
	}

	return normalized
}

// rawPayload preserves the complete original item through a JSON round
// trip, including fields classification never reads. Stored for future
// reprocessing.
func rawPayload(item *gofeed.Item) map[string]interface{} {
	data, err := json.Marshal(item)
	if err != nil {
		return map[string]interface{}{"title": item.Title, "link": item.Link}
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return map[string]interface{}{"title": item.Title, "link": item.Link}
	}

	return raw
}
