package feed

import (
	"testing"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Company News</title>
    <link>https://news.example.com</link>
    <item>
      <title>Bosch opens new plant in Hungary</title>
      <link>https://news.example.com/bosch-plant</link>
      <guid>bosch-plant-guid</guid>
      <description>capacity expansion ongoing</description>
      <pubDate>Fri, 14 Mar 2025 09:30:00 GMT</pubDate>
      <category>manufacturing</category>
    </item>
    <item>
      <title>Untimed item</title>
      <guid>untimed-guid</guid>
      <description>no pubDate here</description>
    </item>
  </channel>
</rss>`

func TestParser_Run(t *testing.T) {
	parser := NewParser()

	items, err := parser.Run([]byte(sampleRSS), "Bosch")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.Title != "Bosch opens new plant in Hungary" {
		t.Errorf("Unexpected title: '%s'", first.Title)
	}
	if first.Summary != "capacity expansion ongoing" {
		t.Errorf("Unexpected summary: '%s'", first.Summary)
	}
	if first.Link != "https://news.example.com/bosch-plant" {
		t.Errorf("Unexpected link: '%s'", first.Link)
	}
	if first.GUID != "bosch-plant-guid" {
		t.Errorf("Unexpected guid: '%s'", first.GUID)
	}
	if first.CompanyHint != "Bosch" {
		t.Errorf("Expected company hint 'Bosch', got '%s'", first.CompanyHint)
	}
	if first.PublishedParsed == nil {
		t.Error("Expected parsed publication date")
	}
}

func TestParser_Run_RawPayloadPreserved(t *testing.T) {
	parser := NewParser()

	items, err := parser.Run([]byte(sampleRSS), "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	raw := items[0].Raw
	if raw == nil {
		t.Fatal("Expected raw payload map")
	}
	if raw["title"] != "Bosch opens new plant in Hungary" {
		t.Errorf("Expected raw title preserved, got %v", raw["title"])
	}
	// Fields unused by classification survive in the raw payload.
	if _, ok := raw["categories"]; !ok {
		t.Error("Expected categories preserved in raw payload")
	}
}

func TestParser_Run_MissingDates(t *testing.T) {
	parser := NewParser()

	items, err := parser.Run([]byte(sampleRSS), "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	second := items[1]
	if second.PublishedParsed != nil || second.Published != "" {
		t.Errorf("Expected no publication date, got parsed=%v raw='%s'",
			second.PublishedParsed, second.Published)
	}
	if second.Link != "" {
		t.Errorf("Expected empty link, got '%s'", second.Link)
	}
	if second.GUID != "untimed-guid" {
		t.Errorf("Expected guid fallback candidate, got '%s'", second.GUID)
	}
}

func TestParser_Run_InvalidData(t *testing.T) {
	parser := NewParser()

	_, err := parser.Run([]byte("not a feed"), "")
	if err == nil {
		t.Error("Expected error for unparseable feed data")
	}
}
