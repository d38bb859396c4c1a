package signal

import (
	"errors"
	"testing"
	"time"
)

func TestBuilder_Run_BasicRecord(t *testing.T) {
	builder := NewBuilder("google_news")
	published := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	item := RawItem{
		Title:           "Bosch opens new plant in Hungary",
		Summary:         "capacity expansion ongoing",
		Link:            "https://example.com/bosch-plant",
		GUID:            "guid-1",
		PublishedParsed: &published,
		Raw:             map[string]interface{}{"title": "Bosch opens new plant in Hungary"},
	}

	record, err := builder.Run(item, "Bosch", []string{"capacity"}, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if record.Company != "Bosch" {
		t.Errorf("Expected company 'Bosch', got '%s'", record.Company)
	}
	if record.SignalType != "capacity" {
		t.Errorf("Expected signal_type 'capacity', got '%s'", record.SignalType)
	}
	if record.URL != "https://example.com/bosch-plant" {
		t.Errorf("Expected link to win over guid, got '%s'", record.URL)
	}
	if record.Source != "google_news" {
		t.Errorf("Expected source 'google_news', got '%s'", record.Source)
	}
	if record.Score != 2 {
		t.Errorf("Expected score 2, got %d", record.Score)
	}
	if record.PublishedAt == nil || !record.PublishedAt.Equal(published) {
		t.Errorf("Expected published_at %v, got %v", published, record.PublishedAt)
	}
	if record.Raw == nil {
		t.Error("Expected raw payload to be preserved")
	}
}

func TestBuilder_Run_MultipleCategoriesCommaJoined(t *testing.T) {
	builder := NewBuilder("google_news")

	item := RawItem{Link: "https://example.com/a"}
	record, err := builder.Run(item, "Siemens", []string{"product_launch", "partnership"}, 6)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if record.SignalType != "product_launch,partnership" {
		t.Errorf("Expected 'product_launch,partnership', got '%s'", record.SignalType)
	}
}

func TestBuilder_Run_EmptyMatchRendersNone(t *testing.T) {
	builder := NewBuilder("google_news")

	item := RawItem{Link: "https://example.com/b"}
	record, err := builder.Run(item, UnknownCompany, nil, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if record.SignalType != NoSignal {
		t.Errorf("Expected '%s', got '%s'", NoSignal, record.SignalType)
	}
	if record.Score != 0 {
		t.Errorf("Expected score 0, got %d", record.Score)
	}
}

func TestBuilder_Run_GUIDFallback(t *testing.T) {
	builder := NewBuilder("google_news")

	item := RawItem{GUID: "urn:item:42"}
	record, err := builder.Run(item, "Bosch", nil, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if record.URL != "urn:item:42" {
		t.Errorf("Expected guid fallback, got '%s'", record.URL)
	}
}

func TestBuilder_Run_MissingURLRejected(t *testing.T) {
	builder := NewBuilder("google_news")

	_, err := builder.Run(RawItem{Title: "No identity"}, "Bosch", []string{"capacity"}, 2)

	if !errors.Is(err, ErrMissingURL) {
		t.Errorf("Expected ErrMissingURL, got %v", err)
	}
}

func TestBuilder_Run_TimestampStringFallback(t *testing.T) {
	builder := NewBuilder("google_news")

	item := RawItem{
		Link:      "https://example.com/c",
		Published: "Mon, 02 Jan 2006 15:04:05 MST",
	}
	record, err := builder.Run(item, "Bosch", nil, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if record.PublishedAt == nil {
		t.Fatal("Expected published_at parsed from raw string")
	}
	if record.PublishedAt.Year() != 2006 {
		t.Errorf("Expected year 2006, got %d", record.PublishedAt.Year())
	}
}

func TestBuilder_Run_UpdatedFallback(t *testing.T) {
	builder := NewBuilder("google_news")
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	item := RawItem{
		Link:          "https://example.com/d",
		Published:     "not a date at all",
		UpdatedParsed: &updated,
	}
	record, err := builder.Run(item, "Bosch", nil, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if record.PublishedAt == nil || !record.PublishedAt.Equal(updated) {
		t.Errorf("Expected fallback to updated date %v, got %v", updated, record.PublishedAt)
	}
}

func TestBuilder_Run_UnparseableTimestampsYieldNil(t *testing.T) {
	builder := NewBuilder("google_news")

	item := RawItem{
		Link:      "https://example.com/e",
		Published: "yesterday-ish",
		Updated:   "sometime soon",
	}
	record, err := builder.Run(item, "Bosch", []string{"hiring"}, 1)
	if err != nil {
		t.Fatalf("Record construction must not fail on bad timestamps: %v", err)
	}

	if record.PublishedAt != nil {
		t.Errorf("Expected nil published_at, got %v", record.PublishedAt)
	}
}

func TestBuilder_Run_EmptyTitlePreserved(t *testing.T) {
	builder := NewBuilder("google_news")

	record, err := builder.Run(RawItem{Link: "https://example.com/f"}, "Bosch", nil, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if record.Title != "" {
		t.Errorf("Expected empty title copied through, got '%s'", record.Title)
	}
}
