package signal

import (
	"cmp"
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// NoSignal is the SignalType rendering for an item matching zero rules.
const NoSignal = "none"

// ErrMissingURL marks an item whose link and guid are both empty. Such a
// record has no dedup identity and must not be upserted.
var ErrMissingURL = errors.New("item has no link or guid")

// Builder assembles normalized records from raw items and the detector
// and classifier outputs.
type Builder struct {
	source string
}

func NewBuilder(source string) *Builder {
	return &Builder{source: source}
}

func (b *Builder) Run(item RawItem, company string, categories []string, score int) (Record, error) {
	url := cmp.Or(item.Link, item.GUID)
	if url == "" {
		return Record{}, ErrMissingURL
	}

	record := Record{
		Company:     company,
		SignalType:  NoSignal,
		Title:       item.Title,
		URL:         url,
		PublishedAt: b.publishedAt(item),
		Source:      b.source,
		Score:       score,
		Raw:         item.Raw,
	}

	if len(categories) > 0 {
		record.SignalType = strings.Join(categories, ",")
	}

	return record, nil
}

// publishedAt normalizes the publication timestamp: the pre-parsed publish
// date, then the raw publish string, then the updated date as a fallback.
// A record is never rejected over a bad timestamp; nil means no parseable
// source timestamp exists.
func (b *Builder) publishedAt(item RawItem) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	if item.Published != "" {
		if ts, err := dateparse.ParseAny(item.Published); err == nil {
			return &ts
		}
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed
	}
	if item.Updated != "" {
		if ts, err := dateparse.ParseAny(item.Updated); err == nil {
			return &ts
		}
	}
	return nil
}
