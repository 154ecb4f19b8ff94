package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/clubfeed/fixture-export/internal/logger"
	"github.com/clubfeed/fixture-export/internal/record"
)

// embeddedPatterns match inline assignments like `fixtures = [...]` or
// `"matches": [...]` inside script blocks. Tried in order; the first pattern
// whose captured list decodes as JSON wins for that block.
var embeddedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)fixtures["']?\s*[:=]\s*(\[.*?\])`),
	regexp.MustCompile(`(?is)matches["']?\s*[:=]\s*(\[.*?\])`),
	regexp.MustCompile(`(?is)data["']?\s*[:=]\s*(\[.*?\])`),
}

// embeddedStrategy scans script blocks for inline fixture data. Pages that
// render fixtures client-side often ship the data this way.
type embeddedStrategy struct{}

func (embeddedStrategy) Name() string { return "embedded" }

func (embeddedStrategy) Attempt(src *Source) []record.Record {
	doc, err := src.Document()
	if err != nil {
		return nil
	}

	var records []record.Record
	doc.Find("script").Each(func(_ int, script *goquery.Selection) {
		text := script.Text()
		lower := strings.ToLower(text)
		if !strings.Contains(lower, "fixtures") && !strings.Contains(lower, "matches") {
			return
		}
		records = append(records, scanScript(text)...)
	})
	return records
}

// scanScript applies the pattern templates to one script body. Decode
// failures for one pattern fall through to the next; total failure yields no
// records and is never fatal.
func scanScript(text string) []record.Record {
	for _, pattern := range embeddedPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		var list []any
		if err := json.Unmarshal([]byte(m[1]), &list); err != nil {
			logger.Debug("embedded data candidate did not decode", logger.Fields{
				"pattern": pattern.String(),
			})
			continue
		}
		return recordsFromList(list)
	}
	return nil
}
