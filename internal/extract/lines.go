package extract

import (
	"strings"
	"time"

	"github.com/clubfeed/fixture-export/internal/record"
)

// maxLineRecords bounds how much noise the lowest-confidence path can emit.
const maxLineRecords = 10

// lineKeywords mark a raw text line as a fixture candidate. Matched
// case-insensitively.
var lineKeywords = []string{"fixture", "match", "vs", "v ", "-"}

// ExtractionMethodLineScan names the lowest-confidence extraction path in
// emitted records.
const ExtractionMethodLineScan = "line_scan"

// lineStrategy is the terminal fallback: scan raw text lines for fixture
// keywords and capture the first matches verbatim.
type lineStrategy struct{}

func (lineStrategy) Name() string { return "lines" }

func (lineStrategy) Attempt(src *Source) []record.Record {
	now := time.Now().UTC().Format(time.RFC3339)

	var records []record.Record
	for _, line := range strings.Split(src.Body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !matchesLineKeyword(line) {
			continue
		}

		records = append(records, record.Record{
			"raw_text":          record.String(line),
			"extracted_at":      record.String(now),
			"extraction_method": record.String(ExtractionMethodLineScan),
		})
		if len(records) == maxLineRecords {
			break
		}
	}
	return records
}

func matchesLineKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range lineKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
