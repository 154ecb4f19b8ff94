package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/clubfeed/fixture-export/internal/record"
)

// rowStrategy extracts fixtures from table rows. Each cell is classified by
// content pattern, first match wins, and a cell never contributes to two
// fields. Every non-empty cell is additionally kept under a positional
// col_N field so nothing is silently dropped.
type rowStrategy struct{}

func (rowStrategy) Name() string { return "rows" }

func (rowStrategy) Attempt(src *Source) []record.Record {
	doc, err := src.Document()
	if err != nil {
		return nil
	}

	var records []record.Record
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if rec, ok := extractRow(row); ok {
			records = append(records, rec)
		}
	})
	return records
}

// extractRow maps one table row to a record. A row only qualifies when at
// least one cell classified into a recognized field and the row has two or
// more populated cells; that keeps header and spacer rows out.
func extractRow(row *goquery.Selection) (record.Record, bool) {
	rec := record.Record{}
	semantic := 0
	cells := 0

	row.ChildrenFiltered("td, th").Each(func(i int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())
		if text == "" {
			return
		}
		cells++

		if classifyCell(rec, text) {
			semantic++
		}
		rec.Set(fmt.Sprintf("col_%d", i), record.String(text))
	})

	if semantic == 0 || cells < 2 {
		return nil, false
	}
	return rec, true
}

// classifyCell assigns text to a recognized field. Precedence: date, then
// time, then score or team pair. Returns false when no pattern applies.
func classifyCell(rec record.Record, text string) bool {
	digits := hasDigit(text)

	switch {
	case strings.ContainsAny(text, "/-") && digits:
		return rec.SetOnce("date", record.String(text))

	case strings.Contains(text, ":") && digits:
		return rec.SetOnce("time", record.String(text))

	case strings.Contains(text, "-") || containsVersus(text):
		if digits {
			return rec.SetOnce("score", record.String(text))
		}
		home, away, ok := splitTeams(text)
		if !ok {
			return false
		}
		// A team pair is only set once per row; later matching cells do not
		// overwrite it.
		if _, present := rec["home_team"]; present {
			return false
		}
		rec.Set("home_team", record.String(home))
		rec.Set("away_team", record.String(away))
		return true
	}
	return false
}

// versusMarkers are checked in order; the earliest occurrence in the text
// decides the split point.
var versusMarkers = []string{" vs ", " v "}

func containsVersus(text string) bool {
	for _, m := range versusMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// splitTeams splits a team-pair cell on the first versus marker.
func splitTeams(text string) (home, away string, ok bool) {
	at, width := -1, 0
	for _, m := range versusMarkers {
		if i := strings.Index(text, m); i >= 0 && (at < 0 || i < at) {
			at, width = i, len(m)
		}
	}
	if at < 0 {
		return "", "", false
	}
	home = strings.TrimSpace(text[:at])
	away = strings.TrimSpace(text[at+width:])
	if home == "" || away == "" {
		return "", "", false
	}
	return home, away, true
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// blockContainers matches elements that look like fixture containers. The
// block strategy only runs when no table row yielded anything.
const blockContainers = "[class*='fixture'], [class*='match'], [class*='result']"

// blockStrategy extracts fixtures from labeled markup blocks by class-name
// substring matching on descendant nodes.
type blockStrategy struct{}

func (blockStrategy) Name() string { return "blocks" }

func (blockStrategy) Attempt(src *Source) []record.Record {
	doc, err := src.Document()
	if err != nil {
		return nil
	}

	var records []record.Record
	doc.Find(blockContainers).Each(func(_ int, block *goquery.Selection) {
		// Nested containers would duplicate their parent's content; only the
		// outermost container of a subtree is extracted.
		if block.ParentsFiltered(blockContainers).Length() > 0 {
			return
		}
		if rec, ok := extractBlock(block); ok {
			records = append(records, rec)
		}
	})
	return records
}

// extractBlock walks a container's classed descendants and assigns fields by
// class substring. A block with no recognized descendants falls back to its
// entire text as one raw field.
func extractBlock(block *goquery.Selection) (record.Record, bool) {
	rec := record.Record{}
	teams := 0

	block.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		class = strings.ToLower(class)
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}

		switch {
		case strings.Contains(class, "date") || strings.Contains(class, "day"):
			rec.SetOnce("date", record.String(text))
		case strings.Contains(class, "time"):
			rec.SetOnce("time", record.String(text))
		case strings.Contains(class, "team") || strings.Contains(class, "club"):
			// First two matches become home and away in document order.
			switch teams {
			case 0:
				rec.Set("home_team", record.String(text))
				teams++
			case 1:
				rec.Set("away_team", record.String(text))
				teams++
			}
		case strings.Contains(class, "score"):
			rec.SetOnce("score", record.String(text))
		}
	})

	if rec.Len() > 0 {
		return rec, true
	}

	// Last resort: capture the whole block verbatim.
	if text := strings.TrimSpace(block.Text()); text != "" {
		rec.Set("raw_text", record.String(text))
		return rec, true
	}
	return nil, false
}
