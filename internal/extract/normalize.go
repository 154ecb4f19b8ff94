package extract

import (
	"github.com/clubfeed/fixture-export/internal/logger"
	"github.com/clubfeed/fixture-export/internal/record"
)

// containerKeys are conventional wrapper field names probed in order when a
// JSON payload is a mapping rather than a bare sequence.
var containerKeys = []string{"fixtures", "results", "matches", "data", "items", "games"}

// jsonStrategy normalizes a structured JSON payload. The decode is always
// attempted first regardless of what the response claimed as content type.
type jsonStrategy struct{}

func (jsonStrategy) Name() string { return "json" }

func (jsonStrategy) Attempt(src *Source) []record.Record {
	decoded, ok := src.JSON()
	if !ok {
		return nil
	}

	switch v := decoded.(type) {
	case []any:
		return recordsFromList(v)
	case map[string]any:
		for _, key := range containerKeys {
			list, ok := v[key].([]any)
			if !ok {
				continue
			}
			logger.Info("found fixture data in container field", logger.Fields{"key": key})
			return recordsFromList(list)
		}
		// No recognized container key: the weakest fallback wraps the whole
		// mapping as a single record.
		logger.Debug("no container key matched, wrapping mapping as one record", nil)
		return []record.Record{record.FromAny(v)}
	default:
		// A bare JSON scalar is not fixture data.
		return nil
	}
}

func recordsFromList(list []any) []record.Record {
	records := make([]record.Record, 0, len(list))
	for _, elem := range list {
		m, ok := elem.(map[string]any)
		if !ok {
			logger.Warn("skipping non-mapping element in fixture list", logger.Fields{
				"element": elem,
			})
			continue
		}
		records = append(records, record.FromAny(m))
	}
	return records
}
