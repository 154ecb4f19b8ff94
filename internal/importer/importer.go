// Package importer drives one full import run: iterate the endpoint
// candidates, hand each successful response to the extraction pipeline, and
// substitute placeholder data when everything comes up empty.
package importer

import (
	"context"
	"time"

	"github.com/clubfeed/fixture-export/internal/config"
	"github.com/clubfeed/fixture-export/internal/extract"
	"github.com/clubfeed/fixture-export/internal/fetch"
	"github.com/clubfeed/fixture-export/internal/logger"
	"github.com/clubfeed/fixture-export/internal/record"
)

// Result is the outcome of one run. Records is never empty: when every
// endpoint and every strategy yielded nothing, the placeholder set is
// substituted and Fallback is set.
type Result struct {
	Records  []record.Record
	Endpoint string
	Fallback bool
}

// Importer runs the fetch/extract cycle for one configuration.
type Importer struct {
	cfg      *config.Config
	client   *fetch.Client
	pipeline *extract.Pipeline
	now      func() time.Time
}

// New creates an importer for cfg.
func New(cfg *config.Config) *Importer {
	return &Importer{
		cfg:      cfg,
		client:   fetch.NewClient(cfg),
		pipeline: extract.New(),
		now:      time.Now,
	}
}

// Run tries each endpoint candidate in order. A candidate is only accepted
// when its body extracts into at least one record; transport failures,
// non-success statuses, and empty extractions all advance to the next
// candidate.
func (imp *Importer) Run(ctx context.Context) *Result {
	logger.Info("fetching fixture data", logger.Fields{"club_id": imp.cfg.ClubID})

	for _, endpoint := range fetch.Endpoints(imp.cfg) {
		logger.Info("trying endpoint", logger.Fields{"url": endpoint})

		resp, err := imp.client.Get(ctx, endpoint)
		if err != nil {
			logger.Warn("request failed", logger.Fields{
				"url":   endpoint,
				"error": err.Error(),
			})
			continue
		}
		if !resp.OK() {
			logger.Warn("endpoint returned non-success status", logger.Fields{
				"url":    endpoint,
				"status": resp.Status,
			})
			continue
		}

		records := imp.pipeline.Run(resp.Body)
		if len(records) == 0 {
			continue
		}

		logger.Info("fetched fixture data", logger.Fields{
			"url":     endpoint,
			"records": len(records),
		})
		return &Result{Records: records, Endpoint: endpoint}
	}

	// Terminal empty state: downstream export must never silently receive
	// zero records, so the synthetic set stands in.
	logger.Warn("all endpoints exhausted, substituting sample data", nil)
	placeholders := record.Placeholders(imp.now().UTC())
	return &Result{Records: placeholders, Fallback: true}
}
