// Package extract turns a fetched payload of unknown shape into fixture
// records. Strategies are tried in a fixed priority order: structured JSON,
// markup table rows, markup blocks, data embedded in scripts, and finally a
// raw text-line scan. The first strategy to yield records wins.
package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/clubfeed/fixture-export/internal/logger"
	"github.com/clubfeed/fixture-export/internal/record"
)

// Strategy is one extraction attempt. Implementations are pure apart from
// diagnostics: they inspect the source and return zero or more records.
type Strategy interface {
	Name() string
	Attempt(src *Source) []record.Record
}

// Source wraps one response body. The goquery document and the JSON decode
// are each computed at most once and shared across strategies.
type Source struct {
	Body string

	doc       *goquery.Document
	docErr    error
	docParsed bool

	decoded     any
	decodedOK   bool
	decodeTried bool
}

// NewSource wraps body for extraction.
func NewSource(body string) *Source {
	return &Source{Body: body}
}

// Document parses the body as markup, once.
func (s *Source) Document() (*goquery.Document, error) {
	if !s.docParsed {
		s.doc, s.docErr = goquery.NewDocumentFromReader(strings.NewReader(s.Body))
		s.docParsed = true
	}
	return s.doc, s.docErr
}

// JSON decodes the body as JSON, once. ok is false when the body is not
// valid JSON at all.
func (s *Source) JSON() (any, bool) {
	if !s.decodeTried {
		s.decodeTried = true
		var v any
		if err := json.Unmarshal([]byte(s.Body), &v); err == nil {
			s.decoded = v
			s.decodedOK = true
		}
	}
	return s.decoded, s.decodedOK
}

// Pipeline runs strategies in order and stops at the first non-empty yield.
type Pipeline struct {
	strategies []Strategy
}

// New returns a pipeline with the default strategy order.
func New() *Pipeline {
	return &Pipeline{
		strategies: []Strategy{
			jsonStrategy{},
			rowStrategy{},
			blockStrategy{},
			embeddedStrategy{},
			lineStrategy{},
		},
	}
}

// NewWithStrategies returns a pipeline over an explicit strategy list.
func NewWithStrategies(strategies ...Strategy) *Pipeline {
	return &Pipeline{strategies: strategies}
}

// Run extracts records from body. An empty result means every strategy came
// up empty; the caller decides whether to substitute placeholder data.
func (p *Pipeline) Run(body string) []record.Record {
	src := NewSource(body)

	for _, s := range p.strategies {
		logger.Incr("extract.attempt." + s.Name())
		records := s.Attempt(src)
		if len(records) == 0 {
			continue
		}
		logger.Incr("extract.yield." + s.Name())
		logger.Info("extraction strategy yielded records", logger.Fields{
			"strategy": s.Name(),
			"records":  len(records),
		})
		return records
	}

	logger.Warn("all extraction strategies yielded no records", nil)
	return nil
}
