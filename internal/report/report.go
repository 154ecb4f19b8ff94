// Package report renders the run summary and, when running under GitHub
// Actions, publishes step outputs and a Markdown summary. Pure reporting; it
// carries no control-flow significance for the extraction core.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Summary describes one completed run.
type Summary struct {
	RecordCount  int       `json:"total_fixtures"`
	SnapshotFile string    `json:"output_file"`
	LatestFile   string    `json:"latest_file"`
	DataSource   string    `json:"data_source,omitempty"`
	Fallback     bool      `json:"fallback"`
	CompletedAt  time.Time `json:"timestamp"`
}

// Format selects how the summary is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Write renders the summary to w.
func Write(w io.Writer, s *Summary, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatText:
		fmt.Fprintf(w, "Import completed: %d fixtures\n", s.RecordCount)
		fmt.Fprintf(w, "  Snapshot: %s\n", s.SnapshotFile)
		fmt.Fprintf(w, "  Latest:   %s\n", s.LatestFile)
		if s.Fallback {
			fmt.Fprintln(w, "  Source:   sample data (all endpoints failed)")
		} else if s.DataSource != "" {
			fmt.Fprintf(w, "  Source:   %s\n", s.DataSource)
		}
		fmt.Fprintf(w, "  Finished: %s\n", s.CompletedAt.Format(time.RFC3339))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// PublishGitHub appends step outputs and a summary block to the files GitHub
// Actions provides. A no-op outside of Actions.
func PublishGitHub(s *Summary) error {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		return nil
	}

	if path := os.Getenv("GITHUB_OUTPUT"); path != "" {
		outputs := fmt.Sprintf("total_fixtures=%d\nrecord_count=%d\noutput_file=%s\nlatest_file=%s\n",
			s.RecordCount, s.RecordCount, s.SnapshotFile, s.LatestFile)
		if err := appendFile(path, outputs); err != nil {
			return fmt.Errorf("writing step outputs: %w", err)
		}
	}

	if path := os.Getenv("GITHUB_STEP_SUMMARY"); path != "" {
		md := fmt.Sprintf("\n## Fixture Data Import Summary\n"+
			"- **Records processed:** %d\n"+
			"- **Timestamp:** %s\n"+
			"- **Latest file:** `%s`\n"+
			"- **Timestamped file:** `%s`\n",
			s.RecordCount, s.CompletedAt.Format(time.RFC3339), s.LatestFile, s.SnapshotFile)
		if err := appendFile(path, md); err != nil {
			return fmt.Errorf("writing step summary: %w", err)
		}
	}

	return nil
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(content)
	return err
}
