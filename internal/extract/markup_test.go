package extract

import (
	"testing"
)

func TestRowStrategyClassifiesCells(t *testing.T) {
	body := `<table><tr>
		<td>12/05/2024</td>
		<td>15:00</td>
		<td>Home FC v Away FC</td>
	</tr></table>`

	records := rowStrategy{}.Attempt(NewSource(body))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	expected := map[string]string{
		"date":      "12/05/2024",
		"time":      "15:00",
		"home_team": "Home FC",
		"away_team": "Away FC",
		"col_0":     "12/05/2024",
		"col_1":     "15:00",
		"col_2":     "Home FC v Away FC",
	}
	for field, want := range expected {
		if got := rec[field].CSV(); got != want {
			t.Errorf("expected %s=%q, got %q", field, want, got)
		}
	}
}

func TestRowStrategySplitsOnVs(t *testing.T) {
	body := `<table><tr><td>01-02-2025</td><td>Lions vs Tigers</td></tr></table>`

	records := rowStrategy{}.Attempt(NewSource(body))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0]["home_team"].CSV(); got != "Lions" {
		t.Errorf("expected home_team=Lions, got %q", got)
	}
	if got := records[0]["away_team"].CSV(); got != "Tigers" {
		t.Errorf("expected away_team=Tigers, got %q", got)
	}
}

func TestRowStrategyTeamPairSetOnce(t *testing.T) {
	body := `<table><tr>
		<td>12/05/2024</td>
		<td>First FC v Second FC</td>
		<td>Third FC v Fourth FC</td>
	</tr></table>`

	records := rowStrategy{}.Attempt(NewSource(body))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0]["home_team"].CSV(); got != "First FC" {
		t.Errorf("expected first team pair to win, got home_team=%q", got)
	}
	// The losing cell is still kept positionally.
	if got := records[0]["col_2"].CSV(); got != "Third FC v Fourth FC" {
		t.Errorf("expected col_2 to keep the raw cell, got %q", got)
	}
}

func TestRowStrategyRejectsSingleCellRows(t *testing.T) {
	body := `<table><tr><td>12/05/2024</td></tr></table>`

	if records := (rowStrategy{}).Attempt(NewSource(body)); len(records) != 0 {
		t.Errorf("expected single-cell row to yield no record, got %d", len(records))
	}
}

func TestRowStrategyRejectsHeaderRows(t *testing.T) {
	body := `<table>
		<tr><th>Date</th><th>Time</th><th>Teams</th></tr>
		<tr><td>12/05/2024</td><td>15:00</td><td>Home FC v Away FC</td></tr>
	</table>`

	records := rowStrategy{}.Attempt(NewSource(body))
	if len(records) != 1 {
		t.Fatalf("expected only the data row, got %d records", len(records))
	}
	if got := records[0]["date"].CSV(); got != "12/05/2024" {
		t.Errorf("expected the data row record, got date=%q", got)
	}
}

func TestRowStrategySkipsEmptyCells(t *testing.T) {
	body := `<table><tr>
		<td>  </td>
		<td>12/05/2024</td>
		<td></td>
		<td>15:00</td>
	</tr></table>`

	records := rowStrategy{}.Attempt(NewSource(body))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if _, ok := rec["col_0"]; ok {
		t.Error("whitespace-only cell should not produce a positional field")
	}
	if got := rec["col_1"].CSV(); got != "12/05/2024" {
		t.Errorf("expected col_1 to keep document position, got %q", got)
	}
}

func TestBlockStrategyClassSubstrings(t *testing.T) {
	body := `<div class="fixture-card">
		<span class="match-date">Sat 12 May</span>
		<span class="kickoff-time">15:00</span>
		<span class="team home">Home FC</span>
		<span class="team away">Away FC</span>
		<span class="final-score">2 - 1</span>
	</div>`

	records := blockStrategy{}.Attempt(NewSource(body))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	expected := map[string]string{
		"date":      "Sat 12 May",
		"time":      "15:00",
		"home_team": "Home FC",
		"away_team": "Away FC",
		"score":     "2 - 1",
	}
	for field, want := range expected {
		if got := rec[field].CSV(); got != want {
			t.Errorf("expected %s=%q, got %q", field, want, got)
		}
	}
}

func TestBlockStrategyTeamsInDocumentOrder(t *testing.T) {
	body := `<li class="match-row">
		<div class="club">Alpha United</div>
		<div class="club">Beta Rovers</div>
		<div class="club">Gamma Town</div>
	</li>`

	records := blockStrategy{}.Attempt(NewSource(body))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0]["home_team"].CSV(); got != "Alpha United" {
		t.Errorf("expected home_team=Alpha United, got %q", got)
	}
	if got := records[0]["away_team"].CSV(); got != "Beta Rovers" {
		t.Errorf("expected away_team=Beta Rovers, got %q", got)
	}
	if _, ok := records[0]["score"]; ok {
		t.Error("third club block should not have produced more fields")
	}
}

func TestBlockStrategyRawTextFallback(t *testing.T) {
	body := `<div class="result-strip">Home FC beat Away FC on Saturday</div>`

	records := blockStrategy{}.Attempt(NewSource(body))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0]["raw_text"].CSV(); got != "Home FC beat Away FC on Saturday" {
		t.Errorf("expected raw_text capture, got %q", got)
	}
}

func TestBlockStrategySkipsNestedContainers(t *testing.T) {
	body := `<div class="fixtures-list">
		<div class="fixture">
			<span class="date">12/05</span>
			<span class="team">A</span>
		</div>
	</div>`

	records := blockStrategy{}.Attempt(NewSource(body))
	if len(records) != 1 {
		t.Fatalf("expected the outer container only, got %d records", len(records))
	}
}
