package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksDatasetLoads(t *testing.T) {
	rec := NewRecorder()
	rec.RecordDatasetLoad("players", 120, 10*time.Millisecond, nil)
	rec.RecordDatasetLoad("players", 0, 15*time.Millisecond, errors.New("boom"))

	snap := rec.Table("players")
	if snap.Loads != 2 {
		t.Fatalf("expected 2 loads, got %d", snap.Loads)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", snap.Errors)
	}
	if snap.Rows != 120 {
		t.Fatalf("expected rows from last successful load, got %d", snap.Rows)
	}
	if snap.LastDuration != 15*time.Millisecond {
		t.Fatalf("expected last duration to be 15ms, got %s", snap.LastDuration)
	}
	if got := rec.Table("teams"); got != (TableSnapshot{}) {
		t.Fatalf("expected empty snapshot for unseen table, got %+v", got)
	}
}

func TestRecorderTracksAggregations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordAggregation("team_averages", 5*time.Millisecond)
	rec.RecordAggregation("team_averages", 7*time.Millisecond)

	if got := rec.Aggregations("team_averages"); got != 2 {
		t.Fatalf("expected 2 aggregations, got %d", got)
	}
	if got := rec.LastAggregation("team_averages"); got != 7*time.Millisecond {
		t.Fatalf("expected last aggregation to be 7ms, got %s", got)
	}
	if got := rec.Aggregations("team_seasons"); got != 0 {
		t.Fatalf("expected 0 for unseen operation, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordDatasetLoad("players", 1, time.Millisecond, nil)
	rec.RecordAggregation("team_averages", time.Millisecond)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if rec.Aggregations("team_averages") != 0 || rec.LastAggregation("team_averages") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
	if rec.Table("players") != (TableSnapshot{}) {
		t.Fatalf("expected empty snapshot from nil recorder")
	}
}
