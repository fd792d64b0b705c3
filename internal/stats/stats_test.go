package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/typefast/internal/model"
)

func TestPerMinuteZeroElapsed(t *testing.T) {
	for _, count := range []int{0, 1, 120, 10000} {
		if got := WordsPerMinute(count, 0); got != 0 {
			t.Fatalf("WordsPerMinute(%d, 0) = %d, want 0", count, got)
		}
		if got := CharsPerMinute(count, 0); got != 0 {
			t.Fatalf("CharsPerMinute(%d, 0) = %d, want 0", count, got)
		}
	}
}

func TestPerMinuteRates(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(int, int) int
		count   int
		elapsed int
		want    int
	}{
		{"wpm one minute", WordsPerMinute, 120, 60, 120},
		{"wpm two minutes", WordsPerMinute, 60, 120, 30},
		{"cpm one minute", CharsPerMinute, 600, 60, 600},
		{"cpm two minutes", CharsPerMinute, 300, 120, 150},
		{"rounds half up", WordsPerMinute, 1, 8, 8},
		{"rounds down", WordsPerMinute, 1, 7, 9},
		{"short burst", CharsPerMinute, 5, 1, 300},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.count, tt.elapsed); got != tt.want {
			t.Fatalf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	records := []model.Record{
		{ID: 1, WPM: 40, CPM: 200},
		{ID: 2, WPM: 60, CPM: 310},
		{ID: 3, WPM: 50, CPM: 260},
	}
	s := Summarize(records)
	if s.Count != 3 || s.BestWPM != 60 || s.BestCPM != 310 || s.LastWPM != 50 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.AvgWPM != 50 {
		t.Fatalf("expected avg wpm 50, got %.2f", s.AvgWPM)
	}
	if Summarize(nil) != (Summary{}) {
		t.Fatalf("expected zero summary for no records")
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %.2f, want %.2f", i, got[i], want[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
	line := Sparkline([]float64{0, 5, 10})
	if len(line) != 3 || line[0] != ' ' || line[2] != '@' {
		t.Fatalf("unexpected sparkline %q", line)
	}
	flat := Sparkline([]float64{3, 3})
	if flat != "++" {
		t.Fatalf("unexpected flat sparkline %q", flat)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, Summary{Count: 2, BestWPM: 61, AvgWPM: 55.5, BestCPM: 300, AvgCPM: 280, LastWPM: 50}); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Games: 2", "Best WPM: 61", "Avg WPM: 55.5", "Last WPM: 50"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("summary missing %q: %s", needle, out)
		}
	}
}
