// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/typefast/internal/model"
)

const sparkChars = " .:-=+*#%@"

// WordsPerMinute converts a word count over elapsed seconds into a rounded rate.
func WordsPerMinute(wordCount, elapsedSeconds int) int {
	return perMinute(wordCount, elapsedSeconds)
}

// CharsPerMinute converts a character count over elapsed seconds into a rounded rate.
func CharsPerMinute(charCount, elapsedSeconds int) int {
	return perMinute(charCount, elapsedSeconds)
}

func perMinute(count, elapsedSeconds int) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	minutes := float64(elapsedSeconds) / 60.0
	return int(math.Round(float64(count) / minutes))
}

// Summary aggregates stored records.
type Summary struct {
	Count   int
	BestWPM int
	AvgWPM  float64
	BestCPM int
	AvgCPM  float64
	LastWPM int
}

// Summarize computes a Summary over records in storage order.
func Summarize(records []model.Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	var s Summary
	var totalWPM, totalCPM int
	for _, r := range records {
		totalWPM += r.WPM
		totalCPM += r.CPM
		if r.WPM > s.BestWPM {
			s.BestWPM = r.WPM
		}
		if r.CPM > s.BestCPM {
			s.BestCPM = r.CPM
		}
	}
	s.Count = len(records)
	s.AvgWPM = float64(totalWPM) / float64(s.Count)
	s.AvgCPM = float64(totalCPM) / float64(s.Count)
	s.LastWPM = records[len(records)-1].WPM
	return s
}

// WPMSeries extracts the WPM of each record as a float series.
func WPMSeries(records []model.Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = float64(r.WPM)
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary block for records.
func RenderSummary(w io.Writer, s Summary) error {
	if s.Count == 0 {
		_, err := fmt.Fprintln(w, "No records found.")
		return err
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Games: %d", s.Count),
		fmt.Sprintf("Best WPM: %d", s.BestWPM),
		fmt.Sprintf("Avg WPM: %.1f", s.AvgWPM),
		fmt.Sprintf("Best CPM: %d", s.BestCPM),
		fmt.Sprintf("Avg CPM: %.1f", s.AvgCPM),
		fmt.Sprintf("Last WPM: %d", s.LastWPM),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderRecords prints records as an aligned table.
func RenderRecords(w io.Writer, records []model.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No records found.")
		return err
	}
	headers := []string{"#", "WPM", "CPM", "Date"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.WPM),
			fmt.Sprintf("%d", r.CPM),
			r.Date,
		})
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
