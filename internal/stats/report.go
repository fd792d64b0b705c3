package stats

import (
	"context"
	"fmt"

	"github.com/verte-zerg/typefast/internal/model"
)

// RecordLister reads stored records in storage order.
type RecordLister interface {
	SelectAll(ctx context.Context) ([]model.Record, error)
}

// Report contains precomputed data for records rendering.
type Report struct {
	Records []model.Record
	Summary Summary
	Trend   []float64
}

// BuildReport loads records and prepares them for rendering. last > 0 keeps
// only the most recent records.
func BuildReport(ctx context.Context, st RecordLister, last, window int) (Report, error) {
	records, err := st.SelectAll(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load records: %w", err)
	}
	if last > 0 && len(records) > last {
		records = records[len(records)-last:]
	}
	return Report{
		Records: records,
		Summary: Summarize(records),
		Trend:   MovingAverage(WPMSeries(records), window),
	}, nil
}
