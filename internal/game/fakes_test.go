package game

import (
	"context"
	"time"

	"github.com/verte-zerg/typefast/internal/model"
)

type fakeTimer struct {
	running   bool
	remaining int
	starts    []int
	stops     int
}

func (t *fakeTimer) Start(seconds int) {
	if t.running {
		return
	}
	t.running = true
	t.remaining = seconds
	t.starts = append(t.starts, seconds)
}

func (t *fakeTimer) Stop() {
	t.running = false
	t.stops++
}

func (t *fakeTimer) IsRunning() bool { return t.running }

func (t *fakeTimer) Remaining() int { return t.remaining }

type fakeStore struct {
	records   []model.Record
	nextID    int64
	insertErr error
	selectErr error
	closeErr  error
	closed    bool
}

func (s *fakeStore) Insert(_ context.Context, wpm, cpm int, date string) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.nextID++
	s.records = append(s.records, model.Record{ID: s.nextID, WPM: wpm, CPM: cpm, Date: date})
	return nil
}

func (s *fakeStore) SelectAll(context.Context) ([]model.Record, error) {
	if s.selectErr != nil {
		return nil, s.selectErr
	}
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *fakeStore) Close() error {
	s.closed = true
	return s.closeErr
}

type fakeSource struct {
	words []string
	calls int
}

func (s *fakeSource) Sample(count int) []string {
	s.calls++
	if count > len(s.words) {
		count = len(s.words)
	}
	return s.words[:count]
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
