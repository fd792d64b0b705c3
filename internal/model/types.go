// Package model defines shared data structures.
package model

// Config defines practice settings.
type Config struct {
	Words        int
	WordListPath string
	DataDir      string
	Debug        bool
}

// Record is a persisted game result.
type Record struct {
	ID   int64
	WPM  int
	CPM  int
	Date string
}
