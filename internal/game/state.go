package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/verte-zerg/typefast/internal/model"
)

// ErrNoPassage is recorded when the passage source returns no words.
var ErrNoPassage = errors.New("passage source returned no words")

// FailureKind tags the category of the last surfaced failure.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureConnection
	FailureOperation
	FailurePassage
	FailureRender
	FailureShutdown
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureConnection:
		return "connection"
	case FailureOperation:
		return "operation"
	case FailurePassage:
		return "passage"
	case FailureRender:
		return "render"
	case FailureShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Failure is the last error surfaced to the user.
type Failure struct {
	Kind FailureKind
	Err  error
}

// IsZero reports whether no failure was recorded.
func (f Failure) IsZero() bool {
	return f.Kind == FailureNone
}

// Message returns a display string, empty when there is no failure.
func (f Failure) Message() string {
	if f.IsZero() {
		return ""
	}
	if f.Err == nil {
		return f.Kind.String() + " error"
	}
	return fmt.Sprintf("%s error: %v", f.Kind, f.Err)
}

// State is a snapshot of the session.
type State struct {
	Running  bool
	Page     Page
	NextPage Page

	// Position counts passage runes typed correctly.
	Position int
	Passage  string
	// Remaining mirrors the timer's seconds left.
	Remaining int

	CharCount int
	WordCount int
	CharSpeed int
	WordSpeed int

	Records   []model.Record
	MenuIndex int
	Error     Failure
}

// PassageLen returns the passage length in runes.
func (s State) PassageLen() int {
	return len([]rune(s.Passage))
}

func (s State) clone() State {
	s.Records = slices.Clone(s.Records)
	return s
}
