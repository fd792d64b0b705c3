// Package game implements the page state machine that drives a typing
// session: key translation, action application and timer-driven
// transitions.
package game

// Page identifies the screen currently shown.
type Page int

const (
	PageMenu Page = iota
	PageCountDown
	PageGame
	PageGameResult
	PageRecords
)

func (p Page) String() string {
	switch p {
	case PageMenu:
		return "menu"
	case PageCountDown:
		return "countdown"
	case PageGame:
		return "game"
	case PageGameResult:
		return "result"
	case PageRecords:
		return "records"
	default:
		return "unknown"
	}
}
