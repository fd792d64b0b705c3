package game

import "fmt"

// ActionKind enumerates state machine commands.
type ActionKind int

const (
	ActionEmpty ActionKind = iota
	ActionInit
	ActionExit
	ActionCharInput
	ActionChangePage
	ActionGetRecords
	ActionPostRecord
	ActionMenu
)

// Action is the only way session state changes. Char is set for
// ActionCharInput, Page for ActionChangePage.
type Action struct {
	Kind ActionKind
	Char rune
	Page Page
}

var (
	Empty      = Action{Kind: ActionEmpty}
	Init       = Action{Kind: ActionInit}
	Exit       = Action{Kind: ActionExit}
	GetRecords = Action{Kind: ActionGetRecords}
	PostRecord = Action{Kind: ActionPostRecord}
	MenuAction = Action{Kind: ActionMenu}
)

// CharInput returns an action typing r.
func CharInput(r rune) Action {
	return Action{Kind: ActionCharInput, Char: r}
}

// ChangePage returns an action moving to p.
func ChangePage(p Page) Action {
	return Action{Kind: ActionChangePage, Page: p}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionEmpty:
		return "empty"
	case ActionInit:
		return "init"
	case ActionExit:
		return "exit"
	case ActionCharInput:
		return fmt.Sprintf("char(%q)", a.Char)
	case ActionChangePage:
		return fmt.Sprintf("page(%s)", a.Page)
	case ActionGetRecords:
		return "get-records"
	case ActionPostRecord:
		return "post-record"
	case ActionMenu:
		return "menu"
	default:
		return "unknown"
	}
}
