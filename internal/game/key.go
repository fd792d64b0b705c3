package game

// KeyKind classifies a key press.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyEscape
	KeyEnter
	KeyChar
	KeyUp
	KeyDown
)

// KeyEvent distinguishes presses from repeats and releases.
type KeyEvent int

const (
	KeyPress KeyEvent = iota
	KeyRepeat
	KeyRelease
)

// Key is a terminal-independent keyboard event.
type Key struct {
	Kind  KeyKind
	Rune  rune
	Event KeyEvent
}

// TranslateKey maps a key press on page to an action. Non-press events
// must be filtered by the caller.
func TranslateKey(k Key, page Page, menuIndex int) Action {
	switch k.Kind {
	case KeyEscape:
		if page == PageMenu {
			return Exit
		}
		return ChangePage(PageMenu)
	case KeyEnter:
		switch page {
		case PageMenu:
			if menuIndex == 0 {
				return ChangePage(PageCountDown)
			}
			return ChangePage(PageRecords)
		case PageGameResult:
			return ChangePage(PageMenu)
		default:
			return Empty
		}
	case KeyChar:
		if page == PageGame {
			return CharInput(k.Rune)
		}
		return Empty
	case KeyUp, KeyDown:
		if page == PageMenu {
			return MenuAction
		}
		return Empty
	default:
		return Empty
	}
}
