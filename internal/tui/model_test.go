package tui

import (
	"context"
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typefast/internal/game"
	"github.com/verte-zerg/typefast/internal/model"
)

type stubTimer struct {
	running   bool
	remaining int
}

func (t *stubTimer) Start(seconds int) {
	if t.running {
		return
	}
	t.running = true
	t.remaining = seconds
}

func (t *stubTimer) Stop()           { t.running = false }
func (t *stubTimer) IsRunning() bool { return t.running }
func (t *stubTimer) Remaining() int  { return t.remaining }

type stubStore struct {
	closeErr error
}

func (stubStore) Insert(context.Context, int, int, string) error { return nil }

func (stubStore) SelectAll(context.Context) ([]model.Record, error) { return nil, nil }

func (s stubStore) Close() error { return s.closeErr }

type stubSource struct{}

func (stubSource) Sample(int) []string { return []string{"go", "fast"} }

type brokenRenderer struct{}

func (brokenRenderer) Render(io.Writer, game.State) error {
	return errors.New("no terminal")
}

func newTestModel(t *testing.T, st game.RecordStore, r game.Renderer) (*Model, *game.Controller, *stubTimer) {
	t.Helper()
	timer := &stubTimer{}
	ctrl := game.New(game.Options{Store: st, Passages: stubSource{}, Timer: timer})
	m := NewModel(context.Background(), ctrl, r)
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected tick command from Init")
	}
	return m, ctrl, timer
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInitStartsSession(t *testing.T) {
	m, ctrl, _ := newTestModel(t, stubStore{}, NewRenderer())
	if !ctrl.Running() {
		t.Fatalf("expected running after Init")
	}
	if m.View() == "" {
		t.Fatalf("expected a painted frame")
	}
}

func TestEnterStartsCountdown(t *testing.T) {
	m, ctrl, timer := newTestModel(t, stubStore{}, NewRenderer())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if isQuit(cmd) {
		t.Fatalf("unexpected quit")
	}
	if got := ctrl.State().Page; got != game.PageCountDown {
		t.Fatalf("expected countdown, got %s", got)
	}
	if !timer.running || timer.remaining != game.CountdownSeconds {
		t.Fatalf("expected countdown timer, got %+v", timer)
	}
}

func TestTickAdvancesWhenTimerExpires(t *testing.T) {
	m, ctrl, timer := newTestModel(t, stubStore{}, NewRenderer())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	timer.remaining = 0

	_, cmd := m.Update(tickMsg{})
	if cmd == nil {
		t.Fatalf("expected tick to re-arm")
	}
	if got := ctrl.State().Page; got != game.PageGame {
		t.Fatalf("expected game page, got %s", got)
	}
}

func TestRunesAreTyped(t *testing.T) {
	m, ctrl, timer := newTestModel(t, stubStore{}, NewRenderer())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	timer.remaining = 0
	m.Update(tickMsg{})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("go")})
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	s := ctrl.State()
	if s.Position != 3 || s.WordCount != 1 || s.CharCount != 2 {
		t.Fatalf("unexpected progress: %+v", s)
	}
}

func TestEscapeOnMenuQuits(t *testing.T) {
	m, ctrl, _ := newTestModel(t, stubStore{}, NewRenderer())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Fatalf("expected quit command")
	}
	if ctrl.Running() {
		t.Fatalf("expected controller stopped")
	}
}

func TestCtrlCQuitsFromAnyPage(t *testing.T) {
	closeErr := errors.New("locked")
	m, _, _ := newTestModel(t, stubStore{closeErr: closeErr}, NewRenderer())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatalf("expected quit command")
	}
	if !errors.Is(m.Err(), closeErr) {
		t.Fatalf("expected close error, got %v", m.Err())
	}
}

func TestRenderFailureIsRecorded(t *testing.T) {
	_, ctrl, _ := newTestModel(t, stubStore{}, brokenRenderer{})
	if got := ctrl.State().Error.Kind; got != game.FailureRender {
		t.Fatalf("expected render failure, got %s", got)
	}
}

func TestToKeys(t *testing.T) {
	km := defaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []game.Key
	}{
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []game.Key{{Kind: game.KeyEscape}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []game.Key{{Kind: game.KeyEnter}}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []game.Key{{Kind: game.KeyUp}}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, []game.Key{{Kind: game.KeyDown}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []game.Key{{Kind: game.KeyChar, Rune: ' '}}},
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, []game.Key{
			{Kind: game.KeyChar, Rune: 'a'},
			{Kind: game.KeyChar, Rune: 'b'},
		}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true}, nil},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []game.Key{{Kind: game.KeyOther}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toKeys(tt.msg, km)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("key %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
