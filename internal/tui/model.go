// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typefast/internal/game"
)

// TickInterval is how often the loop polls the timer and repaints.
const TickInterval = 5 * time.Millisecond

type tickMsg time.Time

type sizer interface {
	SetSize(width, height int)
}

// Model drives a game.Controller from Bubble Tea messages. Every tick
// samples the timer and repaints; key messages are applied as they arrive.
type Model struct {
	ctx      context.Context
	ctrl     *game.Controller
	renderer game.Renderer
	keys     keyMap

	frame      string
	lastLogged string
	err        error
}

// NewModel constructs a typing TUI model around ctrl.
func NewModel(ctx context.Context, ctrl *game.Controller, renderer game.Renderer) *Model {
	return &Model{
		ctx:      ctx,
		ctrl:     ctrl,
		renderer: renderer,
		keys:     defaultKeyMap(),
	}
}

// Err returns the error raised while shutting down, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.apply(m.ctrl.Apply(m.ctx, game.Init))
	m.paint()
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if s, ok := m.renderer.(sizer); ok {
			s.SetSize(msg.Width, msg.Height)
		}
	case tea.KeyMsg:
		m.handleKey(msg)
	case tickMsg:
		m.apply(m.ctrl.Tick(m.ctx))
		cmd = tick()
	}
	m.paint()
	if !m.ctrl.Running() {
		return m, tea.Quit
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.frame
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Quit) {
		m.apply(m.ctrl.Apply(m.ctx, game.Exit))
		return
	}
	for _, k := range toKeys(msg, m.keys) {
		m.apply(m.ctrl.HandleKey(m.ctx, k))
		if !m.ctrl.Running() {
			return
		}
	}
}

func (m *Model) apply(err error) {
	if err != nil {
		m.err = errors.Join(m.err, err)
	}
}

// paint renders the current state into the frame. A failed render keeps the
// previous frame and records the failure for the next one.
func (m *Model) paint() {
	s := m.ctrl.State()
	m.logFailure(s.Error)
	var b strings.Builder
	if err := m.renderer.Render(&b, s); err != nil {
		m.ctrl.RecordFailure(game.FailureRender, err)
		return
	}
	m.frame = b.String()
}

func (m *Model) logFailure(f game.Failure) {
	if f.IsZero() {
		return
	}
	msg := f.Message()
	if msg == m.lastLogged {
		return
	}
	m.lastLogged = msg
	log.Println(msg)
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
