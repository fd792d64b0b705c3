package game

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/verte-zerg/typefast/internal/model"
	"github.com/verte-zerg/typefast/internal/stats"
)

const (
	// CountdownSeconds is the get-ready delay before a game.
	CountdownSeconds = 3
	// GameSeconds is the length of one game.
	GameSeconds = 60
	// DefaultPassageWords is the passage size when none is configured.
	DefaultPassageWords = 100
)

// Timer is a countdown polled by the controller.
type Timer interface {
	Start(seconds int)
	Stop()
	IsRunning() bool
	Remaining() int
}

// RecordStore persists game results.
type RecordStore interface {
	Insert(ctx context.Context, wpm, cpm int, date string) error
	SelectAll(ctx context.Context) ([]model.Record, error)
	Close() error
}

// PassageSource supplies words for a new passage.
type PassageSource interface {
	Sample(count int) []string
}

// Renderer paints a state snapshot. It must not retain or mutate s.
type Renderer interface {
	Render(w io.Writer, s State) error
}

// Clock abstracts time to keep record dates deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Options wires a Controller's collaborators. Store may be nil, in which
// case persistence is skipped.
type Options struct {
	Store        RecordStore
	Passages     PassageSource
	Timer        Timer
	Clock        Clock
	PassageWords int
}

// Controller owns the session state and the countdown timer. It is not
// safe for concurrent use; the UI loop is its only caller.
type Controller struct {
	store    RecordStore
	passages PassageSource
	timer    Timer
	clock    Clock
	words    int

	state State
	// target caches the passage as runes for position lookups.
	target []rune
	// duration is the length of the timer run in progress.
	duration int
}

// New constructs a controller with zero-valued state on the menu page.
func New(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.PassageWords <= 0 {
		opts.PassageWords = DefaultPassageWords
	}
	return &Controller{
		store:    opts.Store,
		passages: opts.Passages,
		timer:    opts.Timer,
		clock:    opts.Clock,
		words:    opts.PassageWords,
	}
}

// State returns a copy of the current session state.
func (c *Controller) State() State {
	return c.state.clone()
}

// Running reports whether the UI loop should keep going.
func (c *Controller) Running() bool {
	return c.state.Running
}

// RecordFailure surfaces a failure from outside the state machine, such as
// rendering, input or startup. It only touches the error field.
func (c *Controller) RecordFailure(kind FailureKind, err error) {
	c.state.Error = Failure{Kind: kind, Err: err}
}

// HandleKey translates a key event and applies the resulting action.
// Escape stops the timer before anything else happens.
func (c *Controller) HandleKey(ctx context.Context, k Key) error {
	if k.Event != KeyPress {
		return nil
	}
	if k.Kind == KeyEscape {
		c.timer.Stop()
	}
	return c.Apply(ctx, TranslateKey(k, c.state.Page, c.state.MenuIndex))
}

// Apply runs action and every follow-up action it queues, in order.
// Collaborator failures are recorded in the state; only a failure to close
// the store on Exit is returned.
func (c *Controller) Apply(ctx context.Context, action Action) error {
	queue := []Action{action}
	var errs []error
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		follow, err := c.step(ctx, next)
		if err != nil {
			errs = append(errs, err)
		}
		queue = append(queue, follow...)
	}
	return errors.Join(errs...)
}

// Tick samples the timer. It refreshes the displayed time and live speeds
// when the remaining value changes, and fires the page transition once the
// timer reaches zero.
func (c *Controller) Tick(ctx context.Context) error {
	if !c.timer.IsRunning() {
		return nil
	}
	remaining := c.timer.Remaining()
	if remaining != c.state.Remaining {
		c.state.Remaining = remaining
		if c.state.Page == PageGame {
			elapsed := c.duration - remaining
			c.state.WordSpeed = stats.WordsPerMinute(c.state.WordCount, elapsed)
			c.state.CharSpeed = stats.CharsPerMinute(c.state.CharCount, elapsed)
		}
	}
	if remaining > 0 {
		return nil
	}
	c.timer.Stop()
	return c.Apply(ctx, ChangePage(c.state.NextPage))
}

func (c *Controller) step(ctx context.Context, action Action) ([]Action, error) {
	switch action.Kind {
	case ActionInit:
		c.state.Running = true
	case ActionExit:
		c.state.Running = false
		return nil, c.closeStore()
	case ActionCharInput:
		c.typeChar(action.Char)
	case ActionChangePage:
		return c.changePage(action.Page), nil
	case ActionGetRecords:
		c.loadRecords(ctx)
	case ActionPostRecord:
		c.postRecord(ctx)
	case ActionMenu:
		c.state.MenuIndex = 1 - c.state.MenuIndex
	case ActionEmpty:
	}
	return nil, nil
}

func (c *Controller) typeChar(r rune) {
	p := c.state.Position
	if p >= len(c.target) {
		c.state.Running = false
		return
	}
	if c.target[p] != r {
		return
	}
	c.state.Position++
	if r == ' ' {
		c.state.WordCount++
	} else {
		c.state.CharCount++
	}
	if c.state.Position == len(c.target) {
		c.state.Running = false
	}
}

func (c *Controller) changePage(target Page) []Action {
	var follow []Action
	switch target {
	case PageCountDown:
		c.newPassage()
		c.startTimer(CountdownSeconds)
		c.state.NextPage = PageGame
	case PageGame:
		c.startTimer(GameSeconds)
		c.state.NextPage = PageGameResult
	case PageMenu:
		c.state.NextPage = PageCountDown
	case PageRecords:
		follow = append(follow, GetRecords)
		c.timer.Stop()
	case PageGameResult:
		c.timer.Stop()
		follow = append(follow, PostRecord, ChangePage(PageMenu))
	}
	c.state.Page = target
	return follow
}

func (c *Controller) newPassage() {
	var words []string
	if c.passages != nil {
		words = c.passages.Sample(c.words)
	}
	if len(words) == 0 {
		c.RecordFailure(FailurePassage, ErrNoPassage)
	}
	c.state.Passage = strings.ToLower(strings.Join(words, " "))
	c.target = []rune(c.state.Passage)
	c.state.Position = 0
	c.state.CharCount = 0
	c.state.WordCount = 0
	c.state.CharSpeed = 0
	c.state.WordSpeed = 0
}

func (c *Controller) startTimer(seconds int) {
	c.timer.Start(seconds)
	c.duration = seconds
	c.state.Remaining = c.timer.Remaining()
}

func (c *Controller) loadRecords(ctx context.Context) {
	if c.store == nil {
		return
	}
	records, err := c.store.SelectAll(ctx)
	if err != nil {
		c.RecordFailure(FailureOperation, err)
		return
	}
	c.state.Records = records
}

func (c *Controller) postRecord(ctx context.Context) {
	if c.store == nil {
		return
	}
	date := c.clock.Now().Format(time.RFC3339)
	if err := c.store.Insert(ctx, c.state.WordSpeed, c.state.CharSpeed, date); err != nil {
		c.RecordFailure(FailureOperation, err)
	}
}

func (c *Controller) closeStore() error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Close(); err != nil {
		c.RecordFailure(FailureShutdown, err)
		return err
	}
	return nil
}
