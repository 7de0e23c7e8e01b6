// Package tracker owns the dashboard's local state and reconciles it with
// the remote record store. Mutations apply to local state synchronously and
// are mirrored to the remote asynchronously; the two are allowed to diverge
// until the next full reload.
package tracker

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/habit"
	"tableflip.dev/habitx/pkg/history"
	"tableflip.dev/habitx/pkg/insight"
	"tableflip.dev/habitx/pkg/remote"
	"tableflip.dev/habitx/pkg/session"
	"tableflip.dev/habitx/pkg/stats"
)

// State is the controller's position in the session lifecycle.
type State int

const (
	// StateAnonymous means no session: nothing loaded, mutations rejected.
	StateAnonymous State = iota
	// StateLoading means a session exists and remote data is being fetched.
	StateLoading
	// StateReady means the dashboard is interactive.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "anonymous"
	}
}

// tokenSetter is implemented by remotes that honor per-session credentials.
type tokenSetter interface {
	SetToken(token string)
}

// watcher is implemented by remotes that can report out-of-band changes to
// their records, like another process writing the local store.
type watcher interface {
	Watch(ctx context.Context) (<-chan remote.Event, error)
}

// Controller is the sync controller. Construct with New, then Start; every
// other method is safe to call from the UI loop and the session watcher.
type Controller struct {
	store    remote.Interface
	sessions session.Provider
	log      *zap.Logger
	today    func() datekey.Key

	mu      sync.Mutex
	state   State
	session *session.Session
	habits  *habit.Registry
	goals   *habit.GoalRegistry
	history *history.Store
	closed  bool

	mirror      chan mirrorOp
	drainDone   chan struct{}
	unsubscribe func()
	closeOnce   sync.Once

	mirrorFailed  atomic.Uint64
	mirrorDropped atomic.Uint64
}

// Option adjusts a Controller at construction.
type Option func(*Controller)

// WithToday pins the controller's clock, for tests.
func WithToday(today func() datekey.Key) Option {
	return func(c *Controller) {
		c.today = today
		c.history = history.NewStoreAt(today)
	}
}

// New wires a controller to its collaborators. The remote and the session
// provider are injected explicitly; there is no package-level client.
func New(store remote.Interface, sessions session.Provider, log *zap.Logger, opts ...Option) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		store:     store,
		sessions:  sessions,
		log:       log,
		today:     datekey.Today,
		state:     StateAnonymous,
		habits:    habit.NewRegistry(),
		goals:     habit.NewGoalRegistry(),
		history:   history.NewStore(),
		mirror:    make(chan mirrorOp, 64),
		drainDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.drain()
	return c
}

// Start detects a persisted session, loads its data, and subscribes to
// session changes. A missing session leaves the controller anonymous; the
// subscription picks up a later sign-in.
func (c *Controller) Start(ctx context.Context) error {
	if c.sessions != nil {
		unsubscribe, err := c.sessions.OnChange(func(s *session.Session) {
			c.onSessionChange(ctx, s)
		})
		if err != nil {
			c.log.Warn("session subscription failed", zap.Error(err))
		} else {
			c.unsubscribe = unsubscribe
		}

		s, err := c.sessions.Current()
		if err != nil {
			c.log.Warn("session detection failed", zap.Error(err))
			return nil
		}
		c.onSessionChange(ctx, s)
	}

	if w, ok := c.store.(watcher); ok {
		events, err := w.Watch(ctx)
		if err != nil {
			c.log.Warn("store watch unavailable", zap.Error(err))
		} else {
			go c.followStore(ctx, events)
		}
	}
	return nil
}

// followStore reloads when the record store changes underneath us. Events
// caused by our own mirror writes just make the reload a no-op refresh.
func (c *Controller) followStore(ctx context.Context, events <-chan remote.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			c.Reload(ctx)
		}
	}
}

// Close tears the controller down: the session subscription is released
// exactly once, the controller drops to anonymous, and the mirror drain
// stops listening. In-flight mirror calls are not cancelled. Mutations and
// reloads after Close are silent no-ops.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		// Mark closed under the same lock mutations enqueue under, so no
		// send can race the close of the mirror channel below.
		c.mu.Lock()
		c.closed = true
		c.state = StateAnonymous
		c.session = nil
		c.mu.Unlock()
		close(c.mirror)
		<-c.drainDone
	})
}

// State reports the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns the signed-in session, nil when anonymous.
func (c *Controller) Session() *session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// MirrorFailures counts remote mirror calls that failed since construction.
func (c *Controller) MirrorFailures() uint64 {
	return c.mirrorFailed.Load()
}

func (c *Controller) onSessionChange(ctx context.Context, s *session.Session) {
	if s == nil {
		c.toAnonymous()
		return
	}

	c.mu.Lock()
	c.state = StateLoading
	c.session = s
	c.mu.Unlock()

	if ts, ok := c.store.(tokenSetter); ok {
		ts.SetToken(s.Token)
	}
	c.load(ctx, s.Owner)
}

func (c *Controller) toAnonymous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateAnonymous
	c.session = nil
	c.habits.Reset()
	c.goals.Reset()
	c.history.Reset()
}

// load fetches habits, goals, and history for the owner. Every fetch fails
// open: an error leaves that collection empty and the dashboard still lands
// in ready.
func (c *Controller) load(ctx context.Context, owner string) {
	habits := c.fetch(ctx, remote.TableHabits, owner)
	goals := c.fetch(ctx, remote.TableGoals, owner)
	days := c.fetch(ctx, remote.TableHistory, owner)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.habits.Reset()
	for _, rec := range habits {
		if h := decodeHabit(rec); h != nil {
			c.habits.Add(h)
		}
	}
	if c.habits.Len() == 0 {
		// A fresh account starts with the seed protocols; mirror them so a
		// reload does not lose them again.
		for _, h := range habit.Seed() {
			if c.habits.Add(h) == "" {
				continue
			}
			row := encodeHabit(owner, h)
			c.enqueue(mirrorOp{
				table: remote.TableHabits,
				kind:  "insert",
				apply: func(ctx context.Context, store remote.Interface) error {
					_, err := store.Insert(ctx, remote.TableHabits, row)
					return err
				},
			})
		}
	}

	c.goals.Reset()
	for _, rec := range goals {
		if g := decodeGoal(rec); g != nil {
			c.goals.Add(g)
		}
	}

	c.history.Reset()
	for _, rec := range days {
		if date, flags, ok := decodeDay(rec); ok {
			c.history.Upsert(date, flags)
		}
	}

	c.state = StateReady
}

func (c *Controller) fetch(ctx context.Context, table, owner string) []remote.Record {
	rows, err := c.store.List(ctx, table, owner)
	if err != nil {
		c.log.Warn("load failed, keeping partial data",
			zap.String("table", table), zap.Error(err))
		return nil
	}
	return rows
}

// Reload refetches everything for the current session.
func (c *Controller) Reload(ctx context.Context) {
	c.mu.Lock()
	s := c.session
	if s == nil {
		c.mu.Unlock()
		return
	}
	c.state = StateLoading
	c.mu.Unlock()
	c.load(ctx, s.Owner)
}

// SignOut asks the provider to end the session and, on success, discards
// local state. A provider that refuses keeps the session intact.
func (c *Controller) SignOut(ctx context.Context) error {
	if c.sessions != nil {
		if err := c.sessions.SignOut(ctx); err != nil {
			return err
		}
	}
	c.toAnonymous()
	return nil
}

// ready guards mutations: outside ready they are silent no-ops.
func (c *Controller) readyLocked() bool {
	return c.state == StateReady && c.session != nil
}

// drain runs the mirror queue: ops dispatch in the order mutations were
// applied locally, each with its own deadline, and failures only feed the
// counter and the log.
func (c *Controller) drain() {
	defer close(c.drainDone)
	for op := range c.mirror {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err := op.apply(ctx, c.store)
		cancel()
		if err != nil {
			c.mirrorFailed.Add(1)
			c.log.Warn("mirror failed",
				zap.String("table", op.table),
				zap.String("kind", op.kind),
				zap.Error(err))
		}
	}
}

// enqueue hands an op to the mirror queue without ever blocking the caller.
// A full queue drops the op; the divergence heals on the next reload. Callers
// hold c.mu, which orders the closed check against Close.
func (c *Controller) enqueue(op mirrorOp) {
	if c.closed {
		return
	}
	select {
	case c.mirror <- op:
	default:
		c.mirrorDropped.Add(1)
		c.log.Warn("mirror queue full, dropping op",
			zap.String("table", op.table), zap.String("kind", op.kind))
	}
}

// Habits returns the registered habits in order.
func (c *Controller) Habits() []*habit.Habit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.habits.List()
}

// Goals returns the registered goals in order.
func (c *Controller) Goals() []*habit.Goal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.goals.List()
}

// FindHabit resolves a habit by id, case-insensitive name, or 1-based list
// position.
func (c *Controller) FindHabit(ref string) (*habit.Habit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return findIn(c.habits.List(), ref, func(h *habit.Habit) (string, string) {
		return h.ID, h.Name
	})
}

// FindGoal resolves a goal by id, case-insensitive name, or 1-based list
// position.
func (c *Controller) FindGoal(ref string) (*habit.Goal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return findIn(c.goals.List(), ref, func(g *habit.Goal) (string, string) {
		return g.ID, g.Name
	})
}

func findIn[T any](list []T, ref string, fields func(T) (id, name string)) (T, bool) {
	var zero T
	for _, item := range list {
		if id, _ := fields(item); id == ref {
			return item, true
		}
	}
	for _, item := range list {
		if _, name := fields(item); strings.EqualFold(name, ref) {
			return item, true
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(list) {
		return list[n-1], true
	}
	return zero, false
}

// Day returns the completion record for one date.
func (c *Controller) Day(date datekey.Key) history.DayRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Get(date)
}

// Window returns the trailing n days ending today, oldest first.
func (c *Controller) Window(n int) []history.DayRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stats.WindowDays(c.history, c.today(), n)
}

// Heatmap collects the trailing heatmap series into a slice.
func (c *Controller) Heatmap(windowDays int) []stats.HeatmapPoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]stats.HeatmapPoint, 0, windowDays)
	for p := range stats.HeatmapSeries(c.history, c.today(), windowDays) {
		out = append(out, p)
	}
	return out
}

// Progress is today's completion percentage over registered habits.
func (c *Controller) Progress(date datekey.Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stats.DailyProgress(c.history, c.habits, date)
}

// Streak is the number of days with recorded activity.
func (c *Controller) Streak() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stats.Streak(c.history)
}

// InsightSnapshot builds the summarizer's view of current state.
func (c *Controller) InsightSnapshot() insight.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return insight.BuildSnapshot(c.habits, c.history, c.today())
}
