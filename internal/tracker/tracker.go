// ABOUTME: Composition root wiring the catalog, workout and goal stores to storage.
// ABOUTME: Open is gated on an authenticated session; Close releases the backend.
package tracker

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gymtrack/internal/catalog"
	"github.com/harperreed/gymtrack/internal/goals"
	"github.com/harperreed/gymtrack/internal/session"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/harperreed/gymtrack/internal/workouts"
)

// ErrNotAuthenticated is returned by Open when no user is signed in.
var ErrNotAuthenticated = errors.New("not signed in")

// Tracker owns the domain stores for one signed-in session.
type Tracker struct {
	Catalog  *catalog.Catalog
	Workouts *workouts.Store
	Goals    *goals.Store

	session *session.Session
	adapter *storage.Adapter
	now     func() time.Time
}

type options struct {
	logger *log.Logger
	now    func() time.Time
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the logger shared by every store.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock replaces time.Now in every store.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Open builds and initializes every store. The adapter is owned by the
// returned Tracker and closed by Close.
func Open(sess *session.Session, adapter *storage.Adapter, opts ...Option) (*Tracker, error) {
	if !sess.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	o := options{logger: log.New(io.Discard), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	cat := catalog.New(adapter, o.logger)
	t := &Tracker{
		Catalog: cat,
		Workouts: workouts.New(adapter, cat,
			workouts.WithClock(o.now),
			workouts.WithLogger(o.logger),
			workouts.WithWeekStart(sess.Preferences().WeekStart()),
		),
		Goals: goals.New(adapter,
			goals.WithClock(o.now),
			goals.WithLogger(o.logger),
		),
		session: sess,
		adapter: adapter,
		now:     o.now,
	}

	if err := t.Catalog.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize catalog: %w", err)
	}
	if err := t.Workouts.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize workouts: %w", err)
	}
	if err := t.Goals.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize goals: %w", err)
	}
	return t, nil
}

// Session returns the session the tracker was opened with.
func (t *Tracker) Session() *session.Session {
	return t.session
}

// Now returns the tracker's current time.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Snapshot returns copies of all four collections.
func (t *Tracker) Snapshot() storage.Collections {
	return storage.Collections{
		Exercises:   t.Catalog.Exercises(),
		Workouts:    t.Workouts.Workouts(),
		BodyMetrics: t.Workouts.BodyMetrics(),
		Goals:       t.Goals.Goals(),
	}
}

// Export builds an export document from the current state.
func (t *Tracker) Export() *storage.ExportData {
	return storage.NewExportData(t.Snapshot(), t.now())
}

// Import replaces every namespace with the document's contents and reloads the stores.
func (t *Tracker) Import(d *storage.ExportData) error {
	if _, err := t.adapter.Import(d); err != nil {
		return err
	}
	return t.reload()
}

// Reset deletes one namespace and reloads, reseeding it where the store seeds.
func (t *Tracker) Reset(ns storage.Namespace) error {
	if err := t.adapter.Reset(ns); err != nil {
		return err
	}
	return t.reload()
}

// Summary is a dashboard view across both stores.
type Summary struct {
	TotalWorkouts   int
	ThisWeek        int
	WeeklyFrequency float64
	CheckedInToday  bool
	ActiveGoals     int
	CompletedGoals  int
	GoalsProgress   int
	LatestWeight    *float64
	LatestBodyFat   *float64
}

// Summary computes the dashboard view.
func (t *Tracker) Summary() Summary {
	_, today := t.Workouts.TodayWorkout()
	s := Summary{
		TotalWorkouts:   t.Workouts.TotalWorkouts(),
		ThisWeek:        len(t.Workouts.ThisWeekWorkouts()),
		WeeklyFrequency: t.Workouts.WeeklyFrequency(),
		CheckedInToday:  today,
		ActiveGoals:     len(t.Goals.ActiveGoals()),
		CompletedGoals:  len(t.Goals.CompletedGoals()),
		GoalsProgress:   t.Goals.GoalsProgress(),
	}
	if m, ok := t.Workouts.LatestBodyMetrics(); ok {
		s.LatestWeight = m.Weight
		s.LatestBodyFat = m.BodyFat
	}
	return s
}

// Close releases the storage backend.
func (t *Tracker) Close() error {
	return t.adapter.Close()
}

func (t *Tracker) reload() error {
	if err := t.Catalog.Initialize(); err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	if err := t.Workouts.Initialize(); err != nil {
		return fmt.Errorf("reload workouts: %w", err)
	}
	if err := t.Goals.Initialize(); err != nil {
		return fmt.Errorf("reload goals: %w", err)
	}
	return nil
}
