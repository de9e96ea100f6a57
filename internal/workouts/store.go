// ABOUTME: Workout domain store owning workouts and body metrics.
// ABOUTME: Every mutation updates memory and then rewrites its namespace.
package workouts

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gymtrack/internal/models"
)

// Storage persists the workout and body-metric collections.
type Storage interface {
	LoadWorkouts() ([]models.Workout, bool, error)
	SaveWorkouts(workouts []models.Workout) error
	LoadBodyMetrics() ([]models.BodyMetric, bool, error)
	SaveBodyMetrics(metrics []models.BodyMetric) error
}

// Catalog is the exercise catalog the store delegates to.
type Catalog interface {
	Add(e models.Exercise) (models.Exercise, error)
	Lookup(id string) (models.Exercise, bool)
	ByMuscleGroup() map[string][]models.Exercise
}

// Store holds workouts and body metrics in insertion order.
type Store struct {
	storage   Storage
	catalog   Catalog
	logger    *log.Logger
	now       func() time.Time
	weekStart time.Weekday

	workouts    []models.Workout
	bodyMetrics []models.BodyMetric
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithWeekStart sets the first day of the week for weekly views.
func WithWeekStart(day time.Weekday) Option {
	return func(s *Store) { s.weekStart = day }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a store. Call Initialize before use.
func New(storage Storage, catalog Catalog, opts ...Option) *Store {
	s := &Store{
		storage:   storage,
		catalog:   catalog,
		logger:    log.New(io.Discard),
		now:       time.Now,
		weekStart: time.Monday,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads workouts and body metrics. Missing workouts are seeded
// with sample sessions; missing body metrics start empty.
func (s *Store) Initialize() error {
	workouts, ok, err := s.storage.LoadWorkouts()
	if err != nil {
		return fmt.Errorf("load workouts: %w", err)
	}
	if ok {
		s.workouts = workouts
	} else {
		s.workouts = SampleWorkouts(s.now())
		s.logger.Info("seeded sample workouts", "count", len(s.workouts))
		if err := s.persistWorkouts(); err != nil {
			return err
		}
	}

	metrics, ok, err := s.storage.LoadBodyMetrics()
	if err != nil {
		return fmt.Errorf("load body metrics: %w", err)
	}
	if ok {
		s.bodyMetrics = metrics
	} else {
		s.bodyMetrics = []models.BodyMetric{}
	}
	return nil
}

// Workouts returns a snapshot of all workouts in insertion order.
func (s *Store) Workouts() []models.Workout {
	out := make([]models.Workout, len(s.workouts))
	for i, w := range s.workouts {
		out[i] = w.Clone()
	}
	return out
}

// BodyMetrics returns a snapshot of all body metrics in insertion order.
func (s *Store) BodyMetrics() []models.BodyMetric {
	out := make([]models.BodyMetric, len(s.bodyMetrics))
	for i, m := range s.bodyMetrics {
		out[i] = m.Clone()
	}
	return out
}

// Get returns the workout with the given ID.
func (s *Store) Get(id string) (models.Workout, bool) {
	if i := s.index(id); i >= 0 {
		return s.workouts[i].Clone(), true
	}
	return models.Workout{}, false
}

// Create assigns a fresh ID, appends the workout and persists. Entries
// without an exercise ID are rejected with models.ErrInvalid.
func (s *Store) Create(w models.Workout) (models.Workout, error) {
	w = w.Clone()
	if err := w.Validate(); err != nil {
		return models.Workout{}, err
	}
	w.ID = models.NewID()
	if w.Exercises == nil {
		w.Exercises = []models.WorkoutExercise{}
	}
	s.workouts = append(s.workouts, w)
	if err := s.persistWorkouts(); err != nil {
		return w.Clone(), err
	}
	return w.Clone(), nil
}

// Update merges the patch into the workout. Unknown IDs are ignored and
// entries without an exercise ID are rejected unapplied.
func (s *Store) Update(id string, patch models.WorkoutPatch) error {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("update of unknown workout ignored", "id", id)
		return nil
	}
	w := s.workouts[i].Clone()
	patch.Apply(&w)
	if err := w.Validate(); err != nil {
		return err
	}
	s.workouts[i] = w
	return s.persistWorkouts()
}

// Delete removes the workout. Unknown IDs are ignored.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("delete of unknown workout ignored", "id", id)
		return nil
	}
	s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
	return s.persistWorkouts()
}

// AddExercise adds a new exercise to the catalog.
func (s *Store) AddExercise(e models.Exercise) (models.Exercise, error) {
	return s.catalog.Add(e)
}

// LookupExercise resolves an exercise ID referenced by a workout entry.
func (s *Store) LookupExercise(id string) (models.Exercise, bool) {
	return s.catalog.Lookup(id)
}

// AddBodyMetric assigns a fresh ID, appends the metric and persists.
func (s *Store) AddBodyMetric(m models.BodyMetric) (models.BodyMetric, error) {
	m = m.Clone()
	m.ID = models.NewID()
	s.bodyMetrics = append(s.bodyMetrics, m)
	if err := s.storage.SaveBodyMetrics(s.bodyMetrics); err != nil {
		return m.Clone(), fmt.Errorf("save body metrics: %w", err)
	}
	return m.Clone(), nil
}

// QuickCheckIn returns today's workout, creating an empty "General" one if needed.
func (s *Store) QuickCheckIn() (models.Workout, error) {
	if w, ok := s.TodayWorkout(); ok {
		return w, nil
	}
	now := s.now()
	return s.Create(models.Workout{
		Date:      now,
		Exercises: []models.WorkoutExercise{},
		Duration:  0,
		StartTime: now,
		Type:      "General",
	})
}

func (s *Store) index(id string) int {
	for i, w := range s.workouts {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistWorkouts() error {
	if err := s.storage.SaveWorkouts(s.workouts); err != nil {
		return fmt.Errorf("save workouts: %w", err)
	}
	return nil
}
