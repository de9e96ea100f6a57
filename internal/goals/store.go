// ABOUTME: Goal domain store owning goals and their embedded milestones.
// ABOUTME: UpdateProgress is the only path that completes a goal automatically.
package goals

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gymtrack/internal/models"
)

// Storage persists the goal collection.
type Storage interface {
	LoadGoals() ([]models.Goal, bool, error)
	SaveGoals(goals []models.Goal) error
}

// Store holds goals in insertion order.
type Store struct {
	storage Storage
	logger  *log.Logger
	now     func() time.Time
	goals   []models.Goal
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a store. Call Initialize before use.
func New(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  log.New(io.Discard),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads goals, seeding three sample goals when none are stored.
func (s *Store) Initialize() error {
	goals, ok, err := s.storage.LoadGoals()
	if err != nil {
		return fmt.Errorf("load goals: %w", err)
	}
	if ok {
		s.goals = goals
		return nil
	}
	s.goals = SampleGoals(s.now())
	s.logger.Info("seeded sample goals", "count", len(s.goals))
	return s.persist()
}

// Goals returns a snapshot of all goals.
func (s *Store) Goals() []models.Goal {
	out := make([]models.Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = g.Clone()
	}
	return out
}

// Get returns the goal with the given ID.
func (s *Store) Get(id string) (models.Goal, bool) {
	if i := s.index(id); i >= 0 {
		return s.goals[i].Clone(), true
	}
	return models.Goal{}, false
}

// Add assigns an ID and both timestamps, appends the goal and persists.
// A missing status or category defaults to active and other; an unknown
// one is rejected with models.ErrInvalid before anything changes.
func (s *Store) Add(g models.Goal) (models.Goal, error) {
	g = g.Clone()
	g.Normalize()
	if err := g.Validate(); err != nil {
		return models.Goal{}, err
	}
	now := s.now()
	g.ID = models.NewID()
	g.CreatedAt = now
	g.UpdatedAt = now
	s.goals = append(s.goals, g)
	if err := s.persist(); err != nil {
		return g.Clone(), err
	}
	return g.Clone(), nil
}

// Update merges the patch into the goal and advances UpdatedAt.
// CreatedAt and ID never change. Unknown IDs are ignored. A patch that
// would leave an unknown status or category is rejected unapplied.
func (s *Store) Update(id string, patch models.GoalPatch) error {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("update of unknown goal ignored", "id", id)
		return nil
	}
	g := s.goals[i].Clone()
	patch.Apply(&g)
	g.Normalize()
	if err := g.Validate(); err != nil {
		return err
	}
	s.touch(&g)
	s.goals[i] = g
	return s.persist()
}

// Delete removes the goal and its milestones. Unknown IDs are ignored.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("delete of unknown goal ignored", "id", id)
		return nil
	}
	s.goals = append(s.goals[:i], s.goals[i+1:]...)
	return s.persist()
}

// UpdateProgress sets the current value. An active goal that reaches its
// target becomes completed; completion is never undone here.
func (s *Store) UpdateProgress(id string, value float64) error {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("progress for unknown goal ignored", "id", id)
		return nil
	}
	g := &s.goals[i]
	g.CurrentValue = value
	s.touch(g)
	if value >= g.TargetValue && g.Status == models.GoalActive {
		g.Status = models.GoalCompleted
		s.logger.Info("goal completed", "id", g.ID, "title", g.Title)
	}
	return s.persist()
}

// AddMilestone appends a milestone with a fresh ID to a goal. The bool
// reports whether the goal exists.
func (s *Store) AddMilestone(goalID string, m models.Milestone) (models.Milestone, bool, error) {
	i := s.index(goalID)
	if i < 0 {
		s.logger.Debug("milestone for unknown goal ignored", "goal", goalID)
		return models.Milestone{}, false, nil
	}
	m.ID = models.NewID()
	g := &s.goals[i]
	g.Milestones = append(g.Milestones, m)
	s.touch(g)
	return m, true, s.persist()
}

// UpdateMilestone merges the patch into a milestone. Unknown IDs are ignored.
func (s *Store) UpdateMilestone(goalID, milestoneID string, patch models.MilestonePatch) error {
	i, j := s.milestoneIndex(goalID, milestoneID)
	if j < 0 {
		s.logger.Debug("update of unknown milestone ignored", "goal", goalID, "milestone", milestoneID)
		return nil
	}
	g := &s.goals[i]
	patch.Apply(&g.Milestones[j])
	s.touch(g)
	return s.persist()
}

// DeleteMilestone removes a milestone. Unknown IDs are ignored.
func (s *Store) DeleteMilestone(goalID, milestoneID string) error {
	i, j := s.milestoneIndex(goalID, milestoneID)
	if j < 0 {
		s.logger.Debug("delete of unknown milestone ignored", "goal", goalID, "milestone", milestoneID)
		return nil
	}
	g := &s.goals[i]
	g.Milestones = append(g.Milestones[:j], g.Milestones[j+1:]...)
	s.touch(g)
	return s.persist()
}

// touch sets UpdatedAt to now, nudging it forward when the clock has not moved.
func (s *Store) touch(g *models.Goal) {
	now := s.now()
	if !now.After(g.UpdatedAt) {
		now = g.UpdatedAt.Add(time.Nanosecond)
	}
	g.UpdatedAt = now
}

func (s *Store) index(id string) int {
	for i, g := range s.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) milestoneIndex(goalID, milestoneID string) (int, int) {
	i := s.index(goalID)
	if i < 0 {
		return -1, -1
	}
	for j, m := range s.goals[i].Milestones {
		if m.ID == milestoneID {
			return i, j
		}
	}
	return i, -1
}

func (s *Store) persist() error {
	if err := s.storage.SaveGoals(s.goals); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	return nil
}
