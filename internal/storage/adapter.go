// ABOUTME: Persistence adapter saving and loading typed collections per namespace.
// ABOUTME: Corrupt stored content is logged and reported as absent so callers reseed.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gymtrack/internal/models"
)

// Adapter serializes whole collections into a Backend.
type Adapter struct {
	backend Backend
	logger  *log.Logger
}

// NewAdapter wraps a backend. A nil logger discards diagnostics.
func NewAdapter(backend Backend, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{backend: backend, logger: logger}
}

// Backend returns the underlying backend.
func (a *Adapter) Backend() Backend {
	return a.backend
}

// Close closes the underlying backend.
func (a *Adapter) Close() error {
	return a.backend.Close()
}

// Reset deletes a namespace so the owning store reseeds on next start.
func (a *Adapter) Reset(ns Namespace) error {
	if err := a.backend.Delete(string(ns)); err != nil {
		return fmt.Errorf("reset %s: %w", ns, err)
	}
	return nil
}

// SaveExercises replaces the exercises namespace.
func (a *Adapter) SaveExercises(exercises []models.Exercise) error {
	return saveNamespace(a, NamespaceExercises, exercises, ExerciseToRecord)
}

// LoadExercises returns the stored catalog, or ok=false if absent or corrupt.
func (a *Adapter) LoadExercises() ([]models.Exercise, bool, error) {
	return loadNamespace(a, NamespaceExercises, ExerciseFromRecord)
}

// SaveWorkouts replaces the workouts namespace.
func (a *Adapter) SaveWorkouts(workouts []models.Workout) error {
	return saveNamespace(a, NamespaceWorkouts, workouts, WorkoutToRecord)
}

// LoadWorkouts returns the stored workouts, or ok=false if absent or corrupt.
func (a *Adapter) LoadWorkouts() ([]models.Workout, bool, error) {
	return loadNamespace(a, NamespaceWorkouts, WorkoutFromRecord)
}

// SaveBodyMetrics replaces the body-metrics namespace.
func (a *Adapter) SaveBodyMetrics(metrics []models.BodyMetric) error {
	return saveNamespace(a, NamespaceBodyMetrics, metrics, BodyMetricToRecord)
}

// LoadBodyMetrics returns the stored body metrics, or ok=false if absent or corrupt.
func (a *Adapter) LoadBodyMetrics() ([]models.BodyMetric, bool, error) {
	return loadNamespace(a, NamespaceBodyMetrics, BodyMetricFromRecord)
}

// SaveGoals replaces the goals namespace.
func (a *Adapter) SaveGoals(goals []models.Goal) error {
	return saveNamespace(a, NamespaceGoals, goals, GoalToRecord)
}

// LoadGoals returns the stored goals, or ok=false if absent or corrupt.
func (a *Adapter) LoadGoals() ([]models.Goal, bool, error) {
	return loadNamespace(a, NamespaceGoals, GoalFromRecord)
}

func saveNamespace[T, R any](a *Adapter, ns Namespace, items []T, toRecord func(T) R) error {
	records := make([]R, 0, len(items))
	for i, item := range items {
		r := toRecord(item)
		// Nothing is written that a later load would discard.
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("save %s: record %d: %w", ns, i, err)
		}
		records = append(records, r)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ns, err)
	}
	if err := a.backend.Set(string(ns), data); err != nil {
		return fmt.Errorf("save %s: %w", ns, err)
	}
	return nil
}

func loadNamespace[R, T any](a *Adapter, ns Namespace, fromRecord func(R) (T, error)) ([]T, bool, error) {
	data, err := a.backend.Get(string(ns))
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", ns, err)
	}

	items, err := decodeRecords(data, fromRecord)
	if err != nil {
		a.logger.Error("discarding corrupt namespace", "namespace", ns, "err", err)
		return nil, false, nil
	}
	return items, true, nil
}

// decodeRecords parses a JSON array, validates each record and revives it.
func decodeRecords[R, T any](data []byte, fromRecord func(R) (T, error)) ([]T, error) {
	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if records == nil {
		return nil, errors.New("stored value is not an array")
	}
	return reviveRecords(records, fromRecord)
}

func reviveRecords[R, T any](records []R, fromRecord func(R) (T, error)) ([]T, error) {
	items := make([]T, 0, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		item, err := fromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
