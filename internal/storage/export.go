// ABOUTME: Export and import of all four namespaces.
// ABOUTME: Supports JSON and YAML documents; JSON is the import format.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/gymtrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the current export document version.
const ExportVersion = "1.0"

// ExportData represents the full export format for tracker data.
type ExportData struct {
	Version     string             `json:"version" yaml:"version"`
	ExportedAt  time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool        string             `json:"tool" yaml:"tool"`
	Exercises   []ExerciseRecord   `json:"exercises" yaml:"exercises"`
	Workouts    []WorkoutRecord    `json:"workouts" yaml:"workouts"`
	BodyMetrics []BodyMetricRecord `json:"body_metrics" yaml:"body_metrics"`
	Goals       []GoalRecord       `json:"goals" yaml:"goals"`
}

// Collections is a snapshot of every persisted collection.
type Collections struct {
	Exercises   []models.Exercise
	Workouts    []models.Workout
	BodyMetrics []models.BodyMetric
	Goals       []models.Goal
}

// NewExportData builds an export document from a snapshot.
func NewExportData(c Collections, exportedAt time.Time) *ExportData {
	d := &ExportData{
		Version:     ExportVersion,
		ExportedAt:  exportedAt,
		Tool:        "gymtrack",
		Exercises:   make([]ExerciseRecord, 0, len(c.Exercises)),
		Workouts:    make([]WorkoutRecord, 0, len(c.Workouts)),
		BodyMetrics: make([]BodyMetricRecord, 0, len(c.BodyMetrics)),
		Goals:       make([]GoalRecord, 0, len(c.Goals)),
	}
	for _, e := range c.Exercises {
		d.Exercises = append(d.Exercises, ExerciseToRecord(e))
	}
	for _, w := range c.Workouts {
		d.Workouts = append(d.Workouts, WorkoutToRecord(w))
	}
	for _, m := range c.BodyMetrics {
		d.BodyMetrics = append(d.BodyMetrics, BodyMetricToRecord(m))
	}
	for _, g := range c.Goals {
		d.Goals = append(d.Goals, GoalToRecord(g))
	}
	return d
}

// Collections validates and revives every record in the document.
func (d *ExportData) Collections() (Collections, error) {
	var c Collections
	var err error
	if c.Exercises, err = reviveRecords(d.Exercises, ExerciseFromRecord); err != nil {
		return Collections{}, fmt.Errorf("exercises: %w", err)
	}
	if c.Workouts, err = reviveRecords(d.Workouts, WorkoutFromRecord); err != nil {
		return Collections{}, fmt.Errorf("workouts: %w", err)
	}
	if c.BodyMetrics, err = reviveRecords(d.BodyMetrics, BodyMetricFromRecord); err != nil {
		return Collections{}, fmt.Errorf("body metrics: %w", err)
	}
	if c.Goals, err = reviveRecords(d.Goals, GoalFromRecord); err != nil {
		return Collections{}, fmt.Errorf("goals: %w", err)
	}
	return c, nil
}

// ToJSON renders the document as indented JSON.
func (d *ExportData) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ToYAML renders the document as YAML.
func (d *ExportData) ToYAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// ParseExportJSON reads a JSON export document.
func ParseExportJSON(data []byte) (*ExportData, error) {
	var d ExportData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	if d.Version == "" {
		return nil, fmt.Errorf("parse export: missing version")
	}
	return &d, nil
}

// Import validates a document and replaces all four namespaces with its contents.
func (a *Adapter) Import(d *ExportData) (Collections, error) {
	c, err := d.Collections()
	if err != nil {
		return Collections{}, fmt.Errorf("validate import: %w", err)
	}
	if err := a.SaveExercises(c.Exercises); err != nil {
		return Collections{}, err
	}
	if err := a.SaveWorkouts(c.Workouts); err != nil {
		return Collections{}, err
	}
	if err := a.SaveBodyMetrics(c.BodyMetrics); err != nil {
		return Collections{}, err
	}
	if err := a.SaveGoals(c.Goals); err != nil {
		return Collections{}, err
	}
	return c, nil
}
