// ABOUTME: Stored record shapes and explicit conversions to and from models.
// ABOUTME: Dates are RFC 3339 strings in UTC; required keys are checked with validator.
package storage

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/harperreed/gymtrack/internal/models"
)

var validate = validator.New()

// ExerciseRecord is the stored shape of a catalog exercise.
type ExerciseRecord struct {
	ID           string  `json:"id" yaml:"id" validate:"required"`
	Name         string  `json:"name" yaml:"name"`
	MuscleGroup  string  `json:"muscleGroup" yaml:"muscle_group"`
	Type         string  `json:"type" yaml:"type" validate:"oneof=strength cardio flexibility"`
	Instructions *string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty" yaml:"image_url,omitempty"`
}

// WorkoutSetRecord is the stored shape of one set.
type WorkoutSetRecord struct {
	Reps      int     `json:"reps" yaml:"reps"`
	Weight    float64 `json:"weight" yaml:"weight"`
	Rest      int     `json:"rest" yaml:"rest"`
	Completed bool    `json:"completed" yaml:"completed"`
}

// WorkoutExerciseRecord is the stored shape of an exercise entry in a workout.
type WorkoutExerciseRecord struct {
	ExerciseID     string             `json:"exerciseId" yaml:"exercise_id" validate:"required"`
	Sets           []WorkoutSetRecord `json:"sets" yaml:"sets"`
	Notes          *string            `json:"notes,omitempty" yaml:"notes,omitempty"`
	PersonalRecord bool               `json:"personalRecord,omitempty" yaml:"personal_record,omitempty"`
}

// WorkoutRecord is the stored shape of a workout.
type WorkoutRecord struct {
	ID        string                  `json:"id" yaml:"id" validate:"required"`
	Date      string                  `json:"date" yaml:"date" validate:"required"`
	Exercises []WorkoutExerciseRecord `json:"exercises" yaml:"exercises" validate:"dive"`
	Notes     *string                 `json:"notes,omitempty" yaml:"notes,omitempty"`
	Duration  int                     `json:"duration" yaml:"duration"`
	StartTime string                  `json:"startTime" yaml:"start_time" validate:"required"`
	EndTime   *string                 `json:"endTime,omitempty" yaml:"end_time,omitempty"`
	Type      string                  `json:"type" yaml:"type"`
	Completed bool                    `json:"completed" yaml:"completed"`
}

// MeasurementsRecord is the stored shape of body circumferences.
type MeasurementsRecord struct {
	Chest *float64 `json:"chest,omitempty" yaml:"chest,omitempty"`
	Waist *float64 `json:"waist,omitempty" yaml:"waist,omitempty"`
	Hips  *float64 `json:"hips,omitempty" yaml:"hips,omitempty"`
	Bicep *float64 `json:"bicep,omitempty" yaml:"bicep,omitempty"`
	Thigh *float64 `json:"thigh,omitempty" yaml:"thigh,omitempty"`
}

// BodyMetricRecord is the stored shape of a body metric.
type BodyMetricRecord struct {
	ID           string             `json:"id" yaml:"id" validate:"required"`
	Date         string             `json:"date" yaml:"date" validate:"required"`
	Weight       *float64           `json:"weight,omitempty" yaml:"weight,omitempty"`
	BodyFat      *float64           `json:"bodyFat,omitempty" yaml:"body_fat,omitempty"`
	Measurements MeasurementsRecord `json:"measurements" yaml:"measurements"`
	Photos       []string           `json:"photos,omitempty" yaml:"photos,omitempty"`
}

// MilestoneRecord is the stored shape of a goal milestone.
type MilestoneRecord struct {
	ID           string  `json:"id" yaml:"id" validate:"required"`
	Title        string  `json:"title" yaml:"title"`
	TargetValue  float64 `json:"targetValue" yaml:"target_value"`
	CurrentValue float64 `json:"currentValue" yaml:"current_value"`
	Completed    bool    `json:"completed" yaml:"completed"`
	Deadline     string  `json:"deadline" yaml:"deadline" validate:"required"`
}

// GoalRecord is the stored shape of a goal with its milestones.
type GoalRecord struct {
	ID           string            `json:"id" yaml:"id" validate:"required"`
	Title        string            `json:"title" yaml:"title"`
	Description  string            `json:"description" yaml:"description"`
	Category     string            `json:"category" yaml:"category" validate:"oneof=strength weight endurance flexibility muscle other"`
	TargetValue  float64           `json:"targetValue" yaml:"target_value"`
	CurrentValue float64           `json:"currentValue" yaml:"current_value"`
	Unit         string            `json:"unit" yaml:"unit"`
	Deadline     string            `json:"deadline" yaml:"deadline" validate:"required"`
	Status       string            `json:"status" yaml:"status" validate:"oneof=active completed paused cancelled"`
	CreatedAt    string            `json:"createdAt" yaml:"created_at" validate:"required"`
	UpdatedAt    string            `json:"updatedAt" yaml:"updated_at" validate:"required"`
	Milestones   []MilestoneRecord `json:"milestones" yaml:"milestones" validate:"dive"`
	Notes        *string           `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", field, err)
	}
	return t, nil
}

// ExerciseToRecord converts an exercise to its stored shape.
func ExerciseToRecord(e models.Exercise) ExerciseRecord {
	return ExerciseRecord{
		ID:           e.ID,
		Name:         e.Name,
		MuscleGroup:  e.MuscleGroup,
		Type:         string(e.Type),
		Instructions: e.Instructions,
		ImageURL:     e.ImageURL,
	}
}

// ExerciseFromRecord revives a stored exercise.
func ExerciseFromRecord(r ExerciseRecord) (models.Exercise, error) {
	return models.Exercise{
		ID:           r.ID,
		Name:         r.Name,
		MuscleGroup:  r.MuscleGroup,
		Type:         models.ExerciseType(r.Type),
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
	}, nil
}

// WorkoutToRecord converts a workout to its stored shape.
func WorkoutToRecord(w models.Workout) WorkoutRecord {
	r := WorkoutRecord{
		ID:        w.ID,
		Date:      formatTime(w.Date),
		Exercises: make([]WorkoutExerciseRecord, 0, len(w.Exercises)),
		Notes:     w.Notes,
		Duration:  w.Duration,
		StartTime: formatTime(w.StartTime),
		Type:      w.Type,
		Completed: w.Completed,
	}
	if w.EndTime != nil {
		end := formatTime(*w.EndTime)
		r.EndTime = &end
	}
	for _, e := range w.Exercises {
		er := WorkoutExerciseRecord{
			ExerciseID:     e.ExerciseID,
			Sets:           make([]WorkoutSetRecord, 0, len(e.Sets)),
			Notes:          e.Notes,
			PersonalRecord: e.PersonalRecord,
		}
		for _, s := range e.Sets {
			er.Sets = append(er.Sets, WorkoutSetRecord(s))
		}
		r.Exercises = append(r.Exercises, er)
	}
	return r
}

// WorkoutFromRecord revives a stored workout, parsing its dates.
func WorkoutFromRecord(r WorkoutRecord) (models.Workout, error) {
	date, err := parseTime("date", r.Date)
	if err != nil {
		return models.Workout{}, err
	}
	start, err := parseTime("startTime", r.StartTime)
	if err != nil {
		return models.Workout{}, err
	}
	w := models.Workout{
		ID:        r.ID,
		Date:      date,
		Exercises: make([]models.WorkoutExercise, 0, len(r.Exercises)),
		Notes:     r.Notes,
		Duration:  r.Duration,
		StartTime: start,
		Type:      r.Type,
		Completed: r.Completed,
	}
	if r.EndTime != nil {
		end, err := parseTime("endTime", *r.EndTime)
		if err != nil {
			return models.Workout{}, err
		}
		w.EndTime = &end
	}
	for _, er := range r.Exercises {
		e := models.WorkoutExercise{
			ExerciseID:     er.ExerciseID,
			Sets:           make([]models.WorkoutSet, 0, len(er.Sets)),
			Notes:          er.Notes,
			PersonalRecord: er.PersonalRecord,
		}
		for _, s := range er.Sets {
			e.Sets = append(e.Sets, models.WorkoutSet(s))
		}
		w.Exercises = append(w.Exercises, e)
	}
	return w, nil
}

// BodyMetricToRecord converts a body metric to its stored shape.
func BodyMetricToRecord(m models.BodyMetric) BodyMetricRecord {
	return BodyMetricRecord{
		ID:           m.ID,
		Date:         formatTime(m.Date),
		Weight:       m.Weight,
		BodyFat:      m.BodyFat,
		Measurements: MeasurementsRecord(m.Measurements),
		Photos:       m.Photos,
	}
}

// BodyMetricFromRecord revives a stored body metric.
func BodyMetricFromRecord(r BodyMetricRecord) (models.BodyMetric, error) {
	date, err := parseTime("date", r.Date)
	if err != nil {
		return models.BodyMetric{}, err
	}
	return models.BodyMetric{
		ID:           r.ID,
		Date:         date,
		Weight:       r.Weight,
		BodyFat:      r.BodyFat,
		Measurements: models.Measurements(r.Measurements),
		Photos:       r.Photos,
	}, nil
}

// GoalToRecord converts a goal and its milestones to the stored shape.
func GoalToRecord(g models.Goal) GoalRecord {
	r := GoalRecord{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		Category:     string(g.Category),
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Deadline:     formatTime(g.Deadline),
		Status:       string(g.Status),
		CreatedAt:    formatTime(g.CreatedAt),
		UpdatedAt:    formatTime(g.UpdatedAt),
		Milestones:   make([]MilestoneRecord, 0, len(g.Milestones)),
		Notes:        g.Notes,
	}
	for _, m := range g.Milestones {
		r.Milestones = append(r.Milestones, MilestoneRecord{
			ID:           m.ID,
			Title:        m.Title,
			TargetValue:  m.TargetValue,
			CurrentValue: m.CurrentValue,
			Completed:    m.Completed,
			Deadline:     formatTime(m.Deadline),
		})
	}
	return r
}

// GoalFromRecord revives a stored goal, parsing every timestamp.
func GoalFromRecord(r GoalRecord) (models.Goal, error) {
	deadline, err := parseTime("deadline", r.Deadline)
	if err != nil {
		return models.Goal{}, err
	}
	created, err := parseTime("createdAt", r.CreatedAt)
	if err != nil {
		return models.Goal{}, err
	}
	updated, err := parseTime("updatedAt", r.UpdatedAt)
	if err != nil {
		return models.Goal{}, err
	}
	g := models.Goal{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Category:     models.GoalCategory(r.Category),
		TargetValue:  r.TargetValue,
		CurrentValue: r.CurrentValue,
		Unit:         r.Unit,
		Deadline:     deadline,
		Status:       models.GoalStatus(r.Status),
		CreatedAt:    created,
		UpdatedAt:    updated,
		Milestones:   make([]models.Milestone, 0, len(r.Milestones)),
		Notes:        r.Notes,
	}
	for _, mr := range r.Milestones {
		md, err := parseTime("milestone deadline", mr.Deadline)
		if err != nil {
			return models.Goal{}, err
		}
		g.Milestones = append(g.Milestones, models.Milestone{
			ID:           mr.ID,
			Title:        mr.Title,
			TargetValue:  mr.TargetValue,
			CurrentValue: mr.CurrentValue,
			Completed:    mr.Completed,
			Deadline:     md,
		})
	}
	return g, nil
}
