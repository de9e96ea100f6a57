// ABOUTME: Sample goals seeded on first run.
// ABOUTME: One strength, one weight and one endurance goal, each with milestones.
package goals

import (
	"time"

	"github.com/harperreed/gymtrack/internal/models"
)

// SampleGoals returns the three starter goals relative to now.
func SampleGoals(now time.Time) []models.Goal {
	days := func(n int) time.Time { return now.AddDate(0, 0, n) }
	notes := func(s string) *string { return &s }
	milestone := func(title string, target, current float64, due time.Time) models.Milestone {
		return models.Milestone{ID: models.NewID(), Title: title, TargetValue: target, CurrentValue: current, Deadline: due}
	}

	return []models.Goal{
		{
			ID:           models.NewID(),
			Title:        "Increase bench press strength",
			Description:  "Raise the one-rep max on the flat bench press",
			Category:     models.GoalStrength,
			TargetValue:  100,
			CurrentValue: 70,
			Unit:         "kg",
			Deadline:     now.AddDate(0, 1, 0),
			Status:       models.GoalActive,
			CreatedAt:    days(-30),
			UpdatedAt:    now,
			Milestones: []models.Milestone{
				milestone("Reach 80kg", 80, 70, days(15)),
				milestone("Reach 90kg", 90, 70, days(30)),
			},
			Notes: notes("Focus on technique and gradual progression"),
		},
		{
			ID:           models.NewID(),
			Title:        "Lose weight",
			Description:  "Bring body weight down for health and performance",
			Category:     models.GoalWeight,
			TargetValue:  75,
			CurrentValue: 82,
			Unit:         "kg",
			Deadline:     now.AddDate(0, 3, 0),
			Status:       models.GoalActive,
			CreatedAt:    days(-60),
			UpdatedAt:    now,
			Milestones: []models.Milestone{
				milestone("Get to 80kg", 80, 82, days(30)),
			},
			Notes: notes("Pair training with a balanced diet"),
		},
		{
			ID:           models.NewID(),
			Title:        "Run 10km",
			Description:  "Finish a 10km run in under 50 minutes",
			Category:     models.GoalEndurance,
			TargetValue:  50,
			CurrentValue: 0,
			Unit:         "minutes",
			Deadline:     now.AddDate(0, 3, 0),
			Status:       models.GoalActive,
			CreatedAt:    days(-45),
			UpdatedAt:    now,
			Milestones: []models.Milestone{
				milestone("Run 5km", 5, 0, days(30)),
			},
			Notes: notes("Train three times a week, adding distance gradually"),
		},
	}
}
