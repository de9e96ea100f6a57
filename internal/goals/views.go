// ABOUTME: Derived goal views: status filters, category grouping and overall progress.
// ABOUTME: Cancelled goals count as zero but stay in the progress denominator.
package goals

import (
	"math"

	"github.com/harperreed/gymtrack/internal/models"
)

// ActiveGoals returns goals with status active.
func (s *Store) ActiveGoals() []models.Goal {
	return s.byStatus(models.GoalActive)
}

// CompletedGoals returns goals with status completed.
func (s *Store) CompletedGoals() []models.Goal {
	return s.byStatus(models.GoalCompleted)
}

// GoalsByCategory groups goals by category, keeping insertion order within each group.
func (s *Store) GoalsByCategory() map[models.GoalCategory][]models.Goal {
	out := make(map[models.GoalCategory][]models.Goal)
	for _, g := range s.goals {
		out[g.Category] = append(out[g.Category], g.Clone())
	}
	return out
}

// GoalsProgress is the mean progress over all goals, rounded to an integer.
// Completed goals count 100, cancelled goals 0, the rest their capped ratio.
func (s *Store) GoalsProgress() int {
	if len(s.goals) == 0 {
		return 0
	}
	total := 0.0
	for _, g := range s.goals {
		switch g.Status {
		case models.GoalCompleted:
			total += 100
		case models.GoalCancelled:
		default:
			total += Progress(g)
		}
	}
	return int(math.Round(total / float64(len(s.goals))))
}

// Progress is current/target as a percentage capped at 100. Ratios with no
// numeric meaning (0/0, negative over zero) count as 0.
func Progress(g models.Goal) float64 {
	p := g.CurrentValue / g.TargetValue * 100
	if math.IsNaN(p) || math.IsInf(p, -1) {
		return 0
	}
	return math.Min(100, p)
}

func (s *Store) byStatus(status models.GoalStatus) []models.Goal {
	out := []models.Goal{}
	for _, g := range s.goals {
		if g.Status == status {
			out = append(out, g.Clone())
		}
	}
	return out
}
