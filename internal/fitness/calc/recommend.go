package calc

import (
	"fmt"

	"github.com/flexium/flexium/internal/fitness"
)

const (
	defaultPlateIncrement = 2.5

	defaultTargetSets = 3
	defaultTargetReps = 8
)

type Recommendation struct {
	TargetSets   int     `json:"targetSets"`
	TargetReps   int     `json:"targetReps"`
	TargetWeight float64 `json:"targetWeight"`
	Note         string  `json:"note"`
}

// RecommendNext is a deterministic, stateless linear-progression heuristic:
// it looks only at the most recent logged performance of the exercise.
// At 8+ reps on the best set the load advances by the user's plate
// increment; below that, the load holds and the rep target goes up by one.
func RecommendNext(user *fitness.User, workouts []fitness.Workout, exerciseID string) Recommendation {
	increment := defaultPlateIncrement
	unit := fitness.UnitKilogram
	traineeID := ""
	if user != nil {
		if user.Settings.PlateIncrement > 0 {
			increment = user.Settings.PlateIncrement
		}
		if user.Settings.WeightUnit != "" {
			unit = user.Settings.WeightUnit
		}
		traineeID = user.ID
	}
	increment = Clamp(increment, 0.25, 10)

	perf := LastPerformance(workouts, exerciseID, traineeID)
	if perf == nil {
		return Recommendation{
			TargetSets:   defaultTargetSets,
			TargetReps:   defaultTargetReps,
			TargetWeight: 0,
			Note:         "No history yet - start light and focus on form.",
		}
	}

	best := BestSetScore(perf.Entry.Sets)

	targetSets := len(perf.Entry.Sets)
	if targetSets == 0 {
		targetSets = defaultTargetSets
	}
	targetSets = ClampInt(targetSets, 1, 8)

	if best.Reps >= 8 {
		return Recommendation{
			TargetSets:   targetSets,
			TargetReps:   8,
			TargetWeight: RoundTo(best.Weight+increment, increment),
			Note:         fmt.Sprintf("Progression: +%v%s and aim for 8 reps.", increment, unit),
		}
	}

	return Recommendation{
		TargetSets:   targetSets,
		TargetReps:   ClampInt(best.Reps+1, 3, 12),
		TargetWeight: best.Weight,
		Note:         "Progression: keep weight and add 1 rep on your best set.",
	}
}
