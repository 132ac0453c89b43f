package calc

import (
	"math"
	"strings"

	"github.com/flexium/flexium/internal/fitness"
)

// SafeNum maps any non-finite value to 0, so malformed input
// never propagates NaN into the domain layer.
func SafeNum(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RoundTo rounds n to the nearest multiple of step.
// A zero step returns n unchanged.
func RoundTo(n, step float64) float64 {
	if step == 0 {
		return n
	}
	return math.Round(n/step) * step
}

func Clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}

func ClampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Estimate1RM estimates the one-rep max with the Epley formula.
// Non-positive weight or reps yield 0.
func Estimate1RM(weight float64, reps int) float64 {
	w := SafeNum(weight)
	if w <= 0 || reps <= 0 {
		return 0
	}
	return w * (1 + float64(reps)/30)
}

type BestSet struct {
	OneRM  float64 `json:"oneRM"`
	Volume float64 `json:"volume"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// BestSetScore returns the set with the highest estimated 1RM,
// ties broken by total volume (weight x reps). An empty list
// yields the all-zero record.
func BestSetScore(sets []fitness.Set) BestSet {
	var best BestSet
	for _, s := range sets {
		weight := SafeNum(s.Weight)
		oneRM := Estimate1RM(weight, s.Reps)
		volume := weight * float64(s.Reps)
		if oneRM > best.OneRM || (oneRM == best.OneRM && volume > best.Volume) {
			best = BestSet{
				OneRM:  oneRM,
				Volume: volume,
				Reps:   s.Reps,
				Weight: weight,
			}
		}
	}
	return best
}

type Performance struct {
	Workout *fitness.Workout
	Entry   fitness.ExerciseEntry
}

// LastPerformance finds the most recent entry for the given exercise.
// Workouts are kept date-ascending, so the scan runs newest-first.
// A non-empty traineeID scopes the search to that trainee's block in
// multi-trainee workouts; otherwise only the flat entry list is searched.
func LastPerformance(workouts []fitness.Workout, exerciseID, traineeID string) *Performance {
	for i := len(workouts) - 1; i >= 0; i-- {
		w := workouts[i]
		for _, entry := range w.EntriesFor(traineeID) {
			if entry.ExerciseID == exerciseID {
				return &Performance{
					Workout: &workouts[i],
					Entry:   entry,
				}
			}
		}
	}
	return nil
}

type Summary struct {
	ExerciseCount int     `json:"exerciseCount"`
	Volume        float64 `json:"volume"`
	Top           string  `json:"top"`
}

// Summarize aggregates the exercise count and total volume of a workout,
// across all trainee blocks if present, plus the first three exercise
// display names for presentation.
func Summarize(workout *fitness.Workout, exercisesByID map[string]fitness.Exercise) Summary {
	entries := workout.Entries
	if workout.PerTrainee() {
		entries = nil
		for _, block := range workout.Trainees {
			entries = append(entries, block.Entries...)
		}
	}

	var volume float64
	for _, entry := range entries {
		for _, set := range entry.Sets {
			volume += SafeNum(set.Weight) * float64(set.Reps)
		}
	}

	var topNames []string
	for i, entry := range entries {
		if i == 3 {
			break
		}
		if ex, ok := exercisesByID[entry.ExerciseID]; ok {
			topNames = append(topNames, ex.Name)
		} else {
			topNames = append(topNames, "(Unknown)")
		}
	}

	return Summary{
		ExerciseCount: len(entries),
		Volume:        volume,
		Top:           strings.Join(topNames, " • "),
	}
}
