package calc_test

import (
	"math"
	"testing"

	"github.com/flexium/flexium/internal/fitness"
	"github.com/flexium/flexium/internal/fitness/calc"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSafeNum(t *testing.T) {
	assert.Equal(t, 42.5, calc.SafeNum(42.5))
	assert.Equal(t, 0.0, calc.SafeNum(math.NaN()))
	assert.Equal(t, 0.0, calc.SafeNum(math.Inf(1)))
	assert.Equal(t, 0.0, calc.SafeNum(math.Inf(-1)))
}

func TestRoundTo(t *testing.T) {
	assert.InDelta(t, 82.5, calc.RoundTo(81.3, 2.5), 1e-9)
	assert.InDelta(t, 80, calc.RoundTo(80.9, 2.5), 1e-9)
	assert.InDelta(t, 52.5, calc.RoundTo(52.5, 2.5), 1e-9)
	assert.Equal(t, 81.3, calc.RoundTo(81.3, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, calc.Clamp(5, 0, 10))
	assert.Equal(t, 0.0, calc.Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, calc.Clamp(33, 0, 10))

	assert.Equal(t, 8, calc.ClampInt(8, 3, 12))
	assert.Equal(t, 3, calc.ClampInt(1, 3, 12))
	assert.Equal(t, 12, calc.ClampInt(20, 3, 12))
}

func TestEstimate1RM(t *testing.T) {
	assert.InDelta(t, 133.333333, calc.Estimate1RM(100, 10), 1e-5)
	assert.Equal(t, 0.0, calc.Estimate1RM(0, 10))
	assert.Equal(t, 0.0, calc.Estimate1RM(100, 0))
	assert.Equal(t, 0.0, calc.Estimate1RM(-50, 5))
}

func TestBestSetScore(t *testing.T) {
	sets := []fitness.Set{
		{Reps: 10, Weight: 50},
		{Reps: 5, Weight: 70},
		{Reps: 8, Weight: 60},
	}

	best := calc.BestSetScore(sets)
	// 60x8 -> 1RM 76, beats 50x10 -> 66.66 and 70x5 -> 81.66? no:
	// 70 * (1 + 5/30) = 81.66 is the highest
	assert.Equal(t, 5, best.Reps)
	assert.Equal(t, 70.0, best.Weight)
	assert.InDelta(t, 81.666666, best.OneRM, 1e-5)
	assert.InDelta(t, 350, best.Volume, 1e-9)
}

func TestBestSetScore_TieBrokenByVolume(t *testing.T) {
	// 80x15 and 60x30 both estimate a 1RM of exactly 120,
	// but 60x30 carries the bigger volume (1800 vs 1200)
	sets := []fitness.Set{
		{Reps: 15, Weight: 80},
		{Reps: 30, Weight: 60},
	}
	best := calc.BestSetScore(sets)
	assert.Equal(t, 30, best.Reps)
	assert.Equal(t, 60.0, best.Weight)
	assert.InDelta(t, 1800, best.Volume, 1e-9)
}

func TestBestSetScore_Empty(t *testing.T) {
	best := calc.BestSetScore(nil)
	assert.Equal(t, calc.BestSet{}, best)

	best = calc.BestSetScore([]fitness.Set{})
	assert.Equal(t, calc.BestSet{}, best)
}

func TestLastPerformance(t *testing.T) {
	workouts := []fitness.Workout{
		{
			ID:   "w1",
			Date: "2026-08-01",
			Entries: []fitness.ExerciseEntry{
				{ExerciseID: "bench", Sets: []fitness.Set{{Reps: 8, Weight: 50}}},
			},
		},
		{
			ID:   "w2",
			Date: "2026-08-10",
			Entries: []fitness.ExerciseEntry{
				{ExerciseID: "bench", Sets: []fitness.Set{{Reps: 8, Weight: 52.5}}},
				{ExerciseID: "squat", Sets: []fitness.Set{{Reps: 5, Weight: 100}}},
			},
		},
	}

	perf := calc.LastPerformance(workouts, "bench", "")
	assert.NotNil(t, perf)
	assert.Equal(t, "w2", perf.Workout.ID)
	assert.Equal(t, 52.5, perf.Entry.Sets[0].Weight)

	assert.Nil(t, calc.LastPerformance(workouts, "deadlift", ""))
	assert.Nil(t, calc.LastPerformance(nil, "bench", ""))
}

func TestLastPerformance_MultiTrainee(t *testing.T) {
	workouts := []fitness.Workout{
		{
			ID:   "w1",
			Date: "2026-08-01",
			Trainees: []fitness.TraineeBlock{
				{
					TraineeID: "anna",
					Entries: []fitness.ExerciseEntry{
						{ExerciseID: "bench", Sets: []fitness.Set{{Reps: 10, Weight: 40}}},
					},
				},
				{
					TraineeID: "marko",
					Entries: []fitness.ExerciseEntry{
						{ExerciseID: "bench", Sets: []fitness.Set{{Reps: 6, Weight: 80}}},
					},
				},
			},
		},
	}

	perf := calc.LastPerformance(workouts, "bench", "marko")
	assert.NotNil(t, perf)
	assert.Equal(t, 80.0, perf.Entry.Sets[0].Weight)

	// without a trainee id, only the flat list is searched
	assert.Nil(t, calc.LastPerformance(workouts, "bench", ""))
}

func TestSummarize(t *testing.T) {
	exercisesByID := map[string]fitness.Exercise{
		"bench": {ID: "bench", Name: "Bench Press"},
		"squat": {ID: "squat", Name: "Squat"},
	}

	workout := &fitness.Workout{
		Entries: []fitness.ExerciseEntry{
			{ExerciseID: "bench", Sets: []fitness.Set{{Reps: 10, Weight: 50}, {Reps: 8, Weight: 55}}},
			{ExerciseID: "squat", Sets: []fitness.Set{{Reps: 5, Weight: 100}}},
			{ExerciseID: "ghost", Sets: []fitness.Set{{Reps: 1, Weight: 1}}},
		},
	}

	summary := calc.Summarize(workout, exercisesByID)
	assert.Equal(t, 3, summary.ExerciseCount)
	assert.InDelta(t, 50*10+55*8+100*5+1, summary.Volume, 1e-9)
	assert.Equal(t, "Bench Press • Squat • (Unknown)", summary.Top)
}

func TestSummarize_MultiTrainee(t *testing.T) {
	exercisesByID := map[string]fitness.Exercise{
		"bench": {ID: "bench", Name: "Bench Press"},
	}

	workout := &fitness.Workout{
		Trainees: []fitness.TraineeBlock{
			{
				TraineeID: "anna",
				Entries: []fitness.ExerciseEntry{
					{ExerciseID: "bench", Sets: []fitness.Set{{Reps: 10, Weight: 40}}},
				},
			},
			{
				TraineeID: "marko",
				Entries: []fitness.ExerciseEntry{
					{ExerciseID: "bench", Sets: []fitness.Set{{Reps: 6, Weight: 80}}},
				},
			},
		},
	}

	summary := calc.Summarize(workout, exercisesByID)
	assert.Equal(t, 2, summary.ExerciseCount)
	assert.InDelta(t, 40*10+80*6, summary.Volume, 1e-9)
	assert.Equal(t, "Bench Press • Bench Press", summary.Top)
}
