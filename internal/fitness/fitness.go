package fitness

type Role string

const (
	RoleTrainee Role = "trainee"
	RoleTrainer Role = "trainer"
)

type WeightUnit string

const (
	UnitKilogram WeightUnit = "kg"
	UnitPound    WeightUnit = "lb"
)

type Settings struct {
	WeightUnit     WeightUnit `json:"weightUnit"`
	PlateIncrement float64    `json:"plateIncrement"`
	ShowEffort     bool       `json:"showEffort"`
}

func DefaultSettings() Settings {
	return Settings{
		WeightUnit:     UnitKilogram,
		PlateIncrement: 2.5,
		ShowEffort:     false,
	}
}

// User is an account profile. PasswordHash is empty for accounts without
// a password; when set, login must present the matching password. The hash
// never leaves the service.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         Role     `json:"role"`
	Favorites    []string `json:"favorites"`
	Settings     Settings `json:"settings"`
	PasswordHash string   `json:"-"`
}

// Exercise is a global catalog entry, not scoped to a user.
// Names are unique across the catalog, case-insensitively.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Equipment   string `json:"equipment"`
	DemoURL     string `json:"demoUrl,omitempty"`
}

type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Effort float64 `json:"effort,omitempty"`
}

// ExerciseEntry is one exercise with its ordered sets
// within a workout or a trainee block.
type ExerciseEntry struct {
	ExerciseID string `json:"exerciseId"`
	Sets       []Set  `json:"sets"`
}

type TraineeBlock struct {
	TraineeID string          `json:"traineeId"`
	Entries   []ExerciseEntry `json:"entries"`
}

// Workout comes in two shapes: a flat entry list (single-trainee mode)
// or per-trainee blocks (multi-trainee mode). Exactly one of Entries
// and Trainees is populated; PerTrainee tells which.
type Workout struct {
	ID       string          `json:"id"`
	UserID   string          `json:"userId"`
	Date     string          `json:"date"` // ISO day, e.g. 2026-08-31
	Name     string          `json:"name"`
	Entries  []ExerciseEntry `json:"entries,omitempty"`
	Trainees []TraineeBlock  `json:"trainees,omitempty"`
}

func (w *Workout) PerTrainee() bool {
	return len(w.Trainees) > 0
}

// EntriesFor dispatches on the workout shape: for a multi-trainee workout it
// returns the given trainee's block entries, for a single-trainee workout the
// flat list. An empty traineeID always selects the flat list.
func (w *Workout) EntriesFor(traineeID string) []ExerciseEntry {
	if !w.PerTrainee() || traineeID == "" {
		return w.Entries
	}
	for _, block := range w.Trainees {
		if block.TraineeID == traineeID {
			return block.Entries
		}
	}
	return nil
}

// Metric is a body measurement. At most one metric exists
// per user and date; a later save for the same date wins.
type Metric struct {
	ID      string  `json:"id"`
	UserID  string  `json:"userId"`
	Date    string  `json:"date"`
	Weight  float64 `json:"weight"`
	BodyFat float64 `json:"bodyFat"`
}

type Note struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

type PlanItem struct {
	ExerciseID   string  `json:"exerciseId"`
	TargetSets   int     `json:"targetSets"`
	TargetReps   int     `json:"targetReps"`
	TargetWeight float64 `json:"targetWeight"`
}

type PlanTraineeBlock struct {
	TraineeID string     `json:"traineeId"`
	Items     []PlanItem `json:"items"`
}

// Plan mirrors the two workout shapes. A plan is consumed on promotion:
// it is converted to a workout and then deleted.
type Plan struct {
	ID       string             `json:"id"`
	UserID   string             `json:"userId"`
	Date     string             `json:"date"`
	Name     string             `json:"name"`
	Items    []PlanItem         `json:"items,omitempty"`
	Trainees []PlanTraineeBlock `json:"trainees,omitempty"`
}

func (p *Plan) PerTrainee() bool {
	return len(p.Trainees) > 0
}

func (p *Plan) ItemsFor(traineeID string) []PlanItem {
	if !p.PerTrainee() || traineeID == "" {
		return p.Items
	}
	for _, block := range p.Trainees {
		if block.TraineeID == traineeID {
			return block.Items
		}
	}
	return nil
}
