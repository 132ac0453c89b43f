// Package ledger keeps the active session's collections in memory, in front
// of the backing store. Mutations are remote-first: the write goes to the
// backing store, and only the returned record is merged into the cache, so
// a failed write leaves the cache exactly as it was.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/flexium/flexium/internal/fitness"
	"github.com/flexium/flexium/internal/fitness/backing"
	"github.com/flexium/flexium/internal/fitness/calc"
	"github.com/flexium/flexium/internal/telemetry/metrics"
	"github.com/flexium/flexium/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=ledger_test

type backingStore interface {
	GetUser(ctx context.Context, id string) (*fitness.User, error)
	ListUsers(ctx context.Context) ([]fitness.User, error)
	AddUser(ctx context.Context, user fitness.User) (*fitness.User, error)
	UpdateUser(ctx context.Context, id string, patch backing.UserPatch) (*fitness.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListExercises(ctx context.Context) ([]fitness.Exercise, error)
	AddExercise(ctx context.Context, exercise fitness.Exercise) (*fitness.Exercise, error)
	UpdateExercise(ctx context.Context, exercise fitness.Exercise) error

	ListWorkouts(ctx context.Context, userID string) ([]fitness.Workout, error)
	AddWorkout(ctx context.Context, workout fitness.Workout) (*fitness.Workout, error)
	UpdateWorkout(ctx context.Context, workout fitness.Workout) error
	DeleteWorkout(ctx context.Context, userID, id string) error
	DeleteAllWorkouts(ctx context.Context, userID string) error

	ListMetrics(ctx context.Context, userID string) ([]fitness.Metric, error)
	SaveMetric(ctx context.Context, metric fitness.Metric) (*fitness.Metric, error)
	DeleteAllMetrics(ctx context.Context, userID string) error

	ListNotes(ctx context.Context, userID string) ([]fitness.Note, error)
	AddNote(ctx context.Context, note fitness.Note) (*fitness.Note, error)
	DeleteNote(ctx context.Context, userID, id string) error
	DeleteAllNotes(ctx context.Context, userID string) error

	ListPlans(ctx context.Context, userID string) ([]fitness.Plan, error)
	AddPlan(ctx context.Context, plan fitness.Plan) (*fitness.Plan, error)
	DeletePlan(ctx context.Context, userID, id string) error
	DeleteAllPlans(ctx context.Context, userID string) error
}

var (
	ErrNotReady          = errors.New("ledger not ready")
	ErrNoActiveUser      = errors.New("no active user")
	ErrLastUser          = errors.New("cannot delete the last user")
	ErrExerciseNameEmpty = errors.New("exercise name empty")
)

const defaultUserName = "You"

type Store struct {
	backing        backingStore
	metricsManager *metrics.Manager

	mu             sync.RWMutex
	status         Status
	lastErr        error
	sessionUserID  string
	activeUserID   string
	users          []fitness.User
	exercises      []fitness.Exercise
	workoutsByUser map[string][]fitness.Workout
	metricsByUser  map[string][]fitness.Metric
	notesByUser    map[string][]fitness.Note
	plansByUser    map[string][]fitness.Plan
}

func NewStore(backing backingStore, metricsManager *metrics.Manager) *Store {
	return &Store{
		backing:        backing,
		metricsManager: metricsManager,
		status:         StatusIdle,
		workoutsByUser: map[string][]fitness.Workout{},
		metricsByUser:  map[string][]fitness.Metric{},
		notesByUser:    map[string][]fitness.Note{},
		plansByUser:    map[string][]fitness.Plan{},
	}
}

// StartSession resolves (or creates) the user, seeds the exercise catalog if
// it is empty, and loads all of the user's collections. Any failure leaves
// the ledger in the error state with no partial data behind.
func (s *Store) StartSession(ctx context.Context, userID, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.startSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err = s.load(ctx, userID, name); err != nil {
		return err
	}

	s.mu.Lock()
	s.sessionUserID = userID
	s.mu.Unlock()

	return nil
}

// SetActiveUser switches the session to another user and reloads
// that user's collections.
func (s *Store) SetActiveUser(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.setActiveUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.load(ctx, userID, "")
}

func (s *Store) EndSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusIdle
	s.lastErr = nil
	s.sessionUserID = ""
	s.activeUserID = ""
	s.users = nil
	s.exercises = nil
	s.workoutsByUser = map[string][]fitness.Workout{}
	s.metricsByUser = map[string][]fitness.Metric{}
	s.notesByUser = map[string][]fitness.Note{}
	s.plansByUser = map[string][]fitness.Plan{}
}

func (s *Store) load(ctx context.Context, userID, name string) error {
	s.mu.Lock()
	s.status = StatusLoading
	s.lastErr = nil
	s.mu.Unlock()

	user, err := s.resolveUser(ctx, userID, name)
	if err != nil {
		return s.failLoad(fmt.Errorf("resolve user %s: %w", userID, err))
	}

	users, err := s.backing.ListUsers(ctx)
	if err != nil {
		return s.failLoad(fmt.Errorf("list users: %w", err))
	}

	exercises, err := s.ensureCatalog(ctx)
	if err != nil {
		return s.failLoad(fmt.Errorf("ensure catalog: %w", err))
	}

	workouts, bodyMetrics, notes, plans, err := s.fetchCollections(ctx, user.ID)
	if err != nil {
		return s.failLoad(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusReady
	s.activeUserID = user.ID
	s.users = users
	s.exercises = exercises
	s.workoutsByUser[user.ID] = workouts
	s.metricsByUser[user.ID] = bodyMetrics
	s.notesByUser[user.ID] = notes
	s.plansByUser[user.ID] = plans

	log.Debugf(
		"ledger loaded for user %s: %d workouts, %d metrics, %d notes, %d plans",
		user.ID, len(workouts), len(bodyMetrics), len(notes), len(plans),
	)

	return nil
}

func (s *Store) failLoad(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusError
	s.lastErr = err
	s.sessionUserID = ""
	s.activeUserID = ""
	s.users = nil
	s.exercises = nil
	s.workoutsByUser = map[string][]fitness.Workout{}
	s.metricsByUser = map[string][]fitness.Metric{}
	s.notesByUser = map[string][]fitness.Note{}
	s.plansByUser = map[string][]fitness.Plan{}

	log.Errorf("ledger load failed: %s", err)

	return err
}

func (s *Store) resolveUser(ctx context.Context, userID, name string) (*fitness.User, error) {
	user, err := s.backing.GetUser(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, backing.ErrUserNotFound) {
		return nil, err
	}

	if name = strings.TrimSpace(name); name == "" {
		name = defaultUserName
	}

	return s.backing.AddUser(ctx, fitness.User{
		ID:        userID,
		Name:      name,
		Role:      fitness.RoleTrainee,
		Favorites: []string{},
		Settings:  fitness.DefaultSettings(),
	})
}

func (s *Store) ensureCatalog(ctx context.Context) ([]fitness.Exercise, error) {
	exercises, err := s.backing.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	if len(exercises) > 0 {
		return exercises, nil
	}

	for _, e := range starterCatalog() {
		added, err := s.backing.AddExercise(ctx, e)
		if err != nil {
			// another session may have seeded the same name in the meantime
			if errors.Is(err, backing.ErrExerciseNameTaken) {
				continue
			}
			return nil, err
		}
		exercises = append(exercises, *added)
	}

	log.Debugf("seeded exercise catalog with %d starter exercises", len(exercises))

	return exercises, nil
}

func starterCatalog() []fitness.Exercise {
	newExercise := func(name, muscleGroup, equipment string) fitness.Exercise {
		return fitness.Exercise{
			ID:          uuid.NewString(),
			Name:        name,
			MuscleGroup: muscleGroup,
			Equipment:   equipment,
		}
	}
	return []fitness.Exercise{
		newExercise("Bench Press", "Chest", "Barbell"),
		newExercise("Squat", "Legs", "Barbell"),
		newExercise("Deadlift", "Back", "Barbell"),
		newExercise("Overhead Press", "Shoulders", "Barbell"),
		newExercise("Pull Up", "Back", "Bodyweight"),
		newExercise("Dumbbell Row", "Back", "Dumbbell"),
		newExercise("Bicep Curl", "Arms", "Dumbbell"),
		newExercise("Tricep Pushdown", "Arms", "Cable"),
	}
}

func (s *Store) fetchCollections(ctx context.Context, userID string) (
	workouts []fitness.Workout,
	bodyMetrics []fitness.Metric,
	notes []fitness.Note,
	plans []fitness.Plan,
	err error,
) {
	var wg sync.WaitGroup
	var workoutsErr, metricsErr, notesErr, plansErr error
	wg.Add(4)
	go func() {
		defer wg.Done()
		workouts, workoutsErr = s.backing.ListWorkouts(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		bodyMetrics, metricsErr = s.backing.ListMetrics(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		notes, notesErr = s.backing.ListNotes(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		plans, plansErr = s.backing.ListPlans(ctx, userID)
	}()
	wg.Wait()

	if err = multierr.Combine(workoutsErr, metricsErr, notesErr, plansErr); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("fetch collections: %w", err)
	}

	return workouts, bodyMetrics, notes, plans, nil
}

// SessionUserID returns the user id the session was started with. It does
// not change when the active user is switched, so the session token always
// maps back to it. Empty when no session is loaded.
func (s *Store) SessionUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessionUserID
}

// activeUser returns the id of the ready session's user, or why there is none.
func (s *Store) activeUser() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status != StatusReady {
		return "", ErrNotReady
	}
	if s.activeUserID == "" {
		return "", ErrNoActiveUser
	}
	return s.activeUserID, nil
}

func (s *Store) AddWorkout(ctx context.Context, workout fitness.Workout) (*fitness.Workout, error) {
	userID, err := s.activeUser()
	if err != nil {
		return nil, err
	}

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	if workout.UserID == "" {
		workout.UserID = userID
	}
	if workout.Date == "" {
		workout.Date = calc.TodayISO()
	}

	added, err := s.backing.AddWorkout(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := append(s.workoutsByUser[added.UserID], *added)
	sortWorkoutsByDate(list)
	s.workoutsByUser[added.UserID] = list

	s.metricsManager.CounterWorkouts.Inc()

	return added, nil
}

func (s *Store) UpdateWorkout(ctx context.Context, workout fitness.Workout) (*fitness.Workout, error) {
	userID, err := s.activeUser()
	if err != nil {
		return nil, err
	}
	if workout.UserID == "" {
		workout.UserID = userID
	}

	if err := s.backing.UpdateWorkout(ctx, workout); err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.workoutsByUser[workout.UserID]
	for i := range list {
		if list[i].ID == workout.ID {
			list[i] = workout
			break
		}
	}
	sortWorkoutsByDate(list)

	return &workout, nil
}

func (s *Store) DeleteWorkout(ctx context.Context, id string) error {
	userID, err := s.activeUser()
	if err != nil {
		return err
	}

	if err := s.backing.DeleteWorkout(ctx, userID, id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.workoutsByUser[userID] = deleteByID(
		s.workoutsByUser[userID],
		func(w fitness.Workout) bool { return w.ID == id },
	)

	return nil
}

// SaveMetric upserts the body metric entry for a date. The backing store
// keeps the original record id on overwrite, so the returned record (and
// not the request) is what gets merged.
func (s *Store) SaveMetric(ctx context.Context, metric fitness.Metric) (*fitness.Metric, error) {
	userID, err := s.activeUser()
	if err != nil {
		return nil, err
	}

	if metric.ID == "" {
		metric.ID = uuid.NewString()
	}
	if metric.UserID == "" {
		metric.UserID = userID
	}
	if metric.Date == "" {
		metric.Date = calc.TodayISO()
	}

	saved, err := s.backing.SaveMetric(ctx, metric)
	if err != nil {
		return nil, fmt.Errorf("save metric: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.metricsByUser[saved.UserID]
	replaced := false
	for i := range list {
		if list[i].Date == saved.Date {
			list[i] = *saved
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, *saved)
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	}
	s.metricsByUser[saved.UserID] = list

	s.metricsManager.CounterMetricEntries.Inc()

	return saved, nil
}

func (s *Store) AddNote(ctx context.Context, note fitness.Note) (*fitness.Note, error) {
	userID, err := s.activeUser()
	if err != nil {
		return nil, err
	}

	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.UserID == "" {
		note.UserID = userID
	}
	if note.Date == "" {
		note.Date = calc.TodayISO()
	}

	added, err := s.backing.AddNote(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("add note: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// newest note first
	s.notesByUser[added.UserID] = append([]fitness.Note{*added}, s.notesByUser[added.UserID]...)

	s.metricsManager.CounterNotes.Inc()

	return added, nil
}

func (s *Store) DeleteNote(ctx context.Context, id string) error {
	userID, err := s.activeUser()
	if err != nil {
		return err
	}

	if err := s.backing.DeleteNote(ctx, userID, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notesByUser[userID] = deleteByID(
		s.notesByUser[userID],
		func(n fitness.Note) bool { return n.ID == id },
	)

	return nil
}

func (s *Store) AddPlan(ctx context.Context, plan fitness.Plan) (*fitness.Plan, error) {
	userID, err := s.activeUser()
	if err != nil {
		return nil, err
	}

	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.UserID == "" {
		plan.UserID = userID
	}
	if plan.Date == "" {
		plan.Date = calc.TodayISO()
	}

	added, err := s.backing.AddPlan(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("add plan: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// newest plan first
	s.plansByUser[added.UserID] = append([]fitness.Plan{*added}, s.plansByUser[added.UserID]...)

	s.metricsManager.CounterPlans.Inc()

	return added, nil
}

func (s *Store) DeletePlan(ctx context.Context, id string) error {
	userID, err := s.activeUser()
	if err != nil {
		return err
	}

	if err := s.backing.DeletePlan(ctx, userID, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plansByUser[userID] = deleteByID(
		s.plansByUser[userID],
		func(p fitness.Plan) bool { return p.ID == id },
	)

	return nil
}

// PromotePlan converts a plan into a logged workout and consumes the plan.
// The two writes are not atomic: when the workout is created but the plan
// delete fails, the workout is kept, the plan stays, and the error says so.
func (s *Store) PromotePlan(ctx context.Context, planID, date string) (_ *fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.promotePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.activeUser()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	var plan *fitness.Plan
	for i := range s.plansByUser[userID] {
		if s.plansByUser[userID][i].ID == planID {
			p := s.plansByUser[userID][i]
			plan = &p
			break
		}
	}
	s.mu.RUnlock()
	if plan == nil {
		return nil, backing.ErrPlanNotFound
	}

	if date == "" {
		date = calc.TodayISO()
	}

	workout, err := s.AddWorkout(ctx, planToWorkout(plan, date))
	if err != nil {
		return nil, fmt.Errorf("promote plan %s: %w", planID, err)
	}

	if err := s.DeletePlan(ctx, planID); err != nil {
		return workout, fmt.Errorf("plan %s promoted to workout %s but not consumed: %w", planID, workout.ID, err)
	}

	s.metricsManager.CounterPlansPromoted.Inc()

	return workout, nil
}

func planToWorkout(plan *fitness.Plan, date string) fitness.Workout {
	workout := fitness.Workout{
		UserID: plan.UserID,
		Date:   date,
		Name:   plan.Name,
	}

	if !plan.PerTrainee() {
		workout.Entries = planItemsToEntries(plan.Items)
		return workout
	}

	for _, block := range plan.Trainees {
		workout.Trainees = append(workout.Trainees, fitness.TraineeBlock{
			TraineeID: block.TraineeID,
			Entries:   planItemsToEntries(block.Items),
		})
	}
	return workout
}

func planItemsToEntries(items []fitness.PlanItem) []fitness.ExerciseEntry {
	entries := make([]fitness.ExerciseEntry, 0, len(items))
	for _, item := range items {
		setsCount := item.TargetSets
		if setsCount < 1 {
			setsCount = 1
		}
		sets := make([]fitness.Set, setsCount)
		for i := range sets {
			sets[i] = fitness.Set{
				Reps:   item.TargetReps,
				Weight: item.TargetWeight,
			}
		}
		entries = append(entries, fitness.ExerciseEntry{
			ExerciseID: item.ExerciseID,
			Sets:       sets,
		})
	}
	return entries
}

// AddUser creates a user with default settings and makes it the active one.
// A fresh user has no collections yet, so no refetch is needed.
func (s *Store) AddUser(ctx context.Context, name string, role fitness.Role) (*fitness.User, error) {
	if _, err := s.activeUser(); err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name == "" {
		name = "New user"
	}
	if role == "" {
		role = fitness.RoleTrainee
	}

	added, err := s.backing.AddUser(ctx, fitness.User{
		ID:        uuid.NewString(),
		Name:      name,
		Role:      role,
		Favorites: []string{},
		Settings:  fitness.DefaultSettings(),
	})
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, *added)
	s.activeUserID = added.ID
	s.workoutsByUser[added.ID] = []fitness.Workout{}
	s.metricsByUser[added.ID] = []fitness.Metric{}
	s.notesByUser[added.ID] = []fitness.Note{}
	s.plansByUser[added.ID] = []fitness.Plan{}

	return added, nil
}

// UpsertUser applies a partial patch to an existing user. The id is never
// patched.
func (s *Store) UpsertUser(ctx context.Context, id string, patch backing.UserPatch) (*fitness.User, error) {
	if _, err := s.activeUser(); err != nil {
		return nil, err
	}

	updated, err := s.backing.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == updated.ID {
			s.users[i] = *updated
			break
		}
	}

	return updated, nil
}

// DeleteUser removes a user and everything it owns. The last remaining user
// cannot be deleted. When the active user goes away, the session moves to
// the first remaining one.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	activeID, err := s.activeUser()
	if err != nil {
		return err
	}

	s.mu.RLock()
	usersCount := len(s.users)
	s.mu.RUnlock()
	if usersCount <= 1 {
		return ErrLastUser
	}

	if err := s.backing.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.mu.Lock()
	s.users = deleteByID(s.users, func(u fitness.User) bool { return u.ID == id })
	delete(s.workoutsByUser, id)
	delete(s.metricsByUser, id)
	delete(s.notesByUser, id)
	delete(s.plansByUser, id)
	nextActiveID := s.activeUserID
	if s.activeUserID == id && len(s.users) > 0 {
		nextActiveID = s.users[0].ID
	}
	s.mu.Unlock()

	if id == activeID {
		return s.SetActiveUser(ctx, nextActiveID)
	}

	return nil
}

// ResetAllData wipes the active user's collections and resets the profile to
// defaults. Deletes run concurrently and independently: only a collection
// whose remote delete went through is cleared locally, and all failures come
// back combined.
func (s *Store) ResetAllData(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.resetAllData")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.activeUser()
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	var workoutsErr, metricsErr, notesErr, plansErr error
	wg.Add(4)
	go func() {
		defer wg.Done()
		workoutsErr = s.backing.DeleteAllWorkouts(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		metricsErr = s.backing.DeleteAllMetrics(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		notesErr = s.backing.DeleteAllNotes(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		plansErr = s.backing.DeleteAllPlans(ctx, userID)
	}()
	wg.Wait()

	s.mu.Lock()
	if workoutsErr == nil {
		s.workoutsByUser[userID] = []fitness.Workout{}
	}
	if metricsErr == nil {
		s.metricsByUser[userID] = []fitness.Metric{}
	}
	if notesErr == nil {
		s.notesByUser[userID] = []fitness.Note{}
	}
	if plansErr == nil {
		s.plansByUser[userID] = []fitness.Plan{}
	}
	s.mu.Unlock()

	defaultSettings := fitness.DefaultSettings()
	_, profileErr := s.UpsertUser(ctx, userID, backing.UserPatch{
		Favorites: []string{},
		Settings:  &defaultSettings,
	})

	return multierr.Combine(workoutsErr, metricsErr, notesErr, plansErr, profileErr)
}

// AddExercise adds a catalog entry. Names are trimmed and must be unique
// case-insensitively; the cached catalog is checked before going remote.
func (s *Store) AddExercise(ctx context.Context, name, muscleGroup, equipment string) (*fitness.Exercise, error) {
	if _, err := s.activeUser(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrExerciseNameEmpty
	}

	if s.exerciseNameTaken(name, "") {
		return nil, backing.ErrExerciseNameTaken
	}

	added, err := s.backing.AddExercise(ctx, fitness.Exercise{
		ID:          uuid.NewString(),
		Name:        name,
		MuscleGroup: strings.TrimSpace(muscleGroup),
		Equipment:   strings.TrimSpace(equipment),
	})
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// newest exercise first
	s.exercises = append([]fitness.Exercise{*added}, s.exercises...)

	return added, nil
}

func (s *Store) UpdateExercise(ctx context.Context, exercise fitness.Exercise) (*fitness.Exercise, error) {
	if _, err := s.activeUser(); err != nil {
		return nil, err
	}

	exercise.Name = strings.TrimSpace(exercise.Name)
	if exercise.Name == "" {
		return nil, ErrExerciseNameEmpty
	}

	if s.exerciseNameTaken(exercise.Name, exercise.ID) {
		return nil, backing.ErrExerciseNameTaken
	}

	if err := s.backing.UpdateExercise(ctx, exercise); err != nil {
		return nil, fmt.Errorf("update exercise: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.exercises {
		if s.exercises[i].ID == exercise.ID {
			s.exercises[i] = exercise
			break
		}
	}

	return &exercise, nil
}

func (s *Store) exerciseNameTaken(name, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.exercises {
		if e.ID != excludeID && strings.EqualFold(e.Name, name) {
			return true
		}
	}
	return false
}

// Recommend suggests the next sets/reps/weight for an exercise, based on the
// cached workout history. An empty traineeID targets the active user.
func (s *Store) Recommend(exerciseID, traineeID string) (calc.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status != StatusReady || s.activeUserID == "" {
		return calc.Recommendation{}, ErrNotReady
	}

	user := fitness.User{ID: s.activeUserID, Settings: fitness.DefaultSettings()}
	for _, u := range s.users {
		if u.ID == s.activeUserID {
			user = u
			break
		}
	}
	if traineeID != "" {
		user.ID = traineeID
	}

	return calc.RecommendNext(&user, s.workoutsByUser[s.activeUserID], exerciseID), nil
}

// Snapshot is a point-in-time copy of the session state, scoped to the
// active user. Safe to hand out: slices are cloned.
type Snapshot struct {
	Status        Status                      `json:"status"`
	Err           string                      `json:"error,omitempty"`
	ActiveUser    *fitness.User               `json:"activeUser,omitempty"`
	Users         []fitness.User              `json:"users"`
	Exercises     []fitness.Exercise          `json:"exercises"`
	ExercisesByID map[string]fitness.Exercise `json:"exercisesById"`
	Workouts      []fitness.Workout           `json:"workouts"`
	Metrics       []fitness.Metric            `json:"metrics"`
	Notes         []fitness.Note              `json:"notes"`
	Plans         []fitness.Plan              `json:"plans"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := Snapshot{
		Status:        s.status,
		Users:         append([]fitness.User{}, s.users...),
		Exercises:     append([]fitness.Exercise{}, s.exercises...),
		ExercisesByID: make(map[string]fitness.Exercise, len(s.exercises)),
		Workouts:      append([]fitness.Workout{}, s.workoutsByUser[s.activeUserID]...),
		Metrics:       append([]fitness.Metric{}, s.metricsByUser[s.activeUserID]...),
		Notes:         append([]fitness.Note{}, s.notesByUser[s.activeUserID]...),
		Plans:         append([]fitness.Plan{}, s.plansByUser[s.activeUserID]...),
	}

	if s.lastErr != nil {
		snapshot.Err = s.lastErr.Error()
	}
	for _, e := range s.exercises {
		snapshot.ExercisesByID[e.ID] = e
	}
	for i := range s.users {
		if s.users[i].ID == s.activeUserID {
			u := s.users[i]
			snapshot.ActiveUser = &u
			break
		}
	}

	return snapshot
}

func sortWorkoutsByDate(workouts []fitness.Workout) {
	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date < workouts[j].Date
	})
}

func deleteByID[T any](list []T, match func(T) bool) []T {
	filtered := list[:0]
	for _, item := range list {
		if !match(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
