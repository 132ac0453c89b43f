package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/flexium/flexium/internal/auth"
	"github.com/flexium/flexium/internal/fitness"
	"github.com/flexium/flexium/internal/fitness/backing"
	"github.com/flexium/flexium/internal/middleware"
	"github.com/flexium/flexium/internal/telemetry/tracing"
	"github.com/flexium/flexium/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=ledger_test

type loginService interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginRequest struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type AddUserRequest struct {
	Name string       `json:"name"`
	Role fitness.Role `json:"role"`
}

type AddExerciseRequest struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Equipment   string `json:"equipment"`
}

type PromotePlanRequest struct {
	Date string `json:"date"`
}

type SetPasswordRequest struct {
	Password string `json:"password"`
}

type DeletedResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	store       *Store
	authService loginService
}

func NewHandler(store *Store, authService loginService) *Handler {
	return &Handler{
		store:       store,
		authService: authService,
	}
}

func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
) {
	loginSubrouter := r.PathPrefix("/a").Subrouter()
	loginSubrouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.HandleFunc("/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	// rate limit the login endpoints to prevent abuse
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginRateLimitAllowedPerMin))

	ledgerSubrouter := r.PathPrefix("/ledger").Subrouter()
	ledgerSubrouter.HandleFunc("/state", handler.HandleState).Methods("GET", "OPTIONS").Name("ledger-state")
	ledgerSubrouter.HandleFunc("/users", handler.HandleAddUser).Methods("POST", "OPTIONS").Name("new-user")
	ledgerSubrouter.HandleFunc("/users/active/{id}", handler.HandleSetActiveUser).Methods("POST", "OPTIONS").Name("set-active-user")
	ledgerSubrouter.HandleFunc("/users/{id}/password", handler.HandleSetPassword).Methods("POST", "OPTIONS").Name("set-password")
	ledgerSubrouter.HandleFunc("/users/{id}", handler.HandleUpsertUser).Methods("PUT", "OPTIONS").Name("update-user")
	ledgerSubrouter.HandleFunc("/users/{id}", handler.HandleDeleteUser).Methods("DELETE", "OPTIONS").Name("remove-user")
	ledgerSubrouter.HandleFunc("/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	ledgerSubrouter.HandleFunc("/exercises", handler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-exercise")
	ledgerSubrouter.HandleFunc("/workouts", handler.HandleAddWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	ledgerSubrouter.HandleFunc("/workouts", handler.HandleUpdateWorkout).Methods("PUT", "OPTIONS").Name("update-workout")
	ledgerSubrouter.HandleFunc("/workouts/{id}", handler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("remove-workout")
	ledgerSubrouter.HandleFunc("/metrics", handler.HandleSaveMetric).Methods("POST", "OPTIONS").Name("save-metric")
	ledgerSubrouter.HandleFunc("/notes", handler.HandleAddNote).Methods("POST", "OPTIONS").Name("new-note")
	ledgerSubrouter.HandleFunc("/notes/{id}", handler.HandleDeleteNote).Methods("DELETE", "OPTIONS").Name("remove-note")
	ledgerSubrouter.HandleFunc("/plans", handler.HandleAddPlan).Methods("POST", "OPTIONS").Name("new-plan")
	ledgerSubrouter.HandleFunc("/plans/{id}", handler.HandleDeletePlan).Methods("DELETE", "OPTIONS").Name("remove-plan")
	ledgerSubrouter.HandleFunc("/plans/{id}/promote", handler.HandlePromotePlan).Methods("POST", "OPTIONS").Name("promote-plan")
	ledgerSubrouter.HandleFunc("/reset", handler.HandleReset).Methods("POST", "OPTIONS").Name("reset-data")
	ledgerSubrouter.HandleFunc("/recommendation/{exerciseId}", handler.HandleRecommend).Methods("GET", "OPTIONS").Name("recommendation")
	ledgerSubrouter.Use(handler.sessionCheck)
}

// sessionCheck rejects a request whose token resolved to a different user
// than the one the loaded session belongs to. Switching the active user
// does not change the session owner, so a trainer's token keeps working
// while managing trainees.
func (handler *Handler) sessionCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := auth.UserIDFromContext(r.Context()); userID != "" && userID != handler.store.SessionUserID() {
			log.Warnf("session check: token user %s does not own the loaded session", userID)
			http.Error(w, "no can do", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.login")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var loginReq LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	// a first-time device comes without a user id
	if loginReq.UserID == "" {
		loginReq.UserID = uuid.NewString()
	}

	if err := handler.store.StartSession(ctx, loginReq.UserID, loginReq.Name); err != nil {
		log.Errorf("login, start session for user %s: %s", loginReq.UserID, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	// a password-protected account must present the matching password
	// before any session token is minted
	if user := handler.store.Snapshot().ActiveUser; user != nil && user.PasswordHash != "" {
		if !pkg.CheckPasswordHash(loginReq.Password, user.PasswordHash) {
			log.Warnf("login, wrong password for user %s", loginReq.UserID)
			handler.store.EndSession()
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
	}

	token, err := handler.authService.Login(ctx, loginReq.UserID, time.Now())
	if err != nil {
		log.Errorf("login, create session token for user %s: %s", loginReq.UserID, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	loginRespJson, err := json.Marshal(LoginResponse{
		Token:  token,
		UserID: loginReq.UserID,
	})
	if err != nil {
		log.Errorf("login, marshal response: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, loginRespJson, http.StatusCreated)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.logout")
	defer span.End()

	token := r.Header.Get("X-FLEXIUM-TOKEN")
	if token == "" {
		http.Error(w, "error, token empty", http.StatusBadRequest)
		return
	}

	if _, err := handler.authService.Logout(ctx, token); err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	handler.store.EndSession()

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.state")
	defer span.End()

	handler.writeSnapshot(w)
}

func (handler *Handler) HandleSetActiveUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.setActiveUser")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.SetActiveUser(ctx, id); err != nil {
		log.Errorf("set active user %s: %s", id, err)
		http.Error(w, "failed to set active user", http.StatusInternalServerError)
		return
	}

	handler.writeSnapshot(w)
}

func (handler *Handler) HandleAddUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.addUser")
	defer span.End()

	var addUserReq AddUserRequest
	if !handler.decodeRequest(w, r, &addUserReq) {
		return
	}

	user, err := handler.store.AddUser(ctx, addUserReq.Name, addUserReq.Role)
	if err != nil {
		handler.writeError(w, "failed to add user", err)
		return
	}

	handler.writeJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleUpsertUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.upsertUser")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var patch backing.UserPatch
	if !handler.decodeRequest(w, r, &patch) {
		return
	}

	user, err := handler.store.UpsertUser(ctx, id, patch)
	if err != nil {
		handler.writeError(w, "failed to update user", err)
		return
	}

	handler.writeJSON(w, user, http.StatusOK)
}

// HandleSetPassword sets (or replaces) the account password. An empty
// password removes the protection.
func (handler *Handler) HandleSetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.setPassword")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var setPasswordReq SetPasswordRequest
	if !handler.decodeRequest(w, r, &setPasswordReq) {
		return
	}

	passwordHash := ""
	if setPasswordReq.Password != "" {
		var err error
		if passwordHash, err = pkg.HashPassword(setPasswordReq.Password); err != nil {
			log.Errorf("set password for user %s: %s", id, err)
			http.Error(w, "failed to set password", http.StatusInternalServerError)
			return
		}
	}

	if _, err := handler.store.UpsertUser(ctx, id, backing.UserPatch{
		PasswordHash: &passwordHash,
	}); err != nil {
		handler.writeError(w, "failed to set password", err)
		return
	}

	pkg.WriteTextResponseOK(w, "password-set")
}

func (handler *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.deleteUser")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.DeleteUser(ctx, id); err != nil {
		handler.writeError(w, "failed to delete user", err)
		return
	}

	handler.writeJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.addExercise")
	defer span.End()

	var addExerciseReq AddExerciseRequest
	if !handler.decodeRequest(w, r, &addExerciseReq) {
		return
	}

	exercise, err := handler.store.AddExercise(
		ctx,
		addExerciseReq.Name, addExerciseReq.MuscleGroup, addExerciseReq.Equipment,
	)
	if err != nil {
		handler.writeError(w, "failed to add exercise", err)
		return
	}

	handler.writeJSON(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.updateExercise")
	defer span.End()

	var exercise fitness.Exercise
	if !handler.decodeRequest(w, r, &exercise) {
		return
	}
	if exercise.ID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	updated, err := handler.store.UpdateExercise(ctx, exercise)
	if err != nil {
		handler.writeError(w, "failed to update exercise", err)
		return
	}

	handler.writeJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.addWorkout")
	defer span.End()

	var workout fitness.Workout
	if !handler.decodeRequest(w, r, &workout) {
		return
	}

	added, err := handler.store.AddWorkout(ctx, workout)
	if err != nil {
		handler.writeError(w, "failed to add workout", err)
		return
	}

	handler.writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.updateWorkout")
	defer span.End()

	var workout fitness.Workout
	if !handler.decodeRequest(w, r, &workout) {
		return
	}
	if workout.ID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	updated, err := handler.store.UpdateWorkout(ctx, workout)
	if err != nil {
		handler.writeError(w, "failed to update workout", err)
		return
	}

	handler.writeJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.deleteWorkout")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.DeleteWorkout(ctx, id); err != nil {
		handler.writeError(w, "failed to delete workout", err)
		return
	}

	handler.writeJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleSaveMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.saveMetric")
	defer span.End()

	var metric fitness.Metric
	if !handler.decodeRequest(w, r, &metric) {
		return
	}

	saved, err := handler.store.SaveMetric(ctx, metric)
	if err != nil {
		handler.writeError(w, "failed to save metric", err)
		return
	}

	handler.writeJSON(w, saved, http.StatusOK)
}

func (handler *Handler) HandleAddNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.addNote")
	defer span.End()

	var note fitness.Note
	if !handler.decodeRequest(w, r, &note) {
		return
	}

	added, err := handler.store.AddNote(ctx, note)
	if err != nil {
		handler.writeError(w, "failed to add note", err)
		return
	}

	handler.writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.deleteNote")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.DeleteNote(ctx, id); err != nil {
		handler.writeError(w, "failed to delete note", err)
		return
	}

	handler.writeJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleAddPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.addPlan")
	defer span.End()

	var plan fitness.Plan
	if !handler.decodeRequest(w, r, &plan) {
		return
	}

	added, err := handler.store.AddPlan(ctx, plan)
	if err != nil {
		handler.writeError(w, "failed to add plan", err)
		return
	}

	handler.writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.deletePlan")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.DeletePlan(ctx, id); err != nil {
		handler.writeError(w, "failed to delete plan", err)
		return
	}

	handler.writeJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandlePromotePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.promotePlan")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var promoteReq PromotePlanRequest
	if !handler.decodeRequest(w, r, &promoteReq) {
		return
	}

	workout, err := handler.store.PromotePlan(ctx, id, promoteReq.Date)
	if err != nil {
		handler.writeError(w, "failed to promote plan", err)
		return
	}

	handler.writeJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.reset")
	defer span.End()

	if err := handler.store.ResetAllData(ctx); err != nil {
		handler.writeError(w, "failed to reset data", err)
		return
	}

	handler.writeSnapshot(w)
}

func (handler *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.recommend")
	defer span.End()

	exerciseID := mux.Vars(r)["exerciseId"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	traineeID := r.URL.Query().Get("trainee")

	recommendation, err := handler.store.Recommend(exerciseID, traineeID)
	if err != nil {
		handler.writeError(w, "failed to get recommendation", err)
		return
	}

	handler.writeJSON(w, recommendation, http.StatusOK)
}

func (handler *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("unmarshal json params: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return false
	}
	return true
}

func (handler *Handler) writeJSON(w http.ResponseWriter, payload any, statusCode int) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, statusCode)
}

func (handler *Handler) writeSnapshot(w http.ResponseWriter) {
	handler.writeJSON(w, handler.store.Snapshot(), http.StatusOK)
}

func (handler *Handler) writeError(w http.ResponseWriter, message string, err error) {
	log.Errorf("%s: %s", message, err)

	switch {
	case errors.Is(err, ErrNotReady), errors.Is(err, ErrNoActiveUser):
		http.Error(w, message, http.StatusConflict)
	case errors.Is(err, ErrLastUser),
		errors.Is(err, ErrExerciseNameEmpty),
		errors.Is(err, backing.ErrExerciseNameTaken):
		http.Error(w, message, http.StatusBadRequest)
	case errors.Is(err, backing.ErrUserNotFound),
		errors.Is(err, backing.ErrExerciseNotFound),
		errors.Is(err, backing.ErrWorkoutNotFound),
		errors.Is(err, backing.ErrNoteNotFound),
		errors.Is(err, backing.ErrPlanNotFound):
		http.Error(w, message, http.StatusNotFound)
	default:
		http.Error(w, message, http.StatusInternalServerError)
	}
}
