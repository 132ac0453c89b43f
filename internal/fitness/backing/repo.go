// Package backing talks to the backing store: a plain relational service
// with per-collection CRUD, filtered by record id and/or user id. The
// ledger never trusts its own optimistic data over what comes back from
// here - the persisted record returned by each write is authoritative.
package backing

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrPlanNotFound     = errors.New("plan not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}
