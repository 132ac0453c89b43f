package backing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/flexium/flexium/internal/fitness"
	"github.com/flexium/flexium/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// ListWorkouts returns all workouts of a user, oldest first.
func (r *Repo) ListWorkouts(ctx context.Context, userID string) (_ []fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, date, name, entries, trainees
			FROM workout
			WHERE user_id = $1
			ORDER BY date, id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2workouts(rows)
}

func (r *Repo) AddWorkout(ctx context.Context, workout fitness.Workout) (_ *fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", workout.ID))
	span.SetAttributes(attribute.String("user_id", workout.UserID))

	entriesJson, traineesJson, err := marshalWorkoutBlocks(workout)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout
				(id, user_id, date, name, entries, trainees)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		workout.ID, workout.UserID, workout.Date, workout.Name, entriesJson, traineesJson,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	return &workout, nil
}

func (r *Repo) UpdateWorkout(ctx context.Context, workout fitness.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", workout.ID))

	entriesJson, traineesJson, err := marshalWorkoutBlocks(workout)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET date = $1, name = $2, entries = $3, trainees = $4
			WHERE id = $5 AND user_id = $6;`,
		workout.Date, workout.Name, entriesJson, traineesJson, workout.ID, workout.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *Repo) DeleteWorkout(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) DeleteAllWorkouts(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	_, err = r.db.Exec(ctx, `DELETE FROM workout WHERE user_id = $1;`, userID)
	return err
}

func marshalWorkoutBlocks(workout fitness.Workout) (entriesJson, traineesJson []byte, err error) {
	if entriesJson, err = json.Marshal(workout.Entries); err != nil {
		return nil, nil, fmt.Errorf("marshal entries: %w", err)
	}
	if traineesJson, err = json.Marshal(workout.Trainees); err != nil {
		return nil, nil, fmt.Errorf("marshal trainees: %w", err)
	}
	return entriesJson, traineesJson, nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]fitness.Workout, error) {
	var workouts []fitness.Workout
	for rows.Next() {
		var w fitness.Workout
		var entriesBytes []byte
		var traineesBytes []byte
		if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.Name, &entriesBytes, &traineesBytes); err != nil {
			return nil, err
		}

		if len(entriesBytes) > 0 {
			if err := json.Unmarshal(entriesBytes, &w.Entries); err != nil {
				return nil, fmt.Errorf("unmarshal entries for workout %s: %w", w.ID, err)
			}
		}
		if len(traineesBytes) > 0 {
			if err := json.Unmarshal(traineesBytes, &w.Trainees); err != nil {
				return nil, fmt.Errorf("unmarshal trainees for workout %s: %w", w.ID, err)
			}
		}

		workouts = append(workouts, w)
	}

	if workouts == nil {
		workouts = make([]fitness.Workout, 0)
	}

	return workouts, nil
}
