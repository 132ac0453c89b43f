package backing

import (
	"context"
	"errors"
	"fmt"

	"github.com/flexium/flexium/internal/fitness"
	"github.com/flexium/flexium/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// ErrExerciseNameTaken signals a catalog name collision. Exercise names
// are unique case-insensitively, the catalog is shared by all users.
var ErrExerciseNameTaken = errors.New("exercise name already taken")

func (r *Repo) ListExercises(ctx context.Context) (_ []fitness.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, equipment, demo_url FROM exercise ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2exercises(rows)
}

func (r *Repo) AddExercise(ctx context.Context, exercise fitness.Exercise) (_ *fitness.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", exercise.ID))
	span.SetAttributes(attribute.String("name", exercise.Name))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise
				(id, name, muscle_group, equipment, demo_url)
				SELECT $1, $2, $3, $4, $5
				WHERE NOT EXISTS (SELECT 1 FROM exercise WHERE lower(name) = lower($2))
			RETURNING id;`,
		exercise.ID, exercise.Name, exercise.MuscleGroup, exercise.Equipment, exercise.DemoURL,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrExerciseNameTaken
	}

	return &exercise, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, exercise fitness.Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", exercise.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET name = $1, muscle_group = $2, equipment = $3, demo_url = $4 WHERE id = $5;`,
		exercise.Name, exercise.MuscleGroup, exercise.Equipment, exercise.DemoURL, exercise.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]fitness.Exercise, error) {
	var exercises []fitness.Exercise
	for rows.Next() {
		var e fitness.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment, &e.DemoURL); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}

	if exercises == nil {
		exercises = make([]fitness.Exercise, 0)
	}

	return exercises, nil
}
