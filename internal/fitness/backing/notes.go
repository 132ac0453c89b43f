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

// ListNotes returns all notes of a user, newest first.
func (r *Repo) ListNotes(ctx context.Context, userID string) (_ []fitness.Note, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notes.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, date, content
			FROM note
			WHERE user_id = $1
			ORDER BY date DESC, id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2notes(rows)
}

func (r *Repo) AddNote(ctx context.Context, note fitness.Note) (_ *fitness.Note, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notes.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", note.ID))
	span.SetAttributes(attribute.String("user_id", note.UserID))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO note
				(id, user_id, date, content)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		note.ID, note.UserID, note.Date, note.Content,
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

	return &note, nil
}

func (r *Repo) DeleteNote(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notes.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM note WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (r *Repo) DeleteAllNotes(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notes.deleteall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	_, err = r.db.Exec(ctx, `DELETE FROM note WHERE user_id = $1;`, userID)
	return err
}

func (r *Repo) rows2notes(rows pgx.Rows) ([]fitness.Note, error) {
	var notes []fitness.Note
	for rows.Next() {
		var n fitness.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Date, &n.Content); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	if notes == nil {
		notes = make([]fitness.Note, 0)
	}

	return notes, nil
}
