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

// ListPlans returns all plans of a user, newest first.
func (r *Repo) ListPlans(ctx context.Context, userID string) (_ []fitness.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, date, name, items, trainees
			FROM plan
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

	return r.rows2plans(rows)
}

func (r *Repo) AddPlan(ctx context.Context, plan fitness.Plan) (_ *fitness.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", plan.ID))
	span.SetAttributes(attribute.String("user_id", plan.UserID))

	itemsJson, err := json.Marshal(plan.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	traineesJson, err := json.Marshal(plan.Trainees)
	if err != nil {
		return nil, fmt.Errorf("marshal trainees: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO plan
				(id, user_id, date, name, items, trainees)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		plan.ID, plan.UserID, plan.Date, plan.Name, itemsJson, traineesJson,
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

	return &plan, nil
}

func (r *Repo) DeletePlan(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM plan WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) DeleteAllPlans(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.deleteall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	_, err = r.db.Exec(ctx, `DELETE FROM plan WHERE user_id = $1;`, userID)
	return err
}

func (r *Repo) rows2plans(rows pgx.Rows) ([]fitness.Plan, error) {
	var plans []fitness.Plan
	for rows.Next() {
		var p fitness.Plan
		var itemsBytes []byte
		var traineesBytes []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.Date, &p.Name, &itemsBytes, &traineesBytes); err != nil {
			return nil, err
		}

		if len(itemsBytes) > 0 {
			if err := json.Unmarshal(itemsBytes, &p.Items); err != nil {
				return nil, fmt.Errorf("unmarshal items for plan %s: %w", p.ID, err)
			}
		}
		if len(traineesBytes) > 0 {
			if err := json.Unmarshal(traineesBytes, &p.Trainees); err != nil {
				return nil, fmt.Errorf("unmarshal trainees for plan %s: %w", p.ID, err)
			}
		}

		plans = append(plans, p)
	}

	if plans == nil {
		plans = make([]fitness.Plan, 0)
	}

	return plans, nil
}
