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

// ListMetrics returns all body metric entries of a user, oldest first.
func (r *Repo) ListMetrics(ctx context.Context, userID string) (_ []fitness.Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, date, weight, body_fat
			FROM metric
			WHERE user_id = $1
			ORDER BY date;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2metrics(rows)
}

// SaveMetric upserts the single entry a user can have per day. A second
// save for the same date overwrites the first, keeping its id.
func (r *Repo) SaveMetric(ctx context.Context, metric fitness.Metric) (_ *fitness.Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", metric.UserID))
	span.SetAttributes(attribute.String("date", metric.Date))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO metric
				(id, user_id, date, weight, body_fat)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, date) DO UPDATE
				SET weight = EXCLUDED.weight, body_fat = EXCLUDED.body_fat
			RETURNING id, user_id, date, weight, body_fat;`,
		metric.ID, metric.UserID, metric.Date, metric.Weight, metric.BodyFat,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	metrics, err := r.rows2metrics(rows)
	if err != nil {
		return nil, err
	}

	if len(metrics) != 1 {
		return nil, errors.New("unexpected error [no rows next]")
	}

	return &metrics[0], nil
}

func (r *Repo) DeleteAllMetrics(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.deleteall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	_, err = r.db.Exec(ctx, `DELETE FROM metric WHERE user_id = $1;`, userID)
	return err
}

func (r *Repo) rows2metrics(rows pgx.Rows) ([]fitness.Metric, error) {
	var metrics []fitness.Metric
	for rows.Next() {
		var m fitness.Metric
		if err := rows.Scan(&m.ID, &m.UserID, &m.Date, &m.Weight, &m.BodyFat); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	if metrics == nil {
		metrics = make([]fitness.Metric, 0)
	}

	return metrics, nil
}
