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

// UserPatch carries a partial profile update. Nil fields stay untouched.
// PasswordHash is deliberately not decodable from JSON; it is set only by
// the password endpoint after hashing.
type UserPatch struct {
	Name         *string           `json:"name,omitempty"`
	Role         *fitness.Role     `json:"role,omitempty"`
	Favorites    []string          `json:"favorites,omitempty"`
	Settings     *fitness.Settings `json:"settings,omitempty"`
	PasswordHash *string           `json:"-"`
}

func (r *Repo) GetUser(ctx context.Context, id string) (_ *fitness.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, role, favorites, settings, password_hash FROM fituser WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	users, err := r.rows2users(rows)
	if err != nil {
		return nil, err
	}

	if len(users) != 1 {
		return nil, ErrUserNotFound
	}

	return &users[0], nil
}

func (r *Repo) ListUsers(ctx context.Context) (_ []fitness.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, role, favorites, settings, password_hash FROM fituser ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2users(rows)
}

func (r *Repo) AddUser(ctx context.Context, user fitness.User) (_ *fitness.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", user.ID))

	favoritesJson, err := json.Marshal(user.Favorites)
	if err != nil {
		return nil, fmt.Errorf("marshal favorites: %w", err)
	}
	settingsJson, err := json.Marshal(user.Settings)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO fituser
				(id, name, role, favorites, settings, password_hash)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		user.ID, user.Name, user.Role, favoritesJson, settingsJson, user.PasswordHash,
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

	return &user, nil
}

func (r *Repo) UpdateUser(ctx context.Context, id string, patch UserPatch) (_ *fitness.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var favoritesJson []byte
	if patch.Favorites != nil {
		if favoritesJson, err = json.Marshal(patch.Favorites); err != nil {
			return nil, fmt.Errorf("marshal favorites: %w", err)
		}
	}
	var settingsJson []byte
	if patch.Settings != nil {
		if settingsJson, err = json.Marshal(patch.Settings); err != nil {
			return nil, fmt.Errorf("marshal settings: %w", err)
		}
	}

	rows, err := r.db.Query(
		ctx,
		`UPDATE fituser SET
				name = COALESCE($2, name),
				role = COALESCE($3, role),
				favorites = COALESCE($4, favorites),
				settings = COALESCE($5, settings),
				password_hash = COALESCE($6, password_hash)
			WHERE id = $1
			RETURNING id, name, role, favorites, settings, password_hash;`,
		id, patch.Name, patch.Role, favoritesJson, settingsJson, patch.PasswordHash,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	users, err := r.rows2users(rows)
	if err != nil {
		return nil, err
	}

	if len(users) != 1 {
		return nil, ErrUserNotFound
	}

	return &users[0], nil
}

// DeleteUser removes the profile together with everything it owns.
func (r *Repo) DeleteUser(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, table := range []string{"workout", "metric", "note", "plan"} {
		if _, err = tx.Exec(
			ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1;`, table),
			id,
		); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM fituser WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = ErrUserNotFound
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repo) rows2users(rows pgx.Rows) ([]fitness.User, error) {
	var users []fitness.User
	for rows.Next() {
		var u fitness.User
		var favoritesBytes []byte
		var settingsBytes []byte
		if err := rows.Scan(&u.ID, &u.Name, &u.Role, &favoritesBytes, &settingsBytes, &u.PasswordHash); err != nil {
			return nil, err
		}

		if len(favoritesBytes) > 0 {
			if err := json.Unmarshal(favoritesBytes, &u.Favorites); err != nil {
				return nil, fmt.Errorf("unmarshal favorites for user %s: %w", u.ID, err)
			}
		}
		if len(settingsBytes) > 0 {
			if err := json.Unmarshal(settingsBytes, &u.Settings); err != nil {
				return nil, fmt.Errorf("unmarshal settings for user %s: %w", u.ID, err)
			}
		} else {
			u.Settings = fitness.DefaultSettings()
		}

		users = append(users, u)
	}

	if users == nil {
		users = make([]fitness.User, 0)
	}

	return users, nil
}
