package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"go-resume-backend/internal/domain"
)

// entryRepo implements domain.EntryRepository for any table description.
type entryRepo[E any] struct {
	db *sql.DB
	t  *table[E]
}

func (r *entryRepo[E]) scanAll(rows *sql.Rows) ([]E, error) {
	defer rows.Close()

	out := make([]E, 0)
	for rows.Next() {
		e := r.t.newEntity()
		if err := rows.Scan(r.t.targets(e)...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.t.name, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *entryRepo[E]) Find(ctx context.Context, q domain.ListQuery) ([]E, error) {
	b := &queryBuilder{}
	where, err := r.t.where(q, b)
	if err != nil {
		return nil, err
	}
	order, err := r.t.orderBy(q)
	if err != nil {
		return nil, err
	}

	query := r.t.selectSQL() + where + order + r.t.page(q, b)
	rows, err := r.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, mapError(err)
	}
	return r.scanAll(rows)
}

func (r *entryRepo[E]) FindOne(ctx context.Context, id string) (E, error) {
	e := r.t.newEntity()
	err := r.db.QueryRowContext(ctx, r.t.selectSQL()+" WHERE id = $1", id).Scan(r.t.targets(e)...)
	if err != nil {
		var zero E
		return zero, mapError(err)
	}
	return e, nil
}

func (r *entryRepo[E]) Count(ctx context.Context, q domain.ListQuery) (int, error) {
	b := &queryBuilder{}
	where, err := r.t.where(q, b)
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+r.t.name+where, b.args...).Scan(&n); err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

func (r *entryRepo[E]) IDs(ctx context.Context, q domain.ListQuery) ([]string, error) {
	b := &queryBuilder{}
	where, err := r.t.where(q, b)
	if err != nil {
		return nil, err
	}
	order, err := r.t.orderBy(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, "SELECT id FROM "+r.t.name+where+order+r.t.page(q, b), b.args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, mapError(rows.Err())
}

func (r *entryRepo[E]) Create(ctx context.Context, e E) error {
	query, args := r.t.insertSQL(e)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *entryRepo[E]) Update(ctx context.Context, e E) error {
	query, args := r.t.updateSQL(e)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *entryRepo[E]) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM "+r.t.name+" WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *entryRepo[E]) FindByUserID(ctx context.Context, userID string) ([]E, error) {
	return r.Find(ctx, domain.ListQuery{Criteria: map[string]any{"userId": userID}})
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
