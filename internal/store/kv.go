package store

import (
	"context"
	"encoding/json"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// jsonRepo implements Repo by storing a JSON document under a key in kv_records.
type jsonRepo[T any] struct {
	drv *entsql.Driver
	key string
}

// NewJSONRepo returns a Repo that persists values of T under key.
func NewJSONRepo[T any](s *Store, key string) Repo[T] {
	return &jsonRepo[T]{drv: s.drv, key: key}
}

func (r *jsonRepo[T]) Load(ctx context.Context) (*T, error) {
	query, args := builder().
		Select(KvRecordsColumns[1].Name).
		From(entsql.Table(KvRecordsTable.Name)).
		Where(entsql.EQ(KvRecordsColumns[0].Name, r.key)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query %s: %w", r.key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query %s: %w", r.key, err)
		}
		return nil, nil
	}

	var raw string
	if err := rows.Scan(&raw); err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.key, err)
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", r.key, ErrCorrupt, err)
	}
	return &v, nil
}

func (r *jsonRepo[T]) Save(ctx context.Context, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}

	query, args := builder().
		Insert(KvRecordsTable.Name).
		Columns(KvRecordsColumns[0].Name, KvRecordsColumns[1].Name, KvRecordsColumns[2].Name).
		Values(r.key, string(b), now().UTC()).
		OnConflict(
			entsql.ConflictColumns(KvRecordsColumns[0].Name),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save %s: %w", r.key, err)
	}
	return nil
}

func (r *jsonRepo[T]) Delete(ctx context.Context) error {
	query, args := builder().
		Delete(KvRecordsTable.Name).
		Where(entsql.EQ(KvRecordsColumns[0].Name, r.key)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete %s: %w", r.key, err)
	}
	return nil
}
