package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

var wordEventColumns = []string{"sequence", "timestamp", "session_id", "action", "word", "detail"}

func (r *eventRepo) AppendWordEvent(ctx context.Context, data WordEventData) error {
	if data.Action == "" {
		return fmt.Errorf("append word event: empty action")
	}
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	query, args := builder().Insert("word_events").
		Columns(wordEventColumns...).
		Values(seq, r.now().UnixMilli(), data.SessionID, data.Action, data.Word, data.Detail).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append word event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryWordEvents(ctx context.Context, opts QueryOpts) ([]WordEvent, error) {
	sel := builder().Select(wordEventColumns...).
		From(entsql.Table("word_events")).
		OrderBy(entsql.Desc("sequence"))
	if p := wordPredicate(opts); p != nil {
		sel.Where(p)
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query word events: %w", err)
	}
	defer rows.Close()

	var events []WordEvent
	for rows.Next() {
		var (
			e  WordEvent
			ts int64
		)
		if err := rows.Scan(&e.Sequence, &ts, &e.SessionID, &e.Action, &e.Word, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan word event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) ActionCounts(ctx context.Context, opts QueryOpts) ([]ActionCount, error) {
	sel := builder().Select("action", entsql.As(entsql.Count("*"), "n")).
		From(entsql.Table("word_events")).
		GroupBy("action").
		OrderBy("action")
	if p := wordPredicate(opts); p != nil {
		sel.Where(p)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count word events: %w", err)
	}
	defer rows.Close()

	var counts []ActionCount
	for rows.Next() {
		var c ActionCount
		if err := rows.Scan(&c.Action, &c.Count); err != nil {
			return nil, fmt.Errorf("scan action count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// wordPredicate folds opts into a single WHERE predicate, or nil.
func wordPredicate(opts QueryOpts) *entsql.Predicate {
	preds := rangePredicates(opts)
	if opts.Word != "" {
		preds = append(preds, entsql.EQ("word", opts.Word))
	}
	if opts.Action != "" {
		preds = append(preds, entsql.EQ("action", opts.Action))
	}
	return joinPredicates(preds)
}

func rangePredicates(opts QueryOpts) []*entsql.Predicate {
	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	return preds
}

func joinPredicates(preds []*entsql.Predicate) *entsql.Predicate {
	switch len(preds) {
	case 0:
		return nil
	case 1:
		return preds[0]
	default:
		return entsql.And(preds...)
	}
}
