package outing

import (
	"context"
	"errors"
	"fmt"
)

// Persister stores the full record list on behalf of a Log.
type Persister interface {
	Save(ctx context.Context, records []Record) error
	Remove(ctx context.Context) error
}

// Log is the ordered, append-only list of outings plus the time accounting
// derived from it. Every mutation recomputes the used minutes and persists.
type Log struct {
	persister Persister
	records   []Record
	total     int
	used      int
}

// NewLog builds a Log over previously stored records. It fails with ErrParse
// when a stored time cannot be accounted for.
func NewLog(persister Persister, records []Record) (*Log, error) {
	if persister == nil {
		return nil, errors.New("outing log requires a persister")
	}
	used, err := UsedMinutes(records)
	if err != nil {
		return nil, err
	}
	return &Log{
		persister: persister,
		records:   append([]Record(nil), records...),
		total:     BudgetMinutes,
		used:      used,
	}, nil
}

// Append validates record, adds it to the end of the log and saves the full
// list. A record with a malformed time is rejected with ErrParse. If saving
// fails the append is undone.
func (l *Log) Append(ctx context.Context, record Record) error {
	if _, err := Duration(record); err != nil {
		return err
	}

	prev := l.records
	next := make([]Record, len(prev), len(prev)+1)
	copy(next, prev)
	next = append(next, record)

	used, err := UsedMinutes(next)
	if err != nil {
		return err
	}
	if err := l.persister.Save(ctx, next); err != nil {
		return fmt.Errorf("save outings: %w", err)
	}

	l.records = next
	l.used = used
	return nil
}

// Clear empties the log, resets the budget and deletes the stored value.
// The in-memory log is cleared even if the delete fails.
func (l *Log) Clear(ctx context.Context) error {
	l.records = nil
	l.used = 0
	l.total = BudgetMinutes
	if err := l.persister.Remove(ctx); err != nil {
		return fmt.Errorf("remove outings: %w", err)
	}
	return nil
}

// Records returns a copy of the records in insertion order.
func (l *Log) Records() []Record {
	return append([]Record(nil), l.records...)
}

// Len is the number of records.
func (l *Log) Len() int { return len(l.records) }

// TotalMinutes is the budget.
func (l *Log) TotalMinutes() int { return l.total }

// UsedMinutes is the sum of all measured outings.
func (l *Log) UsedMinutes() int { return l.used }

// RemainingMinutes may be negative once the budget is exceeded.
func (l *Log) RemainingMinutes() int { return l.total - l.used }

// Summary snapshots the accounting figures.
func (l *Log) Summary() Summary {
	return Summary{
		Total:     l.total,
		Used:      l.used,
		Remaining: l.RemainingMinutes(),
	}
}
