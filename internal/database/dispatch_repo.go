package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/contract"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
)

// Instants are stored as RFC3339 text in UTC so they sort lexically.
const timeLayout = time.RFC3339Nano

type dispatchRepository struct {
	db dbConn
}

func newDispatchRepository(db dbConn) contract.DispatchRepo {
	return &dispatchRepository{db: db}
}

func (r *dispatchRepository) ClaimOccurrence(ctx context.Context, occurrence time.Time) (bool, error) {
	query := `
		INSERT OR IGNORE INTO scheduled_occurrences (occurrence_at, claimed_at)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		occurrence.UTC().Format(time.RFC3339),
		formatTime(time.Now()),
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim occurrence: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected == 1, nil
}

func (r *dispatchRepository) Record(ctx context.Context, run *entity.DispatchRun) error {
	query := `
		INSERT INTO dispatch_runs (trigger_kind, requester, status, reason,
			occurrence_at, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var occurrence sql.NullString
	if run.OccurrenceAt != nil {
		occurrence = sql.NullString{String: run.OccurrenceAt.UTC().Format(time.RFC3339), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		string(run.Trigger),
		run.Requester,
		string(run.Status),
		run.Reason,
		occurrence,
		formatTime(run.StartedAt),
		formatTime(run.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to record dispatch run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	run.ID = id
	return nil
}

func (r *dispatchRepository) Latest(ctx context.Context, limit int) ([]*entity.DispatchRun, error) {
	query := `
		SELECT id, trigger_kind, requester, status, reason,
			occurrence_at, started_at, finished_at
		FROM dispatch_runs
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch runs: %w", err)
	}
	defer rows.Close()

	var runs []*entity.DispatchRun
	for rows.Next() {
		run, err := scanDispatchRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dispatch runs: %w", err)
	}

	return runs, nil
}

func scanDispatchRun(rows *sql.Rows) (*entity.DispatchRun, error) {
	var (
		run                   entity.DispatchRun
		triggerKind, status   string
		occurrence            sql.NullString
		startedAt, finishedAt string
	)

	err := rows.Scan(
		&run.ID,
		&triggerKind,
		&run.Requester,
		&status,
		&run.Reason,
		&occurrence,
		&startedAt,
		&finishedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan dispatch run: %w", err)
	}

	run.Trigger = entity.TriggerKind(triggerKind)
	run.Status = entity.OutcomeStatus(status)

	if run.StartedAt, err = parseTime(startedAt); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseTime(finishedAt); err != nil {
		return nil, err
	}
	if occurrence.Valid {
		at, err := parseTime(occurrence.String)
		if err != nil {
			return nil, err
		}
		run.OccurrenceAt = &at
	}

	return &run, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored time %q: %w", value, err)
	}
	return t, nil
}
