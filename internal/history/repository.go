package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admissionsgateway/internal/status"
)

// Event is one observed phase transition for an applicant. The gateway
// appends one whenever a status fetch lands on a different phase than the
// last recorded one.
type Event struct {
	ID          string        `json:"id"`
	ApplicantID string        `json:"applicantId"`
	FromPhase   status.Phase  `json:"fromPhase,omitempty"`
	ToPhase     status.Phase  `json:"toPhase"`
	Screen      status.Screen `json:"screen"`
	AnyRejected bool          `json:"anyRejected"`
	OccurredAt  time.Time     `json:"occurredAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func Insert(ctx context.Context, tx pgx.Tx, ev Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	const q = `
INSERT INTO status_events (id, applicant_id, from_phase, to_phase, screen, any_rejected, occurred_at)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
`
	_, err := tx.Exec(ctx, q, ev.ID, ev.ApplicantID, string(ev.FromPhase), string(ev.ToPhase), string(ev.Screen), ev.AnyRejected, ev.OccurredAt)
	return err
}

// LatestPhase returns the last recorded phase for the applicant, or false if
// none has been recorded yet.
func LatestPhase(ctx context.Context, tx pgx.Tx, applicantID string) (status.Phase, bool, error) {
	const q = `
SELECT to_phase
FROM status_events
WHERE applicant_id = $1
ORDER BY occurred_at DESC, created_at DESC
LIMIT 1
`
	var s string
	if err := tx.QueryRow(ctx, q, applicantID).Scan(&s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	p, err := status.ParsePhase(s)
	if err != nil {
		return "", false, err
	}
	return p, true, nil
}

func (r *Repository) ListByApplicant(ctx context.Context, applicantID string) ([]Event, error) {
	const q = `
SELECT id, applicant_id, COALESCE(from_phase, ''), to_phase, screen, any_rejected, occurred_at
FROM status_events
WHERE applicant_id = $1
ORDER BY occurred_at ASC, created_at ASC
`
	rows, err := r.db.Query(ctx, q, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var from, to, screen string
		if err := rows.Scan(&e.ID, &e.ApplicantID, &from, &to, &screen, &e.AnyRejected, &e.OccurredAt); err != nil {
			return nil, err
		}
		e.FromPhase = status.Phase(from)
		e.ToPhase = status.Phase(to)
		e.Screen = status.Screen(screen)
		out = append(out, e)
	}
	return out, rows.Err()
}

type PhaseCount struct {
	Phase status.Phase `json:"phase"`
	Count int64        `json:"count"`
}

// CountByPhase counts applicants by their most recently recorded phase,
// backing the admin dashboard.
func (r *Repository) CountByPhase(ctx context.Context) ([]PhaseCount, error) {
	const q = `
SELECT to_phase, COUNT(*)
FROM (
    SELECT DISTINCT ON (applicant_id) applicant_id, to_phase
    FROM status_events
    ORDER BY applicant_id, occurred_at DESC, created_at DESC
) latest
GROUP BY to_phase
ORDER BY to_phase
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PhaseCount
	for rows.Next() {
		var c PhaseCount
		var phase string
		if err := rows.Scan(&phase, &c.Count); err != nil {
			return nil, err
		}
		c.Phase = status.Phase(phase)
		out = append(out, c)
	}
	return out, rows.Err()
}
