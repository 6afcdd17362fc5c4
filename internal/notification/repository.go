package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Notification struct {
	ID          string    `json:"id"`
	ApplicantID string    `json:"applicantId"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func Insert(ctx context.Context, tx pgx.Tx, applicantID, title, body string, createdAt time.Time) error {
	const q = `
INSERT INTO notifications (id, applicant_id, title, body, created_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := tx.Exec(ctx, q, uuid.NewString(), applicantID, title, body, createdAt)
	return err
}

func (r *Repository) ListByApplicant(ctx context.Context, applicantID string) ([]Notification, error) {
	const q = `
SELECT id, applicant_id, title, body, read, created_at
FROM notifications
WHERE applicant_id = $1
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.ApplicantID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flips one notification to read, scoped to the applicant so one
// applicant cannot touch another's list.
func (r *Repository) MarkRead(ctx context.Context, applicantID, id string) (bool, error) {
	const q = `
UPDATE notifications
SET read = TRUE
WHERE id = $1 AND applicant_id = $2
`
	tag, err := r.db.Exec(ctx, q, id, applicantID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
