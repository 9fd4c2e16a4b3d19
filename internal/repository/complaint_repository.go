package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/constituent-office/internal/domain"
)

// ComplaintRepository encapsulates complaint persistence. Listing returns a
// consistent snapshot of the whole collection; the access-scoped query
// engine and the reporting aggregator both derive from that one view.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	Update(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	AppendMessage(ctx context.Context, complaintID string, msg *domain.Message) error
	ListMessages(ctx context.Context, complaintID string) ([]domain.Message, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (submitter_id, submitter_name, submitter_phone, title, category, description, status, area, address, ai_summary)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		complaint.SubmitterID,
		complaint.SubmitterName,
		complaint.SubmitterPhone,
		complaint.Title,
		complaint.Category,
		complaint.Description,
		complaint.Status,
		complaint.Area,
		complaint.Address,
		complaint.AISummary,
	).Scan(&complaint.ID, &complaint.CreatedAt)
}

func (r *complaintRepository) Update(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        UPDATE complaints SET status=$1, ai_summary=$2, resolved_at=$3
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		complaint.Status,
		complaint.AISummary,
		complaint.ResolvedAt,
		complaint.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	const query = `
        SELECT id, submitter_id, submitter_name, submitter_phone, title, category, description, status, area, address, ai_summary, created_at, resolved_at
        FROM complaints WHERE id=$1`
	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&complaint.ID,
		&complaint.SubmitterID,
		&complaint.SubmitterName,
		&complaint.SubmitterPhone,
		&complaint.Title,
		&complaint.Category,
		&complaint.Description,
		&complaint.Status,
		&complaint.Area,
		&complaint.Address,
		&complaint.AISummary,
		&complaint.CreatedAt,
		&complaint.ResolvedAt,
	); err != nil {
		return nil, err
	}
	thread, err := r.ListMessages(ctx, complaint.ID)
	if err != nil {
		return nil, err
	}
	complaint.Thread = thread
	return &complaint, nil
}

func (r *complaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	const query = `
        SELECT id, submitter_id, submitter_name, submitter_phone, title, category, description, status, area, address, ai_summary, created_at, resolved_at
        FROM complaints ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.SubmitterID,
			&complaint.SubmitterName,
			&complaint.SubmitterPhone,
			&complaint.Title,
			&complaint.Category,
			&complaint.Description,
			&complaint.Status,
			&complaint.Area,
			&complaint.Address,
			&complaint.AISummary,
			&complaint.CreatedAt,
			&complaint.ResolvedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}

func (r *complaintRepository) AppendMessage(ctx context.Context, complaintID string, msg *domain.Message) error {
	const query = `
        INSERT INTO complaint_messages (complaint_id, sender_id, sender_name, message_text, origin)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		complaintID,
		msg.SenderID,
		msg.SenderName,
		msg.Text,
		msg.Origin,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *complaintRepository) ListMessages(ctx context.Context, complaintID string) ([]domain.Message, error) {
	const query = `
        SELECT id, sender_id, sender_name, message_text, origin, created_at
        FROM complaint_messages WHERE complaint_id=$1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.SenderName,
			&msg.Text,
			&msg.Origin,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}
