package postgres

import (
	"context"
	"time"

	"go-hiring-pipeline/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (to_email, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	n.CreatedAt = time.Now()
	if n.Status == "" {
		n.Status = domain.NotificationUnread
	}
	return r.db.QueryRow(ctx, query, n.ToEmail, n.Subject, n.Message, n.Status, n.CreatedAt).Scan(&n.ID)
}

func (r *notificationRepo) ListByEmail(ctx context.Context, email string) ([]domain.Notification, error) {
	query := `
		SELECT id, to_email, subject, message, status, created_at
		FROM notifications
		WHERE to_email = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.ToEmail, &n.Subject, &n.Message, &n.Status, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepo) MarkRead(ctx context.Context, id int64, email string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE notifications SET status = $3 WHERE id = $1 AND to_email = $2`,
		id, email, domain.NotificationRead)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
