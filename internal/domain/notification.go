package domain

import (
	"context"
	"time"
)

// Notification statuses
const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

// Notification is an inbox message written by the relay when a
// pipeline event requires informing another actor.
type Notification struct {
	ID        int64     `json:"id"`
	ToEmail   string    `json:"to"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByEmail(ctx context.Context, email string) ([]Notification, error)
	// MarkRead is scoped to the recipient's email.
	MarkRead(ctx context.Context, id int64, email string) error
}

type NotificationUsecase interface {
	ListMine(ctx context.Context, actor Principal) ([]Notification, error)
	MarkRead(ctx context.Context, actor Principal, id int64) error
}
