package postgres

import (
	"context"
	"fmt"

	"uma-vasp-backend/internal/core/domain"

	"github.com/google/uuid"
)

// PushSubscriptionRepo implements ports.PushSubscriptionRepository.
type PushSubscriptionRepo struct {
	pool Pool
}

// NewPushSubscriptionRepo creates a new PushSubscriptionRepo.
func NewPushSubscriptionRepo(pool Pool) *PushSubscriptionRepo {
	return &PushSubscriptionRepo{pool: pool}
}

// Create registers a web push subscription. Re-registering the same
// endpoint for a user is a no-op.
func (r *PushSubscriptionRepo) Create(ctx context.Context, s *domain.PushSubscription) error {
	query := `INSERT INTO push_subscriptions (id, user_id, endpoint, p256dh, auth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, endpoint) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.UserID, s.Endpoint, s.P256dh, s.Auth, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert push subscription: %w", err)
	}
	return nil
}

// ListByUserID fetches a user's registered push targets.
func (r *PushSubscriptionRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error) {
	query := `SELECT id, user_id, endpoint, p256dh, auth, created_at
		FROM push_subscriptions WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list push subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []domain.PushSubscription
	for rows.Next() {
		s := domain.PushSubscription{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.Endpoint, &s.P256dh, &s.Auth, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan push subscription: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate push subscription rows: %w", err)
	}
	return subs, nil
}
