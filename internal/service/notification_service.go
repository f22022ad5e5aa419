package service

import (
	"context"
	"encoding/json"
	"fmt"

	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/core/ports"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WebPushNotificationService implements ports.NotificationService using
// web push. Delivery failures are logged, never surfaced to the payment
// flow.
type WebPushNotificationService struct {
	subscriptions ports.PushSubscriptionRepository
	cfg           config.PushConfig
	log           zerolog.Logger
}

// NewWebPushNotificationService creates a new notification service.
func NewWebPushNotificationService(
	subscriptions ports.PushSubscriptionRepository,
	cfg config.PushConfig,
	log zerolog.Logger,
) *WebPushNotificationService {
	return &WebPushNotificationService{
		subscriptions: subscriptions,
		cfg:           cfg,
		log:           log.With().Str("component", "notification_service").Logger(),
	}
}

// PaymentReceived notifies every registered browser of the user.
func (s *WebPushNotificationService) PaymentReceived(ctx context.Context, userID uuid.UUID, amount int64, currencyCode, senderUma string) error {
	if s.cfg.VAPIDPrivateKey == "" {
		s.log.Debug().Msg("web push disabled, no VAPID keys configured")
		return nil
	}

	subs, err := s.subscriptions.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"title": "Payment received",
		"body":  fmt.Sprintf("You received %d %s from %s", amount, currencyCode, senderUma),
	})
	if err != nil {
		return err
	}

	for _, sub := range subs {
		target := &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.P256dh,
				Auth:   sub.Auth,
			},
		}
		resp, err := webpush.SendNotificationWithContext(ctx, payload, target, &webpush.Options{
			Subscriber:      s.cfg.Subscriber,
			VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
			VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
			TTL:             60,
		})
		if err != nil {
			s.log.Warn().Err(err).Str("endpoint", sub.Endpoint).Msg("web push delivery failed")
			continue
		}
		resp.Body.Close() //nolint:errcheck
	}
	return nil
}
