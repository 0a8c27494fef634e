package broker

import (
	"context"

	"github.com/aidyn-dev/banking-notification-service/internal/domain"
)

type MessageBroker interface {
	SendWithContext(ctx context.Context, notification domain.Notification) error
}
