package generatenotification

import (
	"github.com/aidyn-dev/banking-notification-service/internal/domain"
)

// GenerateNotificationInputDTO carries the target product and the flat client
// attribute mapping the prompt template will be filled from.
type GenerateNotificationInputDTO struct {
	Product    string            `json:"product" binding:"required"`
	ClientData domain.ClientData `json:"client_data" binding:"required"`
}

type GenerateNotificationOutputDTO struct {
	ClientCode       int64  `json:"client_code"`
	Product          string `json:"product"`
	PushNotification string `json:"push_notification"`
	Source           string `json:"source"`
}
