package generatenotification

import (
	"github.com/aidyn-dev/banking-notification-service/internal/domain/port/broker"
	portllm "github.com/aidyn-dev/banking-notification-service/internal/domain/port/llm"
	"github.com/aidyn-dev/banking-notification-service/internal/tone"
)

func NewGenerateNotification(completer portllm.ChatCompleter, messageBroker broker.MessageBroker, toneSelector *tone.Selector) *GenerateNotificationHandler {
	useCase := NewGenerateNotificationUseCase(completer, messageBroker, toneSelector)
	return NewGenerateNotificationHandler(useCase)
}
