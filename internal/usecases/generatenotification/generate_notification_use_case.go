package generatenotification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aidyn-dev/banking-notification-service/configs"
	"github.com/aidyn-dev/banking-notification-service/internal/domain"
	"github.com/aidyn-dev/banking-notification-service/internal/domain/port/broker"
	portllm "github.com/aidyn-dev/banking-notification-service/internal/domain/port/llm"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/metrics"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/tracing"
	"github.com/aidyn-dev/banking-notification-service/internal/prompt"
	"github.com/aidyn-dev/banking-notification-service/internal/tone"
	"github.com/aidyn-dev/banking-notification-service/pkg/logger"
)

// GenerateNotificationUseCase defines the contract for the generate notification use case.
type GenerateNotificationUseCase interface {
	Execute(ctx context.Context, input GenerateNotificationInputDTO) (GenerateNotificationOutputDTO, error)
}

// generateNotificationUseCase implements the GenerateNotificationUseCase interface.
type generateNotificationUseCase struct {
	// completer is nil when Azure OpenAI credentials are absent. Every
	// request is then served from the template fallback.
	completer portllm.ChatCompleter
	// messageBroker is nil when Kafka delivery is disabled.
	messageBroker broker.MessageBroker
	toneSelector  *tone.Selector
}

func NewGenerateNotificationUseCase(completer portllm.ChatCompleter, messageBroker broker.MessageBroker, toneSelector *tone.Selector) GenerateNotificationUseCase {
	return &generateNotificationUseCase{
		completer:     completer,
		messageBroker: messageBroker,
		toneSelector:  toneSelector,
	}
}

// llmResponse mirrors the JSON object the model is instructed to answer with.
type llmResponse struct {
	ClientCode       json.Number `json:"client_code"`
	Product          string      `json:"product"`
	PushNotification string      `json:"push_notification"`
}

func (u *generateNotificationUseCase) Execute(ctx context.Context, input GenerateNotificationInputDTO) (GenerateNotificationOutputDTO, error) {
	ctx, span := tracing.Tracer.Start(ctx, "GenerateNotificationUseCase.Execute")
	defer span.End()

	product := prompt.Normalize(input.Product)
	if !prompt.Known(product) {
		return GenerateNotificationOutputDTO{}, fmt.Errorf("%w: %q", domain.ErrUnknownProduct, input.Product)
	}

	clientCode, _ := input.ClientData.Int("client_code")
	age, _ := input.ClientData.Int("age")
	status, _ := input.ClientData.String("status")
	toneInstruction := u.toneSelector.Select(int(age), status)

	userPrompt, err := prompt.Assemble(product, input.ClientData, toneInstruction)
	if err != nil {
		logger.L().Warn("Failed to assemble prompt, serving fallback",
			zap.String("product", product),
			zap.Int64("clientCode", clientCode),
			zap.String("traceID", logger.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
		metrics.ErrorTotal.WithLabelValues("assemble_prompt").Inc()
		return u.fallback(ctx, product, clientCode, input.ClientData), nil
	}

	if u.completer == nil {
		return u.fallback(ctx, product, clientCode, input.ClientData), nil
	}

	start := time.Now()
	raw, err := u.completer.Complete(ctx, prompt.SystemPrompt, userPrompt)
	metrics.LLMRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.L().Error("Chat completion failed, serving fallback",
			zap.String("product", product),
			zap.Int64("clientCode", clientCode),
			zap.String("traceID", logger.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
		metrics.LLMRequestsTotal.WithLabelValues("failure").Inc()
		metrics.ErrorTotal.WithLabelValues("llm_request").Inc()
		return u.fallback(ctx, product, clientCode, input.ClientData), nil
	}
	metrics.LLMRequestsTotal.WithLabelValues("success").Inc()

	parsed, err := parseResponse(raw)
	if err != nil {
		logger.L().Warn("Unusable chat completion response, serving fallback",
			zap.String("product", product),
			zap.Int64("clientCode", clientCode),
			zap.String("traceID", logger.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
		metrics.ErrorTotal.WithLabelValues("parse_response").Inc()
		return u.fallback(ctx, product, clientCode, input.ClientData), nil
	}

	output := GenerateNotificationOutputDTO{
		ClientCode:       clientCode,
		Product:          product,
		PushNotification: parsed.PushNotification,
		Source:           domain.SourceLLM,
	}
	metrics.NotificationsGeneratedTotal.WithLabelValues(product, domain.SourceLLM).Inc()
	u.publish(ctx, output)
	return output, nil
}

func (u *generateNotificationUseCase) fallback(ctx context.Context, product string, clientCode int64, data domain.ClientData) GenerateNotificationOutputDTO {
	text := prompt.Fallback(product, data)
	if strings.TrimSpace(text) == "" {
		text = configs.GetConfig().FallbackNotification
	}
	output := GenerateNotificationOutputDTO{
		ClientCode:       clientCode,
		Product:          product,
		PushNotification: text,
		Source:           domain.SourceFallback,
	}
	metrics.NotificationsGeneratedTotal.WithLabelValues(product, domain.SourceFallback).Inc()
	u.publish(ctx, output)
	return output
}

// publish hands the finished notification to Kafka for the delivery channels.
// Delivery is best effort and never fails the generation request.
func (u *generateNotificationUseCase) publish(ctx context.Context, output GenerateNotificationOutputDTO) {
	if u.messageBroker == nil {
		return
	}
	notification := domain.Notification{
		ID:               uuid.New().String(),
		ClientCode:       int(output.ClientCode),
		Product:          output.Product,
		PushNotification: output.PushNotification,
		Source:           output.Source,
		CreatedAt:        time.Now().UTC(),
	}
	if err := u.messageBroker.SendWithContext(ctx, notification); err != nil {
		logger.L().Error("Failed to publish notification",
			zap.String("notificationID", notification.ID),
			zap.String("product", notification.Product),
			zap.String("traceID", logger.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}

// stripFences removes the markdown code fences models often wrap JSON in.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}

func parseResponse(raw string) (llmResponse, error) {
	var parsed llmResponse
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		return llmResponse{}, fmt.Errorf("decode chat completion response: %w", err)
	}
	if strings.TrimSpace(parsed.PushNotification) == "" {
		return llmResponse{}, errors.New("chat completion response missing push_notification")
	}
	return parsed, nil
}
