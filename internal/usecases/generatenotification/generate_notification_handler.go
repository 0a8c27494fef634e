package generatenotification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aidyn-dev/banking-notification-service/internal/domain"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/tracing"
	"github.com/aidyn-dev/banking-notification-service/pkg/logger"
)

type GenerateNotificationHandler struct {
	useCase GenerateNotificationUseCase
}

func NewGenerateNotificationHandler(useCase GenerateNotificationUseCase) *GenerateNotificationHandler {
	return &GenerateNotificationHandler{
		useCase: useCase,
	}
}

func (h *GenerateNotificationHandler) Handle(c *gin.Context) {
	var input GenerateNotificationInputDTO

	ctx, span := tracing.Tracer.Start(c.Request.Context(), "GenerateNotificationHandler.Handle")
	defer span.End()

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	output, err := h.useCase.Execute(ctx, input)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.L().Error("Error generating notification via use case",
			zap.String("product", input.Product),
			zap.String("traceID", logger.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate notification"})
		return
	}

	c.JSON(http.StatusOK, output)
}
